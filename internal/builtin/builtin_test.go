// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package builtin

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holomush/scriptlang/internal/value"
)

func TestPrint_SpaceSeparatedWithTrailingNewline(t *testing.T) {
	var buf bytes.Buffer
	r := NewRegistry(NewSink(&buf))
	_, ok, err := r.Call("print", []value.Value{value.Int(1), value.NewString("hi"), value.Bool(true), value.Void{}})
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, "1 hi true (void)\n", buf.String())
}

func TestLen_StringCodePoints(t *testing.T) {
	v, err := builtinLen([]value.Value{value.NewString("héllo")})
	require.NoError(t, err)
	assert.Equal(t, value.Int(5), v)
}

func TestGet_MapMissingKeyReturnsVoid(t *testing.T) {
	m := value.NewMap()
	m.Set("a", value.Int(1))
	v, err := builtinGet([]value.Value{m, value.NewString("missing")})
	require.NoError(t, err)
	assert.Equal(t, value.Void{}, v)
}

func TestGet_ListOutOfBoundsErrors(t *testing.T) {
	l := value.NewList([]value.Value{value.Int(1)})
	_, err := builtinGet([]value.Value{l, value.Int(5)})
	require.Error(t, err)
}

func TestSet_MapInsertsAndOverwrites(t *testing.T) {
	m := value.NewMap()
	_, err := builtinSet([]value.Value{m, value.NewString("k"), value.Int(1)})
	require.NoError(t, err)
	v, ok := m.Get("k")
	require.True(t, ok)
	assert.Equal(t, value.Int(1), v)

	_, err = builtinSet([]value.Value{m, value.NewString("k"), value.Int(2)})
	require.NoError(t, err)
	v, _ = m.Get("k")
	assert.Equal(t, value.Int(2), v)
}

func TestAppend_ListMutatesInPlace(t *testing.T) {
	l := value.NewList([]value.Value{value.Int(1)})
	_, err := builtinAppend([]value.Value{l, value.Int(2)})
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())
}

func TestAppend_StringConcatenates(t *testing.T) {
	s := value.NewString("foo")
	_, err := builtinAppend([]value.Value{s, value.NewString("bar")})
	require.NoError(t, err)
	assert.Equal(t, "foobar", s.String())
}

func TestRange_SingleAndDoubleArg(t *testing.T) {
	v, err := builtinRange([]value.Value{value.Int(3)})
	require.NoError(t, err)
	l := v.(*value.List)
	assert.Equal(t, 3, l.Len())
	first, _ := l.At(0)
	assert.Equal(t, value.Int(0), first)

	v, err = builtinRange([]value.Value{value.Int(2), value.Int(5)})
	require.NoError(t, err)
	l = v.(*value.List)
	assert.Equal(t, 3, l.Len())
}

func TestSlice_NegativeIndicesClamp(t *testing.T) {
	s := value.NewString("abcdef")
	v, err := builtinSlice([]value.Value{s, value.Int(-3), value.Int(100)})
	require.NoError(t, err)
	assert.Equal(t, "def", v.(*value.Str).String())
}

func TestSlice_StartAfterEndErrors(t *testing.T) {
	s := value.NewString("abcdef")
	_, err := builtinSlice([]value.Value{s, value.Int(4), value.Int(1)})
	require.Error(t, err)
}

func TestSort_MixedIntFloatNumericCompare(t *testing.T) {
	l := value.NewList([]value.Value{value.Float(3.5), value.Int(1), value.Int(2)})
	_, err := builtinSort([]value.Value{l})
	require.NoError(t, err)
	a, _ := l.At(0)
	b, _ := l.At(1)
	c, _ := l.At(2)
	assert.Equal(t, value.Int(1), a)
	assert.Equal(t, value.Int(2), b)
	assert.Equal(t, value.Float(3.5), c)
}

func TestSort_MixedOtherTypesErrors(t *testing.T) {
	l := value.NewList([]value.Value{value.Int(1), value.NewString("x")})
	_, err := builtinSort([]value.Value{l})
	require.Error(t, err)
}

func TestReverse_InPlace(t *testing.T) {
	l := value.NewList([]value.Value{value.Int(1), value.Int(2), value.Int(3)})
	_, err := builtinReverse([]value.Value{l})
	require.NoError(t, err)
	first, _ := l.At(0)
	assert.Equal(t, value.Int(3), first)
}

func TestSum_AllIntStaysInt(t *testing.T) {
	l := value.NewList([]value.Value{value.Int(1), value.Int(2), value.Int(3)})
	v, err := builtinSum([]value.Value{l})
	require.NoError(t, err)
	assert.Equal(t, value.Int(6), v)
}

func TestSum_AnyFloatPromotes(t *testing.T) {
	l := value.NewList([]value.Value{value.Int(1), value.Float(2.5)})
	v, err := builtinSum([]value.Value{l})
	require.NoError(t, err)
	assert.Equal(t, value.Float(3.5), v)
}

func TestChr_RejectsSurrogateRange(t *testing.T) {
	_, err := builtinChr([]value.Value{value.Int(0xD800)})
	require.Error(t, err)
}

func TestChr_RoundTripsWithOrd(t *testing.T) {
	c, err := builtinChr([]value.Value{value.Int(65)})
	require.NoError(t, err)
	n, err := builtinOrd([]value.Value{c})
	require.NoError(t, err)
	assert.Equal(t, value.Int(65), n)
}

func TestToInt_ParsesTrimmedString(t *testing.T) {
	v, err := builtinToInt([]value.Value{value.NewString("  42  ")})
	require.NoError(t, err)
	assert.Equal(t, value.Int(42), v)
}

func TestToFloat_InvalidFormatErrors(t *testing.T) {
	_, err := builtinToFloat([]value.Value{value.NewString("not a number")})
	require.Error(t, err)
}

func TestLike_GlobMatchesWithColonSeparator(t *testing.T) {
	v, err := builtinLike([]value.Value{value.NewString("room:kitchen"), value.NewString("room:*")})
	require.NoError(t, err)
	assert.Equal(t, value.Bool(true), v)
}

func TestRegistry_HasReportsRegisteredBuiltins(t *testing.T) {
	r := NewRegistry(nil)
	assert.True(t, r.Has("print"))
	assert.False(t, r.Has("not_a_builtin"))
}
