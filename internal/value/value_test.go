// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package value_test

import (
	"testing"

	"github.com/holomush/scriptlang/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_Scalars(t *testing.T) {
	assert.Equal(t, "42", value.Format(value.Int(42)))
	assert.Equal(t, "3.5", value.Format(value.Float(3.5)))
	assert.Equal(t, "true", value.Format(value.Bool(true)))
	assert.Equal(t, "false", value.Format(value.Bool(false)))
	assert.Equal(t, "(void)", value.Format(value.Void{}))
}

func TestFormat_StringRaw(t *testing.T) {
	assert.Equal(t, "hello", value.Format(value.NewString("hello")))
}

func TestFormat_ListNestedStringsUnquoted(t *testing.T) {
	list := value.NewList([]value.Value{
		value.Int(1),
		value.Int(2),
		value.NewString("Fizz"),
		value.Int(4),
		value.NewString("Buzz"),
	})
	assert.Equal(t, "[1, 2, Fizz, 4, Buzz]", value.Format(list))
}

func TestFormat_MapSortedKeys(t *testing.T) {
	m := value.NewMap()
	m.Set("b", value.Int(2))
	m.Set("a", value.Int(1))
	assert.Equal(t, "{a: 1, b: 2}", value.Format(m))
}

func TestFormat_Object(t *testing.T) {
	obj := value.NewObject("Calculator", map[string]value.Value{"factor": value.Int(2)})
	assert.Equal(t, "<Object Calculator>", value.Format(obj))
}

func TestEqual_CrossKindIntFloat(t *testing.T) {
	assert.True(t, value.Equal(value.Int(2), value.Float(2.0)))
	assert.False(t, value.Equal(value.Int(2), value.NewString("2")))
}

func TestEqual_StringContents(t *testing.T) {
	a := value.NewString("hi")
	b := value.NewString("hi")
	assert.True(t, value.Equal(a, b))
	b.SetAt(0, 'H')
	assert.False(t, value.Equal(a, b))
}

func TestEqual_ListAndMapRecursive(t *testing.T) {
	l1 := value.NewList([]value.Value{value.Int(1), value.NewString("x")})
	l2 := value.NewList([]value.Value{value.Int(1), value.NewString("x")})
	assert.True(t, value.Equal(l1, l2))

	m1 := value.NewMap()
	m1.Set("k", value.Int(1))
	m2 := value.NewMap()
	m2.Set("k", value.Int(1))
	assert.True(t, value.Equal(m1, m2))
}

func TestReferenceSemantics_ListAliasing(t *testing.T) {
	l := value.NewList([]value.Value{value.Int(1)})
	var alias value.Value = l
	mutate := func(v value.Value) {
		asList, ok := v.(*value.List)
		require.True(t, ok)
		asList.AppendValue(value.Int(2))
	}
	mutate(alias)
	assert.Equal(t, 2, l.Len())
}

func TestListSnapshot_InsulatesFromMutation(t *testing.T) {
	l := value.NewList([]value.Value{value.Int(1), value.Int(2)})
	snap := l.Snapshot()
	l.AppendValue(value.Int(3))
	assert.Len(t, snap, 2)
	assert.Equal(t, 3, l.Len())
}

func TestStr_CodePointIndexing(t *testing.T) {
	s := value.NewString("héllo")
	assert.Equal(t, 5, s.Len())
	r, ok := s.At(1)
	require.True(t, ok)
	assert.Equal(t, 'é', r)
}
