// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package builtin

import (
	"github.com/holomush/scriptlang/internal/ast"
	"github.com/holomush/scriptlang/internal/value"
)

func builtinLen(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError("len", "1", len(args))
	}
	switch t := args[0].(type) {
	case *value.Str:
		return value.Int(t.Len()), nil
	case *value.List:
		return value.Int(t.Len()), nil
	case *value.Map:
		return value.Int(t.Len()), nil
	default:
		return nil, ast.NewRuntimeError("len expects a string, list, or map, got %s", args[0].Kind())
	}
}

func builtinAppend(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityError("append", "2", len(args))
	}
	switch t := args[0].(type) {
	case *value.List:
		t.AppendValue(args[1])
		return value.Void{}, nil
	case *value.Str:
		other, ok := args[1].(*value.Str)
		if !ok {
			return nil, ast.NewRuntimeError("second argument to append for String must be a String, got %s", args[1].Kind())
		}
		t.Append(other.String())
		return value.Void{}, nil
	default:
		return nil, ast.NewRuntimeError("first argument to append must be a List or String, got %s", args[0].Kind())
	}
}

// builtinGet reads List[Int], String[Int], or Map[String]. A missing Map
// key returns Void rather than erroring (grounded on the original get.rs:
// Some(val) => val.clone(), None => Value::Void).
func builtinGet(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityError("get", "2", len(args))
	}
	switch t := args[0].(type) {
	case *value.List:
		idx, ok := args[1].(value.Int)
		if !ok {
			return nil, ast.NewRuntimeError("second argument to get for List must be an Int, got %s", args[1].Kind())
		}
		v, ok := t.At(int(idx))
		if !ok {
			return nil, ast.NewRuntimeError("index %d out of bounds (len %d)", idx, t.Len())
		}
		return v, nil
	case *value.Str:
		idx, ok := args[1].(value.Int)
		if !ok {
			return nil, ast.NewRuntimeError("second argument to get for String must be an Int, got %s", args[1].Kind())
		}
		r, ok := t.At(int(idx))
		if !ok {
			return nil, ast.NewRuntimeError("index %d out of bounds (len %d)", idx, t.Len())
		}
		return value.NewString(string(r)), nil
	case *value.Map:
		key, ok := args[1].(*value.Str)
		if !ok {
			return nil, ast.NewRuntimeError("second argument to get for Map must be a String, got %s", args[1].Kind())
		}
		v, ok := t.Get(key.String())
		if !ok {
			return value.Void{}, nil
		}
		return v, nil
	default:
		return nil, ast.NewRuntimeError("get expects a List, String, or Map, got %s", args[0].Kind())
	}
}

// builtinSet writes List[Int]=v, Map[String]=v (insert or overwrite), or
// String[Int]=single-character String, in place.
func builtinSet(args []value.Value) (value.Value, error) {
	if len(args) != 3 {
		return nil, arityError("set", "3", len(args))
	}
	switch t := args[0].(type) {
	case *value.List:
		idx, ok := args[1].(value.Int)
		if !ok {
			return nil, ast.NewRuntimeError("second argument to set for List must be an Int, got %s", args[1].Kind())
		}
		if !t.SetAt(int(idx), args[2]) {
			return nil, ast.NewRuntimeError("index %d out of bounds (len %d)", idx, t.Len())
		}
		return value.Void{}, nil
	case *value.Map:
		key, ok := args[1].(*value.Str)
		if !ok {
			return nil, ast.NewRuntimeError("second argument to set for Map must be a String, got %s", args[1].Kind())
		}
		t.Set(key.String(), args[2])
		return value.Void{}, nil
	case *value.Str:
		idx, ok := args[1].(value.Int)
		if !ok {
			return nil, ast.NewRuntimeError("second argument to set for String must be an Int, got %s", args[1].Kind())
		}
		repl, ok := args[2].(*value.Str)
		if !ok || repl.Len() != 1 {
			return nil, ast.NewRuntimeError("third argument to set for String must be a single-character String")
		}
		r, _ := repl.At(0)
		if !t.SetAt(int(idx), r) {
			return nil, ast.NewRuntimeError("index %d out of bounds (len %d)", idx, t.Len())
		}
		return value.Void{}, nil
	default:
		return nil, ast.NewRuntimeError("set expects a List, String, or Map, got %s", args[0].Kind())
	}
}

func builtinKeys(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError("keys", "1", len(args))
	}
	m, ok := args[0].(*value.Map)
	if !ok {
		return nil, ast.NewRuntimeError("keys expects a Map, got %s", args[0].Kind())
	}
	keys := m.Keys()
	out := make([]value.Value, len(keys))
	for i, k := range keys {
		out[i] = value.NewString(k)
	}
	return value.NewList(out), nil
}

func builtinRange(args []value.Value) (value.Value, error) {
	var start, end value.Int
	switch len(args) {
	case 1:
		n, ok := args[0].(value.Int)
		if !ok {
			return nil, ast.NewRuntimeError("range expects Int arguments, got %s", args[0].Kind())
		}
		start, end = 0, n
	case 2:
		s, ok1 := args[0].(value.Int)
		e, ok2 := args[1].(value.Int)
		if !ok1 || !ok2 {
			return nil, ast.NewRuntimeError("range expects Int arguments")
		}
		start, end = s, e
	default:
		return nil, arityError("range", "1 or 2", len(args))
	}
	out := make([]value.Value, 0, maxInt(0, int(end-start)))
	for i := start; i < end; i++ {
		out = append(out, i)
	}
	return value.NewList(out), nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// builtinSlice returns a half-open [start,end) slice of a String or List,
// with negative indices clamped against len the way normalize_index does
// in the original slice.rs.
func builtinSlice(args []value.Value) (value.Value, error) {
	if len(args) != 3 {
		return nil, arityError("slice", "3", len(args))
	}
	start, ok1 := args[1].(value.Int)
	end, ok2 := args[2].(value.Int)
	if !ok1 || !ok2 {
		return nil, ast.NewRuntimeError("slice expects Int indices for start and end")
	}
	switch t := args[0].(type) {
	case *value.Str:
		n := t.Len()
		s, e := normalizeIndex(int(start), n), normalizeIndex(int(end), n)
		if s < 0 || e < 0 || s > n || e > n || s > e {
			return nil, ast.NewRuntimeError("slice indices out of bounds: start=%d, end=%d, len=%d", s, e, n)
		}
		return t.Slice(s, e), nil
	case *value.List:
		n := t.Len()
		s, e := normalizeIndex(int(start), n), normalizeIndex(int(end), n)
		if s < 0 || e < 0 || s > n || e > n || s > e {
			return nil, ast.NewRuntimeError("slice indices out of bounds: start=%d, end=%d, len=%d", s, e, n)
		}
		out := make([]value.Value, e-s)
		for i := s; i < e; i++ {
			v, _ := t.At(i)
			out[i-s] = v
		}
		return value.NewList(out), nil
	default:
		return nil, ast.NewRuntimeError("slice expects a String or List as first argument, got %s", args[0].Kind())
	}
}

func normalizeIndex(idx, length int) int {
	if idx < 0 {
		if n := length + idx; n > 0 {
			return n
		}
		return 0
	}
	if idx > length {
		return length
	}
	return idx
}

func builtinSplit(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityError("split", "2", len(args))
	}
	s, ok1 := args[0].(*value.Str)
	delim, ok2 := args[1].(*value.Str)
	if !ok1 || !ok2 {
		return nil, ast.NewRuntimeError("split expects two Strings (string, delimiter)")
	}
	parts := s.Split(delim.String())
	out := make([]value.Value, len(parts))
	for i, p := range parts {
		out[i] = value.NewString(p)
	}
	return value.NewList(out), nil
}

func builtinJoin(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityError("join", "2", len(args))
	}
	list, ok1 := args[0].(*value.List)
	delim, ok2 := args[1].(*value.Str)
	if !ok1 || !ok2 {
		return nil, ast.NewRuntimeError("join expects a List and a String delimiter")
	}
	parts := make([]string, list.Len())
	for i := 0; i < list.Len(); i++ {
		v, _ := list.At(i)
		switch t := v.(type) {
		case *value.Str:
			parts[i] = t.String()
		case value.Int, value.Float, value.Bool:
			parts[i] = value.Format(t)
		default:
			return nil, ast.NewRuntimeError("join: list elements must be strings or convertible to strings, got %s", v.Kind())
		}
	}
	result := ""
	for i, p := range parts {
		if i > 0 {
			result += delim.String()
		}
		result += p
	}
	return value.NewString(result), nil
}

func builtinReverse(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError("reverse", "1", len(args))
	}
	l, ok := args[0].(*value.List)
	if !ok {
		return nil, ast.NewRuntimeError("reverse expects a List, got %s", args[0].Kind())
	}
	for i, j := 0, l.Len()-1; i < j; i, j = i+1, j-1 {
		vi, _ := l.At(i)
		vj, _ := l.At(j)
		l.SetAt(i, vj)
		l.SetAt(j, vi)
	}
	return value.Void{}, nil
}
