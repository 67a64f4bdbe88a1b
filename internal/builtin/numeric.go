// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package builtin

import (
	"strconv"
	"strings"

	"github.com/holomush/scriptlang/internal/ast"
	"github.com/holomush/scriptlang/internal/value"
)

func builtinAbs(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError("abs", "1", len(args))
	}
	switch n := args[0].(type) {
	case value.Int:
		if n < 0 {
			return -n, nil
		}
		return n, nil
	case value.Float:
		if n < 0 {
			return -n, nil
		}
		return n, nil
	default:
		return nil, ast.NewRuntimeError("abs expects a number (Int or Float), got %s", args[0].Kind())
	}
}

func builtinToInt(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError("to_int", "1", len(args))
	}
	switch t := args[0].(type) {
	case value.Int:
		return t, nil
	case value.Float:
		return value.Int(int32(t)), nil
	case *value.Str:
		trimmed := strings.TrimSpace(t.String())
		n, err := strconv.ParseInt(trimmed, 10, 32)
		if err != nil {
			return nil, ast.NewRuntimeError("to_int: invalid number format '%s'", trimmed)
		}
		return value.Int(n), nil
	default:
		return nil, ast.NewRuntimeError("to_int expects a String, Int, or Float, got %s", args[0].Kind())
	}
}

func builtinToFloat(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError("to_float", "1", len(args))
	}
	switch t := args[0].(type) {
	case value.Int:
		return value.Float(t), nil
	case value.Float:
		return t, nil
	case *value.Str:
		trimmed := strings.TrimSpace(t.String())
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, ast.NewRuntimeError("to_float: invalid number format '%s'", trimmed)
		}
		return value.Float(f), nil
	default:
		return nil, ast.NewRuntimeError("to_float expects a String, Int, or Float, got %s", args[0].Kind())
	}
}

func builtinOrd(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError("ord", "1", len(args))
	}
	s, ok := args[0].(*value.Str)
	if !ok {
		return nil, ast.NewRuntimeError("ord expects a String, got %s", args[0].Kind())
	}
	if s.Len() != 1 {
		return nil, ast.NewRuntimeError("ord expects a single character, got string of length %d", s.Len())
	}
	r, _ := s.At(0)
	return value.Int(r), nil
}

const maxUnicodeCodePoint = 1114111

func builtinChr(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError("chr", "1", len(args))
	}
	n, ok := args[0].(value.Int)
	if !ok {
		return nil, ast.NewRuntimeError("chr expects an Int, got %s", args[0].Kind())
	}
	if n < 0 || int(n) > maxUnicodeCodePoint {
		return nil, ast.NewRuntimeError("chr expects a valid Unicode code point (0-%d), got %d", maxUnicodeCodePoint, n)
	}
	r := rune(n)
	if r >= 0xD800 && r <= 0xDFFF {
		return nil, ast.NewRuntimeError("invalid Unicode code point: %d", n)
	}
	return value.NewString(string(r)), nil
}

func builtinSum(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError("sum", "1", len(args))
	}
	l, ok := args[0].(*value.List)
	if !ok {
		return nil, ast.NewRuntimeError("sum expects a List, got %s", args[0].Kind())
	}

	var intSum value.Int
	var floatSum float64
	hasFloat := false
	for i := 0; i < l.Len(); i++ {
		v, _ := l.At(i)
		switch n := v.(type) {
		case value.Int:
			if hasFloat {
				floatSum += float64(n)
			} else {
				intSum += n
			}
		case value.Float:
			if !hasFloat {
				hasFloat = true
				floatSum = float64(intSum) + float64(n)
			} else {
				floatSum += float64(n)
			}
		default:
			return nil, ast.NewRuntimeError("sum expects a List of numbers, got %s", v.Kind())
		}
	}
	if hasFloat {
		return value.Float(floatSum), nil
	}
	return intSum, nil
}
