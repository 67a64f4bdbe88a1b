// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package builtin

import (
	"sort"

	"github.com/holomush/scriptlang/internal/ast"
	"github.com/holomush/scriptlang/internal/value"
)

// builtinSort sorts a List ascending in place: Int and Float compare
// numerically against each other, String compares lexically, Bool compares
// false<true, and any other pairing is an error (grounded on sort.rs's
// compare_values).
func builtinSort(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError("sort", "1", len(args))
	}
	l, ok := args[0].(*value.List)
	if !ok {
		return nil, ast.NewRuntimeError("sort expects a List, got %s", args[0].Kind())
	}
	if l.Len() == 0 {
		return value.Void{}, nil
	}

	elems := make([]value.Value, l.Len())
	for i := range elems {
		elems[i], _ = l.At(i)
	}

	var sortErr error
	sort.SliceStable(elems, func(i, j int) bool {
		if sortErr != nil {
			return false
		}
		less, err := lessValues(elems[i], elems[j])
		if err != nil {
			sortErr = err
			return false
		}
		return less
	})
	if sortErr != nil {
		return nil, sortErr
	}

	for i, v := range elems {
		l.SetAt(i, v)
	}
	return value.Void{}, nil
}

func lessValues(a, b value.Value) (bool, error) {
	switch x := a.(type) {
	case value.Int:
		switch y := b.(type) {
		case value.Int:
			return x < y, nil
		case value.Float:
			return float64(x) < float64(y), nil
		}
	case value.Float:
		switch y := b.(type) {
		case value.Int:
			return float64(x) < float64(y), nil
		case value.Float:
			return x < y, nil
		}
	case *value.Str:
		if y, ok := b.(*value.Str); ok {
			return x.Compare(y) < 0, nil
		}
	case value.Bool:
		if y, ok := b.(value.Bool); ok {
			return !bool(x) && bool(y), nil
		}
	}
	return false, ast.NewRuntimeError("sort: unable to compare %s and %s", a.Kind(), b.Kind())
}
