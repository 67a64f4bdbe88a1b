// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package value

import "math"

// floatEpsilon is the machine epsilon for float64, used as the tolerance for
// Float/Float equality instead of exact bit comparison.
const floatEpsilon = 2.220446049250313e-16

// Equal implements structural equality for scalars; contents
// compared recursively for String/List/Map/Object. Cross-kind comparisons
// are unequal except Int<->Float, which compare numerically.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Int:
		switch bv := b.(type) {
		case Int:
			return av == bv
		case Float:
			return Float(av) == bv
		default:
			return false
		}
	case Float:
		switch bv := b.(type) {
		case Int:
			return av == Float(bv)
		case Float:
			return math.Abs(float64(av)-float64(bv)) < floatEpsilon
		default:
			return false
		}
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case *Str:
		bv, ok := b.(*Str)
		return ok && av.Equal(bv)
	case *List:
		bv, ok := b.(*List)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equal(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *Map:
		bv, ok := b.(*Map)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for k, v := range av.entries {
			other, exists := bv.entries[k]
			if !exists || !Equal(v, other) {
				return false
			}
		}
		return true
	case *Object:
		bv, ok := b.(*Object)
		if !ok || av.ClassName != bv.ClassName || len(av.Fields) != len(bv.Fields) {
			return false
		}
		for k, v := range av.Fields {
			other, exists := bv.Fields[k]
			if !exists || !Equal(v, other) {
				return false
			}
		}
		return true
	case Void:
		_, ok := b.(Void)
		return ok
	default:
		return false
	}
}
