// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package value implements the runtime's closed tagged-union value model:
// Int, Float, Bool, String, List, Map, Object, and Void. String, List, Map,
// and Object have reference semantics — copying a Value of one of those
// kinds aliases the same underlying storage, and Go's own interface/pointer
// assignment semantics give us that for free, so there is no explicit
// "clone" step anywhere in this package.
package value

import "fmt"

// Kind identifies which alternative of the closed value union a Value holds.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindBool
	KindString
	KindList
	KindMap
	KindObject
	KindVoid
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindBool:
		return "Bool"
	case KindString:
		return "String"
	case KindList:
		return "List"
	case KindMap:
		return "Map"
	case KindObject:
		return "Object"
	case KindVoid:
		return "Void"
	default:
		return "Unknown"
	}
}

// Value is implemented by every member of the closed value union.
type Value interface {
	Kind() Kind
}

// Int is a signed 32-bit integer value. Arithmetic on Int wraps using Go's
// native int32 overflow behavior.
type Int int32

func (Int) Kind() Kind { return KindInt }

// Float is an IEEE 754 double.
type Float float64

func (Float) Kind() Kind { return KindFloat }

// Bool is a boolean.
type Bool bool

func (Bool) Kind() Kind { return KindBool }

// Void is the unit value returned by statements and side-effecting built-ins.
type Void struct{}

func (Void) Kind() Kind { return KindVoid }

// Truthy reports whether v counts as "true" in an If/While condition:
// Bool(true) or a nonzero Int.
func Truthy(v Value) (bool, bool) {
	switch t := v.(type) {
	case Bool:
		return bool(t), true
	case Int:
		return t != 0, true
	default:
		return false, false
	}
}

// TypeError is returned by operations given a value of the wrong Kind.
type TypeError struct {
	Op       string
	Expected string
	Got      Kind
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Op, e.Expected, e.Got)
}
