// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package ast

import "github.com/holomush/scriptlang/internal/value"

// RawToken wraps the literal text a Regex pattern matched. It carries no
// evaluation semantics of its own; parent node constructors consume its
// Text() to build Literal/Variable nodes.
type RawToken struct {
	Raw string
}

func (t *RawToken) Evaluate(Env) (value.Value, error) { return value.Void{}, nil }
func (t *RawToken) Text() (string, bool)               { return t.Raw, true }

// Literal is a constant Int/Float/Bool/String value baked in at parse time.
type Literal struct {
	Val value.Value
}

func (l *Literal) Evaluate(Env) (value.Value, error) { return l.Val, nil }

// Text recovers the literal's string content, for callers (MapEntry keys)
// that need a bare key name from either a string literal or an identifier.
func (l *Literal) Text() (string, bool) {
	if s, ok := l.Val.(*value.Str); ok {
		return s.String(), true
	}
	return "", false
}

// Variable reads (or, as a MapEntry key, names) an identifier.
type Variable struct {
	Name string
}

func (v *Variable) Evaluate(env Env) (value.Value, error) {
	if val, ok := env.GetVariable(v.Name); ok {
		return val, nil
	}
	return nil, NewRuntimeError("Variable '%s' not found", v.Name)
}

func (v *Variable) Text() (string, bool) { return v.Name, true }

// SelfReference evaluates the `this` receiver bound for the duration of a
// method call.
type SelfReference struct{}

func (*SelfReference) Evaluate(env Env) (value.Value, error) {
	if val, ok := env.GetVariable("this"); ok {
		return val, nil
	}
	return nil, NewRuntimeError("'this' used outside of method context")
}

func (*SelfReference) Text() (string, bool) { return "", false }
