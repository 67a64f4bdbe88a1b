// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package ast

import "github.com/holomush/scriptlang/internal/value"

// ClassDef registers a class (ordered fields plus a method table) in the
// current frame and evaluates to Void.
type ClassDef struct {
	Name    string
	Fields  []string
	Methods map[string]*FunctionDecl
}

func (c *ClassDef) Evaluate(env Env) (value.Value, error) {
	env.DefineClass(&ClassDecl{Name: c.Name, Fields: c.Fields, Methods: c.Methods})
	return value.Void{}, nil
}

func (c *ClassDef) Text() (string, bool) { return "", false }

// FieldDef and MethodDef are consumed entirely by ClassDef's builder step
// and never evaluated as part of a running program; their Evaluate is a
// no-op in case a grammar ever reaches one directly.
type FieldDef struct{ Name string }

func (*FieldDef) Evaluate(Env) (value.Value, error) { return value.Void{}, nil }
func (*FieldDef) Text() (string, bool)               { return "", false }

type MethodDef struct {
	Name   string
	Params []string
	Body   Node
	Line   int
}

func (*MethodDef) Evaluate(Env) (value.Value, error) { return value.Void{}, nil }
func (*MethodDef) Text() (string, bool)               { return "", false }

// NewExpr constructs an Object: look up the class, check arity against its
// field count, evaluate arguments, and bind them positionally.
type NewExpr struct {
	ClassName string
	Args      []Node
	Line      int
}

func (n *NewExpr) Evaluate(env Env) (value.Value, error) {
	args, err := evalArgs(env, n.Args)
	if err != nil {
		return nil, err
	}
	return env.NewObject(n.ClassName, args, n.Line)
}

func (n *NewExpr) Text() (string, bool) { return "", false }

// MemberAccess reads a field off an Object receiver.
type MemberAccess struct {
	Object Node
	Member string
}

func (m *MemberAccess) Evaluate(env Env) (value.Value, error) {
	recv, err := m.Object.Evaluate(env)
	if err != nil {
		return nil, err
	}
	obj, ok := recv.(*value.Object)
	if !ok {
		return nil, NewRuntimeError("cannot access member '%s' on non-object %s", m.Member, recv.Kind())
	}
	v, ok := obj.Field(m.Member)
	if !ok {
		return nil, NewRuntimeError("object of class '%s' has no field '%s'", obj.ClassName, m.Member)
	}
	return v, nil
}

func (m *MemberAccess) Text() (string, bool) { return "", false }

// MethodCall dispatches by the receiver's recorded class name, binding
// `this` to the same shared Object for the duration of the call.
type MethodCall struct {
	Object Node
	Method string
	Args   []Node
	Line   int
}

func (c *MethodCall) Evaluate(env Env) (value.Value, error) {
	recv, err := c.Object.Evaluate(env)
	if err != nil {
		return nil, err
	}
	if _, ok := recv.(*value.Object); !ok {
		return nil, NewRuntimeError("cannot call method '%s' on non-object %s", c.Method, recv.Kind())
	}
	args, err := evalArgs(env, c.Args)
	if err != nil {
		return nil, err
	}
	return env.CallMethod(recv, c.Method, args, c.Line)
}

func (c *MethodCall) Text() (string, bool) { return "", false }

// PostfixSuffix is a builder-internal intermediate: the result of matching
// one PostfixSuffix production, before Postfix folds a sequence of these
// onto its leading Atom into nested MemberAccess/MethodCall nodes. It is
// exported because the parser package's builder constructs it, but it is
// never evaluated — Postfix discards it once folded.
type PostfixSuffix struct {
	HasMember bool
	Member    string
	Method    string
	Args      []Node
}

func (*PostfixSuffix) Evaluate(Env) (value.Value, error) { return value.Void{}, nil }
func (*PostfixSuffix) Text() (string, bool)               { return "", false }
