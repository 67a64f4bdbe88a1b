// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package eval implements ast.Env: call frames, function/class registries,
// and built-in dispatch for a running program.
package eval

import (
	"github.com/holomush/scriptlang/internal/ast"
	"github.com/holomush/scriptlang/internal/builtin"
	"github.com/holomush/scriptlang/internal/value"
)

// Frame is one call's variable scope. Functions, Classes, and Builtins are
// shared by reference across every frame spawned from the same program
// run — only Variables is fresh per call.
type Frame struct {
	Variables map[string]value.Value
	Functions map[string]*ast.FunctionDecl
	Classes   map[string]*ast.ClassDecl
	Builtins  *builtin.Registry
}

// NewFrame constructs the top-level frame for a program run.
func NewFrame(builtins *builtin.Registry) *Frame {
	if builtins == nil {
		builtins = builtin.NewRegistry(nil)
	}
	return &Frame{
		Variables: make(map[string]value.Value),
		Functions: make(map[string]*ast.FunctionDecl),
		Classes:   make(map[string]*ast.ClassDecl),
		Builtins:  builtins,
	}
}

// child spawns a new call frame sharing this frame's function/class/builtin
// tables but starting with an empty variable scope.
func (f *Frame) child() *Frame {
	return &Frame{
		Variables: make(map[string]value.Value),
		Functions: f.Functions,
		Classes:   f.Classes,
		Builtins:  f.Builtins,
	}
}

func (f *Frame) GetVariable(name string) (value.Value, bool) {
	v, ok := f.Variables[name]
	return v, ok
}

func (f *Frame) SetVariable(name string, v value.Value) {
	f.Variables[name] = v
}

func (f *Frame) DefineFunction(decl *ast.FunctionDecl) {
	f.Functions[decl.Name] = decl
}

func (f *Frame) DefineClass(decl *ast.ClassDecl) {
	f.Classes[decl.Name] = decl
}

func (f *Frame) CallBuiltin(name string, args []value.Value) (value.Value, bool, error) {
	return f.Builtins.Call(name, args)
}

// CallFunction constructs a fresh frame, binds args positionally to the
// declared parameters, evaluates the body, and unwraps the result: a
// *ast.ReturnSignal becomes a successful (value, nil); any other error gets
// a stack frame appended before propagating.
func (f *Frame) CallFunction(name string, args []value.Value, callLine int) (value.Value, bool, error) {
	decl, ok := f.Functions[name]
	if !ok {
		return nil, false, nil
	}
	v, err := f.invoke(decl, nil, args, callLine)
	return v, true, err
}

// CallMethod resolves receiver's class, binds `this` to receiver in the new
// frame alongside the declared parameters, and evaluates the method body.
func (f *Frame) CallMethod(receiver value.Value, method string, args []value.Value, callLine int) (value.Value, error) {
	obj, ok := receiver.(*value.Object)
	if !ok {
		return nil, ast.NewRuntimeError("cannot call method '%s' on non-object %s", method, receiver.Kind())
	}
	class, ok := f.Classes[obj.ClassName]
	if !ok {
		return nil, ast.NewRuntimeError("class '%s' not found", obj.ClassName)
	}
	decl, ok := class.Methods[method]
	if !ok {
		return nil, ast.NewRuntimeError("class '%s' has no method '%s'", obj.ClassName, method)
	}
	return f.invoke(decl, obj, args, callLine)
}

func (f *Frame) invoke(decl *ast.FunctionDecl, this *value.Object, args []value.Value, callLine int) (value.Value, error) {
	if len(args) != len(decl.Params) {
		return nil, ast.NewRuntimeError("'%s' expects %d argument(s), got %d", decl.Name, len(decl.Params), len(args))
	}
	callee := f.child()
	if this != nil {
		callee.Variables["this"] = this
	}
	for i, p := range decl.Params {
		callee.Variables[p] = args[i]
	}

	v, err := decl.Body.Evaluate(callee)
	if err == nil {
		return v, nil
	}

	if ret, ok := err.(*ast.ReturnSignal); ok {
		return ret.Value, nil
	}
	return nil, ast.PrependFrame(err, decl.Name, callLine)
}

// NewObject looks up className, checks arity against its declared field
// count, and binds args positionally onto a fresh Object.
func (f *Frame) NewObject(className string, args []value.Value, line int) (value.Value, error) {
	class, ok := f.Classes[className]
	if !ok {
		return nil, ast.NewRuntimeError("class '%s' not found", className)
	}
	if len(args) != len(class.Fields) {
		return nil, ast.NewRuntimeError("class '%s' expects %d argument(s), got %d", className, len(class.Fields), len(args))
	}
	fields := make(map[string]value.Value, len(class.Fields))
	for i, name := range class.Fields {
		fields[name] = args[i]
	}
	return value.NewObject(className, fields), nil
}

var _ ast.Env = (*Frame)(nil)
