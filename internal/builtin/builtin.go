// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package builtin implements the closed library of built-in functions
// print, len, append, get, set, keys, range, slice, split,
// join, sort, reverse, abs, to_int, to_float, ord, chr, read_file, sum, and
// the supplemental like(). Every built-in has the shape Fn: it receives the
// already-evaluated argument list and returns a value or a *ast.RuntimeError.
package builtin

import (
	"github.com/holomush/scriptlang/internal/ast"
	"github.com/holomush/scriptlang/internal/value"
)

// Fn is the shape every built-in function has: evaluated args in, a value
// or runtime error out.
type Fn func(args []value.Value) (value.Value, error)

// Registry maps built-in names to their implementations plus the output
// sink print uses, so a Frame (internal/eval) can look one up by
// name without every built-in closing over global state.
type Registry struct {
	fns map[string]Fn
	out *OutputSink
}

// NewRegistry builds the standard library against out, a swappable output
// sink. Passing a nil out installs Stdout.
func NewRegistry(out *OutputSink) *Registry {
	if out == nil {
		out = NewStdoutSink()
	}
	r := &Registry{fns: make(map[string]Fn), out: out}
	r.register("print", r.print)
	r.register("len", builtinLen)
	r.register("append", builtinAppend)
	r.register("get", builtinGet)
	r.register("set", builtinSet)
	r.register("keys", builtinKeys)
	r.register("range", builtinRange)
	r.register("slice", builtinSlice)
	r.register("split", builtinSplit)
	r.register("join", builtinJoin)
	r.register("sort", builtinSort)
	r.register("reverse", builtinReverse)
	r.register("abs", builtinAbs)
	r.register("to_int", builtinToInt)
	r.register("to_float", builtinToFloat)
	r.register("ord", builtinOrd)
	r.register("chr", builtinChr)
	r.register("read_file", builtinReadFile)
	r.register("sum", builtinSum)
	r.register("like", builtinLike)
	return r
}

func (r *Registry) register(name string, fn Fn) {
	r.fns[name] = func(args []value.Value) (value.Value, error) {
		callsTotal.WithLabelValues(name).Inc()
		v, err := fn(args)
		if err != nil {
			errorsTotal.WithLabelValues(name).Inc()
		}
		return v, err
	}
}

// Call invokes the named built-in if one exists.
func (r *Registry) Call(name string, args []value.Value) (value.Value, bool, error) {
	fn, ok := r.fns[name]
	if !ok {
		return nil, false, nil
	}
	v, err := fn(args)
	return v, true, err
}

// Has reports whether name is a registered built-in, for dispatch ordering
// (built-ins are checked before user-defined functions).
func (r *Registry) Has(name string) bool {
	_, ok := r.fns[name]
	return ok
}

func arityError(name string, want string, got int) error {
	return ast.NewRuntimeError("%s expects %s argument(s), got %d", name, want, got)
}
