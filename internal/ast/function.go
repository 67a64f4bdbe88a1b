// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package ast

import "github.com/holomush/scriptlang/internal/value"

// ParamArgContainer is the runtime shape of the right-recursive ParamList
// and ArgList rules after the parser flattens them: Names is populated when
// built from ParamList, Args when built from ArgList. It is never evaluated
// directly — FunctionDef/FunctionCall/NewExpr/MethodCall consume it and
// discard it during their own build step.
type ParamArgContainer struct {
	Names []string
	Args  []Node
}

func (*ParamArgContainer) Evaluate(Env) (value.Value, error) { return value.Void{}, nil }
func (*ParamArgContainer) Text() (string, bool)               { return "", false }

// FunctionDef registers a function in the current frame and evaluates to Void.
type FunctionDef struct {
	Name   string
	Params []string
	Body   Node
	Line   int
}

func (f *FunctionDef) Evaluate(env Env) (value.Value, error) {
	env.DefineFunction(&FunctionDecl{Name: f.Name, Params: f.Params, Body: f.Body, Line: f.Line})
	return value.Void{}, nil
}

func (f *FunctionDef) Text() (string, bool) { return "", false }

// FunctionCall evaluates its arguments left-to-right in the caller's
// environment, then dispatches: built-ins first, then user functions.
type FunctionCall struct {
	Name string
	Args []Node
	Line int
}

func (c *FunctionCall) Evaluate(env Env) (value.Value, error) {
	argVals, err := evalArgs(env, c.Args)
	if err != nil {
		return nil, err
	}

	if v, found, err := env.CallBuiltin(c.Name, argVals); found {
		return v, err
	}

	v, found, err := env.CallFunction(c.Name, argVals, c.Line)
	if !found {
		return nil, NewRuntimeError("Function '%s' not found", c.Name)
	}
	return v, err
}

func (c *FunctionCall) Text() (string, bool) { return "", false }

func evalArgs(env Env, nodes []Node) ([]value.Value, error) {
	out := make([]value.Value, 0, len(nodes))
	for _, n := range nodes {
		v, err := n.Evaluate(env)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
