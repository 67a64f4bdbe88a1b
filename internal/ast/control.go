// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package ast

import "github.com/holomush/scriptlang/internal/value"

// Program and Block both evaluate their children in order, yielding the
// last child's value (Void if empty); neither introduces a new scope —
// scope changes only at call frames.
type Program struct {
	Stmts []Node
}

func (p *Program) Evaluate(env Env) (value.Value, error) {
	return evalSequence(env, p.Stmts)
}

func (p *Program) Text() (string, bool) { return "", false }

type Block struct {
	Stmts []Node
}

func (b *Block) Evaluate(env Env) (value.Value, error) {
	return evalSequence(env, b.Stmts)
}

func (b *Block) Text() (string, bool) { return "", false }

func evalSequence(env Env, stmts []Node) (value.Value, error) {
	var result value.Value = value.Void{}
	for _, s := range stmts {
		v, err := s.Evaluate(env)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// Assignment evaluates its right-hand side and binds it to Name in the
// current frame, overwriting any existing binding.
type Assignment struct {
	Name  string
	Value Node
}

func (a *Assignment) Evaluate(env Env) (value.Value, error) {
	v, err := a.Value.Evaluate(env)
	if err != nil {
		return nil, err
	}
	env.SetVariable(a.Name, v)
	return value.Void{}, nil
}

func (a *Assignment) Text() (string, bool) { return "", false }

// Return unwinds the enclosing call via ReturnSignal.
type Return struct {
	Value Node
}

func (r *Return) Evaluate(env Env) (value.Value, error) {
	v, err := r.Value.Evaluate(env)
	if err != nil {
		return nil, err
	}
	return nil, &ReturnSignal{Value: v}
}

func (r *Return) Text() (string, bool) { return "", false }

// If evaluates Condition, truthy meaning Bool true or nonzero Int, and
// runs Then or Else accordingly. A missing Else yields Void.
type If struct {
	Condition Node
	Then      Node
	Else      Node // nil if absent
}

func (i *If) Evaluate(env Env) (value.Value, error) {
	c, err := i.Condition.Evaluate(env)
	if err != nil {
		return nil, err
	}
	truthy, ok := value.Truthy(c)
	if !ok {
		return nil, NewRuntimeError("if condition must be Bool or Int, got %s", c.Kind())
	}
	if truthy {
		return i.Then.Evaluate(env)
	}
	if i.Else != nil {
		return i.Else.Evaluate(env)
	}
	return value.Void{}, nil
}

func (i *If) Text() (string, bool) { return "", false }

// While loops Body while Condition is truthy.
type While struct {
	Condition Node
	Body      Node
}

func (w *While) Evaluate(env Env) (value.Value, error) {
	for {
		c, err := w.Condition.Evaluate(env)
		if err != nil {
			return nil, err
		}
		truthy, ok := value.Truthy(c)
		if !ok {
			return nil, NewRuntimeError("while condition must be Bool or Int, got %s", c.Kind())
		}
		if !truthy {
			return value.Void{}, nil
		}
		if _, err := w.Body.Evaluate(env); err != nil {
			return nil, err
		}
	}
}

func (w *While) Text() (string, bool) { return "", false }

// For iterates a List's elements, snapshotted at loop start so appends to
// the iterable during iteration don't extend the loop.
type For struct {
	Var      string
	Iterable Node
	Body     Node
}

func (f *For) Evaluate(env Env) (value.Value, error) {
	iter, err := f.Iterable.Evaluate(env)
	if err != nil {
		return nil, err
	}
	list, ok := iter.(*value.List)
	if !ok {
		return nil, NewRuntimeError("for-loop iterable must be List, got %s", iter.Kind())
	}
	for _, elem := range list.Snapshot() {
		env.SetVariable(f.Var, elem)
		if _, err := f.Body.Evaluate(env); err != nil {
			return nil, err
		}
	}
	return value.Void{}, nil
}

func (f *For) Text() (string, bool) { return "", false }
