// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package ast

import (
	"math"

	"github.com/holomush/scriptlang/internal/value"
)

// Unary applies a prefix operator ("!" or "-") to its operand.
type Unary struct {
	Op   string
	Expr Node
}

func (u *Unary) Evaluate(env Env) (value.Value, error) {
	v, err := u.Expr.Evaluate(env)
	if err != nil {
		return nil, err
	}
	switch u.Op {
	case "!":
		b, ok := v.(value.Bool)
		if !ok {
			return nil, NewRuntimeError("unary '!' requires Bool, got %s", v.Kind())
		}
		return value.Bool(!b), nil
	case "-":
		switch n := v.(type) {
		case value.Int:
			return -n, nil
		case value.Float:
			return -n, nil
		default:
			return nil, NewRuntimeError("unary '-' requires Int or Float, got %s", v.Kind())
		}
	default:
		return nil, NewRuntimeError("unknown unary operator %q", u.Op)
	}
}

func (u *Unary) Text() (string, bool) { return "", false }

// BinaryArith is +, -, *, /, % over Int/Int, Float/Float, or (for +) String/String.
type BinaryArith struct {
	Op          string
	Left, Right Node
}

func (a *BinaryArith) Evaluate(env Env) (value.Value, error) {
	l, err := a.Left.Evaluate(env)
	if err != nil {
		return nil, err
	}
	r, err := a.Right.Evaluate(env)
	if err != nil {
		return nil, err
	}

	if ls, ok := l.(*value.Str); ok && a.Op == "+" {
		rs, ok := r.(*value.Str)
		if !ok {
			return nil, NewRuntimeError("'+' between String and %s is not allowed", r.Kind())
		}
		out := value.NewString(ls.String())
		out.Append(rs.String())
		return out, nil
	}

	li, lIsInt := l.(value.Int)
	ri, rIsInt := r.(value.Int)
	if lIsInt && rIsInt {
		out, err := intArith(a.Op, li, ri)
		if err != nil {
			return nil, err
		}
		return out, nil
	}

	lf, lIsFloat := l.(value.Float)
	rf, rIsFloat := r.(value.Float)
	if lIsFloat && rIsFloat {
		return floatArith(a.Op, lf, rf)
	}

	return nil, NewRuntimeError("'%s' not defined between %s and %s", a.Op, l.Kind(), r.Kind())
}

func (a *BinaryArith) Text() (string, bool) { return "", false }

func intArith(op string, l, r value.Int) (value.Int, error) {
	switch op {
	case "+":
		return l + r, nil
	case "-":
		return l - r, nil
	case "*":
		return l * r, nil
	case "/":
		if r == 0 {
			return 0, NewRuntimeError("division by zero")
		}
		return l / r, nil
	case "%":
		if r == 0 {
			return 0, NewRuntimeError("modulo by zero")
		}
		return l % r, nil
	default:
		return 0, NewRuntimeError("unknown arithmetic operator %q", op)
	}
}

func floatArith(op string, l, r value.Float) (value.Float, error) {
	switch op {
	case "+":
		return l + r, nil
	case "-":
		return l - r, nil
	case "*":
		return l * r, nil
	case "/":
		if r == 0 {
			return 0, NewRuntimeError("division by zero")
		}
		return l / r, nil
	case "%":
		if r == 0 {
			return 0, NewRuntimeError("modulo by zero")
		}
		return value.Float(math.Mod(float64(l), float64(r))), nil
	default:
		return 0, NewRuntimeError("unknown arithmetic operator %q", op)
	}
}

// Comparison is ==, !=, <, > over same-kind operands (Int/Int, Float/Float,
// String/String, Bool/Bool). Mixed-kind equality/inequality compare
// unequal, except Int against Float, which value.Equal compares
// numerically; mixed-kind ordering is an error.
type Comparison struct {
	Op          string
	Left, Right Node
}

func (c *Comparison) Evaluate(env Env) (value.Value, error) {
	l, err := c.Left.Evaluate(env)
	if err != nil {
		return nil, err
	}
	r, err := c.Right.Evaluate(env)
	if err != nil {
		return nil, err
	}

	if c.Op == "==" || c.Op == "!=" {
		eq := value.Equal(l, r)
		if c.Op == "!=" {
			eq = !eq
		}
		return value.Bool(eq), nil
	}

	switch lv := l.(type) {
	case value.Int:
		if rv, ok := r.(value.Int); ok {
			return orderInt(c.Op, int64(lv), int64(rv))
		}
	case value.Float:
		if rv, ok := r.(value.Float); ok {
			return orderFloat(c.Op, float64(lv), float64(rv))
		}
	case *value.Str:
		if rs, ok := r.(*value.Str); ok {
			return orderInt(c.Op, int64(lv.Compare(rs)), 0)
		}
	case value.Bool:
		if rb, ok := r.(value.Bool); ok {
			return orderInt(c.Op, boolRank(lv), boolRank(rb))
		}
	}
	return nil, NewRuntimeError("'%s' not defined between %s and %s", c.Op, l.Kind(), r.Kind())
}

func (c *Comparison) Text() (string, bool) { return "", false }

func boolRank(b value.Bool) int64 {
	if b {
		return 1
	}
	return 0
}

func orderInt(op string, l, r int64) (value.Value, error) {
	switch op {
	case "<":
		return value.Bool(l < r), nil
	case ">":
		return value.Bool(l > r), nil
	default:
		return nil, NewRuntimeError("unknown comparison operator %q", op)
	}
}

func orderFloat(op string, l, r float64) (value.Value, error) {
	switch op {
	case "<":
		return value.Bool(l < r), nil
	case ">":
		return value.Bool(l > r), nil
	default:
		return nil, NewRuntimeError("unknown comparison operator %q", op)
	}
}

// Logical is && or ||, short-circuiting: the right operand is evaluated
// only when the left operand doesn't already decide the result.
type Logical struct {
	Op          string // "&&" or "||"
	Left, Right Node
}

func (g *Logical) Evaluate(env Env) (value.Value, error) {
	l, err := g.Left.Evaluate(env)
	if err != nil {
		return nil, err
	}
	lb, ok := l.(value.Bool)
	if !ok {
		return nil, NewRuntimeError("'%s' requires Bool operands, got %s", g.Op, l.Kind())
	}

	if g.Op == "&&" && !bool(lb) {
		return value.Bool(false), nil
	}
	if g.Op == "||" && bool(lb) {
		return value.Bool(true), nil
	}

	r, err := g.Right.Evaluate(env)
	if err != nil {
		return nil, err
	}
	rb, ok := r.(value.Bool)
	if !ok {
		return nil, NewRuntimeError("'%s' requires Bool operands, got %s", g.Op, r.Kind())
	}
	return rb, nil
}

func (g *Logical) Text() (string, bool) { return "", false }
