// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package eval

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holomush/scriptlang/internal/ast"
	"github.com/holomush/scriptlang/internal/builtin"
	"github.com/holomush/scriptlang/internal/value"
)

func lit(v value.Value) ast.Node { return &ast.Literal{Val: v} }

// Fibonacci(n) via recursive user function: the minimal program exercising
// FunctionDef, FunctionCall, If/Return, and BinaryArith together.
func TestRun_RecursiveFibonacci(t *testing.T) {
	fibBody := &ast.If{
		Condition: &ast.Comparison{Op: "<", Left: &ast.Variable{Name: "n"}, Right: lit(value.Int(2))},
		Then:      &ast.Return{Value: &ast.Variable{Name: "n"}},
		Else: &ast.Return{Value: &ast.BinaryArith{
			Op: "+",
			Left: &ast.FunctionCall{Name: "fib", Args: []ast.Node{
				&ast.BinaryArith{Op: "-", Left: &ast.Variable{Name: "n"}, Right: lit(value.Int(1))},
			}},
			Right: &ast.FunctionCall{Name: "fib", Args: []ast.Node{
				&ast.BinaryArith{Op: "-", Left: &ast.Variable{Name: "n"}, Right: lit(value.Int(2))},
			}},
		}},
	}
	program := &ast.Program{Stmts: []ast.Node{
		&ast.FunctionDef{Name: "fib", Params: []string{"n"}, Body: fibBody, Line: 1},
		&ast.FunctionCall{Name: "fib", Args: []ast.Node{lit(value.Int(10))}, Line: 2},
	}}

	v, err := Run(context.Background(), program, builtin.NewRegistry(nil))
	require.NoError(t, err)
	assert.Equal(t, value.Int(55), v)
}

// A class whose field holds a List: the method mutates that List through
// `this`, and the caller observes the same shared Object afterward — field
// mutation goes through a container's own methods, never field assignment.
func TestRun_MethodMutatesFieldContainerThroughThis(t *testing.T) {
	addMethod := &ast.FunctionDecl{
		Name:   "add",
		Params: []string{"x"},
		Body: &ast.FunctionCall{Name: "append", Args: []ast.Node{
			&ast.MemberAccess{Object: &ast.SelfReference{}, Member: "items"},
			&ast.Variable{Name: "x"},
		}},
	}
	program := &ast.Program{Stmts: []ast.Node{
		&ast.ClassDef{
			Name:    "Bag",
			Fields:  []string{"items"},
			Methods: map[string]*ast.FunctionDecl{"add": addMethod},
		},
		&ast.Assignment{Name: "bag", Value: &ast.NewExpr{ClassName: "Bag", Args: []ast.Node{&ast.ListLiteral{}}}},
		&ast.MethodCall{Object: &ast.Variable{Name: "bag"}, Method: "add", Args: []ast.Node{lit(value.Int(7))}},
		&ast.MemberAccess{Object: &ast.Variable{Name: "bag"}, Member: "items"},
	}}

	v, err := Run(context.Background(), program, builtin.NewRegistry(nil))
	require.NoError(t, err)
	list, ok := v.(*value.List)
	require.True(t, ok)
	assert.Equal(t, 1, list.Len())
	first, _ := list.At(0)
	assert.Equal(t, value.Int(7), first)
}

// calc.multiply(5) where multiply returns x * this.factor.
func TestRun_ClassMethodReadsThisField(t *testing.T) {
	multiply := &ast.FunctionDecl{
		Name:   "multiply",
		Params: []string{"x"},
		Body: &ast.Return{Value: &ast.BinaryArith{
			Op:    "*",
			Left:  &ast.Variable{Name: "x"},
			Right: &ast.MemberAccess{Object: &ast.SelfReference{}, Member: "factor"},
		}},
	}
	program := &ast.Program{Stmts: []ast.Node{
		&ast.ClassDef{
			Name:    "Calculator",
			Fields:  []string{"factor"},
			Methods: map[string]*ast.FunctionDecl{"multiply": multiply},
		},
		&ast.Assignment{Name: "calc", Value: &ast.NewExpr{ClassName: "Calculator", Args: []ast.Node{lit(value.Int(2))}}},
		&ast.MethodCall{Object: &ast.Variable{Name: "calc"}, Method: "multiply", Args: []ast.Node{lit(value.Int(5))}},
	}}

	v, err := Run(context.Background(), program, builtin.NewRegistry(nil))
	require.NoError(t, err)
	assert.Equal(t, value.Int(10), v)
}

func TestRun_UndefinedFunctionIsRuntimeError(t *testing.T) {
	program := &ast.Program{Stmts: []ast.Node{
		&ast.FunctionCall{Name: "nope", Line: 1},
	}}
	_, err := Run(context.Background(), program, builtin.NewRegistry(nil))
	require.Error(t, err)
}

func TestRun_StackTraceAccumulatesInnermostFirst(t *testing.T) {
	inner := &ast.FunctionDef{Name: "inner", Body: &ast.Return{Value: &ast.BinaryArith{
		Op: "/", Left: lit(value.Int(1)), Right: lit(value.Int(0)),
	}}, Line: 1}
	outer := &ast.FunctionDef{Name: "outer", Body: &ast.Return{Value: &ast.FunctionCall{Name: "inner", Line: 10}}, Line: 1}
	program := &ast.Program{Stmts: []ast.Node{
		inner, outer,
		&ast.FunctionCall{Name: "outer", Line: 20},
	}}

	_, err := Run(context.Background(), program, builtin.NewRegistry(nil))
	require.Error(t, err)
	rerr, ok := err.(*ast.RuntimeError)
	require.True(t, ok)
	require.Len(t, rerr.StackTrace, 2)
	assert.Equal(t, "at inner:10", rerr.StackTrace[0])
	assert.Equal(t, "at outer:20", rerr.StackTrace[1])
}

// Reference semantics: aliasing a List and mutating through one name is
// visible through the other, since Assignment never clones.
func TestRun_ListAssignmentSharesReference(t *testing.T) {
	program := &ast.Program{Stmts: []ast.Node{
		&ast.Assignment{Name: "a", Value: &ast.ListLiteral{Elements: []ast.Node{lit(value.Int(1))}}},
		&ast.Assignment{Name: "b", Value: &ast.Variable{Name: "a"}},
		&ast.FunctionCall{Name: "append", Args: []ast.Node{&ast.Variable{Name: "b"}, lit(value.Int(2))}},
		&ast.Variable{Name: "a"},
	}}
	v, err := Run(context.Background(), program, builtin.NewRegistry(nil))
	require.NoError(t, err)
	assert.Equal(t, 2, v.(*value.List).Len())
}

// For-loop snapshot: appending to the iterable inside the loop body must
// not extend iteration.
func TestRun_ForLoopSnapshotsIterableAtStart(t *testing.T) {
	program := &ast.Program{Stmts: []ast.Node{
		&ast.Assignment{Name: "xs", Value: &ast.ListLiteral{Elements: []ast.Node{lit(value.Int(1)), lit(value.Int(2))}}},
		&ast.Assignment{Name: "seen", Value: &ast.ListLiteral{}},
		&ast.For{
			Var:      "x",
			Iterable: &ast.Variable{Name: "xs"},
			Body: &ast.Block{Stmts: []ast.Node{
				&ast.FunctionCall{Name: "append", Args: []ast.Node{&ast.Variable{Name: "xs"}, lit(value.Int(99))}},
				&ast.FunctionCall{Name: "append", Args: []ast.Node{&ast.Variable{Name: "seen"}, &ast.Variable{Name: "x"}}},
			}},
		},
		&ast.Variable{Name: "seen"},
	}}
	v, err := Run(context.Background(), program, builtin.NewRegistry(nil))
	require.NoError(t, err)
	assert.Equal(t, 2, v.(*value.List).Len())
}
