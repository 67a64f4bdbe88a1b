// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package ast

import "github.com/holomush/scriptlang/internal/value"

// GrammarVersion is stamped into every wire-serialized AST by WrapAST, the
// way the ABAC policy DSL stamps its own compiled ASTs.
const GrammarVersion = "scriptlang/ast/v1"

// WrapAST adds a grammar_version field to an already-serialized AST, for
// storage or transport. Callers use ToWire then WrapAST rather than
// round-tripping a Node through encoding/json directly, since Node is an
// interface with no exported fields of its own to marshal.
func WrapAST(tree map[string]any) map[string]any {
	if tree == nil {
		return map[string]any{"grammar_version": GrammarVersion}
	}
	out := make(map[string]any, len(tree)+1)
	for k, v := range tree {
		out[k] = v
	}
	out["grammar_version"] = GrammarVersion
	return out
}

// ToWire renders n as a JSON-compatible map keyed by node kind, recursing
// into every child Node. Unevaluated builder-internal containers
// (ParamArgContainer, ElementsContainer, PostfixSuffix, and friends) never
// appear in a finished tree, so they have no case here.
func ToWire(n Node) map[string]any {
	switch t := n.(type) {
	case *Program:
		return map[string]any{"kind": "Program", "stmts": toWireList(t.Stmts)}
	case *Block:
		return map[string]any{"kind": "Block", "stmts": toWireList(t.Stmts)}
	case *Assignment:
		return map[string]any{"kind": "Assignment", "name": t.Name, "value": ToWire(t.Value)}
	case *Return:
		return map[string]any{"kind": "Return", "value": ToWire(t.Value)}
	case *If:
		m := map[string]any{"kind": "If", "condition": ToWire(t.Condition), "then": ToWire(t.Then)}
		if t.Else != nil {
			m["else"] = ToWire(t.Else)
		}
		return m
	case *While:
		return map[string]any{"kind": "While", "condition": ToWire(t.Condition), "body": ToWire(t.Body)}
	case *For:
		return map[string]any{"kind": "For", "var": t.Var, "iterable": ToWire(t.Iterable), "body": ToWire(t.Body)}
	case *Logical:
		return map[string]any{"kind": "Logical", "op": t.Op, "left": ToWire(t.Left), "right": ToWire(t.Right)}
	case *Comparison:
		return map[string]any{"kind": "Comparison", "op": t.Op, "left": ToWire(t.Left), "right": ToWire(t.Right)}
	case *BinaryArith:
		return map[string]any{"kind": "BinaryArith", "op": t.Op, "left": ToWire(t.Left), "right": ToWire(t.Right)}
	case *Unary:
		return map[string]any{"kind": "Unary", "op": t.Op, "expr": ToWire(t.Expr)}
	case *Literal:
		return map[string]any{"kind": "Literal", "literal_value": wireValue(t.Val)}
	case *Variable:
		return map[string]any{"kind": "Variable", "name": t.Name}
	case *SelfReference:
		return map[string]any{"kind": "SelfReference"}
	case *FunctionDef:
		params := t.Params
		if params == nil {
			params = []string{}
		}
		return map[string]any{"kind": "FunctionDef", "name": t.Name, "params": params, "body": ToWire(t.Body), "line": t.Line}
	case *FunctionCall:
		return map[string]any{"kind": "FunctionCall", "name": t.Name, "args": toWireList(t.Args), "line": t.Line}
	case *ListLiteral:
		return map[string]any{"kind": "ListLiteral", "elements": toWireList(t.Elements)}
	case *MapLiteral:
		entries := make([]any, len(t.Entries))
		for i, e := range t.Entries {
			entries[i] = map[string]any{"key": e.Key, "value": ToWire(e.Value)}
		}
		return map[string]any{"kind": "MapLiteral", "entries": entries}
	case *ClassDef:
		methods := make(map[string]any, len(t.Methods))
		for name, m := range t.Methods {
			params := m.Params
			if params == nil {
				params = []string{}
			}
			methods[name] = map[string]any{"name": m.Name, "params": params, "body": ToWire(m.Body), "line": m.Line}
		}
		fields := t.Fields
		if fields == nil {
			fields = []string{}
		}
		return map[string]any{"kind": "ClassDef", "name": t.Name, "fields": fields, "methods": methods}
	case *NewExpr:
		return map[string]any{"kind": "NewExpr", "class_name": t.ClassName, "args": toWireList(t.Args), "line": t.Line}
	case *MemberAccess:
		return map[string]any{"kind": "MemberAccess", "object": ToWire(t.Object), "member": t.Member}
	case *MethodCall:
		return map[string]any{"kind": "MethodCall", "object": ToWire(t.Object), "method": t.Method, "args": toWireList(t.Args), "line": t.Line}
	default:
		return map[string]any{"kind": "Unknown"}
	}
}

func toWireList(nodes []Node) []any {
	out := make([]any, len(nodes))
	for i, n := range nodes {
		out[i] = ToWire(n)
	}
	return out
}

func wireValue(v value.Value) map[string]any {
	return map[string]any{"type": v.Kind().String(), "repr": value.Format(v)}
}
