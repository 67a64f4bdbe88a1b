// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package parser

import (
	"fmt"
	"strconv"

	"github.com/holomush/scriptlang/internal/ast"
	"github.com/holomush/scriptlang/internal/grammar"
	"github.com/holomush/scriptlang/internal/value"
)

// build constructs the AST node for one matched production's children,
// per the closed rule-to-node-kind table. It panics with a
// grammarMismatch when the children a production actually produced don't
// fit the shape its rule name requires; Parser.parse recovers this into
// a plain error rather than letting it escape.
func build(r grammar.Rule, pc *parsedChildren) ast.Node {
	switch r {
	case grammar.RuleProgram:
		return &ast.Program{Stmts: pc.remaining()}

	case grammar.RuleStmt, grammar.RuleExpr, grammar.RuleAtom, grammar.RuleKey,
		grammar.RuleEq, grammar.RuleNeq, grammar.RuleLt, grammar.RuleGt,
		grammar.RuleAdd, grammar.RuleSub, grammar.RuleMul, grammar.RuleDiv, grammar.RuleMod,
		grammar.RuleUnaryOp, grammar.RuleClassMember:
		return mustFirst(pc, r)

	case grammar.RuleAssignment:
		name := textOf(mustTake(pc, "name", r), r)
		return &ast.Assignment{Name: name, Value: mustTake(pc, "value", r)}

	case grammar.RuleReturn:
		return &ast.Return{Value: mustTake(pc, "value", r)}

	case grammar.RuleLogicalAnd, grammar.RuleLogicalOr:
		left, ok := pc.take("left")
		if !ok {
			return mustFirst(pc, r)
		}
		if len(pc.items) == 0 {
			return left
		}
		right := mustTake(pc, "right", r)
		op := "&&"
		if r == grammar.RuleLogicalOr {
			op = "||"
		}
		return &ast.Logical{Op: op, Left: left, Right: right}

	case grammar.RuleComparison:
		left, ok := pc.take("left")
		if !ok {
			return mustFirst(pc, r)
		}
		if len(pc.items) == 0 {
			return left
		}
		op := textOf(mustTake(pc, "op", r), r)
		right := mustTake(pc, "right", r)
		return &ast.Comparison{Op: op, Left: left, Right: right}

	case grammar.RuleTerm, grammar.RuleFactor:
		left, ok := pc.take("left")
		if !ok {
			return mustFirst(pc, r)
		}
		if len(pc.items) == 0 {
			return left
		}
		op := textOf(mustTake(pc, "op", r), r)
		right := mustTake(pc, "right", r)
		return &ast.BinaryArith{Op: op, Left: left, Right: right}

	case grammar.RuleUnary:
		op, ok := pc.take("op")
		if !ok {
			return mustFirst(pc, r)
		}
		if len(pc.items) == 0 {
			return op
		}
		expr := mustTake(pc, "expr", r)
		return &ast.Unary{Op: textOf(op, r), Expr: expr}

	case grammar.RuleIfThen, grammar.RuleIfElse:
		cond := mustTake(pc, "condition", r)
		then := mustTake(pc, "then", r)
		var elseNode ast.Node
		if e, ok := pc.take("else"); ok {
			elseNode = e
		}
		return &ast.If{Condition: cond, Then: then, Else: elseNode}

	case grammar.RuleInt:
		text := textOf(mustFirst(pc, r), r)
		n, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			panic(grammarMismatch(fmt.Sprintf("Int literal %q does not parse: %v", text, err)))
		}
		return &ast.Literal{Val: value.Int(n)}

	case grammar.RuleFloat:
		text := textOf(mustFirst(pc, r), r)
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			panic(grammarMismatch(fmt.Sprintf("Float literal %q does not parse: %v", text, err)))
		}
		return &ast.Literal{Val: value.Float(f)}

	case grammar.RuleString:
		text := textOf(mustFirst(pc, r), r)
		if len(text) >= 2 {
			text = text[1 : len(text)-1]
		}
		return &ast.Literal{Val: value.NewString(text)}

	case grammar.RuleTrue:
		return &ast.Literal{Val: value.Bool(true)}

	case grammar.RuleFalse:
		return &ast.Literal{Val: value.Bool(false)}

	case grammar.RuleIdentifier:
		return &ast.Variable{Name: textOf(mustFirst(pc, r), r)}

	case grammar.RuleSelfReference:
		return &ast.SelfReference{}

	case grammar.RuleFunctionDef:
		name := textOf(mustTake(pc, "name", r), r)
		params := paramNames(pc)
		body := mustTake(pc, "body", r)
		return &ast.FunctionDef{Name: name, Params: params, Body: body, Line: pc.line}

	case grammar.RuleFunctionCall:
		name := textOf(mustTake(pc, "name", r), r)
		args := argNodes(pc)
		return &ast.FunctionCall{Name: name, Args: args, Line: pc.line}

	case grammar.RuleParamList:
		name := textOf(mustTake(pc, "name", r), r)
		names := []string{name}
		if rest, ok := pc.take("rest"); ok {
			names = append(names, mustParamArg(rest, r).Names...)
		}
		return &ast.ParamArgContainer{Names: names}

	case grammar.RuleArgList:
		arg := mustTake(pc, "arg", r)
		args := []ast.Node{arg}
		if rest, ok := pc.take("rest"); ok {
			args = append(args, mustParamArg(rest, r).Args...)
		}
		return &ast.ParamArgContainer{Args: args}

	case grammar.RuleElements:
		val := mustTake(pc, "value", r)
		values := []ast.Node{val}
		if rest, ok := pc.take("rest"); ok {
			ec, ok := rest.(*ast.ElementsContainer)
			if !ok {
				panic(grammarMismatch(fmt.Sprintf("%s: 'rest' child is not an Elements container", r)))
			}
			values = append(values, ec.Values...)
		}
		return &ast.ElementsContainer{Values: values}

	case grammar.RuleListLiteral:
		var elems []ast.Node
		if e, ok := pc.take("elements"); ok {
			ec, ok := e.(*ast.ElementsContainer)
			if !ok {
				panic(grammarMismatch(fmt.Sprintf("%s: 'elements' child is not an Elements container", r)))
			}
			elems = ec.Values
		}
		return &ast.ListLiteral{Elements: elems}

	case grammar.RuleMapEntry:
		key := textOf(mustTake(pc, "key", r), r)
		val := mustTake(pc, "value", r)
		return &ast.MapEntryContainer{Key: key, Value: val}

	case grammar.RuleMapEntries:
		entry := mustTake(pc, "entry", r)
		mec, ok := entry.(*ast.MapEntryContainer)
		if !ok {
			panic(grammarMismatch(fmt.Sprintf("%s: 'entry' child is not a MapEntry", r)))
		}
		entries := []*ast.MapEntryContainer{mec}
		if rest, ok := pc.take("rest"); ok {
			mes, ok := rest.(*ast.MapEntriesContainer)
			if !ok {
				panic(grammarMismatch(fmt.Sprintf("%s: 'rest' child is not a MapEntries container", r)))
			}
			entries = append(entries, mes.Entries...)
		}
		return &ast.MapEntriesContainer{Entries: entries}

	case grammar.RuleMapLiteral:
		var entries []*ast.MapEntryContainer
		if e, ok := pc.take("entries"); ok {
			mes, ok := e.(*ast.MapEntriesContainer)
			if !ok {
				panic(grammarMismatch(fmt.Sprintf("%s: 'entries' child is not a MapEntries container", r)))
			}
			entries = mes.Entries
		}
		return &ast.MapLiteral{Entries: entries}

	case grammar.RuleForLoop:
		v := textOf(mustTake(pc, "var", r), r)
		iterable := mustTake(pc, "iterable", r)
		body := mustTake(pc, "body", r)
		return &ast.For{Var: v, Iterable: iterable, Body: body}

	case grammar.RuleWhileLoop:
		cond := mustTake(pc, "condition", r)
		body := mustTake(pc, "body", r)
		return &ast.While{Condition: cond, Body: body}

	case grammar.RuleBlock:
		return &ast.Block{Stmts: pc.remaining()}

	case grammar.RuleClassDef:
		name := textOf(mustTake(pc, "name", r), r)
		var fields []string
		methods := make(map[string]*ast.FunctionDecl)
		for _, member := range pc.remaining() {
			switch m := member.(type) {
			case *ast.FieldDef:
				fields = append(fields, m.Name)
			case *ast.MethodDef:
				methods[m.Name] = &ast.FunctionDecl{Name: m.Name, Params: m.Params, Body: m.Body, Line: m.Line}
			default:
				panic(grammarMismatch(fmt.Sprintf("%s: class member is neither FieldDef nor MethodDef", r)))
			}
		}
		return &ast.ClassDef{Name: name, Fields: fields, Methods: methods}

	case grammar.RuleFieldDef:
		return &ast.FieldDef{Name: textOf(mustTake(pc, "name", r), r)}

	case grammar.RuleMethodDef:
		name := textOf(mustTake(pc, "name", r), r)
		params := paramNames(pc)
		body := mustTake(pc, "body", r)
		return &ast.MethodDef{Name: name, Params: params, Body: body, Line: pc.line}

	case grammar.RuleNewExpr:
		className := textOf(mustTake(pc, "class", r), r)
		args := argNodes(pc)
		return &ast.NewExpr{ClassName: className, Args: args, Line: pc.line}

	case grammar.RuleMemberAccess:
		obj := mustTake(pc, "object", r)
		member := textOf(mustTake(pc, "member", r), r)
		return &ast.MemberAccess{Object: obj, Member: member}

	case grammar.RuleMethodCall:
		obj := mustTake(pc, "object", r)
		method := textOf(mustTake(pc, "method", r), r)
		args := argNodes(pc)
		return &ast.MethodCall{Object: obj, Method: method, Args: args, Line: pc.line}

	case grammar.RulePostfix:
		current, ok := pc.take("atom")
		if !ok {
			current = mustFirst(pc, r)
		}
		for _, s := range pc.remaining() {
			suf, ok := s.(*ast.PostfixSuffix)
			if !ok {
				panic(grammarMismatch(fmt.Sprintf("%s: suffix child is not a PostfixSuffix", r)))
			}
			if suf.HasMember {
				current = &ast.MemberAccess{Object: current, Member: suf.Member}
			} else {
				current = &ast.MethodCall{Object: current, Method: suf.Method, Args: suf.Args, Line: pc.line}
			}
		}
		return current

	case grammar.RulePostfixSuffix:
		if m, ok := pc.take("member"); ok {
			return &ast.PostfixSuffix{HasMember: true, Member: textOf(m, r)}
		}
		method := textOf(mustTake(pc, "method", r), r)
		return &ast.PostfixSuffix{Method: method, Args: argNodes(pc)}

	default:
		panic(grammarMismatch(fmt.Sprintf("no node-building rule registered for %q", r)))
	}
}

func mustFirst(pc *parsedChildren, r grammar.Rule) ast.Node {
	n, ok := pc.first()
	if !ok {
		panic(grammarMismatch(fmt.Sprintf("%s: expected exactly one child, found none", r)))
	}
	return n
}

func mustTake(pc *parsedChildren, label string, r grammar.Rule) ast.Node {
	n, ok := pc.take(label)
	if !ok {
		panic(grammarMismatch(fmt.Sprintf("%s: missing required child %q", r, label)))
	}
	return n
}

func textOf(n ast.Node, r grammar.Rule) string {
	t, ok := n.Text()
	if !ok {
		panic(grammarMismatch(fmt.Sprintf("%s: child has no text", r)))
	}
	return t
}

func mustParamArg(n ast.Node, r grammar.Rule) *ast.ParamArgContainer {
	c, ok := n.(*ast.ParamArgContainer)
	if !ok {
		panic(grammarMismatch(fmt.Sprintf("%s: 'rest' child is not a ParamList/ArgList container", r)))
	}
	return c
}

// paramNames reads an optional "params" ParamList child into a flat name list.
func paramNames(pc *parsedChildren) []string {
	p, ok := pc.take("params")
	if !ok {
		return nil
	}
	c, ok := p.(*ast.ParamArgContainer)
	if !ok {
		panic(grammarMismatch("'params' child is not a ParamList container"))
	}
	return c.Names
}

// argNodes reads an optional "args" ArgList child into a flat node list.
func argNodes(pc *parsedChildren) []ast.Node {
	a, ok := pc.take("args")
	if !ok {
		return nil
	}
	c, ok := a.(*ast.ParamArgContainer)
	if !ok {
		panic(grammarMismatch("'args' child is not an ArgList container"))
	}
	return c.Args
}
