// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package grammar holds the in-memory representation of a loaded grammar
// (productions and patterns) and the loader that turns meta-grammar text
// into one.
package grammar

// Rule identifies one of the fixed, closed set of semantic rule names a
// grammar file may define productions for. Unknown names are a load-time
// error.
type Rule string

// The closed rule set.
const (
	RuleProgram       Rule = "Program"
	RuleStmt          Rule = "Stmt"
	RuleAssignment    Rule = "Assignment"
	RuleReturn        Rule = "Return"
	RuleLogicalOr     Rule = "LogicalOr"
	RuleLogicalAnd    Rule = "LogicalAnd"
	RuleComparison    Rule = "Comparison"
	RuleTerm          Rule = "Term"
	RuleFactor        Rule = "Factor"
	RuleUnary         Rule = "Unary"
	RuleIfElse        Rule = "IfElse"
	RuleIfThen        Rule = "IfThen"
	RuleInt           Rule = "Int"
	RuleFloat         Rule = "Float"
	RuleString        Rule = "String"
	RuleTrue          Rule = "True"
	RuleFalse         Rule = "False"
	RuleFunctionDef   Rule = "FunctionDef"
	RuleFunctionCall  Rule = "FunctionCall"
	RuleParamList     Rule = "ParamList"
	RuleArgList       Rule = "ArgList"
	RuleListLiteral   Rule = "ListLiteral"
	RuleElements      Rule = "Elements"
	RuleMapLiteral    Rule = "MapLiteral"
	RuleMapEntries    Rule = "MapEntries"
	RuleMapEntry      Rule = "MapEntry"
	RuleForLoop       Rule = "ForLoop"
	RuleWhileLoop     Rule = "WhileLoop"
	RuleBlock         Rule = "Block"
	RuleIdentifier    Rule = "Identifier"
	RuleExpr          Rule = "Expr"
	RuleAtom          Rule = "Atom"
	RuleUnaryOp       Rule = "UnaryOp"
	RuleEq            Rule = "Eq"
	RuleNeq           Rule = "Neq"
	RuleLt            Rule = "Lt"
	RuleGt            Rule = "Gt"
	RuleAdd           Rule = "Add"
	RuleSub           Rule = "Sub"
	RuleMul           Rule = "Mul"
	RuleDiv           Rule = "Div"
	RuleMod           Rule = "Mod"
	RuleKey           Rule = "Key"
	RuleClassDef      Rule = "ClassDef"
	RuleClassMember   Rule = "ClassMember"
	RuleFieldDef      Rule = "FieldDef"
	RuleMethodDef     Rule = "MethodDef"
	RuleNewExpr       Rule = "NewExpr"
	RuleMemberAccess  Rule = "MemberAccess"
	RuleMethodCall    Rule = "MethodCall"
	RuleSelfReference Rule = "SelfReference"
	RulePostfix       Rule = "Postfix"
	RulePostfixSuffix Rule = "PostfixSuffix"
)

// knownRules is the closed membership set used to validate grammar files.
var knownRules = map[Rule]bool{
	RuleProgram: true, RuleStmt: true, RuleAssignment: true, RuleReturn: true,
	RuleLogicalOr: true, RuleLogicalAnd: true, RuleComparison: true, RuleTerm: true,
	RuleFactor: true, RuleUnary: true, RuleIfElse: true, RuleIfThen: true,
	RuleInt: true, RuleFloat: true, RuleString: true, RuleTrue: true, RuleFalse: true,
	RuleFunctionDef: true, RuleFunctionCall: true, RuleParamList: true, RuleArgList: true,
	RuleListLiteral: true, RuleElements: true, RuleMapLiteral: true, RuleMapEntries: true,
	RuleMapEntry: true, RuleForLoop: true, RuleWhileLoop: true, RuleBlock: true,
	RuleIdentifier: true, RuleExpr: true, RuleAtom: true, RuleUnaryOp: true,
	RuleEq: true, RuleNeq: true, RuleLt: true, RuleGt: true, RuleAdd: true, RuleSub: true,
	RuleMul: true, RuleDiv: true, RuleMod: true, RuleKey: true, RuleClassDef: true,
	RuleClassMember: true, RuleFieldDef: true, RuleMethodDef: true, RuleNewExpr: true,
	RuleMemberAccess: true, RuleMethodCall: true, RuleSelfReference: true,
	RulePostfix: true, RulePostfixSuffix: true,
}

// IsKnownRule reports whether r is a member of the closed rule set.
func IsKnownRule(r Rule) bool {
	return knownRules[r]
}
