// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package parser

import "github.com/holomush/scriptlang/internal/ast"

// child is one collected (optional label, Node) pair from a matched
// production.
type child struct {
	label    string
	hasLabel bool
	node     ast.Node
}

// parsedChildren is the ordered, partially-labeled child list a matched
// production yields, plus the source line it started on. Node constructors
// consume it with take and remaining.
type parsedChildren struct {
	items []child
	line  int
}

// take removes and returns the first child labeled name, or — if none
// carries that label — the first unlabeled child. Returns ok=false if
// neither exists.
func (pc *parsedChildren) take(name string) (ast.Node, bool) {
	for i, c := range pc.items {
		if c.hasLabel && c.label == name {
			pc.items = append(pc.items[:i], pc.items[i+1:]...)
			return c.node, true
		}
	}
	for i, c := range pc.items {
		if !c.hasLabel {
			pc.items = append(pc.items[:i], pc.items[i+1:]...)
			return c.node, true
		}
	}
	return nil, false
}

// first removes and returns the very first remaining child regardless of
// label, used by pass-through and straightforward single-child rules.
func (pc *parsedChildren) first() (ast.Node, bool) {
	if len(pc.items) == 0 {
		return nil, false
	}
	n := pc.items[0].node
	pc.items = pc.items[1:]
	return n, true
}

// remaining surrenders every child still held, in order, discarding labels.
func (pc *parsedChildren) remaining() []ast.Node {
	out := make([]ast.Node, 0, len(pc.items))
	for _, c := range pc.items {
		out = append(out, c.node)
	}
	pc.items = nil
	return out
}
