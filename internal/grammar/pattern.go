// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package grammar

// Pattern is the closed set of elements a Production's alternative is built
// from: Literal, Regex, RuleRef, Star, and Named. Only Star over a bare
// RuleRef is supported.
type Pattern interface {
	isPattern()
}

// Literal matches a fixed terminal string.
type Literal struct {
	Text string
}

func (Literal) isPattern() {}

// Regex matches a compiled regular expression anchored at the current
// position. Pattern carries the regex body as written in the grammar file
// (without the surrounding square brackets); the parser is responsible for
// compiling and caching it.
type Regex struct {
	Body string
}

func (Regex) isPattern() {}

// RuleRef references another rule by name.
type RuleRef struct {
	Target Rule
}

func (RuleRef) isPattern() {}

// Star matches zero or more repetitions of Inner, which must be a RuleRef.
type Star struct {
	Inner Pattern
}

func (Star) isPattern() {}

// Named labels Inner with a name, used during AST child collection.
type Named struct {
	Label string
	Inner Pattern
}

func (Named) isPattern() {}

// Production is one (Rule, pattern-sequence) alternative. Multiple
// Productions for the same Rule are tried in declaration order.
type Production struct {
	Rule     Rule
	Patterns []Pattern
	Line     int // 1-based source line in the grammar file, for diagnostics
}

// Grammar maps each Rule to its ordered list of alternative Productions.
type Grammar struct {
	Productions map[Rule][]Production
}

// ProductionsFor returns the alternatives for r in declaration order.
func (g *Grammar) ProductionsFor(r Rule) []Production {
	return g.Productions[r]
}
