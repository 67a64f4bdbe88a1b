// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package parser implements the packrat memoized recursive-descent engine:
// given a loaded grammar and source text, it matches a named entry rule and
// builds the closed AST node set (internal/ast) from the matched
// productions.
package parser

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/holomush/scriptlang/internal/ast"
	"github.com/holomush/scriptlang/internal/grammar"
)

var tracer = otel.Tracer("scriptlang/parser")

type cacheKey struct {
	rule grammar.Rule
	pos  int
}

type cacheEntry struct {
	node   ast.Node
	newPos int
	ok     bool
}

// Parser matches one grammar against one source text. Its packrat cache is
// scoped to a single Parse call — construct a fresh Parser per parse.
type Parser struct {
	g       *grammar.Grammar
	src     string
	cache   map[cacheKey]cacheEntry
	regexes map[string]*regexp.Regexp

	furthest    int
	furthestMsg string
}

// New constructs a Parser over src using g's productions.
func New(g *grammar.Grammar, src string) *Parser {
	return &Parser{
		g:       g,
		src:     src,
		cache:   make(map[cacheKey]cacheEntry),
		regexes: make(map[string]*regexp.Regexp),
	}
}

// Parse matches entry against the full source; trailing non-whitespace
// after the match is a ParseError.
func (p *Parser) Parse(entry grammar.Rule) (ast.Node, error) {
	_, span := tracer.Start(context.Background(), "parser.parse")
	defer span.End()

	node, err := p.parse(entry)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return node, err
}

func (p *Parser) parse(entry grammar.Rule) (node ast.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ge, ok := r.(grammarMismatch); ok {
				err = fmt.Errorf("grammar/AST mismatch: %s", string(ge))
				return
			}
			panic(r)
		}
	}()

	n, pos, ok := p.matchRule(entry, 0)
	if !ok {
		return nil, newParseError(p.src, p.furthest, p.furthestMsg)
	}
	pos = p.skipTrivia(pos)
	if pos != len(p.src) {
		return nil, newParseError(p.src, pos, "unexpected trailing input")
	}
	return n, nil
}

func (p *Parser) matchRule(r grammar.Rule, pos int) (ast.Node, int, bool) {
	key := cacheKey{r, pos}
	if e, hit := p.cache[key]; hit {
		return e.node, e.newPos, e.ok
	}

	for _, prod := range p.g.ProductionsFor(r) {
		children, newPos, ok := p.matchSequence(prod.Patterns, pos, prod.Line)
		if !ok {
			continue
		}
		node := build(r, children)
		p.cache[key] = cacheEntry{node: node, newPos: newPos, ok: true}
		return node, newPos, true
	}

	if len(p.g.ProductionsFor(r)) == 0 {
		p.recordFailure(pos, fmt.Sprintf("rule %q has no productions", r))
	} else {
		p.recordFailure(pos, fmt.Sprintf("no alternative of %q matched", r))
	}
	p.cache[key] = cacheEntry{ok: false}
	return nil, pos, false
}

func (p *Parser) recordFailure(pos int, msg string) {
	if pos >= p.furthest {
		p.furthest = pos
		p.furthestMsg = msg
	}
}

func (p *Parser) matchSequence(patterns []grammar.Pattern, pos int, line int) (*parsedChildren, int, bool) {
	pc := &parsedChildren{line: line}
	for _, pat := range patterns {
		pos = p.skipTrivia(pos)

		star, isStar := pat.(grammar.Star)
		if isStar {
			ref, ok := star.Inner.(grammar.RuleRef)
			if !ok {
				p.recordFailure(pos, "unsupported Star shape: only Star(RuleRef) is allowed")
				return nil, pos, false
			}
			for {
				node, newPos, ok := p.matchRule(ref.Target, pos)
				if !ok {
					break
				}
				pc.items = append(pc.items, child{node: node})
				pos = p.skipTrivia(newPos)
			}
			continue
		}

		node, hasChild, label, hasLabel, newPos, ok := p.matchOne(pat, pos)
		if !ok {
			return nil, pos, false
		}
		pos = newPos
		if hasChild {
			pc.items = append(pc.items, child{label: label, hasLabel: hasLabel, node: node})
		}
	}
	return pc, pos, true
}

// matchOne matches a Literal, Regex, RuleRef, or Named(wrapping one of
// those) pattern at pos.
func (p *Parser) matchOne(pat grammar.Pattern, pos int) (node ast.Node, hasChild bool, label string, hasLabel bool, newPos int, ok bool) {
	switch t := pat.(type) {
	case grammar.Literal:
		if strings.HasPrefix(p.src[pos:], t.Text) {
			return nil, false, "", false, pos + len(t.Text), true
		}
		p.recordFailure(pos, fmt.Sprintf("expected literal %q", t.Text))
		return nil, false, "", false, pos, false

	case grammar.Regex:
		re, err := p.compile(t.Body)
		if err != nil {
			p.recordFailure(pos, fmt.Sprintf("invalid regex %q: %v", t.Body, err))
			return nil, false, "", false, pos, false
		}
		loc := re.FindStringIndex(p.src[pos:])
		if loc == nil || loc[0] != 0 {
			p.recordFailure(pos, fmt.Sprintf("expected match of /%s/", t.Body))
			return nil, false, "", false, pos, false
		}
		matched := p.src[pos : pos+loc[1]]
		return &ast.RawToken{Raw: matched}, true, "", false, pos + loc[1], true

	case grammar.RuleRef:
		n, newPos, ok := p.matchRule(t.Target, pos)
		if !ok {
			return nil, false, "", false, pos, false
		}
		return n, true, "", false, newPos, true

	case grammar.Named:
		n, hasChild, _, _, newPos, ok := p.matchOne(t.Inner, pos)
		if !ok {
			return nil, false, "", false, pos, false
		}
		if !hasChild {
			return nil, false, "", false, newPos, true
		}
		return n, true, t.Label, true, newPos, true

	default:
		panic(fmt.Sprintf("parser: unhandled pattern type %T", pat))
	}
}

func (p *Parser) compile(body string) (*regexp.Regexp, error) {
	if re, ok := p.regexes[body]; ok {
		return re, nil
	}
	re, err := regexp.Compile("^(?:" + body + ")")
	if err != nil {
		return nil, err
	}
	p.regexes[body] = re
	return re, nil
}

var triviaRe = regexp.MustCompile(`^(?:[ \t\r\n]+|//[^\n]*)*`)

// skipTrivia advances past whitespace and "//" line comments.
func (p *Parser) skipTrivia(pos int) int {
	loc := triviaRe.FindStringIndex(p.src[pos:])
	if loc == nil {
		return pos
	}
	return pos + loc[1]
}

// grammarMismatch signals a production whose shape doesn't satisfy the
// closed rule-to-node-kind contract; these surface at parse time, not when
// the grammar is loaded. build() panics with this; Parse recovers it into a
// plain error.
type grammarMismatch string
