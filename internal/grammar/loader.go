// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package grammar

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/samber/oops"
)

// FormatVersion is the meta-grammar format this loader understands. Grammar
// files may declare compatibility with a leading "// version: X.Y.Z"
// comment.
const FormatVersion = "1.0.0"

// metaLexer tokenizes one line of meta-grammar text. Its key property is
// that String and Bracket are matched as single atomic tokens including
// any '|' they contain, which is what makes splitting alternatives on Pipe
// tokens automatically respect quote/bracket nesting without any separate
// bracket-depth bookkeeping in this package.
var metaLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "String", Pattern: `"[^"]*"`},
	{Name: "Bracket", Pattern: `\[(?:[^\[\]]|\[[^\[\]]*\])*\]`},
	{Name: "Equals", Pattern: `=`},
	{Name: "Pipe", Pattern: `\|`},
	{Name: "Star", Pattern: `\*`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Newline", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

// Load parses meta-grammar text into a Grammar. Unknown rule names or
// malformed tokens are fatal.
func Load(text string) (*Grammar, error) {
	if err := checkVersionDirective(text); err != nil {
		return nil, err
	}

	toks, err := tokenize(text)
	if err != nil {
		return nil, err
	}

	g := &Grammar{Productions: make(map[Rule][]Production)}

	for _, lineToks := range splitLines(toks) {
		lineToks = stripComment(lineToks)
		if isBlank(lineToks) {
			continue
		}
		lineNo := lineToks[0].Pos.Line
		rule, alts, err := splitHeader(lineToks, lineNo)
		if err != nil {
			return nil, err
		}
		if !IsKnownRule(rule) {
			return nil, errUnknownRule(lineNo, string(rule))
		}
		for _, altToks := range splitOnPipe(alts) {
			patterns, err := parseAlternative(altToks, lineNo)
			if err != nil {
				return nil, err
			}
			g.Productions[rule] = append(g.Productions[rule], Production{
				Rule:     rule,
				Patterns: patterns,
				Line:     lineNo,
			})
		}
	}

	return g, nil
}

// checkVersionDirective looks for a leading "// version: X.Y.Z" comment and,
// if present, verifies it is semver-compatible with FormatVersion.
func checkVersionDirective(text string) error {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		const prefix = "// version:"
		if !strings.HasPrefix(trimmed, prefix) {
			// Only the first non-blank line may carry the directive.
			return nil
		}
		declared := strings.TrimSpace(strings.TrimPrefix(trimmed, prefix))
		declaredVer, err := semver.NewVersion(declared)
		if err != nil {
			return oops.Code(CodeVersionMismatch).With("declared", declared).Wrap(err)
		}
		constraint, err := semver.NewConstraint("^" + FormatVersion)
		if err != nil {
			return oops.Code(CodeVersionMismatch).Wrap(err)
		}
		if !constraint.Check(declaredVer) {
			return oops.Code(CodeVersionMismatch).
				With("declared", declared).
				With("supported", FormatVersion).
				Errorf("grammar requires format version %s, loader supports %s", declared, FormatVersion)
		}
		return nil
	}
	return nil
}

func tokenize(text string) ([]lexer.Token, error) {
	lex, err := metaLexer.Lex("grammar", strings.NewReader(text))
	if err != nil {
		return nil, oops.Code(CodeMalformedLine).Wrap(err)
	}
	var out []lexer.Token
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, oops.Code(CodeMalformedLine).Wrap(err)
		}
		if tok.EOF() {
			break
		}
		out = append(out, tok)
	}
	return out, nil
}

func splitLines(toks []lexer.Token) [][]lexer.Token {
	var lines [][]lexer.Token
	var cur []lexer.Token
	for _, t := range toks {
		if tokenName(t) == "Newline" {
			lines = append(lines, cur)
			cur = nil
			continue
		}
		cur = append(cur, t)
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

func stripComment(toks []lexer.Token) []lexer.Token {
	for i, t := range toks {
		if tokenName(t) == "Comment" {
			return toks[:i]
		}
	}
	return toks
}

func isBlank(toks []lexer.Token) bool {
	for _, t := range toks {
		if tokenName(t) != "Whitespace" {
			return false
		}
	}
	return true
}

// splitHeader consumes "RuleName =" from the front of the line and returns
// the rule plus the remaining alternative tokens.
func splitHeader(toks []lexer.Token, line int) (Rule, []lexer.Token, error) {
	toks = trimWhitespace(toks)
	if len(toks) < 2 || tokenName(toks[0]) != "Ident" || tokenName(toks[1]) != "Equals" {
		return "", nil, errMalformedLine(line, joinRaw(toks))
	}
	return Rule(toks[0].Value), trimWhitespace(toks[2:]), nil
}

func trimWhitespace(toks []lexer.Token) []lexer.Token {
	start := 0
	for start < len(toks) && tokenName(toks[start]) == "Whitespace" {
		start++
	}
	end := len(toks)
	for end > start && tokenName(toks[end-1]) == "Whitespace" {
		end--
	}
	return toks[start:end]
}

// splitOnPipe splits a token run on top-level Pipe tokens. Because String
// and Bracket tokens are atomic, a '|' inside either never appears here as
// a standalone Pipe token.
func splitOnPipe(toks []lexer.Token) [][]lexer.Token {
	var alts [][]lexer.Token
	var cur []lexer.Token
	for _, t := range toks {
		if tokenName(t) == "Pipe" {
			alts = append(alts, trimWhitespace(cur))
			cur = nil
			continue
		}
		cur = append(cur, t)
	}
	alts = append(alts, trimWhitespace(cur))
	return alts
}

// parseAlternative groups an alternative's tokens into whitespace-delimited
// words and parses each into a Pattern.
func parseAlternative(toks []lexer.Token, line int) ([]Pattern, error) {
	var patterns []Pattern
	for _, word := range groupWords(toks) {
		p, err := parseWord(word, line)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}

func groupWords(toks []lexer.Token) [][]lexer.Token {
	var words [][]lexer.Token
	var cur []lexer.Token
	for _, t := range toks {
		if tokenName(t) == "Whitespace" {
			if len(cur) > 0 {
				words = append(words, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, t)
	}
	if len(cur) > 0 {
		words = append(words, cur)
	}
	return words
}

// parseWord parses one whitespace-delimited word into a Pattern: a literal,
// a regex, a rule reference, a starred rule reference, or a labeled
// sub-token of any of the above.
func parseWord(word []lexer.Token, line int) (Pattern, error) {
	if len(word) == 0 {
		return nil, errMalformedLine(line, "")
	}

	// label:SubToken
	if len(word) >= 3 && tokenName(word[0]) == "Ident" && tokenName(word[1]) == "Colon" {
		inner, err := parseWord(word[2:], line)
		if err != nil {
			return nil, err
		}
		return Named{Label: word[0].Value, Inner: inner}, nil
	}

	switch tokenName(word[0]) {
	case "String":
		if len(word) != 1 {
			return nil, errMalformedToken(line, joinRaw(word))
		}
		return Literal{Text: unquote(word[0].Value)}, nil
	case "Bracket":
		if len(word) != 1 {
			return nil, errMalformedToken(line, joinRaw(word))
		}
		body := word[0].Value
		return Regex{Body: body[1 : len(body)-1]}, nil
	case "Ident":
		if len(word) == 1 {
			return RuleRef{Target: Rule(word[0].Value)}, nil
		}
		if len(word) == 2 && tokenName(word[1]) == "Star" {
			return Star{Inner: RuleRef{Target: Rule(word[0].Value)}}, nil
		}
		return nil, errMalformedToken(line, joinRaw(word))
	default:
		return nil, errMalformedToken(line, joinRaw(word))
	}
}

func unquote(s string) string {
	if len(s) >= 2 {
		return s[1 : len(s)-1]
	}
	return s
}

// tokenTypeNames inverts metaLexer.Symbols() (name -> TokenType) once, so
// tokenName can map a token back to the rule name that produced it.
var tokenTypeNames = func() map[lexer.TokenType]string {
	out := make(map[lexer.TokenType]string)
	for name, tt := range metaLexer.Symbols() {
		out[tt] = name
	}
	return out
}()

func tokenName(t lexer.Token) string {
	return tokenTypeNames[t.Type]
}

func joinRaw(toks []lexer.Token) string {
	var sb strings.Builder
	for _, t := range toks {
		sb.WriteString(t.Value)
	}
	return sb.String()
}
