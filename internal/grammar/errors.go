// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package grammar

import (
	"fmt"

	"github.com/samber/oops"
)

// Error codes for grammar load failures.
const (
	CodeUnknownRule     = "GRAMMAR_UNKNOWN_RULE"
	CodeMalformedToken  = "GRAMMAR_MALFORMED_TOKEN"
	CodeMalformedLine   = "GRAMMAR_MALFORMED_LINE"
	CodeVersionMismatch = "GRAMMAR_VERSION_MISMATCH"
)

// LoadError reports a fatal problem found while loading a grammar file. It
// is always wrapped in an oops.Code(...) error by the err* constructors
// below, but kept as a plain struct internally so its Error()
// string carries exact line information independent of the oops rendering.
type LoadError struct {
	Line    int
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("grammar line %d: %s", e.Line, e.Message)
}

func errUnknownRule(line int, name string) error {
	return oops.Code(CodeUnknownRule).
		With("line", line).
		With("rule", name).
		Wrap(&LoadError{Line: line, Message: fmt.Sprintf("unknown rule %q", name)})
}

func errMalformedToken(line int, token string) error {
	return oops.Code(CodeMalformedToken).
		With("line", line).
		With("token", token).
		Wrap(&LoadError{Line: line, Message: fmt.Sprintf("malformed token %q", token)})
}

func errMalformedLine(line int, text string) error {
	return oops.Code(CodeMalformedLine).
		With("line", line).
		Wrap(&LoadError{Line: line, Message: fmt.Sprintf("malformed production: %q", text)})
}
