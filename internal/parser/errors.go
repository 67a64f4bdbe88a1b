// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package parser

import (
	"fmt"
	"strings"

	"github.com/samber/oops"
)

const CodeParseFailure = "PARSE_FAILURE"

// ParseError reports the furthest point the parser could not advance past:
// where, why, and the offending source line for context.
type ParseError struct {
	Message     string
	Line        int
	Column      int
	LineContent string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Parse Error at line %d, column %d: %s\n%s", e.Line, e.Column, e.Message, e.LineContent)
}

func newParseError(src string, pos int, message string) error {
	line, col, content := locate(src, pos)
	return oops.Code(CodeParseFailure).
		With("line", line).
		With("column", col).
		Wrap(&ParseError{Message: message, Line: line, Column: col, LineContent: content})
}

// locate converts a byte offset into 1-based (line, column) plus the full
// text of that line, for ParseError/error reporting.
func locate(src string, pos int) (line, col int, lineContent string) {
	if pos > len(src) {
		pos = len(src)
	}
	line = 1
	lineStart := 0
	for i := 0; i < pos; i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	lineEnd := strings.IndexByte(src[lineStart:], '\n')
	if lineEnd == -1 {
		lineContent = src[lineStart:]
	} else {
		lineContent = src[lineStart : lineStart+lineEnd]
	}
	col = pos - lineStart + 1
	return line, col, lineContent
}
