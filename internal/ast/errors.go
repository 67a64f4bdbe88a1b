// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package ast

import (
	"fmt"
	"strings"

	"github.com/holomush/scriptlang/internal/value"
)

// RuntimeError is a user-script-level failure: undefined variable, type
// mismatch, arity mismatch, out-of-range index, and so on. Every
// FunctionCall/MethodCall frame that the error propagates through appends
// an "at <name>:<line>" entry, so the trace lists the innermost call first.
type RuntimeError struct {
	Message    string
	StackTrace []string
}

func (e *RuntimeError) Error() string {
	if len(e.StackTrace) == 0 {
		return fmt.Sprintf("Runtime Error: %s", e.Message)
	}
	return fmt.Sprintf("Runtime Error: %s\nStack Trace:\n%s", e.Message, strings.Join(e.StackTrace, "\n"))
}

// NewRuntimeError builds a RuntimeError with no stack frames yet attached.
func NewRuntimeError(format string, args ...any) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf(format, args...)}
}

// PrependFrame appends "at <name>:<line>" to err's stack trace if err is a
// *RuntimeError, leaving any other error untouched. Returns err unchanged
// either way, so callers can use it inline: `return v, PrependFrame(err, ...)`.
func PrependFrame(err error, name string, line int) error {
	if rerr, ok := err.(*RuntimeError); ok {
		rerr.StackTrace = append(rerr.StackTrace, fmt.Sprintf("at %s:%d", name, line))
	}
	return err
}

// ReturnSignal is how Return unwinds the call stack up to the enclosing
// FunctionCall/MethodCall: it satisfies the error interface so that Block,
// If, While, and For can propagate it with the same plumbing they use for
// RuntimeError, without special-casing a "did we return" bool everywhere.
type ReturnSignal struct {
	Value value.Value
}

func (*ReturnSignal) Error() string { return "return (uncaught outside function body)" }
