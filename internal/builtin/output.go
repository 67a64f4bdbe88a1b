// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package builtin

import (
	"io"
	"os"
	"sync"
)

// OutputSink is where print() writes. Tests install a buffer in place of
// Stdout for the duration of a single call, then restore the previous
// sink.
type OutputSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewStdoutSink wraps os.Stdout.
func NewStdoutSink() *OutputSink {
	return &OutputSink{w: os.Stdout}
}

// NewSink wraps an arbitrary writer, for tests.
func NewSink(w io.Writer) *OutputSink {
	return &OutputSink{w: w}
}

func (s *OutputSink) writeString(str string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := io.WriteString(s.w, str)
	return err
}

// Swap installs w as the sink's writer and returns a restore func that puts
// the previous writer back, for scoped use in tests:
//
//	restore := sink.Swap(&buf)
//	defer restore()
func (s *OutputSink) Swap(w io.Writer) func() {
	s.mu.Lock()
	prev := s.w
	s.w = w
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		s.w = prev
		s.mu.Unlock()
	}
}
