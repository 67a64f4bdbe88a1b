// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package value

import (
	"fmt"
	"strings"
)

// Str is a mutable, shareable sequence of Unicode scalar values. All
// indexing, length, and in-place mutation built-ins operate on code points
// (runes), never bytes.
type Str struct {
	runes []rune
}

func (*Str) Kind() Kind { return KindString }

// NewString constructs a Str from a Go string.
func NewString(s string) *Str {
	return &Str{runes: []rune(s)}
}

// Len returns the code-point length.
func (s *Str) Len() int { return len(s.runes) }

// Runes returns the underlying rune slice. Callers must not retain it
// across a mutation of s.
func (s *Str) Runes() []rune { return s.runes }

// String returns the Go string representation.
func (s *Str) String() string { return string(s.runes) }

// At returns the code point at index i.
func (s *Str) At(i int) (rune, bool) {
	if i < 0 || i >= len(s.runes) {
		return 0, false
	}
	return s.runes[i], true
}

// SetAt replaces the code point at index i with r, in place.
func (s *Str) SetAt(i int, r rune) bool {
	if i < 0 || i >= len(s.runes) {
		return false
	}
	s.runes[i] = r
	return true
}

// Append concatenates other's contents onto s, in place.
func (s *Str) Append(other string) {
	s.runes = append(s.runes, []rune(other)...)
}

// Slice returns a new, independent Str over [start,end) code points.
func (s *Str) Slice(start, end int) *Str {
	out := make([]rune, end-start)
	copy(out, s.runes[start:end])
	return &Str{runes: out}
}

// Split returns the Go strings produced by splitting on delim.
func (s *Str) Split(delim string) []string {
	return strings.Split(s.String(), delim)
}

func (s *Str) Equal(other *Str) bool {
	if len(s.runes) != len(other.runes) {
		return false
	}
	for i, r := range s.runes {
		if other.runes[i] != r {
			return false
		}
	}
	return true
}

// Compare returns -1, 0, or 1 the way strings.Compare does, by code point.
func (s *Str) Compare(other *Str) int {
	return strings.Compare(s.String(), other.String())
}

var _ fmt.Stringer = (*Str)(nil)
