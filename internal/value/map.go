// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package value

import "sort"

// Map is a mutable, shareable mapping from string keys to Values. Iteration
// order is unspecified; printing sorts keys for deterministic output.
type Map struct {
	entries map[string]Value
}

func (*Map) Kind() Kind { return KindMap }

// NewMap constructs an empty Map.
func NewMap() *Map {
	return &Map{entries: make(map[string]Value)}
}

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.entries) }

// Get returns the value for key and whether it was present.
func (m *Map) Get(key string) (Value, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// Set inserts or overwrites key.
func (m *Map) Set(key string, v Value) {
	m.entries[key] = v
}

// SortedKeys returns the map's keys in ascending lexical order, the
// canonical iteration order used by printing.
func (m *Map) SortedKeys() []string {
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Keys returns the map's keys in unspecified order (the keys() built-in).
func (m *Map) Keys() []string {
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	return keys
}
