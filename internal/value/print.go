// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package value

import (
	"strconv"
	"strings"
)

// Format renders v in the canonical print form:
// strings print raw, lists as "[e1, e2, ...]", maps as "{k1: v1, ...}" with
// keys sorted, objects as "<Object ClassName>", and Void as "(void)".
func Format(v Value) string {
	switch t := v.(type) {
	case Int:
		return strconv.FormatInt(int64(t), 10)
	case Float:
		return strconv.FormatFloat(float64(t), 'g', -1, 64)
	case Bool:
		if t {
			return "true"
		}
		return "false"
	case *Str:
		return t.String()
	case *List:
		parts := make([]string, len(t.Elements))
		for i, e := range t.Elements {
			parts[i] = Format(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *Map:
		keys := t.SortedKeys()
		parts := make([]string, len(keys))
		for i, k := range keys {
			val, _ := t.Get(k)
			parts[i] = k + ": " + Format(val)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case *Object:
		return "<Object " + t.ClassName + ">"
	case Void:
		return "(void)"
	default:
		return "<unknown>"
	}
}
