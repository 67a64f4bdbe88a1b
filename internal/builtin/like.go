// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package builtin

import (
	"github.com/gobwas/glob"

	"github.com/holomush/scriptlang/internal/ast"
	"github.com/holomush/scriptlang/internal/value"
)

// builtinLike is a supplemental built-in beyond the closed standard-library
// requires: like(s, pattern) glob-matches s against pattern, treating ':'
// as a path separator the way the ABAC engine's "like" condition does.
func builtinLike(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityError("like", "2", len(args))
	}
	s, ok1 := args[0].(*value.Str)
	pattern, ok2 := args[1].(*value.Str)
	if !ok1 || !ok2 {
		return nil, ast.NewRuntimeError("like expects two Strings (value, pattern)")
	}
	g, err := glob.Compile(pattern.String(), ':')
	if err != nil {
		return nil, ast.NewRuntimeError("like: invalid pattern '%s': %v", pattern.String(), err)
	}
	return value.Bool(g.Match(s.String())), nil
}
