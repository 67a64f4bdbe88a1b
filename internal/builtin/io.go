// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package builtin

import (
	"os"

	"github.com/holomush/scriptlang/internal/ast"
	"github.com/holomush/scriptlang/internal/value"
)

func builtinReadFile(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError("read_file", "1", len(args))
	}
	path, ok := args[0].(*value.Str)
	if !ok {
		return nil, ast.NewRuntimeError("read_file expects a String path, got %s", args[0].Kind())
	}
	content, err := os.ReadFile(path.String())
	if err != nil {
		return nil, ast.NewRuntimeError("read_file: failed to read '%s': %v", path.String(), err)
	}
	return value.NewString(string(content)), nil
}
