// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package builtin

import (
	"strings"

	"github.com/holomush/scriptlang/internal/value"
)

func (r *Registry) print(args []value.Value) (value.Value, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = value.Format(a)
	}
	if err := r.out.writeString(strings.Join(parts, " ") + "\n"); err != nil {
		return nil, err
	}
	return value.Void{}, nil
}
