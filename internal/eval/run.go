// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package eval

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/holomush/scriptlang/internal/ast"
	"github.com/holomush/scriptlang/internal/builtin"
	"github.com/holomush/scriptlang/internal/value"
)

var tracer = otel.Tracer("scriptlang/eval")

// Run evaluates program's top-level Program node against a fresh top-level
// frame built over builtins, spanning one "eval.run" trace the way the
// command dispatcher spans one "command.execute" per invocation.
func Run(ctx context.Context, program ast.Node, builtins *builtin.Registry) (value.Value, error) {
	_, span := tracer.Start(ctx, "eval.run")
	defer span.End()

	frame := NewFrame(builtins)
	v, err := program.Evaluate(frame)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.String("eval.result_kind", v.Kind().String()))
	return v, nil
}
