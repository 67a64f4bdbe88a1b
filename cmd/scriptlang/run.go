// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"context"
	"os"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holomush/scriptlang/internal/builtin"
	"github.com/holomush/scriptlang/internal/eval"
	"github.com/holomush/scriptlang/internal/grammar"
	"github.com/holomush/scriptlang/internal/parser"
)

// NewRunCmd implements: scriptlang run <grammar-path>
// <code-path>. Exit 0 on success; non-zero with the error on stderr (the
// root command's Execute caller handles printing and os.Exit) otherwise.
func NewRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <grammar-path> <code-path>",
		Short: "Parse and evaluate a script against a grammar",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd, args[0], args[1])
		},
	}
}

func runScript(cmd *cobra.Command, grammarPath, codePath string) error {
	grammarText, err := os.ReadFile(grammarPath)
	if err != nil {
		return oops.Code("GRAMMAR_READ_FAILED").With("path", grammarPath).Wrap(err)
	}
	sourceText, err := os.ReadFile(codePath)
	if err != nil {
		return oops.Code("SOURCE_READ_FAILED").With("path", codePath).Wrap(err)
	}

	g, err := grammar.Load(string(grammarText))
	if err != nil {
		return oops.Code("GRAMMAR_LOAD_FAILED").With("path", grammarPath).Wrap(err)
	}

	p := parser.New(g, string(sourceText))
	program, err := p.Parse(grammar.RuleProgram)
	if err != nil {
		return oops.Code(parser.CodeParseFailure).Wrap(err)
	}

	registry := builtin.NewRegistry(builtin.NewSink(cmd.OutOrStdout()))
	_, err = eval.Run(context.Background(), program, registry)
	if err != nil {
		return oops.Code("RUNTIME_ERROR").Wrap(err)
	}
	return nil
}
