// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"encoding/json"
	"os"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holomush/scriptlang/internal/ast"
	"github.com/holomush/scriptlang/internal/grammar"
	"github.com/holomush/scriptlang/internal/parser"
)

// NewASTCmd parses a program and prints its AST as JSON, wrapped with a
// grammar_version field.
func NewASTCmd() *cobra.Command {
	var validate bool
	cmd := &cobra.Command{
		Use:   "ast <grammar-path> <code-path>",
		Short: "Parse a script and print its AST as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dumpAST(cmd, args[0], args[1], validate)
		},
	}
	cmd.Flags().BoolVar(&validate, "validate", false, "validate the AST against the generated JSON Schema before printing")
	return cmd
}

func dumpAST(cmd *cobra.Command, grammarPath, codePath string, validate bool) error {
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

	wire := ast.WrapAST(ast.ToWire(program))

	if validate {
		data, err := json.Marshal(wire)
		if err != nil {
			return oops.Code("AST_MARSHAL_FAILED").Wrap(err)
		}
		if err := ValidateASTSchema(data); err != nil {
			return oops.Code("AST_SCHEMA_INVALID").Wrap(err)
		}
	}

	out, err := json.MarshalIndent(wire, "", "  ")
	if err != nil {
		return oops.Code("AST_MARSHAL_FAILED").Wrap(err)
	}
	cmd.Println(string(out))
	return nil
}
