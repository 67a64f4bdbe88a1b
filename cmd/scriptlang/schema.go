// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"encoding/json"
	"sync"

	"github.com/invopop/jsonschema"
	"github.com/samber/oops"
	jschema "github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/spf13/cobra"

	"github.com/holomush/scriptlang/internal/ast"
)

// NewSchemaCmd emits the JSON Schema for the AST wire format.
func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for the AST wire format",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := GenerateASTSchema()
			if err != nil {
				return err
			}
			cmd.Println(string(data))
			return nil
		},
	}
}

// GenerateASTSchema reflects ast.WireNode into a JSON Schema document, the
// way plugin.GenerateSchema reflects Manifest.
func GenerateASTSchema() ([]byte, error) {
	r := jsonschema.Reflector{DoNotReference: true}
	schema := r.Reflect(&ast.WireNode{})
	schema.ID = jsonschema.ID("https://scriptlang.dev/schemas/ast.json")
	schema.Title = "scriptlang AST"
	schema.Description = "JSON Schema for the scriptlang AST wire format"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, oops.Code("SCHEMA_MARSHAL_FAILED").With("operation", "marshal AST schema").Wrap(err)
	}
	return append(data, '\n'), nil
}

var astSchemaState struct {
	once   sync.Once
	schema *jschema.Schema
	err    error
}

// ValidateASTSchema validates an already-marshaled AST document (JSON
// bytes) against the generated schema, compiled once and cached.
func ValidateASTSchema(data []byte) error {
	astSchemaState.once.Do(func() {
		astSchemaState.schema, astSchemaState.err = compileASTSchema()
	})
	if astSchemaState.err != nil {
		return astSchemaState.err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return oops.Code("AST_JSON_INVALID").With("operation", "unmarshal AST document").Wrap(err)
	}
	if err := astSchemaState.schema.Validate(doc); err != nil {
		return oops.Code("AST_SCHEMA_INVALID").With("operation", "validate AST document").Wrap(err)
	}
	return nil
}

func compileASTSchema() (*jschema.Schema, error) {
	schemaBytes, err := GenerateASTSchema()
	if err != nil {
		return nil, err
	}
	var schemaData any
	if err := json.Unmarshal(schemaBytes, &schemaData); err != nil {
		return nil, oops.Code("SCHEMA_PARSE_FAILED").With("operation", "parse generated AST schema").Wrap(err)
	}
	c := jschema.NewCompiler()
	if err := c.AddResource("ast.json", schemaData); err != nil {
		return nil, oops.Code("SCHEMA_COMPILE_FAILED").With("operation", "add AST schema resource").Wrap(err)
	}
	return c.Compile("ast.json")
}
