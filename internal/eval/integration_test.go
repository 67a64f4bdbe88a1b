// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package eval_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holomush/scriptlang/internal/builtin"
	"github.com/holomush/scriptlang/internal/eval"
	"github.com/holomush/scriptlang/internal/grammar"
	"github.com/holomush/scriptlang/internal/parser"
)

func loadStandardGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	text, err := os.ReadFile(filepath.Join("..", "..", "testdata", "grammars", "standard.grammar"))
	require.NoError(t, err)
	g, err := grammar.Load(string(text))
	require.NoError(t, err)
	return g
}

func runScenario(t *testing.T, g *grammar.Grammar, scriptPath string) string {
	t.Helper()
	src, err := os.ReadFile(scriptPath)
	require.NoError(t, err)

	program, err := parser.New(g, string(src)).Parse(grammar.RuleProgram)
	require.NoError(t, err)

	var out bytes.Buffer
	registry := builtin.NewRegistry(builtin.NewSink(&out))
	_, err = eval.Run(context.Background(), program, registry)
	require.NoError(t, err)
	return out.String()
}

func TestRunScenario_TwoSumFindsMatchingIndices(t *testing.T) {
	g := loadStandardGrammar(t)
	out := runScenario(t, g, filepath.Join("..", "..", "testdata", "programs", "two_sum.script"))
	assert.Equal(t, "[0, 1]\n", out)
}

func TestRunScenario_PalindromeChecksBothDirections(t *testing.T) {
	g := loadStandardGrammar(t)
	out := runScenario(t, g, filepath.Join("..", "..", "testdata", "programs", "palindrome.script"))
	assert.Equal(t, "true\nfalse\n", out)
}

func TestRunScenario_FizzBuzzOneToFifteen(t *testing.T) {
	g := loadStandardGrammar(t)
	out := runScenario(t, g, filepath.Join("..", "..", "testdata", "programs", "fizzbuzz.script"))
	assert.Equal(t, "1\n2\nFizz\n4\nBuzz\nFizz\n7\n8\nFizz\nBuzz\n11\nFizz\n13\n14\nFizzBuzz\n", out)
}

func TestRunScenario_RecursiveFibonacci(t *testing.T) {
	g := loadStandardGrammar(t)
	out := runScenario(t, g, filepath.Join("..", "..", "testdata", "programs", "fibonacci.script"))
	assert.Equal(t, "55\n", out)
}

func TestRunScenario_ClassMethodReadsThisField(t *testing.T) {
	g := loadStandardGrammar(t)
	out := runScenario(t, g, filepath.Join("..", "..", "testdata", "programs", "calculator.script"))
	assert.Equal(t, "15\n20\n", out)
}

// Map printing is order-independent at construction time: keys print sorted
// regardless of insertion order.
func TestRunScenario_MapPrintingSortsKeys(t *testing.T) {
	g := loadStandardGrammar(t)
	out := runScenario(t, g, filepath.Join("..", "..", "testdata", "programs", "map_print.script"))
	assert.Equal(t, "{a: 1, b: 2}\n", out)
}

// These three mirror the literal end-to-end scenarios verbatim: numeric
// palindrome check returning Int 1/0, FizzBuzz collected into one printed
// list, and a single multiply() call driven by a constructor-bound field.
func TestRunScenario_PalindromeNumberMatchesLiteralScenario(t *testing.T) {
	g := loadStandardGrammar(t)
	out := runScenario(t, g, filepath.Join("..", "..", "testdata", "programs", "palindrome_number.script"))
	assert.Equal(t, "1\n0\n", out)
}

func TestRunScenario_FizzBuzzListMatchesLiteralScenario(t *testing.T) {
	g := loadStandardGrammar(t)
	out := runScenario(t, g, filepath.Join("..", "..", "testdata", "programs", "fizzbuzz_list.script"))
	assert.Equal(t, "[1, 2, Fizz, 4, Buzz, Fizz, 7, 8, Fizz, Buzz, 11, Fizz, 13, 14, FizzBuzz]\n", out)
}

func TestRunScenario_CalculatorMultiplyMatchesLiteralScenario(t *testing.T) {
	g := loadStandardGrammar(t)
	out := runScenario(t, g, filepath.Join("..", "..", "testdata", "programs", "calculator_multiply.script"))
	assert.Equal(t, "10\n", out)
}

// Evaluation is deterministic: running the same parsed program twice over
// independent frames yields the same observable output both times.
func TestRunScenario_EvaluationIsDeterministic(t *testing.T) {
	g := loadStandardGrammar(t)
	path := filepath.Join("..", "..", "testdata", "programs", "fizzbuzz.script")
	first := runScenario(t, g, path)
	second := runScenario(t, g, path)
	assert.Equal(t, first, second)
}
