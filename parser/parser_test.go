package parser

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/esparse/ast"
	"github.com/deepnoodle-ai/esparse/errors"
	"github.com/deepnoodle-ai/esparse/syntax"
)

// Core parser tests (parser.go, options.go)
// - Locations and source labels
// - Options and feature selection
// - Context cancellation
// - Max depth limits
// - Single use

func parse(t *testing.T, src string, opts ...Option) *ast.Program {
	t.Helper()
	program, err := Parse(context.Background(), src, opts...)
	require.NoError(t, err)
	require.NotNil(t, program)
	return program
}

func parseES6(t *testing.T, src string, opts ...Option) *ast.Program {
	t.Helper()
	return parse(t, src, append([]Option{WithFeatures(syntax.ES6)}, opts...)...)
}

// parseError parses src and returns the syntax error it fails with.
func parseError(t *testing.T, src string, opts ...Option) *errors.SyntaxError {
	t.Helper()
	program, err := Parse(context.Background(), src, opts...)
	require.Error(t, err, "expected %q to fail", src)
	assert.Nil(t, program)
	var serr *errors.SyntaxError
	require.ErrorAs(t, err, &serr)
	return serr
}

type stringCase struct {
	input    string
	expected string
}

func checkStrings(t *testing.T, tests []stringCase, opts ...Option) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			program := parse(t, tt.input, opts...)
			assert.Equal(t, tt.expected, program.String())
		})
	}
}

type errorCase struct {
	input   string
	message string
}

func checkErrors(t *testing.T, tests []errorCase, opts ...Option) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := parseError(t, tt.input, opts...)
			assert.Equal(t, tt.message, err.Description)
		})
	}
}

func TestParseProgram(t *testing.T) {
	program := parse(t, "var a = 1, b;\nfoo(a);")
	require.Len(t, program.Body, 2)
	assert.Equal(t, "Program", program.Type())

	decl, ok := program.Body[0].(*ast.VariableDeclaration)
	require.True(t, ok)
	assert.Equal(t, "var", decl.Kind)
	require.Len(t, decl.Declarations, 2)
	assert.Equal(t, "a", decl.Declarations[0].ID.(*ast.Identifier).Name)
	assert.Equal(t, 1.0, decl.Declarations[0].Init.(*ast.Literal).Value)
	assert.Nil(t, decl.Declarations[1].Init)

	assert.Equal(t, "var a = 1, b;\nfoo(a);", program.String())
}

func TestEmptyProgram(t *testing.T) {
	for _, src := range []string{"", "   ", "\n\n", "// only a comment", "/* block */"} {
		program := parse(t, src)
		assert.Empty(t, program.Body, "input %q", src)
	}
}

func TestLocations(t *testing.T) {
	program := parse(t, "var x = 5;\nvar y = 10;", WithRange(true), WithLoc(true))
	require.Len(t, program.Body, 2)

	first := program.Body[0].Meta()
	assert.Equal(t, &ast.Range{0, 10}, first.Range)
	assert.Equal(t, ast.Position{Line: 1, Column: 0}, first.Loc.Start)
	assert.Equal(t, ast.Position{Line: 1, Column: 10}, first.Loc.End)

	second := program.Body[1].Meta()
	assert.Equal(t, &ast.Range{11, 22}, second.Range)
	assert.Equal(t, ast.Position{Line: 2, Column: 0}, second.Loc.Start)
	assert.Equal(t, ast.Position{Line: 2, Column: 11}, second.Loc.End)

	decl := program.Body[1].(*ast.VariableDeclaration)
	id := decl.Declarations[0].ID.(*ast.Identifier)
	assert.Equal(t, &ast.Range{15, 16}, id.Range)
	init := decl.Declarations[0].Init.(*ast.Literal)
	assert.Equal(t, &ast.Range{19, 21}, init.Range)
}

func TestNoLocationsByDefault(t *testing.T) {
	program := parse(t, "a + b;")
	base := program.Body[0].Meta()
	assert.Nil(t, base.Range)
	assert.Nil(t, base.Loc)
	assert.Nil(t, program.Comments)
	assert.Nil(t, program.Tokens)
	assert.Nil(t, program.Errors)
}

func TestBinaryExpressionRange(t *testing.T) {
	program := parse(t, "a + b * c", WithRange(true))
	expr := program.Body[0].(*ast.ExpressionStatement).Expression.(*ast.BinaryExpression)
	assert.Equal(t, &ast.Range{0, 9}, expr.Range)
	right := expr.Right.(*ast.BinaryExpression)
	assert.Equal(t, &ast.Range{4, 9}, right.Range)
}

func TestSourceLabel(t *testing.T) {
	program := parse(t, "a;", WithLoc(true), WithSource("app.js"))
	assert.Equal(t, "app.js", program.Body[0].Meta().Loc.Source)

	err := parseError(t, "a b", WithSource("app.js"))
	assert.Equal(t, "app.js", err.Filename)
	assert.Equal(t, "a b", err.LineText)
}

func TestErrorPosition(t *testing.T) {
	err := parseError(t, "var a = 1;\nvar = 2;")
	assert.Equal(t, "Unexpected token =", err.Description)
	assert.Equal(t, "Line 2: Unexpected token =", err.Error())
	assert.Equal(t, 2, err.LineNumber)
	assert.Equal(t, 5, err.Column)
	assert.Equal(t, 15, err.Index)
	assert.Equal(t, errors.UnexpectedToken.Code, err.Code)
}

func TestUnexpectedTokens(t *testing.T) {
	checkErrors(t, []errorCase{
		{"a b", "Unexpected identifier"},
		{"a 1", "Unexpected number"},
		{"a 'b'", "Unexpected string"},
		{"a +", "Unexpected end of input"},
		{"var class = 1", "Unexpected reserved word"},
		{"a )", "Unexpected token )"},
		{"@", "Unexpected token ILLEGAL"},
		{"'abc", "Unexpected token ILLEGAL"},
		{"09", "Unexpected token ILLEGAL"},
		{"3in x", "Unexpected token ILLEGAL"},
		{"/* open", "Unexpected token ILLEGAL"},
	})
}

func TestParserUsedOnce(t *testing.T) {
	p := New("a;")
	_, err := p.Parse(context.Background())
	require.NoError(t, err)

	_, err = p.Parse(context.Background())
	assert.ErrorIs(t, err, ErrParserUsed)
	_, err = p.Tokenize(context.Background())
	assert.ErrorIs(t, err, ErrParserUsed)
}

func TestContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Parse(ctx, "a; b; c;")
	assert.ErrorIs(t, err, context.Canceled)

	_, err = Tokenize(ctx, "a; b; c;")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMaxDepth(t *testing.T) {
	nested := strings.Repeat("(", 600) + "1" + strings.Repeat(")", 600)

	err := parseError(t, nested)
	assert.Equal(t, errors.MaxDepthExceeded.Code, err.Code)

	program := parse(t, nested, WithMaxDepth(5000))
	assert.Len(t, program.Body, 1)

	err = parseError(t, "[[[[[[1]]]]]]", WithMaxDepth(4))
	assert.Equal(t, errors.MaxDepthExceeded.Code, err.Code)
}

func TestLongBinaryChain(t *testing.T) {
	// Operator runs are reduced on a stack, not by recursion.
	src := "a" + strings.Repeat(" + a", 5000)
	program := parse(t, src)
	assert.Len(t, program.Body, 1)
}

func TestFeatureSelection(t *testing.T) {
	// Arrow functions are off by default.
	err := parseError(t, "x => x")
	assert.Equal(t, "Unexpected token >", err.Description)

	program := parse(t, "x => x", WithFeature("arrowFunctions", true))
	assert.Equal(t, "(x) => x;", program.String())

	program = parse(t, "x => x", WithFeatures(syntax.ES6))
	assert.Equal(t, "(x) => x;", program.String())

	// Single features apply on top of the selected set.
	err = parseError(t, "x => x", WithFeatures(syntax.ES6), WithFeature("arrowFunctions", false))
	assert.Equal(t, "Unexpected token >", err.Description)
}

func TestUnknownFeature(t *testing.T) {
	_, err := Parse(context.Background(), "a", WithFeature("teleport", true))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown feature "teleport"`)
}

func TestWithConfig(t *testing.T) {
	cfg := Config{
		Range:    true,
		Preset:   "es6",
		Features: map[string]bool{"jsx": true},
	}
	program := parse(t, "<a />", WithConfig(cfg))
	assert.Equal(t, "<a />;", program.String())
	assert.NotNil(t, program.Body[0].Meta().Range)

	_, err := Parse(context.Background(), "a", WithConfig(Config{Preset: "es2049"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown preset "es2049"`)

	_, err = Parse(context.Background(), "a", WithConfig(Config{Preset: "es7"}))
	require.EqualError(t, err, `unknown preset "es7": did you mean one of: 'es5', 'es6'?`)
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	parse(t, "a; b;", WithLogger(logger))
	assert.Contains(t, buf.String(), `"message":"parse complete"`)
	assert.Contains(t, buf.String(), `"statements":2`)
}

func TestDebugLoggingTolerantErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	program := parse(t, "'use strict';\nwith (a) b;", WithTolerant(true), WithLogger(logger))
	require.Len(t, program.Errors, 1)
	assert.Contains(t, buf.String(), `"at":"2:1"`)
	assert.Contains(t, buf.String(), `"message":"Strict mode code may not include a with statement"`)
}

func TestUnexpectedIdentifierHint(t *testing.T) {
	err := parseError(t, "fucntion f() {}")
	assert.Equal(t, "Unexpected identifier", err.Description)
	assert.Equal(t, "did you mean 'function'?", err.Hint)

	err = parseError(t, "x = 1;\nretrun x;")
	assert.Equal(t, "did you mean 'return'?", err.Hint)

	for _, src := range []string{"foo bar", "alpha beta", "a\n+b c"} {
		err := parseError(t, src)
		assert.Equal(t, "Unexpected identifier", err.Description, src)
		assert.Empty(t, err.Hint, src)
	}
}

func TestLetIsKeyword(t *testing.T) {
	program := parse(t, "let x = 1; const y = 2;")
	assert.Equal(t, "let x = 1;\nconst y = 2;", program.String())

	err := parseError(t, "let x = 1", WithFeatures(syntax.ES5))
	assert.Equal(t, "Unexpected token let", err.Description)
}
