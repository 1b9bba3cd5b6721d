package parser

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/esparse/ast"
	"github.com/deepnoodle-ai/esparse/syntax"
)

func tokenize(t *testing.T, src string, opts ...Option) *TokenStream {
	t.Helper()
	stream, err := Tokenize(context.Background(), src, opts...)
	require.NoError(t, err)
	return stream
}

func tok(typ, value string) *ast.Token {
	return &ast.Token{Type: typ, Value: value}
}

func regexTok(value, pattern, flags string) *ast.Token {
	return &ast.Token{Type: "RegularExpression", Value: value, Regex: &ast.Regex{Pattern: pattern, Flags: flags}}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		features syntax.Features
		expected []*ast.Token
	}{
		{
			name:  "declaration",
			input: "var answer = 42;",
			expected: []*ast.Token{
				tok("Keyword", "var"),
				tok("Identifier", "answer"),
				tok("Punctuator", "="),
				tok("Numeric", "42"),
				tok("Punctuator", ";"),
			},
		},
		{
			name:  "literals",
			input: `x = null || true && "s" || 'q' || 0x1F`,
			expected: []*ast.Token{
				tok("Identifier", "x"),
				tok("Punctuator", "="),
				tok("Null", "null"),
				tok("Punctuator", "||"),
				tok("Boolean", "true"),
				tok("Punctuator", "&&"),
				tok("String", `"s"`),
				tok("Punctuator", "||"),
				tok("String", `'q'`),
				tok("Punctuator", "||"),
				tok("Numeric", "0x1F"),
			},
		},
		{
			name:  "long punctuators",
			input: "a >>>= b !== c <<= d",
			expected: []*ast.Token{
				tok("Identifier", "a"),
				tok("Punctuator", ">>>="),
				tok("Identifier", "b"),
				tok("Punctuator", "!=="),
				tok("Identifier", "c"),
				tok("Punctuator", "<<="),
				tok("Identifier", "d"),
			},
		},
		{
			name:  "regex after assignment",
			input: "re = /ab+c/gi;",
			expected: []*ast.Token{
				tok("Identifier", "re"),
				tok("Punctuator", "="),
				regexTok("/ab+c/gi", "ab+c", "gi"),
				tok("Punctuator", ";"),
			},
		},
		{
			name:  "division after identifier",
			input: "a / b / c",
			expected: []*ast.Token{
				tok("Identifier", "a"),
				tok("Punctuator", "/"),
				tok("Identifier", "b"),
				tok("Punctuator", "/"),
				tok("Identifier", "c"),
			},
		},
		{
			name:  "regex after if condition",
			input: "if (x) /re/.test(y)",
			expected: []*ast.Token{
				tok("Keyword", "if"),
				tok("Punctuator", "("),
				tok("Identifier", "x"),
				tok("Punctuator", ")"),
				regexTok("/re/", "re", ""),
				tok("Punctuator", "."),
				tok("Identifier", "test"),
				tok("Punctuator", "("),
				tok("Identifier", "y"),
				tok("Punctuator", ")"),
			},
		},
		{
			name:  "division after call",
			input: "f(x) / 2",
			expected: []*ast.Token{
				tok("Identifier", "f"),
				tok("Punctuator", "("),
				tok("Identifier", "x"),
				tok("Punctuator", ")"),
				tok("Punctuator", "/"),
				tok("Numeric", "2"),
			},
		},
		{
			name:  "regex at start",
			input: "/[/]/",
			expected: []*ast.Token{
				regexTok("/[/]/", "[/]", ""),
			},
		},
		{
			name:  "regex after keyword",
			input: "return /x/",
			expected: []*ast.Token{
				tok("Keyword", "return"),
				regexTok("/x/", "x", ""),
			},
		},
		{
			name:  "division after closing bracket",
			input: "a[0] / 2",
			expected: []*ast.Token{
				tok("Identifier", "a"),
				tok("Punctuator", "["),
				tok("Numeric", "0"),
				tok("Punctuator", "]"),
				tok("Punctuator", "/"),
				tok("Numeric", "2"),
			},
		},
		{
			name:     "template",
			input:    "`a${b}c${d}e`",
			features: syntax.ES6,
			expected: []*ast.Token{
				tok("Template", "`a${"),
				tok("Identifier", "b"),
				tok("Template", "}c${"),
				tok("Identifier", "d"),
				tok("Template", "}e`"),
			},
		},
		{
			name:     "template with object in substitution",
			input:    "`${ {a: 1} }`",
			features: syntax.ES6,
			expected: []*ast.Token{
				tok("Template", "`${"),
				tok("Punctuator", "{"),
				tok("Identifier", "a"),
				tok("Punctuator", ":"),
				tok("Numeric", "1"),
				tok("Punctuator", "}"),
				tok("Template", "}`"),
			},
		},
		{
			name:  "spread is split without the feature",
			input: "...x",
			expected: []*ast.Token{
				tok("Punctuator", "."),
				tok("Punctuator", "."),
				tok("Punctuator", "."),
				tok("Identifier", "x"),
			},
		},
		{
			name:     "arrow",
			input:    "(a) => a",
			features: syntax.ES6,
			expected: []*ast.Token{
				tok("Punctuator", "("),
				tok("Identifier", "a"),
				tok("Punctuator", ")"),
				tok("Punctuator", "=>"),
				tok("Identifier", "a"),
			},
		},
		{
			name:  "comments are skipped",
			input: "a /* b */ // c\n<!-- d\n--> e\nf",
			expected: []*ast.Token{
				tok("Identifier", "a"),
				tok("Identifier", "f"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			features := tt.features
			if features == (syntax.Features{}) {
				features = syntax.DefaultFeatures
			}
			stream := tokenize(t, tt.input, WithFeatures(features))
			if diff := cmp.Diff(tt.expected, stream.Tokens); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenLocations(t *testing.T) {
	stream := tokenize(t, "a\n+b", WithRange(true), WithLoc(true))
	expected := []*ast.Token{
		{
			Type: "Identifier", Value: "a", Range: &ast.Range{0, 1},
			Loc: &ast.SourceLocation{Start: ast.Position{Line: 1, Column: 0}, End: ast.Position{Line: 1, Column: 1}},
		},
		{
			Type: "Punctuator", Value: "+", Range: &ast.Range{2, 3},
			Loc: &ast.SourceLocation{Start: ast.Position{Line: 2, Column: 0}, End: ast.Position{Line: 2, Column: 1}},
		},
		{
			Type: "Identifier", Value: "b", Range: &ast.Range{3, 4},
			Loc: &ast.SourceLocation{Start: ast.Position{Line: 2, Column: 1}, End: ast.Position{Line: 2, Column: 2}},
		},
	}
	if diff := cmp.Diff(expected, stream.Tokens); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeComments(t *testing.T) {
	stream := tokenize(t, "a // one\n/* two */ b", WithComments(true), WithRange(true))
	expected := []*ast.Comment{
		{Type: "Line", Value: " one", Range: &ast.Range{2, 8}},
		{Type: "Block", Value: " two ", Range: &ast.Range{9, 18}},
	}
	if diff := cmp.Diff(expected, stream.Comments); diff != "" {
		t.Errorf("comments mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, stream.Tokens, 2)

	stream = tokenize(t, "a", WithComments(true))
	assert.NotNil(t, stream.Comments)
	assert.Empty(t, stream.Comments)
}

func TestTokenizeErrors(t *testing.T) {
	_, err := Tokenize(context.Background(), "a = 'open")
	require.Error(t, err)
	assert.Equal(t, "Line 1: Unexpected token ILLEGAL", err.Error())

	_, err = Tokenize(context.Background(), "/unterminated")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid regular expression: missing /")
}

func TestTokenizeTolerant(t *testing.T) {
	stream := tokenize(t, "a = 'open\nb", WithTolerant(true))
	assert.Equal(t, []*ast.Token{tok("Identifier", "a"), tok("Punctuator", "=")}, stream.Tokens)
	require.Len(t, stream.Errors, 1)
	assert.Equal(t, "Unexpected token ILLEGAL", stream.Errors[0].Description)
	assert.Equal(t, 1, stream.Errors[0].LineNumber)

	// An error on the very first token still produces a stream.
	stream = tokenize(t, "#", WithTolerant(true))
	assert.Empty(t, stream.Tokens)
	assert.Len(t, stream.Errors, 1)
}

func TestParseTokens(t *testing.T) {
	program := parse(t, "x = /re/g; y = a / b", WithTokens(true))
	expected := []*ast.Token{
		tok("Identifier", "x"),
		tok("Punctuator", "="),
		regexTok("/re/g", "re", "g"),
		tok("Punctuator", ";"),
		tok("Identifier", "y"),
		tok("Punctuator", "="),
		tok("Identifier", "a"),
		tok("Punctuator", "/"),
		tok("Identifier", "b"),
	}
	if diff := cmp.Diff(expected, program.Tokens); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}
