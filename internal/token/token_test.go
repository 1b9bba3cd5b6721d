package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeNames(t *testing.T) {
	tests := []struct {
		typ  Type
		name string
	}{
		{BOOLEAN, "Boolean"},
		{EOF, "<end>"},
		{IDENTIFIER, "Identifier"},
		{KEYWORD, "Keyword"},
		{NULL, "Null"},
		{NUMERIC, "Numeric"},
		{PUNCTUATOR, "Punctuator"},
		{STRING, "String"},
		{REGEXP, "RegularExpression"},
		{TEMPLATE, "Template"},
		{JSX_IDENTIFIER, "JSXIdentifier"},
		{JSX_TEXT, "JSXText"},
		{Type(99), "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.typ.String())
	}
}

func TestPositionColumn(t *testing.T) {
	pos := Position{Char: 12, LineStart: 10, Line: 2}
	assert.Equal(t, 2, pos.Column())
}

func TestTokenMatchers(t *testing.T) {
	punct := &Token{Type: PUNCTUATOR, Value: "("}
	kw := &Token{Type: KEYWORD, Value: "in"}
	str := &Token{Type: STRING, Value: "("}

	assert.True(t, punct.Is("("))
	assert.True(t, punct.Punctuator("("))
	assert.False(t, punct.Keyword("("))
	assert.True(t, kw.Keyword("in"))
	assert.True(t, kw.Is("in"))
	assert.False(t, str.Is("("))
}

func TestFnExprTokens(t *testing.T) {
	for _, v := range []string{"(", "return", "typeof", ">>>=", "!=="} {
		assert.True(t, FnExprTokens[v], v)
	}
	for _, v := range []string{")", "]", "}", "this", "x"} {
		assert.False(t, FnExprTokens[v], v)
	}
}
