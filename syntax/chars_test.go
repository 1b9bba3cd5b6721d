package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigits(t *testing.T) {
	for _, r := range "0123456789" {
		assert.True(t, IsDecimalDigit(r))
		assert.True(t, IsHexDigit(r))
	}
	for _, r := range "abcdefABCDEF" {
		assert.True(t, IsHexDigit(r))
		assert.False(t, IsDecimalDigit(r))
	}
	assert.True(t, IsOctalDigit('7'))
	assert.False(t, IsOctalDigit('8'))
	assert.False(t, IsHexDigit('g'))
}

func TestWhiteSpaceAndLineTerminators(t *testing.T) {
	for _, r := range []rune{' ', '\t', '\v', '\f', 0xA0, 0x1680, 0x2000, 0x200A, 0x202F, 0x3000, 0xFEFF} {
		assert.True(t, IsWhiteSpace(r), "%U", r)
	}
	for _, r := range []rune{'\n', '\r', 'a', 0x200B} {
		assert.False(t, IsWhiteSpace(r), "%U", r)
	}
	for _, r := range []rune{'\n', '\r', 0x2028, 0x2029} {
		assert.True(t, IsLineTerminator(r), "%U", r)
	}
	assert.False(t, IsLineTerminator(' '))
}

func TestIdentifierChars(t *testing.T) {
	tests := []struct {
		r     rune
		start bool
		part  bool
	}{
		{'a', true, true},
		{'Z', true, true},
		{'$', true, true},
		{'_', true, true},
		{'\\', true, true},
		{'0', false, true},
		{'-', false, false},
		{'é', true, true},
		{'π', true, true},
		{0x200C, false, true},
		{0x0301, false, true}, // combining acute accent
		{'‿', false, true},    // connector punctuation
		{' ', false, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.start, IsIdentifierStart(tt.r), "start %U", tt.r)
		assert.Equal(t, tt.part, IsIdentifierPart(tt.r), "part %U", tt.r)
	}
}

func TestJSXIdentifierChars(t *testing.T) {
	assert.True(t, IsJSXIdentifierStart('d'))
	assert.False(t, IsJSXIdentifierStart('-'))
	assert.True(t, IsJSXIdentifierPart('-'))
	assert.False(t, IsJSXIdentifierStart('\\'))
	assert.False(t, IsJSXIdentifierPart('\\'))
}
