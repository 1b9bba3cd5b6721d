// Package token defines the raw token kinds produced by the scanner.
package token

import "github.com/dlclark/regexp2"

// Type describes the kind of a scanned token.
type Type int

// Token types
const (
	ILLEGAL Type = iota
	BOOLEAN
	EOF
	IDENTIFIER
	KEYWORD
	NULL
	NUMERIC
	PUNCTUATOR
	STRING
	REGEXP
	TEMPLATE
	JSX_IDENTIFIER
	JSX_TEXT
)

// names maps token types to the names used in public token streams.
var names = [...]string{
	ILLEGAL:        "Illegal",
	BOOLEAN:        "Boolean",
	EOF:            "<end>",
	IDENTIFIER:     "Identifier",
	KEYWORD:        "Keyword",
	NULL:           "Null",
	NUMERIC:        "Numeric",
	PUNCTUATOR:     "Punctuator",
	STRING:         "String",
	REGEXP:         "RegularExpression",
	TEMPLATE:       "Template",
	JSX_IDENTIFIER: "JSXIdentifier",
	JSX_TEXT:       "JSXText",
}

// String returns the external name of the token type.
func (t Type) String() string {
	if t >= 0 && int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// Position points to a particular location in an input string.
type Position struct {
	Char      int // byte offset within the source
	LineStart int // byte offset of the start of the current line
	Line      int // 1-indexed line number
}

// Column returns the 0-indexed byte column of the position.
func (p Position) Column() int {
	return p.Char - p.LineStart
}

// Token represents one token scanned from the input source code.
//
// Line and LineStart describe the scanner position at the end of the token,
// which is where the cursor resumes after the token is consumed. Start holds
// the position of the first character.
type Token struct {
	Type  Type
	Value string // identifier name, keyword, punctuator, cooked string or markup text
	Start Position
	End   int // byte offset just past the token

	Line      int
	LineStart int

	// Numeric literals
	Number float64

	// Octal is set for legacy octal numbers and strings with octal escapes.
	Octal bool

	// Template pieces
	Cooked string
	Raw    string
	Head   bool
	Tail   bool

	// Regular expressions
	Pattern string
	Flags   string
	Regexp  *regexp2.Regexp
}

// Is reports whether the token is a punctuator or keyword with the given value.
func (t *Token) Is(value string) bool {
	return (t.Type == PUNCTUATOR || t.Type == KEYWORD) && t.Value == value
}

// Punctuator reports whether the token is the given punctuator.
func (t *Token) Punctuator(value string) bool {
	return t.Type == PUNCTUATOR && t.Value == value
}

// Keyword reports whether the token is the given keyword.
func (t *Token) Keyword(value string) bool {
	return t.Type == KEYWORD && t.Value == value
}

// FnExprTokens lists the token values after which a "function" keyword starts
// a function expression rather than a declaration. A regular expression may
// also begin after any of them.
var FnExprTokens = map[string]bool{
	"(": true, "{": true, "[": true, "in": true, "typeof": true, "instanceof": true,
	"new": true, "return": true, "case": true, "delete": true, "throw": true, "void": true,
	// assignment operators
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true, "<<=": true,
	">>=": true, ">>>=": true, "&=": true, "|=": true, "^=": true, ",": true,
	// binary/unary operators
	"+": true, "-": true, "*": true, "/": true, "%": true, "++": true, "--": true,
	"<<": true, ">>": true, ">>>": true, "&": true, "|": true, "^": true, "!": true,
	"~": true, "&&": true, "||": true, "?": true, ":": true, "===": true, "==": true,
	">=": true, "<=": true, "<": true, ">": true, "!=": true, "!==": true,
}
