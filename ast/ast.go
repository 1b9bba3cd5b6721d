// Package ast defines the ESTree-shaped syntax tree produced by the parser.
//
// Every node embeds *Base, which carries the ESTree "type" tag and the
// optional range, location and attached comments. Nodes marshal to the JSON
// shape ESTree consumers expect.
package ast

// Node represents a portion of the syntax tree.
type Node interface {
	// Type returns the ESTree type name, e.g. "BinaryExpression".
	Type() string

	// Meta returns the node's position and comment metadata.
	Meta() *Base

	// String returns a human friendly representation of the Node. This should
	// be similar to the original source code, but not necessarily identical.
	String() string
}

// Stmt represents a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr represents an expression node.
type Expr interface {
	Node
	exprNode()
}

// Pattern represents a binding or assignment target: an identifier, a member
// expression, or an object or array destructuring pattern.
type Pattern interface {
	Node
	patternNode()
}

// Base holds the fields shared by all nodes. A node converted from one shape
// to another (an object literal reinterpreted as a pattern) shares its Base
// with the original, so metadata recorded on either is visible on both.
type Base struct {
	NodeType         string          `json:"type"`
	Range            *Range          `json:"range,omitempty"`
	Loc              *SourceLocation `json:"loc,omitempty"`
	LeadingComments  []*Comment      `json:"leadingComments,omitempty"`
	TrailingComments []*Comment      `json:"trailingComments,omitempty"`
}

func newBase(nodeType string) *Base {
	return &Base{NodeType: nodeType}
}

// Type returns the ESTree type name.
func (b *Base) Type() string { return b.NodeType }

// Meta returns b.
func (b *Base) Meta() *Base { return b }

// Start returns the start offset, or -1 when ranges were not recorded.
func (b *Base) Start() int {
	if b.Range == nil {
		return -1
	}
	return b.Range[0]
}

// End returns the end offset, or -1 when ranges were not recorded.
func (b *Base) End() int {
	if b.Range == nil {
		return -1
	}
	return b.Range[1]
}

// Range is a half-open [start, end) byte range into the source.
type Range [2]int

// Position is a line/column pair. Lines are 1-based, columns 0-based.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// SourceLocation is the line/column span of a node, token or comment.
type SourceLocation struct {
	Start  Position `json:"start"`
	End    Position `json:"end"`
	Source string   `json:"source,omitempty"`
}

// Comment is a line or block comment found in the source.
type Comment struct {
	Type  string          `json:"type"` // "Line" or "Block"
	Value string          `json:"value"`
	Range *Range          `json:"range,omitempty"`
	Loc   *SourceLocation `json:"loc,omitempty"`
}

// Token is an entry of the public token stream.
type Token struct {
	Type  string          `json:"type"`
	Value string          `json:"value"`
	Range *Range          `json:"range,omitempty"`
	Loc   *SourceLocation `json:"loc,omitempty"`
	Regex *Regex          `json:"regex,omitempty"`
}

// Regex holds the pattern and flags of a regular expression literal.
type Regex struct {
	Pattern string `json:"pattern"`
	Flags   string `json:"flags"`
}
