package parser

import (
	"github.com/deepnoodle-ai/esparse/ast"
	"github.com/deepnoodle-ai/esparse/internal/token"
)

// Precedence order for binary operators
const (
	_ int = iota
	LOGICAL_OR  // ||
	LOGICAL_AND // &&
	BIT_OR      // |
	BIT_XOR     // ^
	BIT_AND     // &
	EQUALS      // == != === !==
	RELATIONAL  // < > <= >= instanceof in
	SHIFT       // << >> >>>
	SUM         // + -
	PRODUCT     // * / %
)

// Precedences for each binary operator
var precedences = map[string]int{
	"||":         LOGICAL_OR,
	"&&":         LOGICAL_AND,
	"|":          BIT_OR,
	"^":          BIT_XOR,
	"&":          BIT_AND,
	"==":         EQUALS,
	"!=":         EQUALS,
	"===":        EQUALS,
	"!==":        EQUALS,
	"<":          RELATIONAL,
	">":          RELATIONAL,
	"<=":         RELATIONAL,
	">=":         RELATIONAL,
	"instanceof": RELATIONAL,
	"in":         RELATIONAL,
	"<<":         SHIFT,
	">>":         SHIFT,
	">>>":        SHIFT,
	"+":          SUM,
	"-":          SUM,
	"*":          PRODUCT,
	"/":          PRODUCT,
	"%":          PRODUCT,
}

// binaryPrecedence returns the precedence of tok as a binary operator, or 0
// when it is not one. "in" is not an operator inside a for statement head.
func binaryPrecedence(tok *token.Token, allowIn bool) int {
	if tok.Type != token.PUNCTUATOR && tok.Type != token.KEYWORD {
		return 0
	}
	if tok.Value == "in" && !allowIn {
		return 0
	}
	return precedences[tok.Value]
}

// operand is one entry of the binary expression stack: an expression, or
// an operator with its precedence.
type operand struct {
	expr ast.Expr
	op   string
	prec int
}

// parseBinaryExpression parses a run of binary operators with a shift-reduce
// loop over an explicit stack, which keeps the recursion depth constant no
// matter how long the run is.
func (p *Parser) parseBinaryExpression() ast.Expr {
	previousAllowIn := p.state.allowIn
	p.state.allowIn = true
	defer func() { p.state.allowIn = previousAllowIn }()

	m := p.markerCreate()
	left := p.parseUnaryExpression()

	prec := binaryPrecedence(p.lookahead, previousAllowIn)
	if prec == 0 {
		return left
	}
	op := p.lex()

	markers := []marker{m, p.markerCreate()}
	right := p.parseUnaryExpression()

	stack := []operand{{expr: left}, {op: op.Value, prec: prec}, {expr: right}}

	for {
		prec = binaryPrecedence(p.lookahead, previousAllowIn)
		if prec == 0 {
			break
		}

		// Reduce: make a binary expression from the three topmost entries.
		for len(stack) > 2 && prec <= stack[len(stack)-2].prec {
			n := len(stack)
			expr := ast.NewBinaryExpression(stack[n-2].op, stack[n-3].expr, stack[n-1].expr)
			markers = markers[:len(markers)-1]
			p.markerApply(markers[len(markers)-1], expr)
			stack = append(stack[:n-3], operand{expr: expr})
		}

		// Shift.
		op = p.lex()
		stack = append(stack, operand{op: op.Value, prec: prec})
		markers = append(markers, p.markerCreate())
		stack = append(stack, operand{expr: p.parseUnaryExpression()})
	}

	// Final reduce to clean up the stack.
	i := len(stack) - 1
	expr := stack[i].expr
	markers = markers[:len(markers)-1]
	for i > 1 {
		expr = ast.NewBinaryExpression(stack[i-1].op, stack[i-2].expr, expr)
		i -= 2
		m, markers = markers[len(markers)-1], markers[:len(markers)-1]
		p.markerApply(m, expr)
	}
	return expr
}
