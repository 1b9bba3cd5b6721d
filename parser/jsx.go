package parser

import (
	"strconv"
	"strings"

	"github.com/deepnoodle-ai/esparse/ast"
	"github.com/deepnoodle-ai/esparse/errors"
	"github.com/deepnoodle-ai/esparse/internal/invariant"
	"github.com/deepnoodle-ai/esparse/internal/token"
	"github.com/deepnoodle-ai/esparse/syntax"
)

// Markup scanning

func (p *Parser) scanJSXIdentifier() *token.Token {
	start := p.pos()
	for p.index < p.length {
		r, w := p.charAt(p.index)
		if !syntax.IsJSXIdentifierPart(r) {
			break
		}
		p.index += w
	}
	return p.token(token.JSX_IDENTIFIER, p.src[start.Char:p.index], start)
}

// scanJSXEntity decodes a character reference starting at "&". Anything
// that is not a well-formed reference within ten characters is plain text.
func (p *Parser) scanJSXEntity() string {
	invariant.Precondition(p.byteAt(p.index) == '&', "entity must start with an ampersand")
	start := p.index
	p.index++

	var name strings.Builder
	terminated := false
	for count := 0; p.index < p.length && count < 10; count++ {
		c := p.byteAt(p.index)
		p.index++
		if c == ';' {
			terminated = true
			break
		}
		name.WriteByte(c)
	}

	if terminated {
		str := name.String()
		if strings.HasPrefix(str, "#") {
			var code uint64
			var err error
			if strings.HasPrefix(str, "#x") {
				code, err = strconv.ParseUint(str[2:], 16, 32)
			} else {
				code, err = strconv.ParseUint(str[1:], 10, 32)
			}
			if err == nil && code <= 0x10FFFF {
				return string(rune(code))
			}
		} else if text, ok := xhtmlEntities[str]; ok {
			return text
		}
	}

	p.index = start + 1
	return "&"
}

// scanJSXText scans markup text up to one of the stop characters.
func (p *Parser) scanJSXText(stop string) *token.Token {
	start := p.pos()
	var str strings.Builder
	for p.index < p.length {
		c := p.byteAt(p.index)
		if strings.IndexByte(stop, c) >= 0 {
			break
		}
		if c == '&' {
			str.WriteString(p.scanJSXEntity())
			continue
		}
		r, w := p.charAt(p.index)
		p.index += w
		if r == '\r' && p.byteAt(p.index) == '\n' {
			str.WriteRune(r)
			r = '\n'
			p.index++
		}
		if syntax.IsLineTerminator(r) {
			p.lineNumber++
			p.lineStart = p.index
		}
		str.WriteRune(r)
	}
	return p.token(token.JSX_TEXT, str.String(), start)
}

// scanJSXStringLiteral scans a quoted attribute value. The token spans the
// quotes; its value is the decoded text between them.
func (p *Parser) scanJSXStringLiteral() *token.Token {
	start := p.pos()
	quote := p.byteAt(p.index)
	invariant.Precondition(quote == '"' || quote == '\'', "string literal must start with a quote")
	p.index++

	inner := p.scanJSXText(string(quote))
	if p.byteAt(p.index) != quote {
		p.illegal()
	}
	p.index++

	return p.token(token.JSX_TEXT, inner.Value, start)
}

// advanceJSXChild scans between an element's tags, where anything but a
// nested tag or an expression container is text.
func (p *Parser) advanceJSXChild() *token.Token {
	if c := p.byteAt(p.index); c != '{' && c != '<' {
		return p.scanJSXText("<{")
	}
	return p.scanPunctuator()
}

// Markup grammar

// jsxName returns the source form of an element name, used to match
// opening and closing tags.
func jsxName(n ast.Node) string {
	switch n := n.(type) {
	case *ast.JSXIdentifier:
		return n.Name
	case *ast.JSXNamespacedName:
		return n.Namespace.Name + ":" + n.Name.Name
	case *ast.JSXMemberExpression:
		return jsxName(n.Object) + "." + jsxName(n.Property)
	}
	invariant.Invariant(false, "unexpected element name %T", n)
	return ""
}

func (p *Parser) parseJSXIdentifier() *ast.JSXIdentifier {
	m := p.markerCreate()
	if p.lookahead.Type != token.JSX_IDENTIFIER {
		p.throwUnexpected(p.lookahead)
	}
	tok := p.lex()
	return finishNode(p, m, ast.NewJSXIdentifier(tok.Value))
}

func (p *Parser) parseJSXNamespacedName() *ast.JSXNamespacedName {
	m := p.markerCreate()
	namespace := p.parseJSXIdentifier()
	p.expect(":")
	name := p.parseJSXIdentifier()
	return finishNode(p, m, ast.NewJSXNamespacedName(namespace, name))
}

func (p *Parser) parseJSXMemberExpression() ast.Node {
	m := p.markerCreate()
	var expr ast.Node = p.parseJSXIdentifier()
	for p.match(".") {
		p.lex()
		expr = finishNode(p, m, ast.NewJSXMemberExpression(expr, p.parseJSXIdentifier()))
	}
	return expr
}

func (p *Parser) parseJSXElementName() ast.Node {
	switch p.lookahead2().Value {
	case ":":
		return p.parseJSXNamespacedName()
	case ".":
		return p.parseJSXMemberExpression()
	}
	return p.parseJSXIdentifier()
}

func (p *Parser) parseJSXAttributeName() ast.Node {
	if p.lookahead2().Value == ":" {
		return p.parseJSXNamespacedName()
	}
	return p.parseJSXIdentifier()
}

func (p *Parser) parseJSXAttributeValue() ast.Node {
	switch {
	case p.match("{"):
		value := p.parseJSXExpressionContainer()
		if _, empty := value.Expression.(*ast.JSXEmptyExpression); empty {
			p.throwError(nil, errors.EmptyJSXAttributeValue)
		}
		return value
	case p.match("<"):
		return p.parseJSXElement()
	case p.lookahead.Type == token.JSX_TEXT:
		m := p.markerCreate()
		return finishNode(p, m, p.literalFromToken(p.lex()))
	}
	p.throwError(nil, errors.InvalidJSXAttributeValue)
	return nil
}

func (p *Parser) parseJSXEmptyExpression() *ast.JSXEmptyExpression {
	m := p.markerCreatePreserveWhitespace()
	for p.index < p.length && p.byteAt(p.index) != '}' {
		r, w := p.charAt(p.index)
		p.index += w
		if syntax.IsLineTerminator(r) {
			if r == '\r' && p.byteAt(p.index) == '\n' {
				p.index++
			}
			p.lineNumber++
			p.lineStart = p.index
		}
	}
	return finishNode(p, m, ast.NewJSXEmptyExpression())
}

func (p *Parser) parseJSXExpressionContainer() *ast.JSXExpressionContainer {
	m := p.markerCreate()
	inChild, inTag := p.state.inJSXChild, p.state.inJSXTag
	p.state.inJSXChild = false
	p.state.inJSXTag = false

	p.expect("{")

	var expr ast.Expr
	if p.match("}") {
		expr = p.parseJSXEmptyExpression()
	} else {
		expr = p.parseExpression()
	}

	p.state.inJSXChild = inChild
	p.state.inJSXTag = inTag

	p.expect("}")
	return finishNode(p, m, ast.NewJSXExpressionContainer(expr))
}

func (p *Parser) parseJSXSpreadAttribute() *ast.JSXSpreadAttribute {
	m := p.markerCreate()
	inChild, inTag := p.state.inJSXChild, p.state.inJSXTag
	p.state.inJSXChild = false
	p.state.inJSXTag = false
	p.state.inJSXSpreadAttribute = true

	p.expect("{")
	p.expect("...")

	p.state.inJSXSpreadAttribute = false

	expr := p.parseAssignmentExpression()

	p.state.inJSXChild = inChild
	p.state.inJSXTag = inTag

	p.expect("}")
	return finishNode(p, m, ast.NewJSXSpreadAttribute(expr))
}

func (p *Parser) parseJSXAttribute() ast.Node {
	if p.match("{") {
		return p.parseJSXSpreadAttribute()
	}

	m := p.markerCreate()
	name := p.parseJSXAttributeName()

	// A bare name is an attribute without a value.
	if p.match("=") {
		p.lex()
		return finishNode(p, m, ast.NewJSXAttribute(name, p.parseJSXAttributeValue()))
	}
	return finishNode(p, m, ast.NewJSXAttribute(name, nil))
}

func (p *Parser) parseJSXChild() ast.Node {
	switch {
	case p.match("{"):
		return p.parseJSXExpressionContainer()
	case p.lookahead.Type == token.JSX_TEXT:
		m := p.markerCreatePreserveWhitespace()
		return finishNode(p, m, p.literalFromToken(p.lex()))
	}
	return p.parseJSXElement()
}

func (p *Parser) parseJSXClosingElement() *ast.JSXClosingElement {
	m := p.markerCreate()
	inChild, inTag := p.state.inJSXChild, p.state.inJSXTag
	p.state.inJSXChild = false
	p.state.inJSXTag = true

	p.expect("<")
	p.expect("/")
	name := p.parseJSXElementName()

	// The token after ">" is scanned in the surrounding mode.
	p.state.inJSXChild = inChild
	p.state.inJSXTag = inTag
	p.expect(">")
	return finishNode(p, m, ast.NewJSXClosingElement(name))
}

func (p *Parser) parseJSXOpeningElement() *ast.JSXOpeningElement {
	m := p.markerCreate()
	inChild, inTag := p.state.inJSXChild, p.state.inJSXTag
	p.state.inJSXChild = false
	p.state.inJSXTag = true

	p.expect("<")
	name := p.parseJSXElementName()

	var attributes []ast.Node
	for p.index < p.length && !p.match("/") && !p.match(">") {
		attributes = append(attributes, p.parseJSXAttribute())
	}

	p.state.inJSXTag = inTag

	selfClosing := false
	if p.match("/") {
		p.expect("/")
		p.state.inJSXChild = inChild
		p.expect(">")
		selfClosing = true
	} else {
		p.state.inJSXChild = true
		p.expect(">")
	}
	return finishNode(p, m, ast.NewJSXOpeningElement(name, attributes, selfClosing))
}

func (p *Parser) parseJSXElement() *ast.JSXElement {
	p.enter()
	defer p.leave()

	m := p.markerCreate()
	inChild, inTag := p.state.inJSXChild, p.state.inJSXTag
	opening := p.parseJSXOpeningElement()

	var closing *ast.JSXClosingElement
	var children []ast.Node
	if !opening.SelfClosing {
		for p.index < p.length {
			// "</" ends the children; look past "<" in expression mode.
			p.state.inJSXChild = false
			if p.match("<") && p.lookahead2().Value == "/" {
				break
			}
			p.state.inJSXChild = true
			children = append(children, p.parseJSXChild())
		}
		p.state.inJSXChild = inChild
		p.state.inJSXTag = inTag
		closing = p.parseJSXClosingElement()
		if jsxName(closing.Name) != jsxName(opening.Name) {
			p.throwError(nil, errors.ExpectedJSXClosingTag, jsxName(opening.Name))
		}
	}

	// Two adjacent elements are almost always a mistake rather than a
	// less-than comparison.
	if !inChild && p.match("<") {
		p.throwError(p.lookahead, errors.AdjacentJSXElements)
	}

	return finishNode(p, m, ast.NewJSXElement(opening, closing, children))
}
