package parser

import (
	"github.com/deepnoodle-ai/esparse/internal/token"
)

// expect consumes the next token, which must be the punctuator value.
func (p *Parser) expect(value string) {
	tok := p.lex()
	if !tok.Punctuator(value) {
		p.throwUnexpected(tok)
	}
}

// expectKeyword consumes the next token, which must be the keyword.
func (p *Parser) expectKeyword(keyword string) {
	tok := p.lex()
	if !tok.Keyword(keyword) {
		p.throwUnexpected(tok)
	}
}

func (p *Parser) match(value string) bool {
	return p.lookahead.Punctuator(value)
}

func (p *Parser) matchKeyword(keyword string) bool {
	return p.lookahead.Keyword(keyword)
}

// matchContextualKeyword matches an identifier that acts as a keyword in
// some positions, such as "of".
func (p *Parser) matchContextualKeyword(keyword string) bool {
	return p.lookahead.Type == token.IDENTIFIER && p.lookahead.Value == keyword
}

var assignOperators = map[string]bool{
	"=": true, "*=": true, "/=": true, "%=": true, "+=": true, "-=": true,
	"<<=": true, ">>=": true, ">>>=": true, "&=": true, "^=": true, "|=": true,
}

func (p *Parser) matchAssign() bool {
	return p.lookahead.Type == token.PUNCTUATOR && assignOperators[p.lookahead.Value]
}

// consumeSemicolon ends a statement: an explicit semicolon, a line break,
// a closing brace or the end of input.
func (p *Parser) consumeSemicolon() {
	if p.byteAt(p.index) == ';' || p.match(";") {
		p.lex()
		return
	}

	line := p.lineNumber
	p.skipComment()
	if p.lineNumber != line {
		return
	}

	if p.lookahead.Type != token.EOF && !p.match("}") {
		p.throwUnexpected(p.lookahead)
	}
}
