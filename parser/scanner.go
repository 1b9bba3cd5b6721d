package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/deepnoodle-ai/esparse/ast"
	"github.com/deepnoodle-ai/esparse/errors"
	"github.com/deepnoodle-ai/esparse/internal/invariant"
	"github.com/deepnoodle-ai/esparse/internal/token"
	"github.com/deepnoodle-ai/esparse/syntax"
)

// charAt decodes the character at byte offset i. It returns -1 past the end
// of the input.
func (p *Parser) charAt(i int) (rune, int) {
	if i < 0 || i >= p.length {
		return -1, 0
	}
	if c := p.src[i]; c < utf8.RuneSelf {
		return rune(c), 1
	}
	return utf8.DecodeRuneInString(p.src[i:])
}

// byteAt returns the byte at offset i, or 0 past the end of the input.
func (p *Parser) byteAt(i int) byte {
	if i < 0 || i >= p.length {
		return 0
	}
	return p.src[i]
}

func (p *Parser) isDigitAt(i int) bool {
	return syntax.IsDecimalDigit(rune(p.byteAt(i)))
}

// token returns a token of the given type spanning from start to the
// current scan position.
func (p *Parser) token(typ token.Type, value string, start token.Position) *token.Token {
	return &token.Token{
		Type:      typ,
		Value:     value,
		Start:     start,
		End:       p.index,
		Line:      p.lineNumber,
		LineStart: p.lineStart,
	}
}

func (p *Parser) illegal() {
	p.throwLexical(errors.UnexpectedToken, "ILLEGAL")
}

// Comments

func (p *Parser) addComment(kind, value string, start, end int, loc ast.SourceLocation) {
	invariant.Precondition(start <= end, "comment must have a valid range")
	// Comments are skipped again whenever the scanner backs up, so only the
	// first sighting is recorded.
	if p.state.lastCommentStart >= start {
		return
	}
	p.state.lastCommentStart = start

	comment := &ast.Comment{Type: kind, Value: value}
	if p.opts.ranges {
		comment.Range = &ast.Range{start, end}
	}
	if p.opts.locations {
		comment.Loc = &loc
	}
	p.extra.comments = append(p.extra.comments, comment)
	if p.opts.attachComment {
		p.extra.leadingComments = append(p.extra.leadingComments, comment)
		p.extra.trailingComments = append(p.extra.trailingComments, comment)
	}
}

func (p *Parser) skipSingleLineComment(offset int) {
	start := p.index - offset
	loc := ast.SourceLocation{Start: ast.Position{Line: p.lineNumber, Column: p.index - p.lineStart - offset}}

	for p.index < p.length {
		r, w := p.charAt(p.index)
		p.index += w
		if syntax.IsLineTerminator(r) {
			if p.opts.comments {
				end := p.index - w
				loc.End = ast.Position{Line: p.lineNumber, Column: end - p.lineStart}
				p.addComment("Line", p.src[start+offset:end], start, end, loc)
			}
			if r == '\r' && p.byteAt(p.index) == '\n' {
				p.index++
			}
			p.lineNumber++
			p.lineStart = p.index
			return
		}
	}

	if p.opts.comments {
		loc.End = ast.Position{Line: p.lineNumber, Column: p.index - p.lineStart}
		p.addComment("Line", p.src[start+offset:p.index], start, p.index, loc)
	}
}

func (p *Parser) skipMultiLineComment() {
	start := p.index - 2
	loc := ast.SourceLocation{Start: ast.Position{Line: p.lineNumber, Column: p.index - p.lineStart - 2}}

	for p.index < p.length {
		r, w := p.charAt(p.index)
		switch {
		case syntax.IsLineTerminator(r):
			if r == '\r' && p.byteAt(p.index+1) == '\n' {
				p.index++
			}
			p.lineNumber++
			p.index += w
			p.lineStart = p.index
			if p.index >= p.length {
				p.illegal()
			}
		case r == '*' && p.byteAt(p.index+1) == '/':
			p.index += 2
			if p.opts.comments {
				loc.End = ast.Position{Line: p.lineNumber, Column: p.index - p.lineStart}
				p.addComment("Block", p.src[start+2:p.index-2], start, p.index, loc)
			}
			return
		default:
			p.index += w
		}
	}

	p.illegal()
}

// skipComment moves past white space, line terminators and comments.
// HTML-like comments are recognized: "<!--" anywhere and "-->" at the start
// of a line.
func (p *Parser) skipComment() {
	start := p.index == 0
	for p.index < p.length {
		r, w := p.charAt(p.index)
		switch {
		case syntax.IsWhiteSpace(r):
			p.index += w
		case syntax.IsLineTerminator(r):
			p.index += w
			if r == '\r' && p.byteAt(p.index) == '\n' {
				p.index++
			}
			p.lineNumber++
			p.lineStart = p.index
			start = true
		case r == '/':
			switch p.byteAt(p.index + 1) {
			case '/':
				p.index += 2
				p.skipSingleLineComment(2)
				start = true
			case '*':
				p.index += 2
				p.skipMultiLineComment()
			default:
				return
			}
		case start && r == '-':
			if p.byteAt(p.index+1) != '-' || p.byteAt(p.index+2) != '>' {
				return
			}
			p.index += 3
			p.skipSingleLineComment(3)
		case r == '<':
			if !strings.HasPrefix(p.src[p.index+1:], "!--") {
				return
			}
			p.index += 4
			p.skipSingleLineComment(4)
		default:
			return
		}
	}
}

// Identifiers

func hexValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// scanHexEscape reads the digits of a \xHH or \uHHHH escape.
func (p *Parser) scanHexEscape(prefix byte) (rune, bool) {
	n := 2
	if prefix == 'u' {
		n = 4
	}
	var code rune
	for i := 0; i < n; i++ {
		d := hexValue(p.byteAt(p.index))
		if p.index >= p.length || d < 0 {
			return 0, false
		}
		p.index++
		code = code*16 + rune(d)
	}
	return code, true
}

// scanUnicodeCodePointEscape reads the body of a \u{...} escape. The
// opening brace has been consumed.
func (p *Parser) scanUnicodeCodePointEscape() rune {
	if p.byteAt(p.index) == '}' {
		p.illegal()
	}
	var code int64
	closed := false
	for p.index < p.length {
		c := p.byteAt(p.index)
		p.index++
		d := hexValue(c)
		if d < 0 {
			closed = c == '}'
			break
		}
		code = code*16 + int64(d)
		if code > utf8.MaxRune {
			code = utf8.MaxRune + 1
		}
	}
	if code > utf8.MaxRune || !closed {
		p.illegal()
	}
	return rune(code)
}

func (p *Parser) getEscapedIdentifier() string {
	var id strings.Builder

	r, w := p.charAt(p.index)
	p.index += w
	if r == '\\' {
		if p.byteAt(p.index) != 'u' {
			p.illegal()
		}
		p.index++
		ch, ok := p.scanHexEscape('u')
		if !ok || ch == '\\' || !syntax.IsIdentifierStart(ch) {
			p.illegal()
		}
		r = ch
	}
	id.WriteRune(r)

	for p.index < p.length {
		r, w := p.charAt(p.index)
		if !syntax.IsIdentifierPart(r) {
			break
		}
		p.index += w
		if r == '\\' {
			if p.byteAt(p.index) != 'u' {
				p.illegal()
			}
			p.index++
			ch, ok := p.scanHexEscape('u')
			if !ok || ch == '\\' || !syntax.IsIdentifierPart(ch) {
				p.illegal()
			}
			r = ch
		}
		id.WriteRune(r)
	}
	return id.String()
}

func (p *Parser) getIdentifier() string {
	start := p.index
	_, w := p.charAt(p.index)
	p.index += w
	for p.index < p.length {
		r, w := p.charAt(p.index)
		if r == '\\' {
			p.index = start
			return p.getEscapedIdentifier()
		}
		if !syntax.IsIdentifierPart(r) {
			break
		}
		p.index += w
	}
	return p.src[start:p.index]
}

func (p *Parser) scanIdentifier() *token.Token {
	start := p.pos()

	var id string
	if p.byteAt(p.index) == '\\' {
		id = p.getEscapedIdentifier()
	} else {
		id = p.getIdentifier()
	}

	typ := token.IDENTIFIER
	switch {
	case utf8.RuneCountInString(id) == 1:
	case syntax.IsKeyword(id, p.strict, &p.features):
		typ = token.KEYWORD
	case id == "null":
		typ = token.NULL
	case id == "true" || id == "false":
		typ = token.BOOLEAN
	}
	return p.token(typ, id, start)
}

// Punctuators

func (p *Parser) punctuator(start token.Position, n int) *token.Token {
	p.index += n
	return p.token(token.PUNCTUATOR, p.src[start.Char:p.index], start)
}

func (p *Parser) scanPunctuator() *token.Token {
	start := p.pos()
	c := p.byteAt(p.index)

	switch c {
	case '(', ')', ';', ',', '{', '}', '[', ']', ':', '?', '~':
		if p.extra.tokenize {
			if c == '(' {
				p.extra.openParenToken = len(p.extra.tokens)
			} else if c == '{' {
				p.extra.openCurlyToken = len(p.extra.tokens)
			}
		}
		return p.punctuator(start, 1)
	}

	c2 := p.byteAt(p.index + 1)
	if c2 == '=' {
		switch c {
		case '%', '&', '*', '+', '-', '/', '<', '>', '^', '|':
			return p.punctuator(start, 2)
		case '!', '=':
			if p.byteAt(p.index+2) == '=' {
				return p.punctuator(start, 3)
			}
			return p.punctuator(start, 2)
		}
	}

	c3 := p.byteAt(p.index + 2)
	c4 := p.byteAt(p.index + 3)

	if c == '>' && c2 == '>' && c3 == '>' {
		if c4 == '=' {
			return p.punctuator(start, 4)
		}
		return p.punctuator(start, 3)
	}
	if c == '<' && c2 == '<' && c3 == '=' {
		return p.punctuator(start, 3)
	}
	if c == '>' && c2 == '>' && c3 == '=' {
		return p.punctuator(start, 3)
	}

	if p.features.Spread || p.features.RestParams || (p.features.JSX && p.state.inJSXSpreadAttribute) {
		if c == '.' && c2 == '.' && c3 == '.' {
			return p.punctuator(start, 3)
		}
	}

	if c == c2 && strings.IndexByte("+-<>&|", c) >= 0 {
		return p.punctuator(start, 2)
	}

	if p.features.ArrowFunctions && c == '=' && c2 == '>' {
		return p.punctuator(start, 2)
	}

	if c != 0 && strings.IndexByte("<>=!+-*%&|^/.", c) >= 0 {
		return p.punctuator(start, 1)
	}

	p.illegal()
	return nil
}

// advance scans the next token at the current position.
func (p *Parser) advance() *token.Token {
	jsxChild := p.features.JSX && p.state.inJSXChild
	if !jsxChild {
		p.skipComment()
	}

	if p.index >= p.length {
		return p.token(token.EOF, "", p.pos())
	}

	if jsxChild {
		return p.advanceJSXChild()
	}

	c := p.byteAt(p.index)

	if c == '(' || c == ')' || c == ';' {
		return p.scanPunctuator()
	}

	if c == '\'' || c == '"' {
		if p.features.JSX && p.state.inJSXTag {
			return p.scanJSXStringLiteral()
		}
		return p.scanStringLiteral()
	}

	r, _ := p.charAt(p.index)

	if p.features.JSX && p.state.inJSXTag && syntax.IsJSXIdentifierStart(r) {
		return p.scanJSXIdentifier()
	}

	if p.features.TemplateStrings {
		if c == '`' || (c == '}' && p.topCurly() == curlyTemplate) {
			return p.scanTemplate()
		}
	}

	if syntax.IsIdentifierStart(r) {
		return p.scanIdentifier()
	}

	if c == '.' {
		if p.isDigitAt(p.index + 1) {
			return p.scanNumericLiteral()
		}
		return p.scanPunctuator()
	}

	if syntax.IsDecimalDigit(r) {
		return p.scanNumericLiteral()
	}

	if p.extra.tokenize && c == '/' {
		return p.advanceSlash()
	}

	return p.scanPunctuator()
}

// collectToken scans the next token and records it in the token stream.
func (p *Parser) collectToken() *token.Token {
	if !p.features.JSX || !p.state.inJSXChild {
		p.skipComment()
	}
	start := ast.Position{Line: p.lineNumber, Column: p.index - p.lineStart}

	tok := p.advance()
	if tok.Type != token.EOF {
		entry := &ast.Token{
			Type:  tok.Type.String(),
			Value: p.src[tok.Start.Char:tok.End],
			Range: &ast.Range{tok.Start.Char, tok.End},
			Loc: &ast.SourceLocation{
				Start: start,
				End:   ast.Position{Line: p.lineNumber, Column: p.index - p.lineStart},
			},
		}
		if tok.Type == token.REGEXP {
			entry.Regex = &ast.Regex{Pattern: tok.Pattern, Flags: tok.Flags}
		}
		p.extra.tokens = append(p.extra.tokens, entry)
	}
	return tok
}

func (p *Parser) next() *token.Token {
	if p.extra.collect {
		return p.collectToken()
	}
	return p.advance()
}

func (p *Parser) topCurly() curly {
	if n := len(p.extra.curlies); n > 0 {
		return p.extra.curlies[n-1]
	}
	return curlyBrace
}

func (p *Parser) popCurly() {
	if n := len(p.extra.curlies); n > 0 {
		p.extra.curlies = p.extra.curlies[:n-1]
	}
}

// trackCurly records the braces a consumed token opens or closes, so that a
// "}" ending a template substitution is scanned as the next template piece.
func (p *Parser) trackCurly(tok *token.Token) {
	switch {
	case tok.Type == token.TEMPLATE:
		if !tok.Head {
			p.popCurly()
		}
		if !tok.Tail {
			p.extra.curlies = append(p.extra.curlies, curlyTemplate)
		}
	case tok.Punctuator("{"):
		p.extra.curlies = append(p.extra.curlies, curlyBrace)
	case tok.Punctuator("}"):
		p.popCurly()
	}
}

// lex consumes the lookahead token and scans the one after it.
func (p *Parser) lex() *token.Token {
	tok := p.lookahead
	p.index, p.lineNumber, p.lineStart = tok.End, tok.Line, tok.LineStart
	p.trackCurly(tok)
	p.prev = tok

	p.lookahead = p.next()

	p.index, p.lineNumber, p.lineStart = tok.End, tok.Line, tok.LineStart
	return tok
}

// peek scans the lookahead token without moving the scan position.
func (p *Parser) peek() {
	index, line, lineStart := p.index, p.lineNumber, p.lineStart
	p.lookahead = p.next()
	p.index, p.lineNumber, p.lineStart = index, line, lineStart
}

// lookahead2 returns the token after the lookahead without consuming
// anything. The token is not recorded in the token stream.
func (p *Parser) lookahead2() *token.Token {
	index, line, lineStart := p.index, p.lineNumber, p.lineStart
	p.index, p.lineNumber, p.lineStart = p.lookahead.End, p.lookahead.Line, p.lookahead.LineStart
	tok := p.advance()
	p.index, p.lineNumber, p.lineStart = index, line, lineStart
	return tok
}

// peekLineTerminator reports whether a line break precedes the next token.
func (p *Parser) peekLineTerminator() bool {
	index, line, lineStart := p.index, p.lineNumber, p.lineStart
	p.skipComment()
	found := p.lineNumber != line
	p.index, p.lineNumber, p.lineStart = index, line, lineStart
	return found
}
