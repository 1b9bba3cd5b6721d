package parser

import (
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/deepnoodle-ai/esparse/internal/invariant"
	"github.com/deepnoodle-ai/esparse/internal/token"
	"github.com/deepnoodle-ai/esparse/syntax"
)

// Numeric literals

func (p *Parser) scanNumericLiteral() *token.Token {
	start := p.pos()
	c := p.byteAt(p.index)
	invariant.Precondition(syntax.IsDecimalDigit(rune(c)) || c == '.',
		"numeric literal must start with a decimal digit or a decimal point")

	if c != '.' {
		p.index++
		next := p.byteAt(p.index)
		if c == '0' {
			switch {
			case next == 'x' || next == 'X':
				p.index++
				return p.scanRadixLiteral(start, 16)
			case p.features.BinaryLiterals && (next == 'b' || next == 'B'):
				p.index++
				return p.scanRadixLiteral(start, 2)
			case p.features.OctalLiterals && (next == 'o' || next == 'O'):
				p.index++
				return p.scanOctalLiteral(start, false)
			case syntax.IsOctalDigit(rune(next)):
				return p.scanOctalLiteral(start, true)
			case syntax.IsDecimalDigit(rune(next)):
				// 09 is neither octal nor decimal.
				p.illegal()
			}
		}
		for p.isDigitAt(p.index) {
			p.index++
		}
		c = p.byteAt(p.index)
	}

	if c == '.' {
		p.index++
		for p.isDigitAt(p.index) {
			p.index++
		}
		c = p.byteAt(p.index)
	}

	if c == 'e' || c == 'E' {
		p.index++
		if c := p.byteAt(p.index); c == '+' || c == '-' {
			p.index++
		}
		if !p.isDigitAt(p.index) {
			p.illegal()
		}
		for p.isDigitAt(p.index) {
			p.index++
		}
	}

	if r, _ := p.charAt(p.index); syntax.IsIdentifierStart(r) {
		p.illegal()
	}

	raw := p.src[start.Char:p.index]
	// Out of range values come back as ±Inf or 0 along with ErrRange, which
	// is the value wanted.
	value, _ := strconv.ParseFloat(raw, 64)
	tok := p.token(token.NUMERIC, raw, start)
	tok.Number = value
	return tok
}

// scanRadixLiteral scans the digits of a 0x or 0b literal. The prefix has
// been consumed.
func (p *Parser) scanRadixLiteral(start token.Position, base int) *token.Token {
	var value float64
	digits := 0
	for {
		d := hexValue(p.byteAt(p.index))
		if d < 0 || d >= base {
			break
		}
		value = value*float64(base) + float64(d)
		p.index++
		digits++
	}
	if digits == 0 {
		p.illegal()
	}
	r, _ := p.charAt(p.index)
	if syntax.IsIdentifierStart(r) || (base != 16 && syntax.IsDecimalDigit(r)) {
		p.illegal()
	}
	tok := p.token(token.NUMERIC, p.src[start.Char:p.index], start)
	tok.Number = value
	return tok
}

// scanOctalLiteral scans the digits of a legacy octal literal (017) or a 0o
// literal, positioned on the first digit after the prefix.
func (p *Parser) scanOctalLiteral(start token.Position, legacy bool) *token.Token {
	var value float64
	digits := 0
	for syntax.IsOctalDigit(rune(p.byteAt(p.index))) {
		value = value*8 + float64(p.byteAt(p.index)-'0')
		p.index++
		digits++
	}
	if !legacy && digits == 0 {
		p.illegal()
	}
	if r, _ := p.charAt(p.index); syntax.IsIdentifierStart(r) || syntax.IsDecimalDigit(r) {
		p.illegal()
	}
	tok := p.token(token.NUMERIC, p.src[start.Char:p.index], start)
	tok.Number = value
	tok.Octal = legacy
	return tok
}

// Strings

var simpleEscapes = map[rune]byte{
	'n': '\n',
	'r': '\r',
	't': '\t',
	'b': '\b',
	'f': '\f',
	'v': '\v',
}

// scanEscapeSequence decodes the escape whose first character ch follows a
// backslash, writing the result to out. It reports whether the escape was a
// legacy octal escape.
func (p *Parser) scanEscapeSequence(out *strings.Builder, ch rune) (octal bool) {
	switch {
	case ch < 0:
		p.illegal()
	case syntax.IsLineTerminator(ch):
		p.lineNumber++
		if ch == '\r' && p.byteAt(p.index) == '\n' {
			p.index++
		}
		p.lineStart = p.index
	case ch == 'u' && p.byteAt(p.index) == '{':
		if !p.features.UnicodeCodePointEscapes {
			p.illegal()
		}
		p.index++
		out.WriteRune(p.scanUnicodeCodePointEscape())
	case ch == 'u' || ch == 'x':
		restore := p.index
		code, ok := p.scanHexEscape(byte(ch))
		if !ok {
			p.index = restore
			out.WriteRune(ch)
			break
		}
		if ch == 'u' && utf16.IsSurrogate(code) {
			code = p.combineSurrogate(code)
		}
		out.WriteRune(code)
	case simpleEscapes[ch] != 0:
		out.WriteByte(simpleEscapes[ch])
	case syntax.IsOctalDigit(ch):
		code := ch - '0'
		// \0 alone is not an octal escape
		octal = code != 0
		if syntax.IsOctalDigit(rune(p.byteAt(p.index))) {
			octal = true
			code = code*8 + rune(p.byteAt(p.index)-'0')
			p.index++
			// Three digits only when the first is 0-3.
			if ch <= '3' && syntax.IsOctalDigit(rune(p.byteAt(p.index))) {
				code = code*8 + rune(p.byteAt(p.index)-'0')
				p.index++
			}
		}
		out.WriteRune(code)
	default:
		out.WriteRune(ch)
	}
	return octal
}

// combineSurrogate joins a high surrogate with an immediately following
// \uHHHH low surrogate. A lone surrogate is returned unchanged and encodes
// as U+FFFD.
func (p *Parser) combineSurrogate(hi rune) rune {
	if hi >= 0xDC00 || !strings.HasPrefix(p.src[p.index:], `\u`) {
		return hi
	}
	restore := p.index
	p.index += 2
	if lo, ok := p.scanHexEscape('u'); ok && lo >= 0xDC00 && lo <= 0xDFFF {
		return utf16.DecodeRune(hi, lo)
	}
	p.index = restore
	return hi
}

func (p *Parser) scanStringLiteral() *token.Token {
	start := p.pos()
	quote := rune(p.byteAt(p.index))
	invariant.Precondition(quote == '\'' || quote == '"', "string literal must start with a quote")
	p.index++

	var str strings.Builder
	octal := false
	terminated := false
	for p.index < p.length {
		r, w := p.charAt(p.index)
		p.index += w
		if syntax.IsLineTerminator(r) {
			break
		}
		if r == quote {
			terminated = true
			break
		}
		if r == '\\' {
			ch, w := p.charAt(p.index)
			p.index += w
			if p.scanEscapeSequence(&str, ch) {
				octal = true
			}
			continue
		}
		str.WriteRune(r)
	}
	if !terminated {
		p.illegal()
	}

	tok := p.token(token.STRING, str.String(), start)
	tok.Octal = octal
	return tok
}

// Templates

// scanTemplate scans one template piece: from the opening backtick or the
// "}" closing a substitution, through the closing backtick or the next "${".
func (p *Parser) scanTemplate() *token.Token {
	start := p.pos()
	head := p.byteAt(p.index) == '`'
	p.index++

	var cooked strings.Builder
	octal, terminated, tail := false, false, false

loop:
	for p.index < p.length {
		r, w := p.charAt(p.index)
		p.index += w
		switch {
		case r == '`':
			tail = true
			terminated = true
			break loop
		case r == '$' && p.byteAt(p.index) == '{':
			p.index++
			terminated = true
			break loop
		case r == '\\':
			ch, w := p.charAt(p.index)
			p.index += w
			if p.scanEscapeSequence(&cooked, ch) {
				octal = true
			}
		case syntax.IsLineTerminator(r):
			p.lineNumber++
			if r == '\r' && p.byteAt(p.index) == '\n' {
				p.index++
			}
			p.lineStart = p.index
			cooked.WriteByte('\n')
		default:
			cooked.WriteRune(r)
		}
	}
	if !terminated {
		p.illegal()
	}

	end := p.index - 2
	if tail {
		end = p.index - 1
	}
	tok := p.token(token.TEMPLATE, p.src[start.Char:p.index], start)
	tok.Cooked = cooked.String()
	tok.Raw = p.src[start.Char+1 : end]
	tok.Head = head
	tok.Tail = tail
	tok.Octal = octal
	return tok
}
