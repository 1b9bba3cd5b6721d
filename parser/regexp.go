package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/deepnoodle-ai/esparse/ast"
	"github.com/deepnoodle-ai/esparse/errors"
	"github.com/deepnoodle-ai/esparse/internal/invariant"
	"github.com/deepnoodle-ai/esparse/internal/token"
	"github.com/deepnoodle-ai/esparse/syntax"
)

var codePointEscape = regexp.MustCompile(`\\u\{([0-9a-fA-F]+)\}`)

// testRegExp validates the flags and pattern of a regular expression literal
// and compiles it. The returned value is nil when the pattern is valid
// syntax that regexp2 cannot run with these flags.
func (p *Parser) testRegExp(pattern, flags string) *regexp2.Regexp {
	valid := "gmsi"
	if p.features.RegexYFlag {
		valid += "y"
	}
	if p.features.RegexUFlag {
		valid += "u"
	}
	for _, r := range flags {
		if !strings.ContainsRune(valid, r) {
			p.throwError(nil, errors.InvalidRegExpFlag)
		}
	}

	tmp := pattern
	if strings.ContainsRune(flags, 'u') {
		// Code point escapes and astral characters are only meaningful with
		// the u flag. Replace each with a plain character so the syntax
		// check below does not reject them.
		tooLarge := false
		tmp = codePointEscape.ReplaceAllStringFunc(tmp, func(m string) string {
			code, err := strconv.ParseUint(m[3:len(m)-1], 16, 32)
			if err != nil || code > 0x10FFFF {
				tooLarge = true
			}
			return "x"
		})
		if tooLarge {
			p.throwError(nil, errors.InvalidRegExp)
		}
		tmp = strings.Map(func(r rune) rune {
			if r > 0xFFFF {
				return 'x'
			}
			return r
		}, tmp)
	}

	if _, err := regexp2.Compile(tmp, regexp2.ECMAScript); err != nil {
		p.throwError(nil, errors.InvalidRegExp)
	}

	opts := regexp2.RegexOptions(regexp2.ECMAScript)
	if strings.ContainsRune(flags, 'i') {
		opts |= regexp2.IgnoreCase
	}
	if strings.ContainsRune(flags, 'm') {
		opts |= regexp2.Multiline
	}
	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		return nil
	}
	return re
}

// scanRegExpBody scans /body/ and returns the body.
func (p *Parser) scanRegExpBody() string {
	invariant.Precondition(p.byteAt(p.index) == '/', "regular expression literal must start with a slash")
	start := p.index
	p.index++

	classMarker := false
	for p.index < p.length {
		r, w := p.charAt(p.index)
		p.index += w
		switch {
		case r == '\\':
			r, w = p.charAt(p.index)
			if syntax.IsLineTerminator(r) {
				p.throwLexical(errors.UnterminatedRegExp)
			}
			p.index += w
		case syntax.IsLineTerminator(r):
			p.throwLexical(errors.UnterminatedRegExp)
		case classMarker:
			if r == ']' {
				classMarker = false
			}
		case r == '/':
			return p.src[start+1 : p.index-1]
		case r == '[':
			classMarker = true
		}
	}

	p.throwLexical(errors.UnterminatedRegExp)
	return ""
}

// scanRegExpFlags scans the flags after the closing slash. Escaped flag
// characters are decoded but reported as errors.
func (p *Parser) scanRegExpFlags() string {
	var flags strings.Builder
	for p.index < p.length {
		r, w := p.charAt(p.index)
		if !syntax.IsIdentifierPart(r) {
			break
		}
		p.index += w
		if r != '\\' || p.index >= p.length {
			flags.WriteRune(r)
			continue
		}
		if p.byteAt(p.index) == 'u' {
			p.index++
			restore := p.index
			if ch, ok := p.scanHexEscape('u'); ok {
				flags.WriteRune(ch)
			} else {
				p.index = restore
				flags.WriteByte('u')
			}
		}
		p.throwErrorTolerant(nil, errors.UnexpectedToken, "ILLEGAL")
	}
	return flags.String()
}

// scanRegExp scans a regular expression literal at the current position.
func (p *Parser) scanRegExp() *token.Token {
	p.skipComment()
	start := p.pos()

	body := p.scanRegExpBody()
	flags := p.scanRegExpFlags()
	re := p.testRegExp(body, flags)

	tok := p.token(token.REGEXP, p.src[start.Char:p.index], start)
	tok.Pattern = body
	tok.Flags = flags
	tok.Regexp = re
	return tok
}

// collectRegex scans a regular expression and, when the token stream is
// being collected by the parser, replaces the "/" or "/=" punctuator that
// was recorded for it.
func (p *Parser) collectRegex() *token.Token {
	p.skipComment()
	startLoc := ast.Position{Line: p.lineNumber, Column: p.index - p.lineStart}

	tok := p.scanRegExp()

	if p.extra.collect && !p.extra.tokenize {
		if n := len(p.extra.tokens); n > 0 {
			last := p.extra.tokens[n-1]
			if last.Range[0] == tok.Start.Char && last.Type == "Punctuator" &&
				(last.Value == "/" || last.Value == "/=") {
				p.extra.tokens = p.extra.tokens[:n-1]
			}
		}
		p.extra.tokens = append(p.extra.tokens, &ast.Token{
			Type:  token.REGEXP.String(),
			Value: tok.Value,
			Regex: &ast.Regex{Pattern: tok.Pattern, Flags: tok.Flags},
			Range: &ast.Range{tok.Start.Char, tok.End},
			Loc: &ast.SourceLocation{
				Start: startLoc,
				End:   ast.Position{Line: p.lineNumber, Column: p.index - p.lineStart},
			},
		})
	}
	return tok
}

// tokenAt returns the collected token at index i, or nil.
func (p *Parser) tokenAt(i int) *ast.Token {
	if i < 0 || i >= len(p.extra.tokens) {
		return nil
	}
	return p.extra.tokens[i]
}

// advanceSlash decides from the preceding tokens whether a slash starts a
// regular expression or is a division operator.
func (p *Parser) advanceSlash() *token.Token {
	prev := p.tokenAt(len(p.extra.tokens) - 1)
	if prev == nil {
		// Nothing before it, so it cannot be a division.
		return p.collectRegex()
	}
	switch prev.Type {
	case "Keyword":
		return p.collectRegex()
	case "Punctuator":
	default:
		return p.scanPunctuator()
	}

	switch prev.Value {
	case "]":
		return p.scanPunctuator()
	case ")":
		check := p.tokenAt(p.extra.openParenToken - 1)
		if check != nil && check.Type == "Keyword" {
			switch check.Value {
			case "if", "while", "for", "with":
				return p.collectRegex()
			}
		}
		return p.scanPunctuator()
	case "}":
		// A block that closes a function expression is followed by a
		// division, one that closes a declaration by a regex.
		var check *ast.Token
		open := p.extra.openCurlyToken
		if t := p.tokenAt(open - 3); t != nil && t.Type == "Keyword" {
			// anonymous function
			check = p.tokenAt(open - 4)
			if check == nil {
				return p.scanPunctuator()
			}
		} else if t := p.tokenAt(open - 4); t != nil && t.Type == "Keyword" {
			// named function
			check = p.tokenAt(open - 5)
			if check == nil {
				return p.collectRegex()
			}
		} else {
			return p.scanPunctuator()
		}
		if token.FnExprTokens[check.Value] {
			return p.scanPunctuator()
		}
		return p.collectRegex()
	}
	return p.collectRegex()
}
