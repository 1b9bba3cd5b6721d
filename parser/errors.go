package parser

import (
	"github.com/deepnoodle-ai/esparse/errors"
	"github.com/deepnoodle-ai/esparse/internal/token"
	"github.com/deepnoodle-ai/esparse/syntax"
)

// bailout is the panic payload used to unwind the parse on a fatal error.
// Only Parse, Tokenize and tolerant statement recovery recover it.
type bailout struct {
	err error
}

// pos returns the current scan position.
func (p *Parser) pos() token.Position {
	return token.Position{Char: p.index, Line: p.lineNumber, LineStart: p.lineStart}
}

// here returns an empty token at the current scan position, used to report
// errors found after the offending token was consumed.
func (p *Parser) here() *token.Token {
	pos := p.pos()
	return &token.Token{Start: pos, End: p.index, Line: pos.Line, LineStart: pos.LineStart}
}

// newError builds an error located at the start of tok, or at the current
// scan position when tok is nil.
func (p *Parser) newError(tok *token.Token, msg errors.Message, args ...string) *errors.SyntaxError {
	at := p.pos()
	if tok != nil {
		at = tok.Start
	}
	line := at.Line
	if line == 0 {
		line = 1
	}
	err := errors.NewSyntaxError(msg, at.Char, line, at.Char-at.LineStart+1, args...)
	err.Filename = p.opts.source
	err.LineText = p.lineText(at.LineStart)
	return err
}

// lineText returns the source line beginning at start.
func (p *Parser) lineText(start int) string {
	if start > p.length {
		return ""
	}
	end := start
	for end < p.length {
		r, w := p.charAt(end)
		if syntax.IsLineTerminator(r) {
			break
		}
		end += w
	}
	return p.src[start:end]
}

func (p *Parser) fail(err *errors.SyntaxError) {
	panic(bailout{err})
}

// throwError aborts the parse.
func (p *Parser) throwError(tok *token.Token, msg errors.Message, args ...string) {
	p.fail(p.newError(tok, msg, args...))
}

// throwLexical aborts the parse with a scanner error at the current position.
func (p *Parser) throwLexical(msg errors.Message, args ...string) {
	err := p.newError(nil, msg, args...)
	err.Lexical = true
	p.fail(err)
}

// throwErrorTolerant records the error and continues in tolerant mode, and
// aborts otherwise.
func (p *Parser) throwErrorTolerant(tok *token.Token, msg errors.Message, args ...string) {
	p.tolerate(p.newError(tok, msg, args...))
}

func (p *Parser) tolerate(err *errors.SyntaxError) {
	if !p.opts.tolerant {
		p.fail(err)
	}
	p.opts.logger.Debug().
		Str("code", string(err.Code)).
		Str("at", err.Location().String()).
		Msg(err.Description)
	p.extra.errors.Add(err)
}

// throwUnexpected reports tok as unexpected. It returns only for a strict
// mode reserved word in tolerant mode, where the caller treats the word as
// an identifier.
func (p *Parser) throwUnexpected(tok *token.Token) {
	switch tok.Type {
	case token.EOF:
		p.throwError(tok, errors.UnexpectedEOS)
	case token.NUMERIC:
		p.throwError(tok, errors.UnexpectedNumber)
	case token.STRING, token.JSX_TEXT:
		p.throwError(tok, errors.UnexpectedString)
	case token.IDENTIFIER:
		err := p.newError(tok, errors.UnexpectedIdent)
		err.Hint = p.keywordHint(tok)
		p.fail(err)
	case token.KEYWORD:
		if syntax.IsFutureReservedWord(tok.Value) {
			p.throwError(tok, errors.UnexpectedReserved)
		}
		if p.strict && syntax.IsStrictModeReservedWord(tok.Value) {
			p.throwErrorTolerant(tok, errors.StrictReservedWord)
			return
		}
		p.throwError(tok, errors.UnexpectedToken, tok.Value)
	case token.TEMPLATE:
		p.throwError(tok, errors.UnexpectedTemplate, tok.Raw)
	}
	p.throwError(tok, errors.UnexpectedToken, tok.Value)
}

// keywordHint suggests a keyword when the identifier before tok on the same
// line looks like a misspelled one, as in "fucntion f() {}".
func (p *Parser) keywordHint(tok *token.Token) string {
	prev := p.prev
	if prev == nil || prev == tok || prev.Type != token.IDENTIFIER || prev.Line != tok.Start.Line {
		return ""
	}
	// Short names are too close to too many keywords.
	if len(prev.Value) < 4 {
		return ""
	}
	return errors.FormatSuggestions(errors.SuggestSimilar(prev.Value, syntax.Keywords()))
}
