package parser

import (
	"github.com/deepnoodle-ai/esparse/ast"
	"github.com/deepnoodle-ai/esparse/errors"
	"github.com/deepnoodle-ai/esparse/internal/token"
	"github.com/deepnoodle-ai/esparse/syntax"
)

// parseParam parses one formal parameter into info. It returns false when
// the parameter list ends after it.
func (p *Parser) parseParam(info *params) bool {
	rest := false
	if p.match("...") {
		if !p.features.RestParams {
			p.throwUnexpected(p.lookahead)
		}
		p.lex()
		rest = true
	}

	var param ast.Pattern
	switch {
	case p.match("["), p.match("{"):
		// Rest parameters bind a plain name.
		if rest {
			p.throwError(nil, errors.ObjectPatternAsRestParameter)
		}
		if !p.features.Destructuring {
			p.throwUnexpected(p.lookahead)
		}
		var literal ast.Expr
		if p.match("[") {
			literal = p.parseArrayInitialiser()
		} else {
			literal = p.parseObjectInitialiser()
		}
		param = asPattern(p.toBindingPattern(info, literal))
	default:
		tok := p.lookahead
		id := p.parseVariableIdentifier()
		p.validateParam(info, tok, id.Name)
		param = id
	}

	var def ast.Expr
	if p.match("=") {
		if rest {
			p.throwErrorTolerant(p.lookahead, errors.DefaultRestParameter)
		}
		if !p.features.DefaultParams {
			p.throwUnexpected(p.lookahead)
		}
		p.lex()
		def = p.parseAssignmentExpression()
		info.defaultCount++
	}

	if rest {
		if !p.match(")") {
			p.throwError(nil, errors.ParameterAfterRestParameter)
		}
		info.rest = param.(*ast.Identifier)
		return false
	}

	info.params = append(info.params, param)
	info.defaults = append(info.defaults, def)
	return !p.match(")")
}

// parseParams parses a parenthesized parameter list. firstRestricted and
// message carry a violation already found in the function name.
func (p *Parser) parseParams(firstRestricted *token.Token, message errors.Message) *params {
	info := newParams(firstRestricted, message)

	p.expect("(")
	if !p.match(")") {
		for p.index < p.length {
			if !p.parseParam(info) {
				break
			}
			p.expect(",")
		}
	}
	p.expect(")")

	if info.defaultCount == 0 {
		info.defaults = nil
	}
	return info
}

// checkFunctionName validates the name of a function. A restricted or
// reserved name in code not yet known to be strict is returned as a
// deferred violation.
func (p *Parser) checkFunctionName(tok *token.Token) (*token.Token, errors.Message) {
	if p.strict {
		if syntax.IsRestrictedWord(tok.Value) {
			p.throwErrorTolerant(tok, errors.StrictFunctionName)
		}
		return nil, errors.Message{}
	}
	switch {
	case syntax.IsRestrictedWord(tok.Value):
		return tok, errors.StrictFunctionName
	case syntax.IsStrictModeReservedWord(tok.Value):
		return tok, errors.StrictReservedWord
	}
	return nil, errors.Message{}
}

// parseFunction parses the parameters and body shared by function
// declarations and expressions, after the name.
func (p *Parser) parseFunction(firstRestricted *token.Token, message errors.Message, generator bool) (*params, *ast.BlockStatement) {
	info := p.parseParams(firstRestricted, message)

	previousStrict := p.strict
	previousYieldAllowed := p.state.yieldAllowed
	p.state.yieldAllowed = generator

	body := p.parseFunctionSourceElements()
	p.reportDeferred(info)

	p.strict = previousStrict
	p.state.yieldAllowed = previousYieldAllowed
	return info, body
}

func (p *Parser) matchGenerator() bool {
	if p.features.Generators && p.match("*") {
		p.lex()
		return true
	}
	return false
}

func (p *Parser) parseFunctionDeclaration() *ast.FunctionDeclaration {
	m := p.markerCreate()
	p.expectKeyword("function")
	generator := p.matchGenerator()

	tok := p.lookahead
	id := p.parseVariableIdentifier()
	firstRestricted, message := p.checkFunctionName(tok)

	info, body := p.parseFunction(firstRestricted, message, generator)
	return finishNode(p, m, ast.NewFunctionDeclaration(id, info.params, info.defaults, body, info.rest, generator, false))
}

func (p *Parser) parseFunctionExpression() *ast.FunctionExpression {
	m := p.markerCreate()
	p.expectKeyword("function")
	generator := p.matchGenerator()

	var id *ast.Identifier
	var firstRestricted *token.Token
	var message errors.Message
	if !p.match("(") {
		tok := p.lookahead
		id = p.parseVariableIdentifier()
		firstRestricted, message = p.checkFunctionName(tok)
	}

	info, body := p.parseFunction(firstRestricted, message, generator)
	return finishNode(p, m, ast.NewFunctionExpression(id, info.params, info.defaults, body, info.rest, generator, false))
}

// parseFunctionSourceElements parses a function body. A "use strict"
// directive makes the rest of the function strict; the caller restores the
// previous mode.
func (p *Parser) parseFunctionSourceElements() *ast.BlockStatement {
	m := p.markerCreate()
	p.expect("{")

	var body []ast.Stmt
	var firstRestricted *token.Token
	for p.index < p.length {
		tok := p.lookahead
		if tok.Type != token.STRING {
			break
		}
		stmt := p.parseSourceElement()
		body = append(body, stmt)
		if !isDirective(stmt) {
			break
		}
		if p.directive(tok) == "use strict" {
			p.strict = true
			if firstRestricted != nil {
				p.throwErrorTolerant(firstRestricted, errors.StrictOctalLiteral)
			}
		} else if firstRestricted == nil && tok.Octal {
			firstRestricted = tok
		}
	}

	saved := p.state
	p.state.labelSet = map[string]bool{}
	p.state.inIteration = false
	p.state.inSwitch = false
	p.state.inFunctionBody = true

	for p.index < p.length {
		if p.match("}") {
			break
		}
		stmt := p.parseSourceElement()
		if stmt == nil {
			break
		}
		body = append(body, stmt)
	}

	p.expect("}")

	p.state.labelSet = saved.labelSet
	p.state.inIteration = saved.inIteration
	p.state.inSwitch = saved.inSwitch
	p.state.inFunctionBody = saved.inFunctionBody
	p.state.parenthesisCount = saved.parenthesisCount

	return finishNode(p, m, ast.NewBlockStatement(body))
}

// parseConciseBody parses an arrow function body: a block or a single
// expression.
func (p *Parser) parseConciseBody() ast.Node {
	if p.match("{") {
		return p.parseFunctionSourceElements()
	}
	return p.parseAssignmentExpression()
}

func (p *Parser) parseArrowFunctionExpression(info *params, m marker) *ast.ArrowFunctionExpression {
	p.expect("=>")
	previousStrict := p.strict

	body := p.parseConciseBody()
	p.reportDeferred(info)

	p.strict = previousStrict

	_, block := body.(*ast.BlockStatement)
	return finishNode(p, m, ast.NewArrowFunctionExpression(info.params, info.defaults, body, info.rest, !block))
}
