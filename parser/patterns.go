package parser

import (
	"github.com/deepnoodle-ai/esparse/ast"
	"github.com/deepnoodle-ai/esparse/errors"
	"github.com/deepnoodle-ai/esparse/internal/invariant"
	"github.com/deepnoodle-ai/esparse/internal/token"
	"github.com/deepnoodle-ai/esparse/syntax"
)

// params is a parsed parameter list along with the strict mode violations
// found in it. Whether a function is strict is known only after its body's
// directive prologue, so these are reported once the body is parsed.
type params struct {
	params       []ast.Pattern
	defaults     []ast.Expr
	defaultCount int
	rest         *ast.Identifier
	names        map[string]bool

	// stricted is a violation found while already in strict mode.
	stricted *token.Token
	// firstRestricted is a violation that matters only if the body turns
	// out to be strict.
	firstRestricted *token.Token
	message         errors.Message
}

func newParams(firstRestricted *token.Token, message errors.Message) *params {
	return &params{
		names:           map[string]bool{},
		firstRestricted: firstRestricted,
		message:         message,
	}
}

// validateParam records restricted and duplicate parameter names.
func (p *Parser) validateParam(info *params, tok *token.Token, name string) {
	if p.strict {
		if syntax.IsRestrictedWord(name) {
			info.stricted = tok
			info.message = errors.StrictParamName
		}
		if info.names[name] {
			info.stricted = tok
			info.message = errors.StrictParamDupe
		}
	} else if info.firstRestricted == nil {
		switch {
		case syntax.IsRestrictedWord(name):
			info.firstRestricted = tok
			info.message = errors.StrictParamName
		case syntax.IsStrictModeReservedWord(name):
			info.firstRestricted = tok
			info.message = errors.StrictReservedWord
		case info.names[name]:
			info.firstRestricted = tok
			info.message = errors.StrictParamDupe
		}
	}
	info.names[name] = true
}

// reportDeferred raises the violations collected in info once the function
// body has been parsed and its strictness is known.
func (p *Parser) reportDeferred(info *params) {
	if p.strict && info.firstRestricted != nil {
		p.throwError(info.firstRestricted, info.message)
	}
	if p.strict && info.stricted != nil {
		p.throwErrorTolerant(info.stricted, info.message)
	}
}

// nodeToken returns an empty token at the start of n, for reporting errors
// about a node after it was parsed. Without recorded locations it falls
// back to the current position.
func (p *Parser) nodeToken(n ast.Node) *token.Token {
	base := n.Meta()
	if base.Range == nil || base.Loc == nil {
		return p.here()
	}
	start := token.Position{
		Char:      base.Range[0],
		Line:      base.Loc.Start.Line,
		LineStart: base.Range[0] - base.Loc.Start.Column,
	}
	return &token.Token{Start: start, End: base.Range[1], Line: start.Line, LineStart: start.LineStart}
}

func isLeftHandSide(n ast.Node) bool {
	switch n.(type) {
	case *ast.Identifier, *ast.MemberExpression:
		return true
	}
	return false
}

func asPattern(n ast.Node) ast.Pattern {
	pat, ok := n.(ast.Pattern)
	invariant.Invariant(ok, "%s is not a pattern", n.Type())
	return pat
}

// toAssignmentTarget converts an object or array literal on the left of an
// assignment or in a declaration into the equivalent pattern. Patterns share
// the literal's metadata.
func (p *Parser) toAssignmentTarget(n ast.Node) ast.Node {
	if !p.features.Destructuring {
		p.throwUnexpected(p.lex())
	}

	switch n := n.(type) {
	case *ast.ObjectExpression:
		for _, prop := range n.Properties {
			if prop.Kind != "init" {
				p.throwErrorTolerant(nil, errors.InvalidLHSInAssignment)
			}
			prop.Value = p.toAssignmentTarget(prop.Value)
		}
		return ast.NewObjectPattern(n.Base, n.Properties)
	case *ast.ArrayExpression:
		elements := make([]ast.Node, len(n.Elements))
		for i, el := range n.Elements {
			if el != nil {
				elements[i] = p.toAssignmentTarget(el)
			}
		}
		return ast.NewArrayPattern(n.Base, elements)
	case *ast.Identifier:
		if syntax.IsRestrictedWord(n.Name) {
			p.throwErrorTolerant(nil, errors.InvalidLHSInAssignment)
		}
	case *ast.SpreadElement:
		n.Argument = p.toAssignmentTarget(n.Argument)
		if _, ok := n.Argument.(*ast.ObjectPattern); ok {
			p.throwErrorTolerant(nil, errors.ObjectPatternAsSpread)
		}
	case *ast.MemberExpression, *ast.CallExpression, *ast.NewExpression:
	default:
		p.throwErrorTolerant(nil, errors.InvalidLHSInAssignment)
	}
	return n
}

// toBindingPattern converts a parameter written as an object or array
// literal into a pattern and validates every name it binds. Nodes that were
// already converted by an assignment are validated in place.
func (p *Parser) toBindingPattern(info *params, n ast.Node) ast.Node {
	if !p.features.Destructuring {
		p.throwUnexpected(p.lex())
	}

	switch n := n.(type) {
	case *ast.ObjectExpression:
		p.bindProperties(info, n.Properties)
		return ast.NewObjectPattern(n.Base, n.Properties)
	case *ast.ObjectPattern:
		p.bindProperties(info, n.Properties)
		return n
	case *ast.ArrayExpression:
		elements := make([]ast.Node, len(n.Elements))
		for i, el := range n.Elements {
			if el != nil {
				elements[i] = p.toBindingPattern(info, el)
			}
		}
		return ast.NewArrayPattern(n.Base, elements)
	case *ast.ArrayPattern:
		for i, el := range n.Elements {
			if el != nil {
				n.Elements[i] = p.toBindingPattern(info, el)
			}
		}
		return n
	case *ast.Identifier:
		p.validateParam(info, p.nodeToken(n), n.Name)
		return n
	case *ast.SpreadElement:
		// A rest element binds a plain name only.
		id, ok := n.Argument.(*ast.Identifier)
		if !ok {
			p.throwErrorTolerant(nil, errors.InvalidLHSInFormalsList)
			return n
		}
		p.validateParam(info, p.nodeToken(id), id.Name)
		return n
	}
	p.throwError(nil, errors.InvalidLHSInFormalsList)
	return nil
}

func (p *Parser) bindProperties(info *params, props []*ast.Property) {
	for _, prop := range props {
		if prop.Kind != "init" {
			p.throwErrorTolerant(nil, errors.InvalidLHSInFormalsList)
		}
		prop.Value = p.toBindingPattern(info, prop.Value)
	}
}

// coverFormals reinterprets the expressions parsed before "=>" as the
// parameter list of an arrow function. It returns nil when they cannot be
// parameters, leaving "=>" to be reported as unexpected.
func (p *Parser) coverFormals(exprs []ast.Expr) *params {
	info := newParams(nil, errors.Message{})

	for i, expr := range exprs {
		switch e := expr.(type) {
		case *ast.Identifier:
			info.params = append(info.params, e)
			info.defaults = append(info.defaults, nil)
			p.validateParam(info, p.nodeToken(e), e.Name)
		case *ast.ObjectExpression, *ast.ArrayExpression:
			info.params = append(info.params, asPattern(p.toBindingPattern(info, e)))
			info.defaults = append(info.defaults, nil)
		case *ast.SpreadElement:
			invariant.Invariant(i == len(exprs)-1, "spread element must end the sequence")
			id, ok := e.Argument.(*ast.Identifier)
			if !ok {
				p.throwError(nil, errors.InvalidLHSInFormalsList)
			}
			p.validateParam(info, p.nodeToken(id), id.Name)
			info.rest = id
		case *ast.AssignmentExpression:
			if e.Operator != "=" {
				p.throwError(nil, errors.InvalidLHSInFormalsList)
			}
			var param ast.Pattern
			switch left := e.Left.(type) {
			case *ast.Identifier:
				p.validateParam(info, p.nodeToken(left), left.Name)
				param = left
			case *ast.ObjectPattern, *ast.ArrayPattern:
				param = asPattern(p.toBindingPattern(info, left))
			default:
				p.throwError(nil, errors.InvalidLHSInFormalsList)
			}
			info.params = append(info.params, param)
			info.defaults = append(info.defaults, e.Right)
			info.defaultCount++
		default:
			return nil
		}
	}

	// Arrow functions never allow duplicate parameters.
	if info.message == errors.StrictParamDupe {
		tok := info.firstRestricted
		if p.strict {
			tok = info.stricted
		}
		p.throwError(tok, info.message)
	}

	if info.defaultCount == 0 {
		info.defaults = nil
	}
	return info
}
