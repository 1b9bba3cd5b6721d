package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/deepnoodle-ai/esparse/ast"
	"github.com/deepnoodle-ai/esparse/errors"
	"github.com/deepnoodle-ai/esparse/internal/invariant"
	"github.com/deepnoodle-ai/esparse/internal/token"
	"github.com/deepnoodle-ai/esparse/syntax"
)

// Expression parsing methods for the Parser.
// This file contains methods that parse expression constructs:
// - Primary expressions, literals and templates
// - Array and object literals, including duplicate property checks
// - Member access, calls and new
// - Unary, update, conditional and assignment expressions
// - Arrow functions from the parenthesized cover grammar
// - Sequences and yield

// literalFromToken returns the Literal for a literal token. Raw is the exact
// source text of the token.
func (p *Parser) literalFromToken(tok *token.Token) *ast.Literal {
	raw := p.src[tok.Start.Char:tok.End]
	switch tok.Type {
	case token.STRING, token.JSX_TEXT:
		return ast.NewLiteral(tok.Value, raw)
	case token.NUMERIC:
		return ast.NewLiteral(tok.Number, raw)
	case token.BOOLEAN:
		return ast.NewLiteral(tok.Value == "true", raw)
	case token.NULL:
		return ast.NewLiteral(nil, raw)
	case token.REGEXP:
		return ast.NewRegexLiteral(tok.Pattern, tok.Flags, raw, tok.Regexp)
	}
	invariant.Invariant(false, "%s token is not a literal", tok.Type)
	return nil
}

// Array literals

func (p *Parser) parseArrayInitialiser() *ast.ArrayExpression {
	m := p.markerCreate()
	p.expect("[")

	var elements []ast.Expr
	for !p.match("]") {
		if p.match(",") {
			// a hole, as in [a,,b]
			p.lex()
			elements = append(elements, nil)
			continue
		}
		el := p.parseSpreadOrAssignmentExpression()
		elements = append(elements, el)
		if _, spread := el.(*ast.SpreadElement); spread {
			if !p.match("]") {
				p.throwError(nil, errors.ElementAfterSpreadElement)
			}
		} else if !p.match("]") {
			p.expect(",")
		}
	}

	p.expect("]")
	return finishNode(p, m, ast.NewArrayExpression(elements))
}

// Object literals

// parsePropertyFunction parses the body of a method, getter or setter whose
// parameters have already been parsed.
func (p *Parser) parsePropertyFunction(m marker, info *params, generator bool, setterParam *token.Token) *ast.FunctionExpression {
	previousStrict := p.strict
	previousYieldAllowed := p.state.yieldAllowed
	p.state.yieldAllowed = generator

	body := p.parseFunctionSourceElements()

	if setterParam != nil && p.strict && syntax.IsRestrictedWord(info.params[0].(*ast.Identifier).Name) {
		p.throwErrorTolerant(setterParam, errors.StrictParamName)
	}

	p.strict = previousStrict
	p.state.yieldAllowed = previousYieldAllowed

	return finishNode(p, m, ast.NewFunctionExpression(nil, info.params, info.defaults, body, info.rest, generator, false))
}

// parsePropertyMethodFunction parses a shorthand method. Method parameters
// follow the strict mode rules.
func (p *Parser) parsePropertyMethodFunction(generator bool) *ast.FunctionExpression {
	previousStrict := p.strict
	m := p.markerCreate()

	p.strict = true
	info := p.parseParams(nil, errors.Message{})
	if info.stricted != nil {
		p.throwErrorTolerant(info.stricted, info.message)
	}
	p.strict = previousStrict

	return p.parsePropertyFunction(m, info, generator, nil)
}

func (p *Parser) parseObjectPropertyKey() ast.Expr {
	m := p.markerCreate()
	tok := p.lex()

	switch tok.Type {
	case token.STRING, token.NUMERIC:
		if p.strict && tok.Octal {
			p.throwErrorTolerant(tok, errors.StrictOctalLiteral)
		}
		return finishNode(p, m, p.literalFromToken(tok))
	case token.IDENTIFIER, token.KEYWORD, token.BOOLEAN, token.NULL:
		return finishNode(p, m, ast.NewIdentifier(tok.Value))
	}

	if p.features.ObjectLiteralComputedProperties && tok.Punctuator("[") {
		// The key's location excludes the brackets.
		m = p.markerCreate()
		key := p.parseAssignmentExpression()
		p.markerApply(m, key)
		p.expect("]")
		return key
	}

	p.throwUnexpected(tok)
	return nil
}

// isAccessorName reports whether the identifier "get" or "set" just parsed
// as a key begins an accessor. It does not when it is used as a plain key,
// method name or shorthand property.
func (p *Parser) isAccessorName(tok *token.Token) bool {
	if tok.Value != "get" && tok.Value != "set" {
		return false
	}
	return !p.match(":") && !p.match("(") && !p.match(",") && !p.match("}")
}

func (p *Parser) parseObjectProperty() *ast.Property {
	allowComputed := p.features.ObjectLiteralComputedProperties
	allowMethod := p.features.ObjectLiteralShorthandMethods
	allowShorthand := p.features.ObjectLiteralShorthandProperties

	m := p.markerCreate()
	tok := p.lookahead
	computed := tok.Punctuator("[")

	if tok.Type == token.IDENTIFIER || (allowComputed && computed) {
		id := p.parseObjectPropertyKey()

		if !computed && p.isAccessorName(tok) {
			computed = p.match("[")
			key := p.parseObjectPropertyKey()
			methodMarker := p.markerCreate()
			p.expect("(")
			info := newParams(nil, errors.Message{})
			var setterParam *token.Token
			if tok.Value == "set" {
				setterParam = p.lookahead
				info.params = []ast.Pattern{p.parseVariableIdentifier()}
			}
			p.expect(")")
			value := p.parsePropertyFunction(methodMarker, info, false, setterParam)
			return finishNode(p, m, ast.NewProperty(tok.Value, key, value, false, false, computed))
		}

		if p.match(":") {
			p.lex()
			return finishNode(p, m, ast.NewProperty("init", id, p.parseAssignmentExpression(), false, false, computed))
		}

		if allowMethod && p.match("(") {
			return finishNode(p, m, ast.NewProperty("init", id, p.parsePropertyMethodFunction(false), true, false, computed))
		}

		// Only a shorthand property is left. Computed keys have no
		// shorthand form.
		if computed || (!allowShorthand && !p.features.Destructuring) {
			p.throwUnexpected(p.lookahead)
		}
		return finishNode(p, m, ast.NewProperty("init", id, id, false, true, false))
	}

	if tok.Type == token.EOF || tok.Type == token.PUNCTUATOR {
		// Only a generator method starts with a punctuator.
		if !p.features.Generators || !p.match("*") {
			p.throwUnexpected(tok)
		}
		p.lex()
		computed = p.match("[")
		id := p.parseObjectPropertyKey()
		if !p.match("(") {
			p.throwUnexpected(p.lex())
		}
		return finishNode(p, m, ast.NewProperty("init", id, p.parsePropertyMethodFunction(true), true, false, computed))
	}

	// A string, number or keyword key takes a value or a method.
	key := p.parseObjectPropertyKey()
	if p.match(":") {
		p.lex()
		return finishNode(p, m, ast.NewProperty("init", key, p.parseAssignmentExpression(), false, false, false))
	}
	if allowMethod && p.match("(") {
		return finishNode(p, m, ast.NewProperty("init", key, p.parsePropertyMethodFunction(false), true, false, false))
	}
	p.throwUnexpected(p.lex())
	return nil
}

// Property kinds, combined as a bit set per name.
const (
	propertyData = 1 << iota
	propertyGet
	propertySet
)

// fieldName returns the name a non-computed key defines, with numeric keys
// in canonical number form so that 1 and 1.0 collide.
func fieldName(key ast.Expr) string {
	switch key := key.(type) {
	case *ast.Identifier:
		return key.Name
	case *ast.Literal:
		switch v := key.Value.(type) {
		case string:
			return v
		case float64:
			return formatNumber(v)
		}
	}
	return key.String()
}

// formatNumber formats f the way ECMAScript converts numbers to strings.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
		return mantissa + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (p *Parser) parseObjectInitialiser() *ast.ObjectExpression {
	m := p.markerCreate()
	allowDuplicates := p.features.ObjectLiteralDuplicateProperties
	kinds := map[string]int{}

	p.expect("{")

	var properties []*ast.Property
	for !p.match("}") {
		prop := p.parseObjectProperty()

		if !prop.Computed {
			name := fieldName(prop.Key)
			kind := propertyData
			switch prop.Kind {
			case "get":
				kind = propertyGet
			case "set":
				kind = propertySet
			}

			if stored, ok := kinds[name]; ok {
				if stored == propertyData {
					switch {
					case kind == propertyData && name == "__proto__" && allowDuplicates:
						p.throwErrorTolerant(nil, errors.DuplicatePrototypeProperty)
					case p.strict && kind == propertyData && !allowDuplicates:
						p.throwErrorTolerant(nil, errors.StrictDuplicateProperty)
					case kind != propertyData:
						p.throwErrorTolerant(nil, errors.AccessorDataProperty)
					}
				} else if kind == propertyData {
					p.throwErrorTolerant(nil, errors.AccessorDataProperty)
				} else if stored&kind != 0 {
					p.throwErrorTolerant(nil, errors.AccessorGetSet)
				}
				kinds[name] = stored | kind
			} else {
				kinds[name] = kind
			}
		}

		properties = append(properties, prop)
		if !p.match("}") {
			p.expect(",")
		}
	}

	p.expect("}")
	return finishNode(p, m, ast.NewObjectExpression(properties))
}

// Templates

// parseTemplateElement consumes one template piece. The first piece of a
// template starts with a backtick; later pieces start with "}".
func (p *Parser) parseTemplateElement(head bool) *ast.TemplateElement {
	if p.lookahead.Type != token.TEMPLATE || p.lookahead.Head != head {
		p.throwUnexpected(p.lookahead)
	}
	m := p.markerCreate()
	tok := p.lex()
	if p.strict && tok.Octal {
		p.throwError(tok, errors.StrictOctalLiteral)
	}
	value := ast.TemplateValue{Raw: tok.Raw, Cooked: tok.Cooked}
	return finishNode(p, m, ast.NewTemplateElement(value, tok.Tail))
}

func (p *Parser) parseTemplateLiteral() *ast.TemplateLiteral {
	m := p.markerCreate()

	quasi := p.parseTemplateElement(true)
	quasis := []*ast.TemplateElement{quasi}
	var expressions []ast.Expr

	for !quasi.Tail {
		expressions = append(expressions, p.parseExpression())
		quasi = p.parseTemplateElement(false)
		quasis = append(quasis, quasi)
	}

	return finishNode(p, m, ast.NewTemplateLiteral(quasis, expressions))
}

// Primary expressions

func (p *Parser) parseGroupExpression() ast.Expr {
	p.expect("(")
	p.state.parenthesisCount++
	expr := p.parseExpression()
	p.expect(")")
	return expr
}

func (p *Parser) parsePrimaryExpression() ast.Expr {
	switch {
	case p.match("("):
		return p.parseGroupExpression()
	case p.match("["):
		return p.parseArrayInitialiser()
	case p.match("{"):
		return p.parseObjectInitialiser()
	case p.features.JSX && p.match("<"):
		return p.parseJSXElement()
	}

	m := p.markerCreate()
	var expr ast.Expr

	switch p.lookahead.Type {
	case token.IDENTIFIER:
		expr = ast.NewIdentifier(p.lex().Value)
	case token.STRING, token.NUMERIC:
		if p.strict && p.lookahead.Octal {
			p.throwErrorTolerant(p.lookahead, errors.StrictOctalLiteral)
		}
		expr = p.literalFromToken(p.lex())
	case token.BOOLEAN, token.NULL, token.REGEXP:
		expr = p.literalFromToken(p.lex())
	case token.TEMPLATE:
		return p.parseTemplateLiteral()
	case token.KEYWORD:
		switch {
		case p.matchKeyword("function"):
			return p.parseFunctionExpression()
		case p.features.SuperInFunctions && p.matchKeyword("super") && p.state.inFunctionBody:
			p.lex()
			expr = ast.NewIdentifier("super")
		case p.matchKeyword("this"):
			p.lex()
			expr = ast.NewThisExpression()
		default:
			tok := p.lex()
			p.throwUnexpected(tok)
			// A strict mode reserved word, tolerated as a name.
			expr = ast.NewIdentifier(tok.Value)
		}
	default:
		if !p.match("/") && !p.match("/=") {
			p.throwUnexpected(p.lex())
		}
		// The scanner saw a division operator; rescan it as a regular
		// expression now that an operand is expected.
		var tok *token.Token
		if p.extra.collect {
			tok = p.collectRegex()
		} else {
			tok = p.scanRegExp()
		}
		expr = p.literalFromToken(tok)
		p.peek()
	}

	return finishNode(p, m, expr)
}

// Left-hand-side expressions

func (p *Parser) parseArguments() []ast.Expr {
	p.expect("(")

	var args []ast.Expr
	if !p.match(")") {
		for p.index < p.length {
			arg := p.parseSpreadOrAssignmentExpression()
			args = append(args, arg)
			if p.match(")") {
				break
			}
			if _, spread := arg.(*ast.SpreadElement); spread {
				p.throwError(nil, errors.ElementAfterSpreadElement)
			}
			p.expect(",")
		}
	}

	p.expect(")")
	return args
}

func (p *Parser) parseSpreadOrAssignmentExpression() ast.Expr {
	if p.match("...") {
		m := p.markerCreate()
		p.lex()
		return finishNode(p, m, ast.NewSpreadElement(p.parseAssignmentExpression()))
	}
	return p.parseAssignmentExpression()
}

// isIdentifierName reports whether tok may be used as a property name after
// a dot. Reserved words are allowed there.
func isIdentifierName(tok *token.Token) bool {
	switch tok.Type {
	case token.IDENTIFIER, token.KEYWORD, token.BOOLEAN, token.NULL:
		return true
	}
	return false
}

func (p *Parser) parseNonComputedProperty() *ast.Identifier {
	m := p.markerCreate()
	tok := p.lex()
	if !isIdentifierName(tok) {
		p.throwUnexpected(tok)
	}
	return finishNode(p, m, ast.NewIdentifier(tok.Value))
}

func (p *Parser) parseNonComputedMember() *ast.Identifier {
	p.expect(".")
	return p.parseNonComputedProperty()
}

func (p *Parser) parseComputedMember() ast.Expr {
	p.expect("[")
	expr := p.parseExpression()
	p.expect("]")
	return expr
}

func (p *Parser) parseNewExpression() *ast.NewExpression {
	p.enter()
	defer p.leave()

	m := p.markerCreate()
	p.expectKeyword("new")
	callee := p.parseLeftHandSideExpression()
	var args []ast.Expr
	if p.match("(") {
		args = p.parseArguments()
	}
	return finishNode(p, m, ast.NewNewExpression(callee, args))
}

// matchTaggedTemplate reports whether a template follows, which makes the
// expression before it the tag.
func (p *Parser) matchTaggedTemplate() bool {
	return p.lookahead.Type == token.TEMPLATE && p.lookahead.Head
}

func (p *Parser) parseLeftHandSideExpressionAllowCall() ast.Expr {
	m := p.markerCreate()

	previousAllowIn := p.state.allowIn
	p.state.allowIn = true
	var expr ast.Expr
	if p.matchKeyword("new") {
		expr = p.parseNewExpression()
	} else {
		expr = p.parsePrimaryExpression()
	}
	p.state.allowIn = previousAllowIn

	for {
		switch {
		case p.match("("):
			expr = finishNode(p, m, ast.NewCallExpression(expr, p.parseArguments()))
		case p.match("["):
			expr = finishNode(p, m, ast.NewMemberExpression("[", expr, p.parseComputedMember()))
		case p.match("."):
			expr = finishNode(p, m, ast.NewMemberExpression(".", expr, p.parseNonComputedMember()))
		case p.matchTaggedTemplate():
			expr = finishNode(p, m, ast.NewTaggedTemplateExpression(expr, p.parseTemplateLiteral()))
		default:
			return expr
		}
	}
}

// parseLeftHandSideExpression parses the callee of a new expression, which
// ends before the first argument list.
func (p *Parser) parseLeftHandSideExpression() ast.Expr {
	m := p.markerCreate()

	var expr ast.Expr
	if p.matchKeyword("new") {
		expr = p.parseNewExpression()
	} else {
		expr = p.parsePrimaryExpression()
	}

	for {
		switch {
		case p.match("["):
			expr = finishNode(p, m, ast.NewMemberExpression("[", expr, p.parseComputedMember()))
		case p.match("."):
			expr = finishNode(p, m, ast.NewMemberExpression(".", expr, p.parseNonComputedMember()))
		case p.matchTaggedTemplate():
			expr = finishNode(p, m, ast.NewTaggedTemplateExpression(expr, p.parseTemplateLiteral()))
		default:
			return expr
		}
	}
}

// Update and unary expressions

func isRestrictedIdentifier(n ast.Node) bool {
	id, ok := n.(*ast.Identifier)
	return ok && syntax.IsRestrictedWord(id.Name)
}

func (p *Parser) parsePostfixExpression() ast.Expr {
	m := p.markerCreate()
	expr := p.parseLeftHandSideExpressionAllowCall()

	// A line break before ++ or -- ends the expression.
	if (p.match("++") || p.match("--")) && !p.peekLineTerminator() {
		if p.strict && isRestrictedIdentifier(expr) {
			p.throwErrorTolerant(nil, errors.StrictLHSPostfix)
		}
		if !isLeftHandSide(expr) {
			p.throwErrorTolerant(nil, errors.InvalidLHSInAssignment)
		}
		op := p.lex()
		return finishNode(p, m, ast.NewPostfixExpression(op.Value, expr))
	}
	return expr
}

func (p *Parser) parseUnaryExpression() ast.Expr {
	if p.lookahead.Type != token.PUNCTUATOR && p.lookahead.Type != token.KEYWORD {
		return p.parsePostfixExpression()
	}

	p.enter()
	defer p.leave()

	switch {
	case p.match("++") || p.match("--"):
		m := p.markerCreate()
		op := p.lex()
		expr := p.parseUnaryExpression()
		if p.strict && isRestrictedIdentifier(expr) {
			p.throwErrorTolerant(nil, errors.StrictLHSPrefix)
		}
		if !isLeftHandSide(expr) {
			p.throwErrorTolerant(nil, errors.InvalidLHSInAssignment)
		}
		return finishNode(p, m, ast.NewUnaryExpression(op.Value, expr))

	case p.match("+") || p.match("-") || p.match("~") || p.match("!"):
		m := p.markerCreate()
		op := p.lex()
		expr := p.parseUnaryExpression()
		return finishNode(p, m, ast.NewUnaryExpression(op.Value, expr))

	case p.matchKeyword("delete") || p.matchKeyword("void") || p.matchKeyword("typeof"):
		m := p.markerCreate()
		op := p.lex()
		expr := p.parseUnaryExpression()
		unary := finishNode(p, m, ast.NewUnaryExpression(op.Value, expr))
		if _, ok := expr.(*ast.Identifier); ok && p.strict && op.Value == "delete" {
			p.throwErrorTolerant(nil, errors.StrictDelete)
		}
		return unary
	}

	return p.parsePostfixExpression()
}

// Conditional and assignment expressions

func (p *Parser) parseConditionalExpression() ast.Expr {
	m := p.markerCreate()
	expr := p.parseBinaryExpression()

	if !p.match("?") {
		return expr
	}
	p.lex()

	previousAllowIn := p.state.allowIn
	p.state.allowIn = true
	consequent := p.parseAssignmentExpression()
	p.state.allowIn = previousAllowIn

	p.expect(":")
	alternate := p.parseAssignmentExpression()

	return finishNode(p, m, ast.NewConditionalExpression(expr, consequent, alternate))
}

// matchYield reports whether the lookahead starts a yield expression. Outside
// strict mode "yield" is a keyword only inside a generator.
func (p *Parser) matchYield() bool {
	if !p.features.Generators {
		return false
	}
	return (p.state.yieldAllowed && p.matchContextualKeyword("yield")) ||
		(p.strict && p.matchKeyword("yield"))
}

func (p *Parser) parseAssignmentExpression() ast.Expr {
	p.enter()
	defer p.leave()

	if p.matchYield() {
		return p.parseYieldExpression()
	}

	oldParenthesisCount := p.state.parenthesisCount
	m := p.markerCreate()

	startsWithParen := false
	if p.match("(") {
		next := p.lookahead2()
		if next.Punctuator(")") || next.Punctuator("...") {
			// () => ... and (...rest) => ... cannot be anything else.
			info := p.parseParams(nil, errors.Message{})
			if !p.match("=>") {
				p.throwUnexpected(p.lex())
			}
			return p.parseArrowFunctionExpression(info, m)
		}
		startsWithParen = true
	}

	tok := p.lookahead
	left := p.parseConditionalExpression()

	// Only the outermost parentheses may enclose arrow parameters.
	if p.match("=>") && (p.state.parenthesisCount == oldParenthesisCount ||
		p.state.parenthesisCount == oldParenthesisCount+1) {
		var info *params
		switch n := left.(type) {
		case *ast.Identifier:
			info = p.coverFormals([]ast.Expr{n})
		case *ast.AssignmentExpression, *ast.ArrayExpression, *ast.ObjectExpression:
			if !startsWithParen {
				p.throwUnexpected(p.lex())
			}
			info = p.coverFormals([]ast.Expr{n})
		case *ast.SequenceExpression:
			info = p.coverFormals(n.Expressions)
		}
		if info != nil {
			return p.parseArrowFunctionExpression(info, m)
		}
	}

	if !p.matchAssign() {
		return left
	}

	if p.strict && isRestrictedIdentifier(left) {
		p.throwErrorTolerant(tok, errors.StrictLHSAssignment)
	}

	var target ast.Node = left
	switch left.(type) {
	case *ast.ObjectExpression, *ast.ArrayExpression:
		if p.match("=") {
			target = p.toAssignmentTarget(left)
			break
		}
		p.throwErrorTolerant(nil, errors.InvalidLHSInAssignment)
	default:
		if !isLeftHandSide(left) {
			p.throwErrorTolerant(nil, errors.InvalidLHSInAssignment)
		}
	}

	op := p.lex()
	right := p.parseAssignmentExpression()
	return finishNode(p, m, ast.NewAssignmentExpression(op.Value, target, right))
}

// parseExpression parses a comma-separated sequence. A spread element may
// only end a sequence that turns out to be arrow function parameters.
func (p *Parser) parseExpression() ast.Expr {
	m := p.markerCreate()
	expr := p.parseAssignmentExpression()
	if !p.match(",") {
		return expr
	}

	expressions := []ast.Expr{expr}
	spreadFound := false
	for p.match(",") {
		p.lex()
		expr = p.parseSpreadOrAssignmentExpression()
		expressions = append(expressions, expr)
		if _, spread := expr.(*ast.SpreadElement); spread {
			spreadFound = true
			if !p.match(")") {
				p.throwError(nil, errors.ElementAfterSpreadElement)
			}
			break
		}
	}
	sequence := finishNode(p, m, ast.NewSequenceExpression(expressions))

	if spreadFound && !p.lookahead2().Punctuator("=>") {
		p.throwError(nil, errors.IllegalSpread)
	}
	return sequence
}

// parseYieldExpression parses yield and yield*. A plain yield followed by a
// line break or a closing token has no argument.
func (p *Parser) parseYieldExpression() *ast.YieldExpression {
	m := p.markerCreate()
	tok := p.lex()
	invariant.Invariant(tok.Value == "yield", "yield expression must start with yield, got %q", tok.Value)

	if !p.state.yieldAllowed {
		p.throwErrorTolerant(nil, errors.IllegalYield)
	}

	delegate := false
	if p.match("*") {
		p.lex()
		delegate = true
	}

	var argument ast.Expr
	if delegate || !p.yieldEnds() {
		argument = p.parseAssignmentExpression()
	}
	return finishNode(p, m, ast.NewYieldExpression(argument, delegate))
}

func (p *Parser) yieldEnds() bool {
	if p.lookahead.Type == token.EOF || p.peekLineTerminator() {
		return true
	}
	for _, closer := range []string{")", "]", "}", ",", ";", ":"} {
		if p.match(closer) {
			return true
		}
	}
	return false
}
