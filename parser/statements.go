package parser

import (
	"github.com/deepnoodle-ai/esparse/ast"
	"github.com/deepnoodle-ai/esparse/errors"
	"github.com/deepnoodle-ai/esparse/internal/token"
	"github.com/deepnoodle-ai/esparse/syntax"
)

// parseSourceElement parses a statement or declaration. It returns nil at
// the end of the input.
func (p *Parser) parseSourceElement() ast.Stmt {
	if p.lookahead.Type == token.KEYWORD {
		switch p.lookahead.Value {
		case "function":
			return p.parseFunctionDeclaration()
		case "const", "let":
			if p.features.BlockBindings {
				return p.parseConstLetDeclaration(p.lookahead.Value)
			}
		}
		return p.parseStatement()
	}
	if p.lookahead.Type != token.EOF {
		return p.parseStatement()
	}
	return nil
}

func (p *Parser) parseStatement() ast.Stmt {
	p.enter()
	defer p.leave()

	if p.lookahead.Type == token.EOF {
		p.throwUnexpected(p.lookahead)
	}
	if p.match("{") {
		return p.parseBlock()
	}

	m := p.markerCreate()

	if p.lookahead.Type == token.PUNCTUATOR {
		switch p.lookahead.Value {
		case ";":
			p.expect(";")
			return finishNode(p, m, ast.NewEmptyStatement())
		case "(":
			expr := p.parseExpression()
			p.consumeSemicolon()
			return finishNode(p, m, ast.NewExpressionStatement(expr))
		}
	}

	if p.lookahead.Type == token.KEYWORD {
		var stmt ast.Stmt
		switch p.lookahead.Value {
		case "break":
			stmt = p.parseBreakStatement()
		case "continue":
			stmt = p.parseContinueStatement()
		case "debugger":
			stmt = p.parseDebuggerStatement()
		case "do":
			stmt = p.parseDoWhileStatement()
		case "for":
			stmt = p.parseForStatement()
		case "function":
			stmt = p.parseFunctionDeclaration()
		case "if":
			stmt = p.parseIfStatement()
		case "return":
			stmt = p.parseReturnStatement()
		case "switch":
			stmt = p.parseSwitchStatement()
		case "throw":
			stmt = p.parseThrowStatement()
		case "try":
			stmt = p.parseTryStatement()
		case "var":
			stmt = p.parseVariableStatement()
		case "while":
			stmt = p.parseWhileStatement()
		case "with":
			stmt = p.parseWithStatement()
		}
		if stmt != nil {
			return finishNode(p, m, stmt)
		}
	}

	expr := p.parseExpression()

	if id, ok := expr.(*ast.Identifier); ok && p.match(":") {
		p.lex()
		if p.state.labelSet[id.Name] {
			p.throwError(nil, errors.Redeclaration, "Label", id.Name)
		}
		p.state.labelSet[id.Name] = true
		body := p.parseStatement()
		delete(p.state.labelSet, id.Name)
		return finishNode(p, m, ast.NewLabeledStatement(id, body))
	}

	p.consumeSemicolon()
	return finishNode(p, m, ast.NewExpressionStatement(expr))
}

// Blocks

func (p *Parser) parseStatementList() []ast.Stmt {
	var list []ast.Stmt
	for p.index < p.length {
		if p.match("}") {
			break
		}
		stmt := p.parseSourceElement()
		if stmt == nil {
			break
		}
		list = append(list, stmt)
	}
	return list
}

func (p *Parser) parseBlock() *ast.BlockStatement {
	m := p.markerCreate()
	p.expect("{")
	body := p.parseStatementList()
	p.expect("}")
	return finishNode(p, m, ast.NewBlockStatement(body))
}

// Declarations

func (p *Parser) parseVariableIdentifier() *ast.Identifier {
	m := p.markerCreate()
	tok := p.lex()
	if tok.Type != token.IDENTIFIER {
		// Returns only for a strict mode reserved word in tolerant mode.
		p.throwUnexpected(tok)
	}
	return finishNode(p, m, ast.NewIdentifier(tok.Value))
}

// parseVariableDeclaration parses one declarator. kind is "const" when an
// initializer is required.
func (p *Parser) parseVariableDeclaration(kind string) *ast.VariableDeclarator {
	m := p.markerCreate()

	var id ast.Pattern
	switch {
	case p.match("{"):
		id = asPattern(p.toAssignmentTarget(p.parseObjectInitialiser()))
	case p.match("["):
		id = asPattern(p.toAssignmentTarget(p.parseArrayInitialiser()))
	default:
		name := p.parseVariableIdentifier()
		if p.strict && syntax.IsRestrictedWord(name.Name) {
			p.throwErrorTolerant(nil, errors.StrictVarName)
		}
		id = name
	}

	var init ast.Expr
	if kind == "const" {
		if !p.match("=") {
			p.throwError(nil, errors.NoUninitializedConst)
		}
		p.expect("=")
		init = p.parseAssignmentExpression()
	} else if p.match("=") {
		p.lex()
		init = p.parseAssignmentExpression()
	}

	return finishNode(p, m, ast.NewVariableDeclarator(id, init))
}

func (p *Parser) parseVariableDeclarationList(kind string) []*ast.VariableDeclarator {
	var list []*ast.VariableDeclarator
	for {
		list = append(list, p.parseVariableDeclaration(kind))
		if !p.match(",") {
			break
		}
		p.lex()
		if p.index >= p.length {
			break
		}
	}
	return list
}

func (p *Parser) parseVariableStatement() *ast.VariableDeclaration {
	p.expectKeyword("var")
	declarations := p.parseVariableDeclarationList("var")
	p.consumeSemicolon()
	return ast.NewVariableDeclaration(declarations, "var")
}

func (p *Parser) parseConstLetDeclaration(kind string) *ast.VariableDeclaration {
	m := p.markerCreate()
	p.expectKeyword(kind)
	declarations := p.parseVariableDeclarationList(kind)
	p.consumeSemicolon()
	return finishNode(p, m, ast.NewVariableDeclaration(declarations, kind))
}

// Control flow

func (p *Parser) parseIfStatement() *ast.IfStatement {
	p.expectKeyword("if")
	p.expect("(")
	test := p.parseExpression()
	p.expect(")")

	consequent := p.parseStatement()
	var alternate ast.Stmt
	if p.matchKeyword("else") {
		p.lex()
		alternate = p.parseStatement()
	}
	return ast.NewIfStatement(test, consequent, alternate)
}

// parseLoopBody parses the body of an iteration statement, where break and
// continue are allowed.
func (p *Parser) parseLoopBody() ast.Stmt {
	oldInIteration := p.state.inIteration
	p.state.inIteration = true
	body := p.parseStatement()
	p.state.inIteration = oldInIteration
	return body
}

func (p *Parser) parseDoWhileStatement() *ast.DoWhileStatement {
	p.expectKeyword("do")
	body := p.parseLoopBody()

	p.expectKeyword("while")
	p.expect("(")
	test := p.parseExpression()
	p.expect(")")

	// The semicolon after do-while is always optional.
	if p.match(";") {
		p.lex()
	}
	return ast.NewDoWhileStatement(body, test)
}

func (p *Parser) parseWhileStatement() *ast.WhileStatement {
	p.expectKeyword("while")
	p.expect("(")
	test := p.parseExpression()
	p.expect(")")
	return ast.NewWhileStatement(test, p.parseLoopBody())
}

// parseForVariableDeclaration parses the declaration in a for statement
// head. Its declarators need no initializer even for const, since a for-in
// or for-of supplies the value.
func (p *Parser) parseForVariableDeclaration() *ast.VariableDeclaration {
	m := p.markerCreate()
	tok := p.lex()
	declarations := p.parseVariableDeclarationList("")
	return finishNode(p, m, ast.NewVariableDeclaration(declarations, tok.Value))
}

func (p *Parser) matchForOf() bool {
	return p.features.ForOf && p.matchContextualKeyword("of")
}

func (p *Parser) parseForStatement() ast.Stmt {
	var init, left ast.Node
	var test, update, right ast.Expr
	var operator *token.Token

	p.expectKeyword("for")
	p.expect("(")

	if p.match(";") {
		p.lex()
	} else {
		if p.matchKeyword("var") || (p.features.BlockBindings && (p.matchKeyword("let") || p.matchKeyword("const"))) {
			p.state.allowIn = false
			decl := p.parseForVariableDeclaration()
			p.state.allowIn = true
			init = decl

			if len(decl.Declarations) == 1 && (p.matchKeyword("in") || p.matchForOf()) {
				// An initializer is tolerated only in "for (var x = 0 of y)";
				// otherwise the head is a plain for and the operator is
				// reported below.
				hasInit := decl.Declarations[0].Init != nil
				if !((p.lookahead.Value == "in" || decl.Kind != "var") && hasInit) {
					operator = p.lex()
					left = decl
					right = p.parseExpression()
					init = nil
				}
			}
		} else {
			p.state.allowIn = false
			expr := p.parseExpression()
			p.state.allowIn = true
			init = expr

			if p.matchForOf() {
				operator = p.lex()
				left = expr
				right = p.parseExpression()
				init = nil
			} else if p.matchKeyword("in") {
				if !isLeftHandSide(expr) {
					p.throwErrorTolerant(nil, errors.InvalidLHSInForIn)
				}
				operator = p.lex()
				left = expr
				right = p.parseExpression()
				init = nil
			}
		}

		if left == nil {
			p.expect(";")
		}
	}

	if left == nil {
		if !p.match(";") {
			test = p.parseExpression()
		}
		p.expect(";")
		if !p.match(")") {
			update = p.parseExpression()
		}
	}

	p.expect(")")
	body := p.parseLoopBody()

	switch {
	case left == nil:
		return ast.NewForStatement(init, test, update, body)
	case operator.Value == "of":
		return ast.NewForOfStatement(left, right, body)
	}
	return ast.NewForInStatement(left, right, body)
}

// Jumps

// parseJumpLabel parses the optional label of a break or continue.
func (p *Parser) parseJumpLabel() *ast.Identifier {
	// "break;" is by far the most common form.
	if p.byteAt(p.index) == ';' {
		p.lex()
		return nil
	}
	if p.peekLineTerminator() {
		return nil
	}

	var label *ast.Identifier
	if p.lookahead.Type == token.IDENTIFIER {
		label = p.parseVariableIdentifier()
		if !p.state.labelSet[label.Name] {
			p.throwError(nil, errors.UnknownLabel, label.Name)
		}
	}
	p.consumeSemicolon()
	return label
}

func (p *Parser) parseContinueStatement() *ast.ContinueStatement {
	p.expectKeyword("continue")
	label := p.parseJumpLabel()
	if label == nil && !p.state.inIteration {
		p.throwError(nil, errors.IllegalContinue)
	}
	return ast.NewContinueStatement(label)
}

func (p *Parser) parseBreakStatement() *ast.BreakStatement {
	p.expectKeyword("break")
	label := p.parseJumpLabel()
	if label == nil && !p.state.inIteration && !p.state.inSwitch {
		p.throwError(nil, errors.IllegalBreak)
	}
	return ast.NewBreakStatement(label)
}

func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	p.expectKeyword("return")

	if !p.state.inFunctionBody && !p.features.GlobalReturn {
		p.throwErrorTolerant(nil, errors.IllegalReturn)
	}

	// "return" followed by a space and an identifier is very common.
	if p.byteAt(p.index) == ' ' {
		if r, _ := p.charAt(p.index + 1); syntax.IsIdentifierStart(r) {
			argument := p.parseExpression()
			p.consumeSemicolon()
			return ast.NewReturnStatement(argument)
		}
	}

	if p.peekLineTerminator() {
		return ast.NewReturnStatement(nil)
	}

	var argument ast.Expr
	if !p.match(";") && !p.match("}") && p.lookahead.Type != token.EOF {
		argument = p.parseExpression()
	}
	p.consumeSemicolon()
	return ast.NewReturnStatement(argument)
}

func (p *Parser) parseWithStatement() *ast.WithStatement {
	if p.strict {
		p.skipComment()
		p.throwErrorTolerant(nil, errors.StrictModeWith)
	}

	p.expectKeyword("with")
	p.expect("(")
	object := p.parseExpression()
	p.expect(")")
	return ast.NewWithStatement(object, p.parseStatement())
}

// Switch

func (p *Parser) parseSwitchCase() *ast.SwitchCase {
	m := p.markerCreate()

	var test ast.Expr
	if p.matchKeyword("default") {
		p.lex()
	} else {
		p.expectKeyword("case")
		test = p.parseExpression()
	}
	p.expect(":")

	var consequent []ast.Stmt
	for p.index < p.length {
		if p.match("}") || p.matchKeyword("default") || p.matchKeyword("case") {
			break
		}
		consequent = append(consequent, p.parseSourceElement())
	}
	return finishNode(p, m, ast.NewSwitchCase(test, consequent))
}

func (p *Parser) parseSwitchStatement() *ast.SwitchStatement {
	p.expectKeyword("switch")
	p.expect("(")
	discriminant := p.parseExpression()
	p.expect(")")
	p.expect("{")

	if p.match("}") {
		p.lex()
		return ast.NewSwitchStatement(discriminant, nil)
	}

	oldInSwitch := p.state.inSwitch
	p.state.inSwitch = true

	var cases []*ast.SwitchCase
	defaultFound := false
	for p.index < p.length {
		if p.match("}") {
			break
		}
		clause := p.parseSwitchCase()
		if clause.Test == nil {
			if defaultFound {
				p.throwError(nil, errors.MultipleDefaultsInSwitch)
			}
			defaultFound = true
		}
		cases = append(cases, clause)
	}

	p.state.inSwitch = oldInSwitch
	p.expect("}")
	return ast.NewSwitchStatement(discriminant, cases)
}

// Exceptions

func (p *Parser) parseThrowStatement() *ast.ThrowStatement {
	p.expectKeyword("throw")
	if p.peekLineTerminator() {
		p.throwError(nil, errors.NewlineAfterThrow)
	}
	argument := p.parseExpression()
	p.consumeSemicolon()
	return ast.NewThrowStatement(argument)
}

func (p *Parser) parseCatchClause() *ast.CatchClause {
	m := p.markerCreate()
	p.expectKeyword("catch")

	p.expect("(")
	if p.match(")") {
		p.throwUnexpected(p.lookahead)
	}
	param := p.parseVariableIdentifier()
	if p.strict && syntax.IsRestrictedWord(param.Name) {
		p.throwErrorTolerant(nil, errors.StrictCatchVariable)
	}
	p.expect(")")

	body := p.parseBlock()
	return finishNode(p, m, ast.NewCatchClause(param, body))
}

func (p *Parser) parseTryStatement() *ast.TryStatement {
	p.expectKeyword("try")
	block := p.parseBlock()

	var handlers []*ast.CatchClause
	if p.matchKeyword("catch") {
		handlers = append(handlers, p.parseCatchClause())
	}

	var finalizer *ast.BlockStatement
	if p.matchKeyword("finally") {
		p.lex()
		finalizer = p.parseBlock()
	}

	if len(handlers) == 0 && finalizer == nil {
		p.throwError(nil, errors.NoCatchOrFinally)
	}
	return ast.NewTryStatement(block, handlers, finalizer)
}

func (p *Parser) parseDebuggerStatement() *ast.DebuggerStatement {
	p.expectKeyword("debugger")
	p.consumeSemicolon()
	return ast.NewDebuggerStatement()
}
