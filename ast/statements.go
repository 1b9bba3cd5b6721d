package ast

import (
	"strings"

	"github.com/deepnoodle-ai/esparse/errors"
)

// Program is the root of a syntax tree. Comments, Tokens and Errors are
// filled in when the corresponding parse options are set.
type Program struct {
	*Base
	Body     []Stmt           `json:"body"`
	Comments []*Comment       `json:"comments,omitempty"`
	Tokens   []*Token         `json:"tokens,omitempty"`
	Errors   errors.ErrorList `json:"errors,omitempty"`
}

// NewProgram returns a Program node.
func NewProgram(body []Stmt) *Program {
	if body == nil {
		body = []Stmt{}
	}
	return &Program{Base: newBase("Program"), Body: body}
}

func (x *Program) String() string {
	lines := make([]string, len(x.Body))
	for i, stmt := range x.Body {
		lines[i] = stmt.String()
	}
	return strings.Join(lines, "\n")
}

// BlockStatement is a braced statement list.
type BlockStatement struct {
	*Base
	Body []Stmt `json:"body"`
}

// NewBlockStatement returns a BlockStatement node.
func NewBlockStatement(body []Stmt) *BlockStatement {
	if body == nil {
		body = []Stmt{}
	}
	return &BlockStatement{Base: newBase("BlockStatement"), Body: body}
}

func (x *BlockStatement) stmtNode() {}

func (x *BlockStatement) String() string {
	if len(x.Body) == 0 {
		return "{}"
	}
	return "{ " + joinNodes(x.Body, " ") + " }"
}

// EmptyStatement is a lone semicolon.
type EmptyStatement struct {
	*Base
}

// NewEmptyStatement returns an EmptyStatement node.
func NewEmptyStatement() *EmptyStatement {
	return &EmptyStatement{Base: newBase("EmptyStatement")}
}

func (x *EmptyStatement) stmtNode() {}

func (x *EmptyStatement) String() string { return ";" }

// ExpressionStatement is an expression evaluated for its side effects.
type ExpressionStatement struct {
	*Base
	Expression Expr `json:"expression"`
}

// NewExpressionStatement returns an ExpressionStatement node.
func NewExpressionStatement(expression Expr) *ExpressionStatement {
	return &ExpressionStatement{Base: newBase("ExpressionStatement"), Expression: expression}
}

func (x *ExpressionStatement) stmtNode() {}

func (x *ExpressionStatement) String() string { return x.Expression.String() + ";" }

// IfStatement is an if statement with an optional else branch.
type IfStatement struct {
	*Base
	Test       Expr `json:"test"`
	Consequent Stmt `json:"consequent"`
	Alternate  Stmt `json:"alternate"`
}

// NewIfStatement returns an IfStatement node.
func NewIfStatement(test Expr, consequent, alternate Stmt) *IfStatement {
	return &IfStatement{Base: newBase("IfStatement"), Test: test, Consequent: consequent, Alternate: alternate}
}

func (x *IfStatement) stmtNode() {}

func (x *IfStatement) String() string {
	out := "if (" + x.Test.String() + ") " + x.Consequent.String()
	if x.Alternate != nil {
		out += " else " + x.Alternate.String()
	}
	return out
}

// LabeledStatement is a statement prefixed by a label.
type LabeledStatement struct {
	*Base
	Label *Identifier `json:"label"`
	Body  Stmt        `json:"body"`
}

// NewLabeledStatement returns a LabeledStatement node.
func NewLabeledStatement(label *Identifier, body Stmt) *LabeledStatement {
	return &LabeledStatement{Base: newBase("LabeledStatement"), Label: label, Body: body}
}

func (x *LabeledStatement) stmtNode() {}

func (x *LabeledStatement) String() string { return x.Label.Name + ": " + x.Body.String() }

// BreakStatement exits a loop, switch or labeled statement.
type BreakStatement struct {
	*Base
	Label *Identifier `json:"label"`
}

// NewBreakStatement returns a BreakStatement node.
func NewBreakStatement(label *Identifier) *BreakStatement {
	return &BreakStatement{Base: newBase("BreakStatement"), Label: label}
}

func (x *BreakStatement) stmtNode() {}

func (x *BreakStatement) String() string { return jumpString("break", x.Label) }

// ContinueStatement starts the next loop iteration.
type ContinueStatement struct {
	*Base
	Label *Identifier `json:"label"`
}

// NewContinueStatement returns a ContinueStatement node.
func NewContinueStatement(label *Identifier) *ContinueStatement {
	return &ContinueStatement{Base: newBase("ContinueStatement"), Label: label}
}

func (x *ContinueStatement) stmtNode() {}

func (x *ContinueStatement) String() string { return jumpString("continue", x.Label) }

func jumpString(keyword string, label *Identifier) string {
	if label == nil {
		return keyword + ";"
	}
	return keyword + " " + label.Name + ";"
}

// WithStatement is a with statement.
type WithStatement struct {
	*Base
	Object Expr `json:"object"`
	Body   Stmt `json:"body"`
}

// NewWithStatement returns a WithStatement node.
func NewWithStatement(object Expr, body Stmt) *WithStatement {
	return &WithStatement{Base: newBase("WithStatement"), Object: object, Body: body}
}

func (x *WithStatement) stmtNode() {}

func (x *WithStatement) String() string {
	return "with (" + x.Object.String() + ") " + x.Body.String()
}

// SwitchStatement is a switch statement.
type SwitchStatement struct {
	*Base
	Discriminant Expr          `json:"discriminant"`
	Cases        []*SwitchCase `json:"cases"`
}

// NewSwitchStatement returns a SwitchStatement node.
func NewSwitchStatement(discriminant Expr, cases []*SwitchCase) *SwitchStatement {
	if cases == nil {
		cases = []*SwitchCase{}
	}
	return &SwitchStatement{Base: newBase("SwitchStatement"), Discriminant: discriminant, Cases: cases}
}

func (x *SwitchStatement) stmtNode() {}

func (x *SwitchStatement) String() string {
	if len(x.Cases) == 0 {
		return "switch (" + x.Discriminant.String() + ") {}"
	}
	return "switch (" + x.Discriminant.String() + ") { " + joinNodes(x.Cases, " ") + " }"
}

// SwitchCase is a case or default clause. Test is nil for default.
type SwitchCase struct {
	*Base
	Test       Expr   `json:"test"`
	Consequent []Stmt `json:"consequent"`
}

// NewSwitchCase returns a SwitchCase node.
func NewSwitchCase(test Expr, consequent []Stmt) *SwitchCase {
	if consequent == nil {
		consequent = []Stmt{}
	}
	return &SwitchCase{Base: newBase("SwitchCase"), Test: test, Consequent: consequent}
}

func (x *SwitchCase) String() string {
	out := "default:"
	if x.Test != nil {
		out = "case " + x.Test.String() + ":"
	}
	if len(x.Consequent) > 0 {
		out += " " + joinNodes(x.Consequent, " ")
	}
	return out
}

// ReturnStatement returns from a function.
type ReturnStatement struct {
	*Base
	Argument Expr `json:"argument"`
}

// NewReturnStatement returns a ReturnStatement node.
func NewReturnStatement(argument Expr) *ReturnStatement {
	return &ReturnStatement{Base: newBase("ReturnStatement"), Argument: argument}
}

func (x *ReturnStatement) stmtNode() {}

func (x *ReturnStatement) String() string {
	if x.Argument == nil {
		return "return;"
	}
	return "return " + x.Argument.String() + ";"
}

// ThrowStatement throws an exception.
type ThrowStatement struct {
	*Base
	Argument Expr `json:"argument"`
}

// NewThrowStatement returns a ThrowStatement node.
func NewThrowStatement(argument Expr) *ThrowStatement {
	return &ThrowStatement{Base: newBase("ThrowStatement"), Argument: argument}
}

func (x *ThrowStatement) stmtNode() {}

func (x *ThrowStatement) String() string { return "throw " + x.Argument.String() + ";" }

// TryStatement is a try statement. Handler repeats the first entry of
// Handlers.
type TryStatement struct {
	*Base
	Block           *BlockStatement `json:"block"`
	GuardedHandlers []*CatchClause  `json:"guardedHandlers"`
	Handlers        []*CatchClause  `json:"handlers"`
	Handler         *CatchClause    `json:"handler"`
	Finalizer       *BlockStatement `json:"finalizer"`
}

// NewTryStatement returns a TryStatement node.
func NewTryStatement(block *BlockStatement, handlers []*CatchClause, finalizer *BlockStatement) *TryStatement {
	x := &TryStatement{
		Base:            newBase("TryStatement"),
		Block:           block,
		GuardedHandlers: []*CatchClause{},
		Handlers:        handlers,
		Finalizer:       finalizer,
	}
	if x.Handlers == nil {
		x.Handlers = []*CatchClause{}
	}
	if len(x.Handlers) > 0 {
		x.Handler = x.Handlers[0]
	}
	return x
}

func (x *TryStatement) stmtNode() {}

func (x *TryStatement) String() string {
	out := "try " + x.Block.String()
	for _, h := range x.Handlers {
		out += " " + h.String()
	}
	if x.Finalizer != nil {
		out += " finally " + x.Finalizer.String()
	}
	return out
}

// CatchClause is the catch part of a try statement.
type CatchClause struct {
	*Base
	Param Pattern         `json:"param"`
	Body  *BlockStatement `json:"body"`
}

// NewCatchClause returns a CatchClause node.
func NewCatchClause(param Pattern, body *BlockStatement) *CatchClause {
	return &CatchClause{Base: newBase("CatchClause"), Param: param, Body: body}
}

func (x *CatchClause) String() string {
	return "catch (" + x.Param.String() + ") " + x.Body.String()
}

// WhileStatement is a while loop.
type WhileStatement struct {
	*Base
	Test Expr `json:"test"`
	Body Stmt `json:"body"`
}

// NewWhileStatement returns a WhileStatement node.
func NewWhileStatement(test Expr, body Stmt) *WhileStatement {
	return &WhileStatement{Base: newBase("WhileStatement"), Test: test, Body: body}
}

func (x *WhileStatement) stmtNode() {}

func (x *WhileStatement) String() string {
	return "while (" + x.Test.String() + ") " + x.Body.String()
}

// DoWhileStatement is a do-while loop.
type DoWhileStatement struct {
	*Base
	Body Stmt `json:"body"`
	Test Expr `json:"test"`
}

// NewDoWhileStatement returns a DoWhileStatement node.
func NewDoWhileStatement(body Stmt, test Expr) *DoWhileStatement {
	return &DoWhileStatement{Base: newBase("DoWhileStatement"), Body: body, Test: test}
}

func (x *DoWhileStatement) stmtNode() {}

func (x *DoWhileStatement) String() string {
	return "do " + x.Body.String() + " while (" + x.Test.String() + ");"
}

// ForStatement is a C-style for loop. Init is nil, an Expr or a
// *VariableDeclaration.
type ForStatement struct {
	*Base
	Init   Node `json:"init"`
	Test   Expr `json:"test"`
	Update Expr `json:"update"`
	Body   Stmt `json:"body"`
}

// NewForStatement returns a ForStatement node.
func NewForStatement(init Node, test, update Expr, body Stmt) *ForStatement {
	return &ForStatement{Base: newBase("ForStatement"), Init: init, Test: test, Update: update, Body: body}
}

func (x *ForStatement) stmtNode() {}

func (x *ForStatement) String() string {
	return "for (" + headString(x.Init) + "; " + optString(x.Test) + "; " + optString(x.Update) + ") " + x.Body.String()
}

// ForInStatement is a for-in loop.
type ForInStatement struct {
	*Base
	Left  Node `json:"left"`
	Right Expr `json:"right"`
	Body  Stmt `json:"body"`
	Each  bool `json:"each"`
}

// NewForInStatement returns a ForInStatement node.
func NewForInStatement(left Node, right Expr, body Stmt) *ForInStatement {
	return &ForInStatement{Base: newBase("ForInStatement"), Left: left, Right: right, Body: body}
}

func (x *ForInStatement) stmtNode() {}

func (x *ForInStatement) String() string {
	return "for (" + headString(x.Left) + " in " + x.Right.String() + ") " + x.Body.String()
}

// ForOfStatement is a for-of loop.
type ForOfStatement struct {
	*Base
	Left  Node `json:"left"`
	Right Expr `json:"right"`
	Body  Stmt `json:"body"`
}

// NewForOfStatement returns a ForOfStatement node.
func NewForOfStatement(left Node, right Expr, body Stmt) *ForOfStatement {
	return &ForOfStatement{Base: newBase("ForOfStatement"), Left: left, Right: right, Body: body}
}

func (x *ForOfStatement) stmtNode() {}

func (x *ForOfStatement) String() string {
	return "for (" + headString(x.Left) + " of " + x.Right.String() + ") " + x.Body.String()
}

// headString renders a loop head part, dropping a declaration's semicolon.
func headString(n Node) string {
	if n == nil || isNilNode(n) {
		return ""
	}
	return strings.TrimSuffix(n.String(), ";")
}

func optString(n Expr) string {
	if n == nil {
		return ""
	}
	return n.String()
}

// DebuggerStatement is the debugger keyword.
type DebuggerStatement struct {
	*Base
}

// NewDebuggerStatement returns a DebuggerStatement node.
func NewDebuggerStatement() *DebuggerStatement {
	return &DebuggerStatement{Base: newBase("DebuggerStatement")}
}

func (x *DebuggerStatement) stmtNode() {}

func (x *DebuggerStatement) String() string { return "debugger;" }

// FunctionDeclaration is a named function statement.
type FunctionDeclaration struct {
	*Base
	Function
}

// NewFunctionDeclaration returns a FunctionDeclaration node.
func NewFunctionDeclaration(id *Identifier, params []Pattern, defaults []Expr, body *BlockStatement, rest *Identifier, generator, expression bool) *FunctionDeclaration {
	return &FunctionDeclaration{
		Base:     newBase("FunctionDeclaration"),
		Function: newFunction(id, params, defaults, body, rest, generator, expression),
	}
}

func (x *FunctionDeclaration) stmtNode() {}

func (x *FunctionDeclaration) String() string { return x.header("function") }

// VariableDeclaration is a var, let or const declaration.
type VariableDeclaration struct {
	*Base
	Declarations []*VariableDeclarator `json:"declarations"`
	Kind         string                `json:"kind"`
}

// NewVariableDeclaration returns a VariableDeclaration node.
func NewVariableDeclaration(declarations []*VariableDeclarator, kind string) *VariableDeclaration {
	return &VariableDeclaration{Base: newBase("VariableDeclaration"), Declarations: declarations, Kind: kind}
}

func (x *VariableDeclaration) stmtNode() {}

func (x *VariableDeclaration) String() string {
	return x.Kind + " " + joinNodes(x.Declarations, ", ") + ";"
}

// VariableDeclarator is one binding of a variable declaration.
type VariableDeclarator struct {
	*Base
	ID   Pattern `json:"id"`
	Init Expr    `json:"init"`
}

// NewVariableDeclarator returns a VariableDeclarator node.
func NewVariableDeclarator(id Pattern, init Expr) *VariableDeclarator {
	return &VariableDeclarator{Base: newBase("VariableDeclarator"), ID: id, Init: init}
}

func (x *VariableDeclarator) String() string {
	if x.Init == nil {
		return x.ID.String()
	}
	return x.ID.String() + " = " + x.Init.String()
}
