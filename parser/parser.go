// Package parser converts ECMAScript source text into an ESTree syntax tree
// and token stream.
//
// A parser is created by calling New() with the source text as input. The
// parser should then be used only once, by calling Parse() or Tokenize().
// Parse and Tokenize are shorthands that do both steps.
package parser

import (
	"context"
	stderrors "errors"

	"github.com/deepnoodle-ai/esparse/ast"
	"github.com/deepnoodle-ai/esparse/errors"
	"github.com/deepnoodle-ai/esparse/internal/token"
	"github.com/deepnoodle-ai/esparse/syntax"
)

// ErrParserUsed is returned when a Parser is asked to run a second time.
var ErrParserUsed = stderrors.New("parser: already used")

// Parse the provided input as ECMAScript source code and return the AST.
// In tolerant mode recoverable errors are reported in Program.Errors and the
// returned error is nil unless the scanner failed.
func Parse(ctx context.Context, src string, options ...Option) (*ast.Program, error) {
	return New(src, options...).Parse(ctx)
}

// Tokenize splits the input into tokens without building a tree.
func Tokenize(ctx context.Context, src string, options ...Option) (*TokenStream, error) {
	return New(src, options...).Tokenize(ctx)
}

// TokenStream is the result of Tokenize. Comments and Errors are filled in
// when comment collection and tolerant mode are enabled.
type TokenStream struct {
	Tokens   []*ast.Token     `json:"tokens"`
	Comments []*ast.Comment   `json:"comments,omitempty"`
	Errors   errors.ErrorList `json:"errors,omitempty"`
}

type curly uint8

const (
	curlyBrace curly = iota
	curlyTemplate
)

// state is the grammatical context threaded through the parse.
type state struct {
	allowIn          bool
	labelSet         map[string]bool
	parenthesisCount int
	inFunctionBody   bool
	inIteration      bool
	inSwitch         bool
	yieldAllowed     bool

	// markup submodes
	inJSXTag             bool
	inJSXChild           bool
	inJSXSpreadAttribute bool

	lastCommentStart int
}

func newState() state {
	return state{
		allowIn:          true,
		labelSet:         map[string]bool{},
		lastCommentStart: -1,
	}
}

// extra holds the output accumulators and the bookkeeping they need.
type extra struct {
	tokenize bool // regex/division disambiguation from token history
	collect  bool // collect the public token stream

	tokens   []*ast.Token
	comments []*ast.Comment
	errors   errors.ErrorList

	curlies        []curly
	openParenToken int
	openCurlyToken int

	leadingComments  []*ast.Comment
	trailingComments []*ast.Comment
	bottomRightStack []ast.Node
}

// Parser holds the scan position and parse context of one invocation.
type Parser struct {
	ctx context.Context

	src    string
	length int

	// scan position
	index      int
	lineNumber int
	lineStart  int

	// lookahead is the next token, already scanned.
	lookahead *token.Token
	// prev is the token most recently consumed by lex.
	prev *token.Token

	strict        bool
	programStrict bool

	state    state
	extra    extra
	features syntax.Features
	opts     options

	// Current recursion depth
	depth int

	used bool
}

// New returns a Parser for src configured by the given options.
func New(src string, options ...Option) *Parser {
	p := &Parser{
		src:    src,
		length: len(src),
		opts:   defaultOptions(),
		state:  newState(),
	}
	for _, opt := range options {
		opt(p)
	}
	if p.opts.attachComment {
		p.opts.ranges = true
		p.opts.comments = true
	}
	features, err := p.opts.features.Apply(p.opts.overrides)
	if err != nil && p.opts.err == nil {
		p.opts.err = err
	}
	p.features = features
	if len(src) > 0 {
		p.lineNumber = 1
	}
	p.extra.openParenToken = -1
	p.extra.openCurlyToken = -1
	return p
}

func (p *Parser) begin(ctx context.Context) error {
	if p.used {
		return ErrParserUsed
	}
	p.used = true
	if p.opts.err != nil {
		return p.opts.err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	p.ctx = ctx
	return ctx.Err()
}

// catch converts a bailout panic into an error. Any other panic, including
// invariant violations, keeps propagating.
func (p *Parser) catch(err *error) {
	if r := recover(); r != nil {
		b, ok := r.(bailout)
		if !ok {
			panic(r)
		}
		*err = b.err
	}
}

// checkContext aborts the parse once the context is done.
func (p *Parser) checkContext() {
	select {
	case <-p.ctx.Done():
		panic(bailout{p.ctx.Err()})
	default:
	}
}

// Parse the program and return the AST.
func (p *Parser) Parse(ctx context.Context) (program *ast.Program, err error) {
	if err := p.begin(ctx); err != nil {
		return nil, err
	}
	p.extra.collect = p.opts.tokens
	defer p.catch(&err)

	program = p.parseProgram()
	if p.opts.comments {
		program.Comments = p.extra.comments
		if program.Comments == nil {
			program.Comments = []*ast.Comment{}
		}
	}
	if p.opts.tokens {
		program.Tokens = p.publicTokens()
	}
	if p.opts.tolerant {
		program.Errors = p.extra.errors
	}
	p.opts.logger.Debug().
		Int("statements", len(program.Body)).
		Int("tokens", len(p.extra.tokens)).
		Int("comments", len(p.extra.comments)).
		Int("errors", p.extra.errors.Len()).
		Msg("parse complete")
	return program, nil
}

func (p *Parser) parseProgram() *ast.Program {
	p.skipComment()
	p.peek()
	m := p.markerCreate()
	p.strict = false
	body := p.parseSourceElements()
	return finishNode(p, m, ast.NewProgram(body))
}

// parseSourceElements parses the program body: a directive prologue followed
// by statements.
func (p *Parser) parseSourceElements() []ast.Stmt {
	var body []ast.Stmt
	var firstRestricted *token.Token
	for p.index < p.length {
		tok := p.lookahead
		if tok.Type != token.STRING {
			break
		}
		stmt, failed := p.parseTopLevel()
		if failed {
			break
		}
		body = append(body, stmt)
		if !isDirective(stmt) {
			break
		}
		if p.directive(tok) == "use strict" {
			p.strict = true
			p.programStrict = true
			if firstRestricted != nil {
				p.throwErrorTolerant(firstRestricted, errors.StrictOctalLiteral)
			}
		} else if firstRestricted == nil && tok.Octal {
			firstRestricted = tok
		}
	}
	for p.index < p.length {
		p.checkContext()
		stmt, failed := p.parseTopLevel()
		if failed {
			continue
		}
		if stmt == nil {
			break
		}
		body = append(body, stmt)
	}
	return body
}

func isDirective(stmt ast.Stmt) bool {
	es, ok := stmt.(*ast.ExpressionStatement)
	if !ok {
		return false
	}
	_, ok = es.Expression.(*ast.Literal)
	return ok
}

// directive returns the text of a string token without its quotes.
func (p *Parser) directive(tok *token.Token) string {
	return p.src[tok.Start.Char+1 : tok.End-1]
}

// parseTopLevel parses one program-level source element. In tolerant mode a
// statement that fails with a recoverable error is recorded and skipped.
func (p *Parser) parseTopLevel() (stmt ast.Stmt, failed bool) {
	if !p.opts.tolerant {
		return p.parseSourceElement(), false
	}
	start := p.lookahead.Start.Char
	func() {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			serr, ok := b.err.(*errors.SyntaxError)
			if !ok || serr.Lexical {
				panic(r)
			}
			p.extra.errors.Add(serr)
			failed = true
		}()
		stmt = p.parseSourceElement()
	}()
	if failed {
		p.opts.logger.Debug().
			Int("index", start).
			Int("errors", p.extra.errors.Len()).
			Msg("recovering from failed statement")
		p.synchronize(start)
	}
	return stmt, failed
}

var statementKeywords = map[string]bool{
	"var": true, "let": true, "const": true, "function": true, "if": true,
	"for": true, "while": true, "do": true, "return": true, "switch": true,
	"try": true, "throw": true, "break": true, "continue": true, "with": true,
	"debugger": true,
}

// synchronize skips tokens until a statement boundary at program level is
// reached. This is used for error recovery to continue parsing after an
// error.
func (p *Parser) synchronize(start int) {
	p.state.inJSXTag = false
	p.state.inJSXChild = false
	p.state.inJSXSpreadAttribute = false
	// Always make progress past the failing statement's first token.
	if p.lookahead.Type != token.EOF && p.lookahead.Start.Char <= start {
		p.lex()
	}
	for p.lookahead.Type != token.EOF {
		if len(p.extra.curlies) == 0 {
			if p.lookahead.Type == token.KEYWORD && statementKeywords[p.lookahead.Value] &&
				p.lookahead.Start.Line > p.lineNumber {
				break
			}
			if p.match(";") || p.match("}") {
				p.lex()
				break
			}
		}
		p.lex()
	}
	p.extra.curlies = nil
	p.state = state{
		allowIn:          true,
		labelSet:         map[string]bool{},
		lastCommentStart: p.state.lastCommentStart,
	}
	p.strict = p.programStrict
	p.depth = 0
}

func (p *Parser) enter() {
	p.depth++
	if p.depth > p.opts.maxDepth {
		p.throwError(nil, errors.MaxDepthExceeded)
	}
}

func (p *Parser) leave() {
	p.depth--
}

// Tokenize scans the whole input and returns its tokens.
func (p *Parser) Tokenize(ctx context.Context) (stream *TokenStream, err error) {
	if err := p.begin(ctx); err != nil {
		return nil, err
	}
	p.extra.tokenize = true
	p.extra.collect = true
	defer p.catch(&err)

	if err := p.try(p.peek); err != nil {
		if !p.opts.tolerant {
			return nil, err
		}
		p.extra.errors.Add(err)
	} else {
		for p.lookahead.Type != token.EOF {
			p.checkContext()
			if err := p.try(func() { p.lex() }); err != nil {
				if !p.opts.tolerant {
					return nil, err
				}
				// The scan position is unusable after a scanner error.
				p.extra.errors.Add(err)
				break
			}
		}
	}

	stream = &TokenStream{Tokens: p.publicTokens()}
	if p.opts.comments {
		stream.Comments = p.extra.comments
		if stream.Comments == nil {
			stream.Comments = []*ast.Comment{}
		}
	}
	if p.opts.tolerant {
		stream.Errors = p.extra.errors
	}
	p.opts.logger.Debug().
		Int("tokens", len(stream.Tokens)).
		Int("comments", len(p.extra.comments)).
		Int("errors", p.extra.errors.Len()).
		Msg("tokenize complete")
	return stream, nil
}

// try runs fn and returns the syntax error it bailed out with, if any.
func (p *Parser) try(fn func()) (err *errors.SyntaxError) {
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			serr, ok := b.err.(*errors.SyntaxError)
			if !ok {
				panic(r)
			}
			err = serr
		}
	}()
	fn()
	return nil
}

// publicTokens returns the collected tokens, stripped of the location data
// that was not requested.
func (p *Parser) publicTokens() []*ast.Token {
	tokens := make([]*ast.Token, 0, len(p.extra.tokens))
	for _, entry := range p.extra.tokens {
		tok := &ast.Token{Type: entry.Type, Value: entry.Value, Regex: entry.Regex}
		if p.opts.ranges {
			tok.Range = entry.Range
		}
		if p.opts.locations {
			tok.Loc = entry.Loc
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
