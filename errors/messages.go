package errors

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/deepnoodle-ai/esparse/internal/invariant"
)

// ErrorCode represents a unique identifier for error types.
// Codes are organized by category:
//   - E1xxx: Lexical errors
//   - E2xxx: Grammar errors
//   - E3xxx: Strict mode errors
//   - E4xxx: Markup errors
type ErrorCode string

// Category returns the error category based on the code prefix.
func (c ErrorCode) Category() string {
	if len(c) < 2 {
		return "unknown"
	}
	switch c[1] {
	case '1':
		return "lexical"
	case '2':
		return "grammar"
	case '3':
		return "strict mode"
	case '4':
		return "markup"
	default:
		return "unknown"
	}
}

func (c ErrorCode) String() string {
	return string(c)
}

// Message is a message template. Placeholders %0 and %1 are replaced by
// the arguments given to Format.
type Message struct {
	Code   ErrorCode
	Format string
}

var placeholder = regexp.MustCompile(`%(\d)`)

// Render substitutes args into the template. Every placeholder must have a
// matching argument.
func (m Message) Render(args ...string) string {
	return placeholder.ReplaceAllStringFunc(m.Format, func(ref string) string {
		i, _ := strconv.Atoi(ref[1:])
		invariant.Invariant(i < len(args), "message reference %d must be in range for %q", i, m.Format)
		return args[i]
	})
}

func (m Message) String() string {
	return fmt.Sprintf("%s: %s", m.Code, m.Format)
}

// Lexical errors
var (
	UnexpectedToken    = Message{"E1001", "Unexpected token %0"}
	UnexpectedNumber   = Message{"E1002", "Unexpected number"}
	UnexpectedString   = Message{"E1003", "Unexpected string"}
	UnexpectedIdent    = Message{"E1004", "Unexpected identifier"}
	UnexpectedReserved = Message{"E1005", "Unexpected reserved word"}
	UnexpectedTemplate = Message{"E1006", "Unexpected quasi %0"}
	UnexpectedEOS      = Message{"E1007", "Unexpected end of input"}
	InvalidRegExp      = Message{"E1008", "Invalid regular expression"}
	InvalidRegExpFlag  = Message{"E1009", "Invalid regular expression flag"}
	UnterminatedRegExp = Message{"E1010", "Invalid regular expression: missing /"}
)

// Grammar errors
var (
	NewlineAfterThrow            = Message{"E2001", "Illegal newline after throw"}
	InvalidLHSInAssignment       = Message{"E2002", "Invalid left-hand side in assignment"}
	InvalidLHSInFormalsList      = Message{"E2003", "Invalid left-hand side in formals list"}
	InvalidLHSInForIn            = Message{"E2004", "Invalid left-hand side in for-in"}
	MultipleDefaultsInSwitch     = Message{"E2005", "More than one default clause in switch statement"}
	NoCatchOrFinally             = Message{"E2006", "Missing catch or finally after try"}
	NoUninitializedConst         = Message{"E2007", "Const must be initialized"}
	UnknownLabel                 = Message{"E2008", "Undefined label '%0'"}
	Redeclaration                = Message{"E2009", "%0 '%1' has already been declared"}
	IllegalContinue              = Message{"E2010", "Illegal continue statement"}
	IllegalBreak                 = Message{"E2011", "Illegal break statement"}
	IllegalReturn                = Message{"E2012", "Illegal return statement"}
	IllegalYield                 = Message{"E2013", "Illegal yield expression"}
	IllegalSpread                = Message{"E2014", "Illegal spread element"}
	ParameterAfterRestParameter  = Message{"E2015", "Rest parameter must be final parameter of an argument list"}
	DefaultRestParameter         = Message{"E2016", "Rest parameter can not have a default value"}
	ElementAfterSpreadElement    = Message{"E2017", "Spread must be the final element of an element list"}
	ObjectPatternAsRestParameter = Message{"E2018", "Invalid rest parameter"}
	ObjectPatternAsSpread        = Message{"E2019", "Invalid spread argument"}
	DuplicatePrototypeProperty   = Message{"E2020", "Duplicate '__proto__' property in object literal are not allowed"}
	AccessorDataProperty         = Message{"E2021", "Object literal may not have data and accessor property with the same name"}
	AccessorGetSet               = Message{"E2022", "Object literal may not have multiple get/set accessors with the same name"}
	MaxDepthExceeded             = Message{"E2023", "Maximum nesting depth exceeded"}
)

// Strict mode errors
var (
	StrictModeWith          = Message{"E3001", "Strict mode code may not include a with statement"}
	StrictCatchVariable     = Message{"E3002", "Catch variable may not be eval or arguments in strict mode"}
	StrictVarName           = Message{"E3003", "Variable name may not be eval or arguments in strict mode"}
	StrictParamName         = Message{"E3004", "Parameter name eval or arguments is not allowed in strict mode"}
	StrictParamDupe         = Message{"E3005", "Strict mode function may not have duplicate parameter names"}
	StrictFunctionName      = Message{"E3006", "Function name may not be eval or arguments in strict mode"}
	StrictOctalLiteral      = Message{"E3007", "Octal literals are not allowed in strict mode."}
	StrictDelete            = Message{"E3008", "Delete of an unqualified identifier in strict mode."}
	StrictDuplicateProperty = Message{"E3009", "Duplicate data property in object literal not allowed in strict mode"}
	StrictLHSAssignment     = Message{"E3010", "Assignment to eval or arguments is not allowed in strict mode"}
	StrictLHSPostfix        = Message{"E3011", "Postfix increment/decrement may not have eval or arguments operand in strict mode"}
	StrictLHSPrefix         = Message{"E3012", "Prefix increment/decrement may not have eval or arguments operand in strict mode"}
	StrictReservedWord      = Message{"E3013", "Use of future reserved word in strict mode"}
)

// Markup errors
var (
	InvalidJSXAttributeValue = Message{"E4001", "JSX value should be either an expression or a quoted JSX text"}
	ExpectedJSXClosingTag    = Message{"E4002", "Expected corresponding JSX closing tag for %0"}
	AdjacentJSXElements      = Message{"E4003", "Adjacent JSX elements must be wrapped in an enclosing tag"}
	EmptyJSXAttributeValue   = Message{"E4004", "JSX attributes must only be assigned a non-empty expression"}
)
