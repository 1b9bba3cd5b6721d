package errors

import (
	"encoding/json"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/deepnoodle-ai/esparse/internal/invariant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceLocation_String(t *testing.T) {
	tests := []struct {
		name     string
		loc      SourceLocation
		expected string
	}{
		{"with filename", SourceLocation{Filename: "app.js", Line: 10, Column: 5}, "app.js:10:5"},
		{"without filename", SourceLocation{Line: 10, Column: 5}, "10:5"},
		{"zero location", SourceLocation{}, "0:0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.loc.String())
		})
	}
	assert.True(t, SourceLocation{Filename: "app.js"}.IsZero())
	assert.False(t, SourceLocation{Line: 1}.IsZero())
}

func TestMessageRender(t *testing.T) {
	assert.Equal(t, "Unexpected token ;", UnexpectedToken.Render(";"))
	assert.Equal(t, "Label 'a' has already been declared", Redeclaration.Render("Label", "a"))
	assert.Equal(t, "Unexpected end of input", UnexpectedEOS.Render())
	assert.Equal(t, "E1007: Unexpected end of input", UnexpectedEOS.String())
}

func TestMessageRenderMissingArgument(t *testing.T) {
	defer func() {
		_, ok := recover().(*invariant.Violation)
		assert.True(t, ok)
	}()
	UnknownLabel.Render()
}

func TestErrorCode_Category(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		category string
	}{
		{UnexpectedToken.Code, "lexical"},
		{IllegalBreak.Code, "grammar"},
		{StrictModeWith.Code, "strict mode"},
		{AdjacentJSXElements.Code, "markup"},
		{"E9001", "unknown"},
		{"", "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.category, tt.code.Category(), tt.code)
	}
}

func TestMessageCodesAreUnique(t *testing.T) {
	all := []Message{
		UnexpectedToken, UnexpectedNumber, UnexpectedString, UnexpectedIdent,
		UnexpectedReserved, UnexpectedTemplate, UnexpectedEOS, InvalidRegExp,
		InvalidRegExpFlag, UnterminatedRegExp, NewlineAfterThrow,
		InvalidLHSInAssignment, InvalidLHSInFormalsList, InvalidLHSInForIn,
		MultipleDefaultsInSwitch, NoCatchOrFinally, NoUninitializedConst,
		UnknownLabel, Redeclaration, IllegalContinue, IllegalBreak, IllegalReturn,
		IllegalYield, IllegalSpread, ParameterAfterRestParameter,
		DefaultRestParameter, ElementAfterSpreadElement,
		ObjectPatternAsRestParameter, ObjectPatternAsSpread,
		DuplicatePrototypeProperty, AccessorDataProperty, AccessorGetSet,
		MaxDepthExceeded, StrictModeWith, StrictCatchVariable, StrictVarName,
		StrictParamName, StrictParamDupe, StrictFunctionName, StrictOctalLiteral,
		StrictDelete, StrictDuplicateProperty, StrictLHSAssignment,
		StrictLHSPostfix, StrictLHSPrefix, StrictReservedWord,
		InvalidJSXAttributeValue, ExpectedJSXClosingTag, AdjacentJSXElements,
		EmptyJSXAttributeValue,
	}
	seen := map[ErrorCode]string{}
	for _, m := range all {
		prev, dup := seen[m.Code]
		assert.False(t, dup, "%s used by %q and %q", m.Code, prev, m.Format)
		seen[m.Code] = m.Format
	}
}

func TestSyntaxError(t *testing.T) {
	err := NewSyntaxError(UnknownLabel, 12, 2, 7, "outer")
	assert.Equal(t, "Line 2: Undefined label 'outer'", err.Error())
	assert.Equal(t, ErrorCode("E2008"), err.Code)
	assert.Equal(t, 12, err.Index)
	assert.Equal(t, 7, err.Column)

	err.Filename = "app.js"
	err.LineText = "  break outer;"
	assert.Equal(t, "app.js:2:7", err.Location().String())
}

func TestSyntaxErrorJSON(t *testing.T) {
	err := NewSyntaxError(UnexpectedToken, 4, 1, 5, "1")
	data, jerr := json.Marshal(err)
	require.NoError(t, jerr)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, float64(4), out["index"])
	assert.Equal(t, float64(1), out["lineNumber"])
	assert.Equal(t, float64(5), out["column"])
	assert.Equal(t, "Unexpected token 1", out["description"])
	assert.Equal(t, "Line 1: Unexpected token 1", out["message"])
	assert.Equal(t, "E1001", out["code"])
}

func TestSyntaxErrorFriendly(t *testing.T) {
	err := NewSyntaxError(UnknownLabel, 18, 1, 19, "lop")
	err.LineText = "while (x) { break lop; }"
	err.Hint = FormatSuggestions([]string{"loop"})

	msg := NewFormatter(false).Format(err.ToFormatted())
	assert.Contains(t, msg, "syntax error[E2008]: Undefined label 'lop'")
	assert.Contains(t, msg, "--> 1:19")
	assert.Contains(t, msg, " 1 | while (x) { break lop; }")
	assert.Contains(t, msg, "\n   |                   ^\n")
	assert.Contains(t, msg, "hint: did you mean 'loop'?")

	strict := NewSyntaxError(StrictModeWith, 0, 1, 1)
	assert.Equal(t, "strict mode error", strict.ToFormatted().Kind)
}

func TestSyntaxErrorToFormatted(t *testing.T) {
	err := NewSyntaxError(UnexpectedIdent, 9, 1, 10)
	err.Filename = "app.js"
	err.LineText = "fucntion f() {}"
	err.Hint = "did you mean 'function'?"

	f := err.ToFormatted()
	assert.Equal(t, "app.js", f.Filename)
	assert.Equal(t, 1, f.Line)
	assert.Equal(t, 10, f.Column)
	assert.Equal(t, "did you mean 'function'?", f.Hint)
	require.Len(t, f.SourceLines, 1)
	assert.Equal(t, SourceLineEntry{Number: 1, Text: "fucntion f() {}", IsMain: true}, f.SourceLines[0])

	var _ FormattableError = err
	unplaced := &SyntaxError{Description: "Unexpected end of input"}
	assert.Empty(t, unplaced.ToFormatted().SourceLines)
}

func TestErrorList(t *testing.T) {
	var list ErrorList
	assert.NoError(t, list.Err())
	assert.Equal(t, 0, list.Len())

	list.Add(NewSyntaxError(UnexpectedNumber, 4, 1, 5))
	assert.Equal(t, "Line 1: Unexpected number", list.Err().Error())

	list.Add(NewSyntaxError(UnexpectedNumber, 11, 1, 12))
	err := list.Err()
	require.Error(t, err)
	assert.Equal(t, "2 syntax errors:\n\tLine 1: Unexpected number\n\tLine 1: Unexpected number", err.Error())

	var syntaxErr *SyntaxError
	require.True(t, stderrors.As(err, &syntaxErr))
	assert.Equal(t, 4, syntaxErr.Index)

	friendly := NewFormatter(false).FormatMultiple(list.ToFormattedMultiple())
	assert.Contains(t, friendly, "[1/2 E1002]")
	assert.Contains(t, friendly, "found 2 syntax errors")
}

func TestSuggestSimilar(t *testing.T) {
	tests := []struct {
		target     string
		candidates []string
		expected   []string
	}{
		{"lop", []string{"loop", "outer"}, []string{"loop"}},
		{"outr", []string{"outer", "inner", "other"}, []string{"outer"}},
		{"x", []string{"y", "xy", "abc"}, []string{"xy", "y"}},
		{"same", []string{"same"}, []string{}},
		{"", []string{"a"}, nil},
		{"label", nil, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			got := SuggestSimilar(tt.target, tt.candidates)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSuggestSimilar_MaxSuggestions(t *testing.T) {
	got := SuggestSimilar("abcde", []string{"abcdf", "abcdg", "abcdh", "abcdi"})
	assert.Len(t, got, MaxSuggestions)
}

func TestFormatSuggestions(t *testing.T) {
	assert.Equal(t, "", FormatSuggestions(nil))
	assert.Equal(t, "did you mean 'a'?", FormatSuggestions([]string{"a"}))
	assert.Equal(t, "did you mean one of: 'a', 'b'?", FormatSuggestions([]string{"a", "b"}))
}

func TestEditDistance(t *testing.T) {
	assert.Equal(t, 0, editDistance("loop", "loop"))
	assert.Equal(t, 1, editDistance("lop", "loop"))
	assert.Equal(t, 3, editDistance("", "abc"))
	assert.Equal(t, 3, editDistance("kitten", "sitting"))
	assert.Equal(t, 1, editDistance("Loop", "loop"))
}

func TestFormatter_Format(t *testing.T) {
	f := NewFormatter(false)
	err := &FormattedError{
		Code:     "E2011",
		Kind:     "syntax error",
		Message:  "Illegal break statement",
		Filename: "app.js",
		Line:     10,
		Column:   5,
		SourceLines: []SourceLineEntry{
			{Number: 10, Text: "    break;", IsMain: true},
		},
	}
	result := f.Format(err)
	assert.Contains(t, result, "syntax error[E2011]: Illegal break statement")
	assert.Contains(t, result, "app.js:10:5")
	assert.Contains(t, result, "10 |     break;")
	assert.Contains(t, result, "^")
}

func TestFormatter_FormatWithNote(t *testing.T) {
	result := NewFormatter(false).Format(&FormattedError{
		Message: "Octal literals are not allowed in strict mode.",
		Line:    1,
		Column:  1,
		Note:    "the function body starts with \"use strict\"",
	})
	assert.Contains(t, result, "note: the function body")
	assert.True(t, strings.HasPrefix(result, "error: "))
}

func TestFormatter_FormatNoLocation(t *testing.T) {
	result := NewFormatter(false).Format(&FormattedError{Kind: "error", Message: "something went wrong"})
	assert.Contains(t, result, "something went wrong")
	assert.False(t, strings.Contains(result, "-->"))
}

func TestFormatter_FormatMultiple(t *testing.T) {
	f := NewFormatter(false)
	assert.Equal(t, "", f.FormatMultiple(nil))

	single := f.FormatMultiple([]*FormattedError{{Kind: "error", Message: "test"}})
	assert.False(t, strings.Contains(single, "[1/1]"))

	multiple := f.FormatMultiple([]*FormattedError{
		{Kind: "error", Message: "first error"},
		{Kind: "error", Message: "second error"},
	})
	assert.Contains(t, multiple, "[1/2]")
	assert.Contains(t, multiple, "[2/2]")
	assert.Contains(t, multiple, "found 2 syntax errors")
}

func TestFormatter_FormatWithColor(t *testing.T) {
	plain := NewFormatter(false).Format(&FormattedError{Message: "boom", Line: 1, Column: 1})
	colored := NewFormatter(true).Format(&FormattedError{Message: "boom", Line: 1, Column: 1})
	assert.NotContains(t, plain, "\x1b[")
	assert.Contains(t, colored, "\x1b[")
}

func TestFormatter_FormatMultiCharUnderline(t *testing.T) {
	result := NewFormatter(false).Format(&FormattedError{
		Message:   "Unexpected identifier",
		Line:      5,
		Column:    5,
		EndColumn: 9,
		SourceLines: []SourceLineEntry{
			{Number: 5, Text: "var hello world", IsMain: true},
		},
	})
	assert.Contains(t, result, "^^^^^")
}

func TestFormatter_FormatLargeLineNumber(t *testing.T) {
	result := NewFormatter(false).Format(&FormattedError{
		Message:     "test",
		Line:        1000,
		Column:      5,
		SourceLines: []SourceLineEntry{{Number: 1000, Text: "some code", IsMain: true}},
	})
	assert.Contains(t, result, "1000 | some code")
}
