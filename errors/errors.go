// Package errors defines the syntax errors reported by the parser and the
// formatter used to present them.
package errors

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// SourceLocation represents a position in source code.
type SourceLocation struct {
	Filename string
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Source   string // The line of source code
}

// String returns a formatted string representation of the source location.
func (s SourceLocation) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsZero returns true if the location has not been set.
func (s SourceLocation) IsZero() bool {
	return s.Line == 0 && s.Column == 0
}

// FormattableError is an interface for errors that can be formatted with
// the enhanced error formatter (with colors, source context, etc).
type FormattableError interface {
	Error() string
	ToFormatted() *FormattedError
}

// SyntaxError describes invalid input. Error() renders "Line N: description".
type SyntaxError struct {
	Code        ErrorCode
	Description string // the rendered message
	Index       int    // byte offset of the offending input
	LineNumber  int    // 1-based
	Column      int    // 1-based byte column
	Lexical     bool   // raised by the scanner; the scan position is unusable afterwards
	Filename    string // source label, if any
	LineText    string // text of the offending line
	Hint        string
}

// NewSyntaxError renders msg with args into a new SyntaxError.
func NewSyntaxError(msg Message, index, line, column int, args ...string) *SyntaxError {
	return &SyntaxError{
		Code:        msg.Code,
		Description: msg.Render(args...),
		Index:       index,
		LineNumber:  line,
		Column:      column,
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Line %d: %s", e.LineNumber, e.Description)
}

// Location returns the error position.
func (e *SyntaxError) Location() SourceLocation {
	return SourceLocation{
		Filename: e.Filename,
		Line:     e.LineNumber,
		Column:   e.Column,
		Source:   e.LineText,
	}
}

// MarshalJSON encodes the error the way error lists are reported alongside
// a syntax tree.
func (e *SyntaxError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Index       int    `json:"index"`
		LineNumber  int    `json:"lineNumber"`
		Column      int    `json:"column"`
		Description string `json:"description"`
		Message     string `json:"message"`
		Code        string `json:"code,omitempty"`
	}{e.Index, e.LineNumber, e.Column, e.Description, e.Error(), string(e.Code)})
}

// ToFormatted converts the error for display.
func (e *SyntaxError) ToFormatted() *FormattedError {
	kind := "syntax error"
	if e.Code.Category() == "strict mode" {
		kind = "strict mode error"
	}
	loc := e.Location()
	f := &FormattedError{
		Code:     e.Code,
		Kind:     kind,
		Message:  e.Description,
		Filename: loc.Filename,
		Line:     loc.Line,
		Column:   loc.Column,
		Hint:     e.Hint,
	}
	if !loc.IsZero() {
		f.SourceLines = []SourceLineEntry{{Number: loc.Line, Text: loc.Source, IsMain: true}}
	}
	return f
}

// ErrorList collects the syntax errors of one parse.
type ErrorList []*SyntaxError

// Add appends err to the list.
func (l *ErrorList) Add(err *SyntaxError) {
	*l = append(*l, err)
}

// Len returns the number of errors.
func (l ErrorList) Len() int {
	return len(l)
}

// Err returns nil for an empty list, otherwise a multi-error whose
// message lists every error.
func (l ErrorList) Err() error {
	var result *multierror.Error
	for _, err := range l {
		result = multierror.Append(result, err)
	}
	if result != nil {
		result.ErrorFormat = listFormat
	}
	return result.ErrorOrNil()
}

func listFormat(errs []error) string {
	if len(errs) == 1 {
		return errs[0].Error()
	}
	lines := make([]string, 0, len(errs))
	for _, err := range errs {
		lines = append(lines, err.Error())
	}
	return fmt.Sprintf("%d syntax errors:\n\t%s", len(errs), strings.Join(lines, "\n\t"))
}

// ToFormattedMultiple converts all errors for display.
func (l ErrorList) ToFormattedMultiple() []*FormattedError {
	formatted := make([]*FormattedError, 0, len(l))
	for _, err := range l {
		formatted = append(formatted, err.ToFormatted())
	}
	return formatted
}
