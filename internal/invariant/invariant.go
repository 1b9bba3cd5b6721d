// Package invariant provides assertions for the parser's internal consistency.
//
// A failed assertion indicates a bug in the parser, never bad input, so every
// function here panics. The parser recovers only its own syntax bailouts and
// lets these propagate.
package invariant

import (
	"fmt"
	"runtime"
)

// Violation is the panic value raised by a failed assertion.
type Violation struct {
	Kind    string // "PRECONDITION" or "INVARIANT"
	Message string
	File    string
	Line    int
}

func (v *Violation) Error() string {
	msg := fmt.Sprintf("ASSERT: %s VIOLATION: %s", v.Kind, v.Message)
	if v.File != "" {
		msg += fmt.Sprintf("\n  at %s:%d", v.File, v.Line)
	}
	return msg
}

// Precondition checks an input contract at function entry.
func Precondition(condition bool, format string, args ...any) {
	if !condition {
		fail("PRECONDITION", format, args...)
	}
}

// Invariant checks internal state during function execution.
//
//	prev := p.index
//	p.skipComment()
//	invariant.Invariant(p.index >= prev, "scanner must not move backwards")
func Invariant(condition bool, format string, args ...any) {
	if !condition {
		fail("INVARIANT", format, args...)
	}
}

func fail(kind, format string, args ...any) {
	v := &Violation{Kind: kind, Message: fmt.Sprintf(format, args...)}
	// Skip runtime.Caller, fail and the exported wrapper.
	if _, file, line, ok := runtime.Caller(2); ok {
		v.File, v.Line = file, line
	}
	panic(v)
}
