// Package diag defines the two diagnostic carrier types produced by this
// core: Syntax for static (compile-time) errors and Trace for runtime
// errors with an unwinding span stack.
package diag

import (
	"fmt"

	"github.com/slightknack/passerine/lang/span"
)

// Syntax represents a static error (syntax, semantics, malformed macro,
// etc.) found before the program runs.
type Syntax struct {
	Message string
	Span    span.Span
}

var _ error = Syntax{}

// NewSyntax creates a static error.
func NewSyntax(message string, sp span.Span) Syntax {
	return Syntax{Message: message, Span: sp}
}

// Error implements the error interface. If the span is empty, the source
// excerpt is omitted.
func (s Syntax) Error() string {
	return s.Span.Excerpt() + fmt.Sprintf("Syntax Error: %s", s.Message)
}
