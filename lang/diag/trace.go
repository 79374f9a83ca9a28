package diag

import (
	"strings"

	"github.com/slightknack/passerine/lang/span"
)

// Trace represents a runtime error, i.e. a traceback. Spans are appended via
// PushSpan as the (external) VM unwinds the call stack; the most recent
// call — the frame where the error actually occurred — is pushed first and
// is displayed last, immediately above the error message, matching a
// Python-style traceback.
type Trace struct {
	Kind    string
	Message string
	Spans   []span.Span
}

var _ error = (*Trace)(nil)

// NewTrace creates a new runtime traceback.
func NewTrace(kind, message string, spans []span.Span) *Trace {
	return &Trace{Kind: kind, Message: message, Spans: spans}
}

// PushSpan adds context (e.g. a call site) while unwinding the stack.
func (t *Trace) PushSpan(sp span.Span) {
	t.Spans = append(t.Spans, sp)
}

// Error implements the error interface.
func (t *Trace) Error() string {
	var b strings.Builder
	b.WriteString("Traceback, most recent call last:\n")
	for i := len(t.Spans) - 1; i >= 0; i-- {
		b.WriteString(t.Spans[i].Excerpt())
	}
	b.WriteString("Runtime ")
	b.WriteString(t.Kind)
	b.WriteString(" Error: ")
	b.WriteString(t.Message)
	return b.String()
}
