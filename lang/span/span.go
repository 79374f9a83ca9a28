// Package span defines Span, an immutable byte-offset range into a source
// text, and Spanned, a generic value tagged with the Span it came from.
package span

import (
	"fmt"
	"strings"

	"github.com/slightknack/passerine/lang/source"
)

// Span is an immutable range (source, offset, length) into a Source's text,
// used for diagnostics. Equality is structural.
type Span struct {
	Source *source.Source
	Offset int
	Length int
}

// Empty returns the empty Span: no source, zero offset, zero length.
func Empty() Span { return Span{} }

// New creates a Span into src starting at offset, covering length bytes.
func New(src *source.Source, offset, length int) Span {
	return Span{Source: src, Offset: offset, Length: length}
}

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool { return s.Length == 0 }

// End returns the (exclusive) end offset of the span.
func (s Span) End() int { return s.Offset + s.Length }

// Combine returns the smallest span covering both a and b. Both must share
// the same Source, or one must be empty (in which case the other wins).
func Combine(a, b Span) Span {
	if a.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return a
	}
	start := a.Offset
	if b.Offset < start {
		start = b.Offset
	}
	end := a.End()
	if b.End() > end {
		end = b.End()
	}
	return Span{Source: a.Source, Offset: start, Length: end - start}
}

// Text returns the source text this span covers, or "" if the span is empty
// or has no backing Source.
func (s Span) Text() string {
	if s.IsEmpty() || s.Source == nil {
		return ""
	}
	return s.Source.Slice(s.Offset, s.End())
}

// Excerpt renders a source excerpt for diagnostics, in the form:
//
//	In <name>:<line>:<col>
//	   |
//	 1 | <the source line>
//	   |     ^^^^^^^^^^^^^^
//	   |
//
// matching the original implementation's diagnostic rendering. Returns ""
// for an empty span.
func (s Span) Excerpt() string {
	if s.IsEmpty() || s.Source == nil {
		return ""
	}

	line, col := s.Source.LineCol(s.Offset)
	digits := fmt.Sprintf("%d", line)
	contentPrefix := fmt.Sprintf(" %s | ", digits)
	blankPrefix := fmt.Sprintf(" %s | ", strings.Repeat(" ", len(digits)))
	separator := strings.TrimRight(blankPrefix, " ")

	lineText := s.Source.Line(line)
	offsetInLine := col - 1
	caretLen := s.Length
	if offsetInLine+caretLen > len(lineText) {
		caretLen = len(lineText) - offsetInLine
		if caretLen < 0 {
			caretLen = 0
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "In %s:%d:%d\n", s.Source.Name, line, col)
	fmt.Fprintf(&b, "%s\n", separator)
	fmt.Fprintf(&b, "%s%s\n", contentPrefix, lineText)
	fmt.Fprintf(&b, "%s%s%s\n", blankPrefix, strings.Repeat(" ", offsetInLine), strings.Repeat("^", caretLen))
	fmt.Fprintf(&b, "%s\n", separator)
	return b.String()
}

// Spanned pairs a value with the Span it was parsed or produced from.
type Spanned[T any] struct {
	Item T
	Span Span
}

// Make builds a Spanned value.
func Make[T any](item T, sp Span) Spanned[T] {
	return Spanned[T]{Item: item, Span: sp}
}

// Build returns the Span covering every element's Span, in order. Returns
// Empty() for an empty slice.
func Build[T any](items []Spanned[T]) Span {
	sp := Empty()
	for _, it := range items {
		sp = Combine(sp, it.Span)
	}
	return sp
}
