// Package source holds the text a Span refers to, and the line/column and
// excerpt rendering used by diagnostics.
package source

import "strings"

// Source is a named chunk of source text. Name is typically a file path, or
// "./source" for in-memory/test sources, matching the original
// implementation's convention.
type Source struct {
	Name string
	Text string

	// lineStarts[i] is the byte offset of the first byte of line i (0-based).
	lineStarts []int
}

// New wraps text under name.
func New(name, text string) *Source {
	s := &Source{Name: name, Text: text}
	s.lineStarts = []int{0}
	for i, b := range []byte(text) {
		if b == '\n' {
			s.lineStarts = append(s.lineStarts, i+1)
		}
	}
	return s
}

// FromString wraps text under the conventional "./source" name used for
// in-memory sources (e.g. produced by the REPL or by tests).
func FromString(text string) *Source {
	return New("./source", text)
}

// Slice returns the text in [start, end), clamped to the source bounds.
func (s *Source) Slice(start, end int) string {
	if s == nil {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if end > len(s.Text) {
		end = len(s.Text)
	}
	if start >= end {
		return ""
	}
	return s.Text[start:end]
}

// LineCol converts a byte offset into a 1-based (line, column) pair.
func (s *Source) LineCol(offset int) (line, col int) {
	// binary search for the last lineStarts[i] <= offset
	lo, hi := 0, len(s.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if s.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	line = lo + 1
	col = offset - s.lineStarts[lo] + 1
	return line, col
}

// Line returns the full text of the given 1-based line number, without the
// trailing newline.
func (s *Source) Line(line int) string {
	if line < 1 || line > len(s.lineStarts) {
		return ""
	}
	start := s.lineStarts[line-1]
	end := len(s.Text)
	if line < len(s.lineStarts) {
		end = s.lineStarts[line] - 1
	}
	return strings.TrimRight(s.Text[start:min(end, len(s.Text))], "\r\n")
}
