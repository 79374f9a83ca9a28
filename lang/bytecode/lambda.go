package bytecode

import (
	"github.com/slightknack/passerine/lang/ast"
	"github.com/slightknack/passerine/lang/ffi"
	"github.com/slightknack/passerine/lang/span"
)

// Captured names where a closure's upvalue cell lives: a slot promoted to
// the heap in the enclosing frame (Local), or a cell already promoted and
// shared via the enclosing function's own captures (Nonlocal). Both index
// kinds refer to positions of values the compiler must ensure are already
// heap-allocated.
type Captured interface {
	capturedNode()
	String() string
}

// Local names a local slot of the enclosing frame that must already have
// been promoted to the heap via a prior Capture opcode.
type Local struct{ Index int }

// Nonlocal names an entry in the enclosing function's own captures, i.e. a
// cell already promoted and shared rather than promoted here.
type Nonlocal struct{ Index int }

func (Local) capturedNode()    {}
func (Nonlocal) capturedNode() {}

func (c Local) String() string    { return "Local" }
func (c Nonlocal) String() string { return "Nonlocal"
}

// spanEntry pairs a bytecode-stream offset with the span most recently
// associated with it via emit_span; spans is kept non-decreasing in offset.
type spanEntry struct {
	offset int
	span   span.Span
}

// Lambda is a compiled chunk: a linear bytecode stream together with the
// constant pool, span index, capture list, and FFI table it references by
// index. It owns all five sequences outright.
type Lambda struct {
	Decls     int
	Code      []byte
	spans     []spanEntry
	constants []ast.Data
	Captures  []Captured
	FFI       []ffi.Function
}

// Empty returns a fresh Lambda with every sequence empty and Decls zero.
func Empty() *Lambda {
	return &Lambda{}
}

// Emit appends a single opcode byte.
func (l *Lambda) Emit(op Opcode) {
	l.Code = append(l.Code, byte(op))
}

// EmitBytes appends an operand payload, typically produced by the number
// codec.
func (l *Lambda) EmitBytes(buf []byte) {
	l.Code = append(l.Code, buf...)
}

// EmitSpan records the current length of Code as the offset of the next
// instruction to be emitted, associated with sp. It must be called before
// the Emit of the opcode whose source location is sp.
func (l *Lambda) EmitSpan(sp span.Span) {
	l.spans = append(l.spans, spanEntry{offset: len(l.Code), span: sp})
}

// Demit pops the last byte of Code, retracting a speculative emission.
// Entries in spans that now point past the end of Code are left in place;
// index_span tolerates and ignores them.
func (l *Lambda) Demit() {
	if len(l.Code) == 0 {
		return
	}
	l.Code = l.Code[:len(l.Code)-1]
}

// IndexData returns the index of value in the constant pool, appending it
// if no structurally equal value is already present. A value's index is
// stable for the Lambda's lifetime once assigned.
func (l *Lambda) IndexData(value ast.Data) int {
	for i, c := range l.constants {
		if c.Equal(value) {
			return i
		}
	}
	l.constants = append(l.constants, value)
	return len(l.constants) - 1
}

// Constants returns the deduplicated constant pool built up by IndexData.
func (l *Lambda) Constants() []ast.Data {
	return l.constants
}

// IndexSpan returns the span of the most recent EmitSpan whose recorded
// offset is less than or equal to offset; an empty span if none qualifies.
// Ties resolve to the later (most recently recorded) entry, matching the
// monotonic scan the spec describes.
func (l *Lambda) IndexSpan(offset int) span.Span {
	best := span.Empty()
	for _, e := range l.spans {
		if e.offset <= offset {
			best = e.span
		}
	}
	return best
}

// AddFFI appends handle to the FFI table and returns its new index. No
// deduplication is performed; avoiding duplicate entries is the compiler's
// responsibility.
func (l *Lambda) AddFFI(handle ffi.Function) int {
	l.FFI = append(l.FFI, handle)
	return len(l.FFI) - 1
}
