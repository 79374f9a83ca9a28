package bytecode_test

import (
	"testing"

	"github.com/slightknack/passerine/lang/ast"
	"github.com/slightknack/passerine/lang/bytecode"
	"github.com/slightknack/passerine/lang/source"
	"github.com/slightknack/passerine/lang/span"
	"github.com/stretchr/testify/require"
)

func TestIndexDataDedups(t *testing.T) {
	l := bytecode.Empty()

	i0 := l.IndexData(ast.Integer(7))
	i1 := l.IndexData(ast.String("x"))
	i2 := l.IndexData(ast.Integer(7))

	require.Equal(t, []int{0, 1, 0}, []int{i0, i1, i2})
	require.Len(t, l.Constants(), 2)
}

func TestIndexSpanMonotonicScan(t *testing.T) {
	l := bytecode.Empty()
	src := source.FromString("load x\nreturn\n")
	spanA := span.New(src, 0, 6)
	spanB := span.New(src, 7, 6)

	l.EmitSpan(spanA)
	l.Emit(bytecode.Load)
	l.EmitBytes([]byte{0x05})

	l.EmitSpan(spanB)
	l.Emit(bytecode.Return)
	l.EmitBytes([]byte{0x00})

	require.Equal(t, spanA, l.IndexSpan(0))
	require.Equal(t, spanA, l.IndexSpan(1))
	require.Equal(t, spanB, l.IndexSpan(2))
	require.Equal(t, spanB, l.IndexSpan(99))
}

func TestIndexSpanNoEntryIsEmpty(t *testing.T) {
	l := bytecode.Empty()
	require.True(t, l.IndexSpan(0).IsEmpty())
}

func TestDemitRetractsCodeNotSpans(t *testing.T) {
	l := bytecode.Empty()
	src := source.FromString("x")
	l.EmitSpan(span.New(src, 0, 1))
	l.Emit(bytecode.Del)
	require.Len(t, l.Code, 1)

	l.Demit()
	require.Len(t, l.Code, 0)

	// The dangling span entry beyond the new code length is tolerated.
	require.False(t, l.IndexSpan(0).IsEmpty())
}

func TestAddFFINoDedup(t *testing.T) {
	l := bytecode.Empty()
	noop := func(arg ast.Data) (ast.Data, error) { return arg, nil }

	i0 := l.AddFFI(noop)
	i1 := l.AddFFI(noop)

	require.Equal(t, 0, i0)
	require.Equal(t, 1, i1)
	require.Len(t, l.FFI, 2)
}

func TestCapturedVariants(t *testing.T) {
	l := bytecode.Empty()
	l.Captures = append(l.Captures, bytecode.Local{Index: 0}, bytecode.Nonlocal{Index: 1})

	require.Equal(t, "Local", l.Captures[0].String())
	require.Equal(t, "Nonlocal", l.Captures[1].String())
}
