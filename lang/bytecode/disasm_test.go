package bytecode_test

import (
	"testing"

	"github.com/slightknack/passerine/lang/ast"
	"github.com/slightknack/passerine/lang/bytecode"
	"github.com/slightknack/passerine/lang/numcodec"
	"github.com/stretchr/testify/require"
)

func TestDisassembleDecodesOperandsAndShowsConstant(t *testing.T) {
	l := bytecode.Empty()
	l.Decls = 1

	idx := l.IndexData(ast.Integer(42))
	l.Emit(bytecode.Con)
	l.EmitBytes(numcodec.SplitNumber(uint64(idx)))
	l.Emit(bytecode.Save)
	l.EmitBytes(numcodec.SplitNumber(0))
	l.Emit(bytecode.Del)

	out := bytecode.Disassemble(l)

	require.Contains(t, out, "== constants (1) ==")
	require.Contains(t, out, "42")
	require.Contains(t, out, "== decls 1 ==")
	require.Contains(t, out, "Con")
	require.Contains(t, out, "Save")
	require.Contains(t, out, "Del")
	require.Contains(t, out, "(42)")
}

func TestDisassembleUnrecognizedByte(t *testing.T) {
	l := bytecode.Empty()
	l.Code = append(l.Code, 0xff)

	out := bytecode.Disassemble(l)
	require.Contains(t, out, "unrecognized byte")
}
