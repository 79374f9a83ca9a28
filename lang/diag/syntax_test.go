package diag_test

import (
	"testing"

	"github.com/slightknack/passerine/lang/diag"
	"github.com/slightknack/passerine/lang/source"
	"github.com/slightknack/passerine/lang/span"
	"github.com/stretchr/testify/require"
)

func TestSyntaxError(t *testing.T) {
	src := source.FromString(`x = "Hello, world" -> y + 1`)
	err := diag.NewSyntax(`Unexpected token '"Hello, world!"'`, span.New(src, 4, 14))

	want := "In ./source:1:5\n" +
		"   |\n" +
		" 1 | x = \"Hello, world\" -> y + 1\n" +
		"   |     ^^^^^^^^^^^^^^\n" +
		"   |\n" +
		"Syntax Error: Unexpected token '\"Hello, world!\"'"

	require.Equal(t, want, err.Error())
}

func TestSyntaxErrorEmptySpan(t *testing.T) {
	err := diag.NewSyntax("oops", span.Empty())
	require.Equal(t, "Syntax Error: oops", err.Error())
}
