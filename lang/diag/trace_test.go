package diag_test

import (
	"testing"

	"github.com/slightknack/passerine/lang/diag"
	"github.com/slightknack/passerine/lang/source"
	"github.com/slightknack/passerine/lang/span"
	"github.com/stretchr/testify/require"
)

func TestTracebackFormatting(t *testing.T) {
	src := source.FromString("incr = x -> x + 1\n" +
		"dub_incr = z -> (incr x) + (incr x)\n" +
		"forever = a -> a = a + (dub_incr a)\n" +
		"forever RandomLabel\n")

	tr := diag.NewTrace("Type", "Can't add Label to Label", []span.Span{
		span.New(src, 12, 5),
		span.New(src, 34, 8),
		span.New(src, 77, 12),
		span.New(src, 90, 19),
	})

	expected := "Traceback, most recent call last:\n" +
		"In ./source:4:1\n" +
		"   |\n" +
		" 4 | forever RandomLabel\n" +
		"   | ^^^^^^^^^^^^^^^^^^^\n" +
		"   |\n" +
		"In ./source:3:24\n" +
		"   |\n" +
		" 3 | forever = a -> a = a + (dub_incr a)\n" +
		"   |                        ^^^^^^^^^^^^\n" +
		"   |\n" +
		"In ./source:2:17\n" +
		"   |\n" +
		" 2 | dub_incr = z -> (incr x) + (incr x)\n" +
		"   |                 ^^^^^^^^\n" +
		"   |\n" +
		"In ./source:1:13\n" +
		"   |\n" +
		" 1 | incr = x -> x + 1\n" +
		"   |             ^^^^^\n" +
		"   |\n" +
		"Runtime Type Error: Can't add Label to Label"

	require.Equal(t, expected, tr.Error())
}

func TestPushSpanGrows(t *testing.T) {
	tr := diag.NewTrace("Arity", "wrong number of args", nil)
	require.Empty(t, tr.Spans)

	src := source.FromString("f x y")
	tr.PushSpan(span.New(src, 0, 1))
	require.Len(t, tr.Spans, 1)
}
