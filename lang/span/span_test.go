package span_test

import (
	"testing"

	"github.com/slightknack/passerine/lang/source"
	"github.com/slightknack/passerine/lang/span"
	"github.com/stretchr/testify/require"
)

func TestEmptySpan(t *testing.T) {
	s := span.Empty()
	require.True(t, s.IsEmpty())
	require.Equal(t, "", s.Excerpt())
	require.Equal(t, "", s.Text())
}

func TestCombine(t *testing.T) {
	src := source.FromString("abcdefgh")
	a := span.New(src, 2, 3) // "cde"
	b := span.New(src, 5, 2) // "fg"

	c := span.Combine(a, b)
	require.Equal(t, 2, c.Offset)
	require.Equal(t, 5, c.Length)
	require.Equal(t, "cdefg", c.Text())

	require.Equal(t, a, span.Combine(span.Empty(), a))
	require.Equal(t, a, span.Combine(a, span.Empty()))
}

func TestBuild(t *testing.T) {
	src := source.FromString("abcdefgh")
	items := []span.Spanned[string]{
		span.Make("cd", span.New(src, 2, 2)),
		span.Make("fg", span.New(src, 5, 2)),
	}
	built := span.Build(items)
	require.Equal(t, 2, built.Offset)
	require.Equal(t, 5, built.Length)

	require.True(t, span.Build[string](nil).IsEmpty())
}

func TestStructuralEquality(t *testing.T) {
	src := source.FromString("abcdefgh")
	require.Equal(t, span.New(src, 1, 2), span.New(src, 1, 2))
	require.NotEqual(t, span.New(src, 1, 2), span.New(src, 1, 3))
}
