package textasm_test

import (
	"testing"

	"github.com/slightknack/passerine/lang/ast"
	"github.com/slightknack/passerine/lang/driver/textasm"
	"github.com/slightknack/passerine/lang/expander"
	"github.com/slightknack/passerine/lang/source"
	"github.com/stretchr/testify/require"
)

func TestParseSingleTokenLineCollapses(t *testing.T) {
	src := source.FromString("x\n")
	root, err := textasm.Parse(src)
	require.NoError(t, err)

	block := root.Item.(ast.Block)
	require.Len(t, block.Forms, 1)
	require.Equal(t, ast.Symbol{Name: "x"}, block.Forms[0].Item)
}

func TestParseMultiTokenLineIsForm(t *testing.T) {
	src := source.FromString("x then y else z\n")
	root, err := textasm.Parse(src)
	require.NoError(t, err)

	block := root.Item.(ast.Block)
	require.Len(t, block.Forms, 1)
	form := block.Forms[0].Item.(ast.Form)
	require.Len(t, form.Branches, 5)
	require.Equal(t, ast.Symbol{Name: "then"}, form.Branches[1].Item)
}

func TestParseLiterals(t *testing.T) {
	src := source.FromString(`42
3.5
"hi"
true
()
`)
	root, err := textasm.Parse(src)
	require.NoError(t, err)

	block := root.Item.(ast.Block)
	require.Equal(t, ast.DataNode{Value: ast.Integer(42)}, block.Forms[0].Item)
	require.Equal(t, ast.DataNode{Value: ast.Float(3.5)}, block.Forms[1].Item)
	require.Equal(t, ast.DataNode{Value: ast.String("hi")}, block.Forms[2].Item)
	require.Equal(t, ast.DataNode{Value: ast.Boolean(true)}, block.Forms[3].Item)
	require.Equal(t, ast.DataNode{Value: ast.Unit{}}, block.Forms[4].Item)
}

func TestParseIgnoresCommentsAndBlankLines(t *testing.T) {
	src := source.FromString("# a comment\n\nx # trailing\n")
	root, err := textasm.Parse(src)
	require.NoError(t, err)

	block := root.Item.(ast.Block)
	require.Len(t, block.Forms, 1)
	require.Equal(t, ast.Symbol{Name: "x"}, block.Forms[0].Item)
}

func TestParseTokenSpansPointIntoSource(t *testing.T) {
	src := source.FromString("hello world\n")
	root, err := textasm.Parse(src)
	require.NoError(t, err)

	block := root.Item.(ast.Block)
	form := block.Forms[0].Item.(ast.Form)
	require.Equal(t, "hello", form.Branches[0].Span.Text())
	require.Equal(t, "world", form.Branches[1].Span.Text())
}

func TestParseRuleSectionProducesSyntaxNode(t *testing.T) {
	src := source.FromString("rule:\n    pattern:\n        cond !then a !else b\n    body:\n        a\n")
	root, err := textasm.Parse(src)
	require.NoError(t, err)

	block := root.Item.(ast.Block)
	require.Len(t, block.Forms, 1)

	syn := block.Forms[0].Item.(ast.SyntaxNode)
	argPat := syn.ArgPat.Item.(ast.ArgGroup)
	require.Len(t, argPat.Items, 5)
	require.Equal(t, ast.Keyword{Name: "then"}, argPat.Items[1].Item)
	require.Equal(t, ast.Keyword{Name: "else"}, argPat.Items[3].Item)
	require.Equal(t, ast.Symbol{Name: "a"}, syn.Expression.Item)
}

func TestParseInvocationSectionIsPlainForms(t *testing.T) {
	src := source.FromString("invocation:\n    x then y else z\n")
	root, err := textasm.Parse(src)
	require.NoError(t, err)

	block := root.Item.(ast.Block)
	require.Len(t, block.Forms, 1)
	form := block.Forms[0].Item.(ast.Form)
	require.Len(t, form.Branches, 5)
}

func TestParseRuleAndInvocationExpandEndToEnd(t *testing.T) {
	src := source.FromString(
		"rule:\n" +
			"    pattern:\n" +
			"        cond !then a !else b\n" +
			"    body:\n" +
			"        a\n" +
			"invocation:\n" +
			"    x then y else z\n",
	)
	root, err := textasm.Parse(src)
	require.NoError(t, err)

	expanded, err := expander.ExpandProgram(root, expander.NewBindings())
	require.NoError(t, err)

	block := expanded.Item.(ast.Block)
	require.Len(t, block.Forms, 1, "the rule: declaration is elided, only the invocation's expansion remains")
	require.Equal(t, ast.Symbol{Name: "y"}, block.Forms[0].Item)
}
