package expander

import (
	"github.com/slightknack/passerine/lang/ast"
	"github.com/slightknack/passerine/lang/diag"
	"github.com/slightknack/passerine/lang/span"
)

// Expand structurally rewrites tree, resolving every symbol through
// bindings (minting a fresh hygiene tag for names not already bound) and
// recursing into every child. The first error encountered aborts the whole
// call; there is no partial recovery.
func Expand(tree span.Spanned[ast.AST], bindings Bindings) (span.Spanned[ast.AST], error) {
	switch node := tree.Item.(type) {
	case ast.Symbol:
		return ResolveSymbol(node.Name, tree.Span, bindings), nil

	case ast.DataNode:
		return tree, nil

	case ast.Block:
		forms, err := expandAll(node.Forms, bindings)
		if err != nil {
			return span.Spanned[ast.AST]{}, err
		}
		return span.Make[ast.AST](ast.Block{Forms: forms}, tree.Span), nil

	case ast.Form:
		branches, err := expandAll(node.Branches, bindings)
		if err != nil {
			return span.Spanned[ast.AST]{}, err
		}
		return span.Make[ast.AST](ast.Form{Branches: branches}, tree.Span), nil

	case ast.Tuple:
		items, err := expandAll(node.Items, bindings)
		if err != nil {
			return span.Spanned[ast.AST]{}, err
		}
		return span.Make[ast.AST](ast.Tuple{Items: items}, tree.Span), nil

	case ast.Group:
		inner, err := Expand(node.Expression, bindings)
		if err != nil {
			return span.Spanned[ast.AST]{}, err
		}
		return span.Make[ast.AST](ast.Group{Expression: inner}, tree.Span), nil

	case ast.Composition:
		argument, err := Expand(node.Argument, bindings)
		if err != nil {
			return span.Spanned[ast.AST]{}, err
		}
		function, err := Expand(node.Function, bindings)
		if err != nil {
			return span.Spanned[ast.AST]{}, err
		}
		return span.Make[ast.AST](ast.Composition{Argument: argument, Function: function}, tree.Span), nil

	case ast.CSTPatternNode:
		pat, err := ExpandPattern(node.Pattern, tree.Span, bindings)
		if err != nil {
			return span.Spanned[ast.AST]{}, err
		}
		return span.Make[ast.AST](ast.CSTPatternNode{Pattern: pat}, tree.Span), nil

	case ast.ArgPatternNode:
		pat, err := ExpandArgPat(node.Pattern, tree.Span, bindings)
		if err != nil {
			return span.Spanned[ast.AST]{}, err
		}
		return span.Make[ast.AST](ast.ArgPatternNode{Pattern: pat}, tree.Span), nil

	case ast.Assign:
		pat, err := expandSpannedPattern(node.Pattern, bindings)
		if err != nil {
			return span.Spanned[ast.AST]{}, err
		}
		expr, err := Expand(node.Expression, bindings)
		if err != nil {
			return span.Spanned[ast.AST]{}, err
		}
		return span.Make[ast.AST](ast.Assign{Pattern: pat, Expression: expr}, tree.Span), nil

	case ast.LambdaExpr:
		pat, err := expandSpannedPattern(node.Pattern, bindings)
		if err != nil {
			return span.Spanned[ast.AST]{}, err
		}
		expr, err := Expand(node.Expression, bindings)
		if err != nil {
			return span.Spanned[ast.AST]{}, err
		}
		return span.Make[ast.AST](ast.LambdaExpr{Pattern: pat, Expression: expr}, tree.Span), nil

	case ast.Label:
		// The label's own kind name is not currently bindable (open
		// question, see DESIGN.md); only its payload expression expands.
		expr, err := Expand(node.Expression, bindings)
		if err != nil {
			return span.Spanned[ast.AST]{}, err
		}
		return span.Make[ast.AST](ast.Label{Kind: node.Kind, Expression: expr}, tree.Span), nil

	case ast.SyntaxNode:
		return span.Spanned[ast.AST]{}, diag.NewSyntax("Nested macros are not allowed yet.", tree.Span)

	case ast.FFINode:
		expr, err := Expand(node.Expression, bindings)
		if err != nil {
			return span.Spanned[ast.AST]{}, err
		}
		return span.Make[ast.AST](ast.FFINode{Name: node.Name, Expression: expr}, tree.Span), nil

	default:
		return span.Spanned[ast.AST]{}, diag.NewSyntax("unrecognized AST node during expansion", tree.Span)
	}
}

func expandAll(items []span.Spanned[ast.AST], bindings Bindings) ([]span.Spanned[ast.AST], error) {
	out := make([]span.Spanned[ast.AST], len(items))
	for i, item := range items {
		expanded, err := Expand(item, bindings)
		if err != nil {
			return nil, err
		}
		out[i] = expanded
	}
	return out, nil
}

func expandSpannedPattern(pat span.Spanned[ast.ASTPattern], bindings Bindings) (span.Spanned[ast.ASTPattern], error) {
	item, err := ExpandPattern(pat.Item, pat.Span, bindings)
	if err != nil {
		return span.Spanned[ast.ASTPattern]{}, err
	}
	return span.Make(item, pat.Span), nil
}

// ExpandPattern mirrors Expand's structure over ASTPattern. A Symbol calls
// ResolveSymbol and re-views the resolved AST as a pattern (a Symbol
// becomes a PatternSymbol); a resolved AST that isn't pattern-viewable,
// such as a non-Symbol node a name was bound to, is a static error.
func ExpandPattern(pat ast.ASTPattern, sp span.Span, bindings Bindings) (ast.ASTPattern, error) {
	switch p := pat.(type) {
	case ast.PatternSymbol:
		resolved := ResolveSymbol(p.Name, sp, bindings)
		viewed, err := ast.AsASTPattern(resolved.Item)
		if err != nil {
			return nil, diag.NewSyntax(err.Error(), resolved.Span)
		}
		return viewed, nil

	case ast.PatternData:
		return p, nil

	case ast.PatternLabel:
		inner, err := expandSpannedPattern(p.Pattern, bindings)
		if err != nil {
			return nil, err
		}
		return ast.PatternLabel{Kind: p.Kind, Pattern: inner}, nil

	case ast.PatternChain:
		items, err := expandPatternList(p.Items, bindings)
		if err != nil {
			return nil, err
		}
		return ast.PatternChain{Items: items}, nil

	case ast.PatternTuple:
		items, err := expandPatternList(p.Items, bindings)
		if err != nil {
			return nil, err
		}
		return ast.PatternTuple{Items: items}, nil

	default:
		return nil, diag.NewSyntax("unrecognized AST pattern during expansion", sp)
	}
}

func expandPatternList(items []span.Spanned[ast.ASTPattern], bindings Bindings) ([]span.Spanned[ast.ASTPattern], error) {
	out := make([]span.Spanned[ast.ASTPattern], len(items))
	for i, item := range items {
		expanded, err := expandSpannedPattern(item, bindings)
		if err != nil {
			return nil, err
		}
		out[i] = expanded
	}
	return out, nil
}

// ExpandArgPat mirrors Expand's structure over ArgPattern. Keyword is
// preserved verbatim — keywords are not hygienically renamed — Symbol is
// resolved, and Group recurses.
func ExpandArgPat(pat ast.ArgPattern, sp span.Span, bindings Bindings) (ast.ArgPattern, error) {
	switch p := pat.(type) {
	case ast.Keyword:
		return p, nil

	case ast.ArgSymbol:
		resolved := ResolveSymbol(p.Name, sp, bindings)
		viewed, err := ast.AsArgPattern(resolved.Item)
		if err != nil {
			return nil, diag.NewSyntax(err.Error(), resolved.Span)
		}
		return viewed, nil

	case ast.ArgGroup:
		out := make([]span.Spanned[ast.ArgPattern], len(p.Items))
		for i, item := range p.Items {
			expanded, err := ExpandArgPat(item.Item, item.Span, bindings)
			if err != nil {
				return nil, err
			}
			out[i] = span.Make(expanded, item.Span)
		}
		return ast.ArgGroup{Items: out}, nil

	default:
		return nil, diag.NewSyntax("unrecognized argument pattern during expansion", sp)
	}
}
