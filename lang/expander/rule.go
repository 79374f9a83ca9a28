// Package expander implements the hygienic syntactic-macro rule engine:
// argument-pattern matching against a macro invocation's form, unique-symbol
// hygiene, and the recursive structural rewrite that substitutes a matched
// rule's replacement tree.
package expander

import (
	"github.com/slightknack/passerine/lang/ast"
	"github.com/slightknack/passerine/lang/diag"
	"github.com/slightknack/passerine/lang/span"
)

// Rule is one arm of a macro: an argument pattern and the replacement tree
// expanded in its place once the pattern matches.
type Rule struct {
	ArgPat span.Spanned[ast.ArgPattern]
	Tree   span.Spanned[ast.AST]
}

// NewRule constructs a Rule, rejecting an argument pattern with no
// pseudokeyword: a rule that can never be distinguished from a plain
// function application is not a macro.
func NewRule(argPat span.Spanned[ast.ArgPattern], tree span.Spanned[ast.AST]) (Rule, error) {
	if len(Keywords(argPat.Item)) == 0 {
		return Rule{}, diag.NewSyntax("a macro rule must have at least one keyword", argPat.Span)
	}
	return Rule{ArgPat: argPat, Tree: tree}, nil
}

// Keywords returns every Keyword(name) reached by descending into Groups,
// in left-to-right order, with duplicates preserved.
func Keywords(pat ast.ArgPattern) []string {
	switch p := pat.(type) {
	case ast.Keyword:
		return []string{p.Name}
	case ast.ArgSymbol:
		return nil
	case ast.ArgGroup:
		var out []string
		for _, item := range p.Items {
			out = append(out, Keywords(item.Item)...)
		}
		return out
	default:
		return nil
	}
}
