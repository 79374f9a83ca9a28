package expander

import (
	"github.com/slightknack/passerine/lang/ast"
	"github.com/slightknack/passerine/lang/span"
)

// ExpandProgram is the program-level loop that sits above Expand: given a
// Block of top-level forms, it scans them in order, turning every
// ast.SyntaxNode into a registered Rule — eliding the definition itself
// from the output, the same way the original's call site never emits a
// macro definition as a value — and tries each later Form against the
// rules seen so far (first match wins, via Bind). A form that matches is
// replaced by Expand(rule.Tree, bindings); anything left over (including
// forms no rule claims) is expanded normally with its own fresh bindings.
//
// This is what actually ties Rule/Bind/Expand together into a usable
// macro system: spec.md's own `expand(tree, bindings)` only rewrites a
// single already-matched rule body (and refuses a *nested* Syntax node
// outright), so the outer "apply macro rules producing a new AST" step
// described in §1's data flow lives here instead.
func ExpandProgram(tree span.Spanned[ast.AST], bindings Bindings) (span.Spanned[ast.AST], error) {
	block, ok := tree.Item.(ast.Block)
	if !ok {
		return Expand(tree, bindings)
	}

	var rules []Rule
	var outForms []span.Spanned[ast.AST]

	for _, form := range block.Forms {
		if syn, isSyntax := form.Item.(ast.SyntaxNode); isSyntax {
			rule, err := NewRule(syn.ArgPat, syn.Expression)
			if err != nil {
				return span.Spanned[ast.AST]{}, err
			}
			rules = append(rules, rule)
			continue
		}

		expanded, matched, err := tryExpandAgainstRules(form, rules)
		if err != nil {
			return span.Spanned[ast.AST]{}, err
		}
		if !matched {
			expanded, err = Expand(form, NewBindings())
			if err != nil {
				return span.Spanned[ast.AST]{}, err
			}
		}
		outForms = append(outForms, expanded)
	}

	return span.Make[ast.AST](ast.Block{Forms: outForms}, tree.Span), nil
}

// formBranches views form as the flat sequence Bind expects: a Form's own
// Branches, or the single node itself for anything else (a lone symbol or
// literal is a degenerate one-element form).
func formBranches(form span.Spanned[ast.AST]) []span.Spanned[ast.AST] {
	if f, ok := form.Item.(ast.Form); ok {
		return f.Branches
	}
	return []span.Spanned[ast.AST]{form}
}

func reverseForm(branches []span.Spanned[ast.AST]) []span.Spanned[ast.AST] {
	out := make([]span.Spanned[ast.AST], len(branches))
	for i, b := range branches {
		out[len(branches)-1-i] = b
	}
	return out
}

// tryExpandAgainstRules tries form against every rule in order, returning
// the first match's expansion. A rule that matches but leaves nodes
// unconsumed does not count as a match of the whole form, per Bind's
// contract.
func tryExpandAgainstRules(form span.Spanned[ast.AST], rules []Rule) (span.Spanned[ast.AST], bool, error) {
	reversed := reverseForm(formBranches(form))

	for _, rule := range rules {
		bindings, matched, rest, err := Bind(rule.ArgPat.Item, reversed)
		if err != nil {
			return span.Spanned[ast.AST]{}, false, err
		}
		if !matched || len(rest) != 0 {
			continue
		}
		expanded, err := Expand(rule.Tree, bindings)
		if err != nil {
			return span.Spanned[ast.AST]{}, false, err
		}
		return expanded, true, nil
	}
	return span.Spanned[ast.AST]{}, false, nil
}
