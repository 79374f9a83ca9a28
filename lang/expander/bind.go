package expander

import (
	"github.com/slightknack/passerine/lang/ast"
	"github.com/slightknack/passerine/lang/diag"
	"github.com/slightknack/passerine/lang/span"
)

// Bind matches argPat against reversedForm — the invocation's form reversed
// so the next node to consume is the last element, i.e. the form's first
// node; an ArgGroup's items therefore match the form left to right — and
// reports one of three
// outcomes, mirroring the source's `Option<Result<Bindings, Syntax>>`:
//
//   - ok == false, err == nil: the pattern does not apply to this form; the
//     caller should try the next rule.
//   - err != nil: the pattern matched but is ill-formed (e.g. a duplicate
//     binding name); the caller should stop and report err.
//   - ok == true, err == nil: the pattern matched; bindings holds the
//     result and rest is what remains of reversedForm.
//
// Callers must check that rest is empty to confirm the whole form, not
// just a prefix of it, was consumed.
func Bind(argPat ast.ArgPattern, reversedForm []span.Spanned[ast.AST]) (bindings Bindings, ok bool, rest []span.Spanned[ast.AST], err error) {
	switch pat := argPat.(type) {
	case ast.Keyword:
		if len(reversedForm) == 0 {
			return Bindings{}, false, reversedForm, nil
		}
		last := len(reversedForm) - 1
		node, rest := reversedForm[last], reversedForm[:last]
		sym, isSymbol := node.Item.(ast.Symbol)
		if !isSymbol || RemoveTag(sym.Name) != pat.Name {
			return Bindings{}, false, reversedForm, nil
		}
		return NewBindings(), true, rest, nil

	case ast.ArgSymbol:
		if len(reversedForm) == 0 {
			return Bindings{}, false, reversedForm, nil
		}
		last := len(reversedForm) - 1
		node, rest := reversedForm[last], reversedForm[:last]
		b := NewBindings()
		b.Insert(pat.Name, node)
		return b, true, rest, nil

	case ast.ArgGroup:
		acc := NewBindings()
		cursor := reversedForm
		for _, sub := range pat.Items {
			subBindings, matched, remain, subErr := Bind(sub.Item, cursor)
			if subErr != nil {
				return Bindings{}, false, reversedForm, subErr
			}
			if !matched {
				return Bindings{}, false, reversedForm, nil
			}
			merged, mergeErr := MergeSafe(acc, subBindings, sub.Span)
			if mergeErr != nil {
				return Bindings{}, false, reversedForm, mergeErr
			}
			acc = merged
			cursor = remain
		}
		return acc, true, cursor, nil

	default:
		return Bindings{}, false, reversedForm, diag.NewSyntax("unrecognized argument pattern", span.Empty())
	}
}

// MergeSafe merges new into base, failing if their key sets overlap: a name
// appearing twice across a Group's sub-patterns is a static error, not a
// mismatch, reported at defSpan.
func MergeSafe(base, newBindings Bindings, defSpan span.Span) (Bindings, error) {
	merged := NewBindings()
	base.Each(func(name string, value span.Spanned[ast.AST]) bool {
		merged.Insert(name, value)
		return true
	})

	var dup string
	newBindings.Each(func(name string, value span.Spanned[ast.AST]) bool {
		if merged.Has(name) {
			dup = name
			return false
		}
		merged.Insert(name, value)
		return true
	})
	if dup != "" {
		return Bindings{}, diag.NewSyntax("duplicate binding name \""+dup+"\" in argument pattern", defSpan)
	}
	return merged, nil
}
