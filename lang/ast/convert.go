package ast

import "fmt"

// AsASTPattern views a (necessarily already-resolved) AST value as an
// ASTPattern. Resolving an unbound name yields a fresh Symbol, but a name
// bound by a macro match resolves to whatever node it was bound to; only a
// Symbol converts, and anything else is a coercion failure, which the
// expander surfaces as a static error.
func AsASTPattern(a AST) (ASTPattern, error) {
	switch v := a.(type) {
	case Symbol:
		return PatternSymbol{Name: v.Name}, nil
	default:
		return nil, fmt.Errorf("can't treat %T as a pattern", a)
	}
}

// AsArgPattern views a (necessarily already-resolved) AST value as an
// ArgPattern, for the same reason and with the same restriction as
// AsASTPattern.
func AsArgPattern(a AST) (ArgPattern, error) {
	switch v := a.(type) {
	case Symbol:
		return ArgSymbol{Name: v.Name}, nil
	default:
		return nil, fmt.Errorf("can't treat %T as an argument pattern", a)
	}
}
