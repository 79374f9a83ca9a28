package expander

import (
	"github.com/dolthub/swiss"
	"github.com/slightknack/passerine/lang/ast"
	"github.com/slightknack/passerine/lang/span"
)

// Bindings maps a name to the Spanned AST it is bound to. Keys are unique;
// insertion order is irrelevant for correctness, which is what makes a
// swiss-table an appropriate backing store instead of an ordered map.
type Bindings struct {
	m *swiss.Map[string, span.Spanned[ast.AST]]
}

// NewBindings returns an empty Bindings.
func NewBindings() Bindings {
	return Bindings{m: swiss.NewMap[string, span.Spanned[ast.AST]](0)}
}

// Get returns the value bound to name, if any.
func (b Bindings) Get(name string) (span.Spanned[ast.AST], bool) {
	return b.m.Get(name)
}

// Has reports whether name is bound.
func (b Bindings) Has(name string) bool {
	_, ok := b.m.Get(name)
	return ok
}

// Insert binds name to value, overwriting any existing binding.
func (b Bindings) Insert(name string, value span.Spanned[ast.AST]) {
	b.m.Put(name, value)
}

// Len returns the number of bound names.
func (b Bindings) Len() int {
	return b.m.Count()
}

// Each calls f once per binding, in unspecified order, stopping early if f
// returns false.
func (b Bindings) Each(f func(name string, value span.Spanned[ast.AST]) bool) {
	b.m.Iter(func(k string, v span.Spanned[ast.AST]) bool {
		return !f(k, v)
	})
}
