package expander

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/slightknack/passerine/lang/ast"
	"github.com/slightknack/passerine/lang/span"
)

// stampRand is the source used by UniqueTag. Exposed so tests can call
// SeedStamps for deterministic output, per the spec's requirement that the
// tag generator allow seeding.
var stampRand = rand.New(rand.NewSource(1))

// SeedStamps reseeds the hygiene-tag generator, for deterministic tests.
func SeedStamps(seed int64) {
	stampRand = rand.New(rand.NewSource(seed))
}

// RemoveTag returns the substring of name preceding its first '#'. If name
// has no '#', it is returned unchanged.
func RemoveTag(name string) string {
	if i := strings.IndexByte(name, '#'); i >= 0 {
		return name[:i]
	}
	return name
}

const stampAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func stamp() string {
	buf := make([]byte, 8)
	for i := range buf {
		buf[i] = stampAlphabet[stampRand.Intn(len(stampAlphabet))]
	}
	return string(buf)
}

// UniqueTag produces "{base}#{stamp}" where stamp is a short token absent
// from bindings, retrying up to 1024 times. Exhaustion panics: running out
// of 1024 random 8-character stamps is an implementation bug, not a
// recoverable condition.
func UniqueTag(base string, bindings Bindings) string {
	for i := 0; i < 1024; i++ {
		candidate := fmt.Sprintf("%s#%s", base, stamp())
		if !bindings.Has(candidate) {
			return candidate
		}
	}
	panic("expander: exhausted 1024 attempts generating a unique hygiene tag")
}

// ResolveSymbol looks up name in bindings. If bound, it returns a clone of
// the bound Spanned AST carrying the *binding site's* span — propagating
// the caller's source location into the macro body is intentional. If
// unbound, it mints a unique hygiene tag, records name -> Spanned(unique
// Symbol, span) in bindings, and returns that. Every later occurrence of
// name within the same expansion resolves to the same unique symbol.
func ResolveSymbol(name string, sp span.Span, bindings Bindings) span.Spanned[ast.AST] {
	if bound, ok := bindings.Get(name); ok {
		return bound
	}
	unique := UniqueTag(name, bindings)
	resolved := span.Make[ast.AST](ast.Symbol{Name: unique}, sp)
	bindings.Insert(name, resolved)
	return resolved
}
