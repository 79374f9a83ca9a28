// Package driver declares the external-collaborator contracts named in §6:
// the frontends and backends this core expects around it (tokenizer,
// parser, semantic compiler, VM execution loop) without implementing the
// ones the core itself does not own. A CLI wires these three interfaces
// together; only the in-scope Expander sits between Parser and Compiler.
package driver

import (
	"errors"

	"github.com/slightknack/passerine/lang/ast"
	"github.com/slightknack/passerine/lang/bytecode"
	"github.com/slightknack/passerine/lang/source"
	"github.com/slightknack/passerine/lang/span"
)

// ErrNotImplemented is returned by the reference Compiler and VM stubs: the
// semantic compiler and the VM execution loop are explicitly out of scope
// for this core (spec §1); these stand-ins exist only so a CLI can report
// "not implemented yet" instead of never compiling.
var ErrNotImplemented = errors.New("driver: not implemented in this core")

// Parser produces the pre-expansion AST a source file parses to: a Spanned
// tree rooted at a Block whose children are top-level forms.
type Parser interface {
	Parse(src *source.Source) (span.Spanned[ast.AST], error)
}

// Compiler lowers an already-expanded AST into a compiled Lambda.
type Compiler interface {
	Compile(tree span.Spanned[ast.AST]) (*bytecode.Lambda, error)
}

// VM executes a compiled Lambda to completion, returning its result value.
type VM interface {
	Run(l *bytecode.Lambda) (ast.Data, error)
}

// StubCompiler implements Compiler by always failing with
// ErrNotImplemented; a placeholder for the out-of-scope semantic compiler.
type StubCompiler struct{}

func (StubCompiler) Compile(span.Spanned[ast.AST]) (*bytecode.Lambda, error) {
	return nil, ErrNotImplemented
}

// StubVM implements VM by always failing with ErrNotImplemented; a
// placeholder for the out-of-scope VM execution loop.
type StubVM struct{}

func (StubVM) Run(*bytecode.Lambda) (ast.Data, error) {
	return nil, ErrNotImplemented
}
