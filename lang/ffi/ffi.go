// Package ffi defines the opaque handle type a Lambda's foreign-function
// table holds. The bridge that resolves a name to a Function, and the
// runtime that invokes one from the FFICall opcode, are external
// collaborators (see spec §6) — this package only carries the contract
// Lambda.AddFFI and the FFICall opcode rely on.
package ffi

import "github.com/slightknack/passerine/lang/ast"

// Function is a host-provided callable invoked from bytecode via FFICall.
// It takes the popped argument and returns a result or an error.
type Function func(arg ast.Data) (ast.Data, error)
