// Package maincmd implements the CLI surface described in §6: a single
// positional source-file argument, no flags, no environment variables,
// running parse → expand → compile → run and reporting any error on
// stderr.
package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/slightknack/passerine/lang/ast"
	"github.com/slightknack/passerine/lang/driver"
	"github.com/slightknack/passerine/lang/driver/textasm"
	"github.com/slightknack/passerine/lang/expander"
	"github.com/slightknack/passerine/lang/source"
)

const binName = "passerine"

var shortUsage = fmt.Sprintf("usage: %s <path>\n", binName)

// Cmd is the command-line entry point. It carries no flag fields: the spec
// this CLI implements takes exactly one positional argument and consults no
// environment variables.
type Cmd struct {
	Parser   driver.Parser
	Compiler driver.Compiler
	VM       driver.VM

	args []string
}

func (c *Cmd) SetArgs(args []string)     { c.args = args }
func (c *Cmd) SetFlags(map[string]bool) {}

func (c *Cmd) Validate() error {
	if len(c.args) != 1 {
		return fmt.Errorf("expected exactly one source-file path, got %d", len(c.args))
	}
	return nil
}

// Main reads the single source file named in args, runs
// parse → expand → compile → run, and prints any error to stdio.Stderr.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{EnvVars: false}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	if c.Parser == nil {
		c.Parser = textasm.Parser{}
	}
	if c.Compiler == nil {
		c.Compiler = driver.StubCompiler{}
	}
	if c.VM == nil {
		c.VM = driver.StubVM{}
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if err := c.run(ctx, stdio, c.args[0]); err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
		return mainer.Failure
	}
	return mainer.Success
}

func (c *Cmd) run(_ context.Context, stdio mainer.Stdio, path string) error {
	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	src := source.New(path, string(text))

	tree, err := c.Parser.Parse(src)
	if err != nil {
		return err
	}

	expanded, err := expander.ExpandProgram(tree, expander.NewBindings())
	if err != nil {
		return err
	}

	lambda, err := c.Compiler.Compile(expanded)
	if err != nil {
		if errors.Is(err, driver.ErrNotImplemented) {
			fmt.Fprintln(stdio.Stdout, "expanded AST (compiler not implemented in this core):")
			ast.Dump(stdio.Stdout, expanded.Item)
			return fmt.Errorf("compile: %w (the semantic compiler is out of scope for this core)", err)
		}
		return err
	}

	result, err := c.VM.Run(lambda)
	if err != nil {
		if errors.Is(err, driver.ErrNotImplemented) {
			return fmt.Errorf("run: %w (the VM execution loop is out of scope for this core)", err)
		}
		return err
	}

	fmt.Fprintln(stdio.Stdout, result)
	return nil
}
