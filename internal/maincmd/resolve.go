package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/loxwalk/lang/ast"
	"github.com/mna/loxwalk/lang/parser"
	"github.com/mna/loxwalk/lang/resolver"
)

func (c *Cmd) Resolve(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return ResolveFile(stdio, c.WithSpans, args[0])
}

// ResolveFile parses and resolves file, then pretty-prints the AST with each
// variable reference/assignment annotated with its resolver distance
// (printed as "distance=N"; N == -1 means the global scope).
func ResolveFile(stdio mainer.Stdio, withSpans bool, file string) error {
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	prog, perrs := parser.Parse(src)
	if err := perrs.Err(); err != nil {
		// cannot resolve an AST that failed to parse
		printDiags(stdio.Stderr, src, perrs, false)
		return err
	}

	rerrs := resolver.Resolve(prog)

	printer := ast.Printer{Output: stdio.Stdout, WithSpans: withSpans, NodeFmt: "%#v"}
	if perr := printer.Print(prog); perr != nil {
		return perr
	}

	if err := rerrs.Err(); err != nil {
		printDiags(stdio.Stderr, src, rerrs, false)
		return err
	}
	return nil
}
