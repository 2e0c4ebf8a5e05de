package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/loxwalk/lang/ast"
	"github.com/mna/loxwalk/lang/parser"
)

func (c *Cmd) Parse(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return ParseFile(stdio, c.WithSpans, args[0])
}

// ParseFile parses file and pretty-prints the resulting AST.
func ParseFile(stdio mainer.Stdio, withSpans bool, file string) error {
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	prog, errs := parser.Parse(src)
	printer := ast.Printer{Output: stdio.Stdout, WithSpans: withSpans}
	if perr := printer.Print(prog); perr != nil {
		return perr
	}

	if err := errs.Err(); err != nil {
		printDiags(stdio.Stderr, src, errs, false)
		return err
	}
	return nil
}
