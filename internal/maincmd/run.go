package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/loxwalk/lang/diag"
	"github.com/mna/loxwalk/lang/interp"
	"github.com/mna/loxwalk/lang/parser"
	"github.com/mna/loxwalk/lang/resolver"
)

func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return RunFile(stdio, c.cfg.MaxCallDepth, c.SimpleErrors, args[0])
}

// RunFile scans, parses, resolves and interprets file, writing "print"
// output to stdio.Stdout and rendering to stdio.Stderr either every parse
// diagnostic, or every resolve diagnostic, or the runtime diagnostic that
// stopped the run.
func RunFile(stdio mainer.Stdio, maxCallDepth int, simpleErrors bool, file string) error {
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	prog, perrs := parser.Parse(src)
	if err := perrs.Err(); err != nil {
		printDiags(stdio.Stderr, src, perrs, simpleErrors)
		return err
	}

	rerrs := resolver.Resolve(prog)
	if err := rerrs.Err(); err != nil {
		printDiags(stdio.Stderr, src, rerrs, simpleErrors)
		return err
	}

	it := interp.New(stdio.Stdout, maxCallDepth)
	if d := it.Run(prog); d != nil {
		printDiags(stdio.Stderr, src, diag.List{d}, simpleErrors)
		return d
	}
	return nil
}
