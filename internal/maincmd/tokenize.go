package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/mna/loxwalk/lang/scanner"
)

func (c *Cmd) Tokenize(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return TokenizeFile(stdio, c.WithSpans, args[0])
}

// TokenizeFile scans file and prints its token stream, one token per line.
func TokenizeFile(stdio mainer.Stdio, withSpans bool, file string) error {
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	toks, errs := scanner.Scan(src)
	for _, tok := range toks {
		if withSpans {
			fmt.Fprintf(stdio.Stdout, "[%s] %s", tok.Span, tok.Token)
		} else {
			fmt.Fprint(stdio.Stdout, tok.Token)
		}
		if tok.Lit != "" {
			fmt.Fprintf(stdio.Stdout, " %s", tok.Lit)
		}
		fmt.Fprintln(stdio.Stdout)
	}
	if err := errs.Err(); err != nil {
		printDiags(stdio.Stderr, src, errs, false)
		return err
	}
	return nil
}
