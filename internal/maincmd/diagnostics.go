package maincmd

import (
	"fmt"
	"io"

	"github.com/mna/loxwalk/lang/diag"
)

// printDiags renders each diagnostic in errs to w, one after another.
func printDiags(w io.Writer, src []byte, errs diag.List, simple bool) {
	for _, d := range errs {
		fmt.Fprintln(w, diag.Render(src, d, simple))
	}
}
