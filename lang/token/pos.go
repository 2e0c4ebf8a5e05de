package token

import "fmt"

// Pos is a byte offset into a source file; 0 is the first byte.
type Pos int

// Span is a half-open byte-offset range [Start, End) into the source text.
// It is attached to every AST node and is used to key diagnostics.
type Span struct {
	Start, End Pos
}

// MakeSpan builds a Span. The caller's responsibility is to ensure
// start <= end, both within [0, len(source)]; the scanner and parser always
// have this information cheaply available.
func MakeSpan(start, end Pos) Span {
	if start > end {
		panic(fmt.Sprintf("token: invalid span [%d, %d)", start, end))
	}
	return Span{Start: start, End: end}
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return int(s.End - s.Start) }

// Valid reports whether the span refers to an actual source range, as
// opposed to the zero Span used for synthetic nodes with no source text.
func (s Span) Valid() bool { return s.Start != 0 || s.End != 0 }

func (s Span) String() string { return fmt.Sprintf("%d:%d", s.Start, s.End) }
