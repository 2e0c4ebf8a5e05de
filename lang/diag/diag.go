// Package diag defines the diagnostic record produced by the scanner,
// parser, resolver and interpreter, and a List aggregator adapted from
// the standard library's go/scanner.ErrorList for exactly the same purpose:
// accumulating positioned errors during a pass and sorting/rendering them
// together. It is reimplemented here (rather than reused directly) because
// go/scanner.ErrorList keys errors by a line/column token.Position, while
// this language keys everything by the byte-offset token.Span of lang/token.
package diag

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mna/loxwalk/lang/token"
)

// Kind is the closed set of diagnostic kinds a run of the interpreter can
// produce. Exactly one of these is carried by any given Diagnostic.
type Kind int

const (
	// Parse indicates malformed source: unrecognized token, invalid token, or
	// unexpected EOF.
	Parse Kind = iota
	// Resolve indicates a local variable read in its own initializer.
	Resolve
	// TypeMismatch indicates an operator applied to incompatible operand(s).
	TypeMismatch
	// IdentifierNotFound indicates an undefined variable read or assigned.
	IdentifierNotFound
	// NotCallable indicates a call target that is not a function value.
	NotCallable
	// ArityMismatch indicates a call with the wrong number of arguments.
	ArityMismatch
	// Assert indicates an assertion that evaluated to nil or false.
	Assert
	// MaxDepthExceeded indicates recursion past the configured call-depth
	// guard (see internal/config). Not part of the distilled spec: added so
	// runaway recursion is a reportable diagnostic rather than a process
	// crash, see REDESIGN FLAGS in SPEC_FULL.md.
	MaxDepthExceeded
)

var kindNames = [...]string{
	Parse:              "parse error",
	Resolve:            "resolve error",
	TypeMismatch:       "type mismatch",
	IdentifierNotFound: "identifier not found",
	NotCallable:        "not callable",
	ArityMismatch:      "arity mismatch",
	Assert:             "assertion failed",
	MaxDepthExceeded:   "max call depth exceeded",
}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("<invalid Kind %d>", k)
	}
	return kindNames[k]
}

// Runtime reports whether the diagnostic kind originates during tree
// evaluation rather than during scanning, parsing or resolving.
func (k Kind) Runtime() bool {
	switch k {
	case TypeMismatch, IdentifierNotFound, NotCallable, ArityMismatch, Assert, MaxDepthExceeded:
		return true
	default:
		return false
	}
}

// Diagnostic is a single positioned error. It carries everything the CLI
// front-end's renderer needs: what kind of failure occurred, where, a
// human-readable message, and — for parse errors — the set of tokens that
// would have been accepted instead.
type Diagnostic struct {
	Kind     Kind
	Span     token.Span // zero value if the diagnostic has no associated location
	Message  string
	Expected []string // only meaningful for Kind == Parse
}

func (d *Diagnostic) Error() string {
	if d.Span.Valid() {
		return fmt.Sprintf("%s: %s (at %s)", d.Kind, d.Message, d.Span)
	}
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

// List is an accumulator of diagnostics, modeled on go/scanner.ErrorList:
// scanning, parsing and resolving can accumulate several, while the
// interpreter only ever produces at most one (the first failure aborts the
// run).
type List []*Diagnostic

// Add appends a diagnostic built from kind, span and a formatted message.
func (l *List) Add(kind Kind, span token.Span, format string, args ...interface{}) {
	*l = append(*l, &Diagnostic{Kind: kind, Span: span, Message: fmt.Sprintf(format, args...)})
}

// Sort orders the list by span start, matching source order; diagnostics
// with no span sort first.
func (l List) Sort() {
	sort.Stable(byPos(l))
}

type byPos List

func (l byPos) Len() int      { return len(l) }
func (l byPos) Swap(i, j int) { l[i], l[j] = l[j], l[i] }
func (l byPos) Less(i, j int) bool {
	return l[i].Span.Start < l[j].Span.Start
}

// Err returns the list as an error, or nil if the list is empty.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (and %d more errors)", l[0], len(l)-1)
	return sb.String()
}
