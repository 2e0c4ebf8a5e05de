// Package ast defines the abstract syntax tree produced by the parser and
// consumed by the resolver and interpreter.
package ast

import (
	"fmt"
	"strings"

	"github.com/mna/loxwalk/lang/token"
)

// Node represents any node in the AST.
type Node interface {
	// Every Node implements fmt.Formatter so it can print a short description
	// of itself; only the 'v' and 's' verbs are supported.
	fmt.Formatter

	// Span reports the source span of the node.
	Span() token.Span

	// Walk enters each child node to implement the Visitor pattern.
	Walk(v Visitor)
}

// Expr represents an expression in the AST.
type Expr interface {
	Node
	expr()
}

// Stmt represents a statement in the AST.
type Stmt interface {
	Node
	stmt()
}

// Program is the root of a parsed source file: a flat list of top-level
// statements.
type Program struct {
	Stmts []Stmt
	EOF   token.Pos
}

func (n *Program) Format(f fmt.State, verb rune) { format(f, verb, "program", nil) }
func (n *Program) Span() token.Span {
	if len(n.Stmts) == 0 {
		return token.MakeSpan(n.EOF, n.EOF)
	}
	start := n.Stmts[0].Span().Start
	return token.MakeSpan(start, n.EOF)
}
func (n *Program) Walk(v Visitor) {
	for _, s := range n.Stmts {
		Walk(v, s)
	}
}

func format(f fmt.State, verb rune, label string, counts map[string]int) {
	if verb != 'v' && verb != 's' {
		fmt.Fprintf(f, "%%!%c(%s)", verb, label)
		return
	}

	if w, ok := f.Width(); ok {
		minus := f.Flag('-')
		runes := []rune(label)
		switch {
		case len(runes) >= w:
			runes = runes[:w]
		case minus:
			runes = append(runes, []rune(strings.Repeat(" ", w-len(runes)))...)
		default:
			runes = append([]rune(strings.Repeat(" ", w-len(runes))), runes...)
		}
		label = string(runes)
	}

	fmt.Fprint(f, label)
	if f.Flag('#') && len(counts) > 0 {
		fmt.Fprint(f, " {")
		first := true
		for k, v := range counts {
			if !first {
				fmt.Fprint(f, ", ")
			}
			first = false
			fmt.Fprintf(f, "%s=%d", k, v)
		}
		fmt.Fprint(f, "}")
	}
}
