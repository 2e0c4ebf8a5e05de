package ast

import (
	"fmt"

	"github.com/mna/loxwalk/lang/token"
)

type (
	// EmptyStmt represents a bare ";" with no effect.
	EmptyStmt struct{ Pos token.Pos }

	// ExprStmt represents an expression evaluated for its side effects, its
	// result discarded.
	ExprStmt struct {
		X      Expr
		EndPos token.Pos
	}

	// PrintStmt represents a "print EXPR;" statement.
	PrintStmt struct {
		PrintPos token.Pos
		X        Expr
		EndPos   token.Pos
	}

	// AssertStmt represents an "assert EXPR;" statement.
	AssertStmt struct {
		AssertPos token.Pos
		X         Expr
		EndPos    token.Pos
	}

	// VarDeclStmt represents a "var NAME = EXPR;" declaration. Init is never
	// nil: a bare "var x;" is parsed with an implicit NilExpr initializer, so
	// the interpreter never observes an "undefined" state.
	VarDeclStmt struct {
		VarPos token.Pos
		Name   string
		Init   Expr
		EndPos token.Pos
	}

	// FunDeclStmt represents a "fun NAME(...) { ... }" declaration.
	FunDeclStmt struct {
		FunPos token.Pos
		Name   string
		Params []*Param
		Body   *BlockStmt
	}

	// ReturnStmt represents a "return EXPR?;" statement. X is nil when no
	// expression was given, which the interpreter treats as nil.
	ReturnStmt struct {
		ReturnPos token.Pos
		X         Expr
		EndPos    token.Pos
	}

	// BlockStmt represents a "{ ... }" sequence of statements with its own
	// lexical scope.
	BlockStmt struct {
		Lbrace token.Pos
		Stmts  []Stmt
		Rbrace token.Pos
	}

	// IfStmt represents an "if (COND) THEN (else ELSE)?" statement. Else is
	// nil when no else clause was given.
	IfStmt struct {
		IfPos token.Pos
		Cond  Expr
		Then  Stmt
		Else  Stmt
	}

	// WhileStmt represents a "while (COND) BODY" statement.
	WhileStmt struct {
		WhilePos token.Pos
		Cond     Expr
		Body     Stmt
	}
)

func (n *EmptyStmt) Format(f fmt.State, verb rune) { format(f, verb, "empty", nil) }
func (n *EmptyStmt) Span() token.Span              { return token.MakeSpan(n.Pos, n.Pos+1) }
func (n *EmptyStmt) Walk(v Visitor)                {}
func (n *EmptyStmt) stmt()                         {}

func (n *ExprStmt) Format(f fmt.State, verb rune) { format(f, verb, "expr stmt", nil) }
func (n *ExprStmt) Span() token.Span               { return token.MakeSpan(n.X.Span().Start, n.EndPos) }
func (n *ExprStmt) Walk(v Visitor)                 { Walk(v, n.X) }
func (n *ExprStmt) stmt()                          {}

func (n *PrintStmt) Format(f fmt.State, verb rune) { format(f, verb, "print", nil) }
func (n *PrintStmt) Span() token.Span              { return token.MakeSpan(n.PrintPos, n.EndPos) }
func (n *PrintStmt) Walk(v Visitor)                { Walk(v, n.X) }
func (n *PrintStmt) stmt()                         {}

func (n *AssertStmt) Format(f fmt.State, verb rune) { format(f, verb, "assert", nil) }
func (n *AssertStmt) Span() token.Span              { return token.MakeSpan(n.AssertPos, n.EndPos) }
func (n *AssertStmt) Walk(v Visitor)                { Walk(v, n.X) }
func (n *AssertStmt) stmt()                         {}

func (n *VarDeclStmt) Format(f fmt.State, verb rune) { format(f, verb, "var "+n.Name, nil) }
func (n *VarDeclStmt) Span() token.Span              { return token.MakeSpan(n.VarPos, n.EndPos) }
func (n *VarDeclStmt) Walk(v Visitor)                { Walk(v, n.Init) }
func (n *VarDeclStmt) stmt()                         {}

func (n *FunDeclStmt) Format(f fmt.State, verb rune) {
	format(f, verb, "fun "+n.Name, map[string]int{"params": len(n.Params)})
}
func (n *FunDeclStmt) Span() token.Span { return token.MakeSpan(n.FunPos, n.Body.Span().End) }
func (n *FunDeclStmt) Walk(v Visitor)   { Walk(v, n.Body) }
func (n *FunDeclStmt) stmt()            {}

func (n *ReturnStmt) Format(f fmt.State, verb rune) { format(f, verb, "return", nil) }
func (n *ReturnStmt) Span() token.Span              { return token.MakeSpan(n.ReturnPos, n.EndPos) }
func (n *ReturnStmt) Walk(v Visitor) {
	if n.X != nil {
		Walk(v, n.X)
	}
}
func (n *ReturnStmt) stmt() {}

func (n *BlockStmt) Format(f fmt.State, verb rune) {
	format(f, verb, "block", map[string]int{"stmts": len(n.Stmts)})
}
func (n *BlockStmt) Span() token.Span { return token.MakeSpan(n.Lbrace, n.Rbrace+1) }
func (n *BlockStmt) Walk(v Visitor) {
	for _, s := range n.Stmts {
		Walk(v, s)
	}
}
func (n *BlockStmt) stmt() {}

func (n *IfStmt) Format(f fmt.State, verb rune) { format(f, verb, "if", nil) }
func (n *IfStmt) Span() token.Span {
	end := n.Then.Span().End
	if n.Else != nil {
		end = n.Else.Span().End
	}
	return token.MakeSpan(n.IfPos, end)
}
func (n *IfStmt) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Then)
	if n.Else != nil {
		Walk(v, n.Else)
	}
}
func (n *IfStmt) stmt() {}

func (n *WhileStmt) Format(f fmt.State, verb rune) { format(f, verb, "while", nil) }
func (n *WhileStmt) Span() token.Span              { return token.MakeSpan(n.WhilePos, n.Body.Span().End) }
func (n *WhileStmt) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Body)
}
func (n *WhileStmt) stmt() {}
