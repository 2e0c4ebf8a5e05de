package ast

import (
	"fmt"

	"github.com/mna/loxwalk/lang/token"
)

// noDistance is the sentinel Distance value meaning "global scope", i.e. the
// resolver never found an enclosing binding for this reference.
const noDistance = -1

type (
	// NilExpr represents the nil literal.
	NilExpr struct{ Pos token.Pos }

	// NumberExpr represents a number literal.
	NumberExpr struct {
		Pos token.Pos
		Raw string
		Val float64
	}

	// BoolExpr represents a true/false literal.
	BoolExpr struct {
		Pos token.Pos
		Val bool
	}

	// StringExpr represents a string literal. Val is the decoded value (equal
	// to Raw, since the language performs no escape processing).
	StringExpr struct {
		Pos token.Pos
		Raw string
		Val string
	}

	// UnaryExpr represents a unary operator expression, e.g. -4 or !done.
	UnaryExpr struct {
		OpPos   token.Pos
		Op      token.Token // MINUS (Negate) or BANG (Invert)
		Operand Expr
	}

	// BinaryExpr represents a binary operator expression, e.g. x + y.
	BinaryExpr struct {
		Left  Expr
		Op    token.Token
		OpPos token.Pos
		Right Expr
	}

	// VarExpr represents a read of a variable.
	VarExpr struct {
		Pos      token.Pos
		Name     string
		Distance int // filled by the resolver; noDistance means global
	}

	// AssignExpr represents an assignment expression, e.g. x = y.
	AssignExpr struct {
		Pos      token.Pos // position of the target identifier
		Name     string
		EqPos    token.Pos
		RHS      Expr
		Distance int // filled by the resolver; noDistance means global
	}

	// CallExpr represents a function call, e.g. f(x, y).
	CallExpr struct {
		Callee Expr
		Args   []Expr
		Rparen token.Pos
	}

	// FunExpr represents an anonymous function literal.
	FunExpr struct {
		FunPos token.Pos
		Params []*Param
		Body   *BlockStmt
	}

	// Param is a single function parameter.
	Param struct {
		Pos  token.Pos
		Name string
	}
)

// NewVarExpr returns a VarExpr with the distance left unresolved.
func NewVarExpr(pos token.Pos, name string) *VarExpr {
	return &VarExpr{Pos: pos, Name: name, Distance: noDistance}
}

// NewAssignExpr returns an AssignExpr with the distance left unresolved.
func NewAssignExpr(pos token.Pos, name string, eq token.Pos, rhs Expr) *AssignExpr {
	return &AssignExpr{Pos: pos, Name: name, EqPos: eq, RHS: rhs, Distance: noDistance}
}

// IsGlobal reports whether the resolver determined this reference targets
// the outermost (global) scope.
func (n *VarExpr) IsGlobal() bool { return n.Distance == noDistance }

// IsGlobal reports whether the resolver determined this assignment targets
// the outermost (global) scope.
func (n *AssignExpr) IsGlobal() bool { return n.Distance == noDistance }

func (n *NilExpr) Format(f fmt.State, verb rune)  { format(f, verb, "nil", nil) }
func (n *NilExpr) Span() token.Span               { return token.MakeSpan(n.Pos, n.Pos+3) }
func (n *NilExpr) Walk(v Visitor)                 {}
func (n *NilExpr) expr()                          {}

func (n *NumberExpr) Format(f fmt.State, verb rune) { format(f, verb, "number "+n.Raw, nil) }
func (n *NumberExpr) Span() token.Span              { return token.MakeSpan(n.Pos, n.Pos+token.Pos(len(n.Raw))) }
func (n *NumberExpr) Walk(v Visitor)                {}
func (n *NumberExpr) expr()                         {}

func (n *BoolExpr) Format(f fmt.State, verb rune) {
	lbl := "false"
	if n.Val {
		lbl = "true"
	}
	format(f, verb, lbl, nil)
}
func (n *BoolExpr) Span() token.Span {
	l := token.Pos(4)
	if !n.Val {
		l = 5
	}
	return token.MakeSpan(n.Pos, n.Pos+l)
}
func (n *BoolExpr) Walk(v Visitor) {}
func (n *BoolExpr) expr()          {}

func (n *StringExpr) Format(f fmt.State, verb rune) { format(f, verb, "string "+n.Raw, nil) }
func (n *StringExpr) Span() token.Span {
	return token.MakeSpan(n.Pos, n.Pos+token.Pos(len(n.Raw))+2)
}
func (n *StringExpr) Walk(v Visitor) {}
func (n *StringExpr) expr()          {}

func (n *UnaryExpr) Format(f fmt.State, verb rune) { format(f, verb, "unary "+n.Op.GoString(), nil) }
func (n *UnaryExpr) Span() token.Span {
	_, end := n.OpPos, n.Operand.Span().End
	return token.MakeSpan(n.OpPos, end)
}
func (n *UnaryExpr) Walk(v Visitor) { Walk(v, n.Operand) }
func (n *UnaryExpr) expr()          {}

func (n *BinaryExpr) Format(f fmt.State, verb rune) {
	format(f, verb, "binary "+n.Op.GoString(), nil)
}
func (n *BinaryExpr) Span() token.Span {
	return token.MakeSpan(n.Left.Span().Start, n.Right.Span().End)
}
func (n *BinaryExpr) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}
func (n *BinaryExpr) expr() {}

func (n *VarExpr) Format(f fmt.State, verb rune) {
	format(f, verb, "var "+n.Name, map[string]int{"distance": n.Distance})
}
func (n *VarExpr) Span() token.Span {
	return token.MakeSpan(n.Pos, n.Pos+token.Pos(len(n.Name)))
}
func (n *VarExpr) Walk(v Visitor) {}
func (n *VarExpr) expr()          {}

func (n *AssignExpr) Format(f fmt.State, verb rune) {
	format(f, verb, "assign "+n.Name, map[string]int{"distance": n.Distance})
}
func (n *AssignExpr) Span() token.Span {
	return token.MakeSpan(n.Pos, n.RHS.Span().End)
}
func (n *AssignExpr) Walk(v Visitor) { Walk(v, n.RHS) }
func (n *AssignExpr) expr()          {}

func (n *CallExpr) Format(f fmt.State, verb rune) {
	format(f, verb, "call", map[string]int{"args": len(n.Args)})
}
func (n *CallExpr) Span() token.Span {
	return token.MakeSpan(n.Callee.Span().Start, n.Rparen+1)
}
func (n *CallExpr) Walk(v Visitor) {
	Walk(v, n.Callee)
	for _, a := range n.Args {
		Walk(v, a)
	}
}
func (n *CallExpr) expr() {}

func (n *FunExpr) Format(f fmt.State, verb rune) {
	format(f, verb, "fun", map[string]int{"params": len(n.Params)})
}
func (n *FunExpr) Span() token.Span {
	return token.MakeSpan(n.FunPos, n.Body.Span().End)
}
func (n *FunExpr) Walk(v Visitor) {
	Walk(v, n.Body)
}
func (n *FunExpr) expr() {}
