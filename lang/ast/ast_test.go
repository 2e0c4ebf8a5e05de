package ast_test

import (
	"bytes"
	"testing"

	"github.com/mna/loxwalk/lang/ast"
	"github.com/mna/loxwalk/lang/token"
	"github.com/stretchr/testify/require"
)

func TestWalkVisitsProgramAndTopLevelStatement(t *testing.T) {
	prog := &ast.Program{
		Stmts: []ast.Stmt{
			&ast.PrintStmt{
				PrintPos: 0,
				X: &ast.BinaryExpr{
					Left:  &ast.NumberExpr{Pos: 6, Raw: "1", Val: 1},
					Op:    token.PLUS,
					Right: &ast.NumberExpr{Pos: 10, Raw: "2", Val: 2},
				},
				EndPos: 12,
			},
		},
		EOF: 13,
	}

	var kinds []string
	ast.Walk(ast.VisitorFunc(func(n ast.Node, dir ast.VisitDirection) ast.Visitor {
		if dir == ast.VisitEnter {
			kinds = append(kinds, fmt(n))
		}
		return ast.VisitorFunc(func(n ast.Node, dir ast.VisitDirection) ast.Visitor {
			if dir == ast.VisitEnter {
				kinds = append(kinds, fmt(n))
			}
			return ast.VisitorFunc(func(n ast.Node, dir ast.VisitDirection) ast.Visitor { return nil })
		})
	}), prog)

	require.Contains(t, kinds, "*ast.Program")
	require.Contains(t, kinds, "*ast.PrintStmt")
}

func fmt(n ast.Node) string {
	return typeName(n)
}

func typeName(n ast.Node) string {
	switch n.(type) {
	case *ast.Program:
		return "*ast.Program"
	case *ast.PrintStmt:
		return "*ast.PrintStmt"
	default:
		return "other"
	}
}

func TestPrinterWritesEachNode(t *testing.T) {
	prog := &ast.Program{
		Stmts: []ast.Stmt{
			&ast.ExprStmt{X: &ast.NumberExpr{Pos: 0, Raw: "7", Val: 7}, EndPos: 2},
		},
		EOF: 2,
	}

	var buf bytes.Buffer
	p := ast.Printer{Output: &buf}
	require.NoError(t, p.Print(prog))
	require.Contains(t, buf.String(), "program")
	require.Contains(t, buf.String(), "expr stmt")
	require.Contains(t, buf.String(), "number 7")
}
