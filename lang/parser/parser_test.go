package parser_test

import (
	"testing"

	"github.com/mna/loxwalk/lang/ast"
	"github.com/mna/loxwalk/lang/parser"
	"github.com/stretchr/testify/require"
)

func TestParseExpressionPrecedence(t *testing.T) {
	prog, errs := parser.Parse([]byte(`print 1 + 2 * 3;`))
	require.Empty(t, errs)
	require.Len(t, prog.Stmts, 1)

	ps := prog.Stmts[0].(*ast.PrintStmt)
	bin := ps.X.(*ast.BinaryExpr)
	require.Equal(t, "+", bin.Op.String())
	_, ok := bin.Left.(*ast.NumberExpr)
	require.True(t, ok)
}

func TestParseAssignmentIsRightAssociative(t *testing.T) {
	prog, errs := parser.Parse([]byte(`var a = 1; var b = 1; a = b = 2;`))
	require.Empty(t, errs)
	require.Len(t, prog.Stmts, 3)

	es := prog.Stmts[2].(*ast.ExprStmt)
	outer := es.X.(*ast.AssignExpr)
	require.Equal(t, "a", outer.Name)
	inner, ok := outer.RHS.(*ast.AssignExpr)
	require.True(t, ok)
	require.Equal(t, "b", inner.Name)
}

func TestParseVarDeclWithoutInitializerIsNil(t *testing.T) {
	prog, errs := parser.Parse([]byte(`var a;`))
	require.Empty(t, errs)
	decl := prog.Stmts[0].(*ast.VarDeclStmt)
	_, ok := decl.Init.(*ast.NilExpr)
	require.True(t, ok)
}

func TestParseIfElse(t *testing.T) {
	prog, errs := parser.Parse([]byte(`if (true) print 1; else print 2;`))
	require.Empty(t, errs)
	ifs := prog.Stmts[0].(*ast.IfStmt)
	require.NotNil(t, ifs.Then)
	require.NotNil(t, ifs.Else)
}

func TestParseForDesugarsToWhileInBlock(t *testing.T) {
	prog, errs := parser.Parse([]byte(`for (var i = 0; i < 3; i = i + 1) print i;`))
	require.Empty(t, errs)

	outer := prog.Stmts[0].(*ast.BlockStmt)
	require.Len(t, outer.Stmts, 2)
	_, ok := outer.Stmts[0].(*ast.VarDeclStmt)
	require.True(t, ok)

	loop := outer.Stmts[1].(*ast.WhileStmt)
	body := loop.Body.(*ast.BlockStmt)
	require.Len(t, body.Stmts, 2)
}

func TestParseFunDeclAndCall(t *testing.T) {
	prog, errs := parser.Parse([]byte(`fun add(a, b) { return a + b; } print add(1, 2);`))
	require.Empty(t, errs)
	require.Len(t, prog.Stmts, 2)

	fn := prog.Stmts[0].(*ast.FunDeclStmt)
	require.Equal(t, "add", fn.Name)
	require.Len(t, fn.Params, 2)

	ps := prog.Stmts[1].(*ast.PrintStmt)
	call := ps.X.(*ast.CallExpr)
	require.Len(t, call.Args, 2)
}

func TestParseMissingSemicolonReportsErrorAndRecovers(t *testing.T) {
	prog, errs := parser.Parse([]byte("print 1\nprint 2;"))
	require.NotEmpty(t, errs)
	// the parser resynchronizes on the next statement-starting keyword and
	// keeps parsing; the second print is still recovered.
	require.NotEmpty(t, prog.Stmts)
}

func TestParseUnaryAndGrouping(t *testing.T) {
	prog, errs := parser.Parse([]byte(`print -(1 + 2);`))
	require.Empty(t, errs)
	ps := prog.Stmts[0].(*ast.PrintStmt)
	un := ps.X.(*ast.UnaryExpr)
	_, ok := un.Operand.(*ast.BinaryExpr)
	require.True(t, ok)
}
