package resolver_test

import (
	"testing"

	"github.com/mna/loxwalk/lang/ast"
	"github.com/mna/loxwalk/lang/parser"
	"github.com/mna/loxwalk/lang/resolver"
	"github.com/stretchr/testify/require"
)

func resolve(t *testing.T, src string) (*ast.Program, []error) {
	t.Helper()
	prog, perrs := parser.Parse([]byte(src))
	require.Empty(t, perrs)
	errs := resolver.Resolve(prog)
	out := make([]error, len(errs))
	for i, e := range errs {
		out[i] = e
	}
	return prog, out
}

func TestResolveLocalDistance(t *testing.T) {
	prog, errs := resolve(t, `var a = 1; { var b = 2; print a + b; }`)
	require.Empty(t, errs)

	block := prog.Stmts[1].(*ast.BlockStmt)
	ps := block.Stmts[1].(*ast.PrintStmt)
	bin := ps.X.(*ast.BinaryExpr)

	a := bin.Left.(*ast.VarExpr)
	require.True(t, a.IsGlobal())

	b := bin.Right.(*ast.VarExpr)
	require.Equal(t, 0, b.Distance)
}

func TestResolveShadowingInnerBlockDoesNotLeak(t *testing.T) {
	prog, errs := resolve(t, `var a = "g"; { var a = "o"; print a; } print a;`)
	require.Empty(t, errs)

	outerBlock := prog.Stmts[1].(*ast.BlockStmt)
	innerPrint := outerBlock.Stmts[1].(*ast.PrintStmt)
	require.Equal(t, 0, innerPrint.X.(*ast.VarExpr).Distance)

	outerPrint := prog.Stmts[2].(*ast.PrintStmt)
	require.True(t, outerPrint.X.(*ast.VarExpr).IsGlobal())
}

func TestResolveClosureCapturesEnclosingFunctionScope(t *testing.T) {
	prog, errs := resolve(t, `fun make() { var n = 0; fun inc() { n = n + 1; return n; } return inc; }`)
	require.Empty(t, errs)

	makeFn := prog.Stmts[0].(*ast.FunDeclStmt)
	incFn := makeFn.Body.Stmts[1].(*ast.FunDeclStmt)
	assign := incFn.Body.Stmts[0].(*ast.ExprStmt).X.(*ast.AssignExpr)
	require.Equal(t, 1, assign.Distance)
}

func TestResolveSelfReferentialInitializerIsAnError(t *testing.T) {
	_, errs := resolve(t, `var a = 1; { var a = a; }`)
	require.Len(t, errs, 1)
}

func TestResolveFunctionParamsAreLocal(t *testing.T) {
	prog, errs := resolve(t, `fun id(x) { return x; }`)
	require.Empty(t, errs)

	fn := prog.Stmts[0].(*ast.FunDeclStmt)
	ret := fn.Body.Stmts[0].(*ast.ReturnStmt)
	require.Equal(t, 0, ret.X.(*ast.VarExpr).Distance)
}
