package diag_test

import (
	"testing"

	"github.com/mna/loxwalk/lang/diag"
	"github.com/mna/loxwalk/lang/token"
	"github.com/stretchr/testify/require"
)

func TestListSort(t *testing.T) {
	var l diag.List
	l.Add(diag.TypeMismatch, token.MakeSpan(10, 12), "bad operand")
	l.Add(diag.IdentifierNotFound, token.MakeSpan(1, 4), "undefined: %s", "x")
	l.Sort()
	require.Equal(t, token.Pos(1), l[0].Span.Start)
	require.Equal(t, token.Pos(10), l[1].Span.Start)
}

func TestListErr(t *testing.T) {
	var l diag.List
	require.NoError(t, l.Err())
	l.Add(diag.Assert, token.Span{}, "assertion failed")
	require.Error(t, l.Err())
}

func TestKindRuntime(t *testing.T) {
	require.True(t, diag.TypeMismatch.Runtime())
	require.True(t, diag.Assert.Runtime())
	require.False(t, diag.Parse.Runtime())
	require.False(t, diag.Resolve.Runtime())
}

func TestDiagnosticError(t *testing.T) {
	d := &diag.Diagnostic{Kind: diag.NotCallable, Span: token.MakeSpan(2, 5), Message: "x is not callable"}
	require.Contains(t, d.Error(), "not callable")
	require.Contains(t, d.Error(), "x is not callable")
}

func TestRenderSimple(t *testing.T) {
	d := &diag.Diagnostic{Kind: diag.TypeMismatch, Span: token.MakeSpan(4, 5), Message: "bad operand"}
	require.Equal(t, "runtime error: bad operand", diag.Render([]byte("var x;"), d, true))
}

func TestRenderWithCaret(t *testing.T) {
	src := []byte("print 1 + nil;")
	d := &diag.Diagnostic{Kind: diag.TypeMismatch, Span: token.MakeSpan(10, 13), Message: "'+' requires two numbers or two strings"}
	out := diag.Render(src, d, false)
	require.Contains(t, out, "runtime error:")
	require.Contains(t, out, "print 1 + nil;")
	require.Contains(t, out, "^^^")
}
