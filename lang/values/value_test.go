package values_test

import (
	"testing"

	"github.com/mna/loxwalk/lang/values"
	"github.com/stretchr/testify/require"
)

func TestTruthy(t *testing.T) {
	require.False(t, values.Truthy(values.Nil))
	require.False(t, values.Truthy(values.Boolean(false)))
	require.True(t, values.Truthy(values.Boolean(true)))
	require.True(t, values.Truthy(values.Number(0)))
	require.True(t, values.Truthy(values.String("")))
}

func TestPrintRepr(t *testing.T) {
	require.Equal(t, "<nil>", values.Nil.String())
	require.Equal(t, "true", values.Boolean(true).String())
	require.Equal(t, "false", values.Boolean(false).String())
	require.Equal(t, "3.5", values.Number(3.5).String())
	require.Equal(t, "hi", values.String("hi").String())
}

func TestEqual(t *testing.T) {
	require.True(t, values.Equal(values.Number(1), values.Number(1)))
	require.False(t, values.Equal(values.Number(1), values.String("1")))
	require.True(t, values.Equal(values.Nil, values.Nil))
}

func TestEnvironmentDefineAndGet(t *testing.T) {
	root := values.NewRoot()
	root.Define("x", values.Number(1))

	v, ok := root.Get("x")
	require.True(t, ok)
	require.Equal(t, values.Number(1), v)

	_, ok = root.Get("y")
	require.False(t, ok)
}

func TestEnvironmentChildSeesParentAndShadows(t *testing.T) {
	root := values.NewRoot()
	root.Define("x", values.Number(1))

	child := values.NewChild(root)
	v, ok := child.Get("x")
	require.True(t, ok)
	require.Equal(t, values.Number(1), v)

	child.Define("x", values.Number(2))
	v, _ = child.Get("x")
	require.Equal(t, values.Number(2), v)

	v, _ = root.Get("x")
	require.Equal(t, values.Number(1), v, "shadowing in child must not mutate parent")
}

func TestEnvironmentAssignMutatesSharedScope(t *testing.T) {
	root := values.NewRoot()
	root.Define("x", values.Number(1))
	child := values.NewChild(root)

	ok := child.Assign("x", values.Number(9))
	require.True(t, ok)

	v, _ := root.Get("x")
	require.Equal(t, values.Number(9), v, "assignment through a child handle must mutate the shared parent scope")
}

func TestEnvironmentAssignUnboundFails(t *testing.T) {
	root := values.NewRoot()
	require.False(t, root.Assign("missing", values.Number(1)))
}

func TestEnvironmentGetAtAndAssignAt(t *testing.T) {
	root := values.NewRoot()
	root.Define("a", values.Number(1))
	child := values.NewChild(root)
	child.Define("b", values.Number(2))

	require.Equal(t, values.Number(2), child.GetAt(0, "b"))
	require.Equal(t, values.Number(1), child.GetAt(1, "a"))

	child.AssignAt(1, "a", values.Number(42))
	v, _ := root.Get("a")
	require.Equal(t, values.Number(42), v)
}
