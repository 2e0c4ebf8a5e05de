package interp_test

import (
	"bytes"
	"testing"

	"github.com/mna/loxwalk/lang/interp"
	"github.com/mna/loxwalk/lang/parser"
	"github.com/mna/loxwalk/lang/resolver"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) (string, *interp.Interpreter) {
	t.Helper()
	prog, perrs := parser.Parse([]byte(src))
	require.Empty(t, perrs)
	require.Empty(t, resolver.Resolve(prog))

	var out bytes.Buffer
	it := interp.New(&out, 0)
	d := it.Run(prog)
	require.Nil(t, d, "%v", d)
	return out.String(), it
}

func TestPrintArithmetic(t *testing.T) {
	out, _ := run(t, `print 1 + 2 * 3;`)
	require.Equal(t, "7\n", out)
}

func TestStringConcat(t *testing.T) {
	out, _ := run(t, `print "foo" + "bar";`)
	require.Equal(t, "foobar\n", out)
}

func TestVarAssignmentAndBlockScoping(t *testing.T) {
	out, _ := run(t, `
var x = 1;
{
  var x = 2;
  print x;
}
print x;
`)
	require.Equal(t, "2\n1\n", out)
}

func TestIfRequiresBooleanCondition(t *testing.T) {
	prog, perrs := parser.Parse([]byte(`if (1) { print "no"; }`))
	require.Empty(t, perrs)
	require.Empty(t, resolver.Resolve(prog))

	var out bytes.Buffer
	it := interp.New(&out, 0)
	d := it.Run(prog)
	require.NotNil(t, d)
}

func TestWhileLoop(t *testing.T) {
	out, _ := run(t, `
var i = 0;
while (i < 3) {
  print i;
  i = i + 1;
}
`)
	require.Equal(t, "0\n1\n2\n", out)
}

func TestForDesugarsAndRunsToCompletion(t *testing.T) {
	out, _ := run(t, `
for (var i = 0; i < 3; i = i + 1) {
  print i;
}
`)
	require.Equal(t, "0\n1\n2\n", out)
}

func TestFunctionCallAndReturn(t *testing.T) {
	out, _ := run(t, `
fun add(a, b) { return a + b; }
print add(2, 3);
`)
	require.Equal(t, "5\n", out)
}

func TestClosureCapturesEnclosingVariable(t *testing.T) {
	out, _ := run(t, `
fun counter() {
  var n = 0;
  fun inc() {
    n = n + 1;
    return n;
  }
  return inc;
}
var c = counter();
print c();
print c();
print c();
`)
	require.Equal(t, "1\n2\n3\n", out)
}

func TestAssertFailureIsADiagnostic(t *testing.T) {
	prog, perrs := parser.Parse([]byte(`assert 1 == 2;`))
	require.Empty(t, perrs)
	require.Empty(t, resolver.Resolve(prog))

	var out bytes.Buffer
	it := interp.New(&out, 0)
	d := it.Run(prog)
	require.NotNil(t, d)
}

func TestCallingANonFunctionIsADiagnostic(t *testing.T) {
	prog, perrs := parser.Parse([]byte(`var x = 1; x();`))
	require.Empty(t, perrs)
	require.Empty(t, resolver.Resolve(prog))

	var out bytes.Buffer
	it := interp.New(&out, 0)
	d := it.Run(prog)
	require.NotNil(t, d)
}

func TestArityMismatchIsADiagnostic(t *testing.T) {
	prog, perrs := parser.Parse([]byte(`fun f(a) { return a; } f(1, 2);`))
	require.Empty(t, perrs)
	require.Empty(t, resolver.Resolve(prog))

	var out bytes.Buffer
	it := interp.New(&out, 0)
	d := it.Run(prog)
	require.NotNil(t, d)
}

func TestMaxCallDepthExceeded(t *testing.T) {
	prog, perrs := parser.Parse([]byte(`
fun loop() { return loop(); }
loop();
`))
	require.Empty(t, perrs)
	require.Empty(t, resolver.Resolve(prog))

	var out bytes.Buffer
	it := interp.New(&out, 8)
	d := it.Run(prog)
	require.NotNil(t, d)
}

func TestClockIsANativeFunctionOfArityZero(t *testing.T) {
	out, _ := run(t, `print clock() >= 0;`)
	require.Equal(t, "true\n", out)
}
