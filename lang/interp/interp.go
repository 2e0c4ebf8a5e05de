// Package interp implements the tree-walking evaluator that consumes a
// resolved AST and an environment chain and produces either an observable
// side effect (stdout writes) or a diagnostic.
package interp

import (
	"fmt"
	"io"
	"math"

	"github.com/mna/loxwalk/lang/ast"
	"github.com/mna/loxwalk/lang/diag"
	"github.com/mna/loxwalk/lang/token"
	"github.com/mna/loxwalk/lang/values"
)

// Interpreter holds the state shared across a single program run: the root
// (global) environment and the configured recursion guard.
type Interpreter struct {
	Globals *values.Environment
	Stdout  io.Writer

	// MaxCallDepth caps the number of nested UserFunction calls; 0 means
	// unlimited. See internal/config and the REDESIGN FLAGS entry in
	// SPEC_FULL.md: Go has no catchable stack-overflow error, so unbounded
	// recursion is turned into a diagnostic before the Go stack is exhausted.
	MaxCallDepth int

	depth int
}

// New returns an Interpreter with a fresh root environment populated with
// the built-in functions of §4.6, writing "print" output to stdout.
func New(stdout io.Writer, maxCallDepth int) *Interpreter {
	it := &Interpreter{Globals: values.NewRoot(), Stdout: stdout, MaxCallDepth: maxCallDepth}
	InstallBuiltins(it.Globals)
	return it
}

// returnSignal is the non-local control-flow value produced by a Return
// statement. It is never exposed through the error channel: execStmt carries
// it as an explicit first result, next to the diagnostic, consumed only at a
// function call boundary. See REDESIGN FLAGS in SPEC_FULL.md for why this is not modeled
// as an error.
type returnSignal struct{ value values.Value }

// Run executes every top-level statement of prog in the interpreter's
// global environment, in order, stopping at the first diagnostic.
func (it *Interpreter) Run(prog *ast.Program) *diag.Diagnostic {
	for _, stmt := range prog.Stmts {
		if _, d := it.execStmt(stmt, it.Globals); d != nil {
			return d
		}
	}
	return nil
}

func (it *Interpreter) execStmt(s ast.Stmt, env *values.Environment) (*returnSignal, *diag.Diagnostic) {
	switch s := s.(type) {
	case *ast.EmptyStmt:
		return nil, nil

	case *ast.ExprStmt:
		_, d := it.evalExpr(s.X, env)
		return nil, d

	case *ast.PrintStmt:
		v, d := it.evalExpr(s.X, env)
		if d != nil {
			return nil, d
		}
		fmt.Fprintln(it.Stdout, v.String())
		return nil, nil

	case *ast.AssertStmt:
		v, d := it.evalExpr(s.X, env)
		if d != nil {
			return nil, d
		}
		if !values.Truthy(v) {
			return nil, &diag.Diagnostic{Kind: diag.Assert, Span: s.X.Span(), Message: "assertion failed"}
		}
		return nil, nil

	case *ast.VarDeclStmt:
		v, d := it.evalExpr(s.Init, env)
		if d != nil {
			return nil, d
		}
		env.Define(s.Name, v)
		return nil, nil

	case *ast.FunDeclStmt:
		fn := &values.UserFunction{Name: s.Name, Params: s.Params, Body: s.Body, Closure: env}
		env.Define(s.Name, fn)
		return nil, nil

	case *ast.ReturnStmt:
		v := values.Value(values.Nil)
		if s.X != nil {
			var d *diag.Diagnostic
			v, d = it.evalExpr(s.X, env)
			if d != nil {
				return nil, d
			}
		}
		return &returnSignal{value: v}, nil

	case *ast.BlockStmt:
		return it.execBlock(s.Stmts, values.NewChild(env))

	case *ast.IfStmt:
		cond, d := it.evalExpr(s.Cond, env)
		if d != nil {
			return nil, d
		}
		b, ok := cond.(values.Boolean)
		if !ok {
			return nil, typeMismatch(s.Cond.Span(), "if condition must be a boolean, got %s", cond.Type())
		}
		if b {
			return it.execStmt(s.Then, env)
		}
		if s.Else != nil {
			return it.execStmt(s.Else, env)
		}
		return nil, nil

	case *ast.WhileStmt:
		for {
			cond, d := it.evalExpr(s.Cond, env)
			if d != nil {
				return nil, d
			}
			b, ok := cond.(values.Boolean)
			if !ok {
				return nil, typeMismatch(s.Cond.Span(), "while condition must be a boolean, got %s", cond.Type())
			}
			if !b {
				return nil, nil
			}
			if ret, d := it.execStmt(s.Body, env); ret != nil || d != nil {
				return ret, d
			}
		}

	default:
		panic(fmt.Sprintf("interp: unhandled statement type %T", s))
	}
}

// execBlock runs stmts in env (env is already the block's own child scope)
// and propagates the first non-local signal, whether a Return or a
// diagnostic, to the caller.
func (it *Interpreter) execBlock(stmts []ast.Stmt, env *values.Environment) (*returnSignal, *diag.Diagnostic) {
	for _, stmt := range stmts {
		if ret, d := it.execStmt(stmt, env); ret != nil || d != nil {
			return ret, d
		}
	}
	return nil, nil
}

func (it *Interpreter) evalExpr(e ast.Expr, env *values.Environment) (values.Value, *diag.Diagnostic) {
	switch e := e.(type) {
	case *ast.NilExpr:
		return values.Nil, nil
	case *ast.NumberExpr:
		return values.Number(e.Val), nil
	case *ast.BoolExpr:
		return values.Boolean(e.Val), nil
	case *ast.StringExpr:
		return values.String(e.Val), nil

	case *ast.VarExpr:
		if !e.IsGlobal() {
			return env.GetAt(e.Distance, e.Name), nil
		}
		v, ok := it.Globals.Get(e.Name)
		if !ok {
			return nil, &diag.Diagnostic{Kind: diag.IdentifierNotFound, Span: e.Span(), Message: fmt.Sprintf("undefined variable %q", e.Name)}
		}
		return v, nil

	case *ast.AssignExpr:
		v, d := it.evalExpr(e.RHS, env)
		if d != nil {
			return nil, d
		}
		if !e.IsGlobal() {
			env.AssignAt(e.Distance, e.Name, v)
			return v, nil
		}
		if !it.Globals.Assign(e.Name, v) {
			return nil, &diag.Diagnostic{Kind: diag.IdentifierNotFound, Span: e.Span(), Message: fmt.Sprintf("undefined variable %q", e.Name)}
		}
		return v, nil

	case *ast.UnaryExpr:
		return it.evalUnary(e, env)

	case *ast.BinaryExpr:
		return it.evalBinary(e, env)

	case *ast.CallExpr:
		return it.evalCall(e, env)

	case *ast.FunExpr:
		name := fmt.Sprintf("<anon@%d>", e.FunPos)
		return &values.UserFunction{Name: name, Params: e.Params, Body: e.Body, Closure: env}, nil

	default:
		panic(fmt.Sprintf("interp: unhandled expression type %T", e))
	}
}

func (it *Interpreter) evalUnary(e *ast.UnaryExpr, env *values.Environment) (values.Value, *diag.Diagnostic) {
	v, d := it.evalExpr(e.Operand, env)
	if d != nil {
		return nil, d
	}
	switch e.Op {
	case token.MINUS:
		n, ok := v.(values.Number)
		if !ok {
			return nil, typeMismatch(e.Operand.Span(), "operand of unary '-' must be a number, got %s", v.Type())
		}
		return -n, nil
	case token.BANG:
		b, ok := v.(values.Boolean)
		if !ok {
			return nil, typeMismatch(e.Operand.Span(), "operand of '!' must be a boolean, got %s", v.Type())
		}
		return !b, nil
	default:
		panic("interp: unhandled unary operator")
	}
}

func (it *Interpreter) evalBinary(e *ast.BinaryExpr, env *values.Environment) (values.Value, *diag.Diagnostic) {
	left, d := it.evalExpr(e.Left, env)
	if d != nil {
		return nil, d
	}
	right, d := it.evalExpr(e.Right, env)
	if d != nil {
		return nil, d
	}

	switch e.Op {
	case token.EQL:
		return values.Boolean(values.Equal(left, right)), nil
	case token.NEQ:
		return values.Boolean(!values.Equal(left, right)), nil
	case token.PLUS:
		if ln, ok := left.(values.Number); ok {
			if rn, ok := right.(values.Number); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(values.String); ok {
			if rs, ok := right.(values.String); ok {
				return ls + rs, nil
			}
		}
		return nil, typeMismatch(e.Right.Span(), "'+' requires two numbers or two strings, got %s and %s", left.Type(), right.Type())
	case token.MINUS, token.STAR, token.SLASH, token.PERCENT:
		ln, lok := left.(values.Number)
		rn, rok := right.(values.Number)
		if !lok || !rok {
			return nil, typeMismatch(e.Right.Span(), "%s requires two numbers, got %s and %s", e.Op.GoString(), left.Type(), right.Type())
		}
		switch e.Op {
		case token.MINUS:
			return ln - rn, nil
		case token.STAR:
			return ln * rn, nil
		case token.SLASH:
			return ln / rn, nil
		default: // token.PERCENT
			return values.Number(math.Mod(float64(ln), float64(rn))), nil
		}
	case token.LT, token.LE, token.GT, token.GE:
		ln, lok := left.(values.Number)
		rn, rok := right.(values.Number)
		if !lok || !rok {
			return nil, typeMismatch(e.Right.Span(), "%s requires two numbers, got %s and %s", e.Op.GoString(), left.Type(), right.Type())
		}
		switch e.Op {
		case token.LT:
			return values.Boolean(ln < rn), nil
		case token.LE:
			return values.Boolean(ln <= rn), nil
		case token.GT:
			return values.Boolean(ln > rn), nil
		default: // token.GE
			return values.Boolean(ln >= rn), nil
		}
	default:
		panic("interp: unhandled binary operator")
	}
}

func (it *Interpreter) evalCall(e *ast.CallExpr, env *values.Environment) (values.Value, *diag.Diagnostic) {
	callee, d := it.evalExpr(e.Callee, env)
	if d != nil {
		return nil, d
	}

	args := make([]values.Value, len(e.Args))
	for i, a := range e.Args {
		v, d := it.evalExpr(a, env)
		if d != nil {
			return nil, d
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case *values.NativeFunction:
		if len(args) != fn.Arity {
			return nil, arityMismatch(e.Callee.Span(), fn.Arity, len(args))
		}
		v, err := fn.Fn(args)
		if err != nil {
			return nil, &diag.Diagnostic{Kind: diag.TypeMismatch, Span: e.Callee.Span(), Message: err.Error()}
		}
		return v, nil

	case *values.UserFunction:
		if len(args) != fn.Arity() {
			return nil, arityMismatch(e.Callee.Span(), fn.Arity(), len(args))
		}
		if it.MaxCallDepth > 0 && it.depth >= it.MaxCallDepth {
			return nil, &diag.Diagnostic{
				Kind:    diag.MaxDepthExceeded,
				Span:    e.Callee.Span(),
				Message: fmt.Sprintf("call depth exceeded configured maximum of %d", it.MaxCallDepth),
			}
		}

		call := values.NewChild(fn.Closure)
		for i, p := range fn.Params {
			call.Define(p.Name, args[i])
		}

		it.depth++
		ret, d := it.execBlock(fn.Body.Stmts, call)
		it.depth--
		if d != nil {
			return nil, d
		}
		if ret != nil {
			return ret.value, nil
		}
		return values.Nil, nil

	default:
		return nil, &diag.Diagnostic{Kind: diag.NotCallable, Span: e.Callee.Span(), Message: fmt.Sprintf("%s is not callable", callee.Type())}
	}
}

func typeMismatch(span token.Span, format string, args ...any) *diag.Diagnostic {
	return &diag.Diagnostic{Kind: diag.TypeMismatch, Span: span, Message: fmt.Sprintf(format, args...)}
}

func arityMismatch(span token.Span, expected, actual int) *diag.Diagnostic {
	return &diag.Diagnostic{
		Kind:    diag.ArityMismatch,
		Span:    span,
		Message: fmt.Sprintf("expected %d argument(s), got %d", expected, actual),
	}
}
