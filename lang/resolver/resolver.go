// Package resolver performs the static scope resolution pass that runs
// between parsing and interpretation: it walks the AST once, maintaining a
// stack of lexical scopes, and annotates every variable reference and
// assignment with the number of enclosing scopes to walk at runtime to find
// its binding. This lets the interpreter use direct indexed lookups instead
// of a dynamic, name-based walk up the environment chain.
package resolver

import (
	"github.com/mna/loxwalk/lang/ast"
	"github.com/mna/loxwalk/lang/diag"
)

// scope maps a name to whether its initializer has finished evaluating.
// Two phases (declared, then defined) let the resolver catch a variable
// read from within its own initializer, e.g. "var a = a;".
type scope map[string]bool

// Resolve walks prog, annotating every *ast.VarExpr and *ast.AssignExpr with
// its scope distance, and returns every resolve-time diagnostic found,
// sorted by position. Resolution does not stop at an error: the whole
// program is always walked.
func Resolve(prog *ast.Program) diag.List {
	var r resolver
	for _, s := range prog.Stmts {
		r.resolveStmt(s)
	}
	r.errs.Sort()
	return r.errs
}

type resolver struct {
	scopes []scope
	errs   diag.List
}

func (r *resolver) push() { r.scopes = append(r.scopes, scope{}) }
func (r *resolver) pop()  { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *resolver) declare(name string) {
	if len(r.scopes) == 0 {
		return // globals are resolved dynamically, never tracked here
	}
	r.scopes[len(r.scopes)-1][name] = false
}

func (r *resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = true
}

// resolveLocal searches the scope stack innermost-first and returns the
// distance (0 = innermost) at which name is bound, or noDistance if it is
// never locally declared (i.e. it is global).
func (r *resolver) resolveLocal(name string) int {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			return len(r.scopes) - 1 - i
		}
	}
	return -1
}

func (r *resolver) resolveStmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.ExprStmt:
		r.resolveExpr(s.X)
	case *ast.PrintStmt:
		r.resolveExpr(s.X)
	case *ast.AssertStmt:
		r.resolveExpr(s.X)
	case *ast.VarDeclStmt:
		r.declare(s.Name)
		r.resolveExpr(s.Init)
		r.define(s.Name)
	case *ast.FunDeclStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s.Params, s.Body)
	case *ast.ReturnStmt:
		if s.X != nil {
			r.resolveExpr(s.X)
		}
	case *ast.BlockStmt:
		r.push()
		for _, stmt := range s.Stmts {
			r.resolveStmt(stmt)
		}
		r.pop()
	case *ast.IfStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}
	case *ast.WhileStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)
	case *ast.EmptyStmt:
		// nothing to resolve
	}
}

func (r *resolver) resolveFunction(params []*ast.Param, body *ast.BlockStmt) {
	r.push()
	for _, p := range params {
		r.declare(p.Name)
		r.define(p.Name)
	}
	for _, stmt := range body.Stmts {
		r.resolveStmt(stmt)
	}
	r.pop()
}

func (r *resolver) resolveExpr(e ast.Expr) {
	switch e := e.(type) {
	case *ast.VarExpr:
		if r.declaredButNotDefined(e.Name) {
			r.errs.Add(diag.Resolve, e.Span(), "cannot read local variable %q in its own initializer", e.Name)
		}
		e.Distance = r.resolveLocal(e.Name)
	case *ast.AssignExpr:
		r.resolveExpr(e.RHS)
		e.Distance = r.resolveLocal(e.Name)
	case *ast.UnaryExpr:
		r.resolveExpr(e.Operand)
	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.CallExpr:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}
	case *ast.FunExpr:
		r.resolveFunction(e.Params, e.Body)
	case *ast.NilExpr, *ast.NumberExpr, *ast.BoolExpr, *ast.StringExpr:
		// leaves, nothing to resolve
	}
}

// declaredButNotDefined reports whether name is declared but not yet defined
// in the innermost scope, i.e. its initializer is currently being resolved —
// the "var a = a;" case.
func (r *resolver) declaredButNotDefined(name string) bool {
	if len(r.scopes) == 0 {
		return false
	}
	defined, ok := r.scopes[len(r.scopes)-1][name]
	return ok && !defined
}
