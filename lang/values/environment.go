package values

import "github.com/dolthub/swiss"

// Environment is a single lexical scope: a mapping from name to value, plus
// an optional link to the enclosing scope. Scopes are interior-mutable and
// meant to be shared through pointers — a UserFunction's Closure field and
// the interpreter's "current environment" handle may both point at the same
// Environment, and a mutation through either is visible through both. This
// is what closures and recursion through a function's own binding rely on.
type Environment struct {
	vars   *swiss.Map[string, Value]
	parent *Environment
}

// initialScopeSize is a small starting capacity for a scope's binding map;
// scopes are short-lived and rarely hold many names.
const initialScopeSize = 8

// NewRoot returns a new, empty root environment with no enclosing scope.
func NewRoot() *Environment {
	return &Environment{vars: swiss.NewMap[string, Value](initialScopeSize)}
}

// NewChild returns a new environment whose enclosing scope is parent.
func NewChild(parent *Environment) *Environment {
	return &Environment{vars: swiss.NewMap[string, Value](initialScopeSize), parent: parent}
}

// Define binds name to v in e's own scope, shadowing any binding of the same
// name in an enclosing scope.
func (e *Environment) Define(name string, v Value) {
	e.vars.Put(name, v)
}

// Get looks up name by walking from e outward through enclosing scopes. It
// is used only for references the resolver left unresolved (globals).
func (e *Environment) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.vars.Get(name); ok {
			return v, true
		}
	}
	return nil, false
}

// Assign walks from e outward looking for an existing binding of name and
// overwrites it in place. It reports false if name is bound nowhere in the
// chain, leaving the environment unchanged.
func (e *Environment) Assign(name string, v Value) bool {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.vars.Get(name); ok {
			env.vars.Put(name, v)
			return true
		}
	}
	return false
}

// ancestor walks exactly distance links up the enclosing chain. The caller
// must only pass a distance the resolver computed for this exact chain
// shape, so the walk is guaranteed to land on an existing scope.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.parent
	}
	return env
}

// GetAt reads name from the scope exactly distance links up the chain, as
// precomputed by the resolver. It panics if the binding is missing, which
// would indicate a resolver bug rather than a user error.
func (e *Environment) GetAt(distance int, name string) Value {
	v, ok := e.ancestor(distance).vars.Get(name)
	if !ok {
		panic("values: resolver distance points at a scope with no binding for " + name)
	}
	return v
}

// AssignAt writes v to name in the scope exactly distance links up the
// chain, as precomputed by the resolver.
func (e *Environment) AssignAt(distance int, name string, v Value) {
	e.ancestor(distance).vars.Put(name, v)
}
