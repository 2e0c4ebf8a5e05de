// Package values defines the runtime value model — a small closed set of
// tagged variants — and the lexical Environment that binds names to them.
package values

import (
	"fmt"
	"strconv"

	"github.com/mna/loxwalk/lang/ast"
)

// Value is any runtime value the interpreter can produce or operate on.
type Value interface {
	// String returns the value's print representation, exactly what a
	// "print" statement writes for it.
	String() string

	// Type names the value's dynamic type, used in diagnostic messages.
	Type() string
}

// Truthy reports whether v counts as true for an "assert" statement:
// everything except Nil and Boolean(false). "if", "while" and "!" do not use
// it; they require a Boolean.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case NilType:
		return false
	case Boolean:
		return bool(v)
	default:
		return true
	}
}

// Equal implements the language's structural equality for "==" and "!=":
// values of different dynamic types are never equal, and a function is
// never equal to anything, itself included.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case NilType:
		_, ok := b.(NilType)
		return ok
	case Boolean:
		bb, ok := b.(Boolean)
		return ok && a == bb
	case Number:
		bb, ok := b.(Number)
		return ok && a == bb
	case String:
		bb, ok := b.(String)
		return ok && a == bb
	default:
		// functions compare unequal to everything, identity is not exposed
		return false
	}
}

// NilType is the type of the "nil" literal. Its only legal value is Nil.
type NilType struct{}

// Nil is the sole NilType value.
var Nil = NilType{}

func (NilType) String() string { return "<nil>" }
func (NilType) Type() string   { return "nil" }

// Boolean is a true/false value.
type Boolean bool

func (b Boolean) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (Boolean) Type() string { return "boolean" }

// Number is a double-precision floating point value, the language's only
// numeric type.
type Number float64

func (n Number) String() string { return strconv.FormatFloat(float64(n), 'g', -1, 64) }
func (Number) Type() string     { return "number" }

// String is a text value. The language performs no escape processing, so a
// String's content is exactly what the scanner read between the quotes.
type String string

func (s String) String() string { return string(s) }
func (String) Type() string     { return "string" }

// NativeFunction is a function implemented in Go and installed into the root
// environment before a program runs (see interp.InstallBuiltins).
type NativeFunction struct {
	Name  string
	Arity int
	Fn    func(args []Value) (Value, error)
}

func (f *NativeFunction) String() string { return fmt.Sprintf("<fun %s (native)>", f.Name) }
func (*NativeFunction) Type() string     { return "native function" }

// UserFunction is a function defined by a "fun" declaration or expression.
// Closure is a handle to the environment captured at the point of
// definition, shared (not copied) so later mutations in that environment
// remain visible — this is what makes closures and recursion through a
// function's own binding work.
type UserFunction struct {
	Name    string
	Params  []*ast.Param
	Body    *ast.BlockStmt
	Closure *Environment
}

func (f *UserFunction) String() string { return fmt.Sprintf("<fun %s (user)>", f.Name) }
func (*UserFunction) Type() string     { return "function" }

// Arity reports the number of parameters f expects.
func (f *UserFunction) Arity() int { return len(f.Params) }
