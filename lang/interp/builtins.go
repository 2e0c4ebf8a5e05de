package interp

import (
	"time"

	"github.com/mna/loxwalk/lang/values"
)

// InstallBuiltins defines every native function the language exposes into
// env. Called once, on a fresh root environment, before a program runs.
func InstallBuiltins(env *values.Environment) {
	env.Define("clock", &values.NativeFunction{
		Name:  "clock",
		Arity: 0,
		Fn: func(args []values.Value) (values.Value, error) {
			return values.Number(time.Now().UnixMilli()), nil
		},
	})
}
