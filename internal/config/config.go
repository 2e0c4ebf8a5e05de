// Package config reads the process environment into typed defaults for the
// CLI, grounded on the caarlos0/env/v6 dependency already pulled in
// transitively through mna/mainer.
package config

import "github.com/caarlos0/env/v6"

// Config holds the environment-sourced defaults a CLI invocation falls back
// to when the equivalent flag isn't passed explicitly.
type Config struct {
	// MaxCallDepth caps nested UserFunction calls; 0 means unlimited. See
	// lang/interp.Interpreter.MaxCallDepth and the MaxDepthExceeded
	// diagnostic it produces when the guard trips.
	MaxCallDepth int `env:"LOXWALK_MAX_CALL_DEPTH" envDefault:"0"`

	// SimpleErrors is the default for the "run" command's --simple-errors
	// flag: render diagnostics as a single "error: MESSAGE" line instead of
	// the source-span-annotated form.
	SimpleErrors bool `env:"LOXWALK_SIMPLE_ERRORS" envDefault:"false"`
}

// Load reads Config from the process environment.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}
