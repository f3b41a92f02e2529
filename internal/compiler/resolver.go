package compiler

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Yugloocamai/gulp-typescript/internal/diag"
)

// ErrNoCompiler is returned when no compiler implementation can be resolved.
var ErrNoCompiler = errors.New("no TypeScript compiler implementation available")

var (
	defaultMu   sync.RWMutex
	defaultImpl Impl
)

// SetDefault registers the implementation returned by the default locate
// strategy. The bundled native implementation registers itself on import.
func SetDefault(impl Impl) {
	defaultMu.Lock()
	defaultImpl = impl
	defaultMu.Unlock()
}

// Default returns the registered default implementation.
func Default() (Impl, error) {
	defaultMu.RLock()
	impl := defaultImpl
	defaultMu.RUnlock()
	if impl == nil {
		return nil, ErrNoCompiler
	}
	return impl, nil
}

// Resolver locates the compiler implementation to bind to a resolved
// configuration. An explicit override always wins; otherwise Locate is
// tried once. A nil Locate falls back to the registered default.
type Resolver struct {
	Locate func() (Impl, error)
}

// Resolve returns the implementation to use. When nothing can be located it
// emits a deprecation-style diagnostic naming the required installation step
// and returns an error wrapping ErrNoCompiler; the pipeline must stop.
func (r *Resolver) Resolve(override Impl, rep diag.Reporter) (Impl, error) {
	if override != nil {
		return override, nil
	}
	locate := Default
	if r != nil && r.Locate != nil {
		locate = r.Locate
	}
	impl, err := locate()
	if err != nil {
		diag.Deprecate(rep, diag.DepCompilerMissing, diag.PhaseEntry, diag.Deprecation{
			Summary: "No TypeScript compiler implementation could be resolved",
			Action:  "provide an implementation through the typescript setting, or link the bundled one",
			Details: "The compiler is no longer bundled implicitly. Pass an implementation " +
				"explicitly in settings, or import the default implementation package so it " +
				"registers itself before resolution runs.",
		})
		return nil, fmt.Errorf("resolve compiler: %w", err)
	}
	if impl == nil {
		return nil, fmt.Errorf("resolve compiler: %w", ErrNoCompiler)
	}
	return impl, nil
}
