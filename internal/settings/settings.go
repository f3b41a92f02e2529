// Package settings defines the caller-supplied configuration mapping and its
// normalizer. Settings cover compiler-option-like fields and tool-specific
// fields; arbitrary additional keys are permitted and passed through to
// option conversion untouched.
package settings

import (
	"github.com/Yugloocamai/gulp-typescript/internal/compiler"
)

// Settings is the raw configuration mapping accepted by the resolution
// pipeline. Callers' maps are never mutated: every normalization step
// operates on a shallow copy.
type Settings map[string]any

// Keys this layer treats specially. Everything else flows through to the
// compiler-option converter.
const (
	// KeyTypescript carries an explicit compiler implementation override.
	// It is always stripped before option conversion.
	KeyTypescript = "typescript"
	// KeyDeclaration is the supported declaration-output flag.
	KeyDeclaration = "declaration"
	// KeyDeclarationFiles is the deprecated alias of KeyDeclaration,
	// migrated silently.
	KeyDeclarationFiles = "declarationFiles"
	// KeyNoExternalResolve is deprecated and removed after a notice.
	KeyNoExternalResolve = "noExternalResolve"
	// KeySortOutput is deprecated and removed after a notice.
	KeySortOutput = "sortOutput"
	// KeySourceRoot is unsupported here and only triggers an advisory.
	KeySourceRoot = "sourceRoot"
	// KeyLocale selects the compiler's message locale.
	KeyLocale = "locale"
)

// Clone returns a shallow copy of the settings.
func (s Settings) Clone() Settings {
	out := make(Settings, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Compiler extracts the explicit compiler implementation override, if any.
// A value of any other type under the key is ignored.
func (s Settings) Compiler() compiler.Impl {
	impl, _ := s[KeyTypescript].(compiler.Impl)
	return impl
}
