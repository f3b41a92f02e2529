package compiler

import (
	"github.com/Yugloocamai/gulp-typescript/internal/diag"
)

// Impl is the slice of a TypeScript compiler implementation the resolution
// pipeline consumes. Exactly one Impl is bound per resolved configuration;
// it is resolved once and never re-resolved.
type Impl interface {
	// Name identifies the implementation (e.g. "native").
	Name() string
	// Version is the implementation's version string.
	Version() string
	// ConvertOptions converts raw settings-derived fields into compiler
	// options, resolving relative paths against basePath. Conversion
	// problems are returned as diagnostics; the returned options always
	// hold best-effort values (defaults where a field could not be
	// determined).
	ConvertOptions(raw map[string]any, basePath, configFileName string) (CompilerOptions, []diag.Diagnostic)
	// ParseConfigContent fully resolves parsed project-file content (its
	// own options, any extended base configs, include/exclude globs) using
	// existing as the option baseline to override. Values present in the
	// file win per key.
	ParseConfigContent(raw map[string]any, basePath string, existing CompilerOptions, configFileName string) (ParsedConfig, []diag.Diagnostic)
	// FormatDiagnostic decodes a diagnostic into display text.
	FormatDiagnostic(d diag.Diagnostic) string
}
