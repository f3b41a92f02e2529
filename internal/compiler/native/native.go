// Package native provides the bundled default compiler implementation.
// It covers exactly the slice of a TypeScript compiler the resolution layer
// consumes: option conversion, project-file content resolution, and
// diagnostic formatting. Importing the package registers it as the default
// implementation tried when no explicit override is supplied.
package native

import (
	"fmt"
	"strings"

	"github.com/Yugloocamai/gulp-typescript/internal/compiler"
	"github.com/Yugloocamai/gulp-typescript/internal/diag"
)

const implVersion = "5.4.2-native"

// Impl is the bundled implementation. The zero value is ready to use.
type Impl struct{}

func init() {
	compiler.SetDefault(Impl{})
}

func (Impl) Name() string    { return "native" }
func (Impl) Version() string { return implVersion }

// FormatDiagnostic renders one diagnostic as a single display block:
// an optional file(line,col) prefix, severity, stable code id, the message,
// then indented notes.
func (Impl) FormatDiagnostic(d diag.Diagnostic) string {
	var b strings.Builder
	if d.File != "" {
		b.WriteString(d.File)
		if d.Pos.Line > 0 {
			fmt.Fprintf(&b, "(%d,%d)", d.Pos.Line, d.Pos.Col)
		}
		b.WriteString(": ")
	}
	fmt.Fprintf(&b, "%s %s: %s", strings.ToLower(d.Severity.String()), d.Code.ID(), d.Message)
	for _, n := range d.Notes {
		b.WriteString("\n  ")
		b.WriteString(n.Msg)
	}
	return b.String()
}
