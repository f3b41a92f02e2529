package diagfmt

import (
	"io"
	"os"

	"github.com/Yugloocamai/gulp-typescript/internal/compiler"
	"github.com/Yugloocamai/gulp-typescript/internal/diag"
)

// Bridge forwards diagnostics to a writer through the bound compiler
// implementation. It implements diag.Reporter so phases can stream into it
// directly.
type Bridge struct {
	W    io.Writer
	Impl compiler.Impl
	Opts PrettyOpts
}

// NewBridge constructs the default reporting collaborator for impl: pretty
// output with notes to stderr.
func NewBridge(impl compiler.Impl) *Bridge {
	return &Bridge{
		W:    os.Stderr,
		Impl: impl,
		Opts: PrettyOpts{ShowNotes: true},
	}
}

func (b *Bridge) Report(d diag.Diagnostic) {
	if b == nil || b.W == nil || b.Impl == nil {
		return
	}
	writeOne(b.W, d, b.Impl, b.Opts)
}

// Report renders every diagnostic through the default collaborator for impl.
// Nothing is suppressed or deduplicated: callers may see diagnostics from
// both the settings-conversion phase and the project-file phase.
func Report(diags []diag.Diagnostic, impl compiler.Impl) {
	if len(diags) == 0 {
		return
	}
	b := NewBridge(impl)
	for _, d := range diags {
		b.Report(d)
	}
}
