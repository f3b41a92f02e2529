package diagfmt

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/Yugloocamai/gulp-typescript/internal/compiler"
	"github.com/Yugloocamai/gulp-typescript/internal/diag"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
)

// Pretty writes each diagnostic in display form. The compiler implementation
// decodes diagnostic internals; this layer only applies path rewriting,
// width limits and colour.
func Pretty(w io.Writer, diags []diag.Diagnostic, impl compiler.Impl, opts PrettyOpts) {
	for _, d := range diags {
		writeOne(w, d, impl, opts)
	}
}

func writeOne(w io.Writer, d diag.Diagnostic, impl compiler.Impl, opts PrettyOpts) {
	d.File = rewritePath(d.File, opts.PathMode)
	if !opts.ShowNotes {
		d.Notes = nil
	}
	text := impl.FormatDiagnostic(d)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if opts.Width > 0 && runewidth.StringWidth(line) > opts.Width {
			line = runewidth.Truncate(line, opts.Width, "...")
		}
		if opts.Color && i == 0 {
			line = colorizeSeverity(line, d.Severity)
		}
		io.WriteString(w, line)
		io.WriteString(w, "\n")
	}
}

func colorizeSeverity(line string, sev diag.Severity) string {
	word := strings.ToLower(sev.String())
	painter := infoColor
	switch sev {
	case diag.SevError:
		painter = errorColor
	case diag.SevWarning:
		painter = warningColor
	}
	return strings.Replace(line, word, painter.Sprint(word), 1)
}

func rewritePath(path string, mode PathMode) string {
	if path == "" {
		return path
	}
	switch mode {
	case PathModeRelative:
		cwd, err := os.Getwd()
		if err != nil {
			return path
		}
		rel, err := filepath.Rel(cwd, path)
		if err != nil || strings.HasPrefix(rel, "..") {
			return path
		}
		return rel
	case PathModeBasename:
		return filepath.Base(path)
	}
	return path
}
