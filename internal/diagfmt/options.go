// Package diagfmt renders resolution diagnostics. The Bridge is the default
// formatting/reporting collaborator: it decodes each diagnostic through the
// bound compiler implementation and writes the result, suppressing and
// deduplicating nothing.
package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto keeps paths exactly as recorded.
	PathModeAuto PathMode = iota
	// PathModeRelative rewrites paths relative to the working directory.
	PathModeRelative
	// PathModeBasename keeps only the file name.
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	PathMode  PathMode
	Width     int // maximum line width, 0 = unlimited
	ShowNotes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool
	IncludeNotes     bool
}
