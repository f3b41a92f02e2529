package tsconfig

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/Yugloocamai/gulp-typescript/internal/diag"
)

var defaultExcludes = []string{
	"node_modules/**",
	"bower_components/**",
	"jspm_packages/**",
}

var sourceExtensions = []string{".ts", ".tsx", ".d.ts"}

// ResolveFileNames resolves the configuration's input file set under dir.
// Explicit files entries are taken as-is; include patterns are matched with
// doublestar semantics and filtered by exclude patterns plus the default
// excludes (package directories and outDir). When neither files nor include
// is present the whole directory is included. An empty result is reported
// as a diagnostic, not an error.
func ResolveFileNames(e Expanded, dir, outDir, configPath string) ([]string, []diag.Diagnostic) {
	var diags []diag.Diagnostic
	var names []string

	for _, f := range e.Files {
		names = append(names, filepath.Join(dir, filepath.FromSlash(f)))
	}

	includes := e.Include
	if !e.HasFiles && !e.HasInclude {
		includes = []string{"**/*"}
	}

	excludes := append([]string{}, e.Exclude...)
	excludes = append(excludes, defaultExcludes...)
	if outDir != "" {
		excludes = append(excludes, strings.TrimSuffix(filepath.ToSlash(outDir), "/")+"/**")
	}

	for _, pattern := range append(includes, excludes...) {
		if !doublestar.ValidatePattern(normalizePattern(pattern)) {
			d := diag.Errorf(diag.CfgBadGlob, diag.PhaseProjectFile, "invalid pattern %q", pattern)
			d.File = configPath
			diags = append(diags, d)
		}
	}

	if len(includes) > 0 {
		matched, matchDiags := matchIncludes(dir, includes, excludes, configPath)
		names = append(names, matched...)
		diags = append(diags, matchDiags...)
	}

	names = dedupSorted(names)
	if len(names) == 0 {
		d := diag.Errorf(diag.CfgNoInputs, diag.PhaseProjectFile,
			"no inputs were found in project file; check the files, include and exclude settings")
		d.File = configPath
		diags = append(diags, d)
	}
	return names, diags
}

func matchIncludes(dir string, includes, excludes []string, configPath string) ([]string, []diag.Diagnostic) {
	var diags []diag.Diagnostic
	fsys := os.DirFS(dir)
	var names []string
	for _, pattern := range includes {
		p := normalizePattern(pattern)
		matches, err := doublestar.Glob(fsys, p, doublestar.WithFilesOnly())
		if err != nil {
			d := diag.Errorf(diag.CfgBadGlob, diag.PhaseProjectFile, "pattern %q: %v", pattern, err)
			d.File = configPath
			diags = append(diags, d)
			continue
		}
		for _, rel := range matches {
			if !hasSourceExtension(rel) || excluded(rel, excludes) {
				continue
			}
			names = append(names, filepath.Join(dir, filepath.FromSlash(rel)))
		}
	}
	return names, diags
}

// normalizePattern widens a directory-style include ("src") to match the
// files beneath it. An entry whose last segment has no wildcard and no
// extension names a directory, not a file.
func normalizePattern(pattern string) string {
	p := strings.TrimSuffix(filepath.ToSlash(pattern), "/")
	base := p[strings.LastIndex(p, "/")+1:]
	if base != "" && !strings.Contains(base, "*") && !strings.Contains(base, ".") {
		return p + "/**/*"
	}
	return p
}

func hasSourceExtension(name string) bool {
	for _, ext := range sourceExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func excluded(rel string, excludes []string) bool {
	for _, pattern := range excludes {
		if doublestar.MatchUnvalidated(normalizePattern(pattern), rel) {
			return true
		}
	}
	return false
}

func dedupSorted(names []string) []string {
	sort.Strings(names)
	out := names[:0]
	var prev string
	for i, n := range names {
		if i == 0 || n != prev {
			out = append(out, n)
		}
		prev = n
	}
	return out
}
