// Package tsconfig loads and resolves on-disk project-configuration files:
// JSONC parsing, extends chains, and include/exclude glob resolution.
package tsconfig

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/Yugloocamai/gulp-typescript/internal/diag"
)

// Load reads path and parses it as JSONC (comments and trailing commas are
// valid in project-configuration files). Failures are returned as a
// diagnostic, never an error: the caller continues with the returned empty
// raw config.
func Load(path string) (map[string]any, []diag.Diagnostic) {
	data, err := os.ReadFile(path)
	if err != nil {
		code := diag.IOReadFailed
		if errors.Is(err, os.ErrNotExist) {
			code = diag.IOFileNotFound
		}
		d := diag.Errorf(code, diag.PhaseFileRead, "cannot read project file: %v", err)
		d.File = path
		return map[string]any{}, []diag.Diagnostic{d}
	}
	return Parse(data, path)
}

// Parse parses raw JSONC content. A parse failure yields a diagnostic and an
// empty config.
func Parse(data []byte, path string) (map[string]any, []diag.Diagnostic) {
	var raw map[string]any
	if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
		d := diag.Errorf(diag.CfgParseError, diag.PhaseProjectFile, "invalid project file content: %v", err)
		d.File = path
		return map[string]any{}, []diag.Diagnostic{d}
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, nil
}
