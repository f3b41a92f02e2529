package tsconfig

import (
	"path/filepath"

	"github.com/Yugloocamai/gulp-typescript/internal/diag"
)

// Expanded is a project-file configuration with its extends chain folded in.
// Presence flags distinguish "absent" from "present and empty": a child
// config that sets files or include replaces the base's list entirely.
type Expanded struct {
	CompilerOptions map[string]any
	Files           []string
	Include         []string
	Exclude         []string
	HasFiles        bool
	HasInclude      bool
	HasExclude      bool
}

// Expand folds the extends chain rooted at raw (a config located in dir,
// loaded from configPath) into one configuration. Derived configs win over
// their bases per key. A missing or cyclic base is reported as a diagnostic
// and skipped; expansion continues with what could be resolved.
func Expand(raw map[string]any, dir, configPath string) (Expanded, []diag.Diagnostic) {
	seen := map[string]bool{}
	if abs, err := filepath.Abs(configPath); err == nil {
		seen[abs] = true
	}
	return expand(raw, dir, configPath, seen)
}

func expand(raw map[string]any, dir, configPath string, seen map[string]bool) (Expanded, []diag.Diagnostic) {
	var diags []diag.Diagnostic
	out := fromRaw(raw)

	ref, ok := raw["extends"].(string)
	if !ok || ref == "" {
		return out, diags
	}

	basePath := resolveExtendsPath(dir, ref)
	abs, err := filepath.Abs(basePath)
	if err != nil {
		abs = basePath
	}
	if seen[abs] {
		d := diag.Errorf(diag.CfgExtendsCycle, diag.PhaseProjectFile,
			"circular extends chain via %q", ref)
		d.File = configPath
		return out, append(diags, d)
	}
	seen[abs] = true

	baseRaw, loadDiags := Load(basePath)
	for i := range loadDiags {
		loadDiags[i].Code = diag.CfgExtendsMissing
		loadDiags[i].File = configPath
		loadDiags[i].Message = "extended configuration " + ref + ": " + loadDiags[i].Message
	}
	diags = append(diags, loadDiags...)
	if len(loadDiags) > 0 {
		return out, diags
	}

	base, baseDiags := expand(baseRaw, filepath.Dir(basePath), basePath, seen)
	diags = append(diags, baseDiags...)
	return overlay(base, out), diags
}

func fromRaw(raw map[string]any) Expanded {
	var out Expanded
	if opts, ok := raw["compilerOptions"].(map[string]any); ok {
		out.CompilerOptions = opts
	} else {
		out.CompilerOptions = map[string]any{}
	}
	out.Files, out.HasFiles = stringList(raw, "files")
	out.Include, out.HasInclude = stringList(raw, "include")
	out.Exclude, out.HasExclude = stringList(raw, "exclude")
	return out
}

// overlay applies the derived config on top of its base. Option keys merge
// per key; file lists replace wholesale when present in the derived config.
func overlay(base, derived Expanded) Expanded {
	out := base
	merged := make(map[string]any, len(base.CompilerOptions)+len(derived.CompilerOptions))
	for k, v := range base.CompilerOptions {
		merged[k] = v
	}
	for k, v := range derived.CompilerOptions {
		merged[k] = v
	}
	out.CompilerOptions = merged
	if derived.HasFiles {
		out.Files, out.HasFiles = derived.Files, true
	}
	if derived.HasInclude {
		out.Include, out.HasInclude = derived.Include, true
	}
	if derived.HasExclude {
		out.Exclude, out.HasExclude = derived.Exclude, true
	}
	return out
}

func resolveExtendsPath(dir, ref string) string {
	p := ref
	if !filepath.IsAbs(p) {
		p = filepath.Join(dir, filepath.FromSlash(ref))
	}
	if filepath.Ext(p) == "" {
		p += ".json"
	}
	return p
}

func stringList(raw map[string]any, key string) ([]string, bool) {
	v, ok := raw[key]
	if !ok {
		return nil, false
	}
	items, ok := v.([]any)
	if !ok {
		return nil, true
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out, true
}
