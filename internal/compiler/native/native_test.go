package native

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Yugloocamai/gulp-typescript/internal/compiler"
	"github.com/Yugloocamai/gulp-typescript/internal/diag"
)

func TestConvertOptionsKnownFields(t *testing.T) {
	raw := map[string]any{
		"target":      "ES2015",
		"module":      "commonjs",
		"declaration": true,
		"outDir":      "dist",
		"lib":         []any{"es2015", "dom"},
		"codepage":    float64(65001),
		"customFlag":  "kept",
	}
	opts, diags := Impl{}.ConvertOptions(raw, "/proj", "")
	if len(diags) != 0 {
		t.Fatalf("diags = %v, want none", diags)
	}
	if opts.String("target") != "es2015" {
		t.Fatalf("target = %q, want canonical es2015", opts.String("target"))
	}
	if !opts.Bool("declaration") {
		t.Fatalf("declaration not converted")
	}
	if got := opts.String("outDir"); got != filepath.Join("/proj", "dist") {
		t.Fatalf("outDir = %q, want resolved against base path", got)
	}
	if lib, ok := opts["lib"].([]string); !ok || len(lib) != 2 {
		t.Fatalf("lib = %v, want two entries", opts["lib"])
	}
	if opts["codepage"] != 65001 {
		t.Fatalf("codepage = %v, want 65001", opts["codepage"])
	}
	if opts["customFlag"] != "kept" {
		t.Fatalf("unknown key not passed through")
	}
}

func TestConvertOptionsBadValues(t *testing.T) {
	cases := []struct {
		name string
		raw  map[string]any
		code diag.Code
	}{
		{"bad enum value", map[string]any{"target": "es1999"}, diag.OptBadValue},
		{"empty enum value", map[string]any{"module": ""}, diag.OptNeedsValue},
		{"bool as string", map[string]any{"declaration": "yes"}, diag.OptBadType},
		{"list with non-string", map[string]any{"lib": []any{"dom", 4}}, diag.OptBadType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts, diags := Impl{}.ConvertOptions(tc.raw, "/proj", "")
			if len(diags) != 1 || diags[0].Code != tc.code {
				t.Fatalf("diags = %v, want one %v", diags, tc.code)
			}
			if len(opts) != 0 {
				t.Fatalf("opts = %v, want invalid key skipped", opts)
			}
		})
	}
}

func TestParseConfigContentPrecedence(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "main.ts"), []byte("export {}\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	raw := map[string]any{
		"compilerOptions": map[string]any{"target": "es2020"},
	}
	existing := compiler.CompilerOptions{"target": "es5", "removeComments": true}
	parsed, diags := Impl{}.ParseConfigContent(raw, dir, existing, filepath.Join(dir, "tsconfig.json"))
	if len(diags) != 0 {
		t.Fatalf("diags = %v, want none", diags)
	}
	if parsed.Options.String("target") != "es2020" {
		t.Fatalf("target = %q, want file value es2020", parsed.Options.String("target"))
	}
	if !parsed.Options.Bool("removeComments") {
		t.Fatalf("baseline removeComments lost")
	}
	if len(parsed.FileNames) != 1 || !strings.HasSuffix(parsed.FileNames[0], "main.ts") {
		t.Fatalf("FileNames = %v, want the one source file", parsed.FileNames)
	}
	if existing.String("target") != "es5" {
		t.Fatalf("baseline mutated during parse")
	}
}

func TestParseConfigContentBaselineWinsWhenFileSilent(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "main.ts"), []byte("export {}\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	existing := compiler.CompilerOptions{"target": "es2017"}
	parsed, _ := Impl{}.ParseConfigContent(map[string]any{}, dir, existing, filepath.Join(dir, "tsconfig.json"))
	if parsed.Options.String("target") != "es2017" {
		t.Fatalf("target = %q, want baseline es2017", parsed.Options.String("target"))
	}
}

func TestFormatDiagnostic(t *testing.T) {
	d := diag.Errorf(diag.CfgParseError, diag.PhaseProjectFile, "invalid project file content")
	d.File = "tsconfig.json"
	d.Pos = diag.Pos{Line: 3, Col: 7}
	d = d.WithNote("check for a trailing comma")
	got := Impl{}.FormatDiagnostic(d)
	want := "tsconfig.json(3,7): error CFG2001: invalid project file content\n  check for a trailing comma"
	if got != want {
		t.Fatalf("FormatDiagnostic = %q, want %q", got, want)
	}
}
