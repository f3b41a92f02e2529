package gulpts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Yugloocamai/gulp-typescript/internal/build"
	"github.com/Yugloocamai/gulp-typescript/internal/compiler"
	"github.com/Yugloocamai/gulp-typescript/internal/diag"
)

type stubReporter struct {
	errors   int
	finishes int
}

func (r *stubReporter) Error(diag.Diagnostic, compiler.Impl) { r.errors++ }
func (r *stubReporter) Finish(build.Results)                 { r.finishes++ }

func setupWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, ".cache"))
	return dir
}

func captureDeprecations(t *testing.T) *strings.Builder {
	t.Helper()
	var sb strings.Builder
	old := deprecationOutput
	deprecationOutput = &sb
	t.Cleanup(func() { deprecationOutput = old })
	return &sb
}

func TestCompileNoArguments(t *testing.T) {
	setupWorkspace(t)
	sb := captureDeprecations(t)

	stream, err := Compile()
	if err != nil {
		t.Fatalf("Compile(): %v", err)
	}
	files, err := stream.Collect()
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("outputs = %d, want none in an empty directory", len(files))
	}
	if sb.Len() != 0 {
		t.Fatalf("no-arg call emitted deprecations: %q", sb.String())
	}
}

func TestCompileSettingsShape(t *testing.T) {
	dir := setupWorkspace(t)
	if err := os.WriteFile(filepath.Join(dir, "main.ts"), []byte("export {}\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	rep := &stubReporter{}
	stream, err := Compile(Settings{"target": "es2015"}, rep)
	if err != nil {
		t.Fatalf("Compile(settings, reporter): %v", err)
	}
	files, err := stream.Collect()
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("outputs = %d, want js + map", len(files))
	}
	if rep.finishes != 1 {
		t.Fatalf("reporter finishes = %d, want 1", rep.finishes)
	}
}

func TestCompileHandleShapeDeprecates(t *testing.T) {
	dir := setupWorkspace(t)
	if err := os.WriteFile(filepath.Join(dir, "main.ts"), []byte("export {}\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	proj, err := NewProject(nil)
	if err != nil {
		t.Fatalf("NewProject: %v", err)
	}

	sb := captureDeprecations(t)
	rep := &stubReporter{}
	stream, err := Compile(proj, rep)
	if err != nil {
		t.Fatalf("Compile(project, reporter): %v", err)
	}
	files, err := stream.Collect()
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("outputs = %d, want the handle's result unchanged", len(files))
	}
	if !strings.Contains(sb.String(), "deprecated") {
		t.Fatalf("handle-first call emitted no deprecation: %q", sb.String())
	}
	if !strings.Contains(sb.String(), "reporter") {
		t.Fatalf("deprecation %q should name the reporter variant", sb.String())
	}
	if rep.finishes != 1 {
		t.Fatalf("reporter finishes = %d, want 1", rep.finishes)
	}
}

func TestCompileThirdArgumentDeprecates(t *testing.T) {
	setupWorkspace(t)
	sb := captureDeprecations(t)

	if _, err := Compile(Settings{}, nil, "legacy-reporter"); err != nil {
		t.Fatalf("Compile with three args: %v", err)
	}
	if !strings.Contains(sb.String(), "second argument") {
		t.Fatalf("three-argument call emitted no reporter-position notice: %q", sb.String())
	}
}

func TestCompilePathShape(t *testing.T) {
	dir := setupWorkspace(t)
	config := filepath.Join(dir, "tsconfig.json")
	content := `{
	// project config
	"compilerOptions": {"target": "es2015"},
	"files": ["main.ts"],
}`
	if err := os.WriteFile(config, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "main.ts"), []byte("export {}\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	stream, err := Compile(config)
	if err != nil {
		t.Fatalf("Compile(path): %v", err)
	}
	files, err := stream.Collect()
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("outputs = %d, want js + map", len(files))
	}
}

func TestNewProjectBindsOneCompiler(t *testing.T) {
	setupWorkspace(t)
	proj, err := NewProject(Settings{"declaration": true})
	if err != nil {
		t.Fatalf("NewProject: %v", err)
	}
	if proj.Impl == nil {
		t.Fatalf("no compiler implementation bound")
	}
	if !proj.Options.Bool("sourceMap") || proj.Options.Has("sourceRoot") {
		t.Fatalf("forced output options not applied: %v", proj.Options)
	}
}
