package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.toml")
	data := `# build settings
target = "es2015"
declaration = true
outDir = "dist"
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write settings.toml: %v", err)
	}
	s, err := loadSettingsFile(path)
	if err != nil {
		t.Fatalf("loadSettingsFile: %v", err)
	}
	if s["target"] != "es2015" {
		t.Fatalf("target = %v, want es2015", s["target"])
	}
	if s["declaration"] != true {
		t.Fatalf("declaration = %v, want true", s["declaration"])
	}
}

func TestLoadSettingsFileEmptyPath(t *testing.T) {
	s, err := loadSettingsFile("")
	if err != nil || s != nil {
		t.Fatalf("loadSettingsFile(\"\") = %v, %v, want nil, nil", s, err)
	}
}

func TestLoadSettingsFileBadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.toml")
	if err := os.WriteFile(path, []byte("target = \n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := loadSettingsFile(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
