package settings

import (
	"testing"

	"github.com/Yugloocamai/gulp-typescript/internal/diag"
)

func TestNormalizeNeverMutatesCaller(t *testing.T) {
	in := Settings{
		KeySortOutput:       true,
		KeyDeclarationFiles: true,
		KeyTypescript:       "placeholder",
	}
	Normalize(in, diag.NopReporter{})
	if _, ok := in[KeySortOutput]; !ok {
		t.Fatalf("caller's sortOutput key removed in place")
	}
	if _, ok := in[KeyDeclarationFiles]; !ok {
		t.Fatalf("caller's declarationFiles key removed in place")
	}
}

func TestNormalizeDeprecatedKeys(t *testing.T) {
	cases := []struct {
		name     string
		key      string
		value    any
		wantCode diag.Code
	}{
		{"noExternalResolve true", KeyNoExternalResolve, true, diag.DepNoExternalResolve},
		{"noExternalResolve false", KeyNoExternalResolve, false, diag.DepNoExternalResolve},
		{"sortOutput", KeySortOutput, true, diag.DepSortOutput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bag := diag.NewBag(4)
			out := Normalize(Settings{tc.key: tc.value}, diag.BagReporter{Bag: bag})
			if _, ok := out[tc.key]; ok {
				t.Fatalf("%s survived normalization", tc.key)
			}
			if bag.Len() != 1 {
				t.Fatalf("diagnostics = %d, want exactly 1", bag.Len())
			}
			if got := bag.Items()[0].Code; got != tc.wantCode {
				t.Fatalf("code = %v, want %v", got, tc.wantCode)
			}
		})
	}
}

func TestNormalizeDeclarationFilesAlias(t *testing.T) {
	bag := diag.NewBag(4)
	out := Normalize(Settings{KeyDeclarationFiles: true}, diag.BagReporter{Bag: bag})
	if v, ok := out[KeyDeclaration].(bool); !ok || !v {
		t.Fatalf("declaration = %v, want true from alias", out[KeyDeclaration])
	}
	if _, ok := out[KeyDeclarationFiles]; ok {
		t.Fatalf("declarationFiles alias forwarded to conversion")
	}
	if bag.Len() != 0 {
		t.Fatalf("alias migration emitted %d diagnostics, want silent", bag.Len())
	}
}

func TestNormalizeSourceRootAdvisory(t *testing.T) {
	bag := diag.NewBag(4)
	out := Normalize(Settings{KeySourceRoot: "/src"}, diag.BagReporter{Bag: bag})
	if bag.Len() != 1 {
		t.Fatalf("diagnostics = %d, want 1 advisory", bag.Len())
	}
	if d := bag.Items()[0]; d.Severity != diag.SevInfo {
		t.Fatalf("severity = %v, want advisory info", d.Severity)
	}
	// Ignored, not migrated: forced normalization drops it later.
	if _, ok := out[KeySourceRoot]; !ok {
		t.Fatalf("sourceRoot should pass through untouched")
	}
}

func TestNormalizeStripsCompilerOverride(t *testing.T) {
	out := Normalize(Settings{KeyTypescript: struct{}{}, "target": "es2015"}, diag.NopReporter{})
	if _, ok := out[KeyTypescript]; ok {
		t.Fatalf("typescript override key reached conversion")
	}
	if out["target"] != "es2015" {
		t.Fatalf("passthrough key lost")
	}
}

func TestNormalizeLocale(t *testing.T) {
	bag := diag.NewBag(4)
	Normalize(Settings{KeyLocale: "not a locale!"}, diag.BagReporter{Bag: bag})
	if bag.Len() != 1 {
		t.Fatalf("diagnostics = %d, want 1 for invalid locale", bag.Len())
	}
	bag2 := diag.NewBag(4)
	Normalize(Settings{KeyLocale: "de-DE"}, diag.BagReporter{Bag: bag2})
	if bag2.Len() != 0 {
		t.Fatalf("valid locale produced %d diagnostics", bag2.Len())
	}
}
