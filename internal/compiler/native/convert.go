package native

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Yugloocamai/gulp-typescript/internal/compiler"
	"github.com/Yugloocamai/gulp-typescript/internal/diag"
)

// Accepted values for enum-like options, lowercased canonical form.
var enumFields = map[string][]string{
	"target": {
		"es3", "es5", "es6", "es2015", "es2016", "es2017", "es2018",
		"es2019", "es2020", "es2021", "es2022", "esnext",
	},
	"module": {
		"none", "commonjs", "amd", "umd", "system", "es6", "es2015",
		"es2020", "es2022", "esnext", "node16", "nodenext",
	},
	"moduleResolution": {
		"classic", "node", "node10", "node16", "nodenext", "bundler",
	},
	"jsx": {
		"preserve", "react", "react-native", "react-jsx", "react-jsxdev",
	},
	"newLine": {"crlf", "lf"},
}

var boolFields = map[string]bool{
	"allowNonTsExtensions":          true,
	"declaration":                   true,
	"experimentalDecorators":        true,
	"inlineSourceMap":               true,
	"inlineSources":                 true,
	"isolatedModules":               true,
	"noEmitOnError":                 true,
	"noImplicitAny":                 true,
	"noLib":                         true,
	"noLibCheck":                    true,
	"noResolve":                     true,
	"preserveConstEnums":            true,
	"removeComments":                true,
	"sourceMap":                     true,
	"strict":                        true,
	"suppressImplicitAnyIndexErrors": true,
	"suppressOutputPathCheck":       true,
}

var pathFields = map[string]bool{
	"mapRoot":    true,
	"out":        true,
	"outDir":     true,
	"outFile":    true,
	"rootDir":    true,
	"sourceRoot": true,
}

var stringFields = map[string]bool{
	"charset": true,
	"locale":  true,
}

var listFields = map[string]bool{
	"lib":      true,
	"rootDirs": true,
	"types":    true,
}

// ConvertOptions converts raw settings-derived fields into compiler options.
// Only keys present in raw appear in the result: a present-but-invalid value
// yields a diagnostic and the key is skipped, leaving whatever the baseline
// or compiler default provides. Unknown keys pass through untouched.
func (Impl) ConvertOptions(raw map[string]any, basePath, configFileName string) (compiler.CompilerOptions, []diag.Diagnostic) {
	opts := make(compiler.CompilerOptions, len(raw))
	var diags []diag.Diagnostic

	report := func(d diag.Diagnostic) {
		d.File = configFileName
		diags = append(diags, d)
	}

	for key, value := range raw {
		switch {
		case enumFields[key] != nil:
			s, ok := value.(string)
			if !ok {
				report(diag.Errorf(diag.OptBadType, diag.PhaseSettings,
					"compiler option %q requires a value of type string", key))
				continue
			}
			if s == "" {
				report(diag.Errorf(diag.OptNeedsValue, diag.PhaseSettings,
					"compiler option %q expects an argument", key))
				continue
			}
			canon := strings.ToLower(s)
			if !contains(enumFields[key], canon) {
				report(diag.Errorf(diag.OptBadValue, diag.PhaseSettings,
					"argument for %q option must be one of: %s", key, quotedList(enumFields[key])))
				continue
			}
			opts[key] = canon

		case boolFields[key]:
			b, ok := value.(bool)
			if !ok {
				report(diag.Errorf(diag.OptBadType, diag.PhaseSettings,
					"compiler option %q requires a value of type boolean", key))
				continue
			}
			opts[key] = b

		case pathFields[key]:
			s, ok := value.(string)
			if !ok {
				report(diag.Errorf(diag.OptBadType, diag.PhaseSettings,
					"compiler option %q requires a value of type string", key))
				continue
			}
			if !filepath.IsAbs(s) {
				s = filepath.Join(basePath, filepath.FromSlash(s))
			}
			opts[key] = s

		case stringFields[key]:
			s, ok := value.(string)
			if !ok {
				report(diag.Errorf(diag.OptBadType, diag.PhaseSettings,
					"compiler option %q requires a value of type string", key))
				continue
			}
			opts[key] = s

		case listFields[key]:
			items, ok := toStringList(value)
			if !ok {
				report(diag.Errorf(diag.OptBadType, diag.PhaseSettings,
					"compiler option %q requires a list of strings", key))
				continue
			}
			opts[key] = items

		case key == "codepage":
			switch n := value.(type) {
			case float64:
				opts[key] = int(n)
			case int:
				opts[key] = n
			default:
				report(diag.Errorf(diag.OptBadType, diag.PhaseSettings,
					"compiler option %q requires a value of type number", key))
			}

		default:
			opts[key] = value
		}
	}
	return opts, diags
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func quotedList(values []string) string {
	sorted := append([]string{}, values...)
	sort.Strings(sorted)
	quoted := make([]string, len(sorted))
	for i, v := range sorted {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}

func toStringList(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return append([]string{}, v...), true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}
