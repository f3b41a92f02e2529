package gulpts

import (
	"fmt"
	"io"
	"os"

	"github.com/Yugloocamai/gulp-typescript/internal/diag"
)

// deprecationOutput receives entry-level deprecation notices. These fire
// before a compiler implementation is necessarily bound, so they render
// plainly rather than through the diagnostic bridge.
var deprecationOutput io.Writer = os.Stderr

// inputKind discriminates the recognized call shapes of Compile. It is
// computed once at the boundary so the compatibility shim stays isolated
// from the resolution logic.
type inputKind uint8

const (
	kindSettings inputKind = iota
	kindHandle
	kindPath
)

func classify(arg any) inputKind {
	switch arg.(type) {
	case *Project:
		return kindHandle
	case string:
		return kindPath
	default:
		return kindSettings
	}
}

// Compile is the legacy-compatible entry point. Three call shapes are
// recognized: (*Project, Reporter?) which is deprecated, (Settings?, Reporter?) and
// (projectFilePath, Settings?). Each call performs exactly one project
// invocation and returns its stream unchanged.
func Compile(args ...any) (*Stream, error) {
	if len(args) >= 3 {
		entryDeprecate(diag.DepLegacyReporterArg, diag.Deprecation{
			Summary: "Reporters are now passed as the second argument",
			Action:  "remove the third argument",
			Details: "Filters were removed, so the reporter moved from the third " +
				"argument position to the second.",
		})
	}

	var first any
	if len(args) > 0 {
		first = args[0]
	}

	switch classify(first) {
	case kindHandle:
		proj := first.(*Project)
		if len(args) >= 2 {
			entryDeprecate(diag.DepLegacyHandleCall, diag.Deprecation{
				Summary: "Compile(project, reporter) is deprecated",
				Action:  "invoke the project directly: project.Compile(reporter)",
				Details: "Passing a pre-built project to the entry point is a retired " +
					"calling convention; the handle itself is callable.",
			})
		} else {
			entryDeprecate(diag.DepLegacyHandleCall, diag.Deprecation{
				Summary: "Compile(project) is deprecated",
				Action:  "invoke the project directly: project.Compile(nil)",
				Details: "Passing a pre-built project to the entry point is a retired " +
					"calling convention; the handle itself is callable.",
			})
		}
		return proj.Compile(reporterAt(args, 1)), nil

	case kindPath:
		proj, err := NewProjectFromFile(first.(string), settingsAt(args, 1))
		if err != nil {
			return nil, err
		}
		return proj.Compile(nil), nil

	default:
		s, _ := toSettings(first)
		proj, err := NewProject(s)
		if err != nil {
			return nil, err
		}
		return proj.Compile(reporterAt(args, 1)), nil
	}
}

func reporterAt(args []any, i int) Reporter {
	if len(args) <= i {
		return nil
	}
	r, _ := args[i].(Reporter)
	return r
}

func settingsAt(args []any, i int) Settings {
	if len(args) <= i {
		return nil
	}
	s, _ := toSettings(args[i])
	return s
}

func toSettings(arg any) (Settings, bool) {
	switch v := arg.(type) {
	case nil:
		return nil, true
	case Settings:
		return v, true
	case map[string]any:
		return Settings(v), true
	}
	return nil, false
}

func entryDeprecate(code diag.Code, dep diag.Deprecation) {
	d := dep.Diagnostic(code, diag.PhaseEntry)
	fmt.Fprintf(deprecationOutput, "gulp-typescript: deprecated: %s\n", d.Message)
	for _, n := range d.Notes {
		fmt.Fprintf(deprecationOutput, "  %s\n", n.Msg)
	}
}
