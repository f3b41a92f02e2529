// Package gulpts resolves TypeScript build configurations. It merges
// caller-supplied settings, an optional on-disk project-configuration file
// and compiler defaults into one canonical option set, binds a compiler
// implementation, and hands the result to a reusable project handle whose
// invocations each yield one output stream.
package gulpts

import (
	"github.com/Yugloocamai/gulp-typescript/internal/build"
	"github.com/Yugloocamai/gulp-typescript/internal/resolve"
	"github.com/Yugloocamai/gulp-typescript/internal/settings"

	// Register the bundled compiler implementation as the default.
	_ "github.com/Yugloocamai/gulp-typescript/internal/compiler/native"
)

// Settings is the caller-supplied configuration mapping. Arbitrary keys
// beyond the recognized ones pass through to option conversion untouched.
type Settings = settings.Settings

// Project is the reusable build handle produced once per resolved
// configuration.
type Project = build.Project

// Stream is the output of one project invocation.
type Stream = build.Stream

// OutputFile is one emitted file on a Stream.
type OutputFile = build.OutputFile

// Reporter observes one project invocation.
type Reporter = build.Reporter

// handoff constructs the project handle from the pipeline's six resolved
// inputs. The handle receives everything fully merged and normalized.
func handoff(res *resolve.Result) *Project {
	return build.NewProject(res.Dir, res.ConfigPath, res.Raw, res.Parsed, res.Options, res.Compiler)
}

// NewProject resolves a configuration from settings alone and returns its
// handle. Settings may be nil.
func NewProject(s Settings) (*Project, error) {
	res, err := (&resolve.Pipeline{}).FromSettings(s)
	if err != nil {
		return nil, err
	}
	return handoff(res), nil
}

// NewProjectFromFile resolves a configuration from a project file, with
// settings as the option baseline the file overrides per key.
func NewProjectFromFile(path string, s Settings) (*Project, error) {
	res, err := (&resolve.Pipeline{}).FromFile(path, s)
	if err != nil {
		return nil, err
	}
	return handoff(res), nil
}
