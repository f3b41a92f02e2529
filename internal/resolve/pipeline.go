// Package resolve implements the configuration-resolution pipeline: it
// merges caller settings and an optional on-disk project-configuration file
// into one canonical compiler configuration, binds a compiler
// implementation, and hands the result to the project factory.
package resolve

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Yugloocamai/gulp-typescript/internal/compiler"
	"github.com/Yugloocamai/gulp-typescript/internal/diag"
	"github.com/Yugloocamai/gulp-typescript/internal/diagfmt"
	"github.com/Yugloocamai/gulp-typescript/internal/settings"
	"github.com/Yugloocamai/gulp-typescript/internal/tsconfig"
)

const maxDiagnostics = 100

// Result carries the six fully-resolved inputs of the project handoff.
// The receiving factory must not need to re-merge or re-normalize anything.
type Result struct {
	Dir        string
	ConfigPath string
	Raw        map[string]any
	Parsed     *compiler.ParsedConfig
	Options    compiler.CompilerOptions
	Compiler   compiler.Impl
}

// Pipeline resolves configurations. The zero value is usable: the default
// resolver locates the registered compiler implementation, diagnostics go
// through the default reporting bridge, and the working directory is the
// resolution base.
type Pipeline struct {
	Resolver *compiler.Resolver
	// Reporter overrides the default bridge when set. Every diagnostic of
	// both phases flows through it.
	Reporter diag.Reporter
	WorkDir  string
}

// FromSettings resolves a configuration from settings alone. No project-file
// phase runs.
func (p *Pipeline) FromSettings(s settings.Settings) (*Result, error) {
	res, bag, err := p.settingsPhase(s)
	if err != nil {
		return nil, err
	}
	p.report(bag, res.Compiler)

	final := res.Options.Clone()
	compiler.NormalizeOutput(final)
	res.Options = final
	return res, nil
}

// FromFile resolves a configuration from a project file with settings as the
// option baseline: the settings-only phase runs first, then the file's fully
// resolved configuration supersedes it per key. A missing or malformed file
// is reported and resolution continues with whatever could be parsed.
func (p *Pipeline) FromFile(path string, s settings.Settings) (*Result, error) {
	res, bag, err := p.settingsPhase(s)
	if err != nil {
		return nil, err
	}

	configPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve project file path %q: %w", path, err)
	}
	dir := filepath.Dir(configPath)

	raw, loadDiags := tsconfig.Load(configPath)
	addAll(bag, loadDiags)

	parsed, parseDiags := res.Compiler.ParseConfigContent(raw, dir, res.Options, configPath)
	addAll(bag, parseDiags)
	p.report(bag, res.Compiler)

	final := parsed.Options.Clone()
	compiler.NormalizeOutput(final)

	res.Dir = dir
	res.ConfigPath = configPath
	res.Raw = raw
	res.Parsed = &parsed
	res.Options = final
	return res, nil
}

// settingsPhase normalizes settings, binds the compiler implementation and
// converts settings into the baseline option set. The returned options are
// not yet output-normalized; diagnostics stay in the returned bag until the
// caller reports them.
func (p *Pipeline) settingsPhase(s settings.Settings) (*Result, *diag.Bag, error) {
	if s == nil {
		s = settings.Settings{}
	}
	workDir := p.WorkDir
	if workDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, nil, fmt.Errorf("resolve working directory: %w", err)
		}
		workDir = cwd
	}

	bag := diag.NewBag(maxDiagnostics)
	collect := diag.BagReporter{Bag: bag}

	override := s.Compiler()
	norm := settings.Normalize(s, collect)

	resolver := p.Resolver
	if resolver == nil {
		resolver = &compiler.Resolver{}
	}
	impl, err := resolver.Resolve(override, collect)
	if err != nil {
		// No implementation is bound, so the bridge cannot decode; fall
		// back to plain rendering before aborting.
		p.reportPlain(bag)
		return nil, nil, err
	}

	opts, convDiags := impl.ConvertOptions(norm, workDir, "")
	addAll(bag, convDiags)

	return &Result{Dir: workDir, Options: opts, Compiler: impl}, bag, nil
}

func (p *Pipeline) report(bag *diag.Bag, impl compiler.Impl) {
	if bag.Len() == 0 {
		return
	}
	bag.Sort()
	if p.Reporter != nil {
		for _, d := range bag.Items() {
			p.Reporter.Report(d)
		}
		return
	}
	diagfmt.Report(bag.Items(), impl)
}

func (p *Pipeline) reportPlain(bag *diag.Bag) {
	if p.Reporter != nil {
		for _, d := range bag.Items() {
			p.Reporter.Report(d)
		}
		return
	}
	for _, d := range bag.Items() {
		fmt.Fprintf(os.Stderr, "gulp-typescript: %s\n", d.Message)
		for _, n := range d.Notes {
			fmt.Fprintf(os.Stderr, "  %s\n", n.Msg)
		}
	}
}

func addAll(bag *diag.Bag, diags []diag.Diagnostic) {
	for _, d := range diags {
		bag.Add(d)
	}
}
