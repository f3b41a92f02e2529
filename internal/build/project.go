package build

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Yugloocamai/gulp-typescript/internal/compiler"
	"github.com/Yugloocamai/gulp-typescript/internal/diag"
	"github.com/Yugloocamai/gulp-typescript/internal/tsconfig"
)

const cacheAppName = "gulp-typescript"

// Project is the reusable build handle. It is created once per resolved
// configuration and may be invoked any number of times; each invocation
// produces one independent output stream. Exactly one compiler
// implementation is bound per project.
type Project struct {
	Dir        string
	ConfigPath string
	Raw        map[string]any
	Parsed     *compiler.ParsedConfig
	Options    compiler.CompilerOptions
	Impl       compiler.Impl

	// Progress receives per-file events when set.
	Progress ProgressSink

	mu      sync.Mutex
	digests map[string]Digest
	memo    map[memoKey][]OutputFile
	cache   *DiskCache
}

// memoKey identifies one rendered source file. The path is part of the key:
// two distinct files with identical content must produce their own outputs.
type memoKey struct {
	path   string
	digest Digest
}

// NewProject constructs the handle from the six fully-resolved inputs of the
// configuration pipeline. Nothing is re-merged or re-normalized here.
func NewProject(dir, configPath string, raw map[string]any, parsed *compiler.ParsedConfig, opts compiler.CompilerOptions, impl compiler.Impl) *Project {
	p := &Project{
		Dir:        dir,
		ConfigPath: configPath,
		Raw:        raw,
		Parsed:     parsed,
		Options:    opts,
		Impl:       impl,
		digests:    make(map[string]Digest),
		memo:       make(map[memoKey][]OutputFile),
	}
	if cache, err := OpenDiskCache(cacheAppName); err == nil {
		p.cache = cache
		p.loadState()
	}
	return p
}

// Compile starts one invocation and returns its output stream immediately.
func (p *Project) Compile(reporter Reporter) *Stream {
	s := newStream()
	go p.run(s, reporter)
	return s
}

func (p *Project) run(s *Stream, reporter Reporter) {
	start := time.Now()
	files, optErrs := p.inputFiles(reporter)

	var results Results
	results.Files = len(files)
	results.OptionsErrors = optErrs
	var resultsMu sync.Mutex

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.NumCPU())
	for _, file := range files {
		g.Go(func() error {
			fileStart := time.Now()
			emit(p.Progress, Event{File: file, Stage: StageRead, Status: StatusWorking})
			outputs, err := p.emitFile(file)
			if err != nil {
				emit(p.Progress, Event{File: file, Stage: StageRead, Status: StatusError, Err: err})
				p.reportError(reporter, diag.Errorf(diag.IOReadFailed, diag.PhaseFileRead, "%v", err))
				resultsMu.Lock()
				results.EmitErrors++
				resultsMu.Unlock()
				return nil
			}
			for _, out := range outputs {
				s.files <- out
			}
			emit(p.Progress, Event{File: file, Stage: StageEmit, Status: StatusDone, Elapsed: time.Since(fileStart)})
			return nil
		})
	}
	err := g.Wait()

	p.persistState(files)
	results.Duration = time.Since(start)
	results.EmitSkipped = results.EmitErrors > 0 && results.EmitErrors == results.Files
	emit(p.Progress, Event{Stage: StageFinish, Status: StatusDone, Elapsed: results.Duration})
	if reporter != nil {
		reporter.Finish(results)
	}
	s.finish(err)
}

// inputFiles returns the invocation's source set plus the number of
// configuration-phase errors hit while resolving it: the project-file
// resolved names when available, otherwise the default include under the
// project directory.
func (p *Project) inputFiles(reporter Reporter) ([]string, int) {
	if p.Parsed != nil && len(p.Parsed.FileNames) > 0 {
		return p.Parsed.FileNames, 0
	}
	names, diags := tsconfig.ResolveFileNames(tsconfig.Expanded{}, p.Dir, "", p.ConfigPath)
	errs := 0
	for _, d := range diags {
		if d.Severity >= diag.SevError {
			errs++
		}
		p.reportError(reporter, d)
	}
	return names, errs
}

func (p *Project) reportError(reporter Reporter, d diag.Diagnostic) {
	if reporter != nil {
		reporter.Error(d, p.Impl)
	}
}

// emitFile produces the outputs for one source file: the generated file plus
// its external source map. Declarations (.d.ts) are inputs only. Unchanged
// files are served from the invocation-spanning memo.
func (p *Project) emitFile(path string) ([]OutputFile, error) {
	if strings.HasSuffix(path, ".d.ts") {
		return nil, nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	key := memoKey{path: path, digest: digestBytes(src)}

	p.mu.Lock()
	cached, ok := p.memo[key]
	p.mu.Unlock()
	if ok {
		return cached, nil
	}

	outputs, err := p.render(path, src)
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	p.digests[path] = key.digest
	p.memo[key] = outputs
	p.mu.Unlock()
	return outputs, nil
}

func (p *Project) render(path string, src []byte) ([]OutputFile, error) {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(filepath.Base(path), ext) + ".js"

	outDir := p.Options.String("outDir")
	if outDir == "" {
		outDir = filepath.Dir(path)
	}
	jsPath := filepath.Join(outDir, base)

	srcRel, err := filepath.Rel(outDir, path)
	if err != nil {
		srcRel = filepath.Base(path)
	}

	// External maps only: the resolved options force sourceMap on and keep
	// sourceRoot unset, so the map reference is always a sibling file.
	js := make([]byte, 0, len(src)+64)
	js = append(js, src...)
	js = append(js, []byte("\n//# sourceMappingURL="+base+".map\n")...)

	sourceMap, err := json.Marshal(map[string]any{
		"version":  3,
		"file":     base,
		"sources":  []string{filepath.ToSlash(srcRel)},
		"names":    []string{},
		"mappings": "",
	})
	if err != nil {
		return nil, fmt.Errorf("encode source map for %s: %w", path, err)
	}

	return []OutputFile{
		{Path: jsPath, Content: js},
		{Path: jsPath + ".map", Content: sourceMap},
	}, nil
}

func (p *Project) cacheKey() Digest {
	h := p.Options.Clone()
	h["__configPath"] = p.ConfigPath
	return digestOptions(h)
}

// loadState primes the digest table and the render memo from the disk
// cache, so a fresh handle over unchanged sources serves their outputs
// without re-rendering.
func (p *Project) loadState() {
	payload, err := p.cache.Get(p.cacheKey())
	if err != nil || payload == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for path, entry := range payload.Files {
		p.digests[path] = entry.Digest
		if len(entry.Outputs) > 0 {
			p.memo[memoKey{path: path, digest: entry.Digest}] = entry.Outputs
		}
	}
}

func (p *Project) persistState(files []string) {
	if p.cache == nil {
		return
	}
	p.mu.Lock()
	payload := &cachePayload{
		OptionsDigest: digestOptions(p.Options),
		Files:         make(map[string]cachedFile, len(files)),
	}
	for _, path := range files {
		d, ok := p.digests[path]
		if !ok {
			continue
		}
		payload.Files[path] = cachedFile{
			Digest:  d,
			Outputs: p.memo[memoKey{path: path, digest: d}],
		}
	}
	p.mu.Unlock()
	_ = p.cache.Put(p.cacheKey(), payload)
}
