package build

import (
	"time"

	"github.com/Yugloocamai/gulp-typescript/internal/compiler"
	"github.com/Yugloocamai/gulp-typescript/internal/diag"
)

// OutputFile is one emitted file: generated code, an external source map, or
// a declaration file.
type OutputFile struct {
	Path    string
	Content []byte
}

// Stream is the output of one handle invocation. Files arrive on Files()
// while the invocation runs; Wait blocks until completion and returns the
// first fatal error, if any. Each invocation produces one independent
// stream.
//
// The files channel is buffered but not unbounded: consumers must drain
// Files() (or use Collect) before or while calling Wait, or the invocation
// cannot complete once outputs exceed the buffer.
type Stream struct {
	files chan OutputFile
	done  chan struct{}
	err   error
}

func newStream() *Stream {
	return &Stream{
		files: make(chan OutputFile, 16),
		done:  make(chan struct{}),
	}
}

// Files returns the emitted files channel. It is closed when the invocation
// completes.
func (s *Stream) Files() <-chan OutputFile {
	return s.files
}

// Wait blocks until the invocation finishes and returns its error. Wait
// does not consume outputs; drain Files() first or use Collect.
func (s *Stream) Wait() error {
	<-s.done
	return s.err
}

// Collect drains the stream and returns every emitted file.
func (s *Stream) Collect() ([]OutputFile, error) {
	var out []OutputFile
	for f := range s.files {
		out = append(out, f)
	}
	return out, s.Wait()
}

func (s *Stream) finish(err error) {
	s.err = err
	close(s.files)
	close(s.done)
}

// Results summarises one invocation for a Reporter.
type Results struct {
	Files         int
	OptionsErrors int
	EmitErrors    int
	EmitSkipped   bool
	Duration      time.Duration
}

// Reporter observes one handle invocation: per-diagnostic errors while it
// runs, then a final summary. Mirrors the legacy compile-reporter surface.
type Reporter interface {
	Error(d diag.Diagnostic, impl compiler.Impl)
	Finish(r Results)
}
