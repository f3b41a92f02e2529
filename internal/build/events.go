// Package build provides the default reusable build handle constructed by
// the configuration-resolution pipeline. The handle owns its own caching and
// incrementality; the pipeline treats it as opaque.
package build

import "time"

// Stage describes a high-level phase of one handle invocation.
type Stage string

const (
	// StageRead is the source reading stage.
	StageRead Stage = "read"
	// StageEmit is the output generation stage.
	StageEmit Stage = "emit"
	// StageFinish marks the end of an invocation.
	StageFinish Stage = "finish"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusWorking indicates the task is currently working.
	StatusWorking Status = "working"
	// StatusDone indicates the task is done.
	StatusDone Status = "done"
	// StatusError indicates the task encountered an error.
	StatusError Status = "error"
)

// Event reports progress for a file, or for the whole invocation when File
// is empty.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events.
type ProgressSink interface {
	OnEvent(Event)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) OnEvent(Event) {}

func emit(sink ProgressSink, ev Event) {
	if sink != nil {
		sink.OnEvent(ev)
	}
}
