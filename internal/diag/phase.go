package diag

// Phase identifies the resolution step a diagnostic originates from.
// Every diagnostic is attributable to exactly one phase.
type Phase uint8

const (
	// PhaseSettings covers settings normalization and the conversion of
	// settings into compiler options.
	PhaseSettings Phase = iota
	// PhaseProjectFile covers parsing and resolving the on-disk
	// project-configuration file.
	PhaseProjectFile
	// PhaseFileRead covers reading project-configuration content from disk.
	PhaseFileRead
	// PhaseEntry covers the public entry adapter (legacy calling
	// conventions, compiler discovery).
	PhaseEntry
)

func (p Phase) String() string {
	switch p {
	case PhaseSettings:
		return "settings"
	case PhaseProjectFile:
		return "project-file"
	case PhaseFileRead:
		return "file-read"
	case PhaseEntry:
		return "entry"
	}
	return "unknown"
}
