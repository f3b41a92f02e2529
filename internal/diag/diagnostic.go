package diag

// Pos is a 1-based position inside a configuration file.
// A zero Line means the diagnostic carries no position.
type Pos struct {
	Line uint32
	Col  uint32
}

// Note adds secondary context to a diagnostic. Each note should add new
// information rather than repeating the diagnostic message.
type Note struct {
	Msg string
}

// Diagnostic is one reported condition produced during configuration
// resolution. File and Pos are optional: settings-phase diagnostics have no
// file, project-file-phase diagnostics usually do.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Phase    Phase
	Message  string
	File     string
	Pos      Pos
	Notes    []Note
}

// WithNote returns a copy of the diagnostic with an extra note appended.
func (d Diagnostic) WithNote(msg string) Diagnostic {
	d.Notes = append(d.Notes[:len(d.Notes):len(d.Notes)], Note{Msg: msg})
	return d
}

// Errorf builds an error diagnostic for the given phase.
func Errorf(code Code, phase Phase, format string, args ...any) Diagnostic {
	return newDiag(SevError, code, phase, format, args...)
}

// Warnf builds a warning diagnostic for the given phase.
func Warnf(code Code, phase Phase, format string, args ...any) Diagnostic {
	return newDiag(SevWarning, code, phase, format, args...)
}

// Infof builds an informational diagnostic for the given phase.
func Infof(code Code, phase Phase, format string, args ...any) Diagnostic {
	return newDiag(SevInfo, code, phase, format, args...)
}
