package diag

// Deprecation is a structured non-fatal notice describing a retired feature.
// Summary is a one-line statement of what is deprecated, Action a one-line
// remediation, Details a longer explanation of what changed and why.
type Deprecation struct {
	Summary string
	Action  string
	Details string
}

// Diagnostic renders the deprecation as a warning diagnostic attributed to
// the given phase. Action and Details become notes so renderers can indent
// them below the summary line.
func (dep Deprecation) Diagnostic(code Code, phase Phase) Diagnostic {
	d := Diagnostic{
		Severity: SevWarning,
		Code:     code,
		Phase:    phase,
		Message:  dep.Summary,
	}
	if dep.Action != "" {
		d.Notes = append(d.Notes, Note{Msg: dep.Action})
	}
	if dep.Details != "" {
		d.Notes = append(d.Notes, Note{Msg: dep.Details})
	}
	return d
}

// Deprecate reports the deprecation through r. Nil reporters are ignored so
// call sites stay unconditional.
func Deprecate(r Reporter, code Code, phase Phase, dep Deprecation) {
	if r == nil {
		return
	}
	r.Report(dep.Diagnostic(code, phase))
}
