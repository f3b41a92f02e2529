package diag

import "fmt"

// Reporter is the minimal contract for receiving diagnostics from phases.
// Implementations: BagReporter (collects into a Bag), NopReporter,
// MultiReporter (fan-out).
type Reporter interface {
	Report(d Diagnostic)
}

func newDiag(sev Severity, code Code, phase Phase, format string, args ...any) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Phase:    phase,
		Message:  fmt.Sprintf(format, args...),
	}
}

// BagReporter is an adapter that writes into a *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

// NopReporter discards every diagnostic.
type NopReporter struct{}

func (NopReporter) Report(Diagnostic) {}

// MultiReporter forwards each diagnostic to every wrapped reporter.
type MultiReporter []Reporter

func (m MultiReporter) Report(d Diagnostic) {
	for _, r := range m {
		if r != nil {
			r.Report(d)
		}
	}
}
