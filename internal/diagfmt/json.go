package diagfmt

import (
	"encoding/json"
	"io"

	"github.com/Yugloocamai/gulp-typescript/internal/diag"
)

type jsonDiagnostic struct {
	Severity string   `json:"severity"`
	Code     string   `json:"code"`
	Phase    string   `json:"phase"`
	Message  string   `json:"message"`
	File     string   `json:"file,omitempty"`
	Line     uint32   `json:"line,omitempty"`
	Col      uint32   `json:"col,omitempty"`
	Notes    []string `json:"notes,omitempty"`
}

// JSON writes diagnostics as a JSON array, one record per diagnostic.
func JSON(w io.Writer, diags []diag.Diagnostic, opts JSONOpts) error {
	records := make([]jsonDiagnostic, 0, len(diags))
	for _, d := range diags {
		rec := jsonDiagnostic{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Phase:    d.Phase.String(),
			Message:  d.Message,
			File:     d.File,
		}
		if opts.IncludePositions {
			rec.Line = d.Pos.Line
			rec.Col = d.Pos.Col
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				rec.Notes = append(rec.Notes, n.Msg)
			}
		}
		records = append(records, rec)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
