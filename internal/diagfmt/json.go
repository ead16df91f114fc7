package diagfmt

import (
	"encoding/json"
	"io"

	"wright/internal/diag"
	"wright/internal/source"
)

// LocationJSON представляет местоположение в файле для JSON
type LocationJSON struct {
	File      string `json:"file"`
	StartByte int    `json:"start_byte"`
	EndByte   int    `json:"end_byte"`
	StartLine int    `json:"start_line,omitempty"`
	StartCol  int    `json:"start_col,omitempty"`
	EndLine   int    `json:"end_line,omitempty"`
	EndCol    int    `json:"end_col,omitempty"`
}

// HighlightJSON представляет подсвеченный фрагмент
type HighlightJSON struct {
	Message  string       `json:"message,omitempty"`
	Primary  bool         `json:"primary"`
	Location LocationJSON `json:"location"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity   string          `json:"severity"`
	Code       string          `json:"code"`
	Message    string          `json:"message"`
	Location   *LocationJSON   `json:"location,omitempty"`
	Highlights []HighlightJSON `json:"highlights,omitempty"`
	Notes      []string        `json:"notes,omitempty"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

func makeLocation(f source.Fragment, opts JSONOpts) LocationJSON {
	loc := LocationJSON{
		File:      fragmentPath(f, opts.PathMode, opts.BaseDir),
		StartByte: f.Start,
		EndByte:   f.End,
	}
	if opts.IncludePositions && f.Source != nil {
		start, end := f.Position(), f.Source.Position(f.End)
		loc.StartLine, loc.StartCol = start.Line, start.Column
		loc.EndLine, loc.EndCol = end.Line, end.Column
	}
	return loc
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
// Count is the number of input diagnostics, even when Max truncates the list.
func BuildDiagnosticsOutput(diags []diag.Diagnostic, opts JSONOpts) DiagnosticsOutput {
	n := len(diags)
	if opts.Max > 0 && opts.Max < n {
		n = opts.Max
	}
	out := DiagnosticsOutput{
		Diagnostics: make([]DiagnosticJSON, 0, n),
		Count:       len(diags),
	}
	for _, d := range diags[:n] {
		dj := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
		}
		if primary, ok := d.Primary(); ok && primary.Source != nil {
			loc := makeLocation(primary, opts)
			dj.Location = &loc
		}
		if opts.IncludeNotes {
			for _, h := range d.Highlights {
				dj.Highlights = append(dj.Highlights, HighlightJSON{
					Message:  h.Message,
					Primary:  h.Primary,
					Location: makeLocation(h.Fragment, opts),
				})
			}
			dj.Notes = d.Notes
		}
		out.Diagnostics = append(out.Diagnostics, dj)
	}
	return out
}

// JSON writes diagnostics as an indented JSON document.
func JSON(w io.Writer, diags []diag.Diagnostic, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagnosticsOutput(diags, opts))
}
