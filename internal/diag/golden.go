package diag

import (
	"fmt"
	"sort"
	"strings"

	"wright/internal/source"
)

type goldenDiagnostic struct {
	Severity string
	Code     string
	Path     string
	Line     int
	Column   int
	Message  string
}

// FormatGolden renders diagnostics into a stable, single-line-per-entry
// representation suitable for golden files and the short CLI output. When
// base is not empty, real paths are printed relative to it. Secondary
// highlights and notes are included when includeNotes is set.
func FormatGolden(diags []Diagnostic, base string, includeNotes bool) string {
	if len(diags) == 0 {
		return ""
	}

	rendered := make([]goldenDiagnostic, 0, len(diags))
	for i := range diags {
		rendered = appendDiagnostic(rendered, &diags[i], base, includeNotes)
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		if di.Severity != dj.Severity {
			return di.Severity < dj.Severity
		}
		if di.Code != dj.Code {
			return di.Code < dj.Code
		}
		return di.Message < dj.Message
	})

	var b strings.Builder
	for i, d := range rendered {
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s", d.Severity, d.Code, d.Path, d.Line, d.Column, d.Message)
		if i < len(rendered)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func appendDiagnostic(out []goldenDiagnostic, d *Diagnostic, base string, includeNotes bool) []goldenDiagnostic {
	primary, _ := d.Primary()
	path, pos := resolveFragment(primary, base)
	out = append(out, goldenDiagnostic{
		Severity: d.Severity.String(),
		Code:     d.Code.ID(),
		Path:     path,
		Line:     pos.Line,
		Column:   pos.Column,
		Message:  sanitizeMessage(d.Message),
	})

	if !includeNotes {
		return out
	}
	for _, h := range d.Highlights {
		if h.Fragment.Equal(primary) || h.Message == "" {
			continue
		}
		hpath, hpos := resolveFragment(h.Fragment, base)
		out = append(out, goldenDiagnostic{
			Severity: SevNote.String(),
			Code:     d.Code.ID(),
			Path:     hpath,
			Line:     hpos.Line,
			Column:   hpos.Column,
			Message:  sanitizeMessage(h.Message),
		})
	}
	// заметки без места привязываем к основному фрагменту
	for _, n := range d.Notes {
		out = append(out, goldenDiagnostic{
			Severity: SevHelp.String(),
			Code:     d.Code.ID(),
			Path:     path,
			Line:     pos.Line,
			Column:   pos.Column,
			Message:  sanitizeMessage(n),
		})
	}
	return out
}

func resolveFragment(f source.Fragment, base string) (string, source.LineCol) {
	if f.Source == nil {
		return "-", source.LineCol{Line: 0, Column: 0}
	}
	name := f.Source.Name()
	path := name.String()
	if base != "" && name.Kind == source.FileNameReal {
		if rel, err := source.RelativePath(name.Value, base); err == nil {
			path = rel
		}
	}
	return path, f.Position()
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", " ")
	msg = strings.ReplaceAll(msg, "\n", " ")
	msg = strings.ReplaceAll(msg, "\t", " ")
	return strings.TrimSpace(msg)
}
