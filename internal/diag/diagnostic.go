package diag

import (
	"wright/internal/source"
)

// Highlight marks a fragment of source in a diagnostic.
type Highlight struct {
	Fragment source.Fragment
	Message  string
	// Primary highlights are underlined with '^', secondary ones with '-'.
	Primary bool
}

type Diagnostic struct {
	Severity   Severity
	Code       Code
	Message    string
	Highlights []Highlight
	Notes      []string
}

// Primary returns the first primary highlight, falling back to the first highlight.
func (d Diagnostic) Primary() (source.Fragment, bool) {
	for _, h := range d.Highlights {
		if h.Primary {
			return h.Fragment, true
		}
	}
	if len(d.Highlights) > 0 {
		return d.Highlights[0].Fragment, true
	}
	return source.Fragment{}, false
}

// SourceName returns the display name of the primary source, or "" for diagnostics without one.
func (d Diagnostic) SourceName() string {
	f, ok := d.Primary()
	if !ok || f.Source == nil {
		return ""
	}
	return f.Source.Name().String()
}
