package diag

import "wright/internal/source"

func New(sev Severity, code Code, primary source.Fragment, msg string) Diagnostic {
	d := Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
	}
	if primary.Source != nil {
		d.Highlights = []Highlight{{Fragment: primary, Primary: true}}
	}
	return d
}

func NewError(code Code, primary source.Fragment, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

// WithLabel sets the message printed under the primary highlight.
func (d Diagnostic) WithLabel(label string) Diagnostic {
	if len(d.Highlights) > 0 {
		hs := make([]Highlight, len(d.Highlights))
		copy(hs, d.Highlights)
		hs[0].Message = label
		d.Highlights = hs
	}
	return d
}

func (d Diagnostic) WithHighlight(f source.Fragment, msg string, primary bool) Diagnostic {
	d.Highlights = append(d.Highlights, Highlight{Fragment: f, Message: msg, Primary: primary})
	return d
}

func (d Diagnostic) WithNote(msg string) Diagnostic {
	d.Notes = append(d.Notes, msg)
	return d
}
