package diagfmt

import (
	"path/filepath"

	"wright/internal/source"
)

func formatPath(name source.FileName, mode PathMode, base string) string {
	if name.Kind != source.FileNameReal {
		return name.String()
	}
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(name.Value); err == nil {
			return filepath.ToSlash(abs)
		}
	case PathModeBasename:
		return filepath.Base(name.Value)
	case PathModeRelative, PathModeAuto:
		if base == "" {
			return name.Value
		}
		if rel, err := source.RelativePath(name.Value, base); err == nil {
			return rel
		}
	}
	return name.Value
}

func fragmentPath(f source.Fragment, mode PathMode, base string) string {
	if f.Source == nil {
		return "<unknown>"
	}
	return formatPath(f.Source.Name(), mode, base)
}

// formatSpan печатает line:col-line:col, конец исключительно.
func formatSpan(f source.Fragment) string {
	if f.Source == nil {
		return "span(-)"
	}
	start := f.Position()
	end := f.Source.Position(f.End)
	return start.String() + "-" + end.String()
}
