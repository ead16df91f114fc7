package diag

// Severity defines the importance of a diagnostic. Higher values are more severe.
type Severity uint8

const (
	// SevHelp is a suggestion attached to another diagnostic.
	SevHelp Severity = iota
	SevNote
	// SevInfo is for informational diagnostics.
	SevInfo
	// SevWarning is for warning diagnostics.
	SevWarning
	SevError
	// SevBug reports an internal error of the tool itself.
	SevBug
)

func (s Severity) String() string {
	switch s {
	case SevHelp:
		return "help"
	case SevNote:
		return "note"
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	case SevBug:
		return "bug"
	}
	return "unknown"
}

// ParseSeverity is the inverse of String.
func ParseSeverity(s string) (Severity, bool) {
	for sev := SevHelp; sev <= SevBug; sev++ {
		if sev.String() == s {
			return sev, true
		}
	}
	return 0, false
}
