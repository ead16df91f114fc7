package diag

import "wright/internal/source"

type dedupKey struct {
	code   Code
	sev    Severity
	source source.ID
	start  int
	end    int
	msg    string
}

func keyOf(d Diagnostic) dedupKey {
	key := dedupKey{code: d.Code, sev: d.Severity, msg: d.Message}
	if f, ok := d.Primary(); ok {
		if f.Source != nil {
			key.source = f.Source.ID()
		}
		key.start, key.end = f.Start, f.End
	}
	return key
}

// DedupReporter wraps another Reporter and suppresses duplicate diagnostics
// with the same code, severity, primary fragment and message.
type DedupReporter struct {
	next Reporter
	seen map[dedupKey]struct{}
}

// NewDedupReporter returns a Reporter that filters out duplicates while
// forwarding unique diagnostics to the provided reporter.
func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{
		next: next,
		seen: make(map[dedupKey]struct{}),
	}
}

func (r *DedupReporter) Report(d Diagnostic) {
	if r == nil {
		return
	}
	key := keyOf(d)
	if _, ok := r.seen[key]; ok {
		return
	}
	r.seen[key] = struct{}{}
	if r.next != nil {
		r.next.Report(d)
	}
}
