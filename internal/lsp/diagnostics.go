package lsp

import (
	"strings"
	"time"

	"fortio.org/safecast"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"wright/internal/diag"
	"wright/internal/driver"
	"wright/internal/source"
)

// schedule re-parses uri after the debounce delay, replacing a pending run.
func (s *Server) schedule(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.shutdown {
		return
	}
	doc, ok := s.docs[uri]
	if !ok {
		return
	}
	if t, ok := s.timers[uri]; ok {
		t.Stop()
	}
	seq := doc.seq
	s.timers[uri] = time.AfterFunc(s.debounce, func() {
		s.runDiagnostics(uri, seq)
	})
}

// flush runs a pending parse of uri right away.
func (s *Server) flush(uri string) {
	s.mu.Lock()
	if t, ok := s.timers[uri]; ok {
		t.Stop()
		delete(s.timers, uri)
	}
	doc, ok := s.docs[uri]
	var seq uint64
	if ok {
		seq = doc.seq
	}
	s.mu.Unlock()
	if ok {
		s.runDiagnostics(uri, seq)
	}
}

func (s *Server) runDiagnostics(uri string, seq uint64) {
	s.mu.Lock()
	doc, ok := s.docs[uri]
	if !ok || doc.seq != seq {
		s.mu.Unlock()
		return
	}
	text, ver := doc.text, doc.version
	limit := s.maxDiagnostics
	s.mu.Unlock()

	start := time.Now()
	src := source.FromString(documentName(uri), text)
	res := driver.ParseSource(src, driver.Options{MaxDiagnostics: limit})
	res.Bag.Sort()
	items := res.Bag.Items()
	list := make([]protocol.Diagnostic, 0, len(items))
	for _, d := range items {
		list = append(list, toProtocol(uri, d))
	}
	logger().Debugf("parsed %s v%d: %d diagnostics in %s", uri, ver, len(list), time.Since(start))

	s.mu.Lock()
	current, ok := s.docs[uri]
	stale := !ok || current.seq != seq
	if !stale {
		s.published[uri] = struct{}{}
	}
	s.mu.Unlock()
	if stale {
		return
	}
	s.publish(uri, &ver, list)
}

func (s *Server) publish(uri string, ver *protocol.Integer, list []protocol.Diagnostic) {
	s.mu.Lock()
	notify := s.notify
	s.mu.Unlock()
	if notify == nil {
		return
	}
	params := protocol.PublishDiagnosticsParams{URI: uri, Diagnostics: list}
	if ver != nil {
		if v, err := safecast.Conv[uint32](int32(*ver)); err == nil {
			uv := protocol.UInteger(v)
			params.Version = &uv
		}
	}
	notify(protocol.ServerTextDocumentPublishDiagnostics, params)
}

func documentName(uri string) source.FileName {
	if path := uriToPath(uri); path != "" {
		return source.RealPath(path)
	}
	return source.TestName(uri)
}

func toProtocol(uri string, d diag.Diagnostic) protocol.Diagnostic {
	out := protocol.Diagnostic{
		Severity: severityPtr(d.Severity),
		Code:     &protocol.IntegerOrString{Value: d.Code.ID()},
		Source:   strPtr(serverName),
		Message:  d.Message,
	}
	if primary, ok := d.Primary(); ok {
		out.Range = rangeFor(primary)
	}
	for _, h := range d.Highlights {
		if h.Primary || h.Message == "" || !h.Fragment.IsValid() {
			continue
		}
		out.RelatedInformation = append(out.RelatedInformation, protocol.DiagnosticRelatedInformation{
			Location: protocol.Location{URI: uri, Range: rangeFor(h.Fragment)},
			Message:  h.Message,
		})
	}
	if label := primaryLabel(d); label != "" {
		out.Message += ": " + label
	}
	if len(d.Notes) > 0 {
		out.Message += "\n" + strings.Join(d.Notes, "\n")
	}
	return out
}

func primaryLabel(d diag.Diagnostic) string {
	for _, h := range d.Highlights {
		if h.Primary {
			return h.Message
		}
	}
	return ""
}

func severityPtr(sev diag.Severity) *protocol.DiagnosticSeverity {
	var v protocol.DiagnosticSeverity
	switch sev {
	case diag.SevBug, diag.SevError:
		v = protocol.DiagnosticSeverityError
	case diag.SevWarning:
		v = protocol.DiagnosticSeverityWarning
	case diag.SevInfo:
		v = protocol.DiagnosticSeverityInformation
	default:
		v = protocol.DiagnosticSeverityHint
	}
	return &v
}

func strPtr(s string) *string {
	return &s
}
