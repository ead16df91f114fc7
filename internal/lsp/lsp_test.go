package lsp

import (
	"encoding/json"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"wright/internal/source"
)

type recorder struct {
	mu    sync.Mutex
	sent  []protocol.PublishDiagnosticsParams
	other []string
}

func (r *recorder) notify(method string, params any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := params.(protocol.PublishDiagnosticsParams); ok && method == protocol.ServerTextDocumentPublishDiagnostics {
		r.sent = append(r.sent, p)
		return
	}
	r.other = append(r.other, method)
}

func (r *recorder) last(t *testing.T) protocol.PublishDiagnosticsParams {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.sent)
	return r.sent[len(r.sent)-1]
}

func newTestServer(t *testing.T) (*Server, *recorder, *glsp.Context) {
	t.Helper()
	rec := &recorder{}
	s := NewServer(ServerOptions{Debounce: time.Hour})
	return s, rec, &glsp.Context{Notify: rec.notify}
}

func TestInitializeAdvertisesFullSync(t *testing.T) {
	s, _, ctx := newTestServer(t)
	res, err := s.initialize(ctx, &protocol.InitializeParams{})
	require.NoError(t, err)
	result, ok := res.(protocol.InitializeResult)
	require.True(t, ok)
	syncOpts, ok := result.Capabilities.TextDocumentSync.(*protocol.TextDocumentSyncOptions)
	require.True(t, ok)
	assert.Equal(t, protocol.TextDocumentSyncKindFull, *syncOpts.Change)
	assert.True(t, *syncOpts.OpenClose)
	assert.Equal(t, "wright", result.ServerInfo.Name)
}

func TestOpenPublishesDiagnostics(t *testing.T) {
	s, rec, ctx := newTestServer(t)
	uri := pathToURI(filepath.Join(t.TempDir(), "a.wr"))

	require.NoError(t, s.didOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Version: 1, Text: "const X: u8 = 1;\nuse ;\n"},
	}))
	s.flush(uri)

	got := rec.last(t)
	assert.Equal(t, uri, got.URI)
	require.NotNil(t, got.Version)
	assert.Equal(t, protocol.UInteger(1), *got.Version)
	require.NotEmpty(t, got.Diagnostics)
	first := got.Diagnostics[0]
	assert.Equal(t, protocol.UInteger(1), first.Range.Start.Line)
	assert.Equal(t, protocol.DiagnosticSeverityError, *first.Severity)
	assert.Equal(t, "wright", *first.Source)
}

func TestChangeReplacesTextAndClears(t *testing.T) {
	s, rec, ctx := newTestServer(t)
	uri := pathToURI(filepath.Join(t.TempDir(), "b.wr"))

	require.NoError(t, s.didOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Version: 1, Text: "const"},
	}))
	require.NoError(t, s.didChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "use a;\n"}},
	}))
	s.flush(uri)
	got := rec.last(t)
	assert.Empty(t, got.Diagnostics)
	assert.Equal(t, protocol.UInteger(2), *got.Version)

	require.NoError(t, s.didClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))
	closed := rec.last(t)
	assert.Equal(t, uri, closed.URI)
	assert.NotNil(t, closed.Diagnostics)
	assert.Empty(t, closed.Diagnostics)
	assert.Nil(t, closed.Version)
}

func TestStaleRunIsDropped(t *testing.T) {
	s, rec, ctx := newTestServer(t)
	uri := "file:///tmp/stale.wr"
	require.NoError(t, s.didOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Version: 1, Text: "x"},
	}))
	s.runDiagnostics(uri, 0)
	assert.Empty(t, rec.sent)
}

func TestDidChangeDecodesRangedEdits(t *testing.T) {
	var params protocol.DidChangeTextDocumentParams
	raw := `{"textDocument":{"uri":"file:///x.wr","version":3},"contentChanges":[{"range":{"start":{"line":0,"character":6},"end":{"line":0,"character":7}},"text":"Y"}]}`
	require.NoError(t, json.Unmarshal([]byte(raw), &params))
	assert.Equal(t, "const Y: u8 = 1;", applyChanges("const X: u8 = 1;", params.ContentChanges))
}

func TestOffsetForPositionUTF16(t *testing.T) {
	text := "a😀b\nxyz"
	assert.Equal(t, 1, offsetForPosition(text, protocol.Position{Line: 0, Character: 1}))
	assert.Equal(t, 5, offsetForPosition(text, protocol.Position{Line: 0, Character: 3}))
	assert.Equal(t, 7, offsetForPosition(text, protocol.Position{Line: 1, Character: 0}))
	assert.Equal(t, 10, offsetForPosition(text, protocol.Position{Line: 1, Character: 99}))
	assert.Equal(t, len(text), offsetForPosition(text, protocol.Position{Line: 9}))
}

func TestPositionForUTF16(t *testing.T) {
	src := source.FromString(source.TestName("p"), "a😀b\nxyz\n")
	assert.Equal(t, protocol.Position{Line: 0, Character: 3}, positionFor(src, 5))
	assert.Equal(t, protocol.Position{Line: 1, Character: 1}, positionFor(src, 8))
	assert.Equal(t, protocol.Position{Line: 2, Character: 0}, positionFor(src, src.Len()))

	empty := source.FromString(source.TestName("e"), "")
	assert.Equal(t, protocol.Position{}, positionFor(empty, 0))
}

func TestURIRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dir with space", "m.wr")
	assert.Equal(t, path, uriToPath(pathToURI(path)))
	assert.Empty(t, uriToPath("untitled:Untitled-1"))
	assert.Equal(t, source.FileNameTest, documentName("untitled:Untitled-1").Kind)
}
