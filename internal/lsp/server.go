// Package lsp serves parse diagnostics over the Language Server Protocol.
package lsp

import (
	"sync"
	"time"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"wright/internal/version"
)

const serverName = "wright"

func logger() commonlog.Logger {
	return commonlog.GetLogger("wright.lsp")
}

// ServerOptions configures LSP server behavior.
type ServerOptions struct {
	// Debounce delays re-parsing after an edit; 0 selects 200ms.
	Debounce time.Duration
	// MaxDiagnostics caps diagnostics per document; 0 selects 100.
	MaxDiagnostics int
	Debug          bool
}

type document struct {
	text    string
	version protocol.Integer
	// seq растёт на каждое изменение, устаревшие разборы отбрасываются
	seq uint64
}

// Server keeps the open documents and republishes their diagnostics on change.
type Server struct {
	handler protocol.Handler

	mu             sync.Mutex
	docs           map[string]*document
	timers         map[string]*time.Timer
	published      map[string]struct{}
	notify         glsp.NotifyFunc
	root           string
	shutdown       bool
	debounce       time.Duration
	maxDiagnostics int
	debug          bool
}

// NewServer constructs a new LSP server.
func NewServer(opts ServerOptions) *Server {
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}
	maxDiagnostics := opts.MaxDiagnostics
	if maxDiagnostics <= 0 {
		maxDiagnostics = 100
	}
	s := &Server{
		docs:           make(map[string]*document),
		timers:         make(map[string]*time.Timer),
		published:      make(map[string]struct{}),
		debounce:       debounce,
		maxDiagnostics: maxDiagnostics,
		debug:          opts.Debug,
	}
	s.handler = protocol.Handler{
		Initialize:            s.initialize,
		Initialized:           s.initialized,
		Shutdown:              s.handleShutdown,
		SetTrace:              s.setTrace,
		TextDocumentDidOpen:   s.didOpen,
		TextDocumentDidChange: s.didChange,
		TextDocumentDidSave:   s.didSave,
		TextDocumentDidClose:  s.didClose,
	}
	return s
}

// RunStdio serves requests on stdin/stdout until the client exits.
func (s *Server) RunStdio() error {
	logger().Info("starting language server")
	return server.NewServer(&s.handler, serverName, s.debug).RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	s.bind(ctx)
	root := ""
	if params.RootURI != nil && *params.RootURI != "" {
		root = uriToPath(*params.RootURI)
	} else if params.RootPath != nil {
		root = *params.RootPath
	}
	s.mu.Lock()
	s.root = root
	s.mu.Unlock()
	logger().Infof("initialize: root=%q", root)

	capabilities := s.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	ver := version.Version
	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &ver,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	s.bind(ctx)
	return nil
}

func (s *Server) handleShutdown(ctx *glsp.Context) error {
	s.mu.Lock()
	s.shutdown = true
	for uri, t := range s.timers {
		t.Stop()
		delete(s.timers, uri)
	}
	s.mu.Unlock()
	logger().Info("shutdown requested")
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) didOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.bind(ctx)
	uri := params.TextDocument.URI
	s.mu.Lock()
	doc := &document{text: params.TextDocument.Text, version: params.TextDocument.Version}
	if prev, ok := s.docs[uri]; ok {
		doc.seq = prev.seq
	}
	doc.seq++
	s.docs[uri] = doc
	s.mu.Unlock()
	s.schedule(uri)
	return nil
}

func (s *Server) didChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	s.bind(ctx)
	uri := params.TextDocument.URI
	s.mu.Lock()
	doc, ok := s.docs[uri]
	if !ok {
		doc = &document{}
		s.docs[uri] = doc
	}
	doc.text = applyChanges(doc.text, params.ContentChanges)
	doc.version = params.TextDocument.Version
	doc.seq++
	s.mu.Unlock()
	s.schedule(uri)
	return nil
}

func (s *Server) didSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	s.bind(ctx)
	uri := params.TextDocument.URI
	s.mu.Lock()
	doc, ok := s.docs[uri]
	if ok && params.Text != nil {
		doc.text = *params.Text
		doc.seq++
	}
	s.mu.Unlock()
	if ok {
		s.schedule(uri)
	}
	return nil
}

func (s *Server) didClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.bind(ctx)
	uri := params.TextDocument.URI
	s.mu.Lock()
	delete(s.docs, uri)
	if t, ok := s.timers[uri]; ok {
		t.Stop()
		delete(s.timers, uri)
	}
	_, had := s.published[uri]
	delete(s.published, uri)
	s.mu.Unlock()
	if had {
		s.publish(uri, nil, []protocol.Diagnostic{})
	}
	return nil
}

// bind запоминает канал уведомлений текущего соединения.
func (s *Server) bind(ctx *glsp.Context) {
	if ctx == nil || ctx.Notify == nil {
		return
	}
	s.mu.Lock()
	s.notify = ctx.Notify
	s.mu.Unlock()
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
