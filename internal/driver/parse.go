package driver

import (
	"context"

	"wright/internal/ast"
	"wright/internal/diag"
	"wright/internal/lexer"
	"wright/internal/parser"
	"wright/internal/source"
)

type ParseResult struct {
	Source *source.Source
	File   *ast.File
	Bag    *diag.Bag
}

// Close releases the lock on the source.
func (r *ParseResult) Close() error {
	if r == nil || r.Source == nil {
		return nil
	}
	return r.Source.Close()
}

func Parse(ctx context.Context, path string, opts Options) (*ParseResult, error) {
	done := opts.Timer.Track("load")
	src, err := Open(ctx, path)
	done(path)
	if err != nil {
		return nil, err
	}
	return ParseSource(src, opts), nil
}

// ParseSource lexes and parses src. Every declaration that parses is kept;
// the failed ones become diagnostics.
func ParseSource(src *source.Source, opts Options) *ParseResult {
	done := opts.Timer.Track("parse")
	bag := diag.NewBag(opts.MaxDiagnostics)
	file := analyze(src, diag.BagReporter{Bag: bag}, opts.MaxDiagnostics)
	done(src.Name().String())
	return &ParseResult{Source: src, File: file, Bag: bag}
}

// analyze reports lexical diagnostics first, then grammar errors that do not
// overlap one of them: an unknown character or an open literal is reported
// once, by the lexer, rather than again as an unexpected token.
func analyze(src *source.Source, r diag.Reporter, maxErrors int) *ast.File {
	lx := lexer.NewSource(src)
	var lexical []source.Fragment
	for tok := range lx.Tokens() {
		if d, ok := diag.FromToken(tok); ok {
			lexical = append(lexical, tok.Fragment)
			r.Report(d)
		}
	}

	file, errs := parser.ParseFile(src, parser.Options{MaxErrors: maxErrors})
	for _, e := range errs {
		if overlapsAny(lexical, e.Location) {
			continue
		}
		r.Report(diag.FromParserError(e))
	}
	return file
}

func overlapsAny(frags []source.Fragment, f source.Fragment) bool {
	for _, lf := range frags {
		if lf.Overlaps(f) || lf.Equal(f) {
			return true
		}
	}
	return false
}
