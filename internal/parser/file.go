package parser

import (
	"errors"

	"wright/internal/ast"
	"wright/internal/source"
	"wright/internal/token"
)

// Options tune ParseFile.
type Options struct {
	// MaxErrors stops parsing after this many errors; 0 means no limit.
	MaxErrors int
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o Options) Enough(n int) bool {
	return o.MaxErrors > 0 && n >= o.MaxErrors
}

// ParseFile parses every declaration of src.
func ParseFile(src *source.Source, opts Options) (*ast.File, []*Error) {
	return NewSource(src).ParseFile(opts)
}

// ParseFile parses declarations until the input is exhausted. A failed
// declaration is recorded and skipped up to and including the next ';' so
// that later declarations are still parsed. The returned file holds only
// the declarations that parsed.
func (p *Parser) ParseFile(opts Options) (*ast.File, []*Error) {
	file := &ast.File{Source: p.lexer.Remaining.Source}
	var errs []*Error

	for {
		p.ConsumeOptionalWhitespace()
		if p.AtEOF() {
			break
		}
		decl, err := p.ParseDecl()
		if err == nil {
			file.Decls = append(file.Decls, decl)
			continue
		}

		var pe *Error
		if !errors.As(err, &pe) {
			pe = ExpectedDeclaration.At(p.PeekFragmentOrRest())
		}
		errs = append(errs, pe)
		if opts.Enough(len(errs)) {
			break
		}
		p.resyncTop()
	}
	return file, errs
}

// resyncTop - восстановление после ошибки на верхнем уровне:
// прокручиваем до ';' включительно или до EOF. Всегда съедает хотя бы один токен.
func (p *Parser) resyncTop() {
	for {
		tok, ok := p.NextToken()
		if !ok || tok.Kind == token.Semi {
			return
		}
	}
}
