package parser

import (
	"wright/internal/ast"
	"wright/internal/source"
	"wright/internal/token"
)

// ParseIdentifier consumes one identifier token. Keywords never lex as
// identifiers, so "record" fails here as well.
func (p *Parser) ParseIdentifier() (ast.Identifier, error) {
	tok, ok := p.NextIf(token.Identifier)
	if !ok {
		return ast.Identifier{}, ExpectedIdentifier.At(p.PeekFragmentOrRest())
	}
	return ast.Identifier{Fragment: tok.Fragment}, nil
}

// ParsePath parses `ident (:: ident)*`, allowing whitespace and comments
// around each separator. The path is greedy, but a "::" that is not followed
// by an identifier is left unconsumed.
func (p *Parser) ParsePath() (ast.Path, error) {
	head, err := p.ParseIdentifier()
	if err != nil {
		return ast.Path{}, ExpectedPath.At(p.PeekFragmentOrRest())
	}

	var tail []ast.Identifier
	for p.MatchesIgnoreWhitespace(token.ColonColon, token.Identifier) {
		p.ConsumeOptionalWhitespace()
		p.Advance(1) // ::
		p.ConsumeOptionalWhitespace()
		seg, err := p.ParseIdentifier()
		if err != nil {
			// MatchesIgnoreWhitespace уже проверил идентификатор
			panic(err)
		}
		tail = append(tail, seg)
	}

	last := head.Fragment
	if len(tail) > 0 {
		last = tail[len(tail)-1].Fragment
	}
	return ast.Path{
		Fragment: source.Fragment{Source: head.Fragment.Source, Start: head.Fragment.Start, End: last.End},
		Head:     head,
		Tail:     tail,
	}, nil
}
