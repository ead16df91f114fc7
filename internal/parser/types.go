package parser

import (
	"wright/internal/ast"
	"wright/internal/source"
	"wright/internal/token"
)

// ParseType parses any type signature. Alternatives are tried in order:
// primitive, reference, named. Once a reference or generic argument list has
// been entered, its failure is returned instead of trying the next form.
func (p *Parser) ParseType() (ast.Type, error) {
	if atomic, err := p.ParseAtomicType(); err == nil {
		return atomic, nil
	}

	before := p.BytesRemaining()
	ref, err := p.ParseReferenceType()
	if err == nil {
		return ref, nil
	}
	if p.BytesRemaining() != before {
		return nil, withHelp(err, "encountered error while parsing reference type signature")
	}

	named, err := p.ParseNamedType()
	if err == nil {
		return named, nil
	}
	if p.BytesRemaining() != before {
		return nil, err
	}

	return nil, ExpectedTypeSignature.At(p.PeekFragmentOrRest())
}

// ParseAtomicType consumes one primitive type keyword.
func (p *Parser) ParseAtomicType() (*ast.AtomicTy, error) {
	tok, ok := p.Peek()
	if !ok || !tok.Kind.IsPrimitive() {
		return nil, ExpectedAtomicTypeSignature.At(p.PeekFragmentOrRest())
	}
	variant, _ := ast.AtomicFromToken(tok.Kind)
	p.Advance(1)
	return &ast.AtomicTy{Fragment: tok.Fragment, Variant: variant}, nil
}

// ParseReferenceType parses `@T`. Everything after the '@' is committed.
func (p *Parser) ParseReferenceType() (*ast.ReferenceTy, error) {
	at, ok := p.NextIf(token.At)
	if !ok {
		return nil, ExpectedReferenceTypeSignature.At(p.PeekFragmentOrRest())
	}
	p.ConsumeOptionalWhitespace()

	target, err := p.ParseType()
	if err != nil {
		return nil, err
	}
	return &ast.ReferenceTy{
		Fragment: at.Fragment.Cover(target.Span()),
		Target:   target,
	}, nil
}

// ParseNamedType parses a path with an optional generic argument list:
//
//	Name
//	Name<A, B>
//	Name<A, B,>   // висячая запятая разрешена
//
// The list must not be empty. Inside it, a failure is an error of this production.
func (p *Parser) ParseNamedType() (*ast.NamedTy, error) {
	name, err := p.ParsePath()
	if err != nil {
		return nil, ExpectedNamedTypeSignature.At(p.PeekFragmentOrRest())
	}

	if !p.MatchesIgnoreWhitespace(token.Lt) {
		return &ast.NamedTy{Fragment: name.Fragment, Name: name}, nil
	}
	p.ConsumeOptionalWhitespace()
	p.Advance(1) // <

	var generics []ast.Type
	for {
		p.ConsumeOptionalWhitespace()
		ty, err := p.ParseType()
		if err != nil {
			return nil, withHelp(err, "expected a type argument in generic type signature")
		}
		generics = append(generics, ty)

		if closing, ok := p.closeGenerics(); ok {
			return &ast.NamedTy{
				Fragment: name.Fragment.Cover(closing),
				Name:     name,
				Generics: generics,
			}, nil
		}

		if !p.MatchesIgnoreWhitespace(token.Comma) {
			return nil, UnterminatedGenericTypeSignature.At(p.significantFragmentOrRest())
		}
		p.ConsumeOptionalWhitespace()
		p.Advance(1) // ,
	}
}

// closeGenerics consumes `>` or `, >` (whitespace allowed) and returns the
// fragment of the closing bracket. A `>>` token is split so that nested
// argument lists like A<B<C>> close one level at a time.
func (p *Parser) closeGenerics() (source.Fragment, bool) {
	fork := p.Fork()
	fork.ConsumeOptionalWhitespace()
	if _, ok := fork.NextIf(token.Comma); ok {
		fork.ConsumeOptionalWhitespace()
	}

	tok, ok := fork.Peek()
	if !ok {
		return source.Fragment{}, false
	}
	switch tok.Kind {
	case token.Gt:
		fork.Advance(1)
		p.Update(fork)
		return tok.Fragment, true
	case token.GtGt:
		// отрезаем только первый '>' от '>>'
		closing, rest := fork.lexer.Remaining.SplitAt(1)
		fork.lexer.Remaining = rest
		p.Update(fork)
		return closing, true
	default:
		return source.Fragment{}, false
	}
}
