package parser

import (
	"wright/internal/ast"
	"wright/internal/source"
	"wright/internal/token"
)

// ParseDecl parses one top-level declaration, choosing the production by the
// keyword after an optional `pub`.
func (p *Parser) ParseDecl() (ast.Decl, error) {
	fork := p.Fork()
	if _, ok := fork.NextIf(token.KwPub); ok {
		fork.ConsumeOptionalWhitespace()
	}
	kind, _ := fork.PeekKind()

	switch kind {
	case token.KwUse:
		return asDecl(p.ParseImportDecl())
	case token.KwType:
		return asDecl(p.ParseTypeAlias())
	case token.KwConst:
		return asDecl(p.ParseConstDecl())
	default:
		return nil, ExpectedDeclaration.At(p.PeekFragmentOrRest())
	}
}

// ParseImportDecl parses `(pub)? use path (as name)?;`.
func (p *Parser) ParseImportDecl() (*ast.ImportDecl, error) {
	start, vis, ok := p.beginDecl(token.KwUse)
	if !ok {
		return nil, ExpectedImportDeclaration.At(p.PeekFragmentOrRest())
	}

	if err := p.ConsumeAtLeastOneWhitespace(); err != nil {
		return nil, withHelp(err, "whitespace needed after \"use\"")
	}
	item, err := p.ParsePath()
	if err != nil {
		return nil, err
	}

	// "as ..." требует пробела после пути
	var alias *ast.Identifier
	if p.ConsumeOptionalWhitespace() > 0 {
		if _, ok := p.NextIf(token.KwAs); ok {
			if err := p.ConsumeAtLeastOneWhitespace(); err != nil {
				return nil, withHelp(err, "whitespace needed between \"as\" and binding")
			}
			ident, err := p.ParseIdentifier()
			if err != nil {
				return nil, withHelp(err, "expected binding in \"use ... as\" declaration")
			}
			alias = &ident
		}
	}

	semi, err := p.endDecl(ImportMustEndWithSemicolon)
	if err != nil {
		return nil, err
	}
	return &ast.ImportDecl{
		Fragment: start.Cover(semi),
		Vis:      vis,
		Item:     item,
		As:       alias,
	}, nil
}

// ParseTypeAlias parses `(pub)? type Name (= Type)?;`. Without a target the type is abstract.
func (p *Parser) ParseTypeAlias() (*ast.TypeAlias, error) {
	start, vis, ok := p.beginDecl(token.KwType)
	if !ok {
		return nil, ExpectedTypeAliasDeclaration.At(p.PeekFragmentOrRest())
	}

	if err := p.ConsumeAtLeastOneWhitespace(); err != nil {
		return nil, withHelp(err, "whitespace needed after \"type\"")
	}
	name, err := p.ParseIdentifier()
	if err != nil {
		return nil, withHelp(err, "expected name of the type alias")
	}

	var target ast.Type
	if p.MatchesIgnoreWhitespace(token.Eq) {
		p.ConsumeOptionalWhitespace()
		p.Advance(1) // =
		p.ConsumeOptionalWhitespace()
		target, err = p.ParseType()
		if err != nil {
			return nil, withHelp(err, "expected aliased type after '='")
		}
	}

	semi, err := p.endDecl(TypeAliasMustEndWithSemicolon)
	if err != nil {
		return nil, err
	}
	return &ast.TypeAlias{
		Fragment: start.Cover(semi),
		Vis:      vis,
		Name:     name,
		Target:   target,
	}, nil
}

// ParseConstDecl parses `(pub)? const NAME: Type = value;`.
func (p *Parser) ParseConstDecl() (*ast.ConstDecl, error) {
	start, vis, ok := p.beginDecl(token.KwConst)
	if !ok {
		return nil, ExpectedConstDeclaration.At(p.PeekFragmentOrRest())
	}

	if err := p.ConsumeAtLeastOneWhitespace(); err != nil {
		return nil, withHelp(err, "whitespace needed after \"const\"")
	}
	name, err := p.ParseIdentifier()
	if err != nil {
		return nil, withHelp(err, "expected name of the constant")
	}

	if !p.MatchesIgnoreWhitespace(token.Colon) {
		return nil, ExpectedConstTypeAnnotation.At(p.significantFragmentOrRest())
	}
	p.ConsumeOptionalWhitespace()
	p.Advance(1) // :
	p.ConsumeOptionalWhitespace()
	ty, err := p.ParseType()
	if err != nil {
		return nil, err
	}

	if !p.MatchesIgnoreWhitespace(token.Eq) {
		return nil, ExpectedConstInitializer.At(p.significantFragmentOrRest())
	}
	p.ConsumeOptionalWhitespace()
	p.Advance(1) // =
	p.ConsumeOptionalWhitespace()
	value, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}

	semi, err := p.endDecl(ConstMustEndWithSemicolon)
	if err != nil {
		return nil, err
	}
	return &ast.ConstDecl{
		Fragment: start.Cover(semi),
		Vis:      vis,
		Name:     name,
		Ty:       ty,
		Value:    value,
	}, nil
}

// beginDecl consumes an optional `pub` and the keyword kw. On a mismatch nothing is consumed.
// start is the fragment of the first consumed token.
func (p *Parser) beginDecl(kw token.Kind) (start source.Fragment, vis ast.Visibility, ok bool) {
	fork := p.Fork()
	vis = ast.VisPrivate

	pub, hasPub := fork.NextIf(token.KwPub)
	if hasPub {
		if fork.ConsumeOptionalWhitespace() == 0 {
			return source.Fragment{}, vis, false
		}
		vis = ast.VisPublic
	}
	kwTok, ok := fork.NextIf(kw)
	if !ok {
		return source.Fragment{}, vis, false
	}

	p.Update(fork)
	if hasPub {
		return pub.Fragment, vis, true
	}
	return kwTok.Fragment, vis, true
}

// endDecl съедает необязательные пробелы и обязательную ';'.
func (p *Parser) endDecl(missing ErrorKind) (source.Fragment, error) {
	p.ConsumeOptionalWhitespace()
	semi, ok := p.NextIf(token.Semi)
	if !ok {
		return source.Fragment{}, missing.At(p.PeekFragmentOrRest())
	}
	return semi.Fragment, nil
}

func asDecl[T ast.Decl](d T, err error) (ast.Decl, error) {
	if err != nil {
		return nil, err
	}
	return d, nil
}
