package parser

import (
	"math/big"
	"strings"
	"unicode/utf8"

	"wright/internal/ast"
	"wright/internal/escape"
	"wright/internal/source"
	"wright/internal/token"
)

// ParseBooleanLiteral consumes `true` or `false`.
func (p *Parser) ParseBooleanLiteral() (*ast.BooleanLiteral, error) {
	if tok, ok := p.NextIf(token.KwTrue); ok {
		return &ast.BooleanLiteral{Fragment: tok.Fragment, Value: true}, nil
	}
	if tok, ok := p.NextIf(token.KwFalse); ok {
		return &ast.BooleanLiteral{Fragment: tok.Fragment, Value: false}, nil
	}
	return nil, ExpectedBooleanLiteral.At(p.PeekFragmentOrRest())
}

// ParseIntegerLiteral consumes an integer token and computes its value.
// The radix comes from the prefix (0x, 0o, 0b); underscores are ignored.
func (p *Parser) ParseIntegerLiteral() (*ast.IntegerLiteral, error) {
	tok, ok := p.NextIf(token.IntegerLiteral)
	if !ok {
		err := ExpectedIntegerLiteral.At(p.PeekFragmentOrRest())
		if p.AtEOF() {
			err.WithHelp("found end of source")
		}
		return nil, err
	}

	value, ok := parseInteger(tok.Text())
	if !ok {
		return nil, InvalidIntegerLiteral.At(tok.Fragment)
	}
	return &ast.IntegerLiteral{Fragment: tok.Fragment, Value: value}, nil
}

func parseInteger(text string) (*big.Int, bool) {
	radix := 10
	if len(text) >= 2 && text[0] == '0' {
		switch text[1] {
		case 'x', 'X':
			radix, text = 16, text[2:]
		case 'o':
			radix, text = 8, text[2:]
		case 'b', 'B':
			radix, text = 2, text[2:]
		}
	}
	digits := strings.ReplaceAll(text, "_", "")
	if digits == "" {
		return nil, false
	}
	return new(big.Int).SetString(digits, radix)
}

// ParseStringLiteral consumes a "..." or `...` literal and unescapes its body.
// All escape errors of the literal are returned together.
func (p *Parser) ParseStringLiteral() (*ast.StringLiteral, error) {
	kind, ok := p.PeekKind()
	if !ok || (kind != token.StringLiteral && kind != token.FormatStringLiteral) {
		return nil, ExpectedStringLiteral.At(p.PeekFragmentOrRest())
	}
	tok, _ := p.NextToken()
	if !tok.Terminated {
		return nil, UnterminatedStringLiteral.At(tok.Fragment)
	}

	value, err := unescapeBody(tok)
	if err != nil {
		return nil, err
	}
	return &ast.StringLiteral{
		Fragment: tok.Fragment,
		Value:    value,
		Format:   kind == token.FormatStringLiteral,
	}, nil
}

// ParseCharLiteral consumes a '...' literal that holds exactly one character.
func (p *Parser) ParseCharLiteral() (*ast.CharLiteral, error) {
	tok, ok := p.NextIf(token.CharLiteral)
	if !ok {
		return nil, ExpectedCharLiteral.At(p.PeekFragmentOrRest())
	}
	if !tok.Terminated {
		return nil, UnterminatedCharLiteral.At(tok.Fragment)
	}

	value, err := unescapeBody(tok)
	if err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(value) != 1 {
		return nil, InvalidCharLiteral.At(tok.Fragment)
	}
	r, _ := utf8.DecodeRuneInString(value)
	return &ast.CharLiteral{Fragment: tok.Fragment, Value: r}, nil
}

// unescapeBody снимает кавычки с завершённого литерала и разбирает escape-последовательности.
func unescapeBody(tok token.Token) (string, *Error) {
	f := tok.Fragment
	body := source.Fragment{Source: f.Source, Start: f.Start + 1, End: f.End - 1}
	value, errs := escape.Unescape(body.String())
	if len(errs) > 0 {
		err := InvalidEscapeSequence.At(body)
		err.Escapes = errs
		return "", err
	}
	return value, nil
}
