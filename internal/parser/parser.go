package parser

import (
	"fmt"

	"wright/internal/lexer"
	"wright/internal/source"
	"wright/internal/token"
)

// Parser - состояние рекурсивного спуска поверх одного лексера.
// Всё состояние лежит в лексере, поэтому Fork дешёвый и полностью
// независимый: неудачную попытку достаточно просто выбросить.
type Parser struct {
	lexer lexer.Lexer
}

// New creates a parser that pulls tokens from lx.
func New(lx lexer.Lexer) *Parser {
	return &Parser{lexer: lx}
}

// NewSource creates a parser over the whole text of src.
func NewSource(src *source.Source) *Parser {
	return New(lexer.NewSource(src))
}

// NewTest creates a parser over an unnamed static source. Meant for tests and examples.
func NewTest(text string) *Parser {
	return New(lexer.NewTest(text))
}

// Lexer returns a copy of the underlying lexer at the current position.
func (p *Parser) Lexer() lexer.Lexer {
	return p.lexer
}

// Remaining returns the input that has not been consumed yet.
func (p *Parser) Remaining() source.Fragment {
	return p.lexer.Remaining
}

// BytesRemaining returns the number of bytes not consumed yet.
func (p *Parser) BytesRemaining() int {
	return p.lexer.BytesRemaining()
}

// AtEOF reports whether the whole input has been consumed.
func (p *Parser) AtEOF() bool {
	return p.lexer.BytesRemaining() == 0
}

// Peek returns the next token without consuming it.
func (p *Parser) Peek() (token.Token, bool) {
	fork := p.lexer.Fork()
	return fork.NextToken()
}

// PeekKind returns the kind of the next token.
func (p *Parser) PeekKind() (token.Kind, bool) {
	tok, ok := p.Peek()
	return tok.Kind, ok
}

// PeekFragment returns the fragment of the next token.
func (p *Parser) PeekFragment() (source.Fragment, bool) {
	tok, ok := p.Peek()
	return tok.Fragment, ok
}

// PeekFragmentOrRest returns the fragment of the next token, or the empty
// remaining input at the end of the source. Used as an error location.
func (p *Parser) PeekFragmentOrRest() source.Fragment {
	if f, ok := p.PeekFragment(); ok {
		return f
	}
	return p.lexer.Remaining
}

// NextToken consumes and returns the next token. Whitespace and comments are not skipped.
func (p *Parser) NextToken() (token.Token, bool) {
	return p.lexer.NextToken()
}

// NextIf consumes the next token only if it has kind k.
// Otherwise the parser is left unchanged.
func (p *Parser) NextIf(k token.Kind) (token.Token, bool) {
	fork := p.lexer.Fork()
	tok, ok := fork.NextToken()
	if !ok || tok.Kind != k {
		return token.Token{}, false
	}
	p.lexer = fork
	return tok, true
}

// Fork returns an independent copy of the parser at the same position.
func (p *Parser) Fork() *Parser {
	return &Parser{lexer: p.lexer.Fork()}
}

// Update moves p to the position of fork, committing whatever fork consumed.
// It panics if fork was not forked from p (or from an earlier state of p).
func (p *Parser) Update(fork *Parser) {
	if !p.lexer.Remaining.Contains(fork.lexer.Remaining) {
		panic(fmt.Errorf("parser: update from a fork at %s that did not start at %s",
			fork.lexer.Remaining.Debug(), p.lexer.Remaining.Debug()))
	}
	p.lexer = fork.lexer
}

// Advance consumes n tokens, whatever they are, stopping early at the end of input.
func (p *Parser) Advance(n int) {
	for range n {
		if _, ok := p.lexer.NextToken(); !ok {
			return
		}
	}
}

// MatchesIgnoreWhitespace reports whether the next tokens have the given kinds,
// allowing whitespace and comments before each of them. Nothing is consumed.
func (p *Parser) MatchesIgnoreWhitespace(kinds ...token.Kind) bool {
	fork := p.Fork()
	for _, k := range kinds {
		fork.ConsumeOptionalWhitespace()
		tok, ok := fork.NextToken()
		if !ok || tok.Kind != k {
			return false
		}
	}
	return true
}

// ConsumeOptionalWhitespace skips whitespace and terminated comments, doc comments included.
// It returns the number of tokens skipped.
func (p *Parser) ConsumeOptionalWhitespace() int {
	skipped := 0
	for {
		fork := p.lexer.Fork()
		tok, ok := fork.NextToken()
		if !ok || !tok.Kind.IsTrivia() {
			return skipped
		}
		p.lexer = fork
		skipped++
	}
}

// ConsumeAtLeastOneWhitespace is ConsumeOptionalWhitespace that fails with
// ExpectedWhitespace when there is nothing to skip.
func (p *Parser) ConsumeAtLeastOneWhitespace() error {
	if p.ConsumeOptionalWhitespace() == 0 {
		return ExpectedWhitespace.At(p.PeekFragmentOrRest())
	}
	return nil
}

// peekSignificant returns the next token that is not whitespace or a comment.
func (p *Parser) peekSignificant() (token.Token, bool) {
	fork := p.Fork()
	fork.ConsumeOptionalWhitespace()
	return fork.Peek()
}

// significantFragmentOrRest - место ошибки после пропуска пробелов.
func (p *Parser) significantFragmentOrRest() source.Fragment {
	fork := p.Fork()
	fork.ConsumeOptionalWhitespace()
	return fork.PeekFragmentOrRest()
}
