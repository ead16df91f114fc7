package lexer

import (
	"iter"
	"strings"

	"wright/internal/source"
	"wright/internal/token"
)

// Lexer превращает фрагмент исходника в поток токенов по одному за вызов.
// Единственное состояние - ещё не разобранный фрагмент, поэтому копия
// лексера (Fork) является полноценной точкой отката.
type Lexer struct {
	Remaining source.Fragment
}

// New creates a lexer over f.
func New(f source.Fragment) Lexer {
	return Lexer{Remaining: f}
}

// NewSource creates a lexer over the whole text of src.
func NewSource(src *source.Source) Lexer {
	return New(src.Fragment())
}

// NewTest creates a lexer over an unnamed static source. Meant for tests and examples.
func NewTest(text string) Lexer {
	return NewSource(source.FromStatic(source.NoName(), text))
}

// BytesRemaining returns the number of bytes not yet turned into tokens.
func (lx *Lexer) BytesRemaining() int {
	return lx.Remaining.Len()
}

// Fork returns an independent copy at the same position.
func (lx *Lexer) Fork() Lexer {
	return *lx
}

// OffsetFrom returns how many bytes lx has consumed past origin.
// It panics unless lx was forked from origin (or origin from an earlier state of lx).
func (lx *Lexer) OffsetFrom(origin Lexer) int {
	return lx.Remaining.OffsetFrom(origin.Remaining)
}

// Matches reports whether the remaining input starts with prefix.
func (lx *Lexer) Matches(prefix string) bool {
	return strings.HasPrefix(lx.Remaining.String(), prefix)
}

// NextToken returns the next token, or false once the input is exhausted.
//
// Each call tries, in order: comments, trivial operator/punctuation tokens,
// identifiers and keywords, integer literals, quoted literals and whitespace.
// Anything else becomes a one-character Unknown token, so every call that
// returns a token consumes at least one byte.
func (lx *Lexer) NextToken() (token.Token, bool) {
	if lx.Remaining.IsEmpty() {
		return token.Token{}, false
	}
	text := lx.Remaining.String()

	if n, kind, ok := matchComment(text); ok {
		return lx.split(n, kind), true
	}
	if n, kind, ok := matchTrivial(text); ok {
		return lx.split(n, kind), true
	}
	if n, kind, ok := matchIdentOrKeyword(text); ok {
		return lx.split(n, kind), true
	}
	if n, ok := matchInteger(text); ok {
		return lx.split(n, token.IntegerLiteral), true
	}
	if n, kind, terminated, ok := matchQuoted(text); ok {
		tok := lx.split(n, kind)
		tok.Terminated = terminated
		return tok, true
	}
	if n, ok := matchWhitespace(text); ok {
		return lx.split(n, token.Whitespace), true
	}

	c := newCursor(text)
	c.bumpRune()
	return lx.split(c.off, token.Unknown), true
}

// Tokens yields tokens until the input is exhausted.
func (lx *Lexer) Tokens() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for {
			tok, ok := lx.NextToken()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// All lexes the remaining input to the end.
func (lx *Lexer) All() []token.Token {
	out := make([]token.Token, 0, lx.BytesRemaining()/4+1)
	for tok := range lx.Tokens() {
		out = append(out, tok)
	}
	return out
}

// split отрезает n байт от начала Remaining в токен. Границу гарантирует сканер.
func (lx *Lexer) split(n int, kind token.Kind) token.Token {
	head, rest := lx.Remaining.SplitAtUnchecked(n)
	lx.Remaining = rest
	return token.Token{Kind: kind, Fragment: head}
}
