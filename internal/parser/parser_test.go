package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wright/internal/token"
)

func TestPeekDoesNotAdvance(t *testing.T) {
	p := NewTest("foo bar")
	for range 3 {
		kind, ok := p.PeekKind()
		require.True(t, ok)
		assert.Equal(t, token.Identifier, kind)
	}
	assert.Equal(t, 7, p.BytesRemaining())

	f, ok := p.PeekFragment()
	require.True(t, ok)
	assert.Equal(t, "foo", f.String())
}

func TestNextIfMismatchLeavesParser(t *testing.T) {
	p := NewTest("foo;")
	_, ok := p.NextIf(token.Semi)
	assert.False(t, ok)
	assert.Equal(t, 4, p.BytesRemaining())

	tok, ok := p.NextIf(token.Identifier)
	require.True(t, ok)
	assert.Equal(t, "foo", tok.Text())
	assert.Equal(t, 1, p.BytesRemaining())
}

func TestPeekFragmentOrRestAtEnd(t *testing.T) {
	p := NewTest("x")
	p.Advance(1)
	assert.True(t, p.AtEOF())
	_, ok := p.Peek()
	assert.False(t, ok)
	rest := p.PeekFragmentOrRest()
	assert.True(t, rest.IsEmpty())
	assert.Equal(t, 1, rest.Start)
}

func TestAdvanceStopsAtEnd(t *testing.T) {
	p := NewTest("a b")
	p.Advance(10)
	assert.True(t, p.AtEOF())
}

func TestMatchesIgnoreWhitespace(t *testing.T) {
	p := NewTest("a /* c */ :: // x\n b")
	p.Advance(1)
	assert.True(t, p.MatchesIgnoreWhitespace(token.ColonColon, token.Identifier))
	assert.False(t, p.MatchesIgnoreWhitespace(token.ColonColon, token.Semi))
	assert.False(t, p.MatchesIgnoreWhitespace(token.ColonColon, token.Identifier, token.Semi))
	// ничего не съедено
	kind, _ := p.PeekKind()
	assert.Equal(t, token.Whitespace, kind)
}

func TestConsumeWhitespace(t *testing.T) {
	p := NewTest(" /// doc\n\t/*! inner */x")
	assert.Equal(t, 4, p.ConsumeOptionalWhitespace())
	kind, _ := p.PeekKind()
	assert.Equal(t, token.Identifier, kind)
	assert.Equal(t, 0, p.ConsumeOptionalWhitespace())

	err := p.ConsumeAtLeastOneWhitespace()
	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ExpectedWhitespace, pe.Kind)
	assert.Equal(t, "x", pe.Location.String())
}

func TestUnterminatedCommentIsNotTrivia(t *testing.T) {
	p := NewTest(" /* open")
	assert.Equal(t, 1, p.ConsumeOptionalWhitespace())
	kind, _ := p.PeekKind()
	assert.Equal(t, token.UnterminatedBlockComment, kind)
}

func TestForkAndUpdate(t *testing.T) {
	p := NewTest("a b c")
	fork := p.Fork()
	fork.Advance(2)
	assert.Equal(t, 5, p.BytesRemaining())
	assert.Equal(t, 3, fork.BytesRemaining())

	p.Update(fork)
	assert.Equal(t, 3, p.BytesRemaining())

	// выброшенный форк не влияет на оригинал
	discarded := p.Fork()
	discarded.Advance(3)
	assert.Equal(t, 3, p.BytesRemaining())
}

func TestUpdateFromUnrelatedParserPanics(t *testing.T) {
	p := NewTest("a")
	other := NewTest("a")
	assert.Panics(t, func() { p.Update(other) })
}

func TestUpdateFromStaleForkPanics(t *testing.T) {
	p := NewTest("a b")
	stale := p.Fork()
	p.Advance(2)
	assert.PanicsWithError(t,
		"parser: update from a fork at <unnamed>:1:1 that did not start at <unnamed>:1:3",
		func() { p.Update(stale) })
	assert.Equal(t, 1, p.BytesRemaining())
}

func TestErrorMessage(t *testing.T) {
	p := NewTest("12")
	_, err := p.ParseIdentifier()
	require.Error(t, err)
	assert.Equal(t, `<unnamed>:1:1: expected identifier, found "12"`, err.Error())

	assert.Equal(t, "ExpectedIdentifier", ExpectedIdentifier.String())
	assert.Equal(t, "ErrorKind(200)", ErrorKind(200).String())
	for k := ExpectedWhitespace; k <= ConstMustEndWithSemicolon; k++ {
		assert.NotEqual(t, "parse error", k.Describe(), "%s", k)
		assert.NotContains(t, k.String(), "ErrorKind(", "%d", k)
	}
}
