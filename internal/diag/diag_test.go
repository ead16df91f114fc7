package diag

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wright/internal/escape"
	"wright/internal/lexer"
	"wright/internal/parser"
	"wright/internal/source"
	"wright/internal/token"
)

func at(src *source.Source, start, end int) source.Fragment {
	return source.Fragment{Source: src, Start: start, End: end}
}

func TestSeverityOrderAndNames(t *testing.T) {
	assert.Less(t, SevHelp, SevNote)
	assert.Less(t, SevWarning, SevError)
	assert.Less(t, SevError, SevBug)
	for sev := SevHelp; sev <= SevBug; sev++ {
		got, ok := ParseSeverity(sev.String())
		require.True(t, ok, sev.String())
		assert.Equal(t, sev, got)
	}
	_, ok := ParseSeverity("fatal")
	assert.False(t, ok)
}

func TestCodeID(t *testing.T) {
	cases := map[Code]string{
		LexUnknownChar:      "LEX1001",
		SynExpectIdentifier: "SYN2002",
		IOInvalidUTF8:       "IO3002",
		EscEmpty:            "ESC4006",
		UnknownCode:         "E0000",
	}
	for code, want := range cases {
		assert.Equal(t, want, code.ID())
	}
	assert.Equal(t, "[SYN2025]: Expected ';'", SynExpectSemicolon.String())
	assert.Equal(t, "Unknown error", Code(9999).Title())
}

func TestEveryParserKindHasCode(t *testing.T) {
	for k := parser.ExpectedWhitespace; k <= parser.ConstMustEndWithSemicolon; k++ {
		code := SyntaxCode(k)
		assert.NotEqual(t, SynInfo, code, k.String())
		assert.Equal(t, "SYN", code.ID()[:3], k.String())
	}
}

func TestEveryEscapeKindHasCode(t *testing.T) {
	for k := escape.UnrecognizedEscapeSequence; k <= escape.InvalidCodepoint; k++ {
		assert.NotEqual(t, UnknownCode, EscapeCode(k), k.String())
	}
}

func TestBagLimitAndCounts(t *testing.T) {
	src := source.FromString(source.TestName("bag"), "abc")
	b := NewBag(2)
	assert.True(t, b.Add(New(SevWarning, LexInfo, at(src, 0, 1), "w")))
	assert.True(t, b.Add(NewError(LexUnknownChar, at(src, 1, 2), "e")))
	assert.False(t, b.Add(NewError(LexUnknownChar, at(src, 2, 3), "dropped")))
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 2, b.Cap())
	assert.True(t, b.HasErrors())
	assert.True(t, b.HasWarnings())
	assert.Equal(t, 1, b.Count(SevError))
}

func TestBagUnlimitedIsConcurrent(t *testing.T) {
	b := NewBag(0)
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 50 {
				b.Add(Diagnostic{Severity: SevInfo, Message: fmt.Sprint(i, j)})
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 400, b.Len())
	assert.False(t, b.HasWarnings())
}

func TestBagSortAndDedup(t *testing.T) {
	a := source.FromString(source.TestName("a"), "0123456789")
	z := source.FromString(source.TestName("z"), "0123456789")
	b := NewBag(0)
	b.Add(NewError(SynExpectType, at(z, 0, 1), "z"))
	b.Add(NewError(SynExpectType, at(a, 5, 6), "late"))
	b.Add(New(SevWarning, SynExpectPath, at(a, 1, 2), "warn"))
	b.Add(NewError(SynExpectType, at(a, 1, 2), "err"))
	b.Add(NewError(SynExpectType, at(a, 1, 2), "err"))

	b.Sort()
	b.Dedup()

	var msgs []string
	for _, d := range b.Items() {
		msgs = append(msgs, d.Message)
	}
	assert.Equal(t, []string{"err", "warn", "late", "z"}, msgs)
}

func TestBagMergeGrowsLimit(t *testing.T) {
	x, y := NewBag(1), NewBag(1)
	x.Add(Diagnostic{Message: "x"})
	y.Add(Diagnostic{Message: "y"})
	x.Merge(y)
	x.Merge(x)
	assert.Equal(t, 2, x.Len())
	assert.Equal(t, 2, x.Cap())
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	src := source.FromString(source.TestName("r"), "use x")
	bag := NewBag(0)
	r := NewDedupReporter(BagReporter{Bag: bag})

	b := ReportError(r, SynExpectSemicolon, at(src, 5, 5), "missing ;").
		WithHighlight(at(src, 0, 3), "declaration starts here").
		WithNote("add ';'")
	b.Emit()
	b.Emit()
	ReportError(r, SynExpectSemicolon, at(src, 5, 5), "missing ;").Emit()
	ReportWarning(r, SynExpectSemicolon, at(src, 5, 5), "missing ;").Emit()

	items := bag.Items()
	require.Len(t, items, 2)
	assert.Len(t, items[0].Highlights, 2)
	assert.Equal(t, []string{"add ';'"}, items[0].Notes)
	assert.Equal(t, SevWarning, items[1].Severity)

	var nilBuilder *ReportBuilder
	assert.Nil(t, nilBuilder.WithNote("x"))
	nilBuilder.Emit()
}

func TestPrimaryFallsBackToFirstHighlight(t *testing.T) {
	src := source.FromString(source.TestName("p"), "abc")
	d := Diagnostic{}.WithHighlight(at(src, 1, 2), "", false)
	f, ok := d.Primary()
	require.True(t, ok)
	assert.Equal(t, "b", f.String())
	assert.Equal(t, "<p>", d.SourceName())

	_, ok = Diagnostic{}.Primary()
	assert.False(t, ok)
}

func TestFromParserError(t *testing.T) {
	_, err := parser.NewTest("12").ParseIdentifier()
	var pe *parser.Error
	require.ErrorAs(t, err, &pe)
	pe.WithHelp("identifiers start with a letter")

	d := FromParserError(pe)
	assert.Equal(t, SevError, d.Severity)
	assert.Equal(t, SynExpectIdentifier, d.Code)
	assert.Equal(t, "expected identifier", d.Message)
	require.Len(t, d.Highlights, 1)
	assert.Equal(t, `found "12"`, d.Highlights[0].Message)
	assert.Equal(t, []string{"identifiers start with a letter"}, d.Notes)
}

func TestFromParserErrorHighlightsEachEscape(t *testing.T) {
	_, err := parser.NewTest(`"ok\q\x8G"`).ParseStringLiteral()
	var pe *parser.Error
	require.ErrorAs(t, err, &pe)

	d := FromParserError(pe)
	assert.Equal(t, SynInvalidEscapeLiteral, d.Code)
	require.Len(t, d.Highlights, 2)
	assert.True(t, d.Highlights[0].Primary)
	assert.False(t, d.Highlights[1].Primary)
	assert.Equal(t, `\q`, d.Highlights[0].Fragment.String())
	assert.Equal(t, escape.UnrecognizedEscapeSequence.String(), d.Highlights[0].Message)

	diags := FromEscapeErrors(pe.Location, pe.Escapes)
	require.Len(t, diags, 2)
	assert.Equal(t, EscUnrecognized, diags[0].Code)
	assert.Equal(t, EscNotHexDigits, diags[1].Code)
}

func TestFromToken(t *testing.T) {
	lx := lexer.NewTest("a $ \"ok\"")
	toks := lx.All()
	var codes []Code
	for _, tok := range toks {
		if d, ok := FromToken(tok); ok {
			codes = append(codes, d.Code)
		}
	}
	assert.Empty(t, codes)

	lx = lexer.NewTest("€ /* never")
	for tok := range lx.Tokens() {
		if d, ok := FromToken(tok); ok {
			codes = append(codes, d.Code)
		}
	}
	assert.Equal(t, []Code{LexUnknownChar, LexUnterminatedBlockComment}, codes)

	d, ok := FromToken(token.Token{Kind: token.StringLiteral})
	assert.True(t, ok)
	assert.Equal(t, LexUnterminatedString, d.Code)
	assert.Empty(t, d.Highlights)
}

func TestFromLoadError(t *testing.T) {
	utf := &source.LoadError{Path: "x.wr", Op: "utf8", Err: source.ErrInvalidUTF8}
	assert.Equal(t, IOInvalidUTF8, FromLoadError(utf).Code)

	lock := &source.LoadError{Path: "x.wr", Op: "lock", Err: errors.New("interrupted")}
	assert.Equal(t, IOLockFailed, FromLoadError(lock).Code)

	d := FromLoadError(errors.New("boom"))
	assert.Equal(t, IOLoadFileError, d.Code)
	assert.Equal(t, "boom", d.Message)
}
