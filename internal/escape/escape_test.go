package escape_test

import (
	"fmt"
	"runtime"
	"slices"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"wright/internal/escape"
)

func errKinds(errs []escape.Error) []escape.ErrorKind {
	out := make([]escape.ErrorKind, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Kind)
	}
	return out
}

func TestNoEscapes(t *testing.T) {
	got, errs := escape.Unescape("test string")
	assert.Empty(t, errs)
	assert.Equal(t, "test string", got)
}

func TestNamedEscapes(t *testing.T) {
	got, errs := escape.Unescape(`a\\b\nc\rd\te\0f\'g\"h\`+"`")
	require.Empty(t, errs)
	assert.Equal(t, "a\\b\nc\rd\te\x00f'g\"h`", got)
}

func TestAllASCIIByteEscapes(t *testing.T) {
	for n := 0; n <= 0x7F; n++ {
		for _, format := range []string{`\x%02X`, `\x%02x`} {
			body := fmt.Sprintf(format, n)
			got, errs := escape.Unescape(body)
			require.Empty(t, errs, body)
			require.Equal(t, string(rune(n)), got, body)
		}
	}
}

func TestASCIIEscapeErrors(t *testing.T) {
	tests := []struct {
		body string
		want escape.Error
	}{
		{`\x80`, escape.Error{Kind: escape.HexEscapeTooHigh, Start: 0, End: 4}},
		{`\xFF`, escape.Error{Kind: escape.HexEscapeTooHigh, Start: 0, End: 4}},
		{`\xG1`, escape.Error{Kind: escape.CharactersAreNotHexDigits, Start: 0, End: 4}},
		{`\x1`, escape.Error{Kind: escape.NotEnoughHexDigits, Start: 0, End: 2}},
		{`ab\x`, escape.Error{Kind: escape.NotEnoughHexDigits, Start: 2, End: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			_, errs := escape.Unescape(tt.body)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.want, errs[0])
		})
	}
}

func TestUnicodeEscapeErrors(t *testing.T) {
	tests := []struct {
		body string
		want escape.ErrorKind
	}{
		{`\u{}`, escape.Empty},
		{`\u{FFFF`, escape.MissingClosingBrace},
		{`\u{`, escape.MissingClosingBrace},
		{`\u41`, escape.ExpectedOpenBrace},
		{`\u`, escape.ExpectedOpenBrace},
		{`\u{12G4}`, escape.NonDigitCharacter},
		{`\u{1234567}`, escape.TooManyDigits},
		{`\u{D800}`, escape.InvalidCodepoint},
		{`\u{110000}`, escape.InvalidCodepoint},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			_, errs := escape.Unescape(tt.body)
			require.NotEmpty(t, errs)
			assert.Equal(t, tt.want, errs[0].Kind)
		})
	}
}

func TestUnrecognizedEscape(t *testing.T) {
	_, errs := escape.Unescape(`\q\é\`)
	assert.Equal(t, []escape.Error{
		{Kind: escape.UnrecognizedEscapeSequence, Start: 0, End: 2},
		{Kind: escape.UnrecognizedEscapeSequence, Start: 2, End: 5},
		{Kind: escape.UnrecognizedEscapeSequence, Start: 5, End: 6},
	}, errs)
}

func TestAllErrorsAreCollected(t *testing.T) {
	got, errs := escape.Unescape(`ok \x99 mid \u{} end \z \n`)
	assert.Equal(t, []escape.ErrorKind{
		escape.HexEscapeTooHigh, escape.Empty, escape.UnrecognizedEscapeSequence,
	}, errKinds(errs))
	assert.Equal(t, "ok  mid  end  \n", got)
}

func TestParts(t *testing.T) {
	body := `ab\n\u{1F600}c\q`
	var parts []escape.Part
	for p := range escape.Parts(body) {
		parts = append(parts, p)
	}
	assert.Equal(t, []escape.Part{
		{Kind: escape.Chars, Start: 0, End: 2},
		{Kind: escape.Escape, Start: 2, End: 4, Value: '\n'},
		{Kind: escape.Escape, Start: 4, End: 13, Value: '😀'},
		{Kind: escape.Chars, Start: 13, End: 14},
		{Kind: escape.Invalid, Start: 14, End: 16, Err: escape.UnrecognizedEscapeSequence},
	}, parts)
}

// Проверяет каждое значение 0..=0xFFFFFF; шард на горутину.
func TestAllUnicodeEscapes(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive codepoint check")
	}
	const limit = 0xFFFFFF
	workers := runtime.GOMAXPROCS(0)
	var g errgroup.Group
	for w := range workers {
		g.Go(func() error {
			for n := w; n <= limit; n += workers {
				body := fmt.Sprintf(`\u{%06X}`, n)
				got, errs := escape.Unescape(body)
				if utf8.ValidRune(rune(n)) {
					if len(errs) != 0 || got != string(rune(n)) {
						return fmt.Errorf("%s: got %q, errors %v", body, got, errs)
					}
					continue
				}
				if !slices.Equal(errKinds(errs), []escape.ErrorKind{escape.InvalidCodepoint}) {
					return fmt.Errorf("%s: want InvalidCodepoint, got %v", body, errs)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
