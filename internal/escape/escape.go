// Package escape resolves escape sequences in the bodies of string, format
// string and char literals.
//
// Recognized escapes:
//
//	\\ \n \r \t \0 \' \" \`   named escapes
//	\xNN                      ASCII byte, NN two hex digits, at most 0x7F
//	\u{N...}                  Unicode scalar value, one to six hex digits
//
// Errors never stop the scan: every bad escape in a body is reported.
package escape

import (
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"
)

// ErrorKind classifies a bad escape sequence.
type ErrorKind uint8

const (
	// UnrecognizedEscapeSequence is a backslash followed by an unknown character or nothing.
	UnrecognizedEscapeSequence ErrorKind = iota + 1
	// NotEnoughHexDigits: fewer than two characters follow \x.
	NotEnoughHexDigits
	// CharactersAreNotHexDigits: the two characters after \x are not both hex digits.
	CharactersAreNotHexDigits
	// HexEscapeTooHigh: \xNN above 0x7F.
	HexEscapeTooHigh
	// ExpectedOpenBrace: \u not followed by '{'.
	ExpectedOpenBrace
	// Empty: \u{}.
	Empty
	// NonDigitCharacter: a non-hex character inside \u{...}.
	NonDigitCharacter
	// TooManyDigits: more than six digits inside \u{...}.
	TooManyDigits
	// MissingClosingBrace: the body ends inside \u{...}.
	MissingClosingBrace
	// InvalidCodepoint: the digits name a surrogate or a value above U+10FFFF.
	InvalidCodepoint
)

var errorKindText = map[ErrorKind]string{
	UnrecognizedEscapeSequence: "unrecognized escape sequence",
	NotEnoughHexDigits:         "not enough hex digits in ASCII escape",
	CharactersAreNotHexDigits:  "ASCII escape characters are not hex digits",
	HexEscapeTooHigh:           "ASCII escape is higher than 0x7F",
	ExpectedOpenBrace:          "expected '{' after \\u",
	Empty:                      "empty unicode escape",
	NonDigitCharacter:          "non-hex character in unicode escape",
	TooManyDigits:              "unicode escape has more than six digits",
	MissingClosingBrace:        "unicode escape is missing its closing '}'",
	InvalidCodepoint:           "unicode escape is not a valid codepoint",
}

func (k ErrorKind) String() string {
	if s, ok := errorKindText[k]; ok {
		return s
	}
	return fmt.Sprintf("escape error %d", uint8(k))
}

// Error is a bad escape at byte range [Start, End) of the literal body.
type Error struct {
	Kind       ErrorKind
	Start, End int
}

func (e Error) Error() string {
	return fmt.Sprintf("%s at %d..%d", e.Kind, e.Start, e.End)
}

// PartKind tells what a Part of a literal body is.
type PartKind uint8

const (
	// Chars is a run of characters without escapes.
	Chars PartKind = iota
	// Escape is a well-formed escape sequence with a decoded Value.
	Escape
	// Invalid is a bad escape sequence; Err says why.
	Invalid
)

// Part is one piece of a literal body, [Start, End) in body bytes.
type Part struct {
	Kind       PartKind
	Start, End int
	Value      rune
	Err        ErrorKind
}

// Parts splits body into character runs and escape sequences, left to right.
func Parts(body string) iter.Seq[Part] {
	return func(yield func(Part) bool) {
		for off := 0; off < len(body); {
			var p Part
			if body[off] == '\\' {
				p = scanEscape(body, off)
			} else {
				end := strings.IndexByte(body[off:], '\\')
				if end < 0 {
					end = len(body)
				} else {
					end += off
				}
				p = Part{Kind: Chars, Start: off, End: end}
			}
			if !yield(p) {
				return
			}
			off = p.End
		}
	}
}

// Unescape decodes body. It returns the decoded text and every bad escape;
// bad escapes contribute nothing to the text.
func Unescape(body string) (string, []Error) {
	// быстрый путь: без обратных слэшей копировать нечего
	if strings.IndexByte(body, '\\') < 0 {
		return body, nil
	}
	var (
		b    strings.Builder
		errs []Error
	)
	b.Grow(len(body))
	for p := range Parts(body) {
		switch p.Kind {
		case Chars:
			b.WriteString(body[p.Start:p.End])
		case Escape:
			b.WriteRune(p.Value)
		case Invalid:
			errs = append(errs, Error{Kind: p.Err, Start: p.Start, End: p.End})
		}
	}
	return b.String(), errs
}

var named = map[byte]rune{
	'\\': '\\',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'0':  0,
	'\'': '\'',
	'"':  '"',
	'`':  '`',
}

// scanEscape разбирает escape, начинающийся с '\' на позиции off.
func scanEscape(body string, off int) Part {
	invalid := func(kind ErrorKind, end int) Part {
		return Part{Kind: Invalid, Start: off, End: end, Err: kind}
	}
	if off+1 >= len(body) {
		return invalid(UnrecognizedEscapeSequence, len(body))
	}
	c := body[off+1]
	if v, ok := named[c]; ok {
		return Part{Kind: Escape, Start: off, End: off + 2, Value: v}
	}
	switch c {
	case 'x':
		return scanASCIIEscape(body, off)
	case 'u':
		return scanUnicodeEscape(body, off)
	}
	_, sz := utf8.DecodeRuneInString(body[off+1:])
	return invalid(UnrecognizedEscapeSequence, off+1+sz)
}

// \xNN
func scanASCIIEscape(body string, off int) Part {
	pos := off + 2
	var digits [2]rune
	for i := range digits {
		if pos >= len(body) {
			return Part{Kind: Invalid, Start: off, End: off + 2, Err: NotEnoughHexDigits}
		}
		r, sz := utf8.DecodeRuneInString(body[pos:])
		digits[i] = r
		pos += sz
	}
	hi, ok1 := hexValue(digits[0])
	lo, ok2 := hexValue(digits[1])
	if !ok1 || !ok2 {
		return Part{Kind: Invalid, Start: off, End: pos, Err: CharactersAreNotHexDigits}
	}
	v := hi<<4 | lo
	if v > 0x7F {
		return Part{Kind: Invalid, Start: off, End: pos, Err: HexEscapeTooHigh}
	}
	return Part{Kind: Escape, Start: off, End: pos, Value: v}
}

const maxUnicodeDigits = 6

// \u{N...}
func scanUnicodeEscape(body string, off int) Part {
	invalid := func(kind ErrorKind, end int) Part {
		return Part{Kind: Invalid, Start: off, End: end, Err: kind}
	}
	pos := off + 2
	if pos >= len(body) || body[pos] != '{' {
		return invalid(ExpectedOpenBrace, pos)
	}
	pos++

	var (
		value  rune
		digits int
	)
	for {
		if pos >= len(body) {
			return invalid(MissingClosingBrace, pos)
		}
		r, sz := utf8.DecodeRuneInString(body[pos:])
		if r == '}' {
			pos++
			break
		}
		d, ok := hexValue(r)
		if !ok {
			return invalid(NonDigitCharacter, pos+sz)
		}
		digits++
		if digits > maxUnicodeDigits {
			return invalid(TooManyDigits, pos+sz)
		}
		value = value<<4 | d
		pos += sz
	}
	if digits == 0 {
		return invalid(Empty, pos)
	}
	if !utf8.ValidRune(value) {
		return invalid(InvalidCodepoint, pos)
	}
	return Part{Kind: Escape, Start: off, End: pos, Value: value}
}

func hexValue(r rune) (rune, bool) {
	switch {
	case r >= '0' && r <= '9':
		return r - '0', true
	case r >= 'a' && r <= 'f':
		return r - 'a' + 10, true
	case r >= 'A' && r <= 'F':
		return r - 'A' + 10, true
	}
	return 0, false
}
