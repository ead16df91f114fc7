package lexer

import (
	"unicode"

	"wright/internal/token"
)

// matchQuoted: "..." строка, '...' символ, `...` форматная строка.
// Обратный слэш экранирует следующий символ без разбора смысла escape;
// значения разбирает пакет escape. Без закрывающей кавычки литерал
// поглощает весь остаток и помечается как незавершённый.
func matchQuoted(text string) (n int, kind token.Kind, terminated, ok bool) {
	c := newCursor(text)
	quote := c.peek()
	switch quote {
	case '"':
		kind = token.StringLiteral
	case '\'':
		kind = token.CharLiteral
	case '`':
		kind = token.FormatStringLiteral
	default:
		return 0, 0, false, false
	}
	c.bump()

	for !c.eof() {
		switch c.bumpRune() {
		case rune(quote):
			return c.off, kind, true, true
		case '\\':
			c.bumpRune()
		}
	}
	return c.off, kind, false, true
}

// matchWhitespace: непрерывная последовательность пробельных символов - один токен.
func matchWhitespace(text string) (int, bool) {
	c := newCursor(text)
	for !c.eof() {
		r, _ := c.peekRune()
		if !unicode.IsSpace(r) {
			break
		}
		c.bumpRune()
	}
	return c.off, c.off > 0
}
