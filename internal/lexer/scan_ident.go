package lexer

import (
	"unicode"

	"wright/internal/token"
)

// matchIdentOrKeyword сканирует идентификатор и проверяет его через LookupKeyword.
// Одиночный '_' - отдельный токен Underscore.
func matchIdentOrKeyword(text string) (int, token.Kind, bool) {
	c := newCursor(text)
	if r, _ := c.peekRune(); !isIdentStart(r) {
		return 0, 0, false
	}
	c.bumpRune()
	for !c.eof() {
		r, _ := c.peekRune()
		if !isIdentContinue(r) {
			break
		}
		c.bumpRune()
	}

	lex := text[:c.off]
	if lex == "_" {
		return c.off, token.Underscore, true
	}
	if k, ok := token.LookupKeyword(lex); ok {
		return c.off, k, true
	}
	return c.off, token.Identifier, true
}

// ASCII fast-path; остальное через таблицы unicode (приближение XID_Start/XID_Continue).
func isIdentStart(r rune) bool {
	if r < utf8RuneSelf {
		return r == '_' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
	}
	return unicode.IsLetter(r) || unicode.Is(unicode.Nl, r)
}

func isIdentContinue(r rune) bool {
	if r < utf8RuneSelf {
		return isIdentStart(r) || (r >= '0' && r <= '9')
	}
	return isIdentStart(r) || unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc)
}
