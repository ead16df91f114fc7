package lexer

import (
	"strings"
	"unicode/utf8"
)

// cursor - позиция внутри ещё не разобранного текста.
// Сканеры двигают его, а затем лексер отрезает off байт в токен.
type cursor struct {
	text string
	off  int
}

func newCursor(text string) cursor {
	return cursor{text: text}
}

// eof проверяет, достигнут ли конец текста
func (c *cursor) eof() bool {
	return c.off >= len(c.text)
}

// peek читает текущий байт, если есть, иначе возвращает 0
func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.text[c.off]
}

// peek2 читает текущий и следующий байт, если есть, иначе возвращает 0, 0, false
func (c *cursor) peek2() (b0, b1 byte, ok bool) {
	if c.off+1 >= len(c.text) {
		return 0, 0, false
	}
	return c.text[c.off], c.text[c.off+1], true
}

// peek3 читает три байта, если есть, иначе возвращает 0, 0, 0, false
func (c *cursor) peek3() (b0, b1, b2 byte, ok bool) {
	if c.off+2 >= len(c.text) {
		return 0, 0, 0, false
	}
	return c.text[c.off], c.text[c.off+1], c.text[c.off+2], true
}

// bump перемещает курсор на один байт вперед и возвращает прочитанный байт
func (c *cursor) bump() byte {
	if c.eof() {
		return 0
	}
	b := c.text[c.off]
	c.off++
	return b
}

// eat consumes the next byte if it matches b.
func (c *cursor) eat(b byte) bool {
	if !c.eof() && c.text[c.off] == b {
		c.off++
		return true
	}
	return false
}

// matches reports whether the text at the cursor starts with s.
func (c *cursor) matches(s string) bool {
	return strings.HasPrefix(c.text[c.off:], s)
}

// eatPrefix consumes s if the text at the cursor starts with it.
func (c *cursor) eatPrefix(s string) bool {
	if !c.matches(s) {
		return false
	}
	c.off += len(s)
	return true
}

// peekRune декодирует текущую руну; невалидный байт даёт RuneError размера 1.
func (c *cursor) peekRune() (r rune, size int) {
	if c.eof() {
		return utf8.RuneError, 0
	}
	if b := c.text[c.off]; b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	return utf8.DecodeRuneInString(c.text[c.off:])
}

// bumpRune перемещает курсор на размер текущей руны.
func (c *cursor) bumpRune() rune {
	r, sz := c.peekRune()
	c.off += sz
	return r
}
