package lexer

// matchInteger: ведущая ASCII-цифра; "0x"/"0X", "0b"/"0B", "0o" задают основание.
// Дальше цифры основания и '_' как разделитель (расположение не проверяется).
// Знак не входит в литерал: минус - отдельный унарный оператор.
func matchInteger(text string) (int, bool) {
	c := newCursor(text)
	first := c.peek()
	if !isDec(first) {
		return 0, false
	}
	c.bump()

	digit := isDec
	if first == '0' {
		switch c.peek() {
		case 'x', 'X':
			c.bump()
			digit = isHex
		case 'b', 'B':
			c.bump()
			digit = isBin
		case 'o':
			c.bump()
			digit = isOct
		}
	}
	for b := c.peek(); !c.eof() && (digit(b) || b == '_'); b = c.peek() {
		c.bump()
	}
	return c.off, true
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }
func isBin(b byte) bool { return b == '0' || b == '1' }
func isOct(b byte) bool { return b >= '0' && b <= '7' }
func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}
