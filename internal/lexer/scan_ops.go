package lexer

import (
	"wright/internal/token"
)

// Двухсимвольные ASCII-токены. Проверяются раньше односимвольных: матчинг жадный.
var twoCharTokens = [...]struct {
	a, b byte
	kind token.Kind
}{
	{'-', '>', token.SingleArrow},
	{'-', '=', token.MinusEq},
	{'=', '>', token.DoubleArrow},
	{'=', '=', token.EqEq},
	{'&', '&', token.AndAnd},
	{'|', '|', token.OrOr},
	{'<', '<', token.LtLt},
	{'>', '>', token.GtGt},
	{':', ':', token.ColonColon},
	{'|', '=', token.OrEq},
	{'&', '=', token.AndEq},
	{':', '=', token.ColonEq},
	{'>', '=', token.GtEq},
	{'<', '=', token.LtEq},
	{'!', '=', token.BangEq},
	{'%', '=', token.ModEq},
	{'^', '=', token.XorEq},
	{'*', '=', token.StarEq},
	{'+', '=', token.PlusEq},
	{'/', '=', token.DivEq},
	{'.', '.', token.DotDot},
}

var singleCharTokens = [utf8RuneSelf]token.Kind{
	'(': token.LeftParen,
	')': token.RightParen,
	'[': token.LeftBracket,
	']': token.RightBracket,
	'{': token.LeftCurly,
	'}': token.RightCurly,
	'@': token.At,
	';': token.Semi,
	'?': token.Question,
	',': token.Comma,
	'#': token.Hash,
	'$': token.Dollar,
	'~': token.Tilde,
	'.': token.Dot,
	'>': token.Gt,
	'<': token.Lt,
	'-': token.Minus,
	':': token.Colon,
	'!': token.Bang,
	'=': token.Eq,
	'&': token.And,
	'|': token.Or,
	'/': token.Div,
	'+': token.Plus,
	'^': token.Xor,
	'*': token.Star,
	'%': token.Mod,
}

const utf8RuneSelf = 0x80

// matchTrivial: сначала 3-символьный "..=", затем 2-символьные, затем 1-символьные.
// Все совпадения ASCII, поэтому длина всегда попадает на границу символа.
func matchTrivial(text string) (int, token.Kind, bool) {
	c := newCursor(text)
	if c.try3('.', '.', '=') {
		return 3, token.DotDotEq, true
	}
	for _, tt := range twoCharTokens {
		if c.try2(tt.a, tt.b) {
			return 2, tt.kind, true
		}
	}
	if b := c.peek(); b < utf8RuneSelf && singleCharTokens[b] != token.Unknown {
		return 1, singleCharTokens[b], true
	}
	return 0, 0, false
}

// try2/try3 пробуют "съесть" 2/3 байта, если совпадает.
func (c *cursor) try3(a, b, x byte) bool {
	b0, b1, b2, ok := c.peek3()
	if !ok || b0 != a || b1 != b || b2 != x {
		return false
	}
	c.off += 3
	return true
}

func (c *cursor) try2(a, b byte) bool {
	b0, b1, ok := c.peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	c.off += 2
	return true
}
