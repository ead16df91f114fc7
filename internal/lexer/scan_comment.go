package lexer

import (
	"strings"

	"wright/internal/token"
)

const (
	lineCommentPrefix = "//"
	blockCommentStart = "/*"
	blockCommentEnd   = "*/"
)

// matchComment пробует строчный, затем блочный комментарий.
func matchComment(text string) (int, token.Kind, bool) {
	if n, kind, ok := matchLineComment(text); ok {
		return n, kind, true
	}
	return matchBlockComment(text)
}

// matchLineComment: "//" до '\n', '\r' или конца ввода (перевод строки не входит).
// "///" (но не "////") - внешний doc, "//!" - внутренний doc.
func matchLineComment(text string) (int, token.Kind, bool) {
	c := newCursor(text)
	if !c.eatPrefix(lineCommentPrefix) {
		return 0, 0, false
	}
	kind := token.LineComment
	switch {
	case c.matches("/") && !c.matches("//"):
		kind = token.OuterDocComment
	case c.matches("!"):
		kind = token.InnerDocComment
	}
	for !c.eof() {
		if b := c.peek(); b == '\n' || b == '\r' {
			break
		}
		c.bumpRune()
	}
	return c.off, kind, true
}

// matchBlockComment разбирает вложенные /* ... */. Незакрытый комментарий
// поглощает весь остаток ввода и получает вид UnterminatedBlockComment.
func matchBlockComment(text string) (int, token.Kind, bool) {
	// "/**/" и "/***/" - пустые обычные комментарии, а не doc
	for _, empty := range [...]string{"/***/", "/**/"} {
		if strings.HasPrefix(text, empty) {
			return len(empty), token.BlockComment, true
		}
	}

	c := newCursor(text)
	if !c.eatPrefix(blockCommentStart) {
		return 0, 0, false
	}
	kind := token.BlockComment
	switch {
	case c.matches("!"):
		kind = token.InnerBlockDocComment
	case c.matches("*") && !c.matches("**"):
		kind = token.OuterBlockDocComment
	}

	for !c.matches(blockCommentEnd) {
		if c.matches(blockCommentStart) {
			// вид вложенного комментария не важен, только его длина
			n, _, _ := matchBlockComment(c.text[c.off:])
			c.off += n
			continue
		}
		if c.eof() {
			return c.off, token.UnterminatedBlockComment, true
		}
		c.bumpRune()
	}
	c.off += len(blockCommentEnd)
	return c.off, kind, true
}
