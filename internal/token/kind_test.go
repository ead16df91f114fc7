package token_test

import (
	"testing"

	"wright/internal/source"
	"wright/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Fragment: source.Fragment{}}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{
		token.IntegerLiteral, token.StringLiteral, token.FormatStringLiteral, token.CharLiteral,
	}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Identifier, token.KwTrue, token.Plus, token.LeftParen, token.Whitespace}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsPunctOrOp(t *testing.T) {
	ops := []token.Kind{
		token.LeftCurly, token.RightParen, token.Plus, token.PlusEq, token.Star, token.Div,
		token.Xor, token.Mod, token.Bang, token.BangEq, token.Minus, token.SingleArrow,
		token.Eq, token.EqEq, token.DoubleArrow, token.Lt, token.LtEq, token.LtLt,
		token.Gt, token.GtEq, token.GtGt, token.And, token.AndAnd, token.Or, token.OrOr,
		token.Colon, token.ColonEq, token.ColonColon, token.At, token.Tilde, token.Semi,
		token.Dot, token.DotDot, token.DotDotEq, token.Comma, token.Hash, token.Question,
		token.Dollar, token.Underscore,
	}
	for _, k := range ops {
		if !k.IsPunctOrOp() {
			t.Fatalf("%v should be punct/op", k)
		}
	}
	non := []token.Kind{token.Identifier, token.KwIf, token.IntegerLiteral, token.LineComment}
	for _, k := range non {
		if k.IsPunctOrOp() {
			t.Fatalf("%v must NOT be punct/op", k)
		}
	}
}

func TestIsIdent(t *testing.T) {
	if !tok(token.Identifier).IsIdent() {
		t.Fatalf("Identifier should be ident")
	}
	if tok(token.KwFunc).IsIdent() {
		t.Fatalf("KwFunc must not be ident")
	}
}

func TestKeywordClasses(t *testing.T) {
	for _, k := range []token.Kind{token.KwRecord, token.KwUse, token.KwFalse, token.KwChar} {
		if !k.IsKeyword() {
			t.Fatalf("%v should be keyword", k)
		}
	}
	for _, k := range []token.Kind{token.KwBool, token.KwU8, token.KwF64, token.KwChar} {
		if !k.IsPrimitive() {
			t.Fatalf("%v should be primitive", k)
		}
	}
	if token.KwType.IsPrimitive() {
		t.Fatalf("KwType must not be primitive")
	}
}

func TestTrivia(t *testing.T) {
	trivia := []token.Kind{
		token.Whitespace, token.LineComment, token.BlockComment,
		token.OuterDocComment, token.InnerBlockDocComment,
	}
	for _, k := range trivia {
		if !k.IsTrivia() {
			t.Fatalf("%v should be trivia", k)
		}
	}
	if token.UnterminatedBlockComment.IsTrivia() {
		t.Fatalf("unterminated comment must not be skipped as trivia")
	}
	if !token.UnterminatedBlockComment.IsComment() {
		t.Fatalf("unterminated comment is still a comment")
	}
}

func TestUnterminated(t *testing.T) {
	open := token.Token{Kind: token.StringLiteral}
	closed := token.Token{Kind: token.StringLiteral, Terminated: true}
	if !open.IsUnterminated() || closed.IsUnterminated() {
		t.Fatalf("Terminated flag must drive IsUnterminated")
	}
	if !tok(token.UnterminatedBlockComment).IsUnterminated() {
		t.Fatalf("unterminated block comment")
	}
}

func TestKindNames(t *testing.T) {
	for _, k := range token.Kinds() {
		if k.String() == "" {
			t.Fatalf("kind %d has no name", k)
		}
	}
	if got := token.DotDotEq.String(); got != "DotDotEq" {
		t.Fatalf("DotDotEq.String() = %q", got)
	}
}
