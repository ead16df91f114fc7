package lexer_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"wright/internal/lexer"
	"wright/internal/token"
)

type lexed struct {
	Kind       token.Kind
	Text       string
	Terminated bool
}

// collectAll лексит вход до конца и упрощает токены для сравнения
func collectAll(input string) []lexed {
	lx := lexer.NewTest(input)
	var out []lexed
	for tok := range lx.Tokens() {
		out = append(out, lexed{Kind: tok.Kind, Text: tok.Text(), Terminated: tok.Terminated})
	}
	return out
}

func kinds(input string) []token.Kind {
	lx := lexer.NewTest(input)
	var out []token.Kind
	for _, tok := range lx.All() {
		out = append(out, tok.Kind)
	}
	return out
}

func TestPlusAndPlusEq(t *testing.T) {
	plus := lexer.NewTest("+")
	plusEq := lexer.NewTest("+=")

	plusTok, ok := plus.NextToken()
	if !ok {
		t.Fatal("expected a token")
	}
	plusEqTok, ok := plusEq.NextToken()
	if !ok {
		t.Fatal("expected a token")
	}

	if plus.BytesRemaining() != 0 || plusEq.BytesRemaining() != 0 {
		t.Fatalf("input must be consumed, remaining %d and %d", plus.BytesRemaining(), plusEq.BytesRemaining())
	}
	if plusTok.Kind != token.Plus {
		t.Errorf("got %v, want Plus", plusTok.Kind)
	}
	if plusEqTok.Kind != token.PlusEq {
		t.Errorf("got %v, want PlusEq", plusEqTok.Kind)
	}
	if _, ok := plus.NextToken(); ok {
		t.Errorf("exhausted lexer must return no token")
	}
}

func TestPlusOne(t *testing.T) {
	lx := lexer.NewTest("+1")
	tok, _ := lx.NextToken()
	if tok.Kind != token.Plus || tok.Fragment.Len() != 1 {
		t.Fatalf("got %v", tok)
	}
	if lx.BytesRemaining() != 1 {
		t.Fatalf("remaining = %d, want 1", lx.BytesRemaining())
	}
}

func TestTrivialTokens(t *testing.T) {
	tests := []struct {
		input string
		want  token.Kind
	}{
		{"->", token.SingleArrow}, {"-=", token.MinusEq}, {"=>", token.DoubleArrow},
		{"==", token.EqEq}, {"&&", token.AndAnd}, {"||", token.OrOr},
		{"<<", token.LtLt}, {">>", token.GtGt}, {"::", token.ColonColon},
		{"|=", token.OrEq}, {"&=", token.AndEq}, {":=", token.ColonEq},
		{">=", token.GtEq}, {"<=", token.LtEq}, {"!=", token.BangEq},
		{"%=", token.ModEq}, {"^=", token.XorEq}, {"*=", token.StarEq},
		{"+=", token.PlusEq}, {"/=", token.DivEq}, {"..", token.DotDot},
		{"..=", token.DotDotEq},
		{"(", token.LeftParen}, {")", token.RightParen}, {"[", token.LeftBracket},
		{"]", token.RightBracket}, {"{", token.LeftCurly}, {"}", token.RightCurly},
		{"@", token.At}, {";", token.Semi}, {"?", token.Question}, {",", token.Comma},
		{"#", token.Hash}, {"$", token.Dollar}, {"~", token.Tilde}, {".", token.Dot},
		{">", token.Gt}, {"<", token.Lt}, {"-", token.Minus}, {":", token.Colon},
		{"!", token.Bang}, {"=", token.Eq}, {"&", token.And}, {"|", token.Or},
		{"/", token.Div}, {"+", token.Plus}, {"^", token.Xor}, {"*", token.Star},
		{"%", token.Mod},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := collectAll(tt.input)
			want := []lexed{{Kind: tt.want, Text: tt.input}}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGreedyOperators(t *testing.T) {
	got := kinds("a<<=b..=c...d")
	want := []token.Kind{
		token.Identifier, token.LtLt, token.Eq, token.Identifier,
		token.DotDotEq, token.Identifier, token.DotDot, token.Dot, token.Identifier,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestKeywordIdentifierBoundary(t *testing.T) {
	tests := []struct {
		input string
		want  token.Kind
	}{
		{"record", token.KwRecord},
		{"record2", token.Identifier},
		{"Record", token.Identifier},
		{"u64", token.KwU64},
		{"u64x", token.Identifier},
		{"_", token.Underscore},
		{"_tmp", token.Identifier},
		{"__", token.Identifier},
		{"héllo", token.Identifier},
		{"имя", token.Identifier},
		{"true", token.KwTrue},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := collectAll(tt.input)
			want := []lexed{{Kind: tt.want, Text: tt.input}}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIntegerLiterals(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []lexed
	}{
		{"separators then dot", "123_456_789.", []lexed{
			{Kind: token.IntegerLiteral, Text: "123_456_789"},
			{Kind: token.Dot, Text: "."},
		}},
		{"hex", "0xFF_ff", []lexed{{Kind: token.IntegerLiteral, Text: "0xFF_ff"}}},
		{"upper hex prefix", "0X1f", []lexed{{Kind: token.IntegerLiteral, Text: "0X1f"}}},
		{"binary stops at 2", "0b1012", []lexed{
			{Kind: token.IntegerLiteral, Text: "0b101"},
			{Kind: token.IntegerLiteral, Text: "2"},
		}},
		{"octal", "0o17", []lexed{{Kind: token.IntegerLiteral, Text: "0o17"}}},
		{"upper O is not a prefix", "0O7", []lexed{
			{Kind: token.IntegerLiteral, Text: "0"},
			{Kind: token.Identifier, Text: "O7"},
		}},
		{"bare prefix", "0x", []lexed{{Kind: token.IntegerLiteral, Text: "0x"}}},
		{"no sign", "-1", []lexed{
			{Kind: token.Minus, Text: "-"},
			{Kind: token.IntegerLiteral, Text: "1"},
		}},
		{"range", "0..10", []lexed{
			{Kind: token.IntegerLiteral, Text: "0"},
			{Kind: token.DotDot, Text: ".."},
			{Kind: token.IntegerLiteral, Text: "10"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, collectAll(tt.input)); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestQuotedLiterals(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []lexed
	}{
		{"string", `"Test string literal"`, []lexed{
			{Kind: token.StringLiteral, Text: `"Test string literal"`, Terminated: true},
		}},
		{"escaped quote", `"a\"b" x`, []lexed{
			{Kind: token.StringLiteral, Text: `"a\"b"`, Terminated: true},
			{Kind: token.Whitespace, Text: " "},
			{Kind: token.Identifier, Text: "x"},
		}},
		{"char", `'c'`, []lexed{{Kind: token.CharLiteral, Text: `'c'`, Terminated: true}}},
		{"format string", "`fmt {x}`", []lexed{
			{Kind: token.FormatStringLiteral, Text: "`fmt {x}`", Terminated: true},
		}},
		{"unterminated runs to end", `"abc; use x;`, []lexed{
			{Kind: token.StringLiteral, Text: `"abc; use x;`},
		}},
		{"trailing backslash", `"abc\`, []lexed{{Kind: token.StringLiteral, Text: `"abc\`}}},
		{"other quote inside", `"it's"`, []lexed{{Kind: token.StringLiteral, Text: `"it's"`, Terminated: true}}},
		{"multibyte", `"ünï"`, []lexed{{Kind: token.StringLiteral, Text: `"ünï"`, Terminated: true}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, collectAll(tt.input)); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []lexed
	}{
		{"line comment to end", "// test comment ", []lexed{
			{Kind: token.LineComment, Text: "// test comment "},
		}},
		{"line comment stops at newline", "// a\nb", []lexed{
			{Kind: token.LineComment, Text: "// a"},
			{Kind: token.Whitespace, Text: "\n"},
			{Kind: token.Identifier, Text: "b"},
		}},
		{"line comment stops at carriage return", "// a\r\n", []lexed{
			{Kind: token.LineComment, Text: "// a"},
			{Kind: token.Whitespace, Text: "\r\n"},
		}},
		{"outer doc", "/// doc", []lexed{{Kind: token.OuterDocComment, Text: "/// doc"}}},
		{"four slashes are plain", "//// rule", []lexed{{Kind: token.LineComment, Text: "//// rule"}}},
		{"inner doc", "//! crate doc", []lexed{{Kind: token.InnerDocComment, Text: "//! crate doc"}}},
		{"block", "/* a */x", []lexed{
			{Kind: token.BlockComment, Text: "/* a */"},
			{Kind: token.Identifier, Text: "x"},
		}},
		{"nested block", "/* a /* b */ c */", []lexed{
			{Kind: token.BlockComment, Text: "/* a /* b */ c */"},
		}},
		{"outer block doc", "/** doc */", []lexed{{Kind: token.OuterBlockDocComment, Text: "/** doc */"}}},
		{"inner block doc", "/*! doc */", []lexed{{Kind: token.InnerBlockDocComment, Text: "/*! doc */"}}},
		{"empty block", "/**/", []lexed{{Kind: token.BlockComment, Text: "/**/"}}},
		{"empty block with star", "/***/", []lexed{{Kind: token.BlockComment, Text: "/***/"}}},
		{"three stars are plain", "/*** x */", []lexed{{Kind: token.BlockComment, Text: "/*** x */"}}},
		{"unterminated", "/* open", []lexed{{Kind: token.UnterminatedBlockComment, Text: "/* open"}}},
		{"unterminated nested", "/* a /* b */ c", []lexed{
			{Kind: token.UnterminatedBlockComment, Text: "/* a /* b */ c"},
		}},
		{"division is not a comment", "a/b", []lexed{
			{Kind: token.Identifier, Text: "a"},
			{Kind: token.Div, Text: "/"},
			{Kind: token.Identifier, Text: "b"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, collectAll(tt.input)); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWhitespaceAndUnknown(t *testing.T) {
	got := collectAll(" \t\n x€\\")
	want := []lexed{
		{Kind: token.Whitespace, Text: " \t\n "},
		{Kind: token.Identifier, Text: "x"},
		{Kind: token.Unknown, Text: "€"},
		{Kind: token.Unknown, Text: "\\"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestDeclarationStream(t *testing.T) {
	got := kinds("pub use std::io as sio;\ntype Id = @u64;")
	want := []token.Kind{
		token.KwPub, token.Whitespace, token.KwUse, token.Whitespace,
		token.Identifier, token.ColonColon, token.Identifier, token.Whitespace,
		token.KwAs, token.Whitespace, token.Identifier, token.Semi, token.Whitespace,
		token.KwType, token.Whitespace, token.Identifier, token.Whitespace, token.Eq,
		token.Whitespace, token.At, token.KwU64, token.Semi,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestForkLeavesOriginalUntouched(t *testing.T) {
	lx := lexer.NewTest("a b")
	fork := lx.Fork()
	fork.NextToken()
	fork.NextToken()

	if lx.BytesRemaining() != 3 {
		t.Fatalf("original advanced: %d bytes remaining", lx.BytesRemaining())
	}
	if got := fork.OffsetFrom(lx); got != 2 {
		t.Fatalf("fork offset = %d, want 2", got)
	}
	lx = fork
	tok, _ := lx.NextToken()
	if tok.Text() != "b" {
		t.Fatalf("after commit got %q", tok.Text())
	}
}

// assertCoverage проверяет, что токены покрывают вход без пропусков и наложений.
func assertCoverage(t *testing.T, input string) {
	t.Helper()
	lx := lexer.NewTest(input)
	start := lx.Remaining
	pos := 0
	var b strings.Builder
	for tok := range lx.Tokens() {
		if tok.Fragment.Source != start.Source {
			t.Fatalf("token %v from another source", tok)
		}
		if tok.Fragment.Start != pos {
			t.Fatalf("gap or overlap at %d: token %v starts at %d", pos, tok, tok.Fragment.Start)
		}
		if tok.Fragment.IsEmpty() {
			t.Fatalf("empty token %v at %d", tok, pos)
		}
		pos = tok.Fragment.End
		b.WriteString(tok.Text())
	}
	if pos != len(input) || b.String() != input {
		t.Fatalf("tokens cover %d of %d bytes", pos, len(input))
	}
}

func TestTotalCoverage(t *testing.T) {
	inputs := []string{
		"",
		"use a::b::c as d;",
		`"unterminated`,
		"/* /* */",
		"'x",
		"0x_ 0b 0o9 1__2",
		"§¶•ªº–≠ “quotes”",
		"a\xffb\x80",
		"type T<A, @@B> = C<D,>;",
		"//! a\n/// b\n/** c */ /*! d */",
	}
	for _, in := range inputs {
		assertCoverage(t, in)
	}
}

func TestTotalCoverageRandom(t *testing.T) {
	alphabet := []rune("abc_019xXob \t\n\r\"'`\\/*!@<>=&|:.+-^%~;,#$?(){}[]é€")
	rng := rand.New(rand.NewPCG(1, 2))
	for range 500 {
		n := rng.IntN(40)
		rs := make([]rune, n)
		for i := range rs {
			rs[i] = alphabet[rng.IntN(len(alphabet))]
		}
		assertCoverage(t, string(rs))
	}
}

func FuzzLexerCoverage(f *testing.F) {
	for _, seed := range []string{"use a;", "/* x", `"y`, "0xAB_", "@@u8", "//! z\n"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, input string) {
		assertCoverage(t, input)
	})
}
