package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Unknown is a single character that starts no other token.
	Unknown Kind = iota

	LeftCurly    // {
	RightCurly   // }
	LeftBracket  // [
	RightBracket // ]
	LeftParen    // (
	RightParen   // )

	// Plus represents the plus operator token.
	Plus // +
	// PlusEq represents the plus assign operator token.
	PlusEq // +=
	// Star is multiplication or dereference.
	Star   // *
	StarEq // *=
	// Div represents the slash operator token.
	Div   // /
	DivEq // /=
	// Xor represents the caret operator token.
	Xor   // ^
	XorEq // ^=
	// Mod represents the percent operator token.
	Mod   // %
	ModEq // %=
	// Bang is boolean negation.
	Bang   // !
	BangEq // !=

	Minus       // -
	MinusEq     // -=
	SingleArrow // ->
	Eq          // =
	EqEq        // ==
	DoubleArrow // =>

	Lt    // <
	LtEq  // <=
	LtLt  // <<
	Gt    // >
	GtEq  // >=
	GtGt  // >>
	And   // &
	AndEq // &=
	// AndAnd is logical and.
	AndAnd // &&
	Or     // |
	OrEq   // |=
	// OrOr is logical or.
	OrOr       // ||
	Colon      // :
	ColonEq    // :=
	ColonColon // ::

	// At introduces a reference type or a reference expression.
	At    // @
	Tilde // ~
	Semi  // ;
	Dot   // .
	// DotDot is the exclusive range operator.
	DotDot // ..
	// DotDotEq is the inclusive range operator.
	DotDotEq // ..=
	Comma    // ,
	Hash     // #
	Question // ?
	Dollar   // $

	// Underscore is a standalone '_'. Identifiers may still start with '_'.
	Underscore // _

	// Identifier is any identifier that is not a keyword.
	Identifier

	// Doc and plain comments.
	LineComment          // // ...
	OuterDocComment      // /// ...
	InnerDocComment      // //! ...
	BlockComment         // /* ... */
	OuterBlockDocComment // /** ... */
	InnerBlockDocComment // /*! ... */
	// UnterminatedBlockComment runs from an unbalanced "/*" to the end of input.
	UnterminatedBlockComment

	KwRecord     // record
	KwType       // type
	KwEnum       // enum
	KwUnion      // union
	KwFunc       // func
	KwPure       // pure
	KwUnsafe     // unsafe
	KwNaked      // naked
	KwRepr       // repr
	KwImpl       // impl
	KwConstrain  // constrain
	KwConstraint // constraint
	KwReferences // references
	KwTrait      // trait
	KwConst      // const
	KwWhere      // where
	KwUse        // use
	KwAs         // as
	KwMod        // mod
	KwPub        // pub
	KwIf         // if
	KwElse       // else
	KwMatch      // match
	KwFor        // for
	KwIn         // in
	KwWhile      // while
	KwLoop       // loop
	KwLet        // let
	KwVar        // var
	KwTrue       // true
	KwFalse      // false

	// Primitive type keywords.
	KwBool // bool
	KwU8   // u8
	KwI8   // i8
	KwU16  // u16
	KwI16  // i16
	KwU32  // u32
	KwI32  // i32
	KwF32  // f32
	KwU64  // u64
	KwI64  // i64
	KwF64  // f64
	KwChar // char

	// IntegerLiteral represents the integer literal token, radix prefix included.
	IntegerLiteral
	// StringLiteral is a "..." literal, quotes included.
	StringLiteral
	// FormatStringLiteral is a `...` literal.
	FormatStringLiteral
	// CharLiteral is a '...' literal.
	CharLiteral

	// Whitespace is a maximal run of whitespace characters.
	Whitespace

	kindCount
)

var kindNames = [kindCount]string{
	Unknown:      "Unknown",
	LeftCurly:    "LeftCurly",
	RightCurly:   "RightCurly",
	LeftBracket:  "LeftBracket",
	RightBracket: "RightBracket",
	LeftParen:    "LeftParen",
	RightParen:   "RightParen",
	Plus:         "Plus",
	PlusEq:       "PlusEq",
	Star:         "Star",
	StarEq:       "StarEq",
	Div:          "Div",
	DivEq:        "DivEq",
	Xor:          "Xor",
	XorEq:        "XorEq",
	Mod:          "Mod",
	ModEq:        "ModEq",
	Bang:         "Bang",
	BangEq:       "BangEq",
	Minus:        "Minus",
	MinusEq:      "MinusEq",
	SingleArrow:  "SingleArrow",
	Eq:           "Eq",
	EqEq:         "EqEq",
	DoubleArrow:  "DoubleArrow",
	Lt:           "Lt",
	LtEq:         "LtEq",
	LtLt:         "LtLt",
	Gt:           "Gt",
	GtEq:         "GtEq",
	GtGt:         "GtGt",
	And:          "And",
	AndEq:        "AndEq",
	AndAnd:       "AndAnd",
	Or:           "Or",
	OrEq:         "OrEq",
	OrOr:         "OrOr",
	Colon:        "Colon",
	ColonEq:      "ColonEq",
	ColonColon:   "ColonColon",
	At:           "At",
	Tilde:        "Tilde",
	Semi:         "Semi",
	Dot:          "Dot",
	DotDot:       "DotDot",
	DotDotEq:     "DotDotEq",
	Comma:        "Comma",
	Hash:         "Hash",
	Question:     "Question",
	Dollar:       "Dollar",
	Underscore:   "Underscore",
	Identifier:   "Identifier",

	LineComment:              "LineComment",
	OuterDocComment:          "OuterDocComment",
	InnerDocComment:          "InnerDocComment",
	BlockComment:             "BlockComment",
	OuterBlockDocComment:     "OuterBlockDocComment",
	InnerBlockDocComment:     "InnerBlockDocComment",
	UnterminatedBlockComment: "UnterminatedBlockComment",

	KwRecord:     "KwRecord",
	KwType:       "KwType",
	KwEnum:       "KwEnum",
	KwUnion:      "KwUnion",
	KwFunc:       "KwFunc",
	KwPure:       "KwPure",
	KwUnsafe:     "KwUnsafe",
	KwNaked:      "KwNaked",
	KwRepr:       "KwRepr",
	KwImpl:       "KwImpl",
	KwConstrain:  "KwConstrain",
	KwConstraint: "KwConstraint",
	KwReferences: "KwReferences",
	KwTrait:      "KwTrait",
	KwConst:      "KwConst",
	KwWhere:      "KwWhere",
	KwUse:        "KwUse",
	KwAs:         "KwAs",
	KwMod:        "KwMod",
	KwPub:        "KwPub",
	KwIf:         "KwIf",
	KwElse:       "KwElse",
	KwMatch:      "KwMatch",
	KwFor:        "KwFor",
	KwIn:         "KwIn",
	KwWhile:      "KwWhile",
	KwLoop:       "KwLoop",
	KwLet:        "KwLet",
	KwVar:        "KwVar",
	KwTrue:       "KwTrue",
	KwFalse:      "KwFalse",
	KwBool:       "KwBool",
	KwU8:         "KwU8",
	KwI8:         "KwI8",
	KwU16:        "KwU16",
	KwI16:        "KwI16",
	KwU32:        "KwU32",
	KwI32:        "KwI32",
	KwF32:        "KwF32",
	KwU64:        "KwU64",
	KwI64:        "KwI64",
	KwF64:        "KwF64",
	KwChar:       "KwChar",

	IntegerLiteral:      "IntegerLiteral",
	StringLiteral:       "StringLiteral",
	FormatStringLiteral: "FormatStringLiteral",
	CharLiteral:         "CharLiteral",
	Whitespace:          "Whitespace",
}

// String returns the name of the kind, as used in token dumps.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Kinds returns every token kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := range kindCount {
		out = append(out, k)
	}
	return out
}

// IsKeyword reports whether k is a keyword, primitive type names included.
func (k Kind) IsKeyword() bool {
	return k >= KwRecord && k <= KwChar
}

// IsPrimitive reports whether k names a primitive type.
func (k Kind) IsPrimitive() bool {
	return k >= KwBool && k <= KwChar
}

// IsComment reports whether k is any kind of comment.
func (k Kind) IsComment() bool {
	return k >= LineComment && k <= UnterminatedBlockComment
}

// IsDocComment reports whether k is a documentation comment.
func (k Kind) IsDocComment() bool {
	switch k {
	case OuterDocComment, InnerDocComment, OuterBlockDocComment, InnerBlockDocComment:
		return true
	default:
		return false
	}
}

// IsTrivia reports whether the parser skips k between tokens that matter.
func (k Kind) IsTrivia() bool {
	return k == Whitespace || (k.IsComment() && k != UnterminatedBlockComment)
}

// IsLiteral reports whether k is an integer or quoted literal.
func (k Kind) IsLiteral() bool {
	return k >= IntegerLiteral && k <= CharLiteral
}

// IsQuoted reports whether k is a string, format string or char literal.
func (k Kind) IsQuoted() bool {
	return k >= StringLiteral && k <= CharLiteral
}

// IsPunctOrOp reports whether k is a bracket, operator or punctuation.
func (k Kind) IsPunctOrOp() bool {
	return k >= LeftCurly && k <= Underscore
}
