package token

var keywords = map[string]Kind{
	"record":     KwRecord,
	"type":       KwType,
	"enum":       KwEnum,
	"union":      KwUnion,
	"func":       KwFunc,
	"pure":       KwPure,
	"unsafe":     KwUnsafe,
	"naked":      KwNaked,
	"repr":       KwRepr,
	"impl":       KwImpl,
	"constrain":  KwConstrain,
	"constraint": KwConstraint,
	"references": KwReferences,
	"trait":      KwTrait,
	"const":      KwConst,
	"where":      KwWhere,
	"use":        KwUse,
	"as":         KwAs,
	"mod":        KwMod,
	"pub":        KwPub,
	"if":         KwIf,
	"else":       KwElse,
	"match":      KwMatch,
	"for":        KwFor,
	"in":         KwIn,
	"while":      KwWhile,
	"loop":       KwLoop,
	"let":        KwLet,
	"var":        KwVar,
	"true":       KwTrue,
	"false":      KwFalse,

	"bool": KwBool,
	"u8":   KwU8,
	"i8":   KwI8,
	"u16":  KwU16,
	"i16":  KwI16,
	"u32":  KwU32,
	"i32":  KwI32,
	"f32":  KwF32,
	"u64":  KwU64,
	"i64":  KwI64,
	"f64":  KwF64,
	"char": KwChar,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Совпадение точное и регистрозависимое: "record2" и "Record" не ключевые слова.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// Keyword returns the source text of a keyword kind, or "" for other kinds.
func (k Kind) Keyword() string {
	for text, kw := range keywords {
		if kw == k {
			return text
		}
	}
	return ""
}
