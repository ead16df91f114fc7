package ast

import (
	"wright/internal/source"
	"wright/internal/token"
)

// Type is one of *AtomicTy, *ReferenceTy or *NamedTy.
type Type interface {
	Node
	isType()
}

// AtomicKind enumerates primitive types.
type AtomicKind uint8

const (
	AtomicBool AtomicKind = iota
	AtomicU8
	AtomicI8
	AtomicU16
	AtomicI16
	AtomicU32
	AtomicI32
	AtomicF32
	AtomicU64
	AtomicI64
	AtomicF64
	AtomicChar
)

var atomicByToken = map[token.Kind]AtomicKind{
	token.KwBool: AtomicBool,
	token.KwU8:   AtomicU8,
	token.KwI8:   AtomicI8,
	token.KwU16:  AtomicU16,
	token.KwI16:  AtomicI16,
	token.KwU32:  AtomicU32,
	token.KwI32:  AtomicI32,
	token.KwF32:  AtomicF32,
	token.KwU64:  AtomicU64,
	token.KwI64:  AtomicI64,
	token.KwF64:  AtomicF64,
	token.KwChar: AtomicChar,
}

// AtomicFromToken maps a primitive type keyword to its AtomicKind.
func AtomicFromToken(k token.Kind) (AtomicKind, bool) {
	a, ok := atomicByToken[k]
	return a, ok
}

// String returns the keyword spelling of the primitive type.
func (a AtomicKind) String() string {
	switch a {
	case AtomicBool:
		return "bool"
	case AtomicU8:
		return "u8"
	case AtomicI8:
		return "i8"
	case AtomicU16:
		return "u16"
	case AtomicI16:
		return "i16"
	case AtomicU32:
		return "u32"
	case AtomicI32:
		return "i32"
	case AtomicF32:
		return "f32"
	case AtomicU64:
		return "u64"
	case AtomicI64:
		return "i64"
	case AtomicF64:
		return "f64"
	case AtomicChar:
		return "char"
	default:
		return "unknown"
	}
}

// AtomicTy is a primitive type such as u8 or bool.
type AtomicTy struct {
	Fragment source.Fragment
	Variant  AtomicKind
}

// ReferenceTy is @T.
type ReferenceTy struct {
	Fragment source.Fragment
	Target   Type
}

// NamedTy is a path with optional generic arguments: Name<A, B>.
type NamedTy struct {
	Fragment source.Fragment
	Name     Path
	Generics []Type
}

func (t *AtomicTy) Span() source.Fragment    { return t.Fragment }
func (t *ReferenceTy) Span() source.Fragment { return t.Fragment }
func (t *NamedTy) Span() source.Fragment     { return t.Fragment }

func (*AtomicTy) NodeKind() string    { return "AtomicTy" }
func (*ReferenceTy) NodeKind() string { return "ReferenceTy" }
func (*NamedTy) NodeKind() string     { return "NamedTy" }

func (*AtomicTy) isType()    {}
func (*ReferenceTy) isType() {}
func (*NamedTy) isType()     {}

// DowncastAtomic returns t as an atomic type if it is one.
func DowncastAtomic(t Type) (*AtomicTy, bool) {
	a, ok := t.(*AtomicTy)
	return a, ok
}

// DowncastReference returns t as a reference type if it is one.
func DowncastReference(t Type) (*ReferenceTy, bool) {
	r, ok := t.(*ReferenceTy)
	return r, ok
}

// DowncastNamed returns t as a named type if it is one.
func DowncastNamed(t Type) (*NamedTy, bool) {
	n, ok := t.(*NamedTy)
	return n, ok
}

// MatchingSource returns the source text t was parsed from.
func MatchingSource(t Type) string {
	return t.Span().String()
}
