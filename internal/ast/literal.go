package ast

import (
	"math/big"

	"wright/internal/source"
)

// IntegerLiteral is an unsigned integer of arbitrary size.
// Value is parsed from the text with the radix prefix and underscores removed.
type IntegerLiteral struct {
	Fragment source.Fragment
	Value    *big.Int
}

// BooleanLiteral is true or false.
type BooleanLiteral struct {
	Fragment source.Fragment
	Value    bool
}

// StringLiteral is "..." or `...` (Format). Value holds the unescaped body.
type StringLiteral struct {
	Fragment source.Fragment
	Value    string
	Format   bool
}

// CharLiteral is '...' holding exactly one character after unescaping.
type CharLiteral struct {
	Fragment source.Fragment
	Value    rune
}

// PathExpr is a path used as a value: a local, a constant or an imported item.
type PathExpr struct {
	Path Path
}

func (l *IntegerLiteral) Span() source.Fragment { return l.Fragment }
func (l *BooleanLiteral) Span() source.Fragment { return l.Fragment }
func (l *StringLiteral) Span() source.Fragment  { return l.Fragment }
func (l *CharLiteral) Span() source.Fragment    { return l.Fragment }
func (e *PathExpr) Span() source.Fragment       { return e.Path.Fragment }

func (*IntegerLiteral) NodeKind() string { return "IntegerLiteral" }
func (*BooleanLiteral) NodeKind() string { return "BooleanLiteral" }
func (*StringLiteral) NodeKind() string  { return "StringLiteral" }
func (*CharLiteral) NodeKind() string    { return "CharLiteral" }
func (*PathExpr) NodeKind() string       { return "PathExpr" }

func (*IntegerLiteral) isExpr() {}
func (*BooleanLiteral) isExpr() {}
func (*StringLiteral) isExpr()  {}
func (*CharLiteral) isExpr()    {}
func (*PathExpr) isExpr()       {}

func (*IntegerLiteral) isAtom() {}
func (*BooleanLiteral) isAtom() {}
func (*StringLiteral) isAtom()  {}
func (*CharLiteral) isAtom()    {}
func (*PathExpr) isAtom()       {}
