package ast

import (
	"wright/internal/source"
)

// Expr is any expression node.
type Expr interface {
	Node
	isExpr()
}

// Atom is an expression without sub-expressions: a literal or a path.
type Atom interface {
	Expr
	isAtom()
}

// UnaryOp represents a prefix operator.
type UnaryOp uint8

const (
	// UnaryReference is @x.
	UnaryReference UnaryOp = iota
	// UnaryDereference is *x.
	UnaryDereference
	UnaryNegate     // -x
	UnaryBooleanNot // !x
	UnaryBitwiseNot // ~x
)

func (op UnaryOp) String() string {
	switch op {
	case UnaryReference:
		return "@"
	case UnaryDereference:
		return "*"
	case UnaryNegate:
		return "-"
	case UnaryBooleanNot:
		return "!"
	case UnaryBitwiseNot:
		return "~"
	default:
		return "?"
	}
}

// BinaryOp represents an infix operator.
type BinaryOp uint8

const (
	// Арифметические
	BinaryAdd BinaryOp = iota // +
	BinarySub                 // -
	BinaryMul                 // *
	BinaryDiv                 // /
	BinaryMod                 // %

	// Сдвиги и диапазоны
	BinaryShiftLeft      // <<
	BinaryShiftRight     // >>
	BinaryRange          // ..
	BinaryRangeInclusive // ..=

	// Сравнения
	BinaryEq    // ==
	BinaryNotEq // !=
	BinaryLess  // <
	BinaryLessEq
	BinaryGreater
	BinaryGreaterEq

	// Побитовые
	BinaryBitAnd // &
	BinaryBitXor // ^
	BinaryBitOr  // |

	// Логические
	BinaryLogicalAnd // &&
	BinaryLogicalOr  // ||
)

func (op BinaryOp) String() string {
	switch op {
	case BinaryAdd:
		return "+"
	case BinarySub:
		return "-"
	case BinaryMul:
		return "*"
	case BinaryDiv:
		return "/"
	case BinaryMod:
		return "%"
	case BinaryShiftLeft:
		return "<<"
	case BinaryShiftRight:
		return ">>"
	case BinaryRange:
		return ".."
	case BinaryRangeInclusive:
		return "..="
	case BinaryEq:
		return "=="
	case BinaryNotEq:
		return "!="
	case BinaryLess:
		return "<"
	case BinaryLessEq:
		return "<="
	case BinaryGreater:
		return ">"
	case BinaryGreaterEq:
		return ">="
	case BinaryBitAnd:
		return "&"
	case BinaryBitXor:
		return "^"
	case BinaryBitOr:
		return "|"
	case BinaryLogicalAnd:
		return "&&"
	case BinaryLogicalOr:
		return "||"
	default:
		return "?"
	}
}

// UnaryExpr applies a prefix operator. OpFragment covers the operator token.
type UnaryExpr struct {
	Fragment   source.Fragment
	Op         UnaryOp
	OpFragment source.Fragment
	Operand    Expr
}

// BinaryExpr applies an infix operator to two operands.
type BinaryExpr struct {
	Fragment   source.Fragment
	Op         BinaryOp
	OpFragment source.Fragment
	LHS        Expr
	RHS        Expr
}

// ParenExpr is a parenthesized expression; Fragment includes the parentheses.
type ParenExpr struct {
	Fragment source.Fragment
	Inner    Expr
}

func (e *UnaryExpr) Span() source.Fragment  { return e.Fragment }
func (e *BinaryExpr) Span() source.Fragment { return e.Fragment }
func (e *ParenExpr) Span() source.Fragment  { return e.Fragment }

func (*UnaryExpr) NodeKind() string  { return "UnaryExpr" }
func (*BinaryExpr) NodeKind() string { return "BinaryExpr" }
func (*ParenExpr) NodeKind() string  { return "ParenExpr" }

func (*UnaryExpr) isExpr()  {}
func (*BinaryExpr) isExpr() {}
func (*ParenExpr) isExpr()  {}
