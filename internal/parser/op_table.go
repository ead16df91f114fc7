package parser

import (
	"wright/internal/ast"
	"wright/internal/token"
)

// Таблица приоритетов для бинарных операторов.
// Чем больше число, тем выше приоритет; все левоассоциативны.
const (
	precLogicalOr      = 1  // ||
	precLogicalAnd     = 2  // &&
	precBitwiseOr      = 3  // |
	precBitwiseXor     = 4  // ^
	precBitwiseAnd     = 5  // &
	precComparison     = 6  // == != < <= > >=
	precRange          = 7  // .. ..=
	precShift          = 8  // << >>
	precAdditive       = 9  // + -
	precMultiplicative = 10 // * / %
)

// binaryOperator возвращает оператор и его приоритет для токена.
func binaryOperator(kind token.Kind) (ast.BinaryOp, int, bool) {
	switch kind {
	// Логические
	case token.OrOr:
		return ast.BinaryLogicalOr, precLogicalOr, true
	case token.AndAnd:
		return ast.BinaryLogicalAnd, precLogicalAnd, true

	// Битовые
	case token.Or:
		return ast.BinaryBitOr, precBitwiseOr, true
	case token.Xor:
		return ast.BinaryBitXor, precBitwiseXor, true
	case token.And:
		return ast.BinaryBitAnd, precBitwiseAnd, true

	// Сравнения
	case token.EqEq:
		return ast.BinaryEq, precComparison, true
	case token.BangEq:
		return ast.BinaryNotEq, precComparison, true
	case token.Lt:
		return ast.BinaryLess, precComparison, true
	case token.LtEq:
		return ast.BinaryLessEq, precComparison, true
	case token.Gt:
		return ast.BinaryGreater, precComparison, true
	case token.GtEq:
		return ast.BinaryGreaterEq, precComparison, true

	// Диапазоны
	case token.DotDot:
		return ast.BinaryRange, precRange, true
	case token.DotDotEq:
		return ast.BinaryRangeInclusive, precRange, true

	// Сдвиги
	case token.LtLt:
		return ast.BinaryShiftLeft, precShift, true
	case token.GtGt:
		return ast.BinaryShiftRight, precShift, true

	// Арифметические
	case token.Plus:
		return ast.BinaryAdd, precAdditive, true
	case token.Minus:
		return ast.BinarySub, precAdditive, true
	case token.Star:
		return ast.BinaryMul, precMultiplicative, true
	case token.Div:
		return ast.BinaryDiv, precMultiplicative, true
	case token.Mod:
		return ast.BinaryMod, precMultiplicative, true

	default:
		return 0, -1, false // не бинарный оператор
	}
}

// unaryOperator возвращает префиксный оператор для токена.
func unaryOperator(kind token.Kind) (ast.UnaryOp, bool) {
	switch kind {
	case token.At:
		return ast.UnaryReference, true
	case token.Star:
		return ast.UnaryDereference, true
	case token.Minus:
		return ast.UnaryNegate, true
	case token.Bang:
		return ast.UnaryBooleanNot, true
	case token.Tilde:
		return ast.UnaryBitwiseNot, true
	default:
		return 0, false
	}
}
