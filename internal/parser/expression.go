package parser

import (
	"fmt"

	"wright/internal/ast"
	"wright/internal/token"
)

// ParseExpr - главная точка входа для парсинга выражений.
func (p *Parser) ParseExpr() (ast.Expr, error) {
	return p.ParseBinaryExpr(precLogicalOr)
}

// ParseBinaryExpr parses a chain of binary operators whose precedence is at
// least minPrec by precedence climbing. Whitespace and comments may surround
// operators; trailing whitespace after the last operand is not consumed.
func (p *Parser) ParseBinaryExpr(minPrec int) (ast.Expr, error) {
	left, err := p.ParseUnaryExpr()
	if err != nil {
		return nil, err
	}

	for {
		fork := p.Fork()
		fork.ConsumeOptionalWhitespace()
		opTok, ok := fork.Peek()
		if !ok {
			break
		}
		op, prec, ok := binaryOperator(opTok.Kind)
		if !ok || prec < minPrec {
			break // приоритет слишком низкий
		}
		fork.Advance(1)
		fork.ConsumeOptionalWhitespace()
		p.Update(fork)

		// левоассоциативность: правая часть связывает строго сильнее
		right, err := p.ParseBinaryExpr(prec + 1)
		if err != nil {
			return nil, withHelp(err, fmt.Sprintf("expected right operand of '%s'", op))
		}
		left = &ast.BinaryExpr{
			Fragment:   left.Span().Cover(right.Span()),
			Op:         op,
			OpFragment: opTok.Fragment,
			LHS:        left,
			RHS:        right,
		}
	}
	return left, nil
}

// ParseUnaryExpr parses prefix operators applied right to left, then a primary expression.
func (p *Parser) ParseUnaryExpr() (ast.Expr, error) {
	tok, ok := p.Peek()
	if !ok {
		return p.ParsePrimaryExpr()
	}
	op, ok := unaryOperator(tok.Kind)
	if !ok {
		return p.ParsePrimaryExpr()
	}
	p.Advance(1)
	p.ConsumeOptionalWhitespace()

	operand, err := p.ParseUnaryExpr()
	if err != nil {
		return nil, withHelp(err, fmt.Sprintf("expected operand of unary '%s'", op))
	}
	return &ast.UnaryExpr{
		Fragment:   tok.Fragment.Cover(operand.Span()),
		Op:         op,
		OpFragment: tok.Fragment,
		Operand:    operand,
	}, nil
}

// ParsePrimaryExpr parses a literal, a path or a parenthesized expression.
func (p *Parser) ParsePrimaryExpr() (ast.Expr, error) {
	kind, ok := p.PeekKind()
	if !ok {
		return nil, ExpectedExpression.At(p.PeekFragmentOrRest()).WithHelp("found end of source")
	}

	switch kind {
	case token.IntegerLiteral:
		return asExpr(p.ParseIntegerLiteral())
	case token.KwTrue, token.KwFalse:
		return asExpr(p.ParseBooleanLiteral())
	case token.StringLiteral, token.FormatStringLiteral:
		return asExpr(p.ParseStringLiteral())
	case token.CharLiteral:
		return asExpr(p.ParseCharLiteral())
	case token.Identifier:
		path, err := p.ParsePath()
		if err != nil {
			return nil, err
		}
		return &ast.PathExpr{Path: path}, nil
	case token.LeftParen:
		return asExpr(p.ParseParenExpr())
	default:
		return nil, ExpectedExpression.At(p.PeekFragmentOrRest())
	}
}

// ParseParenExpr parses `( expr )`. After the opening parenthesis every failure is committed.
func (p *Parser) ParseParenExpr() (*ast.ParenExpr, error) {
	open, ok := p.NextIf(token.LeftParen)
	if !ok {
		return nil, ExpectedExpression.At(p.PeekFragmentOrRest())
	}
	p.ConsumeOptionalWhitespace()

	inner, err := p.ParseExpr()
	if err != nil {
		return nil, withHelp(err, "expected expression after '('")
	}
	p.ConsumeOptionalWhitespace()

	closing, ok := p.NextIf(token.RightParen)
	if !ok {
		return nil, ExpectedClosingParen.At(p.PeekFragmentOrRest()).
			WithHelp(fmt.Sprintf("parenthesis opened at %s", open.Fragment.Position()))
	}
	return &ast.ParenExpr{Fragment: open.Fragment.Cover(closing.Fragment), Inner: inner}, nil
}

// asExpr не даёт типизированному nil-указателю стать непустым ast.Expr.
func asExpr[T ast.Expr](n T, err error) (ast.Expr, error) {
	if err != nil {
		return nil, err
	}
	return n, nil
}
