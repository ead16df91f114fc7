package parser

import (
	"errors"
	"fmt"
	"strings"

	"wright/internal/escape"
	"wright/internal/source"
)

// ErrorKind identifies what a production expected and did not find.
type ErrorKind uint8

const (
	_ ErrorKind = iota

	// Базовые
	ExpectedWhitespace
	ExpectedIdentifier
	ExpectedPath

	// Типы
	ExpectedTypeSignature
	ExpectedAtomicTypeSignature
	ExpectedReferenceTypeSignature
	ExpectedNamedTypeSignature
	UnterminatedGenericTypeSignature

	// Литералы
	ExpectedBooleanLiteral
	ExpectedIntegerLiteral
	InvalidIntegerLiteral
	ExpectedStringLiteral
	ExpectedCharLiteral
	UnterminatedStringLiteral
	UnterminatedCharLiteral
	InvalidEscapeSequence
	InvalidCharLiteral

	// Выражения
	ExpectedExpression
	ExpectedClosingParen

	// Объявления
	ExpectedDeclaration
	ExpectedImportDeclaration
	ImportMustEndWithSemicolon
	ExpectedTypeAliasDeclaration
	TypeAliasMustEndWithSemicolon
	ExpectedConstDeclaration
	ExpectedConstTypeAnnotation
	ExpectedConstInitializer
	ConstMustEndWithSemicolon
)

var errorKindNames = [...]string{
	ExpectedWhitespace:               "ExpectedWhitespace",
	ExpectedIdentifier:               "ExpectedIdentifier",
	ExpectedPath:                     "ExpectedPath",
	ExpectedTypeSignature:            "ExpectedTypeSignature",
	ExpectedAtomicTypeSignature:      "ExpectedAtomicTypeSignature",
	ExpectedReferenceTypeSignature:   "ExpectedReferenceTypeSignature",
	ExpectedNamedTypeSignature:       "ExpectedNamedTypeSignature",
	UnterminatedGenericTypeSignature: "UnterminatedGenericTypeSignature",
	ExpectedBooleanLiteral:           "ExpectedBooleanLiteral",
	ExpectedIntegerLiteral:           "ExpectedIntegerLiteral",
	InvalidIntegerLiteral:            "InvalidIntegerLiteral",
	ExpectedStringLiteral:            "ExpectedStringLiteral",
	ExpectedCharLiteral:              "ExpectedCharLiteral",
	UnterminatedStringLiteral:        "UnterminatedStringLiteral",
	UnterminatedCharLiteral:          "UnterminatedCharLiteral",
	InvalidEscapeSequence:            "InvalidEscapeSequence",
	InvalidCharLiteral:               "InvalidCharLiteral",
	ExpectedExpression:               "ExpectedExpression",
	ExpectedClosingParen:             "ExpectedClosingParen",
	ExpectedDeclaration:              "ExpectedDeclaration",
	ExpectedImportDeclaration:        "ExpectedImportDeclaration",
	ImportMustEndWithSemicolon:       "ImportMustEndWithSemicolon",
	ExpectedTypeAliasDeclaration:     "ExpectedTypeAliasDeclaration",
	TypeAliasMustEndWithSemicolon:    "TypeAliasMustEndWithSemicolon",
	ExpectedConstDeclaration:         "ExpectedConstDeclaration",
	ExpectedConstTypeAnnotation:      "ExpectedConstTypeAnnotation",
	ExpectedConstInitializer:         "ExpectedConstInitializer",
	ConstMustEndWithSemicolon:        "ConstMustEndWithSemicolon",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) && errorKindNames[k] != "" {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// Describe returns a human-readable message for the error kind.
func (k ErrorKind) Describe() string {
	switch k {
	case ExpectedWhitespace:
		return "expected whitespace"
	case ExpectedIdentifier:
		return "expected identifier"
	case ExpectedPath:
		return "expected path or identifier"
	case ExpectedTypeSignature:
		return "expected type signature"
	case ExpectedAtomicTypeSignature:
		return "expected primitive type signature"
	case ExpectedReferenceTypeSignature:
		return "expected reference type signature"
	case ExpectedNamedTypeSignature:
		return "expected named type signature"
	case UnterminatedGenericTypeSignature:
		return "unterminated generic type signature, expected ',' or '>'"
	case ExpectedBooleanLiteral:
		return "expected boolean literal"
	case ExpectedIntegerLiteral:
		return "expected integer literal"
	case InvalidIntegerLiteral:
		return "integer literal has no digits"
	case ExpectedStringLiteral:
		return "expected string literal"
	case ExpectedCharLiteral:
		return "expected character literal"
	case UnterminatedStringLiteral:
		return "unterminated string literal"
	case UnterminatedCharLiteral:
		return "unterminated character literal"
	case InvalidEscapeSequence:
		return "invalid escape sequence in literal"
	case InvalidCharLiteral:
		return "character literal must contain exactly one character"
	case ExpectedExpression:
		return "expected expression"
	case ExpectedClosingParen:
		return "expected ')' to close parenthesized expression"
	case ExpectedDeclaration:
		return "expected declaration (use, type or const)"
	case ExpectedImportDeclaration:
		return "expected import declaration"
	case ImportMustEndWithSemicolon:
		return "import declaration must end with ';'"
	case ExpectedTypeAliasDeclaration:
		return "expected type alias declaration"
	case TypeAliasMustEndWithSemicolon:
		return "type alias must end with ';'"
	case ExpectedConstDeclaration:
		return "expected constant declaration"
	case ExpectedConstTypeAnnotation:
		return "expected ':' and a type after constant name"
	case ExpectedConstInitializer:
		return "expected '=' and a value in constant declaration"
	case ConstMustEndWithSemicolon:
		return "constant declaration must end with ';'"
	default:
		return "parse error"
	}
}

// At builds an error of kind k located at f.
func (k ErrorKind) At(f source.Fragment) *Error {
	return &Error{Kind: k, Location: f}
}

// Error is a grammar error: what was expected and where it was not found.
type Error struct {
	Kind     ErrorKind
	Location source.Fragment
	Help     []string
	// Escapes holds the escape errors of an InvalidEscapeSequence error.
	// Their offsets are relative to Location, which covers the literal body.
	Escapes []escape.Error
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Location.Debug())
	sb.WriteString(": ")
	sb.WriteString(e.Kind.Describe())
	if found := e.Location.String(); found != "" && e.Kind != InvalidEscapeSequence {
		fmt.Fprintf(&sb, ", found %q", found)
	}
	return sb.String()
}

// WithHelp appends a help line and returns e.
func (e *Error) WithHelp(help string) *Error {
	e.Help = append(e.Help, help)
	return e
}

// withHelp - то же для значения error, не *Error пропускается как есть.
func withHelp(err error, help string) error {
	var pe *Error
	if errors.As(err, &pe) {
		pe.WithHelp(help)
	}
	return err
}
