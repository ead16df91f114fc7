package diag

import (
	"errors"
	"fmt"

	"wright/internal/escape"
	"wright/internal/parser"
	"wright/internal/source"
	"wright/internal/token"
)

var syntaxCodes = map[parser.ErrorKind]Code{
	parser.ExpectedWhitespace:               SynExpectWhitespace,
	parser.ExpectedIdentifier:               SynExpectIdentifier,
	parser.ExpectedPath:                     SynExpectPath,
	parser.ExpectedTypeSignature:            SynExpectType,
	parser.ExpectedAtomicTypeSignature:      SynExpectAtomicType,
	parser.ExpectedReferenceTypeSignature:   SynExpectReferenceType,
	parser.ExpectedNamedTypeSignature:       SynExpectNamedType,
	parser.UnterminatedGenericTypeSignature: SynUnclosedGenericList,
	parser.ExpectedBooleanLiteral:           SynExpectBoolean,
	parser.ExpectedIntegerLiteral:           SynExpectInteger,
	parser.InvalidIntegerLiteral:            SynBadInteger,
	parser.ExpectedStringLiteral:            SynExpectString,
	parser.ExpectedCharLiteral:              SynExpectChar,
	parser.UnterminatedStringLiteral:        SynUnclosedString,
	parser.UnterminatedCharLiteral:          SynUnclosedChar,
	parser.InvalidEscapeSequence:            SynInvalidEscapeLiteral,
	parser.InvalidCharLiteral:               SynBadCharLiteral,
	parser.ExpectedExpression:               SynExpectExpression,
	parser.ExpectedClosingParen:             SynUnclosedParen,
	parser.ExpectedDeclaration:              SynExpectDeclaration,
	parser.ExpectedImportDeclaration:        SynExpectImport,
	parser.ImportMustEndWithSemicolon:       SynExpectSemicolon,
	parser.ExpectedTypeAliasDeclaration:     SynExpectTypeAlias,
	parser.TypeAliasMustEndWithSemicolon:    SynExpectSemicolon,
	parser.ExpectedConstDeclaration:         SynExpectConst,
	parser.ExpectedConstTypeAnnotation:      SynExpectColon,
	parser.ExpectedConstInitializer:         SynExpectInitializer,
	parser.ConstMustEndWithSemicolon:        SynExpectSemicolon,
}

var escapeCodes = map[escape.ErrorKind]Code{
	escape.UnrecognizedEscapeSequence: EscUnrecognized,
	escape.NotEnoughHexDigits:         EscNotEnoughHexDigits,
	escape.CharactersAreNotHexDigits:  EscNotHexDigits,
	escape.HexEscapeTooHigh:           EscHexTooHigh,
	escape.ExpectedOpenBrace:          EscExpectedOpenBrace,
	escape.Empty:                      EscEmpty,
	escape.NonDigitCharacter:          EscNonDigitCharacter,
	escape.TooManyDigits:              EscTooManyDigits,
	escape.MissingClosingBrace:        EscMissingClosingBrace,
	escape.InvalidCodepoint:           EscInvalidCodepoint,
}

// SyntaxCode maps a parser error kind to its diagnostic code.
func SyntaxCode(k parser.ErrorKind) Code {
	if c, ok := syntaxCodes[k]; ok {
		return c
	}
	return SynInfo
}

// EscapeCode maps an escape error kind to its diagnostic code.
func EscapeCode(k escape.ErrorKind) Code {
	if c, ok := escapeCodes[k]; ok {
		return c
	}
	return UnknownCode
}

// FromParserError converts a grammar error. Help lines become notes; an
// invalid escape error gets one highlight per bad escape.
func FromParserError(e *parser.Error) Diagnostic {
	d := NewError(SyntaxCode(e.Kind), e.Location, e.Kind.Describe())
	if e.Kind == parser.InvalidEscapeSequence && len(e.Escapes) > 0 {
		d.Highlights = escapeHighlights(e.Location, e.Escapes)
	} else if found := e.Location.String(); found != "" {
		d = d.WithLabel(fmt.Sprintf("found %q", found))
	}
	for _, h := range e.Help {
		d = d.WithNote(h)
	}
	return d
}

// FromParserErrors converts a batch of grammar errors in order.
func FromParserErrors(errs []*parser.Error) []Diagnostic {
	out := make([]Diagnostic, 0, len(errs))
	for _, e := range errs {
		out = append(out, FromParserError(e))
	}
	return out
}

// FromEscapeErrors reports every bad escape of a literal body on its own.
// Escape offsets are relative to body.
func FromEscapeErrors(body source.Fragment, errs []escape.Error) []Diagnostic {
	out := make([]Diagnostic, 0, len(errs))
	for _, e := range errs {
		f := escapeFragment(body, e)
		out = append(out, NewError(EscapeCode(e.Kind), f, e.Kind.String()))
	}
	return out
}

func escapeHighlights(body source.Fragment, errs []escape.Error) []Highlight {
	hs := make([]Highlight, 0, len(errs))
	for i, e := range errs {
		hs = append(hs, Highlight{
			Fragment: escapeFragment(body, e),
			Message:  e.Kind.String(),
			Primary:  i == 0,
		})
	}
	return hs
}

func escapeFragment(body source.Fragment, e escape.Error) source.Fragment {
	return source.Fragment{
		Source: body.Source,
		Start:  body.Start + e.Start,
		End:    body.Start + e.End,
	}
}

// FromToken reports malformed tokens: unknown characters and anything that
// runs to the end of input without closing. ok is false for good tokens.
func FromToken(tok token.Token) (d Diagnostic, ok bool) {
	switch {
	case tok.Kind == token.Unknown:
		return NewError(LexUnknownChar, tok.Fragment,
			fmt.Sprintf("unknown character %q", tok.Text())), true
	case tok.Kind == token.UnterminatedBlockComment:
		return NewError(LexUnterminatedBlockComment, tok.Fragment, "block comment is never closed").
			WithNote("block comments nest; every /* needs its own */"), true
	case !tok.IsUnterminated():
		return Diagnostic{}, false
	case tok.Kind == token.StringLiteral:
		return NewError(LexUnterminatedString, tok.Fragment, "string literal is never closed"), true
	case tok.Kind == token.CharLiteral:
		return NewError(LexUnterminatedChar, tok.Fragment, "character literal is never closed"), true
	case tok.Kind == token.FormatStringLiteral:
		return NewError(LexUnterminatedFormatString, tok.Fragment, "format string literal is never closed"), true
	}
	return Diagnostic{}, false
}

// FromLoadError converts a failure to load a source. The diagnostic has no highlights.
func FromLoadError(err error) Diagnostic {
	code := IOLoadFileError
	var le *source.LoadError
	switch {
	case errors.Is(err, source.ErrInvalidUTF8):
		code = IOInvalidUTF8
	case errors.As(err, &le) && le.Op == "lock":
		code = IOLockFailed
	}
	return Diagnostic{Severity: SevError, Code: code, Message: err.Error()}
}
