package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexUnterminatedChar         Code = 1004
	LexUnterminatedFormatString Code = 1005

	// Грамматика
	SynInfo                 Code = 2000
	SynExpectWhitespace     Code = 2001
	SynExpectIdentifier     Code = 2002
	SynExpectPath           Code = 2003
	SynExpectType           Code = 2004
	SynExpectAtomicType     Code = 2005
	SynExpectReferenceType  Code = 2006
	SynExpectNamedType      Code = 2007
	SynUnclosedGenericList  Code = 2008
	SynExpectBoolean        Code = 2009
	SynExpectInteger        Code = 2010
	SynBadInteger           Code = 2011
	SynExpectString         Code = 2012
	SynExpectChar           Code = 2013
	SynUnclosedString       Code = 2014
	SynUnclosedChar         Code = 2015
	SynBadCharLiteral       Code = 2016
	SynExpectExpression     Code = 2017
	SynUnclosedParen        Code = 2018
	SynExpectDeclaration    Code = 2019
	SynExpectImport         Code = 2020
	SynExpectTypeAlias      Code = 2021
	SynExpectConst          Code = 2022
	SynExpectColon          Code = 2023
	SynExpectInitializer    Code = 2024
	SynExpectSemicolon      Code = 2025
	SynInvalidEscapeLiteral Code = 2026

	// Загрузка исходников
	IOLoadFileError Code = 3001
	IOInvalidUTF8   Code = 3002
	IOLockFailed    Code = 3003

	// Escape-последовательности
	EscUnrecognized        Code = 4001
	EscNotEnoughHexDigits  Code = 4002
	EscNotHexDigits        Code = 4003
	EscHexTooHigh          Code = 4004
	EscExpectedOpenBrace   Code = 4005
	EscEmpty               Code = 4006
	EscNonDigitCharacter   Code = 4007
	EscTooManyDigits       Code = 4008
	EscMissingClosingBrace Code = 4009
	EscInvalidCodepoint    Code = 4010
)

var (
	codeDescription = map[Code]string{
		UnknownCode:                 "Unknown error",
		LexInfo:                     "Lexical information",
		LexUnknownChar:              "Unknown character",
		LexUnterminatedString:       "Unterminated string literal",
		LexUnterminatedBlockComment: "Unterminated block comment",
		LexUnterminatedChar:         "Unterminated character literal",
		LexUnterminatedFormatString: "Unterminated format string literal",
		SynInfo:                     "Syntax information",
		SynExpectWhitespace:         "Expected whitespace",
		SynExpectIdentifier:         "Expected identifier",
		SynExpectPath:               "Expected path",
		SynExpectType:               "Expected type",
		SynExpectAtomicType:         "Expected primitive type",
		SynExpectReferenceType:      "Expected reference type",
		SynExpectNamedType:          "Expected named type",
		SynUnclosedGenericList:      "Unterminated generic type signature",
		SynExpectBoolean:            "Expected boolean literal",
		SynExpectInteger:            "Expected integer literal",
		SynBadInteger:               "Malformed integer literal",
		SynExpectString:             "Expected string literal",
		SynExpectChar:               "Expected character literal",
		SynUnclosedString:           "Unterminated string literal",
		SynUnclosedChar:             "Unterminated character literal",
		SynBadCharLiteral:           "Malformed character literal",
		SynExpectExpression:         "Expected expression",
		SynUnclosedParen:            "Unclosed parenthesis",
		SynExpectDeclaration:        "Expected declaration",
		SynExpectImport:             "Expected import declaration",
		SynExpectTypeAlias:          "Expected type alias",
		SynExpectConst:              "Expected constant declaration",
		SynExpectColon:              "Expected ':'",
		SynExpectInitializer:        "Expected '='",
		SynExpectSemicolon:          "Expected ';'",
		SynInvalidEscapeLiteral:     "Invalid escape in literal",
		IOLoadFileError:             "I/O load file error",
		IOInvalidUTF8:               "File is not valid UTF-8",
		IOLockFailed:                "Could not lock file",
		EscUnrecognized:             "Unrecognized escape sequence",
		EscNotEnoughHexDigits:       "Not enough hex digits",
		EscNotHexDigits:             "Characters are not hex digits",
		EscHexTooHigh:               "ASCII escape above 0x7F",
		EscExpectedOpenBrace:        "Expected '{' in unicode escape",
		EscEmpty:                    "Empty unicode escape",
		EscNonDigitCharacter:        "Non-hex character in unicode escape",
		EscTooManyDigits:            "Too many digits in unicode escape",
		EscMissingClosingBrace:      "Missing '}' in unicode escape",
		EscInvalidCodepoint:         "Invalid unicode codepoint",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("ESC%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
