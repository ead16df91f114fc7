package token

import (
	"fmt"

	"wright/internal/source"
)

// Token represents a single source token: its kind and the fragment it covers.
type Token struct {
	Kind     Kind
	Fragment source.Fragment
	// Terminated is set on quoted literals that reached their closing quote.
	Terminated bool
}

// Text returns the matched source text.
func (t Token) Text() string { return t.Fragment.String() }

// IsLiteral reports whether the token is an integer or quoted literal.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Identifier }

// IsUnterminated reports whether the token is a quoted literal or block
// comment that ran to the end of input without closing.
func (t Token) IsUnterminated() bool {
	return t.Kind == UnterminatedBlockComment || (t.Kind.IsQuoted() && !t.Terminated)
}

func (t Token) String() string {
	if t.Kind.IsQuoted() && !t.Terminated {
		return fmt.Sprintf("%q (%s, unterminated)", t.Text(), t.Kind)
	}
	return fmt.Sprintf("%q (%s)", t.Text(), t.Kind)
}
