package ast

import (
	"strings"

	"wright/internal/source"
)

// Identifier is a name that is not a keyword.
type Identifier struct {
	Fragment source.Fragment
}

func (i *Identifier) Span() source.Fragment { return i.Fragment }
func (*Identifier) NodeKind() string        { return "Identifier" }

// Name returns the identifier text.
func (i *Identifier) Name() string { return i.Fragment.String() }

// Path is a "::"-separated sequence of identifiers, e.g. std::io::Reader.
// Whitespace and comments may surround the separators; Fragment covers them.
type Path struct {
	Fragment source.Fragment
	Head     Identifier
	Tail     []Identifier
}

func (p *Path) Span() source.Fragment { return p.Fragment }
func (*Path) NodeKind() string        { return "Path" }

// Segments returns every identifier of the path, head first.
func (p *Path) Segments() []Identifier {
	out := make([]Identifier, 0, 1+len(p.Tail))
	out = append(out, p.Head)
	return append(out, p.Tail...)
}

// Canonical joins the segments with "::", dropping whitespace and comments.
func (p *Path) Canonical() string {
	parts := make([]string, 0, 1+len(p.Tail))
	for _, seg := range p.Segments() {
		parts = append(parts, seg.Name())
	}
	return strings.Join(parts, "::")
}
