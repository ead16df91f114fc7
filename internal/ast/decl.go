package ast

import (
	"wright/internal/source"
)

// Visibility indicates whether a declaration is exported from its module.
type Visibility uint8

const (
	// VisPrivate is the default visibility.
	VisPrivate Visibility = iota
	// VisPublic marks a declaration prefixed with `pub`.
	VisPublic
)

func (v Visibility) String() string {
	if v == VisPublic {
		return "pub"
	}
	return "private"
}

// Decl is a top-level declaration.
type Decl interface {
	Node
	Visibility() Visibility
	isDecl()
}

// ImportDecl is `use path::to::item (as name)?;`.
type ImportDecl struct {
	Fragment source.Fragment
	Vis      Visibility
	Item     Path
	As       *Identifier
}

// TypeAlias is `type Name = Target;`, or `type Name;` for an abstract type (Target == nil).
type TypeAlias struct {
	Fragment source.Fragment
	Vis      Visibility
	Name     Identifier
	Target   Type
}

// ConstDecl is `const NAME: Type = value;`.
type ConstDecl struct {
	Fragment source.Fragment
	Vis      Visibility
	Name     Identifier
	Ty       Type
	Value    Expr
}

func (d *ImportDecl) Span() source.Fragment { return d.Fragment }
func (d *TypeAlias) Span() source.Fragment  { return d.Fragment }
func (d *ConstDecl) Span() source.Fragment  { return d.Fragment }

func (*ImportDecl) NodeKind() string { return "ImportDecl" }
func (*TypeAlias) NodeKind() string  { return "TypeAlias" }
func (*ConstDecl) NodeKind() string  { return "ConstDecl" }

func (d *ImportDecl) Visibility() Visibility { return d.Vis }
func (d *TypeAlias) Visibility() Visibility  { return d.Vis }
func (d *ConstDecl) Visibility() Visibility  { return d.Vis }

func (*ImportDecl) isDecl() {}
func (*TypeAlias) isDecl()  {}
func (*ConstDecl) isDecl()  {}

// IsAbstract reports whether the alias has no target type.
func (d *TypeAlias) IsAbstract() bool { return d.Target == nil }

// File is the result of parsing one source: its declarations in order.
// Declarations that failed to parse are absent.
type File struct {
	Source *source.Source
	Decls  []Decl
}

func (f *File) Span() source.Fragment {
	if f.Source == nil {
		return source.Fragment{}
	}
	return f.Source.Fragment()
}

func (*File) NodeKind() string { return "File" }
