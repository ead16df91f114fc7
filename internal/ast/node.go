// Package ast holds the syntax tree built by the parser. Every node keeps the
// fragment of source it was parsed from; children are owned by their parent,
// and all fragments of one tree share the same *source.Source.
package ast

import (
	"wright/internal/source"
)

// Node is any syntax tree node.
type Node interface {
	// Span returns the fragment that produced the node.
	Span() source.Fragment
	// NodeKind names the node variant for dumps.
	NodeKind() string
}

// Children returns the direct children of n in source order.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Path:
		out := make([]Node, 0, 1+len(n.Tail))
		out = append(out, &n.Head)
		for i := range n.Tail {
			out = append(out, &n.Tail[i])
		}
		return out
	case *ReferenceTy:
		return []Node{n.Target}
	case *NamedTy:
		out := make([]Node, 0, 1+len(n.Generics))
		out = append(out, &n.Name)
		for _, g := range n.Generics {
			out = append(out, g)
		}
		return out
	case *PathExpr:
		return []Node{&n.Path}
	case *UnaryExpr:
		return []Node{n.Operand}
	case *BinaryExpr:
		return []Node{n.LHS, n.RHS}
	case *ParenExpr:
		return []Node{n.Inner}
	case *ImportDecl:
		out := []Node{&n.Item}
		if n.As != nil {
			out = append(out, n.As)
		}
		return out
	case *TypeAlias:
		out := []Node{&n.Name}
		if n.Target != nil {
			out = append(out, n.Target)
		}
		return out
	case *ConstDecl:
		return []Node{&n.Name, n.Ty, n.Value}
	case *File:
		out := make([]Node, 0, len(n.Decls))
		for _, d := range n.Decls {
			out = append(out, d)
		}
		return out
	default:
		return nil
	}
}

// Walk visits n and its descendants depth-first in source order. If fn
// returns false the children of that node are skipped.
func Walk(n Node, fn func(n Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int) bool) {
	if !fn(n, depth) {
		return
	}
	for _, c := range Children(n) {
		walk(c, depth+1, fn)
	}
}
