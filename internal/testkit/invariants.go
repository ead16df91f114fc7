// Package testkit holds structural checks shared by parser tests and fuzz harnesses.
package testkit

import (
	"fmt"
	"strings"

	"wright/internal/ast"
	"wright/internal/source"
	"wright/internal/token"
)

// CheckFragmentInvariants runs a minimal set of fragment invariants on a parsed file:
// 1) every node fragment is valid and points into the file's source
// 2) every child fragment lies inside its parent's fragment
// 3) declarations are non-empty, ordered and do not overlap
func CheckFragmentInvariants(f *ast.File) error {
	if f == nil || f.Source == nil {
		return fmt.Errorf("nil file or source")
	}
	src := f.Source

	var firstErr error
	ast.Walk(f, func(n ast.Node, _ int) bool {
		if firstErr != nil {
			return false
		}
		span := n.Span()
		if !span.IsValid() {
			firstErr = fmt.Errorf("%s has an invalid fragment %s", n.NodeKind(), span.Debug())
			return false
		}
		if span.Source != src {
			firstErr = fmt.Errorf("%s points into another source: %s", n.NodeKind(), span.Debug())
			return false
		}
		for _, child := range ast.Children(n) {
			if !span.Contains(child.Span()) {
				firstErr = fmt.Errorf("%s %s is outside parent %s %s",
					child.NodeKind(), child.Span().Debug(), n.NodeKind(), span.Debug())
				return false
			}
		}
		return true
	})
	if firstErr != nil {
		return firstErr
	}

	prev := source.Fragment{}
	for i, d := range f.Decls {
		sp := d.Span()
		if sp.IsEmpty() {
			return fmt.Errorf("declaration %d has an empty fragment", i)
		}
		if i > 0 && sp.Start < prev.End {
			return fmt.Errorf("declaration %d %s overlaps %s", i, sp.Debug(), prev.Debug())
		}
		prev = sp
	}
	return nil
}

// CheckTokensCover verifies that toks tile text exactly: no gaps, no overlap,
// and the token texts concatenate back to the input.
func CheckTokensCover(text string, toks []token.Token) error {
	var b strings.Builder
	b.Grow(len(text))
	next := 0
	for i, tok := range toks {
		if tok.Fragment.Start != next {
			return fmt.Errorf("token %d (%s) starts at %d, want %d", i, tok.Kind, tok.Fragment.Start, next)
		}
		if tok.Fragment.IsEmpty() {
			return fmt.Errorf("token %d (%s) is empty", i, tok.Kind)
		}
		b.WriteString(tok.Fragment.String())
		next = tok.Fragment.End
	}
	if next != len(text) {
		return fmt.Errorf("tokens end at %d, input has %d bytes", next, len(text))
	}
	if b.String() != text {
		return fmt.Errorf("token texts do not reassemble the input")
	}
	return nil
}
