package source

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Fragment is a byte range [Start, End) of a Source. It is the span type used
// by tokens, AST nodes and diagnostics; copying one is free.
//
// A valid fragment has Start <= End and both bounds on UTF-8 boundaries of the
// source text. A zero-length fragment is valid and marks a position.
type Fragment struct {
	Source *Source
	Start  int // в байтах включительно
	End    int // в байтах не включительно
}

// IsValid reports whether the range is ordered, in bounds and on character boundaries.
func (f Fragment) IsValid() bool {
	if f.Source == nil {
		return f.Start == 0 && f.End == 0
	}
	text := f.Source.Text()
	return 0 <= f.Start && f.Start <= f.End && f.End <= len(text) &&
		isCharBoundary(text, f.Start) && isCharBoundary(text, f.End)
}

// Range returns the byte bounds of the fragment.
func (f Fragment) Range() (start, end int) {
	return f.Start, f.End
}

func (f Fragment) Len() int {
	if f.End < f.Start {
		return 0
	}
	return f.End - f.Start
}

func (f Fragment) IsEmpty() bool {
	return f.Len() == 0
}

// String returns the text of the fragment. It panics if the fragment is not
// valid for its source.
func (f Fragment) String() string {
	if f.Source == nil {
		return ""
	}
	return f.Source.Text()[f.Start:f.End]
}

// Contains reports whether other lies entirely within f, in the same source.
func (f Fragment) Contains(other Fragment) bool {
	return f.Source == other.Source && f.Start <= other.Start && f.End >= other.End
}

// Overlaps reports whether either fragment contains the start of the other.
// A zero-length fragment overlaps a fragment that begins at or spans its position.
func (f Fragment) Overlaps(other Fragment) bool {
	return f.Source == other.Source &&
		(f.Start <= other.Start && other.Start < f.End ||
			other.Start <= f.Start && f.Start < other.End)
}

// IsAtEndOf reports whether f is zero-length and positioned at the end of other.
func (f Fragment) IsAtEndOf(other Fragment) bool {
	return f.Source == other.Source && f.IsEmpty() && f.Start == other.End
}

// OffsetFrom returns the number of bytes between the start of ancestor and the start of f.
// It panics unless ancestor contains f.
func (f Fragment) OffsetFrom(ancestor Fragment) int {
	if !ancestor.Contains(f) {
		panic(fmt.Errorf("fragment %s is not contained in %s", f.Debug(), ancestor.Debug()))
	}
	return f.Start - ancestor.Start
}

// SplitAt splits f into its first n bytes and the rest.
// It panics if n is out of range or not on a character boundary.
func (f Fragment) SplitAt(n int) (left, right Fragment) {
	if n < 0 || n > f.Len() || !isCharBoundary(f.String(), n) {
		panic(fmt.Errorf("cannot split %s at byte %d: not a character boundary", f.Debug(), n))
	}
	return f.SplitAtUnchecked(n)
}

// SplitAtUnchecked is SplitAt without the boundary check.
func (f Fragment) SplitAtUnchecked(n int) (left, right Fragment) {
	mid := f.Start + n
	return Fragment{Source: f.Source, Start: f.Start, End: mid},
		Fragment{Source: f.Source, Start: mid, End: f.End}
}

// AdvanceBy returns f with its start moved forward by n bytes.
// It panics if the result would not be a valid fragment.
func (f Fragment) AdvanceBy(n int) Fragment {
	if n < 0 || n > f.Len() || !isCharBoundary(f.String(), n) {
		panic(fmt.Errorf("advancing %s by %d bytes would create an invalid fragment", f.Debug(), n))
	}
	return f.AdvanceByUnchecked(n)
}

// AdvanceByUnchecked is AdvanceBy without checks. Callers guarantee n lands on a boundary.
func (f Fragment) AdvanceByUnchecked(n int) Fragment {
	f.Start += n
	return f
}

// RetainUnchecked returns f shrunk to its first n bytes, without checks.
func (f Fragment) RetainUnchecked(n int) Fragment {
	f.End = f.Start + n
	return f
}

// TrimStart drops leading whitespace. An all-whitespace fragment becomes
// zero-length at its end.
func (f Fragment) TrimStart() Fragment {
	s := f.String()
	f.Start += len(s) - len(strings.TrimLeftFunc(s, unicode.IsSpace))
	return f
}

// TrimEnd drops trailing whitespace. An all-whitespace fragment becomes
// zero-length at its start.
func (f Fragment) TrimEnd() Fragment {
	f.End = f.Start + len(strings.TrimRightFunc(f.String(), unicode.IsSpace))
	return f
}

// Trimmed trims the end, then the start. An all-whitespace fragment becomes
// zero-length at its start, so it still overlaps the original.
func (f Fragment) Trimmed() Fragment {
	return f.TrimEnd().TrimStart()
}

// Cover returns the smallest fragment spanning both f and other.
// It panics if they belong to different sources.
func (f Fragment) Cover(other Fragment) Fragment {
	if f.Source != other.Source {
		panic(fmt.Errorf("cannot cover fragments of %s and %s", f.Source, other.Source))
	}
	return Fragment{Source: f.Source, Start: min(f.Start, other.Start), End: max(f.End, other.End)}
}

// Equal reports whether both fragments reference the same Source and range.
func (f Fragment) Equal(other Fragment) bool {
	return f.Source == other.Source && f.Start == other.Start && f.End == other.End
}

// LineIndices returns the 0-indexed, half-open range of lines f overlaps.
// A zero-length fragment covers the line containing it.
func (f Fragment) LineIndices() (start, end int) {
	if f.Source == nil {
		return 0, 0
	}
	starts := f.Source.LineStarts()
	if len(starts) == 0 {
		return 0, 0
	}
	start = lineIndex(starts, f.Start)
	if f.IsEmpty() {
		return start, start + 1
	}
	// последний байт фрагмента определяет последнюю строку
	return start, lineIndex(starts, f.End-1) + 1
}

// Position returns the 1-based line and column of the start of f.
func (f Fragment) Position() LineCol {
	if f.Source == nil {
		return LineCol{Line: 1, Column: 1}
	}
	return f.Source.Position(f.Start)
}

// Debug formats f as name:line:col for logs and panics.
func (f Fragment) Debug() string {
	if f.Source == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s:%s", f.Source.Name(), f.Position())
}

func isCharBoundary(s string, i int) bool {
	if i == 0 || i == len(s) {
		return true
	}
	if i < 0 || i > len(s) {
		return false
	}
	return utf8.RuneStart(s[i])
}
