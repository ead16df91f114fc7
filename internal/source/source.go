package source

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Source is one named unit of source code. It is immutable after construction
// and safe for concurrent readers. A *Source is the handle shared by fragments,
// tokens, AST nodes and diagnostics; two handles are equal iff they point to
// the same Source.
type Source struct {
	id   ID
	name FileName
	text *ImmutableString
}

// NewSource creates a Source over text.
func NewSource(name FileName, text *ImmutableString) *Source {
	if text == nil {
		text = StaticString("")
	}
	return &Source{id: nextID(), name: name, text: text}
}

// FromString creates a Source that owns s.
func FromString(name FileName, s string) *Source {
	return NewSource(name, OwnedString(s))
}

// FromStatic creates a Source over a string that lives for the whole program.
func FromStatic(name FileName, s string) *Source {
	return NewSource(name, StaticString(s))
}

// FromReader reads r to the end and creates an owned Source from it.
// A UTF-8 or UTF-16 byte order mark selects the decoding and is stripped;
// without a BOM the input is read as UTF-8 and invalid bytes become U+FFFD.
func FromReader(name FileName, r io.Reader) (*Source, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return FromString(name, string(data)), nil
}

// Load opens path under an advisory exclusive lock and maps it into memory.
// The returned Source must be closed to release the lock.
func Load(ctx context.Context, path string) (*Source, error) {
	text, err := LoadLockedFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return NewSource(RealPath(path), text), nil
}

// ID returns the process-unique id of the source.
func (s *Source) ID() ID { return s.id }

// Name returns the display name of the source.
func (s *Source) Name() FileName { return s.name }

// Text returns the whole text without copying.
func (s *Source) Text() string { return s.text.String() }

// Contents returns the backing string.
func (s *Source) Contents() *ImmutableString { return s.text }

// Len returns the length of the text in bytes.
func (s *Source) Len() int { return s.text.Len() }

// LineStarts returns the byte offset of every line start. Must not be modified.
func (s *Source) LineStarts() []int { return s.text.LineStarts() }

// LineCount returns the number of lines. An empty source has none.
func (s *Source) LineCount() int { return len(s.text.LineStarts()) }

// LineIndex returns the 0-indexed line containing byte offset off.
func (s *Source) LineIndex(off int) int {
	return lineIndex(s.LineStarts(), off)
}

// Line returns the fragment of the 0-indexed line i, trailing newline included.
// It panics if i is out of range.
func (s *Source) Line(i int) Fragment {
	starts := s.LineStarts()
	if i < 0 || i >= len(starts) {
		panic(fmt.Errorf("line %d out of range for %s (%d lines)", i, s.name, len(starts)))
	}
	end := s.Len()
	if i+1 < len(starts) {
		end = starts[i+1]
	}
	return Fragment{Source: s, Start: starts[i], End: end}
}

// Fragment returns a fragment covering the whole text.
func (s *Source) Fragment() Fragment {
	return Fragment{Source: s, Start: 0, End: s.Len()}
}

// Position converts a byte offset into a 1-based line and column.
func (s *Source) Position(off int) LineCol {
	return toLineCol(s.LineStarts(), off)
}

// IsLocked reports whether the source is a locked memory-mapped file.
func (s *Source) IsLocked() bool { return s.text.IsLocked() }

// Close releases the file lock of a loaded source. Fragments of a closed
// locked source must not be read.
func (s *Source) Close() error {
	return s.text.Close()
}

func (s *Source) String() string {
	return s.name.String()
}
