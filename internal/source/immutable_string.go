package source

import (
	"context"
	"errors"
	"sync"
)

// ErrInvalidUTF8 is returned when a loaded file is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("file content is not valid UTF-8")

type backing uint8

const (
	backingStatic backing = iota
	backingOwned
	backingLocked
)

// ImmutableString holds the text of one source. It is one of three variants:
// a static string, an owned string, or a read-only memory mapping of a file
// held under an advisory exclusive lock.
//
// The text is valid UTF-8 and never changes after construction. Line starts
// are computed once when the string is built.
type ImmutableString struct {
	kind       backing
	text       string
	lineStarts []int

	locked *lockedFile
	once   sync.Once
}

// StaticString wraps a string that lives for the whole program (literals, embedded files).
func StaticString(s string) *ImmutableString {
	return &ImmutableString{kind: backingStatic, text: s, lineStarts: buildLineStarts(s)}
}

// OwnedString wraps a string produced at runtime.
func OwnedString(s string) *ImmutableString {
	return &ImmutableString{kind: backingOwned, text: s, lineStarts: buildLineStarts(s)}
}

// LoadLockedFile opens path, takes an advisory exclusive lock on it, maps it
// into memory and validates it as UTF-8. The lock is held until Close.
//
// Lock acquisition blocks; if it takes longer than five seconds a warning is
// logged while the wait continues. Cancelling ctx abandons the wait.
func LoadLockedFile(ctx context.Context, path string) (*ImmutableString, error) {
	lf, err := openLocked(ctx, path)
	if err != nil {
		return nil, err
	}
	text := lf.text()
	return &ImmutableString{
		kind:       backingLocked,
		text:       text,
		lineStarts: buildLineStarts(text),
		locked:     lf,
	}, nil
}

// String returns the text without copying.
func (s *ImmutableString) String() string {
	if s == nil {
		return ""
	}
	return s.text
}

// Len returns the length of the text in bytes.
func (s *ImmutableString) Len() int {
	return len(s.String())
}

// LineStarts returns the cached byte offsets of every line start.
// The returned slice must not be modified.
func (s *ImmutableString) LineStarts() []int {
	if s == nil {
		return nil
	}
	return s.lineStarts
}

// IsLocked reports whether the text is a locked memory mapping.
func (s *ImmutableString) IsLocked() bool {
	return s != nil && s.kind == backingLocked
}

// Close releases the mapping and the file lock of a locked string.
// It is a no-op for the other variants and safe to call more than once;
// the lock is released exactly once. After Close the text of a locked
// string must not be used.
func (s *ImmutableString) Close() error {
	if s == nil || s.kind != backingLocked {
		return nil
	}
	var err error
	s.once.Do(func() {
		err = s.locked.release()
	})
	return err
}
