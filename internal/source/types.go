package source

import (
	"fmt"
	"sync/atomic"
)

type (
	// ID uniquely identifies a Source within the process.
	ID uint64
	// FileNameKind tells where a source came from.
	FileNameKind uint8
)

const (
	// FileNameNone marks text that has no name (stdin, REPL input).
	FileNameNone FileNameKind = iota
	// FileNameReal marks a source loaded from a path on disk.
	FileNameReal
	FileNameTest
)

var lastID atomic.Uint64

// nextID выдаёт уникальный ID, безопасно из любых горутин.
func nextID() ID {
	return ID(lastID.Add(1))
}

// FileName is the display name of a Source.
type FileName struct {
	Kind  FileNameKind
	Value string
}

// RealPath names a source backed by the file at path.
func RealPath(path string) FileName {
	return FileName{Kind: FileNameReal, Value: normalizePath(path)}
}

// TestName names a source created by a test case or an example.
func TestName(name string) FileName {
	return FileName{Kind: FileNameTest, Value: name}
}

// NoName names a source without any origin.
func NoName() FileName {
	return FileName{Kind: FileNameNone}
}

func (n FileName) String() string {
	switch n.Kind {
	case FileNameReal:
		return n.Value
	case FileNameTest:
		return "<" + n.Value + ">"
	default:
		return "<unnamed>"
	}
}

// LineCol represents a human-readable position in a source.
type LineCol struct {
	Line   int // 1-based
	Column int // 1-based, в байтах
}

func (lc LineCol) String() string {
	return fmt.Sprintf("%d:%d", lc.Line, lc.Column)
}

// LoadError reports an I/O-class failure while loading a source from disk.
type LoadError struct {
	Path string
	Op   string // open | lock | stat | mmap | utf8 | read
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
