package source

import (
	"path/filepath"
	"slices"
)

// buildLineStarts returns the byte offset of every line start.
// Offset i starts a line iff i == 0 or text[i-1] == '\n'. An empty text has no lines,
// and a trailing '\n' does not open a new line.
func buildLineStarts(text string) []int {
	if text == "" {
		return nil
	}
	out := make([]int, 1, 1+len(text)/32)
	for i := 0; i < len(text)-1; i++ {
		if text[i] == '\n' {
			out = append(out, i+1)
		}
	}
	return out
}

// lineIndex находит строку, содержащую байт off (бинпоиск по началам строк).
// Offsets past the end map to the last line.
func lineIndex(starts []int, off int) int {
	idx, exact := slices.BinarySearch(starts, off)
	if exact {
		return idx
	}
	if idx == 0 {
		return 0
	}
	return idx - 1
}

func toLineCol(starts []int, off int) LineCol {
	if len(starts) == 0 {
		return LineCol{Line: 1, Column: off + 1}
	}
	line := lineIndex(starts, off)
	return LineCol{Line: line + 1, Column: off - starts[line] + 1}
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}

// RelativePath returns path relative to base when path lives under base,
// and the cleaned absolute path otherwise.
func RelativePath(path, base string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	absBase, err := filepath.Abs(base)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absBase, abs)
	if err != nil || rel == ".." || (len(rel) > 2 && rel[:3] == ".."+string(filepath.Separator)) {
		return normalizePath(abs), nil
	}
	return normalizePath(rel), nil
}
