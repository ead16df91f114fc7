package lsp

import (
	"unicode/utf8"

	"fortio.org/safecast"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"wright/internal/source"
)

const maxUint32 = ^uint32(0)

func safeUint32(n int) uint32 {
	if n < 0 {
		return 0
	}
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		return maxUint32
	}
	return v
}

// utf16Len counts UTF-16 code units in s.
func utf16Len(s string) int {
	units := 0
	for _, r := range s {
		if r > 0xFFFF {
			units += 2
		} else {
			units++
		}
	}
	return units
}

// positionFor converts a byte offset of src into an LSP position (0-based, UTF-16 columns).
func positionFor(src *source.Source, off int) protocol.Position {
	text := src.Text()
	off = min(max(off, 0), len(text))
	for off > 0 && off < len(text) && !utf8.RuneStart(text[off]) {
		off--
	}
	line, lineStart := 0, 0
	if starts := src.LineStarts(); len(starts) > 0 {
		line = src.LineIndex(off)
		lineStart = starts[line]
	}
	// хвостовой '\n' открывает для клиента ещё одну строку
	if off == len(text) && off > lineStart && text[off-1] == '\n' {
		line++
		lineStart = off
	}
	return protocol.Position{
		Line:      safeUint32(line),
		Character: safeUint32(utf16Len(text[lineStart:off])),
	}
}

func rangeFor(f source.Fragment) protocol.Range {
	if !f.IsValid() {
		return protocol.Range{}
	}
	return protocol.Range{
		Start: positionFor(f.Source, f.Start),
		End:   positionFor(f.Source, f.End),
	}
}
