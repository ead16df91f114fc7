package lsp

import (
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// applyChanges applies content changes in order. A change without a range
// replaces the whole text.
func applyChanges(text string, changes []any) string {
	for _, change := range changes {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = c.Text
		case protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				text = c.Text
				continue
			}
			text = replaceRange(text, *c.Range, c.Text)
		}
	}
	return text
}

func replaceRange(text string, r protocol.Range, repl string) string {
	start := offsetForPosition(text, r.Start)
	end := max(offsetForPosition(text, r.End), start)
	return text[:start] + repl + text[end:]
}

// offsetForPosition maps an LSP position to a byte offset, clamping to the
// end of the line or of the text.
func offsetForPosition(text string, pos protocol.Position) int {
	line := uint32(0)
	i := 0
	for i < len(text) && line < pos.Line {
		if text[i] == '\n' {
			line++
		}
		i++
	}
	if line < pos.Line {
		return len(text)
	}
	units := uint32(0)
	for i < len(text) && units < pos.Character {
		if text[i] == '\n' {
			break
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		need := uint32(1)
		if r > 0xFFFF {
			need = 2
		}
		if units+need > pos.Character {
			break
		}
		units += need
		i += size
	}
	return i
}
