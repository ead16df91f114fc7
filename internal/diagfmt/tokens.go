package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"wright/internal/token"
)

// TokenOutput is the serialized form of a token.
type TokenOutput struct {
	Kind         string `json:"kind" msgpack:"kind"`
	Text         string `json:"text,omitempty" msgpack:"text,omitempty"`
	Start        int    `json:"start" msgpack:"start"`
	End          int    `json:"end" msgpack:"end"`
	Line         int    `json:"line" msgpack:"line"`
	Column       int    `json:"col" msgpack:"col"`
	Unterminated bool   `json:"unterminated,omitempty" msgpack:"unterminated,omitempty"`
}

func tokenOutputs(tokens []token.Token, skipTrivia bool) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		if skipTrivia && tok.Kind.IsTrivia() {
			continue
		}
		pos := tok.Fragment.Position()
		out = append(out, TokenOutput{
			Kind:         tok.Kind.String(),
			Text:         tok.Text(),
			Start:        tok.Fragment.Start,
			End:          tok.Fragment.End,
			Line:         pos.Line,
			Column:       pos.Column,
			Unterminated: tok.IsUnterminated(),
		})
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, skipTrivia bool) error {
	for i, t := range tokenOutputs(tokens, skipTrivia) {
		if _, err := fmt.Fprintf(w, "%3d: %-22s %q at %d:%d (%d..%d)", i+1, t.Kind, t.Text, t.Line, t.Column, t.Start, t.End); err != nil {
			return err
		}
		if t.Unterminated {
			if _, err := fmt.Fprint(w, " unterminated"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, skipTrivia bool) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tokenOutputs(tokens, skipTrivia))
}

// FormatTokensMsgpack пишет токены в MessagePack: массив TokenOutput.
func FormatTokensMsgpack(w io.Writer, tokens []token.Token, skipTrivia bool) error {
	return msgpack.NewEncoder(w).Encode(tokenOutputs(tokens, skipTrivia))
}
