package driver

import (
	"context"

	"wright/internal/diag"
	"wright/internal/lexer"
	"wright/internal/source"
	"wright/internal/token"
)

type TokenizeResult struct {
	Source *source.Source
	Tokens []token.Token
	Bag    *diag.Bag
}

// Close releases the lock on the source.
func (r *TokenizeResult) Close() error {
	if r == nil || r.Source == nil {
		return nil
	}
	return r.Source.Close()
}

// Tokenize lexes the whole file at path. Malformed tokens are reported into Bag.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	done := opts.Timer.Track("load")
	src, err := Open(ctx, path)
	done(path)
	if err != nil {
		return nil, err
	}
	return TokenizeSource(src, opts), nil
}

// TokenizeSource lexes src to the end.
func TokenizeSource(src *source.Source, opts Options) *TokenizeResult {
	done := opts.Timer.Track("lex")
	lx := lexer.NewSource(src)
	tokens := lx.All()
	done("")

	bag := diag.NewBag(opts.MaxDiagnostics)
	for _, tok := range tokens {
		if d, ok := diag.FromToken(tok); ok {
			bag.Add(d)
		}
	}
	return &TokenizeResult{
		Source: src,
		Tokens: tokens,
		Bag:    bag,
	}
}
