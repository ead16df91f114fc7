package driver

import (
	"context"
	"io"
	"os"

	"wright/internal/source"
)

// StdinPath is the path argument that reads a source from standard input.
const StdinPath = "-"

// Stdin is read by Open for StdinPath. Tests replace it.
var Stdin io.Reader = os.Stdin

// Open loads path under a lock, or reads standard input for "-".
// The caller closes the returned source.
func Open(ctx context.Context, path string) (*source.Source, error) {
	if path == StdinPath {
		return source.FromReader(source.TestName("stdin"), Stdin)
	}
	return source.Load(ctx, path)
}
