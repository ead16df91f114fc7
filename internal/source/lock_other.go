//go:build !unix

package source

import (
	"context"
	"os"
	"unicode/utf8"

	"github.com/tliron/commonlog"
)

func logger() commonlog.Logger {
	return commonlog.GetLogger("wright.source")
}

// lockedFile на платформах без flock/mmap: файл читается целиком и держится открытым.
type lockedFile struct {
	path string
	file *os.File
	data string
}

func (lf *lockedFile) text() string { return lf.data }

func (lf *lockedFile) release() error {
	lf.data = ""
	return lf.file.Close()
}

func openLocked(ctx context.Context, path string) (*lockedFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, &LoadError{Path: path, Op: "lock", Err: err}
	}
	// #nosec G304 -- path is provided by the caller
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Op: "open", Err: err}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		_ = f.Close()
		return nil, &LoadError{Path: path, Op: "read", Err: err}
	}
	if !utf8.Valid(data) {
		_ = f.Close()
		return nil, &LoadError{Path: path, Op: "utf8", Err: ErrInvalidUTF8}
	}
	logger().Debugf("advisory locking unavailable, %s read without lock", path)
	return &lockedFile{path: path, file: f, data: string(data)}, nil
}
