//go:build unix

package source

import (
	"context"
	"fmt"
	"os"
	"time"
	"unicode/utf8"
	"unsafe"

	"fortio.org/safecast"
	"github.com/tliron/commonlog"
	"golang.org/x/sys/unix"
)

// lockWarnAfter is how long lock acquisition may block before a warning is logged.
var lockWarnAfter = 5 * time.Second

func logger() commonlog.Logger {
	return commonlog.GetLogger("wright.source")
}

// lockedFile is an open file under LOCK_EX plus its read-only mapping.
type lockedFile struct {
	path string
	file *os.File
	data []byte
}

func (lf *lockedFile) text() string {
	if len(lf.data) == 0 {
		return ""
	}
	return unsafe.String(&lf.data[0], len(lf.data))
}

// release снимает mmap и лок; ошибка unlock только логируется.
func (lf *lockedFile) release() error {
	var firstErr error
	if lf.data != nil {
		if err := unix.Munmap(lf.data); err != nil {
			firstErr = fmt.Errorf("munmap %s: %w", lf.path, err)
		}
		lf.data = nil
	}
	if err := flock(lf.file, unix.LOCK_UN); err != nil {
		logger().Errorf("failed to unlock %s: %v", lf.path, err)
	}
	if err := lf.file.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("close %s: %w", lf.path, err)
	}
	return firstErr
}

func openLocked(ctx context.Context, path string) (*lockedFile, error) {
	// #nosec G304 -- path is provided by the caller
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Op: "open", Err: err}
	}

	if abandoned, err := lockExclusive(ctx, f, path); err != nil {
		// брошенный лок закрывает ожидающая горутина
		if !abandoned {
			if cerr := f.Close(); cerr != nil {
				logger().Debugf("close %s after failed lock: %v", path, cerr)
			}
		}
		return nil, &LoadError{Path: path, Op: "lock", Err: err}
	}

	lf := &lockedFile{path: path, file: f}
	fail := func(op string, err error) (*lockedFile, error) {
		if rerr := lf.release(); rerr != nil {
			logger().Debugf("release %s: %v", path, rerr)
		}
		return nil, &LoadError{Path: path, Op: op, Err: err}
	}

	st, err := f.Stat()
	if err != nil {
		return fail("stat", err)
	}
	size, err := safecast.Conv[int](st.Size())
	if err != nil {
		return fail("stat", fmt.Errorf("file too large: %w", err))
	}
	if size == 0 {
		// mmap нулевой длины невалиден; пустой файл остаётся под локом без маппинга
		return lf, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return fail("mmap", err)
	}
	lf.data = data

	if !utf8.Valid(data) {
		return fail("utf8", ErrInvalidUTF8)
	}
	return lf, nil
}

// lockExclusive takes LOCK_EX on a worker goroutine. A second goroutine logs a
// warning if the lock has not been granted after lockWarnAfter; it never
// interrupts the wait. When ctx is done first the wait is abandoned: the
// worker keeps waiting, then unlocks and closes f itself.
func lockExclusive(ctx context.Context, f *os.File, path string) (abandoned bool, err error) {
	result := make(chan error, 1)
	go func() {
		result <- flock(f, unix.LOCK_EX)
	}()

	resolved := make(chan struct{})
	defer close(resolved)
	go func() {
		timer := time.NewTimer(lockWarnAfter)
		defer timer.Stop()
		select {
		case <-timer.C:
			logger().Warningf("waiting for exclusive lock on %s for over %s", path, lockWarnAfter)
		case <-resolved:
		}
	}()

	select {
	case err := <-result:
		return false, err
	case <-ctx.Done():
		// лок может прийти позже: освобождаем его и закрываем файл в фоне
		go func() {
			if err := <-result; err == nil {
				if uerr := flock(f, unix.LOCK_UN); uerr != nil {
					logger().Errorf("failed to unlock %s: %v", path, uerr)
				}
			}
			if cerr := f.Close(); cerr != nil {
				logger().Debugf("close %s after abandoned lock: %v", path, cerr)
			}
		}()
		return true, ctx.Err()
	}
}

func flock(f *os.File, how int) error {
	for {
		err := unix.Flock(int(f.Fd()), how)
		if err != unix.EINTR {
			return err
		}
	}
}
