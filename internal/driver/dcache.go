package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"wright/internal/diag"
	"wright/internal/source"
	"wright/internal/version"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// Digest is a SHA-256 cache key.
type Digest [sha256.Size]byte

// DiskCache хранит диагностики файлов по хэшу содержимого.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the cached outcome of checking one source.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Name        string
	Diagnostics []CachedDiagnostic
}

// CachedDiagnostic is a diagnostic with its fragments reduced to byte offsets
// into the source it was produced for.
type CachedDiagnostic struct {
	Severity   diag.Severity
	Code       diag.Code
	Message    string
	Highlights []CachedHighlight
	Notes      []string
}

type CachedHighlight struct {
	Start, End int
	Message    string
	Primary    bool
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewDiskCache(filepath.Join(base, app))
}

// NewDiskCache opens a cache rooted at dir, creating it if needed.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

// KeyFor derives the cache key of src: its contents plus everything that
// changes the diagnostics produced for them.
func KeyFor(src *source.Source, maxDiagnostics int) Digest {
	h := sha256.New()
	var hdr [10]byte
	binary.LittleEndian.PutUint16(hdr[:2], diskCacheSchemaVersion)
	binary.LittleEndian.PutUint64(hdr[2:], uint64(max(0, maxDiagnostics)))
	_, _ = h.Write(hdr[:])
	_, _ = h.Write([]byte(version.Version))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(src.Text()))
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// подкаталоги по первому байту, чтобы не держать тысячи файлов в одном
	return filepath.Join(c.dir, "diags", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		// после Rename временного файла уже нет
		if rerr := os.Remove(f.Name()); rerr != nil && !errors.Is(rerr, os.ErrNotExist) {
			logger().Debugf("failed to remove temp file %s: %v", f.Name(), rerr)
		}
	}()

	payload.Schema = diskCacheSchemaVersion
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache. Payloads of
// another schema are reported as misses.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger().Debugf("close cache entry: %v", cerr)
		}
	}()
	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return out.Schema == diskCacheSchemaVersion, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// переименовываем и удаляем: параллельный Get не увидит полуудалённый каталог
	old := c.dir + ".old-" + time.Now().Format("20060102150405.000000000")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// toPayload reduces diagnostics of src to offsets.
func toPayload(src *source.Source, diags []diag.Diagnostic) *DiskPayload {
	payload := &DiskPayload{
		Name:        src.Name().String(),
		Diagnostics: make([]CachedDiagnostic, 0, len(diags)),
	}
	for _, d := range diags {
		cd := CachedDiagnostic{
			Severity: d.Severity,
			Code:     d.Code,
			Message:  d.Message,
			Notes:    d.Notes,
		}
		for _, h := range d.Highlights {
			cd.Highlights = append(cd.Highlights, CachedHighlight{
				Start:   h.Fragment.Start,
				End:     h.Fragment.End,
				Message: h.Message,
				Primary: h.Primary,
			})
		}
		payload.Diagnostics = append(payload.Diagnostics, cd)
	}
	return payload
}

// diagnostics rebuilds the cached diagnostics against src. It reports false
// when an offset does not fit src, which means the entry is stale.
func (p *DiskPayload) diagnostics(src *source.Source) ([]diag.Diagnostic, bool) {
	out := make([]diag.Diagnostic, 0, len(p.Diagnostics))
	for _, cd := range p.Diagnostics {
		d := diag.Diagnostic{
			Severity: cd.Severity,
			Code:     cd.Code,
			Message:  cd.Message,
			Notes:    cd.Notes,
		}
		for _, h := range cd.Highlights {
			f := source.Fragment{Source: src, Start: h.Start, End: h.End}
			if !f.IsValid() {
				return nil, false
			}
			d.Highlights = append(d.Highlights, diag.Highlight{Fragment: f, Message: h.Message, Primary: h.Primary})
		}
		out = append(out, d)
	}
	return out, true
}
