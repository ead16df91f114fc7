package source

import (
	"context"
	"errors"
	"sync"

	"github.com/tidwall/btree"
)

// Map is a concurrent registry of sources ordered by ID.
type Map struct {
	mu   sync.RWMutex
	tree btree.Map[ID, *Source]
}

// NewMap returns an empty Map. The zero Map is also ready to use.
func NewMap() *Map {
	return &Map{}
}

// Add registers src and returns its ID. Adding the same source twice is a no-op.
func (m *Map) Add(src *Source) ID {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tree.Set(src.ID(), src)
	return src.ID()
}

// AddString creates an owned source from s and registers it.
func (m *Map) AddString(name FileName, s string) *Source {
	src := FromString(name, s)
	m.Add(src)
	return src
}

// AddFile loads path under a lock and registers it.
func (m *Map) AddFile(ctx context.Context, path string) (*Source, error) {
	src, err := Load(ctx, path)
	if err != nil {
		return nil, err
	}
	m.Add(src)
	return src, nil
}

// Get returns the source with the given id.
func (m *Map) Get(id ID) (*Source, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tree.Get(id)
}

// Remove unregisters the source with the given id and returns it. The source is not closed.
func (m *Map) Remove(id ID) (*Source, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tree.Delete(id)
}

func (m *Map) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tree.Len()
}

// Range calls fn for every source in ID order until fn returns false.
// fn runs on a snapshot and may call back into the Map.
func (m *Map) Range(fn func(*Source) bool) {
	m.mu.RLock()
	srcs := m.snapshot()
	m.mu.RUnlock()
	for _, src := range srcs {
		if !fn(src) {
			return
		}
	}
}

// Close closes and removes every source. All close errors are joined.
func (m *Map) Close() error {
	m.mu.Lock()
	srcs := m.snapshot()
	m.tree = btree.Map[ID, *Source]{}
	m.mu.Unlock()

	var errs []error
	for _, src := range srcs {
		if err := src.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Map) snapshot() []*Source {
	out := make([]*Source, 0, m.tree.Len())
	m.tree.Scan(func(_ ID, src *Source) bool {
		out = append(out, src)
		return true
	})
	return out
}
