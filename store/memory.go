package store

import (
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
)

// MemoryStore wraps billy's memfs. It implements Store while keeping the
// underlying billy.Filesystem reachable through Unwrap.
type MemoryStore struct {
	mu  sync.RWMutex
	bfs billy.Filesystem
}

// NewMemory creates an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		bfs: memfs.New(),
	}
}

// Unwrap returns the underlying billy.Filesystem. Access through it bypasses
// the store's locking.
func (m *MemoryStore) Unwrap() billy.Filesystem {
	return m.bfs
}

// normalize converts paths to use forward slashes consistently.
func normalize(name string) string {
	return filepath.ToSlash(filepath.Clean(name))
}

// WriteFile writes data to the named file, creating parent directories as needed.
func (m *MemoryStore) WriteFile(name string, data []byte, perm fs.FileMode) error {
	name = normalize(name)

	m.mu.Lock()
	defer m.mu.Unlock()

	if dir := path.Dir(name); dir != "." && dir != "/" {
		if err := m.bfs.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := m.bfs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// ReadFile reads the named file and returns its contents.
func (m *MemoryStore) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	f, err := m.bfs.Open(normalize(name))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

// Exists reports whether the named file exists.
func (m *MemoryStore) Exists(name string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, err := m.bfs.Stat(normalize(name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Type returns TypeMemory.
func (m *MemoryStore) Type() Type {
	return TypeMemory
}

var _ Store = (*MemoryStore)(nil)
