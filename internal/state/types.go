// Package state persists named JSON slots in a durable key-value backend.
//
// Each slot (the todo list, the category list, the dark-mode flag) is stored
// independently under its key. Reads never fail: missing or corrupt content
// yields the caller's fallback. Backends are not safe for concurrent use;
// the store drives them from a single goroutine.
package state

import (
	"fmt"
	"path/filepath"
	"sync"
)

// Backend is a durable key-value store for slot contents.
type Backend interface {
	// Get returns the bytes stored under key. ok is false when nothing is stored.
	Get(key string) (data []byte, ok bool, err error)

	// Put stores data under key, replacing any previous content.
	Put(key string, data []byte) error

	// Close releases any resources held by the backend.
	Close() error
}

// Kind names a backend implementation.
type Kind string

const (
	KindFile   Kind = "file"
	KindSQLite Kind = "sqlite"
	KindMemory Kind = "memory"
)

// SQLiteFile is the database file name used by the sqlite backend.
const SQLiteFile = "todos.db"

// ValidKinds returns all valid backend kinds.
func ValidKinds() []Kind {
	return []Kind{KindFile, KindSQLite, KindMemory}
}

// OpenBackend opens the backend of the given kind rooted at dir.
func OpenBackend(kind Kind, dir string) (Backend, error) {
	switch kind {
	case KindFile, "":
		return NewFileBackend(dir), nil
	case KindSQLite:
		return OpenSQLite(filepath.Join(dir, SQLiteFile))
	case KindMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (expected file, sqlite, or memory)", kind)
	}
}

// MemoryBackend keeps slots in memory. Contents are lost at exit.
type MemoryBackend struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

// Get returns a copy of the bytes stored under key.
func (m *MemoryBackend) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

// Put stores a copy of data under key.
func (m *MemoryBackend) Put(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), data...)
	return nil
}

// Close is a no-op.
func (m *MemoryBackend) Close() error {
	return nil
}
