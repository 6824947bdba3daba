package state

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// FileBackend stores each slot as a JSON file in a directory.
type FileBackend struct {
	dir string
}

// NewFileBackend creates a file backend using the given directory.
// The directory is created on first write.
func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir}
}

// slotPath returns the path to the file for key.
func (f *FileBackend) slotPath(key string) string {
	return filepath.Join(f.dir, SanitizeKey(key)+".json")
}

// Get reads the slot file for key. A missing file is not an error.
func (f *FileBackend) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.slotPath(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read slot %s: %w", key, err)
	}
	return data, true, nil
}

// Put writes the slot file for key atomically.
func (f *FileBackend) Put(key string, data []byte) error {
	// Ensure directory exists
	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	path := f.slotPath(key)
	if existing, err := os.ReadFile(path); err == nil {
		if bytes.Equal(existing, data) {
			return nil
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read slot %s: %w", key, err)
	}

	// Write atomically via temp file
	tmpFile, err := os.CreateTemp(f.dir, filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp slot file: %w", err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(data)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp slot file: %w", err)
	}

	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename slot file: %w", err)
	}

	return nil
}

// Close is a no-op.
func (f *FileBackend) Close() error {
	return nil
}

var (
	unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
	repeatedDashes = regexp.MustCompile(`-+`)
)

// SanitizeKey converts a slot key to a safe file name.
func SanitizeKey(key string) string {
	key = strings.TrimSpace(key)
	key = unsafeKeyChars.ReplaceAllString(key, "-")
	key = repeatedDashes.ReplaceAllString(key, "-")
	key = strings.Trim(key, "-.")
	if key == "" {
		return "slot"
	}
	return key
}
