package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBackend_GetMissing(t *testing.T) {
	backend := NewFileBackend(t.TempDir())

	data, ok, err := backend.Get("todos_v1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)
}

func TestFileBackend_PutGet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	backend := NewFileBackend(dir)

	require.NoError(t, backend.Put("todos_v1", []byte(`[{"id":"a"}]`)))

	data, ok, err := backend.Get("todos_v1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"a"}]`, string(data))

	// Should create parent directories
	_, err = os.Stat(filepath.Join(dir, "todos_v1.json"))
	assert.NoError(t, err)
}

func TestFileBackend_PutOverwrites(t *testing.T) {
	backend := NewFileBackend(t.TempDir())

	require.NoError(t, backend.Put("darkMode", []byte("true")))
	require.NoError(t, backend.Put("darkMode", []byte("false")))

	data, ok, err := backend.Get("darkMode")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "false", string(data))
}

func TestFileBackend_PutLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	backend := NewFileBackend(dir)

	require.NoError(t, backend.Put("categories_v1", []byte("[]")))
	require.NoError(t, backend.Put("categories_v1", []byte("[]")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "categories_v1.json", entries[0].Name())
}

func TestSanitizeKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"todos_v1", "todos_v1"},
		{"darkMode", "darkMode"},
		{"../../etc/passwd", "etc-passwd"},
		{"a b/c", "a-b-c"},
		{"   ", "slot"},
		{"", "slot"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeKey(tt.key))
		})
	}
}

func TestSQLiteBackend_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", SQLiteFile)

	backend, err := OpenSQLite(path)
	require.NoError(t, err)

	_, ok, err := backend.Get("todos_v1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, backend.Put("todos_v1", []byte(`[]`)))
	require.NoError(t, backend.Put("todos_v1", []byte(`[{"id":"x"}]`)))
	require.NoError(t, backend.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	data, ok, err := reopened.Get("todos_v1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"x"}]`, string(data))
}

func TestOpenBackend(t *testing.T) {
	dir := t.TempDir()

	for _, kind := range ValidKinds() {
		t.Run(string(kind), func(t *testing.T) {
			backend, err := OpenBackend(kind, dir)
			require.NoError(t, err)
			t.Cleanup(func() { _ = backend.Close() })

			require.NoError(t, backend.Put("k", []byte(`1`)))
			data, ok, err := backend.Get("k")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "1", string(data))
		})
	}

	_, err := OpenBackend(Kind("redis"), dir)
	assert.Error(t, err)
}

func TestMemoryBackend_CopiesData(t *testing.T) {
	backend := NewMemoryBackend()
	data := []byte("true")
	require.NoError(t, backend.Put("darkMode", data))
	data[0] = 'x'

	got, ok, err := backend.Get("darkMode")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "true", string(got))
}
