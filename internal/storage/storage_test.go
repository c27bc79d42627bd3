package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]Storage {
	t.Helper()

	file, err := Open(BackendFile, filepath.Join(t.TempDir(), "file"))
	require.NoError(t, err)
	sqlite, err := Open(BackendSQLite, filepath.Join(t.TempDir(), "sqlite"))
	require.NoError(t, err)
	mem, err := Open(BackendMemory, "")
	require.NoError(t, err)

	all := map[string]Storage{"file": file, "sqlite": sqlite, "memory": mem}
	t.Cleanup(func() {
		for _, s := range all {
			s.Close()
		}
	})
	return all
}

func TestStorage_GetSet(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get("missing")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, s.Set("k", []byte(`{"a":1}`)))
			got, err := s.Get("k")
			require.NoError(t, err)
			assert.Equal(t, `{"a":1}`, string(got))

			require.NoError(t, s.Set("k", []byte(`{}`)))
			got, err = s.Get("k")
			require.NoError(t, err)
			assert.Equal(t, `{}`, string(got))
		})
	}
}

func TestStorage_InvalidKey(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, key := range []string{"", " ", "a/b", `a\b`, ".."} {
				assert.ErrorIs(t, s.Set(key, []byte("x")), ErrInvalidKey)
				_, err := s.Get(key)
				assert.ErrorIs(t, err, ErrInvalidKey)
			}
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open("redis", t.TempDir())
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestFileStorage_WritesJSONFile(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStorage(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set("canvas", []byte("{}")))
	data, err := os.ReadFile(filepath.Join(dir, "canvas.json"))
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestSQLiteStorage_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	s, err := NewSQLiteStorage(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set("canvas", []byte("v1")))
	require.NoError(t, s.Close())

	s, err = NewSQLiteStorage(dir)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get("canvas")
	require.NoError(t, err)
	assert.Equal(t, "v1", string(got))
}

func TestMemoryStorage_FailWrites(t *testing.T) {
	s := NewMemoryStorage()
	s.FailWrites = errors.New("quota exceeded")
	assert.EqualError(t, s.Set("k", []byte("x")), "quota exceeded")

	_, err := s.Get("k")
	assert.ErrorIs(t, err, ErrNotFound)
}
