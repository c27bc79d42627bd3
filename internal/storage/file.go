package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStorage keeps every key in its own JSON file inside dir.
type FileStorage struct {
	dir string
}

// NewFileStorage creates the data directory if needed.
func NewFileStorage(dir string) (*FileStorage, error) {
	if dir == "" {
		return nil, fmt.Errorf("file storage: data directory is required")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create directory %s: %w", dir, err)
	}
	return &FileStorage{dir: dir}, nil
}

// Path returns the file backing key.
func (s *FileStorage) Path(key string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s.json", key))
}

// Get reads the value stored under key.
func (s *FileStorage) Get(key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", s.Path(key), err)
	}
	return data, nil
}

// Set replaces the value stored under key. The write goes to a temp file
// that is renamed over the target, so readers never see a partial value.
func (s *FileStorage) Set(key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	return WriteFileAtomic(s.Path(key), value)
}

// Close is a no-op.
func (s *FileStorage) Close() error {
	return nil
}

// WriteFileAtomic writes data to path via a temp file in the same directory.
func WriteFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write file %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close file %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod file %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename file %s: %w", path, err)
	}
	return nil
}
