package storage

import (
	"fmt"
	"strings"
)

// Open creates the storage backend named by backend. dir is the data
// directory for the disk backends and is ignored by the memory backend.
func Open(backend, dir string) (Storage, error) {
	switch backend {
	case BackendFile, "":
		return NewFileStorage(dir)
	case BackendSQLite:
		return NewSQLiteStorage(dir)
	case BackendMemory:
		return NewMemoryStorage(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
