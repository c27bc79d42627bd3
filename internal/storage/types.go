package storage

import "errors"

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

var (
	// ErrNotFound is returned by Get when nothing is stored under the key.
	ErrNotFound = errors.New("key not found")
	// ErrUnknownBackend is returned by Open for unsupported backend names.
	ErrUnknownBackend = errors.New("unknown storage backend")
	// ErrInvalidKey is returned for empty keys or keys containing path separators.
	ErrInvalidKey = errors.New("invalid storage key")
)

// Storage is a small synchronous key-value store. Values are opaque bytes.
type Storage interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Close() error
}
