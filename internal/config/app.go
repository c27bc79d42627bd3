package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"diagnostic-canvas/internal/storage"
)

// DefaultStorageKey is the storage key used when CANVAS_STORAGE_KEY is unset.
const DefaultStorageKey = "canvas-answers-v1"

type AppConfig struct {
	Storage StorageConfig
	Export  ExportConfig
	Log     LogConfig
	UI      UIConfig
}

type StorageConfig struct {
	Backend string
	DataDir string
	Key     string
}

type ExportConfig struct {
	Dir string
}

type LogConfig struct {
	File  string
	Level string
}

type UIConfig struct {
	DarkMode bool
}

// LoadDotEnv loads variables from path into the environment. A missing
// file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func LoadAppConfig() *AppConfig {
	return &AppConfig{
		Storage: StorageConfig{
			Backend: getEnv("CANVAS_STORAGE", storage.BackendFile),
			DataDir: getEnv("CANVAS_DATA_DIR", defaultDataDir()),
			Key:     getEnv("CANVAS_STORAGE_KEY", DefaultStorageKey),
		},
		Export: ExportConfig{
			Dir: getEnv("CANVAS_EXPORT_DIR", "."),
		},
		Log: LogConfig{
			File:  getEnv("CANVAS_LOG_FILE", ""),
			Level: getEnv("CANVAS_LOG_LEVEL", "info"),
		},
		UI: UIConfig{
			DarkMode: getEnvAsBool("CANVAS_DARK_MODE", false),
		},
	}
}

// Validate checks that the configuration can be used to open storage.
func (c *AppConfig) Validate() error {
	switch c.Storage.Backend {
	case storage.BackendFile, storage.BackendSQLite:
		if strings.TrimSpace(c.Storage.DataDir) == "" {
			return fmt.Errorf("data directory is required for %s storage", c.Storage.Backend)
		}
	case storage.BackendMemory:
	default:
		return fmt.Errorf("%w: %q", storage.ErrUnknownBackend, c.Storage.Backend)
	}

	if strings.TrimSpace(c.Storage.Key) == "" {
		return fmt.Errorf("storage key must not be empty")
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", c.Log.Level)
	}

	return nil
}

func defaultDataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "canvas")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "canvas")
	}
	return ".canvas"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
