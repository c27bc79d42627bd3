package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diagnostic-canvas/internal/storage"
)

func TestLoadAppConfig_Defaults(t *testing.T) {
	for _, k := range []string{"CANVAS_STORAGE", "CANVAS_DATA_DIR", "CANVAS_STORAGE_KEY", "CANVAS_EXPORT_DIR", "CANVAS_LOG_FILE", "CANVAS_LOG_LEVEL", "CANVAS_DARK_MODE"} {
		t.Setenv(k, "")
	}
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")

	cfg := LoadAppConfig()
	assert.Equal(t, storage.BackendFile, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join("/tmp/xdg", "canvas"), cfg.Storage.DataDir)
	assert.Equal(t, DefaultStorageKey, cfg.Storage.Key)
	assert.Equal(t, ".", cfg.Export.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.UI.DarkMode)
	assert.NoError(t, cfg.Validate())
}

func TestLoadAppConfig_Env(t *testing.T) {
	t.Setenv("CANVAS_STORAGE", "sqlite")
	t.Setenv("CANVAS_DATA_DIR", "/data")
	t.Setenv("CANVAS_STORAGE_KEY", "k")
	t.Setenv("CANVAS_DARK_MODE", "true")
	t.Setenv("CANVAS_LOG_LEVEL", "debug")

	cfg := LoadAppConfig()
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "/data", cfg.Storage.DataDir)
	assert.Equal(t, "k", cfg.Storage.Key)
	assert.True(t, cfg.UI.DarkMode)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	base := func() *AppConfig {
		return &AppConfig{
			Storage: StorageConfig{Backend: "file", DataDir: "d", Key: "k"},
			Log:     LogConfig{Level: "info"},
		}
	}

	cfg := base()
	cfg.Storage.Backend = "redis"
	assert.ErrorIs(t, cfg.Validate(), storage.ErrUnknownBackend)

	cfg = base()
	cfg.Storage.DataDir = ""
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Storage.Backend = "memory"
	cfg.Storage.DataDir = ""
	assert.NoError(t, cfg.Validate())

	cfg = base()
	cfg.Storage.Key = " "
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Log.Level = "loud"
	assert.Error(t, cfg.Validate())
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))

	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("CANVAS_TEST_DOTENV=hola\n"), 0644))
	t.Setenv("CANVAS_TEST_DOTENV", "")
	os.Unsetenv("CANVAS_TEST_DOTENV")

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "hola", os.Getenv("CANVAS_TEST_DOTENV"))
}
