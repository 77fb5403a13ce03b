package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RIZZ_DATA_DIR", dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreBadger, cfg.Store)
	assert.Equal(t, "rizz_state_v1", cfg.StorageKey)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "localhost:8080", cfg.HTTPAddr)
	assert.Equal(t, filepath.Join(dir, "rizz.log"), cfg.LogFile)
	assert.Empty(t, cfg.Author)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("RIZZ_DATA_DIR", t.TempDir())
	t.Setenv("RIZZ_STORE", "memory")
	t.Setenv("RIZZ_AUTHOR", "Ana")
	t.Setenv("RIZZ_LOG_LEVEL", "debug")
	t.Setenv("RIZZ_LOG_FILE", "/tmp/rizz-test.log")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, "Ana", cfg.Author)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/rizz-test.log", cfg.LogFile)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("RIZZ_DATA_DIR", t.TempDir())

	t.Run("unknown store", func(t *testing.T) {
		t.Setenv("RIZZ_STORE", "sqlite")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("unknown log level", func(t *testing.T) {
		t.Setenv("RIZZ_LOG_LEVEL", "loud")
		_, err := Load()
		assert.Error(t, err)
	})
}
