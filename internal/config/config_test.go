package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JunhyunKang/mock-sol/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Equal(t, config.DefaultUserID, cfg.API.UserID)
	assert.Equal(t, "", cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solbank.yaml")
	content := `api:
  base_url: http://bank.internal:9000
  user_id: kim
log:
  file: /tmp/solbank.log
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://bank.internal:9000", cfg.API.BaseURL)
	assert.Equal(t, "kim", cfg.API.UserID)
	assert.Equal(t, "/tmp/solbank.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solbank.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  user_id: kim\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "kim", cfg.API.UserID)
	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SOLBANK_API_BASE_URL", "http://override:8080")
	t.Setenv("SOLBANK_LOG_LEVEL", "warn")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://override:8080", cfg.API.BaseURL)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
}
