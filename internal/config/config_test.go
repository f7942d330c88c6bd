package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ADVISOR_STATE_PATH", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultStatePath, cfg.StatePath)
	assert.Equal(t, "growth-advisor:notifications", cfg.NotifyChannel)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
	  "model": "gemini-2.5-pro",
	  "state_path": "/tmp/advisor-test.db",
	  "redis_addr": "localhost:6379",
	  "verbose": true
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("ADVISOR_STATE_PATH", "")
	t.Setenv("REDIS_ADDR", "")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, "/tmp/advisor-test.db", cfg.StatePath)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.True(t, cfg.Verbose)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"model": "from-file", "api_key": "file-key"}`), 0o600))

	t.Setenv("GEMINI_MODEL", "from-env")
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Model)
	assert.Equal(t, "env-key", cfg.APIKey)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
