package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryan-rushton/omni/internal/kvstore"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, kvstore.BackendSQLite, cfg.History.Backend)
	assert.Equal(t, "omni.db", filepath.Base(cfg.History.Path))
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "omni.log", filepath.Base(cfg.Log.Path))
	assert.Empty(t, cfg.UI.StartLocation)
	assert.Equal(t, "config.toml", filepath.Base(DefaultPath()))
}

func TestLoadFromFile(t *testing.T) {
	tomlContent := `
[history]
backend = "memory"

[log]
level = "debug"
path = "/tmp/omni-test.log"

[ui]
start_location = "developer-tools"
`
	tmpFile := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(tomlContent), 0644))

	cfg, err := Load(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, kvstore.BackendMemory, cfg.History.Backend)
	assert.Equal(t, "omni.db", filepath.Base(cfg.History.Path), "unset keys keep defaults")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/omni-test.log", cfg.Log.Path)
	assert.Equal(t, "developer-tools", cfg.UI.StartLocation)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadMalformedFile(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("[history\nbackend = "), 0644))

	_, err := Load(tmpFile)
	require.Error(t, err)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("[history]\nbackend = \"redis\"\n"), 0644))

	_, err := Load(tmpFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history.backend")
}

func TestLoadRejectsEmptySQLitePath(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("[history]\npath = \"\"\n"), 0644))

	_, err := Load(tmpFile)
	require.Error(t, err)
}
