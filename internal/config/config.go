// Package config loads omni's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/ryan-rushton/omni/internal/kvstore"
)

// Config represents the top-level application configuration.
type Config struct {
	History HistoryConfig `toml:"history"`
	Log     LogConfig     `toml:"log"`
	UI      UIConfig      `toml:"ui"`
}

// HistoryConfig selects where recent searches are persisted.
type HistoryConfig struct {
	Backend string `toml:"backend"`
	Path    string `toml:"path"`
}

// LogConfig holds settings for the log file. The terminal belongs to the TUI,
// so logs never go to stderr while it runs.
type LogConfig struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

// UIConfig holds settings for the interactive browser.
type UIConfig struct {
	StartLocation string `toml:"start_location"`
}

// Dir returns omni's configuration directory.
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "omni")
}

// DefaultPath is the config file read when no path is given.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.toml")
}

// DefaultConfig returns a Config populated with sensible default values.
func DefaultConfig() *Config {
	dir := Dir()
	return &Config{
		History: HistoryConfig{
			Backend: kvstore.BackendSQLite,
			Path:    filepath.Join(dir, "omni.db"),
		},
		Log: LogConfig{
			Level: "info",
			Path:  filepath.Join(dir, "omni.log"),
		},
	}
}

// Load reads the TOML file at path over the defaults. A missing file is not
// an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.History.Backend {
	case kvstore.BackendSQLite, kvstore.BackendMemory:
	default:
		return fmt.Errorf("history.backend must be %q or %q, got %q",
			kvstore.BackendSQLite, kvstore.BackendMemory, c.History.Backend)
	}
	if c.History.Backend == kvstore.BackendSQLite && c.History.Path == "" {
		return errors.New("history.path is required for the sqlite backend")
	}
	return nil
}
