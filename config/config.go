// Package config loads persistent client settings from
// <stateDir>/config.toml.
package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const filename = "config.toml"

// Config holds the persistent client settings.
type Config struct {
	BackendURL  string `toml:"backend_url"`
	APIKey      string `toml:"api_key"`
	Theme       string `toml:"theme"`
	HistoryPath string `toml:"history_path"`
}

// DefaultStateDir returns ~/.being, the directory holding config and
// conversation history.
func DefaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".being"
	}
	return filepath.Join(home, ".being")
}

// Exists reports whether a config file is present in stateDir.
func Exists(stateDir string) bool {
	_, err := os.Stat(filepath.Join(stateDir, filename))
	return err == nil
}

// Load reads <stateDir>/config.toml. An absent or malformed file yields
// the defaults, never an error.
func Load(stateDir string) Config {
	cfg := defaults(stateDir)
	data, err := os.ReadFile(filepath.Join(stateDir, filename))
	if err != nil {
		return cfg
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return defaults(stateDir)
	}
	if cfg.HistoryPath == "" {
		cfg.HistoryPath = filepath.Join(stateDir, "history.db")
	}
	return cfg
}

// Save writes cfg to <stateDir>/config.toml, creating the directory if
// needed.
func Save(stateDir string, cfg Config) error {
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(stateDir, filename), data, 0o644)
}

func defaults(stateDir string) Config {
	return Config{
		BackendURL:  "http://localhost:8000",
		APIKey:      "localtest",
		Theme:       "dark",
		HistoryPath: filepath.Join(stateDir, "history.db"),
	}
}
