// Package config loads and stores the CLI's configuration: the API token
// and optional endpoint override, kept in a TOML file under the platform
// config directory.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/natefinch/atomic"
)

// FilePerms restricts the config file to owner-only read/write; it holds
// the API token.
const FilePerms = 0o600

// DirPerms is used when creating the config directory.
const DirPerms = 0o700

// Config is the on-disk configuration.
type Config struct {
	// Token is the Todoist API token.
	Token string `toml:"token"`

	// Endpoint overrides the production sync endpoint. Empty means default.
	Endpoint string `toml:"endpoint,omitempty"`
}

// Load reads the config file at path. A missing file is not an error: it
// returns a zero Config, and the caller prompts for a token.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: decoding %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the config file atomically with restrictive permissions,
// creating the parent directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerms); err != nil {
		return fmt.Errorf("config: creating directory: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("config: encoding: %w", err)
	}

	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}

	if err := os.Chmod(path, FilePerms); err != nil {
		return fmt.Errorf("config: setting permissions on %s: %w", path, err)
	}

	return nil
}
