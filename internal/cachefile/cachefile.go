// Package cachefile persists the local mirror cache as a JSON document.
// The cache is one whole-document value, loaded at startup and saved after
// every sync or commit, so a flat file with atomic writes is sufficient —
// there is no query surface.
package cachefile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/tonimelisma/todoist-go"
)

// FilePerms restricts the cache file to owner-only read/write; it mirrors
// account data and may hold the API token.
const FilePerms = 0o600

// DirPerms is used when creating the cache directory.
const DirPerms = 0o700

// cacheFileName is the file name under the cache directory.
const cacheFileName = "cache.json"

// Path returns the full path of the cache file under dir.
func Path(dir string) string {
	return filepath.Join(dir, cacheFileName)
}

// Load reads a persisted cache from disk. A missing file is the first-run
// case and returns a fresh empty cache, not an error.
func Load(path string) (*todoist.Cache, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return todoist.NewCache(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("cachefile: reading %s: %w", path, err)
	}

	cache := todoist.NewCache()
	if err := json.Unmarshal(data, cache); err != nil {
		return nil, fmt.Errorf("cachefile: decoding %s: %w", path, err)
	}

	return cache, nil
}

// Save writes the cache atomically (write-to-temp + rename) with
// restrictive permissions, creating the parent directory if needed.
func Save(path string, cache *todoist.Cache) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerms); err != nil {
		return fmt.Errorf("cachefile: creating directory: %w", err)
	}

	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("cachefile: encoding: %w", err)
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("cachefile: writing %s: %w", path, err)
	}

	if err := os.Chmod(path, FilePerms); err != nil {
		return fmt.Errorf("cachefile: setting permissions on %s: %w", path, err)
	}

	return nil
}
