// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

const appName = "folio"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}

// DefaultCachePath returns the default path for the SQLite response cache.
func DefaultCachePath() string {
	return filepath.Join(XDGDataHome(), appName, "cache.db")
}

// DefaultCorpusPath returns the path of an optional user corpus file.
func DefaultCorpusPath() string {
	return filepath.Join(XDGConfigHome(), appName, "corpus.txt")
}
