// Package config provides configuration helpers and TOML parsing.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment variables that override the config file.
const (
	EnvBaseURL = "FOLIO_BASE_URL"
	EnvOffline = "FOLIO_OFFLINE"
	EnvPort    = "PORT"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	API     APIConfig     `toml:"api"`
	Display DisplayConfig `toml:"display"`
	Typing  TypingConfig  `toml:"typing"`
	Server  ServerConfig  `toml:"server"`
}

// APIConfig maps data source settings.
type APIConfig struct {
	BaseURL *string `toml:"base-url"`
	Timeout *string `toml:"timeout"`
	Offline *bool   `toml:"offline"`
}

// DisplayConfig maps output settings.
type DisplayConfig struct {
	Color *bool `toml:"color"`
}

// TypingConfig maps typing test settings.
type TypingConfig struct {
	Duration   *int    `toml:"duration"`
	LineWidth  *int    `toml:"line-width"`
	CorpusFile *string `toml:"corpus-file"`
}

// ServerConfig maps settings for the serve command.
type ServerConfig struct {
	Addr     *string `toml:"addr"`
	DataFile *string `toml:"data-file"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// LoadDotEnv loads variables from a .env file without overriding variables
// already set in the environment. Missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays environment variables on top of file values.
func ApplyEnv(cfg *FileConfig) error {
	if v := strings.TrimSpace(os.Getenv(EnvBaseURL)); v != "" {
		cfg.API.BaseURL = &v
	}
	if v := strings.TrimSpace(os.Getenv(EnvOffline)); v != "" {
		offline, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvOffline, v, err)
		}
		cfg.API.Offline = &offline
	}
	if v := strings.TrimSpace(os.Getenv(EnvPort)); v != "" {
		addr := ":" + strings.TrimPrefix(v, ":")
		cfg.Server.Addr = &addr
	}
	return nil
}
