package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// configFile is the name of the user configuration file, read from
	// the working directory.
	configFile = ".todoconfig.toml"

	// Default configuration values
	DefaultFileName    = "todos.txt"
	DefaultStorageType = "txt"
	DefaultLogFile     = "todo.log"
)

// Config represents user configuration from .todoconfig.toml.
// This file is user-managed and never written by the tool.
type Config struct {
	// FileName is the default todo file path.
	FileName string `toml:"file_name"`

	// StorageType selects the on-disk encoding: json, csv, or txt.
	StorageType string `toml:"storage_type"`

	// LogFile is the append-only operation log path.
	LogFile string `toml:"log_file"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		FileName:    DefaultFileName,
		StorageType: DefaultStorageType,
		LogFile:     DefaultLogFile,
	}
}

// LoadConfig loads .todoconfig.toml from dir if it exists, otherwise
// returns defaults. Partial config files are merged with defaults.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, configFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file - return defaults
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", configFile, err)
	}

	// Start with defaults and overlay whatever the file sets
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configFile, err)
	}

	return cfg, nil
}

// ConfigPath returns the path of the config file within dir.
func ConfigPath(dir string) string {
	return filepath.Join(dir, configFile)
}
