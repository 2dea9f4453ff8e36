// Package config provides configuration loading and validation for the service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the service configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via environment.
type Config struct {
	Port           int    `json:"port,omitempty"`             // HTTP listen port
	BaseURL        string `json:"base_url,omitempty"`         // Public prefix for retrieval URLs
	StorageRoot    string `json:"storage_root,omitempty"`     // Directory uploads are stored under
	DatabaseURL    string `json:"database_url,omitempty"`     // PostgreSQL connection URL
	MaxUploadBytes int64  `json:"max_upload_bytes,omitempty"` // Per-request upload limit
	Workers        int    `json:"workers,omitempty"`          // Concurrent files per batch
}

// Defaults returns the built-in configuration values.
func Defaults() Config {
	return Config{
		Port:           8000,
		BaseURL:        "http://localhost:8000",
		StorageRoot:    "static",
		MaxUploadBytes: 16 << 20,
		Workers:        4,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.MaxUploadBytes < 0 {
		return fmt.Errorf("config error: 'max_upload_bytes' must be non-negative")
	}
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("config error: 'database_url' is required")
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.StorageRoot == "" {
		result.StorageRoot = defaults.StorageRoot
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = defaults.MaxUploadBytes
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}

	return result
}
