// Package config loads the application configuration from a JSON file,
// then applies MARKS_* environment overrides.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// Config holds application configuration.
type Config struct {
	Storage             string   `json:"storage" env:"STORAGE"`
	DataDir             string   `json:"dataDir" env:"DATA_DIR"`
	LogLevel            string   `json:"logLevel" env:"LOG_LEVEL"`
	LogFile             string   `json:"logFile" env:"LOG_FILE"`
	FetchTitles         bool     `json:"fetchTitles" env:"FETCH_TITLES"`
	FetchTimeoutSeconds int      `json:"fetchTimeoutSeconds" env:"FETCH_TIMEOUT_SECONDS"`
	CheckConcurrency    int      `json:"checkConcurrency" env:"CHECK_CONCURRENCY"`
	CheckExcludeDomains []string `json:"checkExcludeDomains" env:"CHECK_EXCLUDE_DOMAINS" envSeparator:","`
}

// DefaultConfig returns the default configuration. DataDir is left empty
// and resolved by Load.
func DefaultConfig() Config {
	return Config{
		Storage:             "json",
		LogLevel:            "info",
		FetchTitles:         true,
		FetchTimeoutSeconds: 5,
		CheckConcurrency:    10,
		CheckExcludeDomains: []string{"github.com", "gitlab.com"},
	}
}

// FetchTimeout returns the title fetch timeout as a duration.
func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// Load reads config from the JSON file, creating it with defaults if it
// doesn't exist, and then applies environment overrides.
func Load(path string) (*Config, error) {
	config, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	if err := ParseEnv(config); err != nil {
		return nil, err
	}
	if config.DataDir == "" {
		config.DataDir = filepath.Dir(path)
	}
	return config, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := DefaultConfig()
			// Non-fatal: return defaults even if save fails
			_ = Save(path, &config)
			return &config, nil
		}
		return nil, err
	}

	// Start from defaults so fields absent from the file keep them.
	config := DefaultConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	defaults := DefaultConfig()
	if config.Storage == "" {
		config.Storage = defaults.Storage
	}
	if config.FetchTimeoutSeconds <= 0 {
		config.FetchTimeoutSeconds = defaults.FetchTimeoutSeconds
	}
	if config.CheckConcurrency <= 0 {
		config.CheckConcurrency = defaults.CheckConcurrency
	}
	if config.CheckExcludeDomains == nil {
		config.CheckExcludeDomains = defaults.CheckExcludeDomains
	}

	return &config, nil
}

// Save writes config to the JSON file.
// Creates the directory if it doesn't exist.
func Save(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultPath returns the default config path: ~/.config/marks/config.json
// MARKS_CONFIG overrides it.
func DefaultPath() (string, error) {
	if p := os.Getenv("MARKS_CONFIG"); p != "" {
		return p, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "marks", "config.json"), nil
}
