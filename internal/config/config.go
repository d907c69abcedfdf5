// Package config provides configuration loading and validation for the
// server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the server configuration. It can be loaded from a
// JSON file; environment variables override file values.
type Config struct {
	// Port is the HTTP listen port.
	Port int `json:"port,omitempty"`
	// Model overrides the default LLM model name.
	Model string `json:"model,omitempty"`
	// APIKey is the Gemini API key. Usually supplied via GEMINI_API_KEY.
	APIKey string `json:"api_key,omitempty"`
	// DatabaseURL is the PostgreSQL connection URL. Optional: without it
	// the server runs without persistence.
	DatabaseURL string `json:"database_url,omitempty"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Port: 8080,
	}
}

// Load reads configuration from a JSON file. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

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
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides config fields from environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT value %q: %w", v, err)
		}
		c.Port = port
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.Model = v
	}
	return nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.APIKey == "" {
		return fmt.Errorf("config error: API key is required (set GEMINI_API_KEY)")
	}
	return nil
}
