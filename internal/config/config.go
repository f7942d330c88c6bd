// Package config provides configuration loading and validation for the
// CLI. Values come from an optional JSON file, overridden by environment
// variables; .env loading happens in main.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds everything the advisor engine needs to run. All fields are
// optional at load time; the generate path fails with a configuration
// error when the API key is missing, not here.
type Config struct {
	// Generation service
	APIKey string `json:"api_key,omitempty"` // Gemini API key
	Model  string `json:"model,omitempty"`   // Gemini model override

	// Record sources
	DatabaseURL string `json:"database_url,omitempty"` // Postgres school database; empty = demo in-memory records

	// Local persistence
	StatePath string `json:"state_path,omitempty"` // SQLite file for layouts/overrides/goals/toggles
	RedisAddr string `json:"redis_addr,omitempty"` // optional Redis KV + notification channel

	// Behavior
	NotifyChannel string `json:"notify_channel,omitempty"` // Redis pub/sub channel for notifications
	Verbose       bool   `json:"verbose,omitempty"`        // print prompt and raw report details
}

// DefaultStatePath is used when no state path is configured.
const DefaultStatePath = "growth-advisor.db"

// Load reads the optional JSON config file at path (empty = skip) and
// applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if cfg.StatePath == "" {
		cfg.StatePath = DefaultStatePath
	}
	if cfg.NotifyChannel == "" {
		cfg.NotifyChannel = "growth-advisor:notifications"
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("ADVISOR_STATE_PATH"); v != "" {
		cfg.StatePath = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
}
