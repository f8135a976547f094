// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"fieldops-cost/core/types"
	"fieldops-cost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Currency is the currency every estimate is reported in
	Currency types.Currency `json:"currency"`

	// RateCards contains rate-card loading configuration
	RateCards RateCardConfig `json:"rate_cards"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// RateCardConfig contains rate-card loading settings
type RateCardConfig struct {
	// Paths are directories or files holding default rate-card HCL
	Paths []string `json:"paths,omitempty"`

	// OverridePath holds organization overrides layered over defaults
	OverridePath string `json:"override_path,omitempty"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// ShowIncomplete prints incompleteness warnings with estimates
	ShowIncomplete bool `json:"show_incomplete"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	ratesDir := filepath.Join(homeDir, ".fieldops-cost", "rates")

	return &Config{
		Version:  "1.0",
		Currency: types.CurrencyUSD,
		RateCards: RateCardConfig{
			Paths: []string{ratesDir},
		},
		Output: OutputConfig{
			DefaultFormat:  "cli",
			ShowIncomplete: true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
