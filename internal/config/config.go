// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/content-planner/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Business string `json:"business,omitempty"` // Path to business profile JSON
	Brand    string `json:"brand,omitempty"`    // Path to brand profile JSON
	Out      string `json:"out,omitempty"`      // Path to write the plan JSON to

	// Plan inputs
	Platforms       []string `json:"platforms,omitempty"`        // Target platforms
	Priorities      string   `json:"priorities,omitempty"`       // Platform priority notes
	BrandedHashtags []string `json:"branded_hashtags,omitempty"` // Brand-owned hashtags

	// Behavior
	Seed        int64  `json:"seed,omitempty"`         // Template picker seed for reproducible runs
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for the run archive
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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	for _, platform := range c.Platforms {
		if !types.IsValidPlatform(platform) {
			return fmt.Errorf("config error: unknown platform: %s", platform)
		}
	}

	// Validate file paths exist (if specified)
	if c.Business != "" {
		if _, err := os.Stat(c.Business); os.IsNotExist(err) {
			return fmt.Errorf("config error: business profile file not found: %s", c.Business)
		}
	}
	if c.Brand != "" {
		if _, err := os.Stat(c.Brand); os.IsNotExist(err) {
			return fmt.Errorf("config error: brand profile file not found: %s", c.Brand)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Business == "" {
		result.Business = defaults.Business
	}
	if result.Brand == "" {
		result.Brand = defaults.Brand
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}
	if result.Priorities == "" {
		result.Priorities = defaults.Priorities
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Slice fields: use default if unset
	if len(result.Platforms) == 0 {
		result.Platforms = defaults.Platforms
	}
	if len(result.BrandedHashtags) == 0 {
		result.BrandedHashtags = defaults.BrandedHashtags
	}

	// Int fields: use default if zero
	if result.Seed == 0 {
		result.Seed = defaults.Seed
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
