package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"business": "business.json",
		"platforms": ["Instagram", "LinkedIn"],
		"branded_hashtags": ["#acme"],
		"seed": 42,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "business.json", cfg.Business)
	assert.Equal(t, []string{"Instagram", "LinkedIn"}, cfg.Platforms)
	assert.Equal(t, []string{"#acme"}, cfg.BrandedHashtags)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_UnknownPlatform(t *testing.T) {
	cfg := &Config{
		Platforms: []string{"Instagram", "TikTok"},
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown platform: TikTok")
}

func TestValidate_MissingProfileFile(t *testing.T) {
	cfg := &Config{
		Business: "/nonexistent/business.json",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "business profile file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		Platforms: []string{"Facebook", "Instagram", "LinkedIn"},
		Seed:      7,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Business:   "default-business.json",
		Brand:      "default-brand.json",
		Platforms:  []string{"Instagram"},
		Priorities: "Equal focus",
		Seed:       42,
	}

	partial := Config{
		Business: "custom-business.json",
		Out:      "plan.json",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "custom-business.json", merged.Business)
	assert.Equal(t, "plan.json", merged.Out)

	// Default values should fill in empty fields
	assert.Equal(t, "default-brand.json", merged.Brand)
	assert.Equal(t, []string{"Instagram"}, merged.Platforms)
	assert.Equal(t, "Equal focus", merged.Priorities)
	assert.Equal(t, int64(42), merged.Seed)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Brand: "brand.json",
		Seed:  7,
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "brand.json", merged.Brand)
	assert.Equal(t, int64(7), merged.Seed)
}
