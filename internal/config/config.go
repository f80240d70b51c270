// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Inputs
	Job    string `json:"job,omitempty"`     // Path to job description text file
	JobURL string `json:"job_url,omitempty"` // URL to fetch the job posting from

	// Output
	OutDir string `json:"out_dir,omitempty"` // Directory for parsed JSON output
	Kind   string `json:"kind,omitempty"`    // Document kind: summary or cover_letter

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Port        int    `json:"port,omitempty"`         // HTTP server port
	UseBrowser  bool   `json:"use_browser,omitempty"`  // Use headless browser for SPA sites
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
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

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required fields
// are enforced by CLI flag validation after merging, not here.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if c.Kind != "" && c.Kind != "summary" && c.Kind != "cover_letter" {
		return fmt.Errorf("config error: 'kind' must be summary or cover_letter")
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid port number")
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.Kind == "" {
		result.Kind = defaults.Kind
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if !result.UseBrowser {
		result.UseBrowser = defaults.UseBrowser
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
