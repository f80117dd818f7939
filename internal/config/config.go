// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Defaults applied when neither the config file nor the CLI provides a
// value.
const (
	DefaultMaxResults  = 10
	DefaultConcurrency = 5
	DefaultRateLimit   = 4500
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Search terms
	Name    string `json:"name,omitempty"`    // Candidate name to search for
	Company string `json:"company,omitempty"` // Company filter term
	Role    string `json:"role,omitempty"`    // Role filter term

	// Limits
	MaxResults  int `json:"max_results,omitempty" validate:"omitempty,min=1,max=100"` // Search hits to process per run
	Concurrency int `json:"concurrency,omitempty" validate:"omitempty,min=1,max=64"`  // Parallel profile fetches
	RateLimit   int `json:"rate_limit,omitempty" validate:"omitempty,min=1,max=5000"` // Requests allowed per hourly window

	// Behavior
	Token   string `json:"token,omitempty"`  // GitHub API token; GITHUB_TOKEN env wins when both are set
	Output  string `json:"output,omitempty"` // Path for the exported JSON results
	Verbose bool   `json:"verbose,omitempty"`
}

var validate = validator.New()

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
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Name == "" {
		result.Name = defaults.Name
	}
	if result.Company == "" {
		result.Company = defaults.Company
	}
	if result.Role == "" {
		result.Role = defaults.Role
	}
	if result.Token == "" {
		result.Token = defaults.Token
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}

	// Int fields: use default if zero, falling back to the package defaults
	if result.MaxResults == 0 {
		result.MaxResults = defaults.MaxResults
	}
	if result.MaxResults == 0 {
		result.MaxResults = DefaultMaxResults
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.Concurrency == 0 {
		result.Concurrency = DefaultConcurrency
	}
	if result.RateLimit == 0 {
		result.RateLimit = defaults.RateLimit
	}
	if result.RateLimit == 0 {
		result.RateLimit = DefaultRateLimit
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ValidTokenShape reports whether token looks like a GitHub personal
// access token: "ghp_" prefix, 44 characters total, and no whitespace or
// comment characters picked up from a malformed env file.
func ValidTokenShape(token string) bool {
	if !strings.HasPrefix(token, "ghp_") {
		return false
	}
	if len(token) != 44 {
		return false
	}
	if strings.ContainsAny(token, " \t#") {
		return false
	}
	return true
}

// ResolveToken picks the API token for a run: the GITHUB_TOKEN environment
// variable wins over the config value. A token with an invalid shape is
// treated as absent and logged, never a fatal error, so unauthenticated
// runs still work at the lower rate limit.
func ResolveToken(cfg *Config, logger *slog.Logger) string {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		token = cfg.Token
	}
	if token == "" {
		logger.Warn("no GitHub token configured, running unauthenticated")
		return ""
	}
	if !ValidTokenShape(token) {
		logger.Warn("GitHub token has unexpected shape, ignoring it")
		return ""
	}
	return token
}
