// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/evaluation"
	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/gate"
	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/requirements"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Role       string `json:"role,omitempty"`       // Path to role request JSON file
	Candidates string `json:"candidates,omitempty"` // Path to candidate profiles JSON file
	Output     string `json:"output,omitempty"`     // Path to write the run report to

	// Classification thresholds
	MandatoryThreshold float64 `json:"mandatory_threshold,omitempty"` // Market frequency above which a skill defaults to mandatory
	PreferredThreshold float64 `json:"preferred_threshold,omitempty"` // Market frequency above which a skill defaults to preferred

	// Gate thresholds
	MinSkillScore        float64 `json:"min_skill_score,omitempty"`        // Minimum evidence score for a skill to count as covered
	MinMandatoryCoverage float64 `json:"min_mandatory_coverage,omitempty"` // Mandatory coverage ratio below which the candidate hard-fails
	HardFailScoreCap     int     `json:"hard_fail_score_cap,omitempty"`    // Score ceiling applied on hard fail
	GoThreshold          int     `json:"go_threshold,omitempty"`           // Minimum score for a "go" verdict
	HoldThreshold        int     `json:"hold_threshold,omitempty"`         // Minimum score for a "hold" verdict

	// Behavior
	Concurrency int    `json:"concurrency,omitempty"`  // Parallel candidate scoring limit
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL (optional persistence)
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed classification and decision summaries
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

// Validate checks that the configuration has valid values. Threshold
// invariants are enforced later by the classifier and scorer constructors;
// this only rejects values no construction could accept.
func (c *Config) Validate() error {
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}
	if c.HardFailScoreCap < 0 || c.HardFailScoreCap > 100 {
		return fmt.Errorf("config error: 'hard_fail_score_cap' must be in [0,100]")
	}

	// Validate file paths exist (if specified)
	if c.Role != "" {
		if _, err := os.Stat(c.Role); os.IsNotExist(err) {
			return fmt.Errorf("config error: role file not found: %s", c.Role)
		}
	}
	if c.Candidates != "" {
		if _, err := os.Stat(c.Candidates); os.IsNotExist(err) {
			return fmt.Errorf("config error: candidates file not found: %s", c.Candidates)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Role == "" {
		result.Role = defaults.Role
	}
	if result.Candidates == "" {
		result.Candidates = defaults.Candidates
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Numeric fields: use default if zero
	if result.MandatoryThreshold == 0 {
		result.MandatoryThreshold = defaults.MandatoryThreshold
	}
	if result.PreferredThreshold == 0 {
		result.PreferredThreshold = defaults.PreferredThreshold
	}
	if result.MinSkillScore == 0 {
		result.MinSkillScore = defaults.MinSkillScore
	}
	if result.MinMandatoryCoverage == 0 {
		result.MinMandatoryCoverage = defaults.MinMandatoryCoverage
	}
	if result.HardFailScoreCap == 0 {
		result.HardFailScoreCap = defaults.HardFailScoreCap
	}
	if result.GoThreshold == 0 {
		result.GoThreshold = defaults.GoThreshold
	}
	if result.HoldThreshold == 0 {
		result.HoldThreshold = defaults.HoldThreshold
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// RequirementsConfig builds the classifier configuration, falling back to
// package defaults for unset thresholds.
func (c *Config) RequirementsConfig() requirements.Config {
	cfg := requirements.DefaultConfig()
	if c.MandatoryThreshold > 0 {
		cfg.MandatoryThreshold = c.MandatoryThreshold
	}
	if c.PreferredThreshold > 0 {
		cfg.PreferredThreshold = c.PreferredThreshold
	}
	return cfg
}

// ScorerConfig builds the gate configuration, falling back to package
// defaults for unset values.
func (c *Config) ScorerConfig() gate.ScorerConfig {
	cfg := gate.DefaultScorerConfig()
	if c.MinSkillScore > 0 {
		cfg.MinSkillScore = c.MinSkillScore
	}
	if c.MinMandatoryCoverage > 0 {
		cfg.MinMandatoryCoverage = c.MinMandatoryCoverage
	}
	if c.HardFailScoreCap > 0 {
		cfg.HardFailScoreCap = c.HardFailScoreCap
	}
	if c.GoThreshold > 0 {
		cfg.GoThreshold = c.GoThreshold
	}
	if c.HoldThreshold > 0 {
		cfg.HoldThreshold = c.HoldThreshold
	}
	return cfg
}

// EvaluationOptions assembles the run options from the merged configuration.
func (c *Config) EvaluationOptions() evaluation.Options {
	return evaluation.Options{
		Requirements: c.RequirementsConfig(),
		Scorer:       c.ScorerConfig(),
		Concurrency:  c.Concurrency,
	}
}
