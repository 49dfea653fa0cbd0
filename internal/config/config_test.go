package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/gate"
	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/requirements"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"mandatory_threshold": 0.8,
		"preferred_threshold": 0.2,
		"min_skill_score": 0.6,
		"concurrency": 8,
		"database_url": "postgres://localhost/hiring",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 0.8, cfg.MandatoryThreshold)
	assert.Equal(t, 0.2, cfg.PreferredThreshold)
	assert.Equal(t, 0.6, cfg.MinSkillScore)
	assert.Equal(t, 8, cfg.Concurrency)
	assert.Equal(t, "postgres://localhost/hiring", cfg.DatabaseURL)
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

func TestValidate_NegativeConcurrency(t *testing.T) {
	cfg := &Config{Concurrency: -1}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "concurrency")
}

func TestValidate_HardFailCapOutOfRange(t *testing.T) {
	cfg := &Config{HardFailScoreCap: 150}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "hard_fail_score_cap")
}

func TestValidate_MissingRoleFile(t *testing.T) {
	cfg := &Config{Role: "/nonexistent/role.json"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "role file not found")
}

func TestValidate_ZeroValueConfig(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{
		Role:        "role.json",
		Concurrency: 2,
	}
	defaults := Config{
		Role:               "other.json",
		Candidates:         "candidates.json",
		MandatoryThreshold: 0.8,
		Concurrency:        16,
		DatabaseURL:        "postgres://localhost/hiring",
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "role.json", merged.Role, "explicit values win over defaults")
	assert.Equal(t, "candidates.json", merged.Candidates, "empty fields take defaults")
	assert.Equal(t, 0.8, merged.MandatoryThreshold)
	assert.Equal(t, 2, merged.Concurrency)
	assert.Equal(t, "postgres://localhost/hiring", merged.DatabaseURL)
}

func TestRequirementsConfig_FallsBackToDefaults(t *testing.T) {
	cfg := &Config{}

	reqCfg := cfg.RequirementsConfig()
	assert.Equal(t, requirements.DefaultMandatoryThreshold, reqCfg.MandatoryThreshold)
	assert.Equal(t, requirements.DefaultPreferredThreshold, reqCfg.PreferredThreshold)

	cfg.MandatoryThreshold = 0.9
	assert.Equal(t, 0.9, cfg.RequirementsConfig().MandatoryThreshold)
}

func TestScorerConfig_FallsBackToDefaults(t *testing.T) {
	cfg := &Config{}

	scorerCfg := cfg.ScorerConfig()
	assert.Equal(t, gate.DefaultScorerConfig(), scorerCfg)

	cfg.GoThreshold = 80
	cfg.MinSkillScore = 0.6
	scorerCfg = cfg.ScorerConfig()
	assert.Equal(t, 80, scorerCfg.GoThreshold)
	assert.Equal(t, 0.6, scorerCfg.MinSkillScore)
}

func TestEvaluationOptions(t *testing.T) {
	cfg := &Config{Concurrency: 6}

	opts := cfg.EvaluationOptions()
	assert.Equal(t, 6, opts.Concurrency)
	assert.Nil(t, opts.Database)
	assert.NoError(t, opts.Requirements.Validate())
	assert.NoError(t, opts.Scorer.Validate())
}
