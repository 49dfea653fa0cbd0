package gate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/types"
)

// classification builds a Classification fixture from plain skill lists.
func classification(mandatory, preferred []types.SkillID) types.Classification {
	cls := types.Classification{
		Classes:   make(map[types.SkillID]types.RequirementClass),
		Mandatory: mandatory,
		Preferred: preferred,
	}
	for _, id := range mandatory {
		cls.Classes[id] = types.ClassMandatory
	}
	for _, id := range preferred {
		cls.Classes[id] = types.ClassPreferred
	}
	cls.MandatoryCount = len(mandatory)
	cls.PreferredCount = len(preferred)
	return cls
}

func newTestScorer(t *testing.T) *Scorer {
	t.Helper()
	scorer, err := NewScorer(DefaultScorerConfig())
	require.NoError(t, err)
	return scorer
}

func TestNewScorer_ConfigValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*ScorerConfig)
		wantError bool
	}{
		{"defaults are valid", func(*ScorerConfig) {}, false},
		{"negative min skill score", func(c *ScorerConfig) { c.MinSkillScore = -0.1 }, true},
		{"min skill score above one", func(c *ScorerConfig) { c.MinSkillScore = 1.1 }, true},
		{"coverage above one", func(c *ScorerConfig) { c.MinMandatoryCoverage = 1.5 }, true},
		{"negative coverage", func(c *ScorerConfig) { c.MinMandatoryCoverage = -0.2 }, true},
		{"cap above 100", func(c *ScorerConfig) { c.HardFailScoreCap = 101 }, true},
		{"go below hold", func(c *ScorerConfig) { c.GoThreshold = 30; c.HoldThreshold = 40 }, true},
		{"weights above one", func(c *ScorerConfig) { c.MandatoryWeight = 0.9; c.PreferredWeight = 0.9 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultScorerConfig()
			tt.mutate(&cfg)

			scorer, err := NewScorer(cfg)
			if tt.wantError {
				require.Error(t, err)
				var cfgErr *ConfigError
				assert.True(t, errors.As(err, &cfgErr), "error should wrap a ConfigError")
				assert.Nil(t, scorer)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, scorer)
			}
		})
	}
}

func TestScoreCandidate_FullMandatoryCoverage(t *testing.T) {
	// Role requires only python; candidate has perfect evidence for it.
	scorer := newTestScorer(t)
	cls := classification([]types.SkillID{"python"}, nil)

	decision := scorer.ScoreCandidate(cls, types.Evidence{"python": 1.0})

	assert.Equal(t, 100.0, decision.MandatoryCoverage)
	assert.Equal(t, 100, decision.Score)
	assert.Equal(t, types.VerdictGo, decision.Verdict)
	assert.False(t, decision.HardFail)
	assert.Equal(t, []types.SkillID{"python"}, decision.MatchedMandatory)
	assert.Empty(t, decision.MissingMandatory)
}

func TestScoreCandidate_NoEvidenceHardFails(t *testing.T) {
	// Role requires only python; candidate supplies no evidence at all.
	scorer := newTestScorer(t)
	cls := classification([]types.SkillID{"python"}, nil)

	decision := scorer.ScoreCandidate(cls, types.Evidence{})

	assert.True(t, decision.HardFail)
	assert.Equal(t, types.VerdictNo, decision.Verdict)
	assert.Equal(t, 0.0, decision.MandatoryCoverage)
	assert.LessOrEqual(t, decision.Score, DefaultHardFailScoreCap)
	assert.Empty(t, decision.MatchedMandatory)
	assert.Equal(t, []types.SkillID{"python"}, decision.MissingMandatory)

	blocking := decision.BlockingReasons()
	require.Len(t, blocking, 1)
	assert.Contains(t, blocking[0], "python", "blocking reason must name the missing skill")
	assert.Contains(t, blocking[0], "80%", "blocking reason must state the required coverage")
}

func TestScoreCandidate_LowCoverageHardFails(t *testing.T) {
	// 6 mandatory skills, only one with real evidence: coverage ~16.7%.
	scorer := newTestScorer(t)
	mandatory := []types.SkillID{"python", "docker", "postgresql", "redis", "kafka", "kubernetes"}
	cls := classification(mandatory, nil)

	decision := scorer.ScoreCandidate(cls, types.Evidence{
		"python": 0.9,
		"docker": 0.4, // below the evidence threshold, no partial credit
	})

	assert.True(t, decision.HardFail)
	assert.Equal(t, types.VerdictNo, decision.Verdict)
	assert.InDelta(t, 16.7, decision.MandatoryCoverage, 0.1)
	assert.Equal(t, DefaultHardFailScoreCap, decision.Score)
	assert.Len(t, decision.MissingMandatory, 5)
}

func TestScoreCandidate_EvidenceBelowThresholdIsBinary(t *testing.T) {
	scorer := newTestScorer(t)
	cls := classification([]types.SkillID{"python", "docker"}, nil)

	// 0.49 is below the 0.5 evidence floor: no partial credit toward coverage.
	decision := scorer.ScoreCandidate(cls, types.Evidence{"python": 1.0, "docker": 0.49})

	assert.Equal(t, 50.0, decision.MandatoryCoverage)
	assert.Equal(t, []types.SkillID{"docker"}, decision.MissingMandatory)
}

func TestScoreCandidate_ZeroMandatorySkills(t *testing.T) {
	// With no mandatory skills defined the gate never applies and coverage is
	// 100% by convention.
	scorer := newTestScorer(t)
	cls := classification(nil, []types.SkillID{"docker"})

	decision := scorer.ScoreCandidate(cls, types.Evidence{})

	assert.False(t, decision.HardFail)
	assert.Equal(t, 100.0, decision.MandatoryCoverage)
	assert.NotEqual(t, types.VerdictNo, decision.Verdict)
}

func TestScoreCandidate_ExactCoverageBoundaryPasses(t *testing.T) {
	// 4 of 5 mandatory skills is exactly the 80% floor: not a hard fail.
	scorer := newTestScorer(t)
	cls := classification([]types.SkillID{"python", "docker", "postgresql", "redis", "kafka"}, nil)

	decision := scorer.ScoreCandidate(cls, types.Evidence{
		"python": 0.9, "docker": 0.8, "postgresql": 0.7, "redis": 0.6,
	})

	assert.False(t, decision.HardFail)
	assert.Equal(t, 80.0, decision.MandatoryCoverage)
}

func TestScoreCandidate_PreferredCoverageContributes(t *testing.T) {
	scorer := newTestScorer(t)
	cls := classification([]types.SkillID{"python"}, []types.SkillID{"docker", "redis"})

	full := scorer.ScoreCandidate(cls, types.Evidence{"python": 1.0, "docker": 0.9, "redis": 0.9})
	half := scorer.ScoreCandidate(cls, types.Evidence{"python": 1.0, "docker": 0.9})
	none := scorer.ScoreCandidate(cls, types.Evidence{"python": 1.0})

	assert.Equal(t, 100, full.Score)
	assert.Equal(t, 85, half.Score, "70 from mandatory plus half the preferred weight")
	assert.Equal(t, 70, none.Score)
	assert.Greater(t, full.Score, half.Score)
	assert.Greater(t, half.Score, none.Score)
}

func TestScoreCandidate_ReasonsNeverEmpty(t *testing.T) {
	scorer := newTestScorer(t)

	tests := []struct {
		name     string
		cls      types.Classification
		evidence types.Evidence
	}{
		{"hard fail", classification([]types.SkillID{"python"}, nil), types.Evidence{}},
		{"full pass", classification([]types.SkillID{"python"}, nil), types.Evidence{"python": 1.0}},
		{"empty classification", classification(nil, nil), types.Evidence{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := scorer.ScoreCandidate(tt.cls, tt.evidence)
			require.NotEmpty(t, decision.Reasons)

			joined := strings.Join(decision.Reasons, "\n")
			assert.Contains(t, joined, "Mandatory coverage", "reasons must always state the coverage")
			assert.Contains(t, joined, "Matched mandatory", "reasons must always list matched skills")
		})
	}
}

func TestScoreCandidate_HardFailCapHoldsForAnyPreferredCoverage(t *testing.T) {
	// Preferred skills can never buy a candidate out of a mandatory hard fail.
	scorer := newTestScorer(t)
	cls := classification(
		[]types.SkillID{"python", "postgresql"},
		[]types.SkillID{"docker", "redis", "kafka"},
	)

	decision := scorer.ScoreCandidate(cls, types.Evidence{
		"docker": 1.0, "redis": 1.0, "kafka": 1.0,
	})

	assert.True(t, decision.HardFail)
	assert.Equal(t, types.VerdictNo, decision.Verdict)
	assert.LessOrEqual(t, decision.Score, DefaultHardFailScoreCap)
	assert.Equal(t, 100.0, decision.PreferredCoverage)
}

func TestScorerConfigValidate_ReportsJSONFieldName(t *testing.T) {
	cfg := DefaultScorerConfig()
	cfg.MinSkillScore = 1.5

	err := cfg.Validate()
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "min_skill_score", cfgErr.Field)
	assert.Contains(t, cfgErr.Message, "lte")
}
