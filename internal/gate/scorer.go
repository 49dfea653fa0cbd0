package gate

import (
	"fmt"
	"math"
	"strings"

	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/types"
)

// Scorer scores candidate evidence against a classified requirement set.
// Stateless and safe for concurrent use.
type Scorer struct {
	cfg ScorerConfig
}

// NewScorer constructs a Scorer, failing fast with a ConfigError when the
// configuration invariants are violated.
func NewScorer(cfg ScorerConfig) (*Scorer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to construct scorer: %w", err)
	}
	return &Scorer{cfg: cfg}, nil
}

// Config returns the scorer's configuration.
func (s *Scorer) Config() ScorerConfig {
	return s.cfg
}

// ScoreCandidate evaluates one candidate's evidence against the classified
// requirements. Per skill the check is binary: evidence at or above
// MinSkillScore counts as having the skill, anything below does not, with no
// partial credit toward coverage. A role with zero mandatory skills has 100%
// mandatory coverage by convention and can never hard-fail.
func (s *Scorer) ScoreCandidate(cls types.Classification, evidence types.Evidence) types.Decision {
	decision := types.Decision{}

	matchedMandatory, missingMandatory := splitByEvidence(cls.Mandatory, evidence, s.cfg.MinSkillScore)
	matchedPreferred, missingPreferred := splitByEvidence(cls.Preferred, evidence, s.cfg.MinSkillScore)

	decision.MatchedMandatory = matchedMandatory
	decision.MissingMandatory = missingMandatory
	decision.MatchedPreferred = matchedPreferred
	decision.MissingPreferred = missingPreferred

	mandatoryRatio := coverageRatio(len(matchedMandatory), len(cls.Mandatory))
	preferredRatio := coverageRatio(len(matchedPreferred), len(cls.Preferred))
	decision.MandatoryCoverage = mandatoryRatio * 100
	decision.PreferredCoverage = preferredRatio * 100

	base := s.cfg.MandatoryWeight*decision.MandatoryCoverage + s.cfg.PreferredWeight*decision.PreferredCoverage
	score := clipScore(int(math.Round(base)))

	// Hard-reject path: only a role that actually defines mandatory skills
	// can fail the gate.
	if len(cls.Mandatory) > 0 && mandatoryRatio < s.cfg.MinMandatoryCoverage {
		decision.HardFail = true
		if score > s.cfg.HardFailScoreCap {
			score = s.cfg.HardFailScoreCap
		}
		decision.Verdict = types.VerdictNo
		decision.Reasons = append(decision.Reasons, types.BlockingPrefix+fmt.Sprintf(
			"missing mandatory skills (%d/%d): %s; coverage %.1f%% below required %.0f%%",
			len(missingMandatory), len(cls.Mandatory), joinSkills(missingMandatory),
			decision.MandatoryCoverage, s.cfg.MinMandatoryCoverage*100))
	} else {
		decision.Verdict = s.verdictFor(score)
	}

	decision.Score = score
	decision.Reasons = append(decision.Reasons, s.coverageReasons(cls, &decision)...)

	return decision
}

// verdictFor maps a final score to a verdict using the configured thresholds.
func (s *Scorer) verdictFor(score int) types.Verdict {
	switch {
	case score >= s.cfg.GoThreshold:
		return types.VerdictGo
	case score >= s.cfg.HoldThreshold:
		return types.VerdictHold
	default:
		return types.VerdictNo
	}
}

// coverageReasons builds the always-present explanation entries: coverage
// percentages and the matched/missing skill lists.
func (s *Scorer) coverageReasons(cls types.Classification, d *types.Decision) []string {
	reasons := []string{
		fmt.Sprintf("Mandatory coverage %.1f%% (%d/%d skills)",
			d.MandatoryCoverage, len(d.MatchedMandatory), len(cls.Mandatory)),
		fmt.Sprintf("Matched mandatory: %s", joinSkills(d.MatchedMandatory)),
	}
	if len(d.MissingMandatory) > 0 {
		reasons = append(reasons, fmt.Sprintf("Missing mandatory: %s", joinSkills(d.MissingMandatory)))
	}
	if len(cls.Preferred) > 0 {
		reasons = append(reasons, fmt.Sprintf("Preferred coverage %.1f%% (%d/%d skills)",
			d.PreferredCoverage, len(d.MatchedPreferred), len(cls.Preferred)))
	}
	return reasons
}

// splitByEvidence partitions skills into matched and missing by the binary
// evidence check, preserving classification order.
func splitByEvidence(ids []types.SkillID, evidence types.Evidence, minScore float64) (matched, missing []types.SkillID) {
	for _, id := range ids {
		if evidence.Score(id) >= minScore {
			matched = append(matched, id)
		} else {
			missing = append(missing, id)
		}
	}
	return matched, missing
}

// coverageRatio returns matched/total in [0,1]. An empty skill class covers
// fully by convention so it never gates a candidate.
func coverageRatio(matched, total int) float64 {
	if total == 0 {
		return 1.0
	}
	return float64(matched) / float64(total)
}

// clipScore bounds a score to [0,100].
func clipScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// joinSkills renders a skill list for a reason string.
func joinSkills(ids []types.SkillID) string {
	if len(ids) == 0 {
		return "none"
	}
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	return strings.Join(names, ", ")
}
