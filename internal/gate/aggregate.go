package gate

import (
	"fmt"
	"math"

	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/types"
)

// Aggregate folds externally computed adjustments into a gate decision:
// riskPenalty (e.g. from inactivity signals) subtracts from the score,
// resumeBoost adds to it, the result is re-clipped to [0,100] and the verdict
// re-evaluated. When the gate hard-failed, the score cap is final and the
// adjustments are a no-op on the score; only the reasons record that the
// signals were observed.
func (s *Scorer) Aggregate(gated types.Decision, riskPenalty, resumeBoost float64) types.Decision {
	result := gated
	result.Reasons = append([]string(nil), gated.Reasons...)

	if gated.HardFail {
		if riskPenalty != 0 || resumeBoost != 0 {
			result.Reasons = append(result.Reasons,
				"Activity and resume signals observed but not applied: mandatory gate already rejected this candidate")
		}
		return result
	}

	adjusted := float64(gated.Score) - riskPenalty + resumeBoost
	result.Score = clipScore(int(math.Round(adjusted)))
	result.Verdict = s.verdictFor(result.Score)

	if riskPenalty > 0 {
		result.Reasons = append(result.Reasons, fmt.Sprintf("Risk penalty applied: -%.0f", riskPenalty))
	}
	if resumeBoost > 0 {
		result.Reasons = append(result.Reasons, fmt.Sprintf("Resume boost applied: +%.0f", resumeBoost))
	}

	return result
}
