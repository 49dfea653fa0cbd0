package types

import "strings"

// Verdict is the automatic hiring decision for one candidate.
type Verdict string

// Possible verdicts.
const (
	VerdictGo   Verdict = "go"
	VerdictHold Verdict = "hold"
	VerdictNo   Verdict = "no"
)

// BlockingPrefix marks a decision reason that caused an automatic reject.
const BlockingPrefix = "BLOCKING: "

// Decision is the scored outcome for one candidate against one classified role.
type Decision struct {
	Score    int      `json:"score"`
	Verdict  Verdict  `json:"decision"`
	Reasons  []string `json:"decision_reasons"`
	HardFail bool     `json:"hard_fail"`

	MandatoryCoverage float64 `json:"mandatory_coverage"`
	PreferredCoverage float64 `json:"preferred_coverage"`

	MatchedMandatory []SkillID `json:"matched_mandatory"`
	MissingMandatory []SkillID `json:"missing_mandatory"`
	MatchedPreferred []SkillID `json:"matched_preferred"`
	MissingPreferred []SkillID `json:"missing_preferred"`
}

// BlockingReasons returns only the reasons that carry the blocking prefix.
func (d *Decision) BlockingReasons() []string {
	var blocking []string
	for _, reason := range d.Reasons {
		if strings.HasPrefix(reason, BlockingPrefix) {
			blocking = append(blocking, reason)
		}
	}
	return blocking
}
