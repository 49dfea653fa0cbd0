package types

// Evidence maps canonical skills to a confidence score in [0,1] that a
// candidate possesses the skill. Evidence is produced by external collaborators
// (GitHub analysis, resume parsing); this core only consumes it.
type Evidence map[SkillID]float64

// Score returns the evidence score for a skill. A missing entry scores 0.0:
// absence of proof is scored conservatively, never treated as an error.
func (e Evidence) Score(id SkillID) float64 {
	if e == nil {
		return 0.0
	}
	return e[id]
}

// MergeEvidence combines evidence from several sources into one map, keeping
// the highest score per skill. Sources may cover overlapping skill sets.
func MergeEvidence(sources ...Evidence) Evidence {
	merged := make(Evidence)
	for _, source := range sources {
		for id, score := range source {
			if score > merged[id] {
				merged[id] = score
			}
		}
	}
	return merged
}
