// Package market computes skill frequency statistics from job postings.
package market

import (
	"strings"

	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/skills"
	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/types"
)

// titleMentionWeight is the multiplier applied to title mentions when
// computing importance. A skill named in the posting title is a much stronger
// requirement signal than one buried in the description.
const titleMentionWeight = 3.0

// FrequencyReport is the output of one market analysis call. When no postings
// were supplied, Available is false and the classifier must rely solely on
// employer declarations.
type FrequencyReport struct {
	Ratios           map[types.SkillID]float64 `json:"ratios"`
	PostingsAnalyzed int                       `json:"postings_analyzed"`
	Available        bool                      `json:"available"`
}

// Ratio returns the frequency ratio for a skill, 0.0 when unknown.
func (r FrequencyReport) Ratio(id types.SkillID) float64 {
	return r.Ratios[id]
}

// ComputeFrequencies computes, for each requested skill, the ratio of postings
// whose normalized skill set contains it. Pure function of its inputs: zero
// postings yield 0.0 ratios and Available=false, never an error.
func ComputeFrequencies(postings []types.Posting, skillIDs []types.SkillID) FrequencyReport {
	report := FrequencyReport{
		Ratios:           make(map[types.SkillID]float64, len(skillIDs)),
		PostingsAnalyzed: len(postings),
		Available:        len(postings) > 0,
	}

	for _, id := range skillIDs {
		report.Ratios[id] = 0.0
	}
	if len(postings) == 0 {
		return report
	}

	mentions := countMentions(postings)
	total := float64(len(postings))
	for _, id := range skillIDs {
		report.Ratios[id] = float64(mentions[id]) / total
	}

	return report
}

// ComputeImportance computes a weighted importance score per skill in [0,1]:
// body frequency plus title mentions counted at titleMentionWeight, capped at
// 1.0. Used for report transparency; classification itself consumes the plain
// posting ratios from ComputeFrequencies.
func ComputeImportance(postings []types.Posting, skillIDs []types.SkillID) map[types.SkillID]float64 {
	importance := make(map[types.SkillID]float64, len(skillIDs))
	for _, id := range skillIDs {
		importance[id] = 0.0
	}
	if len(postings) == 0 {
		return importance
	}

	mentions := countMentions(postings)
	titleMentions := make(map[types.SkillID]int)
	for _, posting := range postings {
		title := strings.ToLower(posting.Title)
		if title == "" {
			continue
		}
		for _, id := range skills.NormalizeBatch(posting.Skills) {
			if strings.Contains(title, string(id)) {
				titleMentions[id]++
			}
		}
	}

	total := float64(len(postings))
	for _, id := range skillIDs {
		frequency := float64(mentions[id]) / total
		titleRatio := float64(titleMentions[id]) / total
		score := frequency + titleRatio*titleMentionWeight
		if score > 1.0 {
			score = 1.0
		}
		importance[id] = score
	}

	return importance
}

// CoOccurrence finds, among the requested skills, the pairs that appear
// together in more than half of the postings. Useful for surfacing skill
// clusters (e.g. fastapi usually travels with docker) in classification
// reports.
func CoOccurrence(postings []types.Posting, skillIDs []types.SkillID) map[types.SkillID][]types.SkillID {
	clusters := make(map[types.SkillID][]types.SkillID)
	if len(postings) == 0 {
		return clusters
	}

	pairCounts := make(map[[2]types.SkillID]int)
	for _, posting := range postings {
		present := make(map[types.SkillID]bool)
		for _, id := range skills.NormalizeBatch(posting.Skills) {
			present[id] = true
		}
		for i, first := range skillIDs {
			if !present[first] {
				continue
			}
			for _, second := range skillIDs[i+1:] {
				if present[second] {
					pairCounts[[2]types.SkillID{first, second}]++
				}
			}
		}
	}

	total := float64(len(postings))
	for pair, count := range pairCounts {
		if float64(count)/total > 0.5 {
			clusters[pair[0]] = append(clusters[pair[0]], pair[1])
			clusters[pair[1]] = append(clusters[pair[1]], pair[0])
		}
	}

	return clusters
}

// countMentions counts, per canonical skill, how many postings mention it.
// Each posting's skill list is normalized and deduplicated first so a posting
// repeating a skill counts once.
func countMentions(postings []types.Posting) map[types.SkillID]int {
	mentions := make(map[types.SkillID]int)
	for _, posting := range postings {
		for _, id := range skills.NormalizeBatch(posting.Skills) {
			mentions[id]++
		}
	}
	return mentions
}
