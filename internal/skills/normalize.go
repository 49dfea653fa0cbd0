package skills

import (
	"regexp"
	"strings"

	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/types"
)

var (
	htmlTagPattern    = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	// Keep letters, digits, whitespace and the symbols that occur in real
	// skill names (c++, c#, scikit-learn, node.js). Everything else is noise
	// from copy-pasted posting text.
	noisePattern = regexp.MustCompile(`[^\p{L}\p{N}_\s+#\-.]`)
)

// Normalize maps a raw skill string to its canonical id. Lookup is
// case-insensitive and whitespace-tolerant; HTML fragments and punctuation
// noise are stripped first. An unrecognized skill becomes its own lower-cased
// canonical id so unfamiliar skills degrade gracefully instead of being
// dropped. Returns the empty id when nothing survives cleaning.
func Normalize(raw string) types.SkillID {
	if raw == "" {
		return ""
	}

	cleaned := htmlTagPattern.ReplaceAllString(raw, "")
	cleaned = strings.ReplaceAll(cleaned, "…", " ")
	cleaned = whitespacePattern.ReplaceAllString(cleaned, " ")
	cleaned = strings.ToLower(strings.TrimSpace(cleaned))
	cleaned = noisePattern.ReplaceAllString(cleaned, "")
	if cleaned == "" {
		return ""
	}

	if canonical, ok := synonymToCanonical[cleaned]; ok {
		return canonical
	}
	return types.SkillID(cleaned)
}

// NormalizeBatch normalizes a list of raw skill strings, collapsing duplicates
// after normalization while retaining first-seen order. Empty results are
// skipped.
func NormalizeBatch(raw []string) []types.SkillID {
	normalized := make([]types.SkillID, 0, len(raw))
	seen := make(map[types.SkillID]bool, len(raw))

	for _, skill := range raw {
		id := Normalize(skill)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		normalized = append(normalized, id)
	}

	return normalized
}

// NormalizeSet normalizes a list of raw skill strings into a membership set.
func NormalizeSet(raw []string) map[types.SkillID]bool {
	set := make(map[types.SkillID]bool, len(raw))
	for _, id := range NormalizeBatch(raw) {
		set[id] = true
	}
	return set
}

// NormalizeEvidence re-keys a raw evidence map by canonical skill id. When two
// raw keys normalize to the same skill, the highest score wins.
func NormalizeEvidence(raw map[string]float64) types.Evidence {
	evidence := make(types.Evidence, len(raw))
	for skill, score := range raw {
		id := Normalize(skill)
		if id == "" {
			continue
		}
		if score > evidence[id] {
			evidence[id] = score
		}
	}
	return evidence
}
