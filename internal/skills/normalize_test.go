package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/types"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected types.SkillID
	}{
		{"golang to go", "Golang", "go"},
		{"GOLANG to go", "GOLANG", "go"},
		{"py to python", "py", "python"},
		{"python3 to python", "python3", "python"},
		{"js to javascript", "JS", "javascript"},
		{"k8s to kubernetes", "k8s", "kubernetes"},
		{"postgres to postgresql", "Postgres", "postgresql"},
		{"react.js to react", "React.js", "react"},
		{"c++ preserved", "C++", "c++"},
		{"c# preserved", "C#", "c#"},
		{"russian synonym", "Питон", "python"},
		{"russian docker", "докер", "docker"},
		{"whitespace trimmed", "  docker  ", "docker"},
		{"inner whitespace collapsed", "amazon   web   services", "aws"},
		{"html tags stripped", "<b>Docker</b>", "docker"},
		{"punctuation noise stripped", "docker!!!", "docker"},
		{"unknown becomes its own id", "Clojure", "clojure"},
		{"unknown multi-word", "Distributed Systems", "distributed systems"},
		{"empty string", "", ""},
		{"whitespace only", "   ", ""},
		{"only noise", "???", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.input)
			assert.Equal(t, tt.expected, result, "should normalize skill name correctly")
		})
	}
}

func TestNormalize_CanonicalRoundTrip(t *testing.T) {
	// Normalizing an already-canonical id must return the same id.
	for canonical := range skillTaxonomy {
		assert.Equal(t, canonical, Normalize(string(canonical)),
			"canonical id %q should normalize to itself", canonical)
	}
}

func TestNormalize_TaxonomySize(t *testing.T) {
	assert.GreaterOrEqual(t, len(skillTaxonomy), 50, "taxonomy should cover at least 50 canonical skills")
}

func TestNormalizeBatch(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []types.SkillID
	}{
		{
			name:     "first-seen order retained",
			input:    []string{"Docker", "Python", "Golang"},
			expected: []types.SkillID{"docker", "python", "go"},
		},
		{
			name:     "duplicates collapse after normalization",
			input:    []string{"Go", "Golang", "golang", "python", "py"},
			expected: []types.SkillID{"go", "python"},
		},
		{
			name:     "empty results skipped",
			input:    []string{"", "   ", "docker"},
			expected: []types.SkillID{"docker"},
		},
		{
			name:     "empty input",
			input:    nil,
			expected: []types.SkillID{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeBatch(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestNormalizeEvidence(t *testing.T) {
	raw := map[string]float64{
		"Golang": 0.9,
		"go":     0.4, // same canonical skill, lower score
		"Docker": 0.7,
		"":       1.0, // dropped
	}

	evidence := NormalizeEvidence(raw)

	assert.Equal(t, 0.9, evidence.Score("go"), "highest score should win for colliding keys")
	assert.Equal(t, 0.7, evidence.Score("docker"))
	assert.Len(t, evidence, 2)
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		skill    types.SkillID
		expected types.Category
	}{
		{"python", types.CategoryBackend},
		{"fastapi", types.CategoryBackend},
		{"react", types.CategoryFrontend},
		{"typescript", types.CategoryFrontend},
		{"postgresql", types.CategoryDatabase},
		{"pytorch", types.CategoryML},
		{"docker", types.CategoryDevops},
		{"kubernetes", types.CategoryDevops},
		{"agile", types.CategoryOther},
		{"some unknown skill", types.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(string(tt.skill), func(t *testing.T) {
			assert.Equal(t, tt.expected, Categorize(tt.skill))
		})
	}
}

func TestGroupByCategory(t *testing.T) {
	grouped := GroupByCategory([]types.SkillID{"python", "fastapi", "docker", "react"})

	assert.Equal(t, []types.SkillID{"python", "fastapi"}, grouped[types.CategoryBackend])
	assert.Equal(t, []types.SkillID{"docker"}, grouped[types.CategoryDevops])
	assert.Equal(t, []types.SkillID{"react"}, grouped[types.CategoryFrontend])
}
