package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/types"
)

func postingsFixture() []types.Posting {
	return []types.Posting{
		{Title: "Backend Developer (Python)", Skills: []string{"Python", "Docker", "PostgreSQL"}},
		{Title: "Python Engineer", Skills: []string{"python", "FastAPI", "Docker"}},
		{Title: "DevOps Engineer", Skills: []string{"Docker", "Kubernetes", "Terraform"}},
		{Title: "Fullstack Developer", Skills: []string{"python", "react", "postgres"}},
	}
}

func TestComputeFrequencies(t *testing.T) {
	report := ComputeFrequencies(postingsFixture(), []types.SkillID{"python", "docker", "postgresql", "rust"})

	require.True(t, report.Available)
	assert.Equal(t, 4, report.PostingsAnalyzed)
	assert.Equal(t, 0.75, report.Ratio("python"), "3 of 4 postings mention python")
	assert.Equal(t, 0.75, report.Ratio("docker"))
	assert.Equal(t, 0.5, report.Ratio("postgresql"), "postgres synonym should count")
	assert.Equal(t, 0.0, report.Ratio("rust"), "unmentioned skill has zero frequency")
}

func TestComputeFrequencies_ZeroPostings(t *testing.T) {
	report := ComputeFrequencies(nil, []types.SkillID{"python", "docker"})

	assert.False(t, report.Available, "no postings means no market signal")
	assert.Equal(t, 0, report.PostingsAnalyzed)
	assert.Equal(t, 0.0, report.Ratio("python"), "zero postings must yield zero ratio, not an error")
	assert.Equal(t, 0.0, report.Ratio("docker"))
}

func TestComputeFrequencies_DuplicateSkillsInPosting(t *testing.T) {
	postings := []types.Posting{
		{Skills: []string{"Go", "golang", "go"}},
		{Skills: []string{"python"}},
	}

	report := ComputeFrequencies(postings, []types.SkillID{"go"})

	assert.Equal(t, 0.5, report.Ratio("go"), "a posting repeating a skill counts once")
}

func TestComputeImportance_TitleMentionsWeighted(t *testing.T) {
	importance := ComputeImportance(postingsFixture(), []types.SkillID{"python", "kubernetes"})

	// python: body 3/4 plus title mentions in 2/4 postings at 3x, capped at 1.0
	assert.Equal(t, 1.0, importance["python"])
	// kubernetes: body 1/4, never in a title
	assert.Equal(t, 0.25, importance["kubernetes"])
}

func TestComputeImportance_ZeroPostings(t *testing.T) {
	importance := ComputeImportance(nil, []types.SkillID{"python"})
	assert.Equal(t, 0.0, importance["python"])
}

func TestCoOccurrence(t *testing.T) {
	postings := []types.Posting{
		{Skills: []string{"fastapi", "docker"}},
		{Skills: []string{"fastapi", "docker", "postgresql"}},
		{Skills: []string{"fastapi", "docker"}},
		{Skills: []string{"react"}},
	}

	clusters := CoOccurrence(postings, []types.SkillID{"fastapi", "docker", "postgresql", "react"})

	assert.Contains(t, clusters["fastapi"], types.SkillID("docker"), "skills appearing together in most postings are clustered")
	assert.Contains(t, clusters["docker"], types.SkillID("fastapi"))
	assert.NotContains(t, clusters["fastapi"], types.SkillID("postgresql"), "1 of 4 postings is below the cluster threshold")
	assert.Empty(t, clusters["react"])
}

func TestCoOccurrence_ZeroPostings(t *testing.T) {
	clusters := CoOccurrence(nil, []types.SkillID{"python", "docker"})
	assert.Empty(t, clusters)
}
