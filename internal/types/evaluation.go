package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RoleRequest describes a role to evaluate candidates against. Skill lists are
// raw strings; normalization happens inside the pipeline.
type RoleRequest struct {
	Role              string    `json:"role" validate:"required,min=1"`
	MandatorySkills   []string  `json:"mandatory_skills"`
	PreferredSkills   []string  `json:"preferred_skills"`
	DescriptionSkills []string  `json:"description_skills,omitempty"`
	Postings          []Posting `json:"postings,omitempty"`
}

// Validate validates the RoleRequest using the validator.
func (r *RoleRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// CandidateProfile carries the externally gathered signals for one candidate.
// Evidence maps are keyed by raw skill strings; the pipeline normalizes the
// keys before scoring, so collaborators are free to report unnormalized names.
type CandidateProfile struct {
	ID             string             `json:"id" validate:"required,min=1"`
	Name           string             `json:"name,omitempty"`
	GitHubEvidence map[string]float64 `json:"github_evidence,omitempty"`
	ResumeEvidence map[string]float64 `json:"resume_evidence,omitempty"`
	RiskPenalty    float64            `json:"risk_penalty,omitempty"`
	ResumeBoost    float64            `json:"resume_boost,omitempty"`
}

// Validate validates the CandidateProfile using the validator.
func (c *CandidateProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// CandidateResult re-associates a decision with the candidate it belongs to.
// Fan-out completion order is not guaranteed, so every result carries its
// originating candidate id.
type CandidateResult struct {
	CandidateID string   `json:"candidate_id"`
	Name        string   `json:"name,omitempty"`
	Decision    Decision `json:"decision"`
}

// RunReport is the assembled output of one evaluation run.
type RunReport struct {
	RunID          uuid.UUID         `json:"run_id"`
	Role           string            `json:"role"`
	Classification Classification    `json:"classification"`
	Results        []CandidateResult `json:"results"`
	StartedAt      time.Time         `json:"started_at"`
	CompletedAt    time.Time         `json:"completed_at"`
}
