// Package evaluation orchestrates a full evaluation run: classify the role's
// requirements from employer declarations and market postings, then score
// every candidate concurrently and assemble the run report.
package evaluation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/db"
	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/gate"
	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/market"
	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/requirements"
	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/skills"
	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/types"
)

// DefaultConcurrency bounds the per-candidate scoring fan-out when the caller
// does not supply a limit.
const DefaultConcurrency = 4

// RunStore persists evaluation runs and their decisions. *db.DB implements it.
type RunStore interface {
	CreateRun(ctx context.Context, runID uuid.UUID, role string, candidateCount int) error
	SaveClassification(ctx context.Context, runID uuid.UUID, cls types.Classification) error
	SaveDecision(ctx context.Context, runID uuid.UUID, result types.CandidateResult) error
	CompleteRun(ctx context.Context, runID uuid.UUID, status string) error
}

// Options configures an evaluation run. Zero values fall back to defaults.
type Options struct {
	Requirements requirements.Config
	Scorer       gate.ScorerConfig
	Concurrency  int

	// Database is optional; when set, the run and every decision are persisted.
	Database RunStore
}

// Run evaluates all candidates against a role. The requirement classification
// is computed once; candidate scoring fans out across a bounded worker group
// and results are re-associated with their originating candidate, so the
// report order always matches the input order regardless of completion order.
func Run(ctx context.Context, role types.RoleRequest, candidates []types.CandidateProfile, opts Options) (*types.RunReport, error) {
	if err := role.Validate(); err != nil {
		return nil, fmt.Errorf("invalid role request: %w", err)
	}
	for i := range candidates {
		if err := candidates[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid candidate profile at index %d: %w", i, err)
		}
	}

	classifier, err := requirements.NewClassifier(opts.Requirements)
	if err != nil {
		return nil, err
	}
	scorer, err := gate.NewScorer(opts.Scorer)
	if err != nil {
		return nil, err
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	report := &types.RunReport{
		RunID:     uuid.New(),
		Role:      role.Role,
		StartedAt: time.Now().UTC(),
	}

	roleSkills := allRoleSkills(role)
	freq := market.ComputeFrequencies(role.Postings, skills.NormalizeBatch(roleSkills))
	report.Classification = classifier.Classify(role.MandatorySkills, role.PreferredSkills, roleSkills, freq)

	if opts.Database != nil {
		if err := opts.Database.CreateRun(ctx, report.RunID, role.Role, len(candidates)); err != nil {
			return nil, err
		}
		if err := opts.Database.SaveClassification(ctx, report.RunID, report.Classification); err != nil {
			_ = opts.Database.CompleteRun(ctx, report.RunID, db.StatusFailed)
			return nil, err
		}
	}

	results := make([]types.CandidateResult, len(candidates))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i := range candidates {
		i := i
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = ScoreOne(report.Classification, candidates[i], scorer)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if opts.Database != nil {
			_ = opts.Database.CompleteRun(ctx, report.RunID, db.StatusFailed)
		}
		return nil, fmt.Errorf("candidate scoring failed: %w", err)
	}

	report.Results = results
	report.CompletedAt = time.Now().UTC()

	if opts.Database != nil {
		for _, result := range results {
			if err := opts.Database.SaveDecision(ctx, report.RunID, result); err != nil {
				_ = opts.Database.CompleteRun(ctx, report.RunID, db.StatusFailed)
				return nil, err
			}
		}
		if err := opts.Database.CompleteRun(ctx, report.RunID, db.StatusCompleted); err != nil {
			return nil, err
		}
	}

	return report, nil
}

// ScoreOne scores a single candidate: merge the evidence sources (highest
// score wins per skill), gate against the classification, then fold in the
// candidate's risk and boost scalars.
func ScoreOne(cls types.Classification, candidate types.CandidateProfile, scorer *gate.Scorer) types.CandidateResult {
	evidence := types.MergeEvidence(
		skills.NormalizeEvidence(candidate.GitHubEvidence),
		skills.NormalizeEvidence(candidate.ResumeEvidence),
	)

	gated := scorer.ScoreCandidate(cls, evidence)
	final := scorer.Aggregate(gated, candidate.RiskPenalty, candidate.ResumeBoost)

	return types.CandidateResult{
		CandidateID: candidate.ID,
		Name:        candidate.Name,
		Decision:    final,
	}
}

// allRoleSkills collects every skill mentioned by the role: declared lists
// plus skills extracted from the free-text description.
func allRoleSkills(role types.RoleRequest) []string {
	all := make([]string, 0, len(role.MandatorySkills)+len(role.PreferredSkills)+len(role.DescriptionSkills))
	all = append(all, role.MandatorySkills...)
	all = append(all, role.PreferredSkills...)
	all = append(all, role.DescriptionSkills...)
	return all
}
