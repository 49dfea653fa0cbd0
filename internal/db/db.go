// Package db provides PostgreSQL storage for evaluation runs and decisions.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/VisageDvachevsky/AI-Devtools-Hack/internal/types"
)

// Run statuses.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// CreateRun records a new evaluation run.
func (db *DB) CreateRun(ctx context.Context, runID uuid.UUID, role string, candidateCount int) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO evaluation_runs (id, role, candidate_count, status)
		 VALUES ($1, $2, $3, $4)`,
		runID, role, candidateCount, StatusRunning,
	)
	if err != nil {
		return fmt.Errorf("failed to create evaluation run: %w", err)
	}
	return nil
}

// SaveClassification stores the requirement classification for a run.
func (db *DB) SaveClassification(ctx context.Context, runID uuid.UUID, cls types.Classification) error {
	payload, err := json.Marshal(cls)
	if err != nil {
		return fmt.Errorf("failed to marshal classification: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`UPDATE evaluation_runs SET classification = $1 WHERE id = $2`,
		payload, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to save classification: %w", err)
	}
	return nil
}

// SaveDecision stores one candidate's decision for a run. Re-saving the same
// candidate overwrites the previous decision.
func (db *DB) SaveDecision(ctx context.Context, runID uuid.UUID, result types.CandidateResult) error {
	payload, err := json.Marshal(result.Decision)
	if err != nil {
		return fmt.Errorf("failed to marshal decision: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO candidate_decisions (run_id, candidate_id, name, score, verdict, hard_fail, decision)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (run_id, candidate_id)
		 DO UPDATE SET name = $3, score = $4, verdict = $5, hard_fail = $6, decision = $7, created_at = NOW()`,
		runID, result.CandidateID, result.Name,
		result.Decision.Score, string(result.Decision.Verdict), result.Decision.HardFail, payload,
	)
	if err != nil {
		return fmt.Errorf("failed to save decision for candidate %s: %w", result.CandidateID, err)
	}
	return nil
}

// CompleteRun marks an evaluation run as finished.
func (db *DB) CompleteRun(ctx context.Context, runID uuid.UUID, status string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE evaluation_runs SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete evaluation run: %w", err)
	}
	return nil
}

// ListDecisions returns the stored decisions for a run ordered by score,
// highest first.
func (db *DB) ListDecisions(ctx context.Context, runID uuid.UUID) ([]types.CandidateResult, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT candidate_id, name, decision
		 FROM candidate_decisions
		 WHERE run_id = $1
		 ORDER BY score DESC, candidate_id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query decisions: %w", err)
	}
	defer rows.Close()

	var results []types.CandidateResult
	for rows.Next() {
		var result types.CandidateResult
		var payload []byte
		if err := rows.Scan(&result.CandidateID, &result.Name, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan decision row: %w", err)
		}
		if err := json.Unmarshal(payload, &result.Decision); err != nil {
			return nil, fmt.Errorf("failed to unmarshal decision for candidate %s: %w", result.CandidateID, err)
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate decision rows: %w", err)
	}

	return results, nil
}
