// Package archive provides the optional PostgreSQL run archive. The planner
// never reads computed artifacts back from it; it is a write-only sink for
// operators inspecting past runs.
package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Artifact categories grouping the archived keys by pipeline phase.
const (
	CategoryIntake   = "intake"
	CategoryStrategy = "strategy"
	CategoryContent  = "content"
	CategoryHashtags = "hashtags"
	CategoryVisual   = "visual"
	CategorySummary  = "summary"
)

// Run status values.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Archive wraps a PostgreSQL connection pool.
type Archive struct {
	pool *pgxpool.Pool
}

// Run is one archived planning run.
type Run struct {
	ID          uuid.UUID  `json:"id"`
	Industry    string     `json:"industry"`
	Audience    string     `json:"audience"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Archive, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Archive{pool: pool}, nil
}

// Close closes the connection pool.
func (a *Archive) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

// CreateRun creates a new planning run record and returns its ID.
func (a *Archive) CreateRun(ctx context.Context, industry, audience string) (uuid.UUID, error) {
	var id uuid.UUID
	err := a.pool.QueryRow(ctx,
		`INSERT INTO planning_runs (industry, audience, status)
		 VALUES ($1, $2, 'running')
		 RETURNING id`,
		industry, audience,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// CompleteRun marks a planning run as finished with the given status.
func (a *Archive) CompleteRun(ctx context.Context, runID uuid.UUID, status string) error {
	_, err := a.pool.Exec(ctx,
		`UPDATE planning_runs SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// SaveArtifact stores a JSON artifact under its run-scoped key. Re-saving a
// key overwrites the previous version, matching the in-run store semantics.
func (a *Archive) SaveArtifact(ctx context.Context, runID uuid.UUID, key, category string, content any) error {
	jsonBytes, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal artifact: %w", err)
	}

	_, err = a.pool.Exec(ctx,
		`INSERT INTO artifacts (run_id, key, category, content)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (run_id, key) DO UPDATE SET category = $3, content = $4, created_at = NOW()`,
		runID, key, category, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save artifact %s: %w", key, err)
	}
	return nil
}

// GetArtifact retrieves an archived artifact by run ID and key. Returns nil
// without error when the key was never archived.
func (a *Archive) GetArtifact(ctx context.Context, runID uuid.UUID, key string) ([]byte, error) {
	var content []byte
	err := a.pool.QueryRow(ctx,
		`SELECT content FROM artifacts WHERE run_id = $1 AND key = $2`,
		runID, key,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get artifact %s: %w", key, err)
	}
	return content, nil
}

// GetRun retrieves a planning run by ID. Returns nil without error when the
// run does not exist.
func (a *Archive) GetRun(ctx context.Context, runID uuid.UUID) (*Run, error) {
	var run Run
	err := a.pool.QueryRow(ctx,
		`SELECT id, industry, audience, status, created_at, completed_at
		 FROM planning_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.Industry, &run.Audience, &run.Status, &run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// ListRuns retrieves recent planning runs, newest first.
func (a *Archive) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := a.pool.Query(ctx,
		`SELECT id, industry, audience, status, created_at, completed_at
		 FROM planning_runs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Industry, &run.Audience, &run.Status, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}
