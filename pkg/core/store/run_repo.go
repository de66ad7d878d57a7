package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RunRecord is one persisted analysis run: the deal inputs and the summary
// outputs, stored as a JSONB blob keyed by run ID.
type RunRecord struct {
	ID        string          `json:"id"`
	DealName  string          `json:"deal_name"`
	Request   json.RawMessage `json:"request"`
	Summary   json.RawMessage `json:"summary"`
	CreatedAt time.Time       `json:"created_at"`
}

// RunRepo handles the audit storage of simulation runs.
//
// Schema assumption (managed outside the application):
//
//	CREATE TABLE IF NOT EXISTS simulation_runs (
//	  id UUID PRIMARY KEY,
//	  deal_name TEXT,
//	  run_json JSONB,
//	  created_at TIMESTAMPTZ
//	);
type RunRepo struct{}

// NewRunRepo creates a new repository instance.
func NewRunRepo() *RunRepo {
	return &RunRepo{}
}

// Save persists one run and returns its generated ID.
func (r *RunRepo) Save(ctx context.Context, dealName string, request, summary json.RawMessage) (string, error) {
	pool := GetPool()
	if pool == nil {
		return "", fmt.Errorf("database pool not initialized")
	}

	record := RunRecord{
		ID:        uuid.New().String(),
		DealName:  dealName,
		Request:   request,
		Summary:   summary,
		CreatedAt: time.Now(),
	}
	blob, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("failed to marshal run: %w", err)
	}

	query := `
		INSERT INTO simulation_runs (id, deal_name, run_json, created_at)
		VALUES ($1, $2, $3, $4);
	`
	if _, err := pool.Exec(ctx, query, record.ID, dealName, blob, record.CreatedAt); err != nil {
		return "", fmt.Errorf("failed to save run: %w", err)
	}
	return record.ID, nil
}

// Get retrieves one stored run by ID.
func (r *RunRepo) Get(ctx context.Context, id string) (*RunRecord, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	var blob []byte
	err := pool.QueryRow(ctx, `SELECT run_json FROM simulation_runs WHERE id = $1`, id).Scan(&blob)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no run found for id %s", id)
		}
		return nil, fmt.Errorf("failed to load run: %w", err)
	}

	record := &RunRecord{}
	if err := json.Unmarshal(blob, record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run: %w", err)
	}
	return record, nil
}

// List returns the most recent runs, newest first.
func (r *RunRepo) List(ctx context.Context, limit int) ([]RunRecord, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := pool.Query(ctx,
		`SELECT run_json FROM simulation_runs ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var blob []byte
		if err := rows.Scan(&blob); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		var record RunRecord
		if err := json.Unmarshal(blob, &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal run: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
