// Package sqlite stores the local weight journal in an embedded database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"ai-health-assistant/internal/domain/model"
	"ai-health-assistant/internal/domain/ports/repository"
)

// Compile-time check
var _ repository.WeightRepository = (*WeightRepo)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS weight_log (
	id        TEXT PRIMARY KEY,
	weight_kg REAL NOT NULL,
	logged_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_weight_log_logged_at ON weight_log(logged_at DESC);
`

// WeightRepo persists weight entries in a single-file sqlite database.
type WeightRepo struct {
	db *sql.DB
}

// NewWeightRepo opens (creating if needed) the journal database at path
// with WAL enabled.
func NewWeightRepo(ctx context.Context, path string) (*WeightRepo, error) {
	dsn := fmt.Sprintf("%s?_journal=WAL&_sync=NORMAL&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open weight db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping weight db: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init weight schema: %w", err)
	}
	return &WeightRepo{db: db}, nil
}

func (r *WeightRepo) Add(ctx context.Context, entry *model.WeightEntry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO weight_log (id, weight_kg, logged_at) VALUES (?, ?, ?)`,
		entry.ID, entry.Weight, entry.LoggedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert weight entry: %w", err)
	}
	return nil
}

func (r *WeightRepo) List(ctx context.Context, limit int) ([]*model.WeightEntry, error) {
	q := `SELECT id, weight_kg, logged_at FROM weight_log ORDER BY logged_at DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query weight entries: %w", err)
	}
	defer rows.Close()

	var entries []*model.WeightEntry
	for rows.Next() {
		var e model.WeightEntry
		var loggedAt int64
		if err := rows.Scan(&e.ID, &e.Weight, &loggedAt); err != nil {
			return nil, fmt.Errorf("failed to scan weight entry: %w", err)
		}
		e.LoggedAt = time.Unix(loggedAt, 0).UTC()
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

func (r *WeightRepo) Close() error { return r.db.Close() }
