package vectorstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// ReadRun returns a run's metadata and its draws in recorded order.
// Returns ErrRunNotFound for an unknown name.
func (s *Store) ReadRun(ctx context.Context, name string) (Run, []string, error) {
	name = norm.NFC.String(name)

	var run Run
	err := s.db.QueryRowContext(ctx, `
		SELECT name, seed, strategy, op, min_value, max_value, buf_len, draw_count
		FROM runs
		WHERE name = ?
	`, name).Scan(
		&run.Name,
		&run.Seed,
		&run.Strategy,
		&run.Op,
		&run.Min,
		&run.Max,
		&run.Len,
		&run.Count,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, nil, fmt.Errorf("run %q: %w", name, ErrRunNotFound)
	}
	if err != nil {
		return Run{}, nil, fmt.Errorf("read run %q: %w", name, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT value
		FROM draws
		WHERE run_name = ?
		ORDER BY idx ASC
	`, name)
	if err != nil {
		return Run{}, nil, fmt.Errorf("query draws of run %q: %w", name, err)
	}
	defer rows.Close()

	values := make([]string, 0, run.Count)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return Run{}, nil, fmt.Errorf("scan draw of run %q: %w", name, err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return Run{}, nil, fmt.Errorf("iterate draws of run %q: %w", name, err)
	}

	return run, values, nil
}

// ListRuns returns all archived runs ordered by name.
// Returns an empty slice (not nil) for an empty archive.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, seed, strategy, op, min_value, max_value, buf_len, draw_count
		FROM runs
		ORDER BY name COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var run Run
		err := rows.Scan(
			&run.Name,
			&run.Seed,
			&run.Strategy,
			&run.Op,
			&run.Min,
			&run.Max,
			&run.Len,
			&run.Count,
		)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return runs, nil
}
