package vectorstore

import (
	"context"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// WriteRun inserts a run and its draws in a single transaction: either
// the run and every draw land, or nothing does.
//
// Run names are NFC normalized before use so the archive key is stable
// regardless of how a caller's input was encoded. A name that already
// exists returns ErrDuplicateRun.
func (s *Store) WriteRun(ctx context.Context, run Run, values []string) error {
	run.Name = norm.NFC.String(run.Name)
	run.Count = len(values)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin write run: %w", err)
	}
	defer tx.Rollback()

	// Probe first so a duplicate reports as ErrDuplicateRun instead of
	// a driver-specific constraint error.
	var exists int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM runs WHERE name = ?`, run.Name).Scan(&exists)
	if err != nil {
		return fmt.Errorf("probe run %q: %w", run.Name, err)
	}
	if exists > 0 {
		return fmt.Errorf("run %q: %w", run.Name, ErrDuplicateRun)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs
		(name, seed, strategy, op, min_value, max_value, buf_len, draw_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.Name,
		run.Seed,
		run.Strategy,
		run.Op,
		run.Min,
		run.Max,
		run.Len,
		run.Count,
	)
	if err != nil {
		return fmt.Errorf("insert run %q: %w", run.Name, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO draws (run_name, idx, value) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare draw insert: %w", err)
	}
	defer stmt.Close()

	for i, v := range values {
		if _, err := stmt.ExecContext(ctx, run.Name, i, v); err != nil {
			return fmt.Errorf("insert draw %d of run %q: %w", i, run.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run %q: %w", run.Name, err)
	}
	return nil
}
