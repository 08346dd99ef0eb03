package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/roach88/linkset/internal/ir"
)

// WriteRun inserts a run record and its linked columns, returning the
// sequence number assigned to the run.
//
// Uses ON CONFLICT(id) DO NOTHING for idempotency: writing the same id twice
// returns the original seq and leaves the stored record unchanged.
func (s *Store) WriteRun(ctx context.Context, run ir.RunRecord) (int64, error) {
	reportJSON, err := json.Marshal(run.Report)
	if err != nil {
		return 0, fmt.Errorf("write run: marshal report: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("write run: begin: %w", err)
	}
	defer tx.Rollback()

	r := run.Report
	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs
		(id, source, dataset_hash, report_hash, version, total, linked_count, set_count, free_count, report)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.Source,
		run.DatasetHash,
		run.ReportHash,
		run.Version,
		r.Total,
		r.LinkedCount,
		r.SetCount,
		r.FreeCount,
		string(reportJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("write run: %w", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("write run: rows affected: %w", err)
	}

	// An existing run keeps the linked columns it was stored with.
	if inserted > 0 {
		if err := writeLinkedColumns(ctx, tx, run.ID, r.LinkedSets); err != nil {
			return 0, err
		}
	}

	var seq int64
	if err := tx.QueryRowContext(ctx, `SELECT seq FROM runs WHERE id = ?`, run.ID).Scan(&seq); err != nil {
		return 0, fmt.Errorf("write run: read seq: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("write run: commit: %w", err)
	}
	return seq, nil
}

// writeLinkedColumns indexes every column of every linked set under runID.
func writeLinkedColumns(ctx context.Context, tx *sql.Tx, runID string, sets []ir.LinkedSet) error {
	for i, set := range sets {
		for _, column := range set {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO linked_columns (run_id, set_index, column_name)
				VALUES (?, ?, ?)
				ON CONFLICT DO NOTHING
			`, runID, i, column)
			if err != nil {
				return fmt.Errorf("write run: linked column %q: %w", column, err)
			}
		}
	}
	return nil
}
