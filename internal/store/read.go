package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/roach88/linkset/internal/ir"
)

// ErrRunNotFound is returned by ReadRun when no run has the requested id.
var ErrRunNotFound = errors.New("run not found")

const runColumns = `seq, id, source, dataset_hash, report_hash, version, report`

// ReadRun returns the run with the given id.
func (s *Store) ReadRun(ctx context.Context, id string) (ir.RunRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ir.RunRecord{}, fmt.Errorf("read run %s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return ir.RunRecord{}, fmt.Errorf("read run %s: %w", id, err)
	}
	return run, nil
}

// ListRuns returns every run in sequence order.
//
// Returns an empty slice (not nil) if the store has no runs.
func (s *Store) ListRuns(ctx context.Context) ([]ir.RunRecord, error) {
	return s.queryRuns(ctx, `
		SELECT `+runColumns+`
		FROM runs
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`)
}

// RunsForDataset returns every run over the dataset with the given content
// hash, in sequence order.
func (s *Store) RunsForDataset(ctx context.Context, datasetHash string) ([]ir.RunRecord, error) {
	return s.queryRuns(ctx, `
		SELECT `+runColumns+`
		FROM runs
		WHERE dataset_hash = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, datasetHash)
}

// RunsLinking returns every run in which column was placed in a linked set,
// in sequence order.
func (s *Store) RunsLinking(ctx context.Context, column string) ([]ir.RunRecord, error) {
	return s.queryRuns(ctx, `
		SELECT `+runColumns+`
		FROM runs
		WHERE id IN (SELECT run_id FROM linked_columns WHERE column_name = ?)
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, column)
}

func (s *Store) queryRuns(ctx context.Context, query string, args ...any) ([]ir.RunRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []ir.RunRecord{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (ir.RunRecord, error) {
	var (
		run        ir.RunRecord
		reportJSON string
	)
	if err := row.Scan(&run.Seq, &run.ID, &run.Source, &run.DatasetHash, &run.ReportHash, &run.Version, &reportJSON); err != nil {
		return ir.RunRecord{}, err
	}
	if err := json.Unmarshal([]byte(reportJSON), &run.Report); err != nil {
		return ir.RunRecord{}, fmt.Errorf("unmarshal report for run %s: %w", run.ID, err)
	}
	return run, nil
}
