package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/linkset/internal/ir"
)

// createTestStore creates a new store in a temp directory for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestRun creates a run with one linked set {code, id} and one free
// variable.
func createTestRun(id, datasetHash string) ir.RunRecord {
	report := ir.Report{
		Source:        "data.txt",
		Header:        []string{"id", "code", "flag"},
		LinkedSets:    []ir.LinkedSet{{"code", "id"}},
		FreeVariables: []string{"flag"},
		Total:         3,
		LinkedCount:   2,
		SetCount:      1,
		FreeCount:     1,
	}
	return ir.RunRecord{
		ID:          id,
		Source:      "data.txt",
		DatasetHash: datasetHash,
		ReportHash:  ir.MustReportHash(&report),
		Version:     ir.ToolVersion,
		Report:      report,
	}
}
