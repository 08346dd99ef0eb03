package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/linkset/internal/ir"
)

func TestReadRun_RoundTrip(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	run := createTestRun("run-1", "hash-a")
	seq, err := s.WriteRun(ctx, run)
	require.NoError(t, err)

	stored, err := s.ReadRun(ctx, "run-1")
	require.NoError(t, err)

	run.Seq = seq
	assert.Equal(t, run, stored)
}

func TestReadRun_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.ReadRun(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRunNotFound))
	assert.Contains(t, err.Error(), "missing")
}

func TestListRuns_Empty(t *testing.T) {
	s := createTestStore(t)

	runs, err := s.ListRuns(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, runs)
	assert.Empty(t, runs)
}

func TestListRuns_SeqOrder(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	// Ids deliberately sort opposite to insertion order.
	for _, id := range []string{"run-c", "run-b", "run-a"} {
		_, err := s.WriteRun(ctx, createTestRun(id, "hash-a"))
		require.NoError(t, err)
	}

	runs, err := s.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "run-c", runs[0].ID)
	assert.Equal(t, "run-b", runs[1].ID)
	assert.Equal(t, "run-a", runs[2].ID)
	assert.Less(t, runs[0].Seq, runs[1].Seq)
}

func TestRunsForDataset(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	for id, hash := range map[string]string{"run-1": "hash-a", "run-2": "hash-b"} {
		_, err := s.WriteRun(ctx, createTestRun(id, hash))
		require.NoError(t, err)
	}

	runs, err := s.RunsForDataset(ctx, "hash-b")
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "run-2", runs[0].ID)
}

func TestRunsLinking(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	linked := createTestRun("run-linked", "hash-a")
	free := createTestRun("run-free", "hash-b")
	free.Report.LinkedSets = []ir.LinkedSet{}
	free.Report.FreeVariables = []string{"code", "flag", "id"}

	for _, run := range []ir.RunRecord{linked, free} {
		_, err := s.WriteRun(ctx, run)
		require.NoError(t, err)
	}

	runs, err := s.RunsLinking(ctx, "code")
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "run-linked", runs[0].ID)

	runs, err = s.RunsLinking(ctx, "flag")
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestFixedGenerator(t *testing.T) {
	gen := NewFixedGenerator("a", "b")
	assert.Equal(t, "a", gen.Generate())
	assert.Equal(t, "b", gen.Generate())
	assert.Panics(t, func() { gen.Generate() })
}

func TestUUIDv7Generator(t *testing.T) {
	gen := UUIDv7Generator{}
	a, b := gen.Generate(), gen.Generate()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
