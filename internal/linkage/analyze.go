package linkage

import (
	"log/slog"

	"github.com/roach88/linkset/internal/ir"
	"github.com/roach88/linkset/internal/table"
)

// Analysis holds every intermediate stage of one run.
type Analysis struct {
	Frequencies *FrequencyTable
	Verdicts    []Verdict
	Graph       *Graph
	Partition   Partition
}

// Run executes the full pipeline over t.
// Any degenerate pair aborts the run; there is no partial result.
func Run(t *table.Table) (*Analysis, error) {
	ft := CountFrequencies(t.Header, t.Rows)
	slog.Debug("frequencies counted",
		"columns", len(t.Header),
		"rows", len(t.Rows),
		"pairs", ft.Len())

	verdicts, err := ClassifyAll(ft)
	if err != nil {
		return nil, err
	}

	g := BuildGraph(verdicts)
	for _, source := range g.Sources() {
		for _, n := range g.Neighbors(source) {
			if !g.HasEdge(n, source) {
				slog.Warn("asymmetric bijection", "from", source, "to", n)
			}
		}
	}
	slog.Debug("bijection graph built", "sources", len(g.Sources()))

	p := PartitionColumns(t.Header, g)
	slog.Debug("columns partitioned",
		"linked_sets", len(p.LinkedSets),
		"linked_columns", p.Seen,
		"free", len(p.FreeVariables))

	return &Analysis{
		Frequencies: ft,
		Verdicts:    verdicts,
		Graph:       g,
		Partition:   p,
	}, nil
}

// Report converts the analysis into the published report for t.
func (a *Analysis) Report(t *table.Table) *ir.Report {
	sets := make([]ir.LinkedSet, len(a.Partition.LinkedSets))
	for i, set := range a.Partition.LinkedSets {
		sets[i] = ir.LinkedSet(set)
	}
	return &ir.Report{
		Source:        t.Source,
		Header:        t.Header,
		LinkedSets:    sets,
		FreeVariables: a.Partition.FreeVariables,
		Total:         len(t.Header),
		LinkedCount:   a.Partition.Seen,
		SetCount:      len(sets),
		FreeCount:     len(a.Partition.FreeVariables),
	}
}

// Analyze runs the pipeline and returns only the report.
func Analyze(t *table.Table) (*ir.Report, error) {
	a, err := Run(t)
	if err != nil {
		return nil, err
	}
	return a.Report(t), nil
}
