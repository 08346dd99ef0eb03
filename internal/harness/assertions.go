package harness

import (
	"fmt"
	"slices"

	"github.com/roach88/linkset/internal/ir"
	"github.com/roach88/linkset/internal/linkage"
)

// checkPartition verifies that every header column is placed exactly once.
func checkPartition(r *ir.Report) []string {
	var failures []string

	placed := make(map[string]int, len(r.Header))
	for _, set := range r.LinkedSets {
		if len(set) < 2 {
			failures = append(failures, fmt.Sprintf("partition: linked set %v has fewer than two columns", set))
		}
		for _, name := range set {
			placed[name]++
		}
	}
	for _, name := range r.FreeVariables {
		if placed[name] > 0 {
			failures = append(failures, fmt.Sprintf("partition: %s is both linked and free", name))
		}
		placed[name]++
	}
	for _, name := range r.Header {
		if placed[name] != 1 {
			failures = append(failures, fmt.Sprintf("partition: %s placed %d times", name, placed[name]))
		}
	}
	if r.LinkedCount+r.FreeCount != r.Total {
		failures = append(failures, fmt.Sprintf("partition: %d linked + %d free != %d total",
			r.LinkedCount, r.FreeCount, r.Total))
	}
	return failures
}

// evaluate returns a failure message, or "" when the assertion holds.
func evaluate(a Assertion, result *Result) string {
	r := result.Report
	switch a.Type {
	case AssertLinked:
		want := slices.Sorted(slices.Values(a.Columns))
		for _, set := range r.LinkedSets {
			if slices.Equal([]string(set), want) {
				return ""
			}
		}
		return fmt.Sprintf("linked: no linked set equals %v (got %v)", want, r.LinkedSets)

	case AssertFree:
		for _, name := range a.Columns {
			if !slices.Contains(r.FreeVariables, name) {
				return fmt.Sprintf("free: %s is not a free variable (free: %v)", name, r.FreeVariables)
			}
		}
		return ""

	case AssertSetCount:
		if r.SetCount != a.Count {
			return fmt.Sprintf("set_count: expected %d, got %d", a.Count, r.SetCount)
		}
		return ""

	case AssertBijective:
		bijective := make(map[linkage.ColumnPair]bool, len(result.Verdicts))
		for _, v := range result.Verdicts {
			bijective[v.Pair] = v.Bijective
		}
		for _, first := range a.Columns {
			for _, second := range a.Columns {
				if first == second {
					continue
				}
				if !bijective[linkage.ColumnPair{First: first, Second: second}] {
					return fmt.Sprintf("bijective: (%s, %s) is not a bijection", first, second)
				}
			}
		}
		return ""

	default:
		return fmt.Sprintf("unknown assertion type %q", a.Type)
	}
}
