package harness

import (
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/linkset/internal/ir"
	"github.com/roach88/linkset/internal/linkage"
	"github.com/roach88/linkset/internal/table"
)

// Result holds the outcome of one scenario run.
type Result struct {
	Scenario string
	Report   *ir.Report
	Verdicts []linkage.Verdict

	// Err is the pipeline error, if any.
	Err error

	// Failures lists every violated invariant or assertion.
	Failures []string
}

// Pass reports whether the run met every expectation.
func (r *Result) Pass() bool {
	return len(r.Failures) == 0
}

// Run executes a scenario and evaluates its expectations.
// A non-nil error means the scenario itself could not be run; expectation
// failures are reported in Result.Failures.
func Run(s *Scenario) (*Result, error) {
	if s == nil {
		return nil, fmt.Errorf("nil scenario")
	}

	result := &Result{Scenario: s.Name}

	opts := table.Options{
		Comment:    s.Options.Comment,
		StrictRows: s.Options.StrictRows,
		Normalize:  s.Options.Normalize,
	}
	tbl, err := table.Parse(strings.NewReader(s.Input), opts)
	if err == nil {
		var analysis *linkage.Analysis
		analysis, err = linkage.Run(tbl)
		if err == nil {
			result.Report = analysis.Report(tbl)
			result.Verdicts = analysis.Verdicts
		}
	}
	result.Err = err

	if s.ExpectError != "" {
		if got := errorName(err); got != s.ExpectError {
			result.fail("expected error %s, got %v", s.ExpectError, err)
		}
		return result, nil
	}
	if err != nil {
		result.fail("unexpected error: %v", err)
		return result, nil
	}

	result.Failures = append(result.Failures, checkPartition(result.Report)...)
	for _, a := range s.Assertions {
		if msg := evaluate(a, result); msg != "" {
			result.Failures = append(result.Failures, msg)
		}
	}
	return result, nil
}

func (r *Result) fail(format string, args ...any) {
	r.Failures = append(r.Failures, fmt.Sprintf(format, args...))
}

// errorName maps a pipeline error to its scenario name.
func errorName(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, table.ErrNoHeader):
		return ErrorNoHeader
	case errors.Is(err, table.ErrDuplicateColumn):
		return ErrorDuplicateColumn
	case errors.Is(err, table.ErrRowArity):
		return ErrorRowArity
	case errors.Is(err, linkage.ErrDegeneratePair):
		return ErrorDegeneratePair
	default:
		return "unknown"
	}
}
