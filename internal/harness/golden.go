package harness

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/linkset/internal/report"
)

// RunWithGolden executes a scenario, fails the test on any expectation
// failure, and compares the text report against
// testdata/golden/{scenario.Name}.golden.
//
// Scenarios that expect an error have no report and skip the comparison.
func RunWithGolden(t *testing.T, scenario *Scenario) *Result {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		t.Fatalf("run scenario %s: %v", scenario.Name, err)
	}
	for _, failure := range result.Failures {
		t.Errorf("%s: %s", scenario.Name, failure)
	}
	if result.Report == nil {
		return result
	}

	var buf bytes.Buffer
	if err := report.WriteText(&buf, result.Report); err != nil {
		t.Fatalf("render report: %v", err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, buf.Bytes())
	return result
}
