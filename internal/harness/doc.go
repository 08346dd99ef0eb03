// Package harness provides conformance testing for linkset analyses.
//
// The harness loads scenarios from YAML, runs the full pipeline on each
// scenario's input, checks the partition invariants, and evaluates the
// scenario's assertions.
//
// # Scenario Format
//
//	name: scenario_name
//	description: "What this scenario validates"
//	input: |
//	  id code
//	  1  A
//	options:
//	  comment: "#"
//	  strict_rows: false
//	  normalize: false
//	expect_error: degenerate_pair   # optional
//	assertions:
//	  - type: linked
//	    columns: [code, id]
//	  - type: free
//	    columns: [flag]
//	  - type: set_count
//	    count: 1
//
// # Assertion Types
//
//   - linked: The columns form exactly one linked set
//   - free: Every column is a free variable
//   - set_count: The report has exactly Count linked sets
//   - bijective: Every ordered pair among the columns classified as bijective
//
// # Invariants
//
// Every successful run is checked for the partition property: each header
// column appears in a linked set or among the free variables, never both,
// and LinkedCount + FreeCount equals Total.
//
// # Golden Files
//
// RunWithGolden compares the text report against
// testdata/golden/{scenario.Name}.golden. Regenerate with:
//
//	go test ./internal/harness -update
package harness
