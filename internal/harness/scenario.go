package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Input is the raw table text fed to the loader.
	Input string `yaml:"input"`

	// Options configures the loader.
	Options Options `yaml:"options,omitempty"`

	// ExpectError names the failure the run must end with. Empty means the
	// run must succeed.
	ExpectError string `yaml:"expect_error,omitempty"`

	// Assertions validate the report.
	Assertions []Assertion `yaml:"assertions"`
}

// Options mirrors the loader options in YAML form.
type Options struct {
	Comment    string `yaml:"comment,omitempty"`
	StrictRows bool   `yaml:"strict_rows,omitempty"`
	Normalize  bool   `yaml:"normalize,omitempty"`
}

// Assertion validates one property of the report.
type Assertion struct {
	// Type specifies the assertion type: linked, free, set_count, bijective.
	Type string `yaml:"type"`

	// Columns lists the columns the assertion is about.
	Columns []string `yaml:"columns,omitempty"`

	// Count is the expected number of linked sets (used by set_count).
	Count int `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertLinked    = "linked"
	AssertFree      = "free"
	AssertSetCount  = "set_count"
	AssertBijective = "bijective"
)

// Expected error names for ExpectError.
const (
	ErrorNoHeader        = "no_header"
	ErrorDuplicateColumn = "duplicate_column"
	ErrorRowArity        = "row_arity"
	ErrorDegeneratePair  = "degenerate_pair"
)

// LoadScenario reads and validates a scenario file.
// Unknown fields are rejected so typos in scenario files fail loudly.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := validateScenario(&s); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &s, nil
}

// LoadScenarios loads every *.yaml file in dir, sorted by file name.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("glob scenarios: %w", err)
	}

	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	switch s.ExpectError {
	case "", ErrorNoHeader, ErrorDuplicateColumn, ErrorRowArity, ErrorDegeneratePair:
	default:
		return fmt.Errorf("unknown expect_error %q", s.ExpectError)
	}

	for i, a := range s.Assertions {
		switch a.Type {
		case AssertLinked, AssertBijective:
			if len(a.Columns) < 2 {
				return fmt.Errorf("assertion[%d] %s: needs at least two columns", i, a.Type)
			}
		case AssertFree:
			if len(a.Columns) == 0 {
				return fmt.Errorf("assertion[%d] free: needs columns", i)
			}
		case AssertSetCount:
		default:
			return fmt.Errorf("assertion[%d]: unknown type %q", i, a.Type)
		}
	}
	return nil
}
