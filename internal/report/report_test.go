package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/roach88/linkset/internal/ir"
	"github.com/roach88/linkset/internal/linkage"
	"github.com/roach88/linkset/internal/table"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func analyze(t *testing.T, input string) *ir.Report {
	t.Helper()
	tbl, err := table.Parse(strings.NewReader(input), table.Options{})
	require.NoError(t, err)
	r, err := linkage.Analyze(tbl)
	require.NoError(t, err)
	return r
}

func TestWriteText_Golden(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bijective", "id  code\n1   A\n2   B\n3   C\n"},
		{"non_bijective", "id  flag\n1   X\n2   X\n3   Y\n"},
		{"mixed", "id code name flag\n1 A x X\n2 B y X\n3 C z Y\n"},
		{"two_groups", "a b c d\n1 x 5 m\n2 x 6 m\n3 y 7 n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteText(&buf, analyze(t, tt.input)))
			newGoldie(t).Assert(t, tt.name, buf.Bytes())
		})
	}
}

func TestWriteText_Deterministic(t *testing.T) {
	input := "e d c b a\n1 1 x 9 p\n2 2 x 8 p\n3 3 y 7 q\n"

	var first bytes.Buffer
	require.NoError(t, WriteText(&first, analyze(t, input)))
	for i := 0; i < 10; i++ {
		var again bytes.Buffer
		require.NoError(t, WriteText(&again, analyze(t, input)))
		assert.Equal(t, first.String(), again.String())
	}
}

func TestWriteJSON_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, analyze(t, "id  code\n1   A\n2   B\n3   C\n")))
	newGoldie(t).Assert(t, "bijective_json", buf.Bytes())
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	r := analyze(t, "id  flag\n1   X\n2   X\n3   Y\n")
	require.NoError(t, WriteYAML(&buf, r))

	var decoded ir.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, []string{"flag", "id"}, decoded.FreeVariables)
	assert.Equal(t, 2, decoded.FreeCount)
	assert.Contains(t, buf.String(), "free_variables:")
}

func TestWrite_Dispatch(t *testing.T) {
	r := analyze(t, "id  code\n1   A\n2   B\n")

	var text, empty bytes.Buffer
	require.NoError(t, Write(&text, r, FormatText))
	require.NoError(t, Write(&empty, r, ""))
	assert.Equal(t, text.String(), empty.String())

	err := Write(&bytes.Buffer{}, r, "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestIsValidFormat(t *testing.T) {
	for _, f := range ValidFormats {
		assert.True(t, IsValidFormat(f))
	}
	assert.False(t, IsValidFormat("csv"))
}
