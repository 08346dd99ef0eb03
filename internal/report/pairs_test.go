package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/linkset/internal/linkage"
	"github.com/roach88/linkset/internal/table"
)

func verdicts(t *testing.T, input string) []linkage.Verdict {
	t.Helper()
	tbl, err := table.Parse(strings.NewReader(input), table.Options{})
	require.NoError(t, err)
	a, err := linkage.Run(tbl)
	require.NoError(t, err)
	return a.Verdicts
}

func TestWritePairs_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePairs(&buf, verdicts(t, "id flag\n1 X\n2 X\n3 Y\n"), FormatText))

	out := buf.String()
	assert.Contains(t, out, "FIRST")
	assert.Contains(t, out, "BIJECTIVE")
	assert.Contains(t, out, "flag")
	assert.Contains(t, out, "no")
	assert.NotContains(t, out, "yes")
}

func TestWritePairs_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePairs(&buf, verdicts(t, "id code\n1 A\n2 B\n"), FormatJSON))

	var decoded []linkage.Verdict
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, linkage.ColumnPair{First: "id", Second: "code"}, decoded[0].Pair)
	assert.True(t, decoded[0].Bijective)
	assert.Equal(t, 2, decoded[0].Rows)
}

func TestWritePairs_EmptyJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePairs(&buf, nil, FormatJSON))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWritePairs_UnknownFormat(t *testing.T) {
	err := WritePairs(&bytes.Buffer{}, nil, FormatYAML)
	assert.Error(t, err)
}
