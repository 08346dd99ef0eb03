package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/roach88/linkset/internal/linkage"
)

// WritePairs renders the per-pair verdicts. Text output is a table with one
// row per ordered pair; JSON is the verdict list.
func WritePairs(w io.Writer, verdicts []linkage.Verdict, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if verdicts == nil {
			verdicts = []linkage.Verdict{}
		}
		return enc.Encode(verdicts)
	case FormatText, "":
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"First", "Second", "Rows", "Pairs", "Distinct First", "Distinct Second", "Bijective"})
		for _, v := range verdicts {
			mark := "no"
			if v.Bijective {
				mark = "yes"
			}
			t.AppendRow(table.Row{v.Pair.First, v.Pair.Second, v.Rows, v.Keys, v.DistinctFirst, v.DistinctSecond, mark})
		}
		t.Render()
		return nil
	default:
		return fmt.Errorf("unknown pairs format %q: must be %s or %s", format, FormatText, FormatJSON)
	}
}
