package table

// Table is a fully loaded dataset: the header plus every data row.
type Table struct {
	Source string
	Header []string
	Rows   [][]string

	// lines holds the 1-based source line of each row.
	lines []int
}

// Width returns the number of header columns.
func (t *Table) Width() int {
	return len(t.Header)
}

// Line returns the source line number of row i, or 0 if unknown.
func (t *Table) Line(i int) int {
	if i < 0 || i >= len(t.lines) {
		return 0
	}
	return t.lines[i]
}
