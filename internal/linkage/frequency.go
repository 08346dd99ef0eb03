package linkage

// ColumnPair is an ordered pair of distinct column names.
// (A, B) and (B, A) are counted independently.
type ColumnPair struct {
	First  string `json:"first"`
	Second string `json:"second"`
}

// ValuePair is one observed combination of tokens for a ColumnPair.
type ValuePair struct {
	First  string
	Second string
}

// Occurrences maps each observed value pair to the number of rows it
// appeared in. Every present key has a count of at least one.
type Occurrences map[ValuePair]int

// FrequencyTable holds the occurrence counts for every ordered column pair.
type FrequencyTable struct {
	pairs  []ColumnPair
	counts map[ColumnPair]Occurrences
}

// CountFrequencies counts value co-occurrence for every ordered pair of
// distinct header positions over all rows.
//
// A row shorter than the header contributes only to pairs whose positions
// both fall inside the row. Tokens past the header width are ignored.
func CountFrequencies(header []string, rows [][]string) *FrequencyTable {
	ft := &FrequencyTable{
		pairs:  make([]ColumnPair, 0, len(header)*(len(header)-1)),
		counts: make(map[ColumnPair]Occurrences, len(header)*len(header)),
	}
	for i, first := range header {
		for j, second := range header {
			if i == j {
				continue
			}
			pair := ColumnPair{First: first, Second: second}
			ft.pairs = append(ft.pairs, pair)
			ft.counts[pair] = make(Occurrences)
		}
	}

	for _, row := range rows {
		width := min(len(header), len(row))
		for i := 0; i < width; i++ {
			for j := 0; j < width; j++ {
				if i == j {
					continue
				}
				pair := ColumnPair{First: header[i], Second: header[j]}
				ft.counts[pair][ValuePair{First: row[i], Second: row[j]}]++
			}
		}
	}
	return ft
}

// Pairs returns every ordered column pair in permutation order.
func (ft *FrequencyTable) Pairs() []ColumnPair {
	return ft.pairs
}

// Occurrences returns the value-pair counts for pair.
// Returns nil for a pair the table does not know.
func (ft *FrequencyTable) Occurrences(pair ColumnPair) Occurrences {
	return ft.counts[pair]
}

// Len returns the number of ordered pairs in the table.
func (ft *FrequencyTable) Len() int {
	return len(ft.pairs)
}
