package linkage

import (
	"errors"
	"fmt"
)

// ErrDegeneratePair is returned when a column pair has no observed values.
// The predicate is undefined there, so it is never coerced to false.
var ErrDegeneratePair = errors.New("degenerate column pair: no co-occurring values")

// PairError identifies the column pair a classification failed on.
type PairError struct {
	Pair ColumnPair
	Err  error
}

func (e *PairError) Error() string {
	return fmt.Sprintf("classify (%s, %s): %v", e.Pair.First, e.Pair.Second, e.Err)
}

func (e *PairError) Unwrap() error {
	return e.Err
}

// Verdict is the bijection classification of one ordered column pair.
type Verdict struct {
	Pair           ColumnPair `json:"pair"`
	Keys           int        `json:"keys"`            // distinct value pairs
	DistinctFirst  int        `json:"distinct_first"`  // distinct values of Pair.First
	DistinctSecond int        `json:"distinct_second"` // distinct values of Pair.Second
	Rows           int        `json:"rows"`            // rows that contributed
	Bijective      bool       `json:"bijective"`
}

// Classify applies the bijection predicate to the occurrences of pair.
func Classify(pair ColumnPair, occ Occurrences) (Verdict, error) {
	if len(occ) == 0 {
		return Verdict{}, &PairError{Pair: pair, Err: ErrDegeneratePair}
	}

	firsts := make(map[string]struct{}, len(occ))
	seconds := make(map[string]struct{}, len(occ))
	rows := 0
	for vp, count := range occ {
		firsts[vp.First] = struct{}{}
		seconds[vp.Second] = struct{}{}
		rows += count
	}

	v := Verdict{
		Pair:           pair,
		Keys:           len(occ),
		DistinctFirst:  len(firsts),
		DistinctSecond: len(seconds),
		Rows:           rows,
	}
	v.Bijective = v.DistinctFirst == v.Keys && v.DistinctSecond == v.Keys
	return v, nil
}

// IsBijection reports whether occ describes a one-to-one correspondence
// over the observed values.
//
// Only existence of a value pair matters; counts are ignored.
func IsBijection(occ Occurrences) (bool, error) {
	v, err := Classify(ColumnPair{}, occ)
	if err != nil {
		return false, err
	}
	return v.Bijective, nil
}

// ClassifyAll classifies every pair of ft in permutation order.
// Stops at the first degenerate pair.
func ClassifyAll(ft *FrequencyTable) ([]Verdict, error) {
	verdicts := make([]Verdict, 0, ft.Len())
	for _, pair := range ft.Pairs() {
		v, err := Classify(pair, ft.Occurrences(pair))
		if err != nil {
			return nil, err
		}
		verdicts = append(verdicts, v)
	}
	return verdicts, nil
}
