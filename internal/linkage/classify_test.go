package linkage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		occ       Occurrences
		bijective bool
		keys      int
		first     int
		second    int
	}{
		{
			name:      "one to one",
			occ:       Occurrences{{"1", "A"}: 1, {"2", "B"}: 1, {"3", "C"}: 1},
			bijective: true, keys: 3, first: 3, second: 3,
		},
		{
			name:      "repeated pairs still bijective",
			occ:       Occurrences{{"1", "A"}: 4, {"2", "B"}: 2},
			bijective: true, keys: 2, first: 2, second: 2,
		},
		{
			name:      "many to one",
			occ:       Occurrences{{"1", "X"}: 1, {"2", "X"}: 1, {"3", "Y"}: 1},
			bijective: false, keys: 3, first: 3, second: 2,
		},
		{
			name:      "one to many",
			occ:       Occurrences{{"1", "X"}: 1, {"1", "Y"}: 1},
			bijective: false, keys: 2, first: 1, second: 2,
		},
		{
			name:      "single observation",
			occ:       Occurrences{{"1", "X"}: 7},
			bijective: true, keys: 1, first: 1, second: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Classify(ColumnPair{"a", "b"}, tt.occ)
			require.NoError(t, err)
			assert.Equal(t, tt.bijective, v.Bijective)
			assert.Equal(t, tt.keys, v.Keys)
			assert.Equal(t, tt.first, v.DistinctFirst)
			assert.Equal(t, tt.second, v.DistinctSecond)

			ok, err := IsBijection(tt.occ)
			require.NoError(t, err)
			assert.Equal(t, tt.bijective, ok)
		})
	}
}

func TestClassify_RowsSumCounts(t *testing.T) {
	v, err := Classify(ColumnPair{"a", "b"}, Occurrences{{"1", "A"}: 4, {"2", "B"}: 2})
	require.NoError(t, err)
	assert.Equal(t, 6, v.Rows)
}

func TestClassify_DegeneratePair(t *testing.T) {
	pair := ColumnPair{"left", "right"}

	_, err := Classify(pair, Occurrences{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDegeneratePair))

	var pairErr *PairError
	require.True(t, errors.As(err, &pairErr))
	assert.Equal(t, pair, pairErr.Pair)
	assert.Contains(t, err.Error(), "(left, right)")

	_, err = IsBijection(nil)
	assert.True(t, errors.Is(err, ErrDegeneratePair))
}

func TestClassifyAll_StopsOnDegenerate(t *testing.T) {
	ft := CountFrequencies([]string{"a", "b"}, nil)

	verdicts, err := ClassifyAll(ft)
	require.Error(t, err)
	assert.Nil(t, verdicts)
	assert.True(t, errors.Is(err, ErrDegeneratePair))
}

func TestClassifyAll_Symmetric(t *testing.T) {
	header := []string{"id", "code", "flag"}
	rows := [][]string{{"1", "A", "X"}, {"2", "B", "X"}, {"3", "C", "Y"}}

	verdicts, err := ClassifyAll(CountFrequencies(header, rows))
	require.NoError(t, err)

	byPair := make(map[ColumnPair]bool, len(verdicts))
	for _, v := range verdicts {
		byPair[v.Pair] = v.Bijective
	}
	for pair, bijective := range byPair {
		reverse := ColumnPair{First: pair.Second, Second: pair.First}
		assert.Equal(t, bijective, byPair[reverse], "pair %v disagrees with its reverse", pair)
	}
	assert.True(t, byPair[ColumnPair{"id", "code"}])
	assert.False(t, byPair[ColumnPair{"id", "flag"}])
}
