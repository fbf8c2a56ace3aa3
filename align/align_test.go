package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatioIdenticalStrings(t *testing.T) {
	assert.Equal(t, 100, Ratio("smith", "smith"))
}

func TestRatioEmptyStrings(t *testing.T) {
	assert.Equal(t, 100, Ratio("", ""))
}

func TestRatioCompletelyDifferent(t *testing.T) {
	assert.Equal(t, 0, Ratio("abc", "xyz"))
}

func TestRatioAdjacentTranspositionMatchesFuzzywuzzy(t *testing.T) {
	// Ratcliff/Obershelp matches "br" + "i" + "n" = 4 of 10 combined
	// runes, not the Levenshtein-normalized value.
	assert.Equal(t, 80, Ratio("brian", "brain"))
}

func TestPartialRatioFindsBestWindow(t *testing.T) {
	// "smith" occurs verbatim inside "smithson"
	assert.Equal(t, 100, PartialRatio("smith", "smithson"))
}

func TestScorePairInitialsExactMatch(t *testing.T) {
	assert.Equal(t, 100, ScorePair("a", "a"))
}

func TestScorePairInitialsMismatch(t *testing.T) {
	assert.Equal(t, 0, ScorePair("a", "b"))
}

func TestScorePairDifferingFirstCharSuppressesPartial(t *testing.T) {
	// "bob" is a perfect partial-ratio substring of "abob" but the
	// leading characters differ, so only full ratio applies.
	full := Ratio("bob", "abob")
	got := ScorePair("bob", "abob")
	assert.Equal(t, full, got)
}

func TestAlignCardinalityAndBijectivity(t *testing.T) {
	left := []string{"john", "smith"}
	right := []string{"jon", "smyth", "extra"}

	pairs := Align(left, right)
	assert.Len(t, pairs, 2)

	seenI := map[int]bool{}
	seenJ := map[int]bool{}
	for _, p := range pairs {
		assert.False(t, seenI[p.I], "i indices must be distinct")
		assert.False(t, seenJ[p.J], "j indices must be distinct")
		seenI[p.I] = true
		seenJ[p.J] = true
	}
}

func TestAlignPicksBestMatchingOverAlternative(t *testing.T) {
	left := []string{"john", "smith"}
	right := []string{"smyth", "jon"}

	pairs := Align(left, right)
	byI := map[int]Pair{}
	for _, p := range pairs {
		byI[p.I] = p
	}

	require := byI[0]
	assert.Equal(t, 1, require.J) // "john" aligns to "jon" at index 1
	assert.Equal(t, 0, byI[1].J)  // "smith" aligns to "smyth" at index 0
}

func TestAlignEmptySide(t *testing.T) {
	assert.Nil(t, Align(nil, []string{"a"}))
	assert.Nil(t, Align([]string{"a"}, nil))
}

func TestAverageScore(t *testing.T) {
	pairs := []Pair{{S: 100}, {S: 50}}
	assert.Equal(t, 75.0, AverageScore(pairs))
	assert.Equal(t, 0.0, AverageScore(nil))
}
