package pronounce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/namematch/align"
	"github.com/teranos/namematch/phonetic"
	"github.com/teranos/namematch/refdata"
)

func testEncoder(t *testing.T) *phonetic.Encoder {
	tables := &refdata.Tables{
		NamesToIPA: map[string]string{
			"john": "ʤan",
			"jon":  "ʤan",
			"smith": "smɪθ",
			"smyth": "smɪθ",
		},
	}
	enc, err := phonetic.NewEncoder(tables, 0)
	require.NoError(t, err)
	return enc
}

func TestMatchIdenticalPronunciation(t *testing.T) {
	enc := testEncoder(t)
	tables := &refdata.Tables{}
	left := []string{"john", "smith"}
	right := []string{"jon", "smyth"}
	original := align.Align(left, right)
	result := Match(tables, enc, left, right, original)
	assert.True(t, result.Match)
}

func TestMatchDissimilarPronunciation(t *testing.T) {
	enc := testEncoder(t)
	tables := &refdata.Tables{}
	left := []string{"xavier"}
	right := []string{"bartholomew"}
	original := align.Align(left, right)
	result := Match(tables, enc, left, right, original)
	assert.False(t, result.Match)
}

func TestWithInitialOverridePreservesInitialScore(t *testing.T) {
	original := []align.Pair{{I: 0, J: 0, S: 100}}
	ipaAlignment := []align.Pair{{I: 0, J: 0, S: 40}}
	out := withInitialOverride(ipaAlignment, original)
	assert.Equal(t, 100, out[0].S)
}
