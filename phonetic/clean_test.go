package phonetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanIPACollapsesDoubledConsonants(t *testing.T) {
	assert.Equal(t, "smɪθ", CleanIPA("smmɪθ"))
}

func TestCleanIPARewritesVowelClusters(t *testing.T) {
	assert.Equal(t, "i", CleanIPA("ɛɛ"))
	assert.Equal(t, "ɪ", CleanIPA("ɪɪ"))
	assert.Equal(t, "i", CleanIPA("iɪ"))
}

func TestCleanIPACollapsesNgG(t *testing.T) {
	assert.Equal(t, "rɪŋ", CleanIPA("rɪŋg"))
}

func TestCleanIPADropsCommas(t *testing.T) {
	assert.Equal(t, "ʤan", CleanIPA("ʤ,an,"))
}
