package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRuleRowBarePlaceholderExpandsToFullClass(t *testing.T) {
	rule, err := parseRuleRow([]interface{}{"ei", "ie", "consonant", "vowel", float64(3)}, false)
	require.NoError(t, err)

	assert.Contains(t, rule.BottomBreads, "b")
	assert.Contains(t, rule.BottomBreads, "z")
	assert.NotContains(t, rule.BottomBreads, "consonant")

	assert.Contains(t, rule.TopBreads, "a")
	assert.NotContains(t, rule.TopBreads, "vowel")
}

func TestParseRuleRowLiteralArrayIsTakenVerbatim(t *testing.T) {
	rule, err := parseRuleRow([]interface{}{
		"ei", "ie",
		[]interface{}{"consonant"},
		[]interface{}{"k", "g"},
		float64(3),
	}, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"consonant"}, rule.BottomBreads)
	assert.Equal(t, []string{"k", "g"}, rule.TopBreads)
}

func TestParseRuleRowUnrecognizedPlaceholderIsError(t *testing.T) {
	_, err := parseRuleRow([]interface{}{"ei", "ie", "nonsense", "vowel", float64(3)}, false)
	require.Error(t, err)
}

func TestParseRuleRowConsonantOrBreakIncludesDash(t *testing.T) {
	rule, err := parseRuleRow([]interface{}{"ei", "ie", "consonant_or_break", "letter_or_break", float64(3)}, true)
	require.NoError(t, err)

	assert.Contains(t, rule.BottomBreads, "-")
	assert.Contains(t, rule.TopBreads, "-")
}
