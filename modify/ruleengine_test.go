package modify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teranos/namematch/refdata"
)

func TestApplyRuleToPairRewritesBothToMeatB(t *testing.T) {
	rule := refdata.Rule{
		MeatA:        "ei",
		MeatB:        "ie",
		BottomBreads: []string{"r"},
		TopBreads:    []string{"v"},
		MinLen:       3,
	}
	left, right := ApplyRuleToPair(rule, "reiving", "rieving")
	assert.Equal(t, left, right)
	assert.Contains(t, left, "ie")
}

func TestApplyRuleToPairSkipsBelowMinLen(t *testing.T) {
	rule := refdata.Rule{MeatA: "ei", MeatB: "ie", BottomBreads: []string{"r"}, TopBreads: []string{"v"}, MinLen: 20}
	left, right := ApplyRuleToPair(rule, "reiving", "rieving")
	assert.Equal(t, "reiving", left)
	assert.Equal(t, "rieving", right)
}

func TestApplyRuleToPairSkipsIdenticalMeat(t *testing.T) {
	rule := refdata.Rule{MeatA: "ei", MeatB: "ie", BottomBreads: []string{"r"}, TopBreads: []string{"v"}, MinLen: 1}
	left, right := ApplyRuleToPair(rule, "reiving", "reiving")
	assert.Equal(t, "reiving", left)
	assert.Equal(t, "reiving", right)
}
