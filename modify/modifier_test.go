package modify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teranos/namematch/align"
	"github.com/teranos/namematch/refdata"
)

func TestFixIEEndingsReplacesTrailingIEWithY(t *testing.T) {
	out := fixIEEndings([]string{"stephanie", "jo"})
	assert.Equal(t, []string{"stephany", "jo"}, out)
}

func TestHandleOrConstructPicksBetterVariant(t *testing.T) {
	left, right := handleOrConstruct("mary or maria smith", "maria smith")
	assert.Equal(t, "maria smith", left)
	assert.Equal(t, "maria smith", right)
}

func TestHandleOrConstructNoOpWhenBothOrNeitherHaveOr(t *testing.T) {
	left, right := handleOrConstruct("mary smith", "maria smith")
	assert.Equal(t, "mary smith", left)
	assert.Equal(t, "maria smith", right)
}

func TestVowelRepairFixesSinglePositionVowelSwap(t *testing.T) {
	left := []string{"leanne"}
	right := []string{"leonne"}
	vowelRepair(left, right, onePair())
	assert.Equal(t, left[0], right[0])
}

func TestAdjacentSwapRepairFixesTranspositionAtExactRatioGuard(t *testing.T) {
	// A two-position adjacent transposition on length-5 tokens scores
	// exactly 80 under Ratcliff/Obershelp ratio ("br"+"i"+"n" = 4 of 10
	// runes), matching the rule's guard, so the repair fires.
	left := []string{"brian"}
	right := []string{"brain"}
	adjacentSwapRepair(left, right, onePair())
	assert.Equal(t, "brain", left[0])
}

func TestAdjacentSwapRepairLeavesNonTranspositionUntouched(t *testing.T) {
	// Same length and same ratio guard, but only one position differs, so
	// there is no adjacent transposition and no repair applies.
	left := []string{"brian"}
	right := []string{"bruan"}
	adjacentSwapRepair(left, right, onePair())
	assert.Equal(t, "brian", left[0])
}

func TestFirstCharRepairFixesLeadingCharDifference(t *testing.T) {
	left := []string{"cichael"}
	right := []string{"michael"}
	firstCharRepair(left, right, onePair())
	assert.Equal(t, "michael", left[0])
}

func TestModifyAppliesSpellingRules(t *testing.T) {
	tables := &refdata.Tables{
		SpellingRules: []refdata.Rule{
			{MeatA: "ei", MeatB: "ie", BottomBreads: []string{"r"}, TopBreads: []string{"v"}, MinLen: 1},
		},
	}
	left, right := Modify(tables, []string{"reiving"}, []string{"rieving"})
	assert.Equal(t, left, right)
}

func onePair() []align.Pair {
	return []align.Pair{{I: 0, J: 0, S: 0}}
}
