// Package pronounce implements the Pronunciation Matcher (spec §4.14):
// IPA transcription, joint rule rewriting, and a ratio-based alignment
// with an initial-equality override inherited from the spelling pass.
package pronounce

import (
	"github.com/teranos/namematch/align"
	"github.com/teranos/namematch/modify"
	"github.com/teranos/namematch/phonetic"
	"github.com/teranos/namematch/refdata"
)

const (
	lowThresholdSmallK = 80
	lowThresholdLargeK = 75
	smallKBound        = 2
)

// Result records the outcome of a pronunciation comparison.
type Result struct {
	Match     bool
	LeftIPA   []string
	RightIPA  []string
	Alignment []align.Pair
}

// Match encodes and aligns the two cleaned, tokenized names by
// pronunciation, using the default low-score thresholds. original is the
// spelling-stage alignment over the same tokens; wherever it marked a
// pair as an initial (score 0 or 100), that score overrides the IPA
// alignment's own score for the corresponding pair.
func Match(tables *refdata.Tables, encoder *phonetic.Encoder, left, right []string, original []align.Pair) Result {
	return MatchWithThresholds(tables, encoder, left, right, original, lowThresholdSmallK, lowThresholdLargeK)
}

// MatchWithThresholds is Match with the low-score floors for k<=2 and
// k>2 overridable, for callers that source them from configuration.
func MatchWithThresholds(tables *refdata.Tables, encoder *phonetic.Encoder, left, right []string, original []align.Pair, lowK2, lowKGt2 int) Result {
	leftIPA := encodeAndClean(encoder, left)
	rightIPA := encodeAndClean(encoder, right)

	applyIPARulesJointly(tables, leftIPA, rightIPA, original)

	alignment := align.AlignByRatio(leftIPA, rightIPA)
	alignment = withInitialOverride(alignment, original)

	k := len(alignment)
	lowest := 100
	for _, p := range alignment {
		if p.S < lowest {
			lowest = p.S
		}
	}
	if k == 0 {
		lowest = 0
	}

	var match bool
	if k <= smallKBound {
		match = lowest >= lowK2
	} else {
		match = lowest > lowKGt2
	}

	return Result{Match: match, LeftIPA: leftIPA, RightIPA: rightIPA, Alignment: alignment}
}

func encodeAndClean(encoder *phonetic.Encoder, tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = phonetic.CleanIPA(encoder.EncodeToken(t))
	}
	return out
}

// applyIPARulesJointly runs the rule engine over the IPA tokens that
// correspond, position for position, to the original spelling alignment -
// encoding and IPA cleaning preserve token order and count.
func applyIPARulesJointly(tables *refdata.Tables, leftIPA, rightIPA []string, original []align.Pair) {
	for _, p := range original {
		if p.I >= len(leftIPA) || p.J >= len(rightIPA) {
			continue
		}
		for _, rule := range tables.IPARules {
			leftIPA[p.I], rightIPA[p.J] = modify.ApplyRuleToPair(rule, leftIPA[p.I], rightIPA[p.J])
		}
	}
}

// withInitialOverride substitutes the original alignment's score for any
// pair it marked as an initial (0 or 100), identified by matching token
// indices against the IPA alignment.
func withInitialOverride(ipaAlignment, original []align.Pair) []align.Pair {
	if len(original) == 0 {
		return ipaAlignment
	}

	initialScore := make(map[[2]int]int, len(original))
	for _, p := range original {
		if p.S == 0 || p.S == 100 {
			initialScore[[2]int{p.I, p.J}] = p.S
		}
	}

	out := make([]align.Pair, len(ipaAlignment))
	for i, p := range ipaAlignment {
		if s, ok := initialScore[[2]int{p.I, p.J}]; ok {
			out[i] = align.Pair{I: p.I, J: p.J, S: s}
		} else {
			out[i] = p
		}
	}
	return out
}
