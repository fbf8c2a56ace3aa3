// Package spelling implements the Spelling Matcher and its consonant-
// skeleton fallback (spec §4.7-4.8). Both operate purely on already
// tokenized, cleaned names; neither touches reference data.
package spelling

import "github.com/teranos/namematch/align"

// PairScoreThreshold is the per-pair score a word-pair alignment must
// exceed to count toward the spelling-match quorum.
const PairScoreThreshold = 80

// PairCountQuorum is the number of qualifying pairs that, on its own,
// declares a spelling match regardless of alignment size.
const PairCountQuorum = 3

// Result records how a spelling comparison was decided, for the
// pipeline's diagnostic trail.
type Result struct {
	Match     bool
	Alignment []align.Pair
	// ViaSkeleton is true when the match (or non-match) was decided by
	// the consonant-skeleton fallback rather than the direct pair count.
	ViaSkeleton bool
}

// Match runs the spelling matcher with the default PairScoreThreshold and
// PairCountQuorum.
func Match(left, right []string) Result {
	return MatchWithThresholds(left, right, PairScoreThreshold, PairCountQuorum)
}

// MatchWithThresholds is Match with the per-pair score threshold and
// quorum count overridable, for callers that source them from
// configuration. Falls through to the consonant skeleton on failure.
func MatchWithThresholds(left, right []string, pairScoreThreshold, pairCountQuorum int) Result {
	alignment := align.Align(left, right)
	k := len(alignment)

	above := 0
	for _, p := range alignment {
		if p.S > pairScoreThreshold {
			above++
		}
	}

	if above >= pairCountQuorum || above == k {
		return Result{Match: true, Alignment: alignment}
	}

	if SkeletonMatch(alignment, left, right) {
		return Result{Match: true, Alignment: alignment, ViaSkeleton: true}
	}

	return Result{Match: false, Alignment: alignment, ViaSkeleton: true}
}

// IsMatch is a convenience wrapper for callers (the pair-aware cleaner)
// that only need the boolean verdict.
func IsMatch(left, right []string) bool {
	return Match(left, right).Match
}
