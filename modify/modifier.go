package modify

import (
	"strings"

	"github.com/teranos/namematch/align"
	"github.com/teranos/namematch/refdata"
)

const (
	vowelRepairMinLen  = 5
	adjacentSwapLen    = 5
	adjacentSwapRatio  = 80
	firstCharRepairLen = 4
)

var vowelRepairPairs = map[[2]byte]bool{
	{'a', 'o'}: true, {'o', 'a'}: true,
	{'e', 'a'}: true, {'a', 'e'}: true,
	{'i', 'y'}: true, {'y', 'i'}: true,
}

// Modify applies the attempt-2/3 heavier rewrites of spec §4.10 to
// already-tokenized, pair-cleaned names: ie-ending normalization, " or "
// disambiguation, targeted character repairs on near-identical aligned
// tokens, and finally the spelling rule engine.
func Modify(tables *refdata.Tables, left, right []string) ([]string, []string) {
	left = fixIEEndings(left)
	right = fixIEEndings(right)

	leftStr, rightStr := handleOrConstruct(strings.Join(left, " "), strings.Join(right, " "))
	left = strings.Fields(leftStr)
	right = strings.Fields(rightStr)

	alignment := align.Align(left, right)

	vowelRepair(left, right, alignment)
	adjacentSwapRepair(left, right, alignment)
	firstCharRepair(left, right, alignment)

	ApplyRulesToAlignment(tables.SpellingRules, left, right, alignment)

	return left, right
}

func fixIEEndings(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		if len(t) > 2 && strings.HasSuffix(t, "ie") {
			out[i] = t[:len(t)-2] + "y"
		} else {
			out[i] = t
		}
	}
	return out
}

// handleOrConstruct resolves a " or " construct present in exactly one
// name by trying both candidate removals — dropping the word before
// "or", or the word after it — and keeping whichever scores higher
// against the other name.
func handleOrConstruct(left, right string) (string, string) {
	lt, rt := strings.Fields(left), strings.Fields(right)
	leftHasOr, rightHasOr := indexOfToken(lt, "or"), indexOfToken(rt, "or")
	if (leftHasOr >= 0) == (rightHasOr >= 0) {
		return left, right
	}

	var tokens, other []string
	var idx int
	leftSide := leftHasOr >= 0
	if leftSide {
		tokens, other, idx = lt, rt, leftHasOr
	} else {
		tokens, other, idx = rt, lt, rightHasOr
	}
	if idx <= 0 || idx >= len(tokens)-1 {
		return left, right
	}

	removeBefore := removeIndices(tokens, idx-1, idx)
	removeAfter := removeIndices(tokens, idx, idx+1)

	var scoreBefore, scoreAfter float64
	if leftSide {
		scoreBefore = align.AverageScore(align.Align(removeBefore, other))
		scoreAfter = align.AverageScore(align.Align(removeAfter, other))
	} else {
		scoreBefore = align.AverageScore(align.Align(other, removeBefore))
		scoreAfter = align.AverageScore(align.Align(other, removeAfter))
	}

	best := removeBefore
	if scoreAfter > scoreBefore {
		best = removeAfter
	}

	if leftSide {
		return strings.Join(best, " "), right
	}
	return left, strings.Join(best, " ")
}

func indexOfToken(tokens []string, target string) int {
	for i, t := range tokens {
		if t == target {
			return i
		}
	}
	return -1
}

func removeIndices(tokens []string, idxs ...int) []string {
	skip := make(map[int]bool, len(idxs))
	for _, i := range idxs {
		skip[i] = true
	}
	out := make([]string, 0, len(tokens))
	for i, t := range tokens {
		if skip[i] {
			continue
		}
		out = append(out, t)
	}
	return out
}

// vowelRepair fixes a single-position vowel confusion (ao, ea, iy) on
// otherwise-identical equal-length aligned tokens.
func vowelRepair(left, right []string, alignment []align.Pair) {
	for _, p := range alignment {
		l, r := left[p.I], right[p.J]
		if len(l) != len(r) || len(l) < vowelRepairMinLen {
			continue
		}

		diffPos, diffCount := -1, 0
		for i := 0; i < len(l); i++ {
			if l[i] != r[i] {
				diffCount++
				diffPos = i
				if diffCount > 1 {
					break
				}
			}
		}
		if diffCount != 1 {
			continue
		}
		if !vowelRepairPairs[[2]byte{l[diffPos], r[diffPos]}] {
			continue
		}

		left[p.I] = l[:diffPos] + string(r[diffPos]) + l[diffPos+1:]
	}
}

// adjacentSwapRepair fixes an adjacent-character transposition on
// length-5 aligned tokens that otherwise score exactly 80.
func adjacentSwapRepair(left, right []string, alignment []align.Pair) {
	for _, p := range alignment {
		l, r := left[p.I], right[p.J]
		if len(l) != adjacentSwapLen || len(r) != adjacentSwapLen {
			continue
		}
		if align.Ratio(l, r) != adjacentSwapRatio {
			continue
		}

		var diffs []int
		for i := 0; i < len(l); i++ {
			if l[i] != r[i] {
				diffs = append(diffs, i)
			}
		}
		if len(diffs) != 2 || diffs[1] != diffs[0]+1 {
			continue
		}

		i, j := diffs[0], diffs[1]
		if l[i] == r[j] && l[j] == r[i] {
			left[p.I] = r
		}
	}
}

// firstCharRepair fixes aligned tokens that differ only at index 0.
func firstCharRepair(left, right []string, alignment []align.Pair) {
	for _, p := range alignment {
		l, r := left[p.I], right[p.J]
		if l == r || len(l) != len(r) {
			continue
		}
		if len(l) <= firstCharRepairLen {
			continue
		}

		diffOnlyAt0 := l[0] != r[0]
		for i := 1; i < len(l) && diffOnlyAt0; i++ {
			if l[i] != r[i] {
				diffOnlyAt0 = false
			}
		}
		if diffOnlyAt0 {
			left[p.I] = r
		}
	}
}
