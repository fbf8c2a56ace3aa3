// Package modify implements the Name Modifier (spec §4.10) and the
// rule-driven substring rewriter it and the phonetic pipeline both use
// (spec §4.11, `_replaceSubstringSandwichMeatIfMatchingBread`).
package modify

import (
	"regexp"
	"strings"

	"github.com/teranos/namematch/align"
	"github.com/teranos/namematch/refdata"
)

// ApplyRuleToPair applies a single rewrite rule to one aligned token pair.
// Both tokens are bracketed with dash sentinels so breads can match at a
// token boundary; the sentinels are stripped before returning. Per spec,
// the rewrite always targets meatB on both sides, never whichever form
// happens to be present.
func ApplyRuleToPair(rule refdata.Rule, left, right string) (string, string) {
	if len(left) < rule.MinLen || len(right) < rule.MinLen {
		return left, right
	}

	bracketedLeft := "-" + left + "-"
	bracketedRight := "-" + right + "-"

	for _, bottom := range rule.BottomBreads {
		for _, top := range rule.TopBreads {
			pattern := regexp.QuoteMeta(bottom) + "(" +
				regexp.QuoteMeta(rule.MeatA) + "|" + regexp.QuoteMeta(rule.MeatB) +
				")" + regexp.QuoteMeta(top)
			re, err := regexp.Compile(pattern)
			if err != nil {
				continue
			}

			matchLeft := re.FindStringSubmatchIndex(bracketedLeft)
			matchRight := re.FindStringSubmatchIndex(bracketedRight)
			if matchLeft == nil || matchRight == nil {
				continue
			}

			meatLeft := bracketedLeft[matchLeft[2]:matchLeft[3]]
			meatRight := bracketedRight[matchRight[2]:matchRight[3]]
			if meatLeft == meatRight {
				continue
			}

			if absInt(matchLeft[2]-matchRight[2]) > 2 || absInt(matchLeft[3]-matchRight[3]) > 2 {
				continue
			}

			bracketedLeft = bracketedLeft[:matchLeft[2]] + rule.MeatB + bracketedLeft[matchLeft[3]:]
			bracketedRight = bracketedRight[:matchRight[2]] + rule.MeatB + bracketedRight[matchRight[3]:]
		}
	}

	return strings.Trim(bracketedLeft, "-"), strings.Trim(bracketedRight, "-")
}

// ApplyRulesToAlignment runs every rule in order over every token pair the
// alignment names, mutating left and right in place.
func ApplyRulesToAlignment(rules []refdata.Rule, left, right []string, alignment []align.Pair) {
	for _, p := range alignment {
		for _, rule := range rules {
			left[p.I], right[p.J] = ApplyRuleToPair(rule, left[p.I], right[p.J])
		}
	}
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
