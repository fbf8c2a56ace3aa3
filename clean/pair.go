package clean

import (
	"strings"

	"github.com/teranos/namematch/align"
	"github.com/teranos/namematch/spelling"
)

var scottishIrishPrefixPairs = [][2]string{{"mac", "mc"}, {"de", "di"}, {"del", "dil"}}

// CleanPair applies the pair-aware normalization of spec §4.3 to two
// already single-cleaned names. Unlike CleanSingle, every sub-step here
// may consult both names.
//
// Split-word recombination is run twice: once before the Mc/Mac repair,
// which the spec's prose states depends on it having already happened,
// and once more at the position the spec's ordered list documents as
// final, iterated again to a fixed point in case later steps (prefix
// removal, shared-prefix fusion) created new recombination opportunities.
func CleanPair(left, right string) (string, string) {
	left, right, _ = CleanPairWithTrace(left, right)
	return left, right
}

// CleanPairWithTrace is CleanPair with a free-text breadcrumb appended for
// every sub-step that actually changed one of the two names, for a human
// reviewer asking why two names were fused before alignment. The match
// decision never consults this log.
func CleanPairWithTrace(left, right string) (string, string, []string) {
	var trace []string
	note := func(step string, beforeL, beforeR string) {
		if left != beforeL || right != beforeR {
			trace = append(trace, step+": "+beforeL+" / "+beforeR+" -> "+left+" / "+right)
		}
	}

	bl, br := left, right
	left, right = applyDashes(left, right)
	note("dashes", bl, br)

	bl, br = left, right
	left, right = scottishIrishAlign(left, right)
	note("scottish/irish prefix align", bl, br)

	bl, br = left, right
	left, right = recombineSplitWords(left, right)
	note("split-word recombination (pre Mc/Mac)", bl, br)

	bl, br = left, right
	left, right = mcMacRepair(left, right)
	note("mc/mac repair", bl, br)

	bl, br = left, right
	left, right = irishORepair(left, right)
	note("irish-o repair", bl, br)

	bl, br = left, right
	left, right = removeUnnecessaryPrefixes(left, right)
	note("unnecessary prefix removal", bl, br)

	bl, br = left, right
	left, right = fuseSharedPrefixPair(left, right)
	note("shared prefix fusion", bl, br)

	bl, br = left, right
	left, right = recombineSplitWords(left, right)
	note("split-word recombination (final)", bl, br)

	left, right = finalizeWhitespace(left, right)
	return left, right, trace
}

func alignmentAverage(left, right string) float64 {
	return align.AverageScore(align.Align(Tokenize(left), Tokenize(right)))
}

func finalizeWhitespace(left, right string) (string, string) {
	return collapseWS(left), collapseWS(right)
}

func collapseWS(s string) string {
	s = whitespaceRun.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	if s == "" {
		return Sentinel
	}
	return s
}

// applyDashes handles the case where exactly one name uses hyphenated
// tokens: it tries replacing dashes with spaces and recombining split
// words, keeping the edit only if it strictly improves the alignment.
func applyDashes(left, right string) (string, string) {
	leftHas := strings.Contains(left, "-")
	rightHas := strings.Contains(right, "-")
	if leftHas == rightHas {
		return left, right
	}

	before := alignmentAverage(left, right)

	newLeft, newRight := left, right
	if leftHas {
		newLeft = collapseWS(strings.ReplaceAll(left, "-", " "))
	} else {
		newRight = collapseWS(strings.ReplaceAll(right, "-", " "))
	}
	newLeft, newRight = recombineSplitWords(newLeft, newRight)

	if alignmentAverage(newLeft, newRight) > before {
		return newLeft, newRight
	}
	return left, right
}

// scottishIrishAlign reconciles a Scottish/Irish prefix variant that
// appears in only one of the two names by rewriting it to the other
// pair member's form, so later alignment sees matching prefixes.
func scottishIrishAlign(left, right string) (string, string) {
	for _, pair := range scottishIrishPrefixPairs {
		a, b := " "+pair[0], " "+pair[1]
		leftHasA, leftHasB := strings.Contains(left, a), strings.Contains(left, b)
		rightHasA, rightHasB := strings.Contains(right, a), strings.Contains(right, b)

		if leftHasA || rightHasA {
			continue
		}
		switch {
		case leftHasB && !rightHasB:
			left = strings.Replace(left, b, a, 1)
		case rightHasB && !leftHasB:
			right = strings.Replace(right, b, a, 1)
		}
	}
	return left, right
}

func hasMcMacPrefix(w string) bool {
	return strings.HasPrefix(w, "mc") || strings.HasPrefix(w, "mac")
}

func stripMcMacPrefix(w string) string {
	if strings.HasPrefix(w, "mac") {
		return w[3:]
	}
	if strings.HasPrefix(w, "mc") {
		return w[2:]
	}
	return w
}

// mcMacRepair strips a spurious Mc/Mac prefix from a non-surname-position
// token when doing so brings its aligned partner into close similarity.
func mcMacRepair(left, right string) (string, string) {
	lt, rt := Tokenize(left), Tokenize(right)
	alignment := align.Align(lt, rt)

	for _, p := range alignment {
		if p.I == 0 || p.J == 0 {
			continue
		}
		w0, w1 := lt[p.I], rt[p.J]
		if minInt(len(w0), len(w1)) < 3 {
			continue
		}

		w0Mc, w1Mc := hasMcMacPrefix(w0), hasMcMacPrefix(w1)
		if w0Mc == w1Mc {
			continue
		}
		if align.Ratio(w0, w1) > 80 {
			continue
		}

		if w0Mc {
			if align.Ratio(stripMcMacPrefix(w0), w1) >= 75 {
				lt[p.I] = stripMcMacPrefix(w0)
			}
		} else {
			if align.Ratio(w0, stripMcMacPrefix(w1)) >= 75 {
				rt[p.J] = stripMcMacPrefix(w1)
			}
		}
	}
	return strings.Join(lt, " "), strings.Join(rt, " ")
}

func matchesIrishSurname(token string) bool {
	for _, s := range irishOSurnames {
		if align.Ratio(token, s) > 75 {
			return true
		}
	}
	return false
}

// irishORepair collapses a separated or fused leading "o" onto a known
// Irish surname it closely resembles: "o brien" or "obrien" -> "brien".
func irishORepair(left, right string) (string, string) {
	return irishORepairOne(left), irishORepairOne(right)
}

func irishORepairOne(name string) string {
	tokens := Tokenize(name)
	out := make([]string, 0, len(tokens))

	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		if t == "o" && i+1 < len(tokens) && matchesIrishSurname(tokens[i+1]) {
			out = append(out, tokens[i+1])
			i++
			continue
		}
		if stripped, ok := strings.CutPrefix(t, "o'"); ok && matchesIrishSurname(stripped) {
			out = append(out, stripped)
			continue
		}
		if len(t) > 1 && t[0] == 'o' && matchesIrishSurname(t[1:]) {
			out = append(out, t[1:])
			continue
		}
		out = append(out, t)
	}
	return strings.Join(out, " ")
}

// removeUnnecessaryPrefixes drops an indexing prefix present as an
// isolated token in one name but absent from the other, when doing so
// clearly improves the match, then repairs aligned tokens that differ
// only by one of these prefixes.
func removeUnnecessaryPrefixes(left, right string) (string, string) {
	for _, prefix := range unnecessaryPrefixes {
		left, right = tryRemoveIsolatedPrefix(left, right, prefix)
	}
	return removeAlignedPrefixDifference(left, right)
}

func tryRemoveIsolatedPrefix(left, right, prefix string) (string, string) {
	target := " " + prefix + " "
	leftHas := strings.Contains(" "+left+" ", target)
	rightHas := strings.Contains(" "+right+" ", target)
	if leftHas == rightHas {
		return left, right
	}

	before := alignmentAverage(left, right)
	beforeSpelling := spelling.IsMatch(Tokenize(left), Tokenize(right))

	newLeft, newRight := left, right
	if leftHas {
		newLeft = removeIsolatedToken(left, prefix)
	} else {
		newRight = removeIsolatedToken(right, prefix)
	}

	after := alignmentAverage(newLeft, newRight)
	afterSpelling := spelling.IsMatch(Tokenize(newLeft), Tokenize(newRight))

	if after-before >= 10 || (afterSpelling && !beforeSpelling) {
		return newLeft, newRight
	}
	return left, right
}

func removeIsolatedToken(name, prefix string) string {
	padded := strings.Replace(" "+name+" ", " "+prefix+" ", " ", 1)
	return collapseWS(padded)
}

func removeAlignedPrefixDifference(left, right string) (string, string) {
	lt, rt := Tokenize(left), Tokenize(right)
	alignment := align.Align(lt, rt)

	for _, p := range alignment {
		w0, w1 := lt[p.I], rt[p.J]
		if w0 == w1 {
			continue
		}
		for _, prefix := range unnecessaryPrefixes {
			fused := strings.ReplaceAll(prefix, " ", "")
			if strings.HasPrefix(w0, fused) && w0[len(fused):] == w1 && len(w1) > 2 {
				lt[p.I] = w1
				break
			}
			if strings.HasPrefix(w1, fused) && w1[len(fused):] == w0 && len(w0) > 2 {
				rt[p.J] = w0
				break
			}
		}
	}
	return strings.Join(lt, " "), strings.Join(rt, " ")
}

// fuseSharedPrefixPair fuses a "de"/"van" prefix token onto the token
// that follows it when both names show the same prefix followed by a
// token starting with the same letter.
func fuseSharedPrefixPair(left, right string) (string, string) {
	for _, prefix := range []string{"de", "van"} {
		lt, rt := Tokenize(left), Tokenize(right)
		li := findPrefixFollowedByToken(lt, prefix)
		ri := findPrefixFollowedByToken(rt, prefix)
		if li == -1 || ri == -1 {
			continue
		}
		if lt[li+1][0] != rt[ri+1][0] {
			continue
		}
		left = strings.Join(fuseAt(lt, li), " ")
		right = strings.Join(fuseAt(rt, ri), " ")
	}
	return left, right
}

func findPrefixFollowedByToken(tokens []string, prefix string) int {
	for i := 0; i < len(tokens)-1; i++ {
		if tokens[i] == prefix && len(tokens[i+1]) > 0 {
			return i
		}
	}
	return -1
}

func fuseAt(tokens []string, i int) []string {
	fused := tokens[i] + tokens[i+1]
	out := make([]string, 0, len(tokens)-1)
	out = append(out, tokens[:i]...)
	out = append(out, fused)
	out = append(out, tokens[i+2:]...)
	return out
}

// recombineSplitWords iterates the split-word recombiner to a fixed
// point over both names, each using the other as the partner reference.
func recombineSplitWords(left, right string) (string, string) {
	lt, rt := Tokenize(left), Tokenize(right)
	for {
		changedLeft, newLt := recombineOnce(lt, rt)
		if changedLeft {
			lt = newLt
		}
		changedRight, newRt := recombineOnce(rt, lt)
		if changedRight {
			rt = newRt
		}
		if !changedLeft && !changedRight {
			break
		}
	}
	return strings.Join(lt, " "), strings.Join(rt, " ")
}

// recombineOnce looks for a single token in tokens whose best partner in
// partner is worth merging with a neighbor, per spec §4.3's four
// keep-conditions. Returns the updated slice and whether a merge fired.
func recombineOnce(tokens, partner []string) (bool, []string) {
	if len(tokens) < 2 || len(partner) == 0 {
		return false, tokens
	}
	before := align.AverageScore(align.Align(tokens, partner))

	for i, t := range tokens {
		if len(t) <= 1 {
			continue
		}

		bestJ, bestScore := -1, -1
		for j, p := range partner {
			if s := align.PartialRatio(t, p); s > bestScore {
				bestScore, bestJ = s, j
			}
		}
		if bestJ == -1 || bestScore < 75 {
			continue
		}
		partnerTok := partner[bestJ]

		neighborIdx, neighborSide, neighborScore := -1, 0, -1
		if i > 0 && len(tokens[i-1]) > 1 {
			neighborIdx, neighborSide, neighborScore = i-1, -1, align.PartialRatio(tokens[i-1], partnerTok)
		}
		if i < len(tokens)-1 && len(tokens[i+1]) > 1 {
			if s := align.PartialRatio(tokens[i+1], partnerTok); s > neighborScore {
				neighborIdx, neighborSide, neighborScore = i+1, 1, s
			}
		}
		if neighborIdx == -1 || neighborScore < 65 {
			continue
		}

		var compound string
		var lo, hi int
		if neighborSide < 0 {
			compound, lo, hi = tokens[neighborIdx]+t, neighborIdx, i
		} else {
			compound, lo, hi = t+tokens[neighborIdx], i, neighborIdx
		}

		origRatio := align.Ratio(t, partnerTok)
		newRatio := align.Ratio(compound, partnerTok)
		if newRatio-origRatio < 20 {
			continue
		}

		origCloseness := absInt(len(t) - len(partnerTok))
		newCloseness := absInt(len(compound) - len(partnerTok))
		if newCloseness > origCloseness {
			continue
		}

		candidate := mergeTokensAt(tokens, lo, hi, compound)
		after := align.AverageScore(align.Align(candidate, partner))
		if before-after > 1 {
			continue
		}

		return true, candidate
	}
	return false, tokens
}

func mergeTokensAt(tokens []string, lo, hi int, compound string) []string {
	out := make([]string, 0, len(tokens)-1)
	out = append(out, tokens[:lo]...)
	out = append(out, compound)
	out = append(out, tokens[hi+1:]...)
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
