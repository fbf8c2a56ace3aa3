// Package align implements the word-pair alignment algorithm: per-pair
// similarity scoring and the best one-to-one assignment between two
// tokenized names.
package align

// Ratio is the Ratcliff/Obershelp similarity in [0,100]: twice the total
// length of matching blocks divided by the combined length of both
// strings, expressed as a percentage. This mirrors fuzzywuzzy's
// fuzz.ratio (itself Python's difflib.SequenceMatcher.ratio), not edit
// distance - an adjacent transposition like "brian"/"brain" scores 80
// here ("br"+"i"+"n" = 4 of 10 runes), not a Levenshtein-derived value.
// Two empty strings are defined as a perfect match.
func Ratio(a, b string) int {
	ar, br := []rune(a), []rune(b)
	total := len(ar) + len(br)
	if total == 0 {
		return 100
	}
	matched := matchingBlockLength(ar, br)
	score := 2.0 * float64(matched) / float64(total) * 100
	return int(score + 0.5)
}

// PartialRatio is the best Ratio over any substring of the longer string
// with length equal to the shorter string - the best-substring match.
func PartialRatio(a, b string) int {
	shorter, longer := a, b
	if len(a) > len(b) {
		shorter, longer = b, a
	}
	if len(shorter) == 0 {
		if len(longer) == 0 {
			return 100
		}
		return 0
	}
	if len(shorter) == len(longer) {
		return Ratio(shorter, longer)
	}

	best := 0
	for i := 0; i+len(shorter) <= len(longer); i++ {
		window := longer[i : i+len(shorter)]
		if r := Ratio(shorter, window); r > best {
			best = r
		}
	}
	return best
}

// matchingBlockLength sums the sizes of the matching blocks the
// Ratcliff/Obershelp algorithm finds between a and b: find the longest
// common run, then recurse on the unmatched runes to either side of it.
func matchingBlockLength(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	b2j := make(map[rune][]int, len(b))
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}
	return sumMatchingBlocks(a, b, 0, len(a), 0, len(b), b2j)
}

func sumMatchingBlocks(a, b []rune, alo, ahi, blo, bhi int, b2j map[rune][]int) int {
	i, j, size := longestMatch(a, b, alo, ahi, blo, bhi, b2j)
	if size == 0 {
		return 0
	}
	total := size
	total += sumMatchingBlocks(a, b, alo, i, blo, j, b2j)
	total += sumMatchingBlocks(a, b, i+size, ahi, j+size, bhi, b2j)
	return total
}

// longestMatch finds the longest run of runes common to a[alo:ahi] and
// b[blo:bhi], returning its start indices in a and b and its length.
func longestMatch(a, b []rune, alo, ahi, blo, bhi int, b2j map[rune][]int) (besti, bestj, bestsize int) {
	besti, bestj, bestsize = alo, blo, 0
	j2len := map[int]int{}
	for i := alo; i < ahi; i++ {
		newj2len := map[int]int{}
		for _, j := range b2j[a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}
	return besti, bestj, bestsize
}
