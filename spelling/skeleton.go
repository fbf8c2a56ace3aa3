package spelling

import "github.com/teranos/namematch/align"

var vowelBytes = map[byte]bool{'a': true, 'e': true, 'i': true, 'o': true, 'u': true, 'y': true}

// skeleton reduces a token to its consonant skeleton: every vowel becomes
// '*', then any run of identical consecutive characters - vowel or
// consonant - collapses to one.
func skeleton(word string) string {
	mapped := make([]byte, len(word))
	for i := 0; i < len(word); i++ {
		if vowelBytes[word[i]] {
			mapped[i] = '*'
		} else {
			mapped[i] = word[i]
		}
	}

	out := make([]byte, 0, len(mapped))
	for i, c := range mapped {
		if i > 0 && mapped[i-1] == c {
			continue
		}
		out = append(out, c)
	}
	return string(out)
}

func countStars(skel string) int {
	n := 0
	for i := 0; i < len(skel); i++ {
		if skel[i] == '*' {
			n++
		}
	}
	return n
}

// SkeletonMatch applies the consonant-skeleton fallback of spec §4.8 to an
// existing alignment, declaring a match if enough aligned pairs reduce to
// matching skeletons.
func SkeletonMatch(alignment []align.Pair, left, right []string) bool {
	count := 0
	for _, p := range alignment {
		if p.S <= 30 {
			continue
		}

		lw, rw := left[p.I], right[p.J]
		lSkel, rSkel := skeleton(lw), skeleton(rw)

		if len(lw) > 1 && len(rw) > 1 && (countStars(lSkel) < 2 || countStars(rSkel) < 2) {
			continue
		}

		skelRatio := align.Ratio(lSkel, rSkel)
		if skelRatio != 100 && (skelRatio <= 80 || p.S <= 60) {
			continue
		}

		count++
	}

	k := len(left)
	if len(right) < k {
		k = len(right)
	}
	return count > k || count >= PairCountQuorum
}
