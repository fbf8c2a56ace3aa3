package comparator

import (
	"github.com/teranos/namematch/align"
	"github.com/teranos/namematch/refdata"
)

// tooShort is true iff the shorter of the two cleaned names has fewer
// than two tokens (spec §4.5).
func tooShort(left, right []string) bool {
	return minInt(len(left), len(right)) < 2
}

// rareSurname is true iff the final token of a cleaned name is absent
// from the reference top-surname table.
func rareSurname(tables *refdata.Tables, tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}
	_, known := tables.TopSurnames[tokens[len(tokens)-1]]
	return !known
}

// tooGeneric is true iff the alignment is dominated by initials, unless
// both names carry a rare surname.
func tooGeneric(tables *refdata.Tables, left, right []string, alignment []align.Pair) bool {
	if rareSurname(tables, left) && rareSurname(tables, right) {
		return false
	}

	k := minInt(len(left), len(right))
	n := 0
	for _, p := range alignment {
		if len(left[p.I]) == 1 || len(right[p.J]) == 1 {
			n++
		}
	}
	return k <= n+1
}

// worthContinuing is false iff at least one zero-scored initial pair
// appears in an alignment of size <= 3 - too little signal left to
// justify the heavier attempt-2/3/4 passes.
func worthContinuing(left, right []string, alignment []align.Pair) bool {
	k := len(alignment)
	f := 0
	for _, p := range alignment {
		if p.S == 0 && (len(left[p.I]) == 1 || len(right[p.J]) == 1) {
			f++
		}
	}
	return !(f >= 1 && k <= 3)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
