package comparator

import "github.com/teranos/namematch/refdata"

// substituteNicknames implements spec §4.6: for each left token absent
// from the right name, if it is a known nickname, substitute it with a
// same-class member that appears on the right but not already on the
// left. At most one substitution per token.
func substituteNicknames(tables *refdata.Tables, left, right []string) []string {
	rightSet := toSet(right)
	leftSet := toSet(left)

	out := make([]string, len(left))
	copy(out, left)

	for i, w0 := range left {
		if rightSet[w0] {
			continue
		}
		classes, ok := tables.NicknameIndex[w0]
		if !ok {
			continue
		}

		substituted := false
		for _, classIdx := range classes {
			if substituted || classIdx >= len(tables.NicknameSets) {
				break
			}
			for _, member := range tables.NicknameSets[classIdx] {
				if member == w0 {
					continue
				}
				if rightSet[member] && !leftSet[member] {
					out[i] = member
					substituted = true
					break
				}
			}
		}
	}
	return out
}

func toSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}
