package phonetic

import "strings"

var ipaConsonants = strings.Fields("l d z b t k n s w v ð ʒ ʧ θ h g ʤ ŋ p m ʃ f j r")

// CleanIPA normalizes an encoder's raw IPA output: doubled consonants
// collapse to one, a handful of vowel-cluster artifacts are rewritten,
// and commas are dropped.
func CleanIPA(s string) string {
	for _, c := range ipaConsonants {
		s = strings.ReplaceAll(s, c+c, c)
	}

	s = strings.ReplaceAll(s, "ɛɛ", "i")
	s = strings.ReplaceAll(s, "ɪɪ", "ɪ")
	s = strings.ReplaceAll(s, "iɪ", "i")
	s = strings.ReplaceAll(s, "ŋg", "ŋ")
	s = strings.ReplaceAll(s, ",", "")

	return s
}
