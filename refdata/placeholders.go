package refdata

import (
	"strings"

	"github.com/teranos/namematch/internal/xerrors"
)

// Placeholder names recognized in spelling and IPA rule bread lists. Any
// other bread-list element is a literal context string, not a placeholder
// reference.
const (
	placeholderConsonant        = "consonant"
	placeholderConsonantOrBreak = "consonant_or_break"
	placeholderVowel            = "vowel"
	placeholderLetter           = "letter"
	placeholderLetterOrBreak    = "letter_or_break"
)

var spellingConsonants = strings.Fields("b c d f g h j k l m n p q r s t v w x y z")
var spellingVowels = strings.Fields("a e i o u y")
var letters = strings.Fields("a b c d e f g h i j k l m n o p q r s t u v w x y z")

var ipaConsonants = strings.Fields("l d z b t k n s w v ð ʒ ʧ θ h g ʤ ŋ p m ʃ f j r")
var ipaVowels = strings.Fields("ɑ a æ ɪ i ɛ e ə ɔ ʊ u o")

func withBreak(list []string) []string {
	out := make([]string, 0, len(list)+1)
	out = append(out, "-")
	out = append(out, list...)
	return out
}

// placeholderClass expands a bare placeholder name to its concrete
// character list. isIPA selects the IPA phoneme classes over the spelling
// letter classes. A name that isn't one of the five recognized
// placeholders is an invalid rule - per spec, a bottomBreads/topBreads
// field is either a literal array of strings or one of the placeholders,
// never an arbitrary bare string.
func placeholderClass(name string, isIPA bool) ([]string, error) {
	switch name {
	case placeholderConsonant:
		if isIPA {
			return ipaConsonants, nil
		}
		return spellingConsonants, nil
	case placeholderConsonantOrBreak:
		if isIPA {
			return withBreak(ipaConsonants), nil
		}
		return withBreak(spellingConsonants), nil
	case placeholderVowel:
		if isIPA {
			return ipaVowels, nil
		}
		return spellingVowels, nil
	case placeholderLetter:
		return letters, nil
	case placeholderLetterOrBreak:
		return withBreak(letters), nil
	default:
		return nil, xerrors.Newf("unrecognized bread placeholder %q", name)
	}
}
