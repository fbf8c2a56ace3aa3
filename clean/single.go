// Package clean implements the Single-Name Cleaner and Pair-Aware Cleaner:
// pure and pair-aware name normalization ahead of alignment.
package clean

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Sentinel is the canonical form of an empty or non-string name.
const Sentinel = "_"

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	punctuation   = regexp.MustCompile(`[.,?;"*()]`)
	aposSpaces    = regexp.MustCompile(`'\s+`)

	wholeWordTitles  = wordBoundary("jr", "sr", "prof", "mr", "mrs", "ms", "dr", "student", "rev")
	substringTitles  = []string{"junior", "senior", "professor", "mister", "missus", "miss", "doctor", "reverend", "no suffix", "head of household"}
	wholeWordKinship = wordBoundary("sister", "brother", "mother", "father")

	inLaw       = regexp.MustCompile(`\s+in\s+law`)
	romanSuffix = regexp.MustCompile(`[1-9][a-z]{2,6}`)
	theWord     = regexp.MustCompile(`\s+the\s+`)

	dutchVanDe  = regexp.MustCompile(`\bvan de\b`)
	dutchVanDen = regexp.MustCompile(`\bvan den\b`)
	dutchVanDer = regexp.MustCompile(`\bvan der\b`)

	romanNumeralToken = map[string]bool{"ii": true, "iii": true, "iv": true}

	asciiFold = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

func wordBoundary(words ...string) *regexp.Regexp {
	return regexp.MustCompile(`\b(` + strings.Join(words, "|") + `)\b`)
}

// CleanSingle is the pure, per-name normalization of spec §4.2. It never
// consults the other name in a pair; order of operations matters because
// later steps depend on earlier normalizations.
func CleanSingle(input string) string {
	if input == "" {
		return Sentinel
	}

	s := whitespaceRun.ReplaceAllString(input, " ")
	s = strings.TrimSpace(s)

	s = foldToASCII(s)
	s = strings.ToLower(s)

	if s == "" {
		return Sentinel
	}

	s = punctuation.ReplaceAllString(s, "")
	s = aposSpaces.ReplaceAllString(s, "'")

	s = wholeWordTitles.ReplaceAllString(s, "")
	for _, sub := range substringTitles {
		s = strings.ReplaceAll(s, sub, "")
	}
	s = wholeWordKinship.ReplaceAllString(s, "")

	s = inLaw.ReplaceAllString(s, " ")

	s = romanSuffix.ReplaceAllString(s, "")
	s = theWord.ReplaceAllString(s, " ")

	s = stripRomanNumeralTokens(s)

	s = dutchVanDe.ReplaceAllString(s, "vande")
	s = dutchVanDen.ReplaceAllString(s, "vanden")
	s = dutchVanDer.ReplaceAllString(s, "vander")

	s = whitespaceRun.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	if s == "" {
		return Sentinel
	}
	return s
}

// foldToASCII decomposes combining diacritics and drops any rune the
// decomposition didn't resolve to plain ASCII, the spec's "ASCII-fold,
// transliterate to ASCII" step. Non-Latin scripts have no equivalent
// here; that is an explicit non-goal.
func foldToASCII(s string) string {
	folded, _, err := transform.String(asciiFold, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if r < unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func stripRomanNumeralTokens(s string) string {
	tokens := strings.Fields(s)
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if romanNumeralToken[tok] {
			continue
		}
		out = append(out, tok)
	}
	return strings.Join(out, " ")
}

// Tokenize splits a cleaned name into its tokens.
func Tokenize(cleaned string) []string {
	if cleaned == "" {
		return nil
	}
	return strings.Fields(cleaned)
}
