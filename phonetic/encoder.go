// Package phonetic implements the greedy longest-substring Phonetic
// Encoder and the IPA Cleaner that normalizes its output (spec §4.12-4.13).
package phonetic

import (
	"strings"

	lru "github.com/hashicorp/golang-lru"

	"github.com/teranos/namematch/refdata"
)

const defaultCacheSize = 1000

var fallbackIPA = map[byte]string{
	'a': "æ", 'b': "b", 'c': "k", 'd': "d", 'e': "ɛ", 'f': "f", 'g': "g", 'h': "h",
	'i': "ɪ", 'j': "ʤ", 'k': "k", 'l': "l", 'm': "m", 'n': "n", 'o': "o", 'p': "p",
	'q': "k", 'r': "r", 's': "s", 't': "t", 'u': "u", 'v': "v", 'w': "w", 'x': "ks",
	'y': "j", 'z': "z",
}

// Encoder transcribes cleaned name tokens into an IPA-like string. Token
// encodings are memoized in a bounded cache; Encoder itself holds no
// per-call state and is safe for concurrent use once constructed.
type Encoder struct {
	tables *refdata.Tables
	cache  *lru.Cache
}

// NewEncoder builds an Encoder over the given reference tables with a
// memoization cache of at least cacheSize entries (defaultCacheSize if
// cacheSize <= 0, never fewer than the spec's 1000-entry floor).
func NewEncoder(tables *refdata.Tables, cacheSize int) (*Encoder, error) {
	if cacheSize < defaultCacheSize {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, err
	}
	return &Encoder{tables: tables, cache: cache}, nil
}

// Encode transcribes a whitespace-separated, already-cleaned name into
// its IPA form, token by token.
func (e *Encoder) Encode(name string) string {
	tokens := strings.Fields(name)
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = e.EncodeToken(t)
	}
	return strings.Join(out, " ")
}

// EncodeToken transcribes a single token, consulting and populating the
// memoization cache.
func (e *Encoder) EncodeToken(word string) string {
	if v, ok := e.cache.Get(word); ok {
		return v.(string)
	}
	ipa := e.computeToken(word)
	e.cache.Add(word, ipa)
	return ipa
}

func (e *Encoder) computeToken(word string) string {
	if ipa, ok := e.tables.NamesToIPA[word]; ok {
		return ipa
	}

	slots := make([]string, len(word))
	working := []byte(word)

	for {
		bestLen, bestStart, bestIPA := 0, -1, ""

		for length := len(working); length >= 1 && bestStart == -1; length-- {
			for start := 0; start+length <= len(working); start++ {
				if !allUnconsumed(working, start, length) {
					continue
				}
				substr := string(working[start : start+length])

				var ipa string
				if length == 1 {
					fb, ok := fallbackIPA[substr[0]]
					if !ok {
						continue
					}
					ipa = fb
				} else {
					syl, ok := e.tables.SyllableToIPA[substr]
					if !ok {
						continue
					}
					if len(syl) >= 2*length {
						continue
					}
					if substr[0] == 'h' && start > 0 && word[start-1] == 't' {
						continue
					}
					if substr[len(substr)-1] == 't' && start+length < len(word) && word[start+length] == 'h' {
						continue
					}
					ipa = syl
				}

				bestLen, bestStart, bestIPA = length, start, ipa
				break
			}
		}

		if bestStart == -1 {
			break
		}

		slots[bestStart] = bestIPA
		for k := bestStart; k < bestStart+bestLen; k++ {
			working[k] = ' '
		}
	}

	var b strings.Builder
	for _, s := range slots {
		b.WriteString(s)
	}
	return b.String()
}

func allUnconsumed(working []byte, start, length int) bool {
	for k := start; k < start+length; k++ {
		if working[k] == ' ' {
			return false
		}
	}
	return true
}
