package refdata

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer strips diacritics so lookups like "Le Hâvre" still resolve.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeName lowercases, trims, and strips combining marks from a name.
func normalizeName(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// wordSet splits a normalized string into a set of punctuation-trimmed words.
func wordSet(s string) map[string]bool {
	words := strings.Fields(s)
	set := make(map[string]bool, len(words))
	for _, w := range words {
		w = strings.Trim(w, ".,;:!?()[]{}\"'")
		if w != "" {
			set[w] = true
		}
	}
	return set
}

// significantWords is wordSet minus the generic port-name tokens.
func significantWords(s string) map[string]bool {
	set := wordSet(normalizeName(s))
	for w := range set {
		if genericNameWords[w] {
			delete(set, w)
		}
	}
	return set
}

// genericNameWords are tokens so common in official port names that sharing
// one says nothing about a match.
var genericNameWords = map[string]bool{
	"port":    true,
	"of":      true,
	"harbor":  true,
	"harbour": true,
	"the":     true,
	"and":     true,
}

// nameSimilarity computes Jaccard similarity on normalized word sets,
// ignoring generic port-name tokens.
func nameSimilarity(a, b string) float64 {
	wordsA := significantWords(a)
	wordsB := significantWords(b)

	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	intersection := 0
	for w := range wordsA {
		if wordsB[w] {
			intersection++
		}
	}

	union := len(wordsA)
	for w := range wordsB {
		if !wordsA[w] {
			union++
		}
	}

	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
