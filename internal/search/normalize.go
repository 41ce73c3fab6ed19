// Package search provides text normalization and filtering for the
// time zone picker. Matching is deliberately plain substring AND over
// normalized tokens: typing "rome", "utc+2" or "central european" must
// narrow the list predictably, with no fuzzy ranking surprises.
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks builds the accent-stripping transformer. A transform.Chain
// carries internal buffers between links, so a chain must not be shared
// across goroutines; constructing one per call is cheap.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Normalize folds text into canonical search form: accents stripped,
// lowercased, every run of non-alphanumeric characters collapsed to a
// single space, trimmed.
func Normalize(text string) string {
	folded, _, err := transform.String(stripMarks(), text)
	if err != nil {
		// Transform failures only occur on invalid UTF-8; fall back to
		// the raw input rather than dropping the option from search.
		folded = text
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingSpace := false
	for _, r := range strings.ToLower(folded) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		} else {
			pendingSpace = true
		}
	}
	return b.String()
}

// BuildHaystack joins several source strings (zone id, display label, ...)
// into one normalized searchable string.
func BuildHaystack(parts ...string) string {
	return Normalize(strings.Join(parts, " "))
}

// MatchesQuery reports whether a precomputed haystack contains every
// whitespace-separated token of the normalized query as a substring.
// An empty query matches everything.
func MatchesQuery(haystack, query string) bool {
	for _, token := range strings.Fields(Normalize(query)) {
		if !strings.Contains(haystack, token) {
			return false
		}
	}
	return true
}
