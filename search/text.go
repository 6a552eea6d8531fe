package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// minTermRunes is the minimum length of a search term; shorter tokens
// carry no signal in the French catalog and are dropped.
const minTermRunes = 2

// markStripper decomposes text and removes combining marks, so that
// "é" and "e" compare equal.
var markStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases text, strips diacritics, and folds every rune
// that is not a letter, digit or space into a single space. It is total
// (never fails) and idempotent.
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	stripped, _, err := transform.String(markStripper, lowered)
	if err != nil {
		// Malformed input: keep the lowered form rather than drop it.
		stripped = lowered
	}
	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

// Tokenize normalizes a query and splits it into search terms,
// dropping terms shorter than two runes. Punctuation folded to spaces
// by Normalize splits words, so "d'excellence" yields "excellence".
func Tokenize(query string) []string {
	fields := strings.Fields(Normalize(query))
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) < minTermRunes {
			continue
		}
		terms = append(terms, f)
	}
	return terms
}
