package search

import (
	"strings"

	"github.com/fosagri/assist/catalog"
)

// Scoring weights per matched search term. Title and keyword hits
// dominate; description hits only nudge ordering among entries that
// already match elsewhere.
const (
	titleMatchScore   = 100
	titlePrefixBonus  = 50
	keywordExactScore = 80
	keywordPartScore  = 40
	descriptionScore  = 20
)

// Score computes the relevance of an entry for the given normalized
// terms. Each term contributes independently: a title substring match
// scores 100 plus 50 when the title starts with the term, an exact
// keyword match scores 80, otherwise a keyword substring match scores
// 40, and a description match adds 20. Terms shorter than two runes
// are ignored. The result is always >= 0.
func Score(e *catalog.Entry, terms []string) int {
	title := Normalize(e.Title)
	desc := Normalize(e.Description)
	keywords := make([]string, len(e.Keywords))
	for i, k := range e.Keywords {
		keywords[i] = Normalize(k)
	}

	score := 0
	for _, term := range terms {
		if len([]rune(term)) < minTermRunes {
			continue
		}
		if strings.Contains(title, term) {
			score += titleMatchScore
			if strings.HasPrefix(title, term) {
				score += titlePrefixBonus
			}
		}
		switch {
		case containsExact(keywords, term):
			score += keywordExactScore
		case containsSubstring(keywords, term):
			score += keywordPartScore
		}
		if strings.Contains(desc, term) {
			score += descriptionScore
		}
	}
	return score
}

// RelevancePercent converts a raw score to the 0-100 scale shown to
// users, capping at 100.
func RelevancePercent(score int) int {
	pct := score / 2
	if pct > 100 {
		return 100
	}
	return pct
}

func containsExact(keywords []string, term string) bool {
	for _, k := range keywords {
		if k == term {
			return true
		}
	}
	return false
}

func containsSubstring(keywords []string, term string) bool {
	for _, k := range keywords {
		if strings.Contains(k, term) {
			return true
		}
	}
	return false
}
