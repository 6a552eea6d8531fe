package search

import (
	"sort"
	"strings"

	"github.com/fosagri/assist/catalog"
)

// Result pairs a catalog entry with its raw relevance score. Score is
// zero when the result comes from an unscored (blank query) listing.
type Result struct {
	Entry *catalog.Entry
	Score int
}

// RelevancePercent returns the result's score on the 0-100 scale.
func (r *Result) RelevancePercent() int {
	return RelevancePercent(r.Score)
}

// Search filters and ranks catalog entries. Entries are first
// restricted to the category and type facets (the sentinel "all"
// values match everything), preserving catalog order. A blank query
// returns the filtered list unscored; otherwise each entry is scored
// against the tokenized query, zero-score entries are dropped, and the
// remainder is sorted by descending score with catalog order breaking
// ties.
func Search(cat *catalog.Catalog, query, category string, entryType catalog.EntryType) []Result {
	return SearchWithMonitor(cat, query, category, entryType, nil)
}

// SearchWithMonitor is Search with observation hooks. A nil monitor is
// replaced by a no-op.
func SearchWithMonitor(cat *catalog.Catalog, query, category string, entryType catalog.EntryType, monitor RankMonitor) []Result {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(query, category, entryType)

	filtered := make([]*catalog.Entry, 0, len(cat.Entries))
	for i := range cat.Entries {
		e := &cat.Entries[i]
		if category != catalog.CategoryAll && e.Category != category {
			continue
		}
		if entryType != catalog.TypeAll && e.Type != entryType {
			continue
		}
		filtered = append(filtered, e)
	}
	monitor.AfterFacetFilter(filtered)

	if strings.TrimSpace(query) == "" {
		results := make([]Result, len(filtered))
		for i, e := range filtered {
			results[i] = Result{Entry: e}
		}
		monitor.Finish(results)
		return results
	}

	terms := Tokenize(query)
	results := make([]Result, 0, len(filtered))
	for _, e := range filtered {
		score := Score(e, terms)
		monitor.Scored(e, score)
		if score <= 0 {
			continue
		}
		results = append(results, Result{Entry: e, Score: score})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	monitor.Finish(results)
	return results
}
