package search

import (
	"sort"

	"github.com/fosagri/assist/catalog"
)

// State tracks one user's browsing session over the catalog: the
// current query, active facets, and which entries have their detail
// block expanded. It is not safe for concurrent use; each UI session
// owns its own State.
type State struct {
	cat       *catalog.Catalog
	query     string
	category  string
	entryType catalog.EntryType
	expanded  map[int]struct{}
}

// NewState creates a browsing state over the given catalog with both
// facets set to their "all" sentinels.
func NewState(cat *catalog.Catalog) (*State, error) {
	if cat == nil {
		return nil, ErrCatalogRequired
	}
	return &State{
		cat:       cat,
		category:  catalog.CategoryAll,
		entryType: catalog.TypeAll,
		expanded:  make(map[int]struct{}),
	}, nil
}

// SetQuery replaces the current query text.
func (s *State) SetQuery(query string) { s.query = query }

// Query returns the current query text.
func (s *State) Query() string { return s.query }

// SetCategory replaces the category facet. Unknown ids simply match
// no entries; they are not an error.
func (s *State) SetCategory(category string) { s.category = category }

// Category returns the active category facet.
func (s *State) Category() string { return s.category }

// SetType replaces the entry-type facet.
func (s *State) SetType(entryType catalog.EntryType) { s.entryType = entryType }

// Type returns the active entry-type facet.
func (s *State) Type() catalog.EntryType { return s.entryType }

// Results runs the search for the current query and facets.
func (s *State) Results() []Result {
	return Search(s.cat, s.query, s.category, s.entryType)
}

// ToggleExpansion flips the expanded flag for an entry id and reports
// the new value.
func (s *State) ToggleExpansion(id int) bool {
	if _, ok := s.expanded[id]; ok {
		delete(s.expanded, id)
		return false
	}
	s.expanded[id] = struct{}{}
	return true
}

// IsExpanded reports whether the entry's detail block is expanded.
func (s *State) IsExpanded(id int) bool {
	_, ok := s.expanded[id]
	return ok
}

// ExpandedIDs returns the expanded entry ids in ascending order.
func (s *State) ExpandedIDs() []int {
	ids := make([]int, 0, len(s.expanded))
	for id := range s.expanded {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
