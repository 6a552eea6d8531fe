package search

import "github.com/fosagri/assist/catalog"

// RankMonitor provides hooks to observe the ranking process.
// Implement this interface to track intermediate steps during search.
type RankMonitor interface {
	Start(query, category string, entryType catalog.EntryType)
	AfterFacetFilter(entries []*catalog.Entry)
	Scored(entry *catalog.Entry, score int)
	Finish(results []Result)
}

// noopMonitor is a no-op implementation of RankMonitor.
type noopMonitor struct{}

var _ RankMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_, _ string, _ catalog.EntryType) {}
func (n *noopMonitor) AfterFacetFilter(_ []*catalog.Entry)    {}
func (n *noopMonitor) Scored(_ *catalog.Entry, _ int)         {}
func (n *noopMonitor) Finish(_ []Result)                      {}
