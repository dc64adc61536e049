package viewer

import (
	"slices"

	"github.com/marcus/fadelist/internal/source"
	"github.com/sahilm/fuzzy"
)

// labels adapts rows to fuzzy.Source.
type labels []source.Row

func (l labels) String(i int) string { return l[i].Label }
func (l labels) Len() int            { return len(l) }

// filterRows returns the rows whose label fuzzy-matches query, in their
// original order. An empty query matches everything.
func filterRows(rows []source.Row, query string) []source.Row {
	if query == "" {
		return rows
	}
	matches := fuzzy.FindFrom(query, labels(rows))
	idx := make([]int, len(matches))
	for i, m := range matches {
		idx[i] = m.Index
	}
	slices.Sort(idx)

	out := make([]source.Row, len(idx))
	for i, j := range idx {
		out[i] = rows[j]
	}
	return out
}
