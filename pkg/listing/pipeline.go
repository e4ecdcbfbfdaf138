package listing

import (
	"github.com/matst80/slask-listing/pkg/selection"
	"github.com/matst80/slask-listing/pkg/types"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Pipeline composes the filter and sort stages over an enriched product
// sequence. It is pure, the delivery layer calls Apply after every state
// change instead of relying on any implicit recomputation.
type Pipeline struct {
	locale language.Tag
}

func NewPipeline(locale language.Tag) *Pipeline {
	return &Pipeline{locale: locale}
}

// Apply runs filter then sort for the given selection. A fresh collator is
// built per call, collators buffer internally and are not safe to share
// between requests.
func (p *Pipeline) Apply(items []types.EnrichedProduct, state selection.State) []types.EnrichedProduct {
	filtered := Filter(items, state)
	if state.SortColumn == types.ColumnNone {
		return filtered
	}
	return Sort(filtered, state.SortColumn, state.SortReversed, collate.New(p.locale))
}
