package listing

import (
	"strings"

	"github.com/matst80/slask-listing/pkg/selection"
	"github.com/matst80/slask-listing/pkg/types"
)

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Filter applies the query, owner and category predicates conjunctively,
// preserving order. A predicate whose selection is empty is skipped, an
// empty category set means "no category filter", not "match nothing".
func Filter(items []types.EnrichedProduct, state selection.State) []types.EnrichedProduct {
	query := normalize(state.Query)
	if query == "" && !state.HasOwner() && len(state.CategoryIds) == 0 {
		return items
	}
	result := make([]types.EnrichedProduct, 0, len(items))
	for _, item := range items {
		if query != "" && !strings.Contains(normalize(item.Name), query) {
			continue
		}
		if state.HasOwner() && item.Owner.Id != state.OwnerId {
			continue
		}
		if len(state.CategoryIds) > 0 && !state.HasCategory(item.CategoryId) {
			continue
		}
		result = append(result, item)
	}
	return result
}
