package listing

import (
	"cmp"
	"slices"

	"github.com/matst80/slask-listing/pkg/types"
	"golang.org/x/text/collate"
)

// Sort orders items by the given column, stable so equal keys keep their
// filtered order. ColumnNone is the identity, reversed or not, there is no
// comparator to negate.
func Sort(items []types.EnrichedProduct, column types.SortColumn, reversed bool, c *collate.Collator) []types.EnrichedProduct {
	if column == types.ColumnNone {
		return items
	}
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b types.EnrichedProduct) int {
		result := compareColumn(column, &a, &b, c)
		if reversed {
			return -result
		}
		return result
	})
	return sorted
}

func compareColumn(column types.SortColumn, a, b *types.EnrichedProduct, c *collate.Collator) int {
	switch column {
	case types.ColumnId:
		// the id column displays and sorts the category id, not the
		// product id, kept from the reference behavior
		return cmp.Compare(a.CategoryId, b.CategoryId)
	case types.ColumnProduct:
		return c.CompareString(a.Name, b.Name)
	case types.ColumnCategory:
		return c.CompareString(a.Category.Title, b.Category.Title)
	case types.ColumnUser:
		return c.CompareString(a.Owner.Name, b.Owner.Name)
	}
	return 0
}
