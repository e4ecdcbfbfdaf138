package catalog

import (
	"github.com/matst80/slask-listing/pkg/types"
)

// Enrich resolves every product's category and, through it, the owning
// user. Output order follows product order. A dangling reference aborts
// with a DataIntegrityError instead of dropping rows, partial listings
// would hide broken source data.
func Enrich(data *types.ReferenceData) ([]types.EnrichedProduct, error) {
	result := make([]types.EnrichedProduct, 0, len(data.Products))
	for _, product := range data.Products {
		category, ok := data.CategoryById(product.CategoryId)
		if !ok {
			return nil, &types.DataIntegrityError{
				Kind:      "product",
				Id:        uint(product.Id),
				MissingId: uint(product.CategoryId),
			}
		}
		owner, ok := data.UserById(category.OwnerId)
		if !ok {
			return nil, &types.DataIntegrityError{
				Kind:      "category",
				Id:        uint(category.Id),
				MissingId: uint(category.OwnerId),
			}
		}
		result = append(result, types.EnrichedProduct{
			Product:  product,
			Category: category,
			Owner:    owner,
		})
	}
	return result, nil
}
