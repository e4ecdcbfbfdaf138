package listing

import (
	"testing"

	"github.com/matst80/slask-listing/pkg/types"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func englishCollator() *collate.Collator {
	return collate.New(language.English)
}

func TestSortByProductNameLocaleAware(t *testing.T) {
	items := enriched(t)
	sorted := Sort(items, types.ColumnProduct, false, englishCollator())
	if !equalNames(sorted, "Apple", "apricot", "Banana") {
		t.Errorf("expected [Apple apricot Banana], got %v", names(sorted))
	}
}

func TestSortReversed(t *testing.T) {
	items := enriched(t)
	ascending := Sort(items, types.ColumnProduct, false, englishCollator())
	descending := Sort(items, types.ColumnProduct, true, englishCollator())
	if len(ascending) != len(descending) {
		t.Fatal("length changed between directions")
	}
	for i := range ascending {
		if ascending[i].Id != descending[len(descending)-1-i].Id {
			t.Errorf("descending is not the exact reverse at %d", i)
		}
	}
}

func TestSortByIdUsesCategoryId(t *testing.T) {
	items := []types.EnrichedProduct{
		{Product: types.Product{Id: 1, Name: "x", CategoryId: 30}},
		{Product: types.Product{Id: 2, Name: "y", CategoryId: 10}},
		{Product: types.Product{Id: 3, Name: "z", CategoryId: 20}},
	}
	sorted := Sort(items, types.ColumnId, false, englishCollator())
	expected := []types.ProductId{2, 3, 1}
	for i, id := range expected {
		if sorted[i].Id != id {
			t.Errorf("position %d: expected product %d, got %d", i, id, sorted[i].Id)
		}
	}
}

func TestSortByCategoryTitle(t *testing.T) {
	items := enriched(t)
	sorted := Sort(items, types.ColumnCategory, true, englishCollator())
	if sorted[0].Category.Title != "Snacks" {
		t.Errorf("expected Snacks first when reversed, got %s", sorted[0].Category.Title)
	}
}

func TestSortByOwnerName(t *testing.T) {
	items := enriched(t)
	sorted := Sort(items, types.ColumnUser, false, englishCollator())
	if sorted[0].Owner.Name != "Alice" || sorted[len(sorted)-1].Owner.Name != "Bob" {
		t.Errorf("unexpected owner order: %v", names(sorted))
	}
}

func TestSortNoneIsIdentity(t *testing.T) {
	items := enriched(t)
	for _, reversed := range []bool{false, true} {
		sorted := Sort(items, types.ColumnNone, reversed, englishCollator())
		for i := range items {
			if sorted[i].Id != items[i].Id {
				t.Errorf("identity broken at %d (reversed=%v)", i, reversed)
			}
		}
	}
}

func TestSortIsStable(t *testing.T) {
	items := []types.EnrichedProduct{
		{Product: types.Product{Id: 1, Name: "same", CategoryId: 10}},
		{Product: types.Product{Id: 2, Name: "same", CategoryId: 10}},
		{Product: types.Product{Id: 3, Name: "same", CategoryId: 10}},
		{Product: types.Product{Id: 4, Name: "aaa", CategoryId: 10}},
	}
	sorted := Sort(items, types.ColumnProduct, false, englishCollator())
	expected := []types.ProductId{4, 1, 2, 3}
	for i, id := range expected {
		if sorted[i].Id != id {
			t.Errorf("stability broken: position %d expected %d, got %d", i, id, sorted[i].Id)
		}
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	items := enriched(t)
	original := make([]types.ProductId, len(items))
	for i, item := range items {
		original[i] = item.Id
	}
	Sort(items, types.ColumnProduct, true, englishCollator())
	for i, item := range items {
		if item.Id != original[i] {
			t.Fatalf("input slice mutated at %d", i)
		}
	}
}
