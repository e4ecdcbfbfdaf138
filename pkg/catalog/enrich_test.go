package catalog

import (
	"errors"
	"testing"

	"github.com/matst80/slask-listing/pkg/types"
)

func testData() *types.ReferenceData {
	return &types.ReferenceData{
		Users: []types.User{
			{Id: 100, Name: "Alice"},
			{Id: 200, Name: "Bob"},
		},
		Categories: []types.Category{
			{Id: 10, Title: "Fruit", OwnerId: 100},
			{Id: 20, Title: "Snacks", OwnerId: 200},
		},
		Products: []types.Product{
			{Id: 1, Name: "Apple", CategoryId: 10},
			{Id: 2, Name: "apricot", CategoryId: 10},
			{Id: 3, Name: "Banana", CategoryId: 20},
		},
	}
}

func TestEnrich(t *testing.T) {
	data := testData()
	enriched, err := Enrich(data)
	if err != nil {
		t.Fatalf("Enrich failed: %v", err)
	}
	if len(enriched) != len(data.Products) {
		t.Fatalf("expected %d products, got %d", len(data.Products), len(enriched))
	}
	for i, item := range enriched {
		if item.Id != data.Products[i].Id {
			t.Errorf("order not preserved at %d: got id %d", i, item.Id)
		}
		if item.Category == nil || item.Category.Id != item.CategoryId {
			t.Errorf("product %d has wrong category", item.Id)
		}
		if item.Owner == nil || item.Owner.Id != item.Category.OwnerId {
			t.Errorf("product %d has wrong owner", item.Id)
		}
	}
	if enriched[0].Owner.Name != "Alice" {
		t.Errorf("expected Alice, got %s", enriched[0].Owner.Name)
	}
	if enriched[2].Owner.Name != "Bob" {
		t.Errorf("expected Bob, got %s", enriched[2].Owner.Name)
	}
}

func TestEnrichMissingCategory(t *testing.T) {
	data := testData()
	data.Products = append(data.Products, types.Product{Id: 4, Name: "Ghost", CategoryId: 99})
	_, err := Enrich(data)
	if err == nil {
		t.Fatal("expected integrity error")
	}
	var integrity *types.DataIntegrityError
	if !errors.As(err, &integrity) {
		t.Fatalf("expected DataIntegrityError, got %T", err)
	}
	if integrity.Kind != "product" || integrity.Id != 4 || integrity.MissingId != 99 {
		t.Errorf("unexpected error detail: %+v", integrity)
	}
}

func TestEnrichMissingOwner(t *testing.T) {
	data := testData()
	data.Categories[1].OwnerId = 999
	_, err := Enrich(data)
	if err == nil {
		t.Fatal("expected integrity error")
	}
	var integrity *types.DataIntegrityError
	if !errors.As(err, &integrity) {
		t.Fatalf("expected DataIntegrityError, got %T", err)
	}
	if integrity.Kind != "category" || integrity.Id != 20 || integrity.MissingId != 999 {
		t.Errorf("unexpected error detail: %+v", integrity)
	}
}

func TestEnrichEmpty(t *testing.T) {
	enriched, err := Enrich(&types.ReferenceData{})
	if err != nil {
		t.Fatalf("Enrich failed: %v", err)
	}
	if len(enriched) != 0 {
		t.Errorf("expected empty result, got %d items", len(enriched))
	}
}
