package server

import (
	"net/url"
	"testing"

	"github.com/matst80/slask-listing/pkg/types"
)

func TestListingRequestFromQuery(t *testing.T) {
	query := url.Values{
		"query":    []string{"milk"},
		"owner":    []string{"2"},
		"cat":      []string{"1", "3"},
		"sort":     []string{"product"},
		"reversed": []string{"true"},
	}
	lr, err := listingRequestFromQuery(query)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	state, err := lr.ToState()
	if err != nil {
		t.Fatalf("ToState failed: %v", err)
	}
	if state.Query != "milk" || state.OwnerId != 2 {
		t.Errorf("unexpected state: %+v", state)
	}
	if !state.HasCategory(1) || !state.HasCategory(3) || len(state.CategoryIds) != 2 {
		t.Errorf("unexpected categories: %v", state.CategoryIds)
	}
	if state.SortColumn != types.ColumnProduct || !state.SortReversed {
		t.Errorf("unexpected sort: %+v", state)
	}
}

func TestListingRequestIgnoresUnknownKeys(t *testing.T) {
	query := url.Values{
		"query":   []string{"milk"},
		"unknown": []string{"x"},
	}
	if _, err := listingRequestFromQuery(query); err != nil {
		t.Errorf("unknown keys must be ignored: %v", err)
	}
}

func TestListingRequestUnknownSortColumn(t *testing.T) {
	lr := &ListingRequest{Sort: "price"}
	if _, err := lr.ToState(); err == nil {
		t.Error("expected error for unknown sort column")
	}
}

func TestListingRequestReversedWithoutColumn(t *testing.T) {
	lr := &ListingRequest{Reversed: true}
	state, err := lr.ToState()
	if err != nil {
		t.Fatalf("ToState failed: %v", err)
	}
	if state.SortReversed {
		t.Error("reversed without a column must stay unsorted and unreversed")
	}
}

func TestListingRequestIsEmpty(t *testing.T) {
	if !(&ListingRequest{}).IsEmpty() {
		t.Error("zero request should be empty")
	}
	if (&ListingRequest{Query: "a"}).IsEmpty() {
		t.Error("request with query is not empty")
	}
	if (&ListingRequest{CategoryIds: []uint{1}}).IsEmpty() {
		t.Error("request with categories is not empty")
	}
}
