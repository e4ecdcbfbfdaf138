package server

import (
	"net/http"
	"net/url"

	"github.com/gorilla/schema"
	"github.com/matst80/slask-listing/pkg/selection"
	"github.com/matst80/slask-listing/pkg/types"
)

// ListingRequest carries one-shot filter/sort overrides on the listing
// endpoint. It maps onto a SelectionState without touching the stored one.
type ListingRequest struct {
	Query       string `json:"query" schema:"query"`
	OwnerId     uint   `json:"ownerId" schema:"owner"`
	CategoryIds []uint `json:"categoryIds" schema:"cat"`
	Sort        string `json:"sort" schema:"sort"`
	Reversed    bool   `json:"reversed" schema:"reversed"`
}

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

func listingRequestFromQuery(query url.Values) (*ListingRequest, error) {
	lr := &ListingRequest{}
	if err := decoder.Decode(lr, query); err != nil {
		return nil, err
	}
	return lr, nil
}

func (lr *ListingRequest) IsEmpty() bool {
	return lr.Query == "" && lr.OwnerId == 0 && len(lr.CategoryIds) == 0 && lr.Sort == "" && !lr.Reversed
}

// ToState turns the overrides into a selection state. An unknown sort
// column is a decode error, not a silent unsorted listing.
func (lr *ListingRequest) ToState() (selection.State, error) {
	column, err := types.ParseSortColumn(lr.Sort)
	if err != nil {
		return selection.State{}, err
	}
	state := selection.State{
		Query:        lr.Query,
		OwnerId:      types.UserId(lr.OwnerId),
		SortColumn:   column,
		SortReversed: lr.Reversed && column != types.ColumnNone,
	}
	if len(lr.CategoryIds) > 0 {
		set := make(selection.CategorySet, len(lr.CategoryIds))
		for _, id := range lr.CategoryIds {
			set[types.CategoryId(id)] = struct{}{}
		}
		state.CategoryIds = set
	}
	return state, nil
}

func getListingRequest(r *http.Request) (*ListingRequest, error) {
	return listingRequestFromQuery(r.URL.Query())
}
