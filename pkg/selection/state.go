package selection

import (
	"github.com/matst80/slask-listing/pkg/types"
)

// State is the full filter and sort selection for one session. Values are
// immutable, every reducer returns a new State and leaves its receiver
// untouched, so the owner can swap the current value wholesale per action.
type State struct {
	Query        string           `json:"query"`
	OwnerId      types.UserId     `json:"ownerId,omitempty"`
	CategoryIds  CategorySet      `json:"categoryIds,omitempty"`
	SortColumn   types.SortColumn `json:"sortColumn"`
	SortReversed bool             `json:"sortReversed,omitempty"`
}

func DefaultState() State {
	return State{}
}

func (s State) HasOwner() bool {
	return s.OwnerId != 0
}

func (s State) HasCategory(id types.CategoryId) bool {
	_, ok := s.CategoryIds[id]
	return ok
}

func (s State) cloneCategories() CategorySet {
	clone := make(CategorySet, len(s.CategoryIds))
	for id := range s.CategoryIds {
		clone[id] = struct{}{}
	}
	return clone
}

func (s State) SetQuery(query string) State {
	s.Query = query
	return s
}

// ToggleOwner selects the owner, or deselects it when it is already the
// selected one. Single owner selection, not multi-select.
func (s State) ToggleOwner(id types.UserId) State {
	if s.OwnerId == id {
		s.OwnerId = 0
	} else {
		s.OwnerId = id
	}
	return s
}

func (s State) ToggleCategory(id types.CategoryId) State {
	clone := s.cloneCategories()
	if _, ok := clone[id]; ok {
		delete(clone, id)
	} else {
		clone[id] = struct{}{}
	}
	if len(clone) == 0 {
		clone = nil
	}
	s.CategoryIds = clone
	return s
}

func (s State) ClearCategories() State {
	s.CategoryIds = nil
	return s
}

// SortBy cycles a column through unsorted, ascending and descending.
// Activating a different column always starts over at ascending.
func (s State) SortBy(column types.SortColumn) State {
	if column == types.ColumnNone {
		s.SortColumn = types.ColumnNone
		s.SortReversed = false
		return s
	}
	switch {
	case s.SortColumn != column:
		s.SortColumn = column
		s.SortReversed = false
	case !s.SortReversed:
		s.SortReversed = true
	default:
		s.SortColumn = types.ColumnNone
		s.SortReversed = false
	}
	return s
}

// ResetAll clears the three filters. Sort state deliberately stays as it
// was, matching the reference behavior.
func (s State) ResetAll() State {
	s.Query = ""
	s.OwnerId = 0
	s.CategoryIds = nil
	return s
}
