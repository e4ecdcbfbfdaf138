package server

import (
	"encoding/json"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/matst80/slask-listing/pkg/common"
	"github.com/matst80/slask-listing/pkg/selection"
	"github.com/matst80/slask-listing/pkg/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	noListings = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slasklisting_listings_total",
		Help: "The total number of listings served",
	})
	noActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slasklisting_actions_total",
		Help: "The total number of selection actions applied",
	}, []string{"action"})
)

func (ws *WebServer) respondListing(w http.ResponseWriter, state selection.State, enc sonic.Encoder) error {
	items := ws.Pipeline.Apply(ws.Catalog.Items(), state)
	if items == nil {
		items = []types.EnrichedProduct{}
	}
	noListings.Inc()
	w.WriteHeader(http.StatusOK)
	return enc.Encode(ListingResponse{
		Selection:  state,
		Items:      items,
		TotalItems: len(items),
	})
}

// Listing serves the current session's filtered and sorted table. Query
// parameters act as one-shot overrides and leave the stored state alone.
func (ws *WebServer) Listing(w http.ResponseWriter, r *http.Request) {
	common.JsonHandler(ws.Tracking, func(w http.ResponseWriter, r *http.Request, sessionId string, enc sonic.Encoder) error {
		lr, err := getListingRequest(r)
		if err != nil {
			common.HttpError(w, err.Error(), http.StatusBadRequest)
			return err
		}
		var state selection.State
		if lr.IsEmpty() {
			state, err = ws.Selection.Get(r.Context(), sessionId)
			if err != nil {
				common.HttpError(w, err.Error(), http.StatusInternalServerError)
				return err
			}
		} else {
			state, err = lr.ToState()
			if err != nil {
				common.HttpError(w, err.Error(), http.StatusBadRequest)
				return err
			}
		}
		return ws.respondListing(w, state, enc)
	})(w, r)
}

func (ws *WebServer) Users(w http.ResponseWriter, r *http.Request) {
	common.JsonHandler(ws.Tracking, func(w http.ResponseWriter, r *http.Request, _ string, enc sonic.Encoder) error {
		w.WriteHeader(http.StatusOK)
		return enc.Encode(ws.Catalog.Users())
	})(w, r)
}

func (ws *WebServer) Categories(w http.ResponseWriter, r *http.Request) {
	common.JsonHandler(ws.Tracking, func(w http.ResponseWriter, r *http.Request, _ string, enc sonic.Encoder) error {
		w.WriteHeader(http.StatusOK)
		return enc.Encode(ws.Catalog.Categories())
	})(w, r)
}

// applyAction runs one reducer against the stored session state, persists
// the new state and responds with the recomputed listing. This is the
// server side of the action → state transition → recompute loop.
func (ws *WebServer) applyAction(name string, reduce func(sessionId string, state selection.State) selection.State) http.HandlerFunc {
	return common.JsonHandler(ws.Tracking, func(w http.ResponseWriter, r *http.Request, sessionId string, enc sonic.Encoder) error {
		if r.Method != http.MethodPost {
			common.HttpError(w, "method not allowed", http.StatusMethodNotAllowed)
			return nil
		}
		ctx := r.Context()
		state, err := ws.Selection.Get(ctx, sessionId)
		if err != nil {
			common.HttpError(w, err.Error(), http.StatusInternalServerError)
			return err
		}
		state = reduce(sessionId, state)
		if err := ws.Selection.Set(ctx, sessionId, state); err != nil {
			common.HttpError(w, err.Error(), http.StatusInternalServerError)
			return err
		}
		noActions.WithLabelValues(name).Inc()
		return ws.respondListing(w, state, enc)
	})
}

type queryPayload struct {
	Query string `json:"query"`
}

type idPayload struct {
	Id uint `json:"id"`
}

type sortPayload struct {
	Column string `json:"column"`
}

func decodeBody(r *http.Request, dest any) error {
	return json.NewDecoder(r.Body).Decode(dest)
}

func (ws *WebServer) SetQuery(w http.ResponseWriter, r *http.Request) {
	var payload queryPayload
	if err := decodeBody(r, &payload); err != nil && r.Method == http.MethodPost {
		common.HttpError(w, err.Error(), http.StatusBadRequest)
		return
	}
	ws.applyAction("query", func(sessionId string, state selection.State) selection.State {
		next := state.SetQuery(payload.Query)
		if ws.Tracking != nil {
			go ws.trackQuery(sessionId, next)
		}
		return next
	})(w, r)
}

func (ws *WebServer) trackQuery(sessionId string, state selection.State) {
	items := ws.Pipeline.Apply(ws.Catalog.Items(), state)
	ws.Tracking.TrackQuery(sessionId, state.Query, len(items))
}

func (ws *WebServer) ToggleOwner(w http.ResponseWriter, r *http.Request) {
	var payload idPayload
	if err := decodeBody(r, &payload); err != nil && r.Method == http.MethodPost {
		common.HttpError(w, err.Error(), http.StatusBadRequest)
		return
	}
	ws.applyAction("owner", func(sessionId string, state selection.State) selection.State {
		if ws.Tracking != nil {
			go ws.Tracking.TrackOwnerToggle(sessionId, types.UserId(payload.Id))
		}
		return state.ToggleOwner(types.UserId(payload.Id))
	})(w, r)
}

func (ws *WebServer) ToggleCategory(w http.ResponseWriter, r *http.Request) {
	var payload idPayload
	if err := decodeBody(r, &payload); err != nil && r.Method == http.MethodPost {
		common.HttpError(w, err.Error(), http.StatusBadRequest)
		return
	}
	ws.applyAction("category", func(sessionId string, state selection.State) selection.State {
		if ws.Tracking != nil {
			go ws.Tracking.TrackCategoryToggle(sessionId, types.CategoryId(payload.Id))
		}
		return state.ToggleCategory(types.CategoryId(payload.Id))
	})(w, r)
}

func (ws *WebServer) ClearCategories(w http.ResponseWriter, r *http.Request) {
	ws.applyAction("category_clear", func(sessionId string, state selection.State) selection.State {
		if ws.Tracking != nil {
			go ws.Tracking.TrackCategoryClear(sessionId)
		}
		return state.ClearCategories()
	})(w, r)
}

func (ws *WebServer) SortBy(w http.ResponseWriter, r *http.Request) {
	var payload sortPayload
	if err := decodeBody(r, &payload); err != nil && r.Method == http.MethodPost {
		common.HttpError(w, err.Error(), http.StatusBadRequest)
		return
	}
	column, err := types.ParseSortColumn(payload.Column)
	if err != nil && r.Method == http.MethodPost {
		common.HttpError(w, err.Error(), http.StatusBadRequest)
		return
	}
	ws.applyAction("sort", func(sessionId string, state selection.State) selection.State {
		next := state.SortBy(column)
		if ws.Tracking != nil {
			go ws.Tracking.TrackSort(sessionId, next.SortColumn, next.SortReversed)
		}
		return next
	})(w, r)
}

func (ws *WebServer) ResetAll(w http.ResponseWriter, r *http.Request) {
	ws.applyAction("reset", func(sessionId string, state selection.State) selection.State {
		if ws.Tracking != nil {
			go ws.Tracking.TrackReset(sessionId)
		}
		return state.ResetAll()
	})(w, r)
}
