package server

import (
	"net/http"
	"net/http/pprof"

	"github.com/matst80/slask-listing/pkg/catalog"
	"github.com/matst80/slask-listing/pkg/listing"
	"github.com/matst80/slask-listing/pkg/selection"
	"github.com/matst80/slask-listing/pkg/tracking"
	"github.com/matst80/slask-listing/pkg/types"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type WebServer struct {
	Catalog   *catalog.Holder
	Selection selection.Storage
	Pipeline  *listing.Pipeline
	Tracking  tracking.Tracking
}

// ListingResponse is what every listing and action endpoint returns, the
// current selection plus the filtered and sorted rows. Items is always a
// materialized slice so an empty result encodes as [] and the UI can show
// its "no products matching" message.
type ListingResponse struct {
	Selection  selection.State         `json:"selection"`
	Items      []types.EnrichedProduct `json:"items"`
	TotalItems int                     `json:"totalItems"`
}

func (ws *WebServer) CreateHandler(enableProfiling bool) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/listing", ws.Listing)
	mux.HandleFunc("/api/users", ws.Users)
	mux.HandleFunc("/api/categories", ws.Categories)
	mux.HandleFunc("/api/query", ws.SetQuery)
	mux.HandleFunc("/api/owner", ws.ToggleOwner)
	mux.HandleFunc("/api/category", ws.ToggleCategory)
	mux.HandleFunc("/api/category/clear", ws.ClearCategories)
	mux.HandleFunc("/api/sort", ws.SortBy)
	mux.HandleFunc("/api/reset", ws.ResetAll)
	mux.HandleFunc("/admin/reload", ws.AuthMiddleware(ws.Reload))
	mux.Handle("/metrics", promhttp.Handler())
	if enableProfiling {
		mux.HandleFunc("/debug/pprof/", pprof.Index)
		mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	}
	return mux
}
