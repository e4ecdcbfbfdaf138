package catalog

import (
	"log"
	"sync"

	"github.com/matst80/slask-listing/pkg/types"
)

// Holder keeps the current reference data and its enriched view, swapped
// atomically on reload so readers never see a half-loaded catalog.
type Holder struct {
	mu       sync.RWMutex
	dir      string
	data     *types.ReferenceData
	enriched []types.EnrichedProduct
}

// NewDiskHolder loads and validates the catalog from dir.
func NewDiskHolder(dir string) (*Holder, error) {
	h := &Holder{dir: dir}
	if err := h.Reload(); err != nil {
		return nil, err
	}
	return h, nil
}

// NewStaticHolder wraps already loaded reference data, used by tests and
// embedded setups without a data directory.
func NewStaticHolder(data *types.ReferenceData) (*Holder, error) {
	enriched, err := Enrich(data)
	if err != nil {
		return nil, err
	}
	return &Holder{data: data, enriched: enriched}, nil
}

// Reload re-reads the data directory. On any error the previous catalog
// stays in place.
func (h *Holder) Reload() error {
	if h.dir == "" {
		return nil
	}
	data, err := LoadReferenceData(h.dir)
	if err != nil {
		return err
	}
	enriched, err := Enrich(data)
	if err != nil {
		return err
	}
	h.mu.Lock()
	h.data = data
	h.enriched = enriched
	h.mu.Unlock()
	log.Printf("catalog loaded from %s: %d users, %d categories, %d products", h.dir, len(data.Users), len(data.Categories), len(data.Products))
	return nil
}

// Items returns the enriched product sequence. The slice is shared and
// must be treated as read-only.
func (h *Holder) Items() []types.EnrichedProduct {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.enriched
}

func (h *Holder) Users() []types.User {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.data.Users
}

func (h *Holder) Categories() []types.Category {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.data.Categories
}
