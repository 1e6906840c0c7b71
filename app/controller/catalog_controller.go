package controller

import (
	"net/http"

	"github.com/sylvaingonzalez1986-ship-it/les-champs-bretons-sub001/service"
)

// CatalogController serves the read-only listings the admin screens render
// from the local stores (producers, lots, packs, promos). The CRUD forms for
// these entities live in the excluded UI layer; this side only lists and
// transports them.
type CatalogController struct {
	stores *service.Stores
}

// NewCatalogController creates a new CatalogController.
func NewCatalogController(stores *service.Stores) *CatalogController {
	return &CatalogController{stores: stores}
}

// ListProducers handles GET /admin/producers.
func (c *CatalogController) ListProducers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, map[string]any{"producers": c.stores.Producers.List()})
}

// ListLots handles GET /admin/lots.
func (c *CatalogController) ListLots(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, map[string]any{"lots": c.stores.Lots.List()})
}

// ListPacks handles GET /admin/packs.
func (c *CatalogController) ListPacks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, map[string]any{"packs": c.stores.Packs.List()})
}

// ListPromos handles GET /admin/promos.
func (c *CatalogController) ListPromos(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, map[string]any{"promos": c.stores.Promos.List()})
}
