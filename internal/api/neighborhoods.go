package api

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MikeSquared-Agency/RentWise/internal/catalog"
)

type NeighborhoodsHandler struct {
	catalog *catalog.Catalog
}

func NewNeighborhoodsHandler(c *catalog.Catalog) *NeighborhoodsHandler {
	return &NeighborhoodsHandler{catalog: c}
}

// List returns every neighborhood in catalog order.
// GET /api/v1/neighborhoods
func (h *NeighborhoodsHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.All())
}

// Get returns one neighborhood by name.
// GET /api/v1/neighborhoods/{name}
func (h *NeighborhoodsHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}

	n, err := h.catalog.Get(name)
	if errors.Is(err, catalog.ErrNotFound) {
		writeError(w, http.StatusNotFound, "neighborhood not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, n)
}

type dimensionInfo struct {
	ID    catalog.Dimension `json:"id"`
	Label string            `json:"label"`
}

// Dimensions returns the dimension set with display labels.
// GET /api/v1/dimensions
func (h *NeighborhoodsHandler) Dimensions(w http.ResponseWriter, r *http.Request) {
	dims := catalog.Dimensions()
	out := make([]dimensionInfo, len(dims))
	for i, d := range dims {
		out[i] = dimensionInfo{ID: d, Label: d.Label()}
	}
	writeJSON(w, http.StatusOK, out)
}
