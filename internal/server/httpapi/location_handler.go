package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avoronkov/wellfinder/internal/discovery"
	"github.com/avoronkov/wellfinder/internal/geo"
	"github.com/avoronkov/wellfinder/internal/logging"
)

// LocationHandler serves the /api/v1/locations and /api/v1/categories
// endpoints.
type LocationHandler struct {
	discovery discovery.Service
	logger    logging.Logger
}

func NewLocationHandler(svc discovery.Service, logger logging.Logger) *LocationHandler {
	return &LocationHandler{discovery: svc, logger: logger}
}

// List handles GET /api/v1/locations. The optional q query parameter narrows
// the result; without it the full catalog is returned.
func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	locations, err := h.discovery.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.logger.Error(r.Context(), "location search failed", "error", err)
		respondError(w, http.StatusInternalServerError, "search failed")
		return
	}
	respondJSON(w, http.StatusOK, locations)
}

// Get handles GET /api/v1/locations/{locationID}.
func (h *LocationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "locationID")

	location, err := h.discovery.GetByID(r.Context(), id)
	if err != nil {
		h.logger.Error(r.Context(), "location lookup failed", "error", err, "id", id)
		respondError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if location == nil {
		respondError(w, http.StatusNotFound, "location not found")
		return
	}
	respondJSON(w, http.StatusOK, location)
}

// Nearby handles GET /api/v1/locations/nearby?lat=&lon=&radius=. The radius
// is in miles.
func (h *LocationHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid lat")
		return
	}
	lon, err := strconv.ParseFloat(q.Get("lon"), 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid lon")
		return
	}
	radius, err := strconv.ParseFloat(q.Get("radius"), 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid radius")
		return
	}

	locations, err := h.discovery.GetNearby(r.Context(), geo.Coordinate{Lat: lat, Lon: lon}, radius)
	if err != nil {
		h.logger.Error(r.Context(), "nearby query failed", "error", err)
		respondError(w, http.StatusInternalServerError, "nearby query failed")
		return
	}
	respondJSON(w, http.StatusOK, locations)
}

// Categories handles GET /api/v1/categories.
func (h *LocationHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.discovery.GetCategories(r.Context())
	if err != nil {
		h.logger.Error(r.Context(), "category query failed", "error", err)
		respondError(w, http.StatusInternalServerError, "category query failed")
		return
	}
	respondJSON(w, http.StatusOK, CategoriesResponse{Categories: categories})
}
