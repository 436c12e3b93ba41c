package handler

import (
	"net/http"

	"menuproxy-api/internal/service"
	"menuproxy-api/pkg/apierror"
	"menuproxy-api/pkg/response"

	"github.com/go-chi/chi/v5"
)

// CatalogHandler handles menu-related HTTP requests.
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// Locations handles GET /api/v1/locations
func (h *CatalogHandler) Locations(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalogService.Locations(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, result)
}

// Catalog handles GET /api/v1/catalog/{location_id}
func (h *CatalogHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	locationID := chi.URLParam(r, "location_id")
	if locationID == "" {
		response.Error(w, apierror.BadRequest("location_id is required"))
		return
	}

	result, err := h.catalogService.Catalog(r.Context(), locationID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, result)
}

// Categories handles GET /api/v1/categories/{location_id}
func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	locationID := chi.URLParam(r, "location_id")
	if locationID == "" {
		response.Error(w, apierror.BadRequest("location_id is required"))
		return
	}

	result, err := h.catalogService.Categories(r.Context(), locationID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, result)
}
