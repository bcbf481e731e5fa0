package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"eastern-store/internal/domain"
	"eastern-store/internal/service"

	"github.com/go-chi/chi/v5"
)

// CatalogHandler exposes catalog browsing endpoints
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// Categories lists product categories
func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogService.Categories(r.Context())
	if err != nil {
		http.Error(w, `{"error":"Failed to load categories"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// Products lists the full catalog
func (h *CatalogHandler) Products(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.Products(r.Context())
	if err != nil {
		http.Error(w, `{"error":"Failed to load products"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// ProductsByCategory lists the products of one category
func (h *CatalogHandler) ProductsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "id")

	products, err := h.catalogService.ProductsByCategory(r.Context(), categoryID)
	if errors.Is(err, domain.ErrCategoryNotFound) {
		http.Error(w, `{"error":"Category not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, `{"error":"Failed to load products"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// Product returns a single product
func (h *CatalogHandler) Product(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.catalogService.Product(r.Context(), id)
	if errors.Is(err, domain.ErrProductNotFound) {
		http.Error(w, `{"error":"Product not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, `{"error":"Failed to load product"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// Featured lists the showcase products on the landing page
func (h *CatalogHandler) Featured(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.Featured(r.Context())
	if err != nil {
		http.Error(w, `{"error":"Failed to load products"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// BestSellers lists the top rated products
func (h *CatalogHandler) BestSellers(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.BestSellers(r.Context())
	if err != nil {
		http.Error(w, `{"error":"Failed to load products"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
