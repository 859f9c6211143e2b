package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/chimcuccuccu/T2BIKE-sub000/internal/backend"
	"github.com/chimcuccuccu/T2BIKE-sub000/internal/catalog"
	"github.com/chimcuccuccu/T2BIKE-sub000/internal/domain"
	"github.com/chimcuccuccu/T2BIKE-sub000/internal/money"
)

type CatalogHandler struct {
	catalog *catalog.Service
	timeout time.Duration
}

func NewCatalogHandler(svc *catalog.Service, timeout time.Duration) *CatalogHandler {
	return &CatalogHandler{catalog: svc, timeout: timeout}
}

// ProductDTO decorates a product with the display price the grid shows.
type ProductDTO struct {
	domain.Product
	PriceDisplay string `json:"price_display"`
}

type ProductListResponseDTO struct {
	Products   []ProductDTO    `json:"products"`
	Page       int             `json:"page"`
	TotalPages int             `json:"total_pages"`
	Filters    catalog.Filters `json:"filters"`
}

func toProductDTOs(products []domain.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, ProductDTO{Product: p, PriceDisplay: money.FormatVND(p.Price)})
	}
	return out
}

// ListProducts serves the catalog grid. Price bounds arrive in the slider's
// million-VND units; the page parameter selects the client-side window.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	q := r.URL.Query()
	filters := catalog.DefaultFilters()
	if v := q.Get("price_min"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n >= 0 {
			filters.PriceMinUnits = n
		}
	}
	if v := q.Get("price_max"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n >= 0 {
			filters.PriceMaxUnits = n
		}
	}
	filters.Brand = q.Get("brand")
	filters.Category = q.Get("category")

	page := 1
	if v := q.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}

	products := h.catalog.Search(ctx, filters)
	window, totalPages := catalog.Paginate(products, page, catalog.ProductsPerPage)

	respondJSON(w, http.StatusOK, ProductListResponseDTO{
		Products:   toProductDTOs(window),
		Page:       page,
		TotalPages: totalPages,
		Filters:    filters,
	})
}

// ResetFilters restores the default filter set and the unfiltered first page.
func (h *CatalogHandler) ResetFilters(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	filters, products := h.catalog.Reset(ctx)
	window, totalPages := catalog.Paginate(products, 1, catalog.ProductsPerPage)

	respondJSON(w, http.StatusOK, ProductListResponseDTO{
		Products:   toProductDTOs(window),
		Page:       1,
		TotalPages: totalPages,
		Filters:    filters,
	})
}

// SearchProducts runs the header's free-text search.
func (h *CatalogHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	keyword := r.URL.Query().Get("q")
	if keyword == "" {
		respondError(w, http.StatusBadRequest, "missing_keyword", "q is required")
		return
	}

	page := 1
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}

	products := h.catalog.Keyword(ctx, keyword)
	window, totalPages := catalog.Paginate(products, page, catalog.ProductsPerPage)

	respondJSON(w, http.StatusOK, ProductListResponseDTO{
		Products:   toProductDTOs(window),
		Page:       page,
		TotalPages: totalPages,
		Filters:    catalog.DefaultFilters(),
	})
}

// BrowseCategory lists a category's products.
func (h *CatalogHandler) BrowseCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	category := chi.URLParam(r, "category")

	page := 1
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}

	products := h.catalog.Browse(ctx, category)
	window, totalPages := catalog.Paginate(products, page, catalog.ProductsPerPage)

	respondJSON(w, http.StatusOK, ProductListResponseDTO{
		Products:   toProductDTOs(window),
		Page:       page,
		TotalPages: totalPages,
		Filters:    catalog.DefaultFilters(),
	})
}

// ProductDetail serves the product page.
func (h *CatalogHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "id must be a positive integer")
		return
	}

	product, err := h.catalog.ProductDetail(ctx, id)
	if err != nil {
		if backend.IsNotFound(err) {
			respondError(w, http.StatusNotFound, "not_found", "product not found")
			return
		}
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ProductDTO{Product: *product, PriceDisplay: money.FormatVND(product.Price)})
}
