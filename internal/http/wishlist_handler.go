package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/chimcuccuccu/T2BIKE-sub000/internal/wishlist"
)

type WishlistHandler struct {
	wishlists *wishlist.Store
	products  ProductGetter
	timeout   time.Duration
}

func NewWishlistHandler(wishlists *wishlist.Store, products ProductGetter, timeout time.Duration) *WishlistHandler {
	return &WishlistHandler{
		wishlists: wishlists,
		products:  products,
		timeout:   timeout,
	}
}

type AddWishlistRequestDTO struct {
	ProductID int64 `json:"product_id"`
}

type WishlistResponseDTO struct {
	Products []ProductDTO `json:"products"`
	Count    int          `json:"count"`
}

func (h *WishlistHandler) respondList(w http.ResponseWriter, sessionID string) {
	products := h.wishlists.List(sessionID)
	respondJSON(w, http.StatusOK, WishlistResponseDTO{
		Products: toProductDTOs(products),
		Count:    len(products),
	})
}

func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "no_session", "missing storefront session")
		return
	}

	h.respondList(w, sessionID)
}

func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := sessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "no_session", "missing storefront session")
		return
	}

	var req AddWishlistRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}

	product, err := h.products.ProductDetail(ctx, req.ProductID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.wishlists.Add(sessionID, *product)
	h.respondList(w, sessionID)
}

func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "no_session", "missing storefront session")
		return
	}

	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	h.wishlists.Remove(sessionID, productID)
	h.respondList(w, sessionID)
}

func (h *WishlistHandler) Count(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "no_session", "missing storefront session")
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{"count": h.wishlists.Count(sessionID)})
}
