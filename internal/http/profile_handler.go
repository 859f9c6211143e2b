package http

import (
	"context"
	"net/http"
	"time"

	"github.com/chimcuccuccu/T2BIKE-sub000/internal/domain"
	"github.com/chimcuccuccu/T2BIKE-sub000/internal/profile"
)

type ProfileHandler struct {
	profile *profile.Service
	timeout time.Duration
}

func NewProfileHandler(svc *profile.Service, timeout time.Duration) *ProfileHandler {
	return &ProfileHandler{profile: svc, timeout: timeout}
}

// OrderDTO decorates an order with the Vietnamese status label the history
// view shows.
type OrderDTO struct {
	domain.Order
	StatusLabel string `json:"status_label"`
}

func toOrderDTOs(orders []domain.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderDTO{Order: o, StatusLabel: o.Status.Label()})
	}
	return out
}

// OrderHistory lists the customer's orders, narrowed by the optional status
// and q query parameters.
func (h *ProfileHandler) OrderHistory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := userIDFromContext(r.Context())
	if userID == 0 {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	status := domain.OrderStatus(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		respondError(w, http.StatusBadRequest, "invalid_status", "unknown order status")
		return
	}

	orders, err := h.profile.History(ctx, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	orders = profile.FilterByStatus(orders, status)
	orders = profile.Search(orders, r.URL.Query().Get("q"))

	respondJSON(w, http.StatusOK, toOrderDTOs(orders))
}

// OrderStats serves the profile header's totals.
func (h *ProfileHandler) OrderStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := userIDFromContext(r.Context())
	if userID == 0 {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	stats, err := h.profile.Stats(ctx, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
