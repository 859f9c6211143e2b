package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/chimcuccuccu/T2BIKE-sub000/internal/cart"
	"github.com/chimcuccuccu/T2BIKE-sub000/internal/checkout"
	"github.com/chimcuccuccu/T2BIKE-sub000/internal/domain"
)

type CheckoutHandler struct {
	wizards *checkout.Manager
	carts   cart.Store
	orders  checkout.OrderCreator
	timeout time.Duration
}

func NewCheckoutHandler(wizards *checkout.Manager, carts cart.Store, orders checkout.OrderCreator, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		wizards: wizards,
		carts:   carts,
		orders:  orders,
		timeout: timeout,
	}
}

type SetPaymentMethodDTO struct {
	Method string `json:"method"`
}

type ValidationErrorResponse struct {
	Error  string               `json:"error"`
	Code   string               `json:"code"`
	Fields checkout.FieldErrors `json:"fields"`
}

type ConfirmResponseDTO struct {
	OrderID int64          `json:"order_id"`
	State   checkout.State `json:"state"`
}

// Provinces serves the address form's province/district options.
func (h *CheckoutHandler) Provinces(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, checkout.Provinces())
}

func (h *CheckoutHandler) State(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "no_session", "missing storefront session")
		return
	}

	respondJSON(w, http.StatusOK, h.wizards.Get(sessionID).State())
}

// SubmitInfo validates the customer form. Field errors come back as 422 with
// the per-field Vietnamese messages the form renders inline.
func (h *CheckoutHandler) SubmitInfo(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "no_session", "missing storefront session")
		return
	}

	var info domain.CustomerInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	wizard := h.wizards.Get(sessionID)
	if fieldErrs := wizard.SubmitInfo(info); len(fieldErrs) > 0 {
		respondJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
			Error:  "customer info is invalid",
			Code:   "validation_failed",
			Fields: fieldErrs,
		})
		return
	}

	respondJSON(w, http.StatusOK, wizard.State())
}

func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "no_session", "missing storefront session")
		return
	}

	wizard := h.wizards.Get(sessionID)
	if err := wizard.Back(); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, wizard.State())
}

func (h *CheckoutHandler) SetPaymentMethod(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "no_session", "missing storefront session")
		return
	}

	var req SetPaymentMethodDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	wizard := h.wizards.Get(sessionID)
	if err := wizard.SetPaymentMethod(checkout.PaymentMethod(req.Method)); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, wizard.State())
}

func (h *CheckoutHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := sessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "no_session", "missing storefront session")
		return
	}

	wizard := h.wizards.Get(sessionID)
	orderID, err := wizard.Confirm(ctx, sessionID, h.carts, h.orders)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, ConfirmResponseDTO{
		OrderID: orderID,
		State:   wizard.State(),
	})
}

func (h *CheckoutHandler) StartOver(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "no_session", "missing storefront session")
		return
	}

	wizard := h.wizards.Get(sessionID)
	wizard.StartOver()
	respondJSON(w, http.StatusOK, wizard.State())
}
