// Package http is the storefront's HTTP surface. Handlers translate requests
// into service calls and service errors into the wire error shape; they hold
// no business rules of their own.
package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/chimcuccuccu/T2BIKE-sub000/internal/backend"
	"github.com/chimcuccuccu/T2BIKE-sub000/internal/checkout"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// handleServiceError maps known service and backend errors to HTTP statuses.
// Anything unrecognized becomes a 502: the storefront itself did not fail,
// the upstream did.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		respondError(w, http.StatusConflict, "empty_cart", err.Error())
	case errors.Is(err, checkout.ErrIllegalTransition):
		respondError(w, http.StatusConflict, "illegal_transition", err.Error())
	case errors.Is(err, checkout.ErrBadPaymentMethod):
		respondError(w, http.StatusBadRequest, "invalid_payment_method", err.Error())
	case errors.Is(err, checkout.ErrRegionNotResolved):
		respondError(w, http.StatusUnprocessableEntity, "region_not_resolved", err.Error())
	default:
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			handleBackendError(w, apiErr)
			return
		}
		respondError(w, http.StatusBadGateway, "upstream_error", err.Error())
	}
}

func handleBackendError(w http.ResponseWriter, apiErr *backend.APIError) {
	var httpStatus int
	var code string

	switch apiErr.Status {
	case http.StatusBadRequest:
		httpStatus = http.StatusBadRequest
		code = "invalid_argument"
	case http.StatusUnauthorized:
		httpStatus = http.StatusUnauthorized
		code = "unauthenticated"
	case http.StatusForbidden:
		httpStatus = http.StatusForbidden
		code = "permission_denied"
	case http.StatusNotFound:
		httpStatus = http.StatusNotFound
		code = "not_found"
	case http.StatusConflict:
		httpStatus = http.StatusConflict
		code = "conflict"
	default:
		httpStatus = http.StatusBadGateway
		code = "upstream_error"
	}

	respondError(w, httpStatus, code, apiErr.Message)
}
