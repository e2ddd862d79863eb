package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/yousef-2020-malik/retail-gpt-plugin/internal/catalog"
	"github.com/yousef-2020-malik/retail-gpt-plugin/internal/payment"
	"github.com/yousef-2020-malik/retail-gpt-plugin/internal/service"
	"github.com/yousef-2020-malik/retail-gpt-plugin/internal/store"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
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

// respondDomainError translates domain error kinds to transport status codes.
// This is the only place HTTP statuses are decided.
func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrCartNotFound),
		errors.Is(err, store.ErrItemNotFound),
		errors.Is(err, store.ErrOrderNotFound),
		errors.Is(err, catalog.ErrProductNotFound):
		respondError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, store.ErrEmptyCart):
		respondError(w, http.StatusBadRequest, "invalid_argument", err.Error())
	case errors.Is(err, service.ErrPaymentNotSucceeded):
		respondError(w, http.StatusBadRequest, "failed_precondition", err.Error())
	case errors.Is(err, payment.ErrProviderUnavailable):
		respondError(w, http.StatusBadRequest, "upstream_failure", err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
