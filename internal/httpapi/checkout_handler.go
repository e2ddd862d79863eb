package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/yousef-2020-malik/retail-gpt-plugin/internal/domain"
	"github.com/yousef-2020-malik/retail-gpt-plugin/internal/payment"
)

// CheckoutOperations is what the checkout handler needs from the checkout
// service.
type CheckoutOperations interface {
	PlaceOrder(ctx context.Context, cartID string) (*domain.Order, error)
	CreatePaymentIntent(ctx context.Context, cartID string) (*payment.Intent, error)
	ConfirmOrder(ctx context.Context, cartID, intentID string) (*domain.Order, error)
}

type CheckoutHandler struct {
	checkout CheckoutOperations
}

func NewCheckoutHandler(checkout CheckoutOperations) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

type placeOrderRequestDTO struct {
	CartID string `json:"cart_id"`
}

type confirmOrderRequestDTO struct {
	CartID          string `json:"cart_id"`
	PaymentIntentID string `json:"payment_intent_id"`
}

type paymentIntentResponseDTO struct {
	PaymentIntentID string `json:"payment_intent_id"`
	ClientSecret    string `json:"client_secret"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
}

type confirmOrderResponseDTO struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// POST /checkout/place-order
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	order, err := h.checkout.PlaceOrder(r.Context(), req.CartID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

// POST /checkout/create-payment-intent
func (h *CheckoutHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	intent, err := h.checkout.CreatePaymentIntent(r.Context(), req.CartID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, paymentIntentResponseDTO{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		Amount:          intent.AmountMinor,
		Currency:        intent.Currency,
	})
}

// POST /checkout/confirm
func (h *CheckoutHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req confirmOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	order, err := h.checkout.ConfirmOrder(r.Context(), req.CartID, req.PaymentIntentID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, confirmOrderResponseDTO{
		OrderID: order.ID,
		Status:  order.Status.String(),
	})
}
