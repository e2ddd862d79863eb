package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yousef-2020-malik/retail-gpt-plugin/internal/domain"
)

// CartOperations is what the cart handler needs from the cart service.
type CartOperations interface {
	CreateCart(ctx context.Context) (*domain.Cart, error)
	GetCart(ctx context.Context, cartID string) (*domain.Cart, error)
	AddItem(ctx context.Context, cartID, sku string, qty int) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, cartID, sku string, qty int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, cartID, sku string) (*domain.Cart, error)
	ClearCart(ctx context.Context, cartID string) (*domain.Cart, error)
}

type CartHandler struct {
	carts CartOperations
}

func NewCartHandler(carts CartOperations) *CartHandler {
	return &CartHandler{carts: carts}
}

type addItemRequestDTO struct {
	CartID string `json:"cart_id"`
	SKU    string `json:"sku"`
	Qty    int    `json:"qty"`
}

type updateQuantityRequestDTO struct {
	CartID string `json:"cart_id"`
	SKU    string `json:"sku"`
	Qty    int    `json:"qty"`
}

type removeItemRequestDTO struct {
	CartID string `json:"cart_id"`
	SKU    string `json:"sku"`
}

// POST /cart/create
func (h *CartHandler) Create(w http.ResponseWriter, r *http.Request) {
	cart, err := h.carts.CreateCart(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cart)
}

// GET /cart/{cart_id}
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	cart, err := h.carts.GetCart(r.Context(), chi.URLParam(r, "cart_id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cart)
}

// POST /cart/items/add
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	cart, err := h.carts.AddItem(r.Context(), req.CartID, req.SKU, req.Qty)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cart)
}

// POST /cart/items/update
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	cart, err := h.carts.UpdateQuantity(r.Context(), req.CartID, req.SKU, req.Qty)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cart)
}

// POST /cart/items/remove
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	var req removeItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	cart, err := h.carts.RemoveItem(r.Context(), req.CartID, req.SKU)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cart)
}

// POST /cart/clear/{cart_id}
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	cart, err := h.carts.ClearCart(r.Context(), chi.URLParam(r, "cart_id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cart)
}
