package store

import (
	"errors"

	"github.com/yousef-2020-malik/retail-gpt-plugin/internal/domain"
)

// Common errors returned by the stores
var (
	ErrCartNotFound  = errors.New("cart not found")
	ErrItemNotFound  = errors.New("item not found in cart")
	ErrOrderNotFound = errors.New("order not found")
	ErrEmptyCart     = errors.New("cart is empty")
)

// CartStore owns all live carts. Every mutation recomputes the cart total in
// the same critical section, so callers never observe a stale total.
type CartStore interface {
	// Create initializes an empty cart with the given default currency.
	Create(currency string) (*domain.Cart, error)

	// Get returns a snapshot of the cart or ErrCartNotFound.
	Get(cartID string) (*domain.Cart, error)

	// AddItem merges qty of the product into the cart (one line per sku).
	AddItem(cartID string, p domain.Product, qty int) (*domain.Cart, error)

	// UpdateQuantity overwrites the line quantity; zero deletes the line.
	// Returns ErrItemNotFound if the sku is not in the cart.
	UpdateQuantity(cartID, sku string, qty int) (*domain.Cart, error)

	// RemoveItem deletes the line or returns ErrItemNotFound.
	RemoveItem(cartID, sku string) (*domain.Cart, error)

	// Clear empties the cart.
	Clear(cartID string) (*domain.Cart, error)

	// TakeForOrder removes the cart and returns its final state in one
	// atomic step. Returns ErrEmptyCart if the cart has no items; the cart
	// is left in place in that case.
	TakeForOrder(cartID string) (*domain.Cart, error)
}

// OrderStore holds finalized orders. Orders are write-once: Create assigns an
// id and stores a snapshot, Get returns copies.
type OrderStore interface {
	Create(order domain.Order) (*domain.Order, error)
	Get(orderID string) (*domain.Order, error)
}
