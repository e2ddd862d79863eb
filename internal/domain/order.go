package domain

import "github.com/shopspring/decimal"

// OrderStatus represents the terminal state a checkout reached.
type OrderStatus string

const (
	// OrderStatusPlaced is set by the direct-placement flow.
	OrderStatusPlaced OrderStatus = "PLACED"
	// OrderStatusConfirmed is set after a payment intent succeeded.
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
)

func (s OrderStatus) String() string {
	return string(s)
}

// Order is the immutable snapshot of a cart taken at checkout. No operation
// mutates an order after creation.
type Order struct {
	ID              string          `json:"order_id"`
	Status          OrderStatus     `json:"status"`
	Items           []LineItem      `json:"items"`
	Total           decimal.Decimal `json:"total"`
	Currency        string          `json:"currency"`
	PaymentIntentID string          `json:"payment_intent_id,omitempty"`
}

// Clone returns a deep copy so the stored order can never be mutated through
// a returned snapshot.
func (o *Order) Clone() *Order {
	cp := *o
	cp.Items = make([]LineItem, len(o.Items))
	copy(cp.Items, o.Items)
	return &cp
}
