package domain

import "github.com/shopspring/decimal"

// Product is a catalog entry. Products are seeded once at startup and never
// mutated afterwards.
type Product struct {
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Brand    string          `json:"brand,omitempty"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
}
