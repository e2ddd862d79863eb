package domain

import "github.com/shopspring/decimal"

// LineItem is one sku's quantity and captured price within a cart. The unit
// price is frozen at the moment the sku is first added; re-adding the same sku
// only increments the quantity.
type LineItem struct {
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand,omitempty"`
	Quantity  int             `json:"qty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Currency  string          `json:"currency"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// Cart is a mutable, in-progress collection of line items. Total is always
// derived from the current items, never set directly.
type Cart struct {
	ID       string          `json:"cart_id"`
	Currency string          `json:"currency"`
	Items    []LineItem      `json:"items"`
	Total    decimal.Decimal `json:"total"`
}

// AddProduct merges qty of p into the cart. An existing line for the sku keeps
// its captured unit price and gains quantity; otherwise a new line is appended
// at the product's current price. The first added product sets the cart
// currency.
func (c *Cart) AddProduct(p Product, qty int) {
	if len(c.Items) == 0 && p.Currency != "" {
		c.Currency = p.Currency
	}

	for i := range c.Items {
		if c.Items[i].SKU == p.SKU {
			c.Items[i].Quantity += qty
			c.recalc()
			return
		}
	}

	c.Items = append(c.Items, LineItem{
		SKU:       p.SKU,
		Name:      p.Name,
		Brand:     p.Brand,
		Quantity:  qty,
		UnitPrice: p.Price,
		Currency:  p.Currency,
	})
	c.recalc()
}

// SetQuantity overwrites the quantity of the line for sku. Zero deletes the
// line. Returns false if the sku is not in the cart.
func (c *Cart) SetQuantity(sku string, qty int) bool {
	for i := range c.Items {
		if c.Items[i].SKU != sku {
			continue
		}
		if qty == 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		} else {
			c.Items[i].Quantity = qty
		}
		c.recalc()
		return true
	}
	return false
}

// RemoveLine deletes the line for sku. Returns false if the sku is not in the
// cart.
func (c *Cart) RemoveLine(sku string) bool {
	for i := range c.Items {
		if c.Items[i].SKU == sku {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.recalc()
			return true
		}
	}
	return false
}

// Clear removes every line item.
func (c *Cart) Clear() {
	c.Items = c.Items[:0]
	c.recalc()
}

// IsEmpty reports whether the cart has no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Clone returns a deep copy so callers never share the items slice.
func (c *Cart) Clone() *Cart {
	cp := *c
	cp.Items = make([]LineItem, len(c.Items))
	copy(cp.Items, c.Items)
	return &cp
}

// recalc rederives every line total and the cart total, rounding each to two
// decimal places at every step so repeated updates cannot accumulate drift.
func (c *Cart) recalc() {
	total := decimal.Zero
	for i := range c.Items {
		it := &c.Items[i]
		it.LineTotal = it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))).Round(2)
		total = total.Add(it.LineTotal)
	}
	c.Total = total.Round(2)
}
