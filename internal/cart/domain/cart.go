package domain

import "github.com/shopspring/decimal"

// LineItem is one distinct product in the cart. Name, Price and Image are
// fixed at the time the product is first added; only Quantity changes after
// that.
type LineItem struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	Image    string
	Quantity int
}

// Subtotal is the unit price multiplied by the quantity.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Valid reports whether the item satisfies the cart invariants: a product id,
// a non-negative price and a quantity of at least one.
func (li LineItem) Valid() bool {
	return li.ID != "" && !li.Price.IsNegative() && li.Quantity >= 1
}
