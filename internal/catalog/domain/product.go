package domain

import "github.com/shopspring/decimal"

// Product is a catalog entry as the content API publishes it.
type Product struct {
	ID            string
	Slug          string
	Name          string
	Price         decimal.Decimal
	OriginalPrice decimal.Decimal // zero when the product is not discounted
	Description   string
	Category      string
	InStock       bool
	Image         string
	Featured      bool
}

// Discounted reports whether the product carries a crossed-out original
// price above the current one.
func (p Product) Discounted() bool {
	return p.OriginalPrice.GreaterThan(p.Price)
}

type Collection struct {
	ID          string
	Slug        string
	Name        string
	Description string
	Image       string
	Products    []Product
}
