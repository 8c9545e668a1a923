package domain

import "github.com/shopspring/decimal"

// DisplayPrice is the price the customer pays: the sale price when one is
// set, the list price otherwise. Recomputed on every read, never persisted.
func (p *Product) DisplayPrice() decimal.Decimal {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

// IsOnSale reports whether the product carries a discount. A sale price at or
// above the list price does not count as a sale.
func (p *Product) IsOnSale() bool {
	return p.SalePrice != nil && p.SalePrice.LessThan(p.Price)
}
