package entity

import "github.com/shopspring/decimal"

// Category is a purchasable product group fetched from the catalog backend.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"category_name"`
}

// ProductDescriptor is a point-in-time snapshot of a sellable product as the
// catalog backend reported it. It is immutable once fetched; in particular the
// stock figure is not live-locked and only serves as the ceiling captured when
// the product enters the cart.
type ProductDescriptor struct {
	ID         int             `json:"id"`
	Name       string          `json:"product_name"`
	Price      decimal.Decimal `json:"price"`
	Stock      int             `json:"stock"`
	CategoryID int             `json:"category"`
	VAT        decimal.Decimal `json:"vat"`
	SD         decimal.Decimal `json:"sd"`
}
