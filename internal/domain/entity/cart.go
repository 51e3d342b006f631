package entity

import "github.com/shopspring/decimal"

// CartLine is one product's entry in the current sale. Price, category and
// the VAT/SD rates are copied from the product descriptor at add-time and
// never re-fetched. StockCeiling is the stock figure captured when the line
// was created; merges are validated against it, not against later snapshots.
//
// The JSON shape matches the serialized cart the terminal persists between
// sessions.
type CartLine struct {
	ProductID    int             `json:"id"`
	Name         string          `json:"product_name"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	StockCeiling int             `json:"stock"`
	CategoryID   int             `json:"category"`
	VAT          decimal.Decimal `json:"vat"`
	SD           decimal.Decimal `json:"sd"`
}

// Total returns price × quantity for this line.
func (l CartLine) Total() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// OverCeiling reports whether the line's quantity exceeds the stock ceiling
// captured at add-time. Such lines stay visible in memory (so the operator
// sees the violation) but are dropped from durable writes.
func (l CartLine) OverCeiling() bool {
	return l.Quantity > l.StockCeiling
}

// CartSubtotal returns Σ price × quantity over the given lines.
func CartSubtotal(lines []CartLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Total())
	}
	return sum
}
