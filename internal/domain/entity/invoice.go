package entity

import (
	"github.com/salepoint/salepoint-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// InvoiceComputation is the derived invoice panel state: subtotal from the
// cart, the operator-entered percentages, and every amount computed from
// them. It is ephemeral and recomputed on every cart or rate change, never
// persisted on its own.
type InvoiceComputation struct {
	SubTotal       decimal.Decimal  `json:"sub_total"`
	Discount       decimal.Decimal  `json:"discount"`
	Vat            decimal.Decimal  `json:"vat"`
	Sd             decimal.Decimal  `json:"sd"`
	DiscountAmount decimal.Decimal  `json:"discount_amount"`
	VatAmount      decimal.Decimal  `json:"vat_amount"`
	SdAmount       decimal.Decimal  `json:"sd_amount"`
	Total          decimal.Decimal  `json:"total"`
	PaymentMode    enum.PaymentMode `json:"payment_mode"`
	Received       decimal.Decimal  `json:"received"`
	Change         decimal.Decimal  `json:"change"`
}

var oneHundred = decimal.NewFromInt(100)

// ComputeInvoice derives all invoice amounts from a subtotal and the three
// percentage rates:
//
//	total = subtotal − subtotal×discount/100 + subtotal×vat/100 + subtotal×sd/100
//	change = max(received − total, 0)
func ComputeInvoice(subTotal, discount, vat, sd, received decimal.Decimal, mode enum.PaymentMode) InvoiceComputation {
	discountAmount := subTotal.Mul(discount).Div(oneHundred)
	vatAmount := subTotal.Mul(vat).Div(oneHundred)
	sdAmount := subTotal.Mul(sd).Div(oneHundred)
	total := subTotal.Sub(discountAmount).Add(vatAmount).Add(sdAmount)

	change := received.Sub(total)
	if change.IsNegative() {
		change = decimal.Zero
	}

	return InvoiceComputation{
		SubTotal:       subTotal,
		Discount:       discount,
		Vat:            vat,
		Sd:             sd,
		DiscountAmount: discountAmount,
		VatAmount:      vatAmount,
		SdAmount:       sdAmount,
		Total:          total,
		PaymentMode:    mode,
		Received:       received,
		Change:         change,
	}
}
