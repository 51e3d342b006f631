package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/salepoint/salepoint-api/internal/domain/enum"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestComputeInvoice_AllRatesApply(t *testing.T) {
	comp := ComputeInvoice(dec("1000"), dec("10"), dec("15"), dec("5"), dec("1200"), enum.PaymentModeCash)

	assert.Equal(t, "100", comp.DiscountAmount.String())
	assert.Equal(t, "150", comp.VatAmount.String())
	assert.Equal(t, "50", comp.SdAmount.String())
	assert.Equal(t, "1100", comp.Total.String())
	assert.Equal(t, "100", comp.Change.String())
}

func TestComputeInvoice_ZeroRatesYieldSubtotal(t *testing.T) {
	comp := ComputeInvoice(dec("350.75"), decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, enum.PaymentModeCash)

	assert.Equal(t, "350.75", comp.Total.String())
	assert.True(t, comp.Change.IsZero())
}

func TestComputeInvoice_FractionalRates(t *testing.T) {
	comp := ComputeInvoice(dec("200"), dec("12.5"), decimal.Zero, decimal.Zero, decimal.Zero, enum.PaymentModeCash)

	assert.Equal(t, "25", comp.DiscountAmount.String())
	assert.Equal(t, "175", comp.Total.String())
}

func TestComputeInvoice_ChangeFloorsAtZero(t *testing.T) {
	comp := ComputeInvoice(dec("100"), decimal.Zero, decimal.Zero, decimal.Zero, dec("60"), enum.PaymentModeCash)

	assert.True(t, comp.Change.IsZero())
	assert.Equal(t, "60", comp.Received.String())
}

func TestComputeInvoice_EmptyCart(t *testing.T) {
	comp := ComputeInvoice(decimal.Zero, dec("10"), dec("15"), dec("5"), decimal.Zero, enum.PaymentModeCard)

	assert.True(t, comp.Total.IsZero())
	assert.Equal(t, enum.PaymentModeCard, comp.PaymentMode)
}

func TestCartLine_TotalAndCeiling(t *testing.T) {
	l := CartLine{ProductID: 1, Price: dec("120.50"), Quantity: 3, StockCeiling: 3}

	assert.Equal(t, "361.5", l.Total().String())
	assert.False(t, l.OverCeiling())

	l.Quantity = 4
	assert.True(t, l.OverCeiling())
}

func TestCartSubtotal(t *testing.T) {
	lines := []CartLine{
		{Price: dec("100"), Quantity: 2},
		{Price: dec("60.25"), Quantity: 1},
	}

	assert.Equal(t, "260.25", CartSubtotal(lines).String())
	assert.True(t, CartSubtotal(nil).IsZero())
}
