package request

import "encoding/json"

// SetRateRequest stores one of the invoice percentages. Percent arrives as a
// raw JSON value because the UI sends whatever the operator typed; malformed
// input degrades to zero rather than failing the edit.
type SetRateRequest struct {
	Kind    string          `json:"kind" binding:"required"`
	Percent json.RawMessage `json:"percent"`
}

// PercentText normalizes the raw percent field to a plain string.
func (r *SetRateRequest) PercentText() string {
	if len(r.Percent) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(r.Percent, &s); err == nil {
		return s
	}
	return string(r.Percent)
}

// SetPaymentModeRequest selects the payment mode for the sale.
type SetPaymentModeRequest struct {
	PaymentMode string `json:"payment_mode" binding:"required"`
}

// CashRequest adds one tapped cash denomination to the received amount.
type CashRequest struct {
	Value float64 `json:"value" binding:"required"`
}

// SetReceivedRequest overrides the received amount directly.
type SetReceivedRequest struct {
	Value float64 `json:"value"`
}

// SaleListRequest filters the local sale journal.
type SaleListRequest struct {
	FormDate  string `form:"form_date"`
	ToDate    string `form:"to_date"`
	InvoiceNo string `form:"invoice_no"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
