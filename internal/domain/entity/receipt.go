package entity

// ReceiptHeader holds the store header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Currency  string `json:"currency,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Receipt is a value object representing a printable receipt. It is composed
// from the finalized sale at print time and never stored.
type Receipt struct {
	Header      ReceiptHeader `json:"header"`
	InvoiceNo   string        `json:"invoice_no"`
	Date        string        `json:"date"`
	PaymentMode string        `json:"payment_mode,omitempty"`
	Items       []ReceiptItem `json:"items"`
	SubTotal    float64       `json:"sub_total"`
	Discount    float64       `json:"discount"`
	VAT         float64       `json:"vat"`
	SD          float64       `json:"sd"`
	Total       float64       `json:"total"`
	Received    float64       `json:"received"`
	Change      float64       `json:"change"`
}
