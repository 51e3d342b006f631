package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/salepoint/salepoint-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SaleLine is one cart line frozen at submission time, in the wire shape the
// sales backend expects.
type SaleLine struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Category int             `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Stock    int             `json:"stock"`
	Vat      decimal.Decimal `json:"vat"`
	Sd       decimal.Decimal `json:"sd"`
}

// FinalizedSale is the write-once record submitted to the sales backend upon
// successful checkout. EntryDate is the local calendar date in the store's
// configured timezone, formatted YYYY-MM-DD.
type FinalizedSale struct {
	EntryDate   string           `json:"entryDate"`
	Total       decimal.Decimal  `json:"total"`
	Discount    decimal.Decimal  `json:"discount"`
	Vat         decimal.Decimal  `json:"vat"`
	Sd          decimal.Decimal  `json:"sd"`
	PaymentMode enum.PaymentMode `json:"paymentMode"`
	Received    decimal.Decimal  `json:"received"`
	Change      decimal.Decimal  `json:"change"`
	Products    []SaleLine       `json:"products"`
}

// SaleRecord is the terminal's local journal entry for a sale the backend
// accepted. It exists for the sale-list screen and auditing; the backend
// remains the system of record.
type SaleRecord struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNo   string           `gorm:"size:100;index;not null" json:"invoice_no"`
	EntryDate   string           `gorm:"size:10;index;not null" json:"entry_date"`
	Total       decimal.Decimal  `gorm:"type:numeric(14,2)" json:"total"`
	Discount    decimal.Decimal  `gorm:"type:numeric(7,2)" json:"discount"`
	Vat         decimal.Decimal  `gorm:"type:numeric(7,2)" json:"vat"`
	Sd          decimal.Decimal  `gorm:"type:numeric(7,2)" json:"sd"`
	PaymentMode enum.PaymentMode `gorm:"default:0" json:"payment_mode"`
	Received    decimal.Decimal  `gorm:"type:numeric(14,2)" json:"received"`
	Change      decimal.Decimal  `gorm:"type:numeric(14,2)" json:"change"`
	Lines       string           `gorm:"type:text" json:"-"` // serialized []SaleLine
	CreatedAt   time.Time        `json:"created_at"`
}

// BeforeCreate generates a UUID before inserting a new sale record
func (r *SaleRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleRecord model
func (SaleRecord) TableName() string {
	return "sale_records"
}
