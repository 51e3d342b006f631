package service

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/salepoint/salepoint-api/internal/domain/entity"
	"github.com/salepoint/salepoint-api/internal/domain/enum"
	"github.com/salepoint/salepoint-api/internal/domain/repository"
	"github.com/salepoint/salepoint-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// InvoiceService derives the payable total from the cart subtotal and the
// operator-entered discount/VAT/SD percentages, tracks the amount tendered,
// and finalizes the sale against the remote sales API.
type InvoiceService struct {
	mu       sync.Mutex
	cart     *CartService
	sales    repository.SalesClient
	journal  repository.SaleRepository
	printer  ReceiptPrinter
	location *time.Location

	discount decimal.Decimal
	vat      decimal.Decimal
	sd       decimal.Decimal
	mode     enum.PaymentMode
	received decimal.Decimal
}

// ReceiptPrinter renders and prints a finalized sale. Printing is
// best-effort; failures never affect the sale.
type ReceiptPrinter interface {
	PrintSaleReceipt(sale *entity.FinalizedSale, invoiceNo string) (*entity.Receipt, error)
}

// NewInvoiceService creates an invoice calculator over the given cart.
// journal and receiptPrinter may be nil; both are best-effort side channels.
func NewInvoiceService(
	cart *CartService,
	sales repository.SalesClient,
	journal repository.SaleRepository,
	receiptPrinter ReceiptPrinter,
	location *time.Location,
) *InvoiceService {
	if location == nil {
		location = time.UTC
	}
	return &InvoiceService{
		cart:     cart,
		sales:    sales,
		journal:  journal,
		printer:  receiptPrinter,
		location: location,
		mode:     enum.PaymentModeCash,
	}
}

// ParsePercent converts operator-entered percentage text to a decimal.
// Malformed input degrades to 0 rather than failing the edit.
func ParsePercent(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// SetRate stores a percentage input. Negative values are clamped to 0.
func (s *InvoiceService) SetRate(kind enum.RateKind, percent decimal.Decimal) {
	if percent.IsNegative() {
		percent = decimal.Zero
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	switch kind {
	case enum.RateKindDiscount:
		s.discount = percent
	case enum.RateKindVat:
		s.vat = percent
	case enum.RateKindSd:
		s.sd = percent
	}
}

// SetPaymentMode selects how the sale will be paid.
func (s *InvoiceService) SetPaymentMode(mode enum.PaymentMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
}

// AddCash increments the received amount by one tapped denomination. There is
// no upper bound.
func (s *InvoiceService) AddCash(value decimal.Decimal) error {
	if !value.IsPositive() {
		return apperror.NewBadRequestError("Cash value must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.received = s.received.Add(value)
	return nil
}

// SetReceived overrides the received amount directly. Negative input is
// floored to 0.
func (s *InvoiceService) SetReceived(value decimal.Decimal) {
	if value.IsNegative() {
		value = decimal.Zero
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.received = value
}

// ResetReceived zeroes the received amount.
func (s *InvoiceService) ResetReceived() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.received = decimal.Zero
}

// ComputeTotals derives the invoice panel state from the current cart
// subtotal and rates. Nothing is cached; every call recomputes.
func (s *InvoiceService) ComputeTotals() entity.InvoiceComputation {
	subTotal := s.cart.Subtotal()

	s.mu.Lock()
	defer s.mu.Unlock()
	return entity.ComputeInvoice(subTotal, s.discount, s.vat, s.sd, s.received, s.mode)
}

// Submit finalizes the sale. The payment guard runs before any network
// effect: received must cover the total or nothing is sent. On backend
// success the receipt is printed, the sale is journaled (both best-effort),
// and all invoice state plus the cart are reset. Backend failure leaves cart
// and invoice state exactly as they were.
func (s *InvoiceService) Submit(ctx context.Context) (*entity.FinalizedSale, string, error) {
	lines := s.cart.Lines()
	subTotal := entity.CartSubtotal(lines)

	s.mu.Lock()
	defer s.mu.Unlock()

	comp := entity.ComputeInvoice(subTotal, s.discount, s.vat, s.sd, s.received, s.mode)
	if s.received.LessThan(comp.Total) {
		return nil, "", apperror.NewInsufficientPaymentError()
	}

	products := make([]entity.SaleLine, 0, len(lines))
	for _, l := range lines {
		products = append(products, entity.SaleLine{
			ID:       l.ProductID,
			Name:     l.Name,
			Category: l.CategoryID,
			Price:    l.Price,
			Quantity: l.Quantity,
			Stock:    l.StockCeiling,
			Vat:      l.VAT,
			Sd:       l.SD,
		})
	}

	sale := &entity.FinalizedSale{
		EntryDate:   time.Now().In(s.location).Format("2006-01-02"),
		Total:       comp.Total,
		Discount:    s.discount,
		Vat:         s.vat,
		Sd:          s.sd,
		PaymentMode: s.mode,
		Received:    s.received,
		Change:      s.received.Sub(comp.Total),
		Products:    products,
	}

	invoiceNo, err := s.sales.SubmitSale(ctx, sale)
	if err != nil {
		return nil, "", err
	}

	// The sale is recorded remotely from here on: the receipt and the local
	// journal must not block or reverse the reset.
	if s.printer != nil {
		if _, err := s.printer.PrintSaleReceipt(sale, invoiceNo); err != nil {
			log.Printf("Receipt print failed for invoice %s: %v", invoiceNo, err)
		}
	}
	if s.journal != nil {
		if err := s.journalSale(ctx, sale, invoiceNo); err != nil {
			log.Printf("Journal write failed for invoice %s: %v", invoiceNo, err)
		}
	}

	s.discount = decimal.Zero
	s.vat = decimal.Zero
	s.sd = decimal.Zero
	s.mode = enum.PaymentModeCash
	s.received = decimal.Zero

	if err := s.cart.Clear(ctx); err != nil {
		log.Printf("Cart clear failed after invoice %s: %v", invoiceNo, err)
	}

	return sale, invoiceNo, nil
}

func (s *InvoiceService) journalSale(ctx context.Context, sale *entity.FinalizedSale, invoiceNo string) error {
	linesJSON, err := json.Marshal(sale.Products)
	if err != nil {
		return err
	}
	return s.journal.Create(ctx, &entity.SaleRecord{
		InvoiceNo:   invoiceNo,
		EntryDate:   sale.EntryDate,
		Total:       sale.Total,
		Discount:    sale.Discount,
		Vat:         sale.Vat,
		Sd:          sale.Sd,
		PaymentMode: sale.PaymentMode,
		Received:    sale.Received,
		Change:      sale.Change,
		Lines:       string(linesJSON),
	})
}
