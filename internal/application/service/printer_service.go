package service

import (
	"fmt"
	"time"

	"github.com/salepoint/salepoint-api/internal/domain/entity"
	"github.com/salepoint/salepoint-api/pkg/printer"
)

// PrinterService formats sale receipts and drives the thermal printer.
type PrinterService struct {
	printer     printer.Printer
	header      entity.ReceiptHeader
	printerType string
	width       int
}

// NewPrinterService creates a new printer service.
func NewPrinterService(p printer.Printer, header entity.ReceiptHeader, printerType string, width int) *PrinterService {
	if width <= 0 {
		width = 32 // 58mm paper
	}
	return &PrinterService{
		printer:     p,
		header:      header,
		printerType: printerType,
		width:       width,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test receipt to the printer. The receipt is returned so
// the handler can show it as JSON when no printer is attached.
func (s *PrinterService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header:    s.header,
		InvoiceNo: "TEST-001",
		Date:      time.Now().Format("2006-01-02 15:04"),
		Items: []entity.ReceiptItem{
			{Name: "Test Item 1", Quantity: 1, UnitPrice: 10.00, Total: 10.00},
			{Name: "Test Item 2", Quantity: 2, UnitPrice: 5.00, Total: 10.00},
		},
		SubTotal: 20.00,
		Total:    20.00,
		Received: 20.00,
	}

	if err := s.printer.Print(s.FormatReceipt(receipt)); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}
	return receipt, nil
}

// PrintSaleReceipt renders a finalized sale as a receipt and prints it.
func (s *PrinterService) PrintSaleReceipt(sale *entity.FinalizedSale, invoiceNo string) (*entity.Receipt, error) {
	subTotal := 0.0
	receipt := &entity.Receipt{
		Header:      s.header,
		InvoiceNo:   invoiceNo,
		Date:        time.Now().Format("2006-01-02 15:04"),
		PaymentMode: sale.PaymentMode.String(),
		Total:       sale.Total.InexactFloat64(),
		Received:    sale.Received.InexactFloat64(),
		Change:      sale.Change.InexactFloat64(),
	}

	for _, p := range sale.Products {
		lineTotal := p.Price.InexactFloat64() * float64(p.Quantity)
		subTotal += lineTotal
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      p.Name,
			Quantity:  p.Quantity,
			UnitPrice: p.Price.InexactFloat64(),
			Total:     lineTotal,
		})
	}

	receipt.SubTotal = subTotal
	receipt.Discount = sale.Discount.InexactFloat64() * subTotal / 100
	receipt.VAT = sale.Vat.InexactFloat64() * subTotal / 100
	receipt.SD = sale.Sd.InexactFloat64() * subTotal / 100

	if err := s.printer.Print(s.FormatReceipt(receipt)); err != nil {
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}
	return receipt, nil
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func (s *PrinterService) FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(s.width)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-').
		KeyValue("Date:", r.Date).
		KeyValue("Invoice:", r.InvoiceNo)
	if r.PaymentMode != "" {
		doc.KeyValue("Payment:", r.PaymentMode)
	}
	if r.Header.Currency != "" {
		doc.KeyValue("Currency:", r.Header.Currency)
	}
	doc.Separator('-')

	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, fmt.Sprintf("%.2f", item.Total))
	}

	doc.Separator('-').
		KeyValue("Subtotal", fmt.Sprintf("%.2f", r.SubTotal)).
		KeyValue("Discount", fmt.Sprintf("%.2f", r.Discount)).
		KeyValue("VAT", fmt.Sprintf("%.2f", r.VAT)).
		KeyValue("SD", fmt.Sprintf("%.2f", r.SD))

	doc.SetBold(true).
		KeyValue("Total", fmt.Sprintf("%.2f", r.Total)).
		SetBold(false).
		KeyValue("Received", fmt.Sprintf("%.2f", r.Received)).
		KeyValue("Change", fmt.Sprintf("%.2f", r.Change))

	doc.Separator('-').
		SetAlign(printer.AlignCenter).
		Text("*** Thank You! ***").
		FeedLines(3).
		Cut()

	return doc.Bytes()
}
