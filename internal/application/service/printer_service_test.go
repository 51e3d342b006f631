package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salepoint/salepoint-api/internal/domain/entity"
	"github.com/salepoint/salepoint-api/internal/domain/enum"
	"github.com/salepoint/salepoint-api/pkg/printer"
)

type recordingPrinter struct {
	jobs [][]byte
	err  error
}

func (p *recordingPrinter) Print(data []byte) error {
	if p.err != nil {
		return p.err
	}
	p.jobs = append(p.jobs, data)
	return nil
}

func (p *recordingPrinter) IsConnected() bool { return true }
func (p *recordingPrinter) Close() error      { return nil }

func newTestPrinterService(p printer.Printer) *PrinterService {
	return NewPrinterService(p, entity.ReceiptHeader{
		StoreName: "Demo Mart",
		Address:   "12 Station Road",
		Phone:     "01700-000000",
		Currency:  "BDT",
	}, "usb", 32)
}

func TestGetStatus(t *testing.T) {
	svc := newTestPrinterService(&recordingPrinter{})

	status := svc.GetStatus()
	assert.True(t, status.Configured)
	assert.True(t, status.Connected)
	assert.Equal(t, "usb", status.Type)
}

func TestGetStatus_NullDeviceNotConfigured(t *testing.T) {
	svc := NewPrinterService(printer.NewNullPrinter(), entity.ReceiptHeader{StoreName: "Demo"}, "none", 32)

	status := svc.GetStatus()
	assert.False(t, status.Configured)
}

func TestPrintSaleReceipt_RendersAmounts(t *testing.T) {
	dev := &recordingPrinter{}
	svc := newTestPrinterService(dev)

	sale := &entity.FinalizedSale{
		EntryDate:   "2026-08-29",
		Total:       decimal.NewFromInt(220),
		Discount:    decimal.NewFromInt(10),
		Vat:         decimal.NewFromInt(15),
		Sd:          decimal.NewFromInt(5),
		PaymentMode: enum.PaymentModeCash,
		Received:    decimal.NewFromInt(250),
		Change:      decimal.NewFromInt(30),
		Products: []entity.SaleLine{
			{ID: 7, Name: "Burger", Price: decimal.NewFromInt(100), Quantity: 2},
		},
	}

	receipt, err := svc.PrintSaleReceipt(sale, "INV-42")
	require.NoError(t, err)
	require.Len(t, dev.jobs, 1)

	assert.Equal(t, "INV-42", receipt.InvoiceNo)
	assert.Equal(t, "Cash", receipt.PaymentMode)
	assert.InDelta(t, 200.0, receipt.SubTotal, 0.001)
	assert.InDelta(t, 20.0, receipt.Discount, 0.001)
	assert.InDelta(t, 30.0, receipt.VAT, 0.001)
	assert.InDelta(t, 10.0, receipt.SD, 0.001)
	require.Len(t, receipt.Items, 1)
	assert.InDelta(t, 200.0, receipt.Items[0].Total, 0.001)

	rendered := string(dev.jobs[0])
	assert.Contains(t, rendered, "Demo Mart")
	assert.Contains(t, rendered, "INV-42")
	assert.Contains(t, rendered, "Burger")
	assert.Contains(t, rendered, "220.00")
	assert.Contains(t, rendered, "BDT")
	assert.Contains(t, rendered, "Thank You!")
}

func TestPrintSaleReceipt_PrinterFailureReturnsReceipt(t *testing.T) {
	dev := &recordingPrinter{err: assert.AnError}
	svc := newTestPrinterService(dev)

	sale := &entity.FinalizedSale{
		Total:    decimal.NewFromInt(100),
		Received: decimal.NewFromInt(100),
		Products: []entity.SaleLine{{ID: 1, Name: "Tea", Price: decimal.NewFromInt(100), Quantity: 1}},
	}

	receipt, err := svc.PrintSaleReceipt(sale, "INV-1")
	require.Error(t, err)
	require.NotNil(t, receipt, "the formatted receipt survives print failures")
}

func TestTestPrint(t *testing.T) {
	dev := &recordingPrinter{}
	svc := newTestPrinterService(dev)

	receipt, err := svc.TestPrint()
	require.NoError(t, err)
	assert.Equal(t, "TEST-001", receipt.InvoiceNo)
	assert.Len(t, dev.jobs, 1)
}
