package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salepoint/salepoint-api/internal/domain/entity"
	"github.com/salepoint/salepoint-api/internal/domain/enum"
	"github.com/salepoint/salepoint-api/internal/domain/repository"
	"github.com/salepoint/salepoint-api/pkg/apperror"
)

type fakeSalesClient struct {
	invoiceNo string
	err       error
	calls     int
	lastSale  *entity.FinalizedSale
}

func (c *fakeSalesClient) SubmitSale(ctx context.Context, sale *entity.FinalizedSale) (string, error) {
	c.calls++
	c.lastSale = sale
	if c.err != nil {
		return "", c.err
	}
	return c.invoiceNo, nil
}

type fakeJournal struct {
	records []*entity.SaleRecord
	err     error
}

func (j *fakeJournal) Create(ctx context.Context, record *entity.SaleRecord) error {
	if j.err != nil {
		return j.err
	}
	j.records = append(j.records, record)
	return nil
}

func (j *fakeJournal) List(ctx context.Context, params *repository.SaleFilterParams) ([]entity.SaleRecord, int64, error) {
	return nil, 0, nil
}

type fakePrinter struct {
	printed int
	err     error
}

func (p *fakePrinter) PrintSaleReceipt(sale *entity.FinalizedSale, invoiceNo string) (*entity.Receipt, error) {
	p.printed++
	return nil, p.err
}

func newTestInvoice(t *testing.T, sales *fakeSalesClient, journal *fakeJournal, p *fakePrinter) (*InvoiceService, *CartService) {
	t.Helper()
	cart := NewCartService(&fakeCartRepo{})
	var j repository.SaleRepository
	if journal != nil {
		j = journal
	}
	var rp ReceiptPrinter
	if p != nil {
		rp = p
	}
	inv := NewInvoiceService(cart, sales, j, rp, time.UTC)
	return inv, cart
}

func TestParsePercent(t *testing.T) {
	assert.Equal(t, "12.5", ParsePercent("12.5").String())
	assert.True(t, ParsePercent("abc").IsZero(), "malformed input degrades to zero")
	assert.True(t, ParsePercent("").IsZero())
}

func TestComputeTotals_AppliesAllThreeRates(t *testing.T) {
	inv, cart := newTestInvoice(t, &fakeSalesClient{}, nil, nil)
	ctx := context.Background()
	require.NoError(t, cart.AddOrMerge(ctx, testProduct(1, "Burger", 100, 10), 2)) // subtotal 200

	inv.SetRate(enum.RateKindDiscount, decimal.NewFromInt(10)) // -20
	inv.SetRate(enum.RateKindVat, decimal.NewFromInt(15))      // +30
	inv.SetRate(enum.RateKindSd, decimal.NewFromInt(5))        // +10

	comp := inv.ComputeTotals()
	assert.Equal(t, "200", comp.SubTotal.String())
	assert.Equal(t, "20", comp.DiscountAmount.String())
	assert.Equal(t, "30", comp.VatAmount.String())
	assert.Equal(t, "10", comp.SdAmount.String())
	assert.Equal(t, "220", comp.Total.String())
}

func TestComputeTotals_ChangeNeverNegative(t *testing.T) {
	inv, cart := newTestInvoice(t, &fakeSalesClient{}, nil, nil)
	require.NoError(t, cart.AddOrMerge(context.Background(), testProduct(1, "Burger", 100, 10), 1))

	inv.SetReceived(decimal.NewFromInt(40))
	comp := inv.ComputeTotals()
	assert.True(t, comp.Change.IsZero(), "display change floors at zero when underpaid")

	inv.SetReceived(decimal.NewFromInt(150))
	comp = inv.ComputeTotals()
	assert.Equal(t, "50", comp.Change.String())
}

func TestSetRate_ClampsNegativeToZero(t *testing.T) {
	inv, cart := newTestInvoice(t, &fakeSalesClient{}, nil, nil)
	require.NoError(t, cart.AddOrMerge(context.Background(), testProduct(1, "Burger", 100, 10), 1))

	inv.SetRate(enum.RateKindDiscount, decimal.NewFromInt(-5))
	comp := inv.ComputeTotals()
	assert.True(t, comp.Discount.IsZero())
	assert.Equal(t, "100", comp.Total.String())
}

func TestAddCash_Accumulates(t *testing.T) {
	inv, _ := newTestInvoice(t, &fakeSalesClient{}, nil, nil)

	require.NoError(t, inv.AddCash(decimal.NewFromInt(500)))
	require.NoError(t, inv.AddCash(decimal.NewFromInt(100)))
	require.NoError(t, inv.AddCash(decimal.NewFromInt(20)))

	assert.Equal(t, "620", inv.ComputeTotals().Received.String())
}

func TestAddCash_RejectsNonPositive(t *testing.T) {
	inv, _ := newTestInvoice(t, &fakeSalesClient{}, nil, nil)

	require.Error(t, inv.AddCash(decimal.Zero))
	require.Error(t, inv.AddCash(decimal.NewFromInt(-5)))
	assert.True(t, inv.ComputeTotals().Received.IsZero())
}

func TestSetReceived_FloorsNegative(t *testing.T) {
	inv, _ := newTestInvoice(t, &fakeSalesClient{}, nil, nil)

	inv.SetReceived(decimal.NewFromInt(-10))
	assert.True(t, inv.ComputeTotals().Received.IsZero())
}

func TestSubmit_GuardBlocksBeforeNetwork(t *testing.T) {
	sales := &fakeSalesClient{invoiceNo: "INV-1"}
	inv, cart := newTestInvoice(t, sales, nil, nil)
	require.NoError(t, cart.AddOrMerge(context.Background(), testProduct(1, "Burger", 100, 10), 1))

	inv.SetReceived(decimal.NewFromInt(50))
	_, _, err := inv.Submit(context.Background())

	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindInsufficientPayment))
	assert.Zero(t, sales.calls, "underpayment must never reach the backend")
	assert.Len(t, cart.Lines(), 1, "cart untouched on rejected submit")
}

func TestSubmit_SuccessResetsEverything(t *testing.T) {
	sales := &fakeSalesClient{invoiceNo: "INV-42"}
	journal := &fakeJournal{}
	printed := &fakePrinter{}
	cart := NewCartService(&fakeCartRepo{})
	inv := NewInvoiceService(cart, sales, journal, printed, time.UTC)
	ctx := context.Background()
	require.NoError(t, cart.AddOrMerge(ctx, testProduct(1, "Burger", 100, 10), 2))

	inv.SetRate(enum.RateKindVat, decimal.NewFromInt(10)) // total 220
	inv.SetPaymentMode(enum.PaymentModeCard)
	inv.SetReceived(decimal.NewFromInt(250))

	sale, invoiceNo, err := inv.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "INV-42", invoiceNo)

	// The submitted payload carries the raw received-total difference.
	assert.Equal(t, "220", sale.Total.String())
	assert.Equal(t, "30", sale.Change.String())
	assert.Equal(t, enum.PaymentModeCard, sale.PaymentMode)
	assert.Len(t, sale.Products, 1)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, sale.EntryDate)

	// Side channels ran.
	assert.Equal(t, 1, printed.printed)
	require.Len(t, journal.records, 1)
	assert.Equal(t, "INV-42", journal.records[0].InvoiceNo)

	// Everything resets for the next sale.
	assert.Empty(t, cart.Lines())
	comp := inv.ComputeTotals()
	assert.True(t, comp.SubTotal.IsZero())
	assert.True(t, comp.Vat.IsZero())
	assert.True(t, comp.Received.IsZero())
	assert.Equal(t, enum.PaymentModeCash, comp.PaymentMode)
}

func TestSubmit_RemoteFailureLeavesStateUntouched(t *testing.T) {
	sales := &fakeSalesClient{err: apperror.NewRemoteFailureError("backend down")}
	inv, cart := newTestInvoice(t, sales, nil, nil)
	ctx := context.Background()
	require.NoError(t, cart.AddOrMerge(ctx, testProduct(1, "Burger", 100, 10), 1))

	inv.SetRate(enum.RateKindDiscount, decimal.NewFromInt(10))
	inv.SetReceived(decimal.NewFromInt(100))

	_, _, err := inv.Submit(ctx)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindRemoteFailure))

	// Cart and invoice state survive so the operator can retry.
	assert.Len(t, cart.Lines(), 1)
	comp := inv.ComputeTotals()
	assert.Equal(t, "10", comp.Discount.String())
	assert.Equal(t, "100", comp.Received.String())
}

func TestSubmit_PrintAndJournalFailuresDoNotFailSale(t *testing.T) {
	sales := &fakeSalesClient{invoiceNo: "INV-9"}
	journal := &fakeJournal{err: errors.New("journal unavailable")}
	printed := &fakePrinter{err: errors.New("printer offline")}
	cart := NewCartService(&fakeCartRepo{})
	inv := NewInvoiceService(cart, sales, journal, printed, time.UTC)
	ctx := context.Background()
	require.NoError(t, cart.AddOrMerge(ctx, testProduct(1, "Burger", 100, 10), 1))

	inv.SetReceived(decimal.NewFromInt(100))

	_, invoiceNo, err := inv.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "INV-9", invoiceNo)
	assert.Empty(t, cart.Lines(), "sale completes despite side channel failures")
}

func TestSubmit_ExactPaymentAccepted(t *testing.T) {
	sales := &fakeSalesClient{invoiceNo: "INV-7"}
	inv, cart := newTestInvoice(t, sales, nil, nil)
	ctx := context.Background()
	require.NoError(t, cart.AddOrMerge(ctx, testProduct(1, "Burger", 100, 10), 1))

	inv.SetReceived(decimal.NewFromInt(100))

	sale, _, err := inv.Submit(ctx)
	require.NoError(t, err)
	assert.True(t, sale.Change.IsZero())
}
