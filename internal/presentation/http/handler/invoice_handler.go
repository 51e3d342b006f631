package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/salepoint/salepoint-api/internal/application/service"
	"github.com/salepoint/salepoint-api/internal/domain/enum"
	"github.com/salepoint/salepoint-api/internal/presentation/http/dto/request"
	"github.com/salepoint/salepoint-api/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// InvoiceHandler exposes the invoice panel: rates, payment mode, tendered
// cash and sale submission.
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
	denominations  []int
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService, denominations []int) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService, denominations: denominations}
}

// Get returns the current invoice computation
func (h *InvoiceHandler) Get(c *gin.Context) {
	response.OK(c, "Invoice retrieved successfully", h.invoiceService.ComputeTotals())
}

// SetRate stores one of the discount/VAT/SD percentages
func (h *InvoiceHandler) SetRate(c *gin.Context) {
	var req request.SetRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	kind, err := enum.ParseRateKind(req.Kind)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	h.invoiceService.SetRate(kind, service.ParsePercent(req.PercentText()))
	response.OK(c, "Rate updated", h.invoiceService.ComputeTotals())
}

// SetPaymentMode selects how the sale will be paid
func (h *InvoiceHandler) SetPaymentMode(c *gin.Context) {
	var req request.SetPaymentModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	mode, err := enum.ParsePaymentMode(req.PaymentMode)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	h.invoiceService.SetPaymentMode(mode)
	response.OK(c, "Payment mode updated", h.invoiceService.ComputeTotals())
}

// Denominations lists the cash quick-entry buttons
func (h *InvoiceHandler) Denominations(c *gin.Context) {
	response.OK(c, "Denominations retrieved successfully", h.denominations)
}

// AddCash adds one tapped denomination to the received amount
func (h *InvoiceHandler) AddCash(c *gin.Context) {
	var req request.CashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.invoiceService.AddCash(decimal.NewFromFloat(req.Value)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cash added", h.invoiceService.ComputeTotals())
}

// SetReceived overrides the received amount directly
func (h *InvoiceHandler) SetReceived(c *gin.Context) {
	var req request.SetReceivedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	h.invoiceService.SetReceived(decimal.NewFromFloat(req.Value))
	response.OK(c, "Received amount updated", h.invoiceService.ComputeTotals())
}

// ResetReceived zeroes the received amount
func (h *InvoiceHandler) ResetReceived(c *gin.Context) {
	h.invoiceService.ResetReceived()
	response.OK(c, "Received amount reset", h.invoiceService.ComputeTotals())
}

// Submit finalizes the sale against the remote sales API
func (h *InvoiceHandler) Submit(c *gin.Context) {
	sale, invoiceNo, err := h.invoiceService.Submit(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale completed", gin.H{
		"invoice_no": invoiceNo,
		"sale":       sale,
	})
}
