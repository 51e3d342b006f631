package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/salepoint/salepoint-api/internal/application/service"
	"github.com/salepoint/salepoint-api/internal/presentation/http/dto/response"
	"github.com/salepoint/salepoint-api/pkg/apperror"
)

// PrinterHandler exposes receipt printer status and test printing
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// Status reports whether a printer is configured and reachable
func (h *PrinterHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status retrieved successfully", h.printerService.GetStatus())
}

// TestPrint sends a short test receipt to the configured printer
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	receipt, err := h.printerService.TestPrint()
	if err != nil {
		response.Error(c, apperror.NewAppError(http.StatusInternalServerError, "Test print failed: "+err.Error()))
		return
	}

	response.OK(c, "Test receipt printed", receipt)
}
