package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/salepoint/salepoint-api/internal/application/service"
	"github.com/salepoint/salepoint-api/internal/domain/repository"
	"github.com/salepoint/salepoint-api/internal/presentation/http/dto/request"
	"github.com/salepoint/salepoint-api/internal/presentation/http/dto/response"
	"github.com/salepoint/salepoint-api/pkg/pagination"
)

// SaleHandler exposes the local sale journal
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// List returns journaled sales filtered by entry-date range and invoice number
func (h *SaleHandler) List(c *gin.Context) {
	var req request.SaleListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	params := &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage}
	params.Validate()

	result, err := h.saleService.ListSales(c.Request.Context(), &repository.SaleFilterParams{
		Pagination: params,
		FormDate:   req.FormDate,
		ToDate:     req.ToDate,
		InvoiceNo:  req.InvoiceNo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, "Sales retrieved successfully", result)
}
