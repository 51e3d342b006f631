package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/salepoint/salepoint-api/internal/application/service"
	"github.com/salepoint/salepoint-api/internal/presentation/http/dto/response"
)

// CatalogHandler serves the category browser's data
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListCategories handles listing purchasable categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Categories retrieved successfully", categories)
}

// ListProducts handles listing the products of one category
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category id")
		return
	}

	products, err := h.catalogService.ListProducts(c.Request.Context(), categoryID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Products retrieved successfully", products)
}
