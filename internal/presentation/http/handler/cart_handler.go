package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/salepoint/salepoint-api/internal/application/service"
	"github.com/salepoint/salepoint-api/internal/presentation/http/dto/request"
	"github.com/salepoint/salepoint-api/internal/presentation/http/dto/response"
)

// CartHandler exposes the sale screen's cart operations
type CartHandler struct {
	checkout *service.CheckoutService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(checkout *service.CheckoutService) *CartHandler {
	return &CartHandler{checkout: checkout}
}

// Get returns the current cart snapshot
func (h *CartHandler) Get(c *gin.Context) {
	response.OK(c, "Cart retrieved successfully", h.checkout.Snapshot())
}

// AddItem adds a chosen product to the cart
func (h *CartHandler) AddItem(c *gin.Context) {
	var req request.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1 // the product buttons default to one unit per tap
	}

	if err := h.checkout.AddProduct(c.Request.Context(), req.CategoryID, req.ProductID, quantity); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product added to cart", h.checkout.Snapshot())
}

// UpdateQuantity sets a line's quantity
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	var req request.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.checkout.UpdateQuantity(c.Request.Context(), productID, req.Quantity); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quantity updated", h.checkout.Snapshot())
}

// Rename replaces or annotates a line's display name
func (h *CartHandler) Rename(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	var req request.RenameLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	var err error
	switch {
	case strings.TrimSpace(req.Name) != "":
		err = h.checkout.RenameLine(c.Request.Context(), productID, req.Name)
	case strings.TrimSpace(req.Append) != "":
		err = h.checkout.AnnotateLine(c.Request.Context(), productID, req.Append)
	default:
		response.BadRequest(c, "Either name or append is required")
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product renamed", h.checkout.Snapshot())
}

// RemoveItem removes a line from the cart
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	if err := h.checkout.RemoveLine(c.Request.Context(), productID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product removed", h.checkout.Snapshot())
}

// Clear empties the cart
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.checkout.ClearCart(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart cleared", h.checkout.Snapshot())
}

func productIDParam(c *gin.Context) (int, bool) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		response.BadRequest(c, "Invalid product id")
		return 0, false
	}
	return productID, true
}
