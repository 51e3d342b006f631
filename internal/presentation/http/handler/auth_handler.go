package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/salepoint/salepoint-api/internal/application/service"
	"github.com/salepoint/salepoint-api/internal/presentation/http/dto/request"
	"github.com/salepoint/salepoint-api/internal/presentation/http/dto/response"
)

// AuthHandler handles operator session requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles PIN login
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	tokens, err := h.authService.Login(req.PIN)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Session opened", tokens)
}

// Refresh handles access token renewal
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req request.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	access, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Token refreshed", gin.H{"access_token": access})
}
