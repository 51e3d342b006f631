package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/salepoint/salepoint-api/internal/presentation/http/dto/response"
	"github.com/salepoint/salepoint-api/pkg/utils"
)

// AuthMiddleware creates a JWT authentication middleware for the operator
// session
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("terminal_id", claims.TerminalID)

		c.Next()
	}
}

// GetTerminalID returns the authenticated terminal ID from the request
// context, or uuid.Nil if the request is unauthenticated.
func GetTerminalID(c *gin.Context) uuid.UUID {
	v, exists := c.Get("terminal_id")
	if !exists {
		return uuid.Nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
