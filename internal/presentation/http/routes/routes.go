package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/salepoint/salepoint-api/internal/config"
	"github.com/salepoint/salepoint-api/internal/presentation/http/handler"
	"github.com/salepoint/salepoint-api/internal/presentation/http/middleware"
	"github.com/salepoint/salepoint-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth    *handler.AuthHandler
	Catalog *handler.CatalogHandler
	Cart    *handler.CartHandler
	Invoice *handler.InvoiceHandler
	Sale    *handler.SaleHandler
	Printer *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Catalog browsing
	protected.GET("/categories", h.Catalog.ListCategories)
	protected.GET("/categories/:id/products", h.Catalog.ListProducts)

	// Cart
	cart := protected.Group("/cart")
	{
		cart.GET("", h.Cart.Get)
		cart.POST("/items", h.Cart.AddItem)
		cart.PUT("/items/:productId/quantity", h.Cart.UpdateQuantity)
		cart.PUT("/items/:productId/name", h.Cart.Rename)
		cart.DELETE("/items/:productId", h.Cart.RemoveItem)
		cart.DELETE("", h.Cart.Clear)
	}

	// Invoice panel
	invoice := protected.Group("/invoice")
	{
		invoice.GET("", h.Invoice.Get)
		invoice.PUT("/rates", h.Invoice.SetRate)
		invoice.PUT("/payment-mode", h.Invoice.SetPaymentMode)
		invoice.GET("/denominations", h.Invoice.Denominations)
		invoice.POST("/cash", h.Invoice.AddCash)
		invoice.PUT("/received", h.Invoice.SetReceived)
		invoice.DELETE("/received", h.Invoice.ResetReceived)
		invoice.POST("/submit", h.Invoice.Submit)
	}

	// Sale journal
	protected.GET("/sales", h.Sale.List)

	// Receipt printer
	protected.GET("/printer/status", h.Printer.Status)
	protected.POST("/printer/test", h.Printer.TestPrint)
}
