package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/salepoint/salepoint-api/internal/application/service"
	"github.com/salepoint/salepoint-api/internal/config"
	"github.com/salepoint/salepoint-api/internal/domain/entity"
	"github.com/salepoint/salepoint-api/internal/infrastructure/client"
	"github.com/salepoint/salepoint-api/internal/infrastructure/database"
	"github.com/salepoint/salepoint-api/internal/infrastructure/repository"
	"github.com/salepoint/salepoint-api/internal/presentation/http/handler"
	"github.com/salepoint/salepoint-api/internal/presentation/http/routes"
	"github.com/salepoint/salepoint-api/pkg/printer"
	"github.com/salepoint/salepoint-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories and backend clients
	cartRepo := repository.NewCartRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	catalogClient := client.NewCatalogClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	salesClient := client.NewSalesClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)

	// Initialize the receipt printer; fall back to a null device so printing
	// failures never block sales
	dev, err := printer.NewPrinterFromConfig(cfg.Printer.Type, cfg.Printer.USBPath, cfg.Printer.Address)
	if err != nil {
		log.Printf("Warning: printer unavailable, falling back to null device: %v", err)
		dev = printer.NewNullPrinter()
	}
	defer dev.Close()

	location, err := time.LoadLocation(cfg.Store.Timezone)
	if err != nil {
		log.Printf("Warning: unknown timezone %q, using UTC", cfg.Store.Timezone)
		location = time.UTC
	}

	// Initialize services
	authService, err := service.NewAuthService(jwtManager, cfg.Auth.OperatorPIN)
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}

	printerService := service.NewPrinterService(dev, entity.ReceiptHeader{
		StoreName: cfg.Store.Name,
		Address:   cfg.Store.Address,
		Phone:     cfg.Store.Phone,
		Currency:  cfg.Store.Currency,
	}, cfg.Printer.Type, cfg.Printer.Width)

	cartService := service.NewCartService(cartRepo)
	catalogService := service.NewCatalogService(catalogClient)
	checkoutService := service.NewCheckoutService(catalogClient, cartService, cfg.POS.AlertTTL)
	invoiceService := service.NewInvoiceService(cartService, salesClient, saleRepo, printerService, location)
	saleService := service.NewSaleService(saleRepo)

	// Restore the persisted cart so a restart resumes the in-progress sale
	restoreCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := cartService.Restore(restoreCtx); err != nil {
		log.Printf("Warning: failed to restore persisted cart: %v", err)
	}
	cancel()

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Catalog: handler.NewCatalogHandler(catalogService),
		Cart:    handler.NewCartHandler(checkoutService),
		Invoice: handler.NewInvoiceHandler(invoiceService, cfg.POS.CashDenominations),
		Sale:    handler.NewSaleHandler(saleService),
		Printer: handler.NewPrinterHandler(printerService),
	}

	// Setup router
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	// Start server
	log.Printf("Starting %s on port %s", cfg.App.Name, cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
