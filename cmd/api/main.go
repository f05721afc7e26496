package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rgusain/tarazu-api/internal/application/service"
	"github.com/rgusain/tarazu-api/internal/config"
	"github.com/rgusain/tarazu-api/internal/infrastructure/database"
	"github.com/rgusain/tarazu-api/internal/infrastructure/repository"
	"github.com/rgusain/tarazu-api/internal/presentation/http/handler"
	"github.com/rgusain/tarazu-api/internal/presentation/http/routes"
	"github.com/rgusain/tarazu-api/pkg/i18n"
	"github.com/rgusain/tarazu-api/pkg/printer"
	"github.com/rgusain/tarazu-api/pkg/utils"
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

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	discountRepo := repository.NewDiscountTierRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Load receipt translations
	translator, err := i18n.LoadDir(cfg.Locale.Dir, cfg.Locale.Fallback)
	if err != nil {
		log.Printf("Warning: Failed to load locales: %v", err)
		translator = i18n.NewTranslator(cfg.Locale.Fallback)
	}

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	productService := service.NewProductService(productRepo)
	cartService := service.NewCartService(cartRepo, productRepo, discountRepo)
	billingService := service.NewBillingService(saleRepo, cartRepo, discountRepo)
	discountService := service.NewDiscountService(discountRepo)
	userService := service.NewUserService(userRepo)
	reportService := service.NewReportService(saleRepo, productRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	receiptService := service.NewReceiptService(
		thermalPrinter,
		saleRepo,
		userRepo,
		settingsRepo,
		translator,
		cfg.Printer.Type,
		cfg.Printer.Width,
	)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Product:  handler.NewProductHandler(productService),
		Cart:     handler.NewCartHandler(cartService),
		Sale:     handler.NewSaleHandler(billingService),
		Discount: handler.NewDiscountHandler(discountService),
		User:     handler.NewUserHandler(userService),
		Report:   handler.NewReportHandler(reportService),
		Settings: handler.NewSettingsHandler(settingsService),
		Printer:  handler.NewPrinterHandler(receiptService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
