package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rgusain/tarazu-api/internal/config"
	"github.com/rgusain/tarazu-api/internal/domain/enum"
	domainRepo "github.com/rgusain/tarazu-api/internal/domain/repository"
	"github.com/rgusain/tarazu-api/internal/presentation/http/handler"
	"github.com/rgusain/tarazu-api/internal/presentation/http/middleware"
	"github.com/rgusain/tarazu-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Product  *handler.ProductHandler
	Cart     *handler.CartHandler
	Sale     *handler.SaleHandler
	Discount *handler.DiscountHandler
	User     *handler.UserHandler
	Report   *handler.ReportHandler
	Settings *handler.SettingsHandler
	Printer  *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
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

		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		// The sign-in screen lists the accounts to pick from
		auth.GET("/users", h.Auth.ListUsers)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	adminOnly := middleware.RequireRole(string(enum.RoleAdmin))

	protected.GET("/auth/me", h.Auth.Me)
	protected.POST("/auth/logout", h.Auth.Logout)

	// Products: every role can browse, only admins can change the catalog
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/low-stock", adminOnly, h.Product.LowStock)
		products.GET("/:id", h.Product.Get)
		products.POST("", adminOnly, h.Product.Create)
		products.PUT("/:id", adminOnly, h.Product.Update)
		products.DELETE("/:id", adminOnly, h.Product.Delete)
	}

	// Cart
	cart := protected.Group("/cart")
	{
		cart.GET("", h.Cart.Get)
		cart.POST("/items", h.Cart.AddItem)
		cart.DELETE("/items/:productId", h.Cart.RemoveItem)
		cart.DELETE("", h.Cart.Clear)
	}

	// Sales
	sales := protected.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		// Finalization uses idempotency middleware to prevent duplicates
		sales.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Sale.Finalize)
		sales.GET("/:id", h.Sale.Get)
		sales.POST("/:id/receipt", h.Printer.PrintReceipt)
		sales.DELETE("", adminOnly, h.Sale.ClearAll)
	}

	// Discount tiers
	discounts := protected.Group("/discount-tiers")
	{
		discounts.GET("", h.Discount.List)
		discounts.PUT("", adminOnly, h.Discount.Replace)
	}

	// Reports (Admin)
	reports := protected.Group("/reports")
	reports.Use(adminOnly)
	{
		reports.GET("/summary", h.Report.Summary)
		reports.GET("/sales-over-time", h.Report.SalesOverTime)
		reports.GET("/export", h.Report.Export)
	}

	// Users (Admin)
	users := protected.Group("/users")
	users.Use(adminOnly)
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}

	// Settings: readable by all roles, writable by admins
	protected.GET("/settings", h.Settings.Get)
	protected.PUT("/settings", adminOnly, h.Settings.Update)

	// Printer
	printer := protected.Group("/printer")
	{
		printer.GET("/status", h.Printer.Status)
		printer.POST("/test", adminOnly, h.Printer.TestPrint)
	}
}
