package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/backoffice-api/internal/config"
	domainRepo "github.com/sangkips/backoffice-api/internal/domain/repository"
	"github.com/sangkips/backoffice-api/internal/infrastructure/database"
	"github.com/sangkips/backoffice-api/internal/presentation/http/handler"
	"github.com/sangkips/backoffice-api/internal/presentation/http/middleware"
	"github.com/sangkips/backoffice-api/pkg/metrics"
	"github.com/sangkips/backoffice-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth          *handler.AuthHandler
	Coupon        *handler.CouponHandler
	Shipping      *handler.ShippingHandler
	Supplier      *handler.SupplierHandler
	Product       *handler.ProductHandler
	PurchaseOrder *handler.PurchaseOrderHandler
	Invoice       *handler.InvoiceHandler
	Status        *handler.StatusHandler
	Health        *handler.HealthHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	Metrics         *metrics.Metrics
	Logger          *slog.Logger
	RateLimiter     *middleware.ClientRateLimiter
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	handler.RegisterValidation()

	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.MetricsMiddleware(deps.Metrics))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", h.Health.Check)
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	// Claims are read before the limiter so signed-in callers are limited per user, others per IP
	v1 := router.Group("/api/v1")
	v1.Use(middleware.OptionalAuthMiddleware(deps.JWTManager))
	if deps.RateLimiter != nil {
		v1.Use(deps.RateLimiter.Middleware())
	}
	{
		v1.GET("/health", h.Health.Check)

		registerAuthRoutes(v1, h)
		registerCheckoutRoutes(v1, h)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

// registerCheckoutRoutes exposes the read-only checkout calls; a token is optional
func registerCheckoutRoutes(v1 *gin.RouterGroup, h *Handlers) {
	v1.POST("/coupons/validate", h.Coupon.Validate)
	v1.POST("/shipping/fee", h.Shipping.Quote)
	v1.GET("/shipping/regions/:region/fee", h.Shipping.RegionFee)
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	protected.GET("/profile", h.Auth.GetProfile)

	registerUserRoutes(protected, h)
	registerCouponRoutes(protected, h)
	registerShippingRoutes(protected, h)
	registerSupplierRoutes(protected, h)
	registerProductRoutes(protected, h)
	registerPurchaseOrderRoutes(protected, h, deps)
	registerInvoiceRoutes(protected, h)
	registerStatusRoutes(protected, h)
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequireRole("super-admin", "admin"))
	{
		users.POST("", h.Auth.CreateUser)
	}
}

func registerCouponRoutes(protected *gin.RouterGroup, h *Handlers) {
	coupons := protected.Group("/coupons")
	coupons.Use(middleware.RequirePermission(database.PermManageCoupons))
	{
		coupons.GET("", h.Coupon.List)
		coupons.POST("", h.Coupon.Create)
		coupons.POST("/redeem", h.Coupon.Redeem)
		coupons.GET("/:id", h.Coupon.Get)
	}
}

func registerShippingRoutes(protected *gin.RouterGroup, h *Handlers) {
	shipping := protected.Group("/shipping")
	shipping.Use(middleware.RequirePermission(database.PermManageShipping))
	{
		shipping.GET("/rules", h.Shipping.ListRules)
		shipping.PUT("/rules", h.Shipping.UpsertRule)
		shipping.GET("/regions", h.Shipping.ListSurcharges)
		shipping.PUT("/regions", h.Shipping.UpsertSurcharge)
	}
}

func registerSupplierRoutes(protected *gin.RouterGroup, h *Handlers) {
	suppliers := protected.Group("/suppliers")
	suppliers.Use(middleware.RequirePermission(database.PermManageSuppliers))
	{
		suppliers.GET("", h.Supplier.List)
		suppliers.POST("", h.Supplier.Create)
		suppliers.GET("/:id", h.Supplier.Get)
	}
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	products.Use(middleware.RequirePermission(database.PermManageProducts))
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/low-stock", h.Product.GetLowStock)
		products.GET("/:id", h.Product.Get)
	}
}

func registerPurchaseOrderRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	orders := protected.Group("/purchase-orders")
	orders.Use(middleware.RequirePermission(database.PermManagePurchases))
	{
		orders.GET("", h.PurchaseOrder.List)
		// a repeated Idempotency-Key replays the first successful response
		orders.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.PurchaseOrder.Create)
		orders.GET("/:id", h.PurchaseOrder.Get)
		orders.POST("/:id/receive", h.PurchaseOrder.Receive)
		orders.POST("/:id/cancel", h.PurchaseOrder.Cancel)
	}
}

func registerInvoiceRoutes(protected *gin.RouterGroup, h *Handlers) {
	invoices := protected.Group("/invoices")
	invoices.Use(middleware.RequirePermission(database.PermManageInvoices))
	{
		invoices.GET("", h.Invoice.List)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.POST("/:id/pay", h.Invoice.Pay)
	}
}

func registerStatusRoutes(protected *gin.RouterGroup, h *Handlers) {
	status := protected.Group("/status")
	status.Use(middleware.RequirePermission(database.PermManageSettings))
	{
		status.PATCH("/:target/:id", h.Status.Toggle)
	}
}
