package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/backoffice-api/internal/application/service"
	"github.com/sangkips/backoffice-api/internal/config"
	"github.com/sangkips/backoffice-api/internal/infrastructure/database"
	"github.com/sangkips/backoffice-api/internal/infrastructure/repository"
	"github.com/sangkips/backoffice-api/internal/presentation/http/handler"
	"github.com/sangkips/backoffice-api/internal/presentation/http/middleware"
	"github.com/sangkips/backoffice-api/internal/presentation/http/routes"
	"github.com/sangkips/backoffice-api/pkg/logging"
	"github.com/sangkips/backoffice-api/pkg/metrics"
	"github.com/sangkips/backoffice-api/pkg/utils"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg := config.Load()

	logger := logging.New(logging.Config{
		Level:       cfg.Log.Level,
		ServiceName: cfg.App.Name,
		Environment: cfg.App.Env,
	})

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Open(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.AutoMigrate(db, logger); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	if err := database.SeedDefaultData(db, cfg.Shipping, logger); err != nil {
		logger.Warn("failed to seed default data", "error", err)
	}

	m := metrics.New(metrics.Config{Namespace: "backoffice"})

	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	transactor := repository.NewTransactor(db)
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	shippingRepo := repository.NewShippingRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	orderRepo := repository.NewPurchaseOrderRepository(db)
	orderItemRepo := repository.NewPurchaseOrderItemRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	statusRepo := repository.NewStatusRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, transactor, jwtManager)
	couponService := service.NewCouponService(couponRepo, transactor, m)
	shippingService := service.NewShippingService(shippingRepo, cfg.Shipping, m)
	supplierService := service.NewSupplierService(supplierRepo)
	productService := service.NewProductService(productRepo, categoryRepo)
	orderService := service.NewPurchaseOrderService(orderRepo, orderItemRepo, invoiceRepo, productRepo, transactor, cfg.Invoice.DueDays, logger, m)
	invoiceService := service.NewInvoiceService(invoiceRepo)
	statusService := service.NewStatusService(statusRepo)

	handlers := &routes.Handlers{
		Auth:          handler.NewAuthHandler(authService),
		Coupon:        handler.NewCouponHandler(couponService),
		Shipping:      handler.NewShippingHandler(shippingService),
		Supplier:      handler.NewSupplierHandler(supplierService),
		Product:       handler.NewProductHandler(productService),
		PurchaseOrder: handler.NewPurchaseOrderHandler(orderService),
		Invoice:       handler.NewInvoiceHandler(invoiceService),
		Status:        handler.NewStatusHandler(statusService),
		Health:        handler.NewHealthHandler(db, version),
	}

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfigFrom(cfg.RateLimit))
	defer rateLimiter.Stop()

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		Metrics:         m,
		Logger:          logger,
		RateLimiter:     rateLimiter,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go middleware.RunIdempotencyJanitor(ctx, idempotencyRepo, time.Hour, logger)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting server", "port", port, "environment", cfg.App.Env, "database", cfg.Database.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
