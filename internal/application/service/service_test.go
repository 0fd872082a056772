package service

import (
	"testing"
	"time"

	"github.com/sangkips/backoffice-api/internal/config"
	infraRepo "github.com/sangkips/backoffice-api/internal/infrastructure/repository"
	"github.com/sangkips/backoffice-api/internal/testutil"
	"github.com/sangkips/backoffice-api/pkg/logging"
	"github.com/sangkips/backoffice-api/pkg/metrics"
	"github.com/sangkips/backoffice-api/pkg/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

type testServices struct {
	db        *gorm.DB
	metrics   *metrics.Metrics
	coupons   *CouponService
	shipping  *ShippingService
	orders    *PurchaseOrderService
	invoices  *InvoiceService
	suppliers *SupplierService
	products  *ProductService
	status    *StatusService
	auth      *AuthService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()

	db := testutil.NewDB(t)
	m := metrics.New(metrics.Config{Namespace: "test"})
	tx := infraRepo.NewTransactor(db)

	shippingCfg := config.ShippingConfig{
		DefaultBaseFee:       decimal.NewFromInt(200),
		DefaultPerItemFee:    decimal.NewFromInt(50),
		DefaultFreeThreshold: decimal.NewNullDecimal(decimal.NewFromInt(5000)),
	}

	s := &testServices{
		db:      db,
		metrics: m,
		coupons: NewCouponService(infraRepo.NewCouponRepository(db), tx, m),
		shipping: NewShippingService(infraRepo.NewShippingRepository(db), shippingCfg, m),
		orders: NewPurchaseOrderService(
			infraRepo.NewPurchaseOrderRepository(db),
			infraRepo.NewPurchaseOrderItemRepository(db),
			infraRepo.NewInvoiceRepository(db),
			infraRepo.NewProductRepository(db),
			tx,
			30,
			logging.Discard(),
			m,
		),
		invoices:  NewInvoiceService(infraRepo.NewInvoiceRepository(db)),
		suppliers: NewSupplierService(infraRepo.NewSupplierRepository(db)),
		products:  NewProductService(infraRepo.NewProductRepository(db), infraRepo.NewCategoryRepository(db)),
		status:    NewStatusService(infraRepo.NewStatusRepository(db)),
		auth: NewAuthService(
			infraRepo.NewUserRepository(db),
			infraRepo.NewRoleRepository(db),
			tx,
			utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour),
		),
	}

	clock := func() time.Time { return fixedNow }
	s.coupons.now = clock
	s.orders.now = clock
	s.invoices.now = clock
	return s
}
