package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sangkips/backoffice-api/internal/domain/entity"
	"github.com/sangkips/backoffice-api/internal/domain/enum"
	domainRepo "github.com/sangkips/backoffice-api/internal/domain/repository"
	"github.com/sangkips/backoffice-api/internal/testutil"
	"github.com/sangkips/backoffice-api/pkg/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestTransactor_RollsBackAllWrites(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	tx := NewTransactor(db)
	suppliers := NewSupplierRepository(db)

	boom := errors.New("boom")
	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		require.NoError(t, suppliers.Create(ctx, &entity.Supplier{Name: "Acme", Type: enum.SupplierTypeDistributor, Active: true}))
		// nested call joins the outer transaction
		return tx.WithinTransaction(ctx, func(ctx context.Context) error {
			require.NoError(t, suppliers.Create(ctx, &entity.Supplier{Name: "Beta", Type: enum.SupplierTypeProducer, Active: true}))
			return boom
		})
	})
	require.ErrorIs(t, err, boom)

	var count int64
	db.Model(&entity.Supplier{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestSupplierRepository_ListSearchAndActive(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewSupplierRepository(db)

	require.NoError(t, repo.Create(ctx, &entity.Supplier{Name: "Acme Foods", Type: enum.SupplierTypeDistributor, Active: true}))
	require.NoError(t, repo.Create(ctx, &entity.Supplier{Name: "acme Hardware", Type: enum.SupplierTypeWholesaler, Active: false}))
	require.NoError(t, repo.Create(ctx, &entity.Supplier{Name: "Zeta", Type: enum.SupplierTypeProducer, Active: true}))

	all, total, err := repo.List(ctx, &domainRepo.SupplierFilterParams{Pagination: &pagination.PaginationParams{}, Search: "ACME"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)

	active, total, err := repo.List(ctx, &domainRepo.SupplierFilterParams{Pagination: &pagination.PaginationParams{}, Search: "acme", ActiveOnly: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Acme Foods", active[0].Name)

	missing, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCouponRepository_GetByCodeIsCaseSensitive(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewCouponRepository(db)

	require.NoError(t, repo.Create(ctx, &entity.Coupon{
		Code: "SAVE10", DiscountType: enum.DiscountTypePercentage,
		DiscountValue: decimal.NewFromInt(10), MinOrderTotal: decimal.Zero, Active: true,
	}))

	found, err := repo.GetByCode(ctx, "SAVE10")
	require.NoError(t, err)
	require.NotNil(t, found)

	miss, err := repo.GetByCode(ctx, "save10")
	require.NoError(t, err)
	assert.Nil(t, miss)
}

func TestCouponRepository_IncrementUsageStopsAtCap(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewCouponRepository(db)

	coupon := &entity.Coupon{
		Code: "ONCE", DiscountType: enum.DiscountTypeFixed,
		DiscountValue: decimal.NewFromInt(5), MinOrderTotal: decimal.Zero,
		MaxUses: intPtr(1), Active: true,
	}
	require.NoError(t, repo.Create(ctx, coupon))

	ok, err := repo.IncrementUsage(ctx, coupon.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.IncrementUsage(ctx, coupon.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	reloaded, err := repo.GetByID(ctx, coupon.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.UsedCount)
}

func TestCouponRepository_CountUserUsages(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewCouponRepository(db)

	coupon := &entity.Coupon{Code: "MULTI", DiscountType: enum.DiscountTypeFixed, DiscountValue: decimal.NewFromInt(1), MinOrderTotal: decimal.Zero, Active: true}
	require.NoError(t, repo.Create(ctx, coupon))

	user := uint(3)
	for i := 0; i < 2; i++ {
		require.NoError(t, repo.CreateUsage(ctx, &entity.CouponUsage{
			CouponID: coupon.ID, UserID: &user, OrderTotal: decimal.NewFromInt(10),
			DiscountAmount: decimal.NewFromInt(1), UsedAt: time.Now(),
		}))
	}
	require.NoError(t, repo.CreateUsage(ctx, &entity.CouponUsage{
		CouponID: coupon.ID, OrderTotal: decimal.NewFromInt(10),
		DiscountAmount: decimal.NewFromInt(1), UsedAt: time.Now(),
	}))

	count, err := repo.CountUserUsages(ctx, coupon.ID, user)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestShippingRepository_UpsertByMethodAndRegion(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewShippingRepository(db)

	require.NoError(t, repo.UpsertRule(ctx, &entity.ShippingRule{
		Method: "Express", BaseFee: decimal.NewFromInt(500), PerItemFee: decimal.NewFromInt(100), Active: true,
	}))
	require.NoError(t, repo.UpsertRule(ctx, &entity.ShippingRule{
		Method: "Express", BaseFee: decimal.NewFromInt(600), PerItemFee: decimal.NewFromInt(100),
		FreeShippingThreshold: decimal.NewNullDecimal(decimal.NewFromInt(9000)), Active: true,
	}))
	require.NoError(t, repo.UpsertSurcharge(ctx, &entity.RegionSurcharge{Region: "Mombasa", Fee: decimal.NewFromInt(150), Active: true}))
	require.NoError(t, repo.UpsertSurcharge(ctx, &entity.RegionSurcharge{Region: "Mombasa", Fee: decimal.NewFromInt(175), Active: false}))

	rules, err := repo.ListRules(ctx)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.True(t, rules[0].BaseFee.Equal(decimal.NewFromInt(600)))
	assert.True(t, rules[0].FreeShippingThreshold.Valid)

	surcharges, err := repo.ListSurcharges(ctx)
	require.NoError(t, err)
	require.Len(t, surcharges, 1)
	assert.True(t, surcharges[0].Fee.Equal(decimal.NewFromInt(175)))
	assert.False(t, surcharges[0].Active)
}

func TestStatusRepository_SetActive(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewStatusRepository(db)
	supplier := testutil.SeedSupplier(t, db, 7)

	ok, err := repo.SetActive(ctx, enum.StatusTargetSuppliers, supplier.ID, false)
	require.NoError(t, err)
	assert.True(t, ok)

	var reloaded entity.Supplier
	require.NoError(t, db.First(&reloaded, supplier.ID).Error)
	assert.False(t, reloaded.Active)

	ok, err = repo.SetActive(ctx, enum.StatusTargetSuppliers, supplier.ID, false)
	require.NoError(t, err)
	assert.True(t, ok, "unchanged value still reports the row exists")

	ok, err = repo.SetActive(ctx, enum.StatusTargetProducts, 404, true)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.SetActive(ctx, enum.StatusTarget("users"), 1, true)
	assert.Error(t, err)
}

func TestPurchaseOrderRepository_TransitionStatus(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewPurchaseOrderRepository(db)

	order := &entity.PurchaseOrder{
		SupplierID: 7, CreatedByID: 3, OrderDate: time.Now(),
		TotalAmount: decimal.NewFromInt(25), Status: enum.PurchaseOrderStatusPending,
	}
	require.NoError(t, repo.Create(ctx, order))

	at := time.Now()
	ok, err := repo.TransitionStatus(ctx, order.ID, enum.PurchaseOrderStatusPending, enum.PurchaseOrderStatusReceived, at)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.TransitionStatus(ctx, order.ID, enum.PurchaseOrderStatusPending, enum.PurchaseOrderStatusCancelled, at)
	require.NoError(t, err)
	assert.False(t, ok)

	reloaded, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.PurchaseOrderStatusReceived, reloaded.Status)
	assert.NotNil(t, reloaded.ReceivedAt)
	assert.Nil(t, reloaded.CancelledAt)
}

func TestInvoiceRepository_MarkPaidAndOverdue(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewInvoiceRepository(db)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	overdue := &entity.Invoice{
		SupplierID: 7, PurchaseOrderID: 1, InvoiceNumber: "INV-20250101-0001",
		Amount: decimal.NewFromInt(25), Status: enum.InvoiceStatusPending, DueDate: now.AddDate(0, 0, -1),
	}
	current := &entity.Invoice{
		SupplierID: 7, PurchaseOrderID: 2, InvoiceNumber: "INV-20250301-0002",
		Amount: decimal.NewFromInt(40), Status: enum.InvoiceStatusPending, DueDate: now.AddDate(0, 0, 30),
	}
	require.NoError(t, repo.Create(ctx, overdue))
	require.NoError(t, repo.Create(ctx, current))

	list, total, err := repo.List(ctx, &domainRepo.InvoiceFilterParams{Pagination: &pagination.PaginationParams{}, Overdue: true, Now: now})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, overdue.ID, list[0].ID)

	ok, err := repo.MarkPaid(ctx, overdue.ID, now)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.MarkPaid(ctx, overdue.ID, now)
	require.NoError(t, err)
	assert.False(t, ok)

	paid, err := repo.GetByPurchaseOrderID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, enum.InvoiceStatusPaid, paid.Status)
	assert.NotNil(t, paid.PaidAt)
}

func TestProductRepository_AtomicIncrementBatch(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewProductRepository(db)
	testutil.SeedProduct(t, db, 1, 5)
	testutil.SeedProduct(t, db, 2, 0)

	require.NoError(t, repo.AtomicIncrementBatch(ctx, map[uint]int{1: 2, 2: 1}))

	products, err := repo.GetByIDs(ctx, []uint{1, 2})
	require.NoError(t, err)
	stock := map[uint]int{}
	for _, p := range products {
		stock[p.ID] = p.Quantity
	}
	assert.Equal(t, 7, stock[1])
	assert.Equal(t, 1, stock[2])

	// unknown product rolls the whole batch back
	err = repo.AtomicIncrementBatch(ctx, map[uint]int{1: 1, 999: 1})
	require.Error(t, err)
	p, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 7, p.Quantity)
}

func TestIdempotencyRepository_DeleteExpired(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewIdempotencyRepository(db)
	now := time.Now()

	require.NoError(t, repo.Create(ctx, &entity.IdempotencyKey{Key: "old", UserID: 1, Endpoint: "POST /x", ResponseCode: 201, ExpiresAt: now.Add(-time.Hour)}))
	require.NoError(t, repo.Create(ctx, &entity.IdempotencyKey{Key: "new", UserID: 1, Endpoint: "POST /x", ResponseCode: 201, ExpiresAt: now.Add(time.Hour)}))

	deleted, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	got, err := repo.GetByKey(ctx, "new", 1)
	require.NoError(t, err)
	require.NotNil(t, got)

	other, err := repo.GetByKey(ctx, "new", 2)
	require.NoError(t, err)
	assert.Nil(t, other)
}
