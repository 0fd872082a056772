package service

import (
	"context"
	"testing"

	"github.com/sangkips/backoffice-api/internal/domain/entity"
	"github.com/sangkips/backoffice-api/internal/domain/enum"
	"github.com/sangkips/backoffice-api/internal/domain/repository"
	"github.com/sangkips/backoffice-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupplierService_CreateAndList(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	supplier, err := s.suppliers.CreateSupplier(ctx, &CreateSupplierInput{Name: " Acme Ltd "})
	require.NoError(t, err)
	assert.Equal(t, "Acme Ltd", supplier.Name)
	assert.Equal(t, enum.SupplierTypeDistributor, supplier.Type)
	assert.True(t, supplier.Active)

	_, err = s.suppliers.CreateSupplier(ctx, &CreateSupplierInput{Name: "", Type: "smuggler"})
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	assert.Len(t, appErr.Errors, 2)

	result, err := s.suppliers.ListSuppliers(ctx, &repository.SupplierFilterParams{Search: "acme"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Pagination.Total)

	_, err = s.suppliers.GetSupplier(ctx, 42)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestProductService_CreateAndLowStock(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	low, err := s.products.CreateProduct(ctx, &CreateProductInput{
		Name: "Maize Flour", Quantity: 2, QuantityAlert: 5,
		BuyingPrice: money("100"), SellingPrice: money("130"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, low.Code)

	_, err = s.products.CreateProduct(ctx, &CreateProductInput{
		Name: "Sugar", Code: "SUG-1", Quantity: 50, QuantityAlert: 5,
		BuyingPrice: money("150"), SellingPrice: money("180"),
	})
	require.NoError(t, err)

	_, err = s.products.CreateProduct(ctx, &CreateProductInput{
		Name: "Sugar again", Code: "SUG-1", BuyingPrice: money("1"), SellingPrice: money("1"),
	})
	assert.Equal(t, 409, apperror.GetAppError(err).Code)

	missing := uint(77)
	_, err = s.products.CreateProduct(ctx, &CreateProductInput{Name: "Salt", CategoryID: &missing})
	assert.Equal(t, 404, apperror.GetAppError(err).Code)

	lowStock, err := s.products.GetLowStockProducts(ctx)
	require.NoError(t, err)
	require.Len(t, lowStock, 1)
	assert.Equal(t, low.ID, lowStock[0].ID)

	result, err := s.products.ListProducts(ctx, &repository.ProductFilterParams{LowStock: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Pagination.Total)
}

func TestInvoiceService_MarkPaid(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	receipt, err := s.orders.CreatePurchaseOrder(ctx, entity.Actor{UserID: 3}, sampleOrder())
	require.NoError(t, err)

	invoice, err := s.invoices.MarkPaid(ctx, receipt.InvoiceID)
	require.NoError(t, err)
	assert.Equal(t, enum.InvoiceStatusPaid, invoice.Status)
	require.NotNil(t, invoice.PaidAt)

	_, err = s.invoices.MarkPaid(ctx, receipt.InvoiceID)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)

	_, err = s.invoices.MarkPaid(ctx, 999)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)

	paid := enum.InvoiceStatusPaid
	result, err := s.invoices.ListInvoices(ctx, &repository.InvoiceFilterParams{Status: &paid})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Pagination.Total)
}

func TestStatusService_ToggleActive(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	coupon := createCoupon(t, s, entity.Coupon{Code: "TOGGLE", DiscountValue: money("1"), MinOrderTotal: money("0"), Active: true})

	require.NoError(t, s.status.ToggleActive(ctx, "coupons", coupon.ID, false))
	result, err := s.coupons.Validate(ctx, entity.Anonymous(), "TOGGLE", money("10"))
	require.NoError(t, err)
	assert.Equal(t, ReasonInactive, result.Reason)

	err = s.status.ToggleActive(ctx, "users; DROP TABLE users", 1, false)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	err = s.status.ToggleActive(ctx, "products", 555, true)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestAuthService_CreateUserLoginRefresh(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	perm := entity.Permission{Name: "manage-purchases", GuardName: "web"}
	require.NoError(t, s.db.Create(&perm).Error)
	require.NoError(t, s.db.Create(&entity.Role{Name: "staff", GuardName: "web", Permissions: []entity.Permission{perm}}).Error)

	user, err := s.auth.CreateUser(ctx, &CreateUserInput{Name: "Jane", Email: "jane@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, []string{"staff"}, user.RoleNames())

	_, err = s.auth.CreateUser(ctx, &CreateUserInput{Name: "Jane", Email: "jane@example.com", Password: "x"})
	assert.Equal(t, 409, apperror.GetAppError(err).Code)

	_, err = s.auth.CreateUser(ctx, &CreateUserInput{Name: "Bob", Email: "bob@example.com", Password: "x", Role: "overlord"})
	assert.Equal(t, 422, apperror.GetAppError(err).Code)

	_, err = s.auth.Login(ctx, &LoginInput{Email: "jane@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	out, err := s.auth.Login(ctx, &LoginInput{Email: "jane@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, []string{"manage-purchases"}, out.User.GetPermissions())

	refreshed, err := s.auth.RefreshToken(ctx, out.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, refreshed.User.ID)

	_, err = s.auth.RefreshToken(ctx, "not-a-token")
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}
