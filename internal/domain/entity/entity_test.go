package entity

import (
	"testing"
	"time"

	"github.com/sangkips/backoffice-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int { return &n }

func TestCoupon_DiscountFor(t *testing.T) {
	tests := []struct {
		name   string
		coupon Coupon
		total  string
		want   string
	}{
		{"percentage", Coupon{DiscountType: enum.DiscountTypePercentage, DiscountValue: decimal.NewFromInt(10)}, "250.00", "25"},
		{"percentage rounds to cents", Coupon{DiscountType: enum.DiscountTypePercentage, DiscountValue: decimal.NewFromInt(15)}, "33.33", "5"},
		{"fixed below total", Coupon{DiscountType: enum.DiscountTypeFixed, DiscountValue: decimal.NewFromInt(50)}, "200", "50"},
		{"fixed capped at total", Coupon{DiscountType: enum.DiscountTypeFixed, DiscountValue: decimal.NewFromInt(500)}, "120", "120"},
		{"percentage over 100 capped", Coupon{DiscountType: enum.DiscountTypePercentage, DiscountValue: decimal.NewFromInt(150)}, "80", "80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.coupon.DiscountFor(decimal.RequireFromString(tt.total))
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestCoupon_Limits(t *testing.T) {
	c := Coupon{MaxUses: intPtr(2), MaxUsesPerUser: intPtr(1), UsedCount: 1}
	assert.False(t, c.GlobalLimitReached())
	assert.False(t, c.UserLimitReached(0))
	assert.True(t, c.UserLimitReached(1))

	c.UsedCount = 2
	assert.True(t, c.GlobalLimitReached())

	unlimited := Coupon{UsedCount: 10_000}
	assert.False(t, unlimited.GlobalLimitReached())
	assert.False(t, unlimited.UserLimitReached(10_000))
}

func TestCoupon_IsExpired(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	assert.True(t, (&Coupon{ExpiresAt: &past}).IsExpired(now))
	assert.False(t, (&Coupon{ExpiresAt: &future}).IsExpired(now))
	assert.False(t, (&Coupon{}).IsExpired(now))
}

func TestInvoiceNumberFor(t *testing.T) {
	created := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	assert.Equal(t, "INV-20250301-0001", InvoiceNumberFor(created, 1))
	assert.Equal(t, "INV-20250301-0042", InvoiceNumberFor(created, 42))
	assert.Equal(t, "INV-20250301-12345", InvoiceNumberFor(created, 12345))
}

func TestPurchaseOrderItem_LineTotal(t *testing.T) {
	item := PurchaseOrderItem{Quantity: 2, UnitPrice: decimal.RequireFromString("10.00")}
	assert.True(t, decimal.NewFromInt(20).Equal(item.LineTotal()))
}

func TestActor(t *testing.T) {
	anon := Anonymous()
	assert.True(t, anon.IsAnonymous())
	assert.Nil(t, anon.UserIDPtr())

	a := Actor{UserID: 3, Roles: []string{"admin"}}
	assert.False(t, a.IsAnonymous())
	assert.Equal(t, uint(3), *a.UserIDPtr())
	assert.True(t, a.HasRole("admin"))
	assert.False(t, a.HasRole("super-admin"))
}

func TestUser_GetPermissionsDeduplicates(t *testing.T) {
	u := User{Roles: []Role{
		{Name: "admin", Permissions: []Permission{{Name: "manage-coupons"}, {Name: "manage-purchases"}}},
		{Name: "staff", Permissions: []Permission{{Name: "manage-coupons"}}},
	}}

	assert.ElementsMatch(t, []string{"manage-coupons", "manage-purchases"}, u.GetPermissions())
	assert.Equal(t, []string{"admin", "staff"}, u.RoleNames())
}
