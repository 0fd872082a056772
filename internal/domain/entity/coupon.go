package entity

import (
	"time"

	"github.com/sangkips/backoffice-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Coupon is a discount code with optional global and per-user usage caps
type Coupon struct {
	ID             uint              `gorm:"primaryKey" json:"id"`
	Code           string            `gorm:"size:64;not null;uniqueIndex" json:"code"`
	DiscountType   enum.DiscountType `gorm:"size:20;not null" json:"discount_type"`
	DiscountValue  decimal.Decimal   `gorm:"type:decimal(15,2);not null" json:"discount_value"`
	MinOrderTotal  decimal.Decimal   `gorm:"type:decimal(15,2);not null" json:"min_order_total"`
	MaxUses        *int              `json:"max_uses,omitempty"`
	MaxUsesPerUser *int              `json:"max_uses_per_user,omitempty"`
	UsedCount      int               `gorm:"not null;default:0" json:"used_count"`
	ExpiresAt      *time.Time        `json:"expires_at,omitempty"`
	Active         bool              `gorm:"not null" json:"active"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// TableName returns the table name for the Coupon model
func (Coupon) TableName() string {
	return "coupons"
}

// IsExpired reports whether now is past the expiry. Coupons without expiry never expire.
func (c *Coupon) IsExpired(now time.Time) bool {
	return c.ExpiresAt != nil && now.After(*c.ExpiresAt)
}

// GlobalLimitReached reports whether the coupon has been used up across all users
func (c *Coupon) GlobalLimitReached() bool {
	return c.MaxUses != nil && c.UsedCount >= *c.MaxUses
}

// UserLimitReached reports whether a user with userUses prior redemptions is capped
func (c *Coupon) UserLimitReached(userUses int64) bool {
	return c.MaxUsesPerUser != nil && userUses >= int64(*c.MaxUsesPerUser)
}

// DiscountFor computes the discount on orderTotal, never exceeding it
func (c *Coupon) DiscountFor(orderTotal decimal.Decimal) decimal.Decimal {
	var discount decimal.Decimal
	switch c.DiscountType {
	case enum.DiscountTypePercentage:
		discount = orderTotal.Mul(c.DiscountValue).Div(hundred)
	default:
		discount = c.DiscountValue
	}
	if discount.GreaterThan(orderTotal) {
		discount = orderTotal
	}
	return discount.Round(2)
}

// CouponUsage records one redemption
type CouponUsage struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	CouponID       uint            `gorm:"not null;index" json:"coupon_id"`
	UserID         *uint           `gorm:"index" json:"user_id,omitempty"`
	OrderReference string          `gorm:"size:100" json:"order_reference"`
	OrderTotal     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"order_total"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"discount_amount"`
	UsedAt         time.Time       `gorm:"not null" json:"used_at"`

	Coupon *Coupon `gorm:"foreignKey:CouponID" json:"-"`
}

// TableName returns the table name for the CouponUsage model
func (CouponUsage) TableName() string {
	return "coupon_usages"
}
