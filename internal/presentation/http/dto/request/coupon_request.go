package request

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ValidateCouponRequest is read leniently: a malformed order_total is
// reported as an invalid request, not a binding error.
type ValidateCouponRequest struct {
	Code       string          `json:"code"`
	OrderTotal json.RawMessage `json:"order_total"`
}

// RedeemCouponRequest represents a coupon redemption for a placed order
type RedeemCouponRequest struct {
	Code           string          `json:"code" binding:"required"`
	OrderTotal     decimal.Decimal `json:"order_total"`
	OrderReference string          `json:"order_reference" binding:"max=100"`
}

// CreateCouponRequest represents a coupon creation request
type CreateCouponRequest struct {
	Code           string          `json:"code" binding:"required,max=50"`
	DiscountType   string          `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue  decimal.Decimal `json:"discount_value"`
	MinOrderTotal  decimal.Decimal `json:"min_order_total"`
	MaxUses        *int            `json:"max_uses" binding:"omitempty,min=1"`
	MaxUsesPerUser *int            `json:"max_uses_per_user" binding:"omitempty,min=1"`
	ExpiresAt      *time.Time      `json:"expires_at"`
	Active         *bool           `json:"active"`
}
