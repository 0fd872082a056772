package request

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ShippingFeeRequest keeps every field raw so a mistyped value is coerced
// instead of failing the bind.
type ShippingFeeRequest struct {
	Method    json.RawMessage `json:"method"`
	Subtotal  json.RawMessage `json:"subtotal"`
	ItemCount json.RawMessage `json:"item_count"`
	Region    json.RawMessage `json:"region"`
}

// UpsertShippingRuleRequest represents a rule create-or-replace for one method
type UpsertShippingRuleRequest struct {
	Method                string           `json:"method" binding:"required,max=50"`
	BaseFee               decimal.Decimal  `json:"base_fee"`
	PerItemFee            decimal.Decimal  `json:"per_item_fee"`
	FreeShippingThreshold *decimal.Decimal `json:"free_shipping_threshold"`
	Active                *bool            `json:"active"`
}

// UpsertRegionSurchargeRequest represents a surcharge create-or-replace for one region
type UpsertRegionSurchargeRequest struct {
	Region string          `json:"region" binding:"required,max=100"`
	Fee    decimal.Decimal `json:"fee"`
	Active *bool           `json:"active"`
}
