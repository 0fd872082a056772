package service

import (
	"strings"

	"github.com/sangkips/backoffice-api/internal/config"
	"github.com/sangkips/backoffice-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// RateTable is a snapshot of the shipping rules and region surcharges
type RateTable struct {
	rules      map[string]entity.ShippingRule
	surcharges map[string]entity.RegionSurcharge
	fallback   entity.ShippingRule
}

// NewRateTable indexes rules by method and surcharges by lower-cased region.
// fallback prices Standard when rules has no usable Standard entry.
func NewRateTable(rules []entity.ShippingRule, surcharges []entity.RegionSurcharge, fallback entity.ShippingRule) RateTable {
	t := RateTable{
		rules:      make(map[string]entity.ShippingRule, len(rules)),
		surcharges: make(map[string]entity.RegionSurcharge, len(surcharges)),
		fallback:   fallback,
	}
	for _, r := range rules {
		t.rules[r.Method] = r
	}
	for _, s := range surcharges {
		t.surcharges[regionKey(s.Region)] = s
	}
	return t
}

// FallbackRule builds the Standard rule from configuration
func FallbackRule(cfg config.ShippingConfig) entity.ShippingRule {
	return entity.ShippingRule{
		Method:                entity.StandardShippingMethod,
		BaseFee:               cfg.DefaultBaseFee,
		PerItemFee:            cfg.DefaultPerItemFee,
		FreeShippingThreshold: cfg.DefaultFreeThreshold,
		Active:                true,
	}
}

func regionKey(region string) string {
	return strings.ToLower(strings.TrimSpace(region))
}

// Rule resolves method to an active rule, falling back to Standard
func (t RateTable) Rule(method string) entity.ShippingRule {
	if r, ok := t.rules[strings.TrimSpace(method)]; ok && r.Active {
		return r
	}
	if r, ok := t.rules[entity.StandardShippingMethod]; ok && r.Active {
		return r
	}
	return t.fallback
}

// Surcharge returns the active surcharge for region, or zero
func (t RateTable) Surcharge(region string) decimal.Decimal {
	if s, ok := t.surcharges[regionKey(region)]; ok && s.Active {
		return s.Fee
	}
	return decimal.Zero
}

// FeeInput is one shipping quote request. Negative values are treated as zero.
type FeeInput struct {
	Method    string
	Subtotal  decimal.Decimal
	ItemCount int
	Region    string
}

// FeeQuote is the priced result of a FeeInput
type FeeQuote struct {
	Method       string          `json:"method"`
	Region       string          `json:"region,omitempty"`
	BaseFee      decimal.Decimal `json:"base_fee"`
	ItemFee      decimal.Decimal `json:"item_fee"`
	Surcharge    decimal.Decimal `json:"surcharge"`
	FreeShipping bool            `json:"free_shipping"`
	Fee          decimal.Decimal `json:"fee"`
}

// CalculateFee prices in against table:
// base + perItem × max(items-1, 0) + surcharge(region), or zero once the
// subtotal reaches the rule's free shipping threshold.
func CalculateFee(table RateTable, in FeeInput) FeeQuote {
	subtotal := in.Subtotal
	if subtotal.IsNegative() {
		subtotal = decimal.Zero
	}
	items := in.ItemCount
	if items < 0 {
		items = 0
	}

	rule := table.Rule(in.Method)
	quote := FeeQuote{
		Method: rule.Method,
		Region: strings.TrimSpace(in.Region),
	}

	if rule.FreeShippingThreshold.Valid && subtotal.GreaterThanOrEqual(rule.FreeShippingThreshold.Decimal) {
		quote.FreeShipping = true
		quote.BaseFee = decimal.Zero
		quote.ItemFee = decimal.Zero
		quote.Surcharge = decimal.Zero
		quote.Fee = decimal.Zero
		return quote
	}

	extra := items - 1
	if extra < 0 {
		extra = 0
	}

	quote.BaseFee = rule.BaseFee
	quote.ItemFee = rule.PerItemFee.Mul(decimal.NewFromInt(int64(extra)))
	quote.Surcharge = table.Surcharge(in.Region)
	quote.Fee = quote.BaseFee.Add(quote.ItemFee).Add(quote.Surcharge).Round(2)
	return quote
}
