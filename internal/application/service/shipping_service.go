package service

import (
	"context"
	"strings"

	"github.com/sangkips/backoffice-api/internal/config"
	"github.com/sangkips/backoffice-api/internal/domain/entity"
	"github.com/sangkips/backoffice-api/internal/domain/repository"
	"github.com/sangkips/backoffice-api/pkg/apperror"
	"github.com/sangkips/backoffice-api/pkg/metrics"
	"github.com/shopspring/decimal"
)

// ShippingService quotes delivery fees and manages the rate card
type ShippingService struct {
	shippingRepo repository.ShippingRepository
	fallback     entity.ShippingRule
	metrics      *metrics.Metrics
}

// NewShippingService creates a new shipping service
func NewShippingService(shippingRepo repository.ShippingRepository, cfg config.ShippingConfig, m *metrics.Metrics) *ShippingService {
	return &ShippingService{
		shippingRepo: shippingRepo,
		fallback:     FallbackRule(cfg),
		metrics:      m,
	}
}

// RateTable loads the current rules and surcharges
func (s *ShippingService) RateTable(ctx context.Context) (RateTable, error) {
	rules, err := s.shippingRepo.ListRules(ctx)
	if err != nil {
		return RateTable{}, err
	}
	surcharges, err := s.shippingRepo.ListSurcharges(ctx)
	if err != nil {
		return RateTable{}, err
	}
	return NewRateTable(rules, surcharges, s.fallback), nil
}

// Quote prices a delivery. Both fee endpoints go through here.
func (s *ShippingService) Quote(ctx context.Context, in FeeInput) (*FeeQuote, error) {
	table, err := s.RateTable(ctx)
	if err != nil {
		return nil, err
	}

	quote := CalculateFee(table, in)
	s.metrics.ShippingQuoted(quote.Method, quote.FreeShipping)
	return &quote, nil
}

// ListRules returns every shipping rule
func (s *ShippingService) ListRules(ctx context.Context) ([]entity.ShippingRule, error) {
	return s.shippingRepo.ListRules(ctx)
}

// ListSurcharges returns every region surcharge
func (s *ShippingService) ListSurcharges(ctx context.Context) ([]entity.RegionSurcharge, error) {
	return s.shippingRepo.ListSurcharges(ctx)
}

// UpsertRuleInput represents a rule create-or-update
type UpsertRuleInput struct {
	Method                string
	BaseFee               decimal.Decimal
	PerItemFee            decimal.Decimal
	FreeShippingThreshold *decimal.Decimal
	Active                bool
}

// UpsertRule creates or replaces the rule for a method
func (s *ShippingService) UpsertRule(ctx context.Context, input *UpsertRuleInput) (*entity.ShippingRule, error) {
	var fieldErrors []apperror.FieldError
	method := strings.TrimSpace(input.Method)
	if method == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "method", Message: "method is required"})
	}
	if input.BaseFee.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "base_fee", Message: "must not be negative"})
	}
	if input.PerItemFee.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "per_item_fee", Message: "must not be negative"})
	}
	if input.FreeShippingThreshold != nil && input.FreeShippingThreshold.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "free_shipping_threshold", Message: "must not be negative"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	rule := &entity.ShippingRule{
		Method:     method,
		BaseFee:    input.BaseFee,
		PerItemFee: input.PerItemFee,
		Active:     input.Active,
	}
	if input.FreeShippingThreshold != nil {
		rule.FreeShippingThreshold = decimal.NewNullDecimal(*input.FreeShippingThreshold)
	}

	if err := s.shippingRepo.UpsertRule(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

// UpsertSurchargeInput represents a region surcharge create-or-update
type UpsertSurchargeInput struct {
	Region string
	Fee    decimal.Decimal
	Active bool
}

// UpsertSurcharge creates or replaces the surcharge for a region
func (s *ShippingService) UpsertSurcharge(ctx context.Context, input *UpsertSurchargeInput) (*entity.RegionSurcharge, error) {
	var fieldErrors []apperror.FieldError
	region := strings.TrimSpace(input.Region)
	if region == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "region", Message: "region is required"})
	}
	if input.Fee.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "fee", Message: "must not be negative"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	surcharge := &entity.RegionSurcharge{Region: region, Fee: input.Fee, Active: input.Active}
	if err := s.shippingRepo.UpsertSurcharge(ctx, surcharge); err != nil {
		return nil, err
	}
	return surcharge, nil
}
