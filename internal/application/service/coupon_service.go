package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sangkips/backoffice-api/internal/domain/entity"
	"github.com/sangkips/backoffice-api/internal/domain/enum"
	"github.com/sangkips/backoffice-api/internal/domain/repository"
	"github.com/sangkips/backoffice-api/pkg/apperror"
	"github.com/sangkips/backoffice-api/pkg/metrics"
	"github.com/sangkips/backoffice-api/pkg/pagination"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Coupon rejection reasons, in the order they are checked
const (
	ReasonInvalidRequest    = "invalid request"
	ReasonNotFound          = "not found"
	ReasonBelowMinimum      = "below minimum order total"
	ReasonInactive          = "inactive"
	ReasonExpired           = "expired"
	ReasonUsageLimitReached = "usage limit reached"
	ReasonUserLimitReached  = "per-user usage limit reached"
)

// CouponValidation is the outcome of checking a code against an order
type CouponValidation struct {
	Valid          bool              `json:"valid"`
	Reason         string            `json:"reason,omitempty"`
	CouponID       uint              `json:"coupon_id,omitempty"`
	Code           string            `json:"code,omitempty"`
	DiscountType   enum.DiscountType `json:"discount_type,omitempty"`
	DiscountValue  decimal.Decimal   `json:"discount_value"`
	DiscountAmount decimal.Decimal   `json:"discount_amount"`
}

func rejected(reason string) *CouponValidation {
	return &CouponValidation{Reason: reason}
}

func accepted(c *entity.Coupon, orderTotal decimal.Decimal) *CouponValidation {
	return &CouponValidation{
		Valid:          true,
		CouponID:       c.ID,
		Code:           c.Code,
		DiscountType:   c.DiscountType,
		DiscountValue:  c.DiscountValue,
		DiscountAmount: c.DiscountFor(orderTotal),
	}
}

// CouponService validates, redeems and administers coupons
type CouponService struct {
	couponRepo repository.CouponRepository
	transactor repository.Transactor
	metrics    *metrics.Metrics
	now        func() time.Time
}

// NewCouponService creates a new coupon service
func NewCouponService(couponRepo repository.CouponRepository, transactor repository.Transactor, m *metrics.Metrics) *CouponService {
	return &CouponService{
		couponRepo: couponRepo,
		transactor: transactor,
		metrics:    m,
		now:        time.Now,
	}
}

// Validate checks code against orderTotal for actor without recording anything.
// Bad input yields an invalid result, never an error.
func (s *CouponService) Validate(ctx context.Context, actor entity.Actor, code string, orderTotal decimal.Decimal) (*CouponValidation, error) {
	result, err := s.validate(ctx, actor, code, orderTotal, s.couponRepo.GetByCode)
	if err != nil {
		return nil, err
	}
	s.metrics.CouponValidated(result.Reason)
	return result, nil
}

func (s *CouponService) validate(
	ctx context.Context,
	actor entity.Actor,
	code string,
	orderTotal decimal.Decimal,
	lookup func(ctx context.Context, code string) (*entity.Coupon, error),
) (*CouponValidation, error) {
	if code == "" || orderTotal.IsNegative() {
		return rejected(ReasonInvalidRequest), nil
	}

	coupon, err := lookup(ctx, code)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return rejected(ReasonNotFound), nil
	}

	reason, err := s.check(ctx, coupon, actor, orderTotal)
	if err != nil {
		return nil, err
	}
	if reason != "" {
		result := rejected(reason)
		result.CouponID = coupon.ID
		result.Code = coupon.Code
		return result, nil
	}
	return accepted(coupon, orderTotal), nil
}

// check applies the rules in order and returns the first failing reason.
// The per-user limit only applies to known actors.
func (s *CouponService) check(ctx context.Context, c *entity.Coupon, actor entity.Actor, orderTotal decimal.Decimal) (string, error) {
	switch {
	case orderTotal.LessThan(c.MinOrderTotal):
		return ReasonBelowMinimum, nil
	case !c.Active:
		return ReasonInactive, nil
	case c.IsExpired(s.now()):
		return ReasonExpired, nil
	case c.GlobalLimitReached():
		return ReasonUsageLimitReached, nil
	}

	if actor.IsAnonymous() || c.MaxUsesPerUser == nil {
		return "", nil
	}

	uses, err := s.couponRepo.CountUserUsages(ctx, c.ID, actor.UserID)
	if err != nil {
		return "", err
	}
	if c.UserLimitReached(uses) {
		return ReasonUserLimitReached, nil
	}
	return "", nil
}

// RedeemInput represents a coupon redemption against an order
type RedeemInput struct {
	Code           string
	OrderTotal     decimal.Decimal
	OrderReference string
}

// Redeem validates and records one use of a coupon atomically.
// The coupon row stays locked from the check until the usage row is written.
func (s *CouponService) Redeem(ctx context.Context, actor entity.Actor, input *RedeemInput) (*CouponValidation, error) {
	var result *CouponValidation

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		result, err = s.validate(ctx, actor, input.Code, input.OrderTotal, s.couponRepo.GetByCodeForUpdate)
		if err != nil || !result.Valid {
			return err
		}

		ok, err := s.couponRepo.IncrementUsage(ctx, result.CouponID)
		if err != nil {
			return err
		}
		if !ok {
			result = rejected(ReasonUsageLimitReached)
			return nil
		}

		return s.couponRepo.CreateUsage(ctx, &entity.CouponUsage{
			CouponID:       result.CouponID,
			UserID:         actor.UserIDPtr(),
			OrderReference: strings.TrimSpace(input.OrderReference),
			OrderTotal:     input.OrderTotal,
			DiscountAmount: result.DiscountAmount,
			UsedAt:         s.now(),
		})
	})
	if err != nil {
		return nil, err
	}

	s.metrics.CouponRedeemed(result.Reason)
	return result, nil
}

// CreateCouponInput represents the create coupon input
type CreateCouponInput struct {
	Code           string
	DiscountType   enum.DiscountType
	DiscountValue  decimal.Decimal
	MinOrderTotal  decimal.Decimal
	MaxUses        *int
	MaxUsesPerUser *int
	ExpiresAt      *time.Time
	Active         bool
}

// CreateCoupon creates a new coupon
func (s *CouponService) CreateCoupon(ctx context.Context, input *CreateCouponInput) (*entity.Coupon, error) {
	code := strings.TrimSpace(input.Code)

	var fieldErrors []apperror.FieldError
	if code == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "code", Message: "code is required"})
	}
	if !input.DiscountType.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "discount_type", Message: "must be percentage or fixed"})
	}
	if input.DiscountValue.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "discount_value", Message: "must not be negative"})
	}
	if input.DiscountType == enum.DiscountTypePercentage && input.DiscountValue.GreaterThan(decimal.NewFromInt(100)) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "discount_value", Message: "percentage must not exceed 100"})
	}
	if input.MinOrderTotal.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "min_order_total", Message: "must not be negative"})
	}
	if input.MaxUses != nil && *input.MaxUses < 1 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "max_uses", Message: "must be at least 1"})
	}
	if input.MaxUsesPerUser != nil && *input.MaxUsesPerUser < 1 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "max_uses_per_user", Message: "must be at least 1"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	existing, err := s.couponRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Coupon code already exists")
	}

	coupon := &entity.Coupon{
		Code:           code,
		DiscountType:   input.DiscountType,
		DiscountValue:  input.DiscountValue,
		MinOrderTotal:  input.MinOrderTotal,
		MaxUses:        input.MaxUses,
		MaxUsesPerUser: input.MaxUsesPerUser,
		ExpiresAt:      input.ExpiresAt,
		Active:         input.Active,
	}

	if err := s.couponRepo.Create(ctx, coupon); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflictError("Coupon code already exists")
		}
		return nil, err
	}

	return coupon, nil
}

// GetCoupon retrieves a coupon by ID
func (s *CouponService) GetCoupon(ctx context.Context, id uint) (*entity.Coupon, error) {
	coupon, err := s.couponRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, apperror.NewNotFoundError("Coupon")
	}
	return coupon, nil
}

// ListCoupons lists coupons with optional code search
func (s *CouponService) ListCoupons(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Coupon], error) {
	params.Validate()
	coupons, total, err := s.couponRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(coupons, pag), nil
}
