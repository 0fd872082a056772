package repository

import (
	"context"

	"github.com/sangkips/backoffice-api/internal/domain/entity"
	"github.com/sangkips/backoffice-api/pkg/pagination"
)

// CouponRepository defines the interface for coupon data operations
type CouponRepository interface {
	Create(ctx context.Context, coupon *entity.Coupon) error
	GetByID(ctx context.Context, id uint) (*entity.Coupon, error)
	// GetByCode returns the coupon whose code matches exactly, including case
	GetByCode(ctx context.Context, code string) (*entity.Coupon, error)
	// GetByCodeForUpdate is GetByCode with a row lock; call it inside a transaction
	GetByCodeForUpdate(ctx context.Context, code string) (*entity.Coupon, error)
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Coupon, int64, error)
	CountUserUsages(ctx context.Context, couponID, userID uint) (int64, error)
	// IncrementUsage bumps used_count unless the global cap is already reached.
	// Returns false when the cap stopped the update.
	IncrementUsage(ctx context.Context, couponID uint) (bool, error)
	CreateUsage(ctx context.Context, usage *entity.CouponUsage) error
}
