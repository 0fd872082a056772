package repository

import (
	"context"
	"errors"

	"github.com/sangkips/backoffice-api/internal/domain/entity"
	domainRepo "github.com/sangkips/backoffice-api/internal/domain/repository"
	"github.com/sangkips/backoffice-api/pkg/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository creates a new coupon repository
func NewCouponRepository(db *gorm.DB) domainRepo.CouponRepository {
	return &couponRepository{db: db}
}

func (r *couponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	return conn(ctx, r.db).Create(coupon).Error
}

func (r *couponRepository) GetByID(ctx context.Context, id uint) (*entity.Coupon, error) {
	var coupon entity.Coupon
	err := conn(ctx, r.db).First(&coupon, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &coupon, err
}

func (r *couponRepository) GetByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	return r.getByCode(conn(ctx, r.db), code)
}

func (r *couponRepository) GetByCodeForUpdate(ctx context.Context, code string) (*entity.Coupon, error) {
	return r.getByCode(conn(ctx, r.db).Scopes(forUpdate), code)
}

// getByCode re-checks the code in Go: MySQL's default collations compare case-insensitively.
func (r *couponRepository) getByCode(db *gorm.DB, code string) (*entity.Coupon, error) {
	var coupon entity.Coupon
	err := db.First(&coupon, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if coupon.Code != code {
		return nil, nil
	}
	return &coupon, nil
}

func (r *couponRepository) List(ctx context.Context, params *pagination.PaginationParams, term string) ([]entity.Coupon, int64, error) {
	var coupons []entity.Coupon
	var total int64

	query := conn(ctx, r.db).Model(&entity.Coupon{}).Scopes(search(term, "code"))

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Scopes(paginate(params)).
		Order("created_at DESC").
		Order("id DESC").
		Find(&coupons).Error

	return coupons, total, err
}

func (r *couponRepository) CountUserUsages(ctx context.Context, couponID, userID uint) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&entity.CouponUsage{}).
		Where("coupon_id = ? AND user_id = ?", couponID, userID).
		Count(&count).Error
	return count, err
}

// IncrementUsage uses: UPDATE coupons SET used_count = used_count + 1
// WHERE id = ? AND (max_uses IS NULL OR used_count < max_uses)
func (r *couponRepository) IncrementUsage(ctx context.Context, couponID uint) (bool, error) {
	result := conn(ctx, r.db).Model(&entity.Coupon{}).
		Where("id = ? AND (max_uses IS NULL OR used_count < max_uses)", couponID).
		Update("used_count", gorm.Expr("used_count + ?", 1))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *couponRepository) CreateUsage(ctx context.Context, usage *entity.CouponUsage) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(usage).Error
}
