package repository

import (
	"context"
	"fmt"

	"github.com/sangkips/backoffice-api/internal/domain/entity"
	"github.com/sangkips/backoffice-api/internal/domain/enum"
	domainRepo "github.com/sangkips/backoffice-api/internal/domain/repository"
	"gorm.io/gorm"
)

type statusRepository struct {
	db *gorm.DB
}

// NewStatusRepository creates a new status repository
func NewStatusRepository(db *gorm.DB) domainRepo.StatusRepository {
	return &statusRepository{db: db}
}

// statusModels maps each target to its model; the table name comes from the model, not the request
var statusModels = map[enum.StatusTarget]func() interface{}{
	enum.StatusTargetCoupons:          func() interface{} { return &entity.Coupon{} },
	enum.StatusTargetSuppliers:        func() interface{} { return &entity.Supplier{} },
	enum.StatusTargetProducts:         func() interface{} { return &entity.Product{} },
	enum.StatusTargetShippingRules:    func() interface{} { return &entity.ShippingRule{} },
	enum.StatusTargetRegionSurcharges: func() interface{} { return &entity.RegionSurcharge{} },
}

func (r *statusRepository) SetActive(ctx context.Context, target enum.StatusTarget, id uint, active bool) (bool, error) {
	model, ok := statusModels[target]
	if !ok {
		return false, fmt.Errorf("unsupported status target %q", target)
	}

	result := conn(ctx, r.db).Model(model()).
		Where("id = ?", id).
		Update("active", active)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected > 0 {
		return true, nil
	}

	// MySQL reports 0 affected rows when the value is unchanged, so confirm the row exists
	var count int64
	if err := conn(ctx, r.db).Model(model()).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
