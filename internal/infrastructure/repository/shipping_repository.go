package repository

import (
	"context"

	"github.com/sangkips/backoffice-api/internal/domain/entity"
	domainRepo "github.com/sangkips/backoffice-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type shippingRepository struct {
	db *gorm.DB
}

// NewShippingRepository creates a new shipping repository
func NewShippingRepository(db *gorm.DB) domainRepo.ShippingRepository {
	return &shippingRepository{db: db}
}

func (r *shippingRepository) ListRules(ctx context.Context) ([]entity.ShippingRule, error) {
	var rules []entity.ShippingRule
	err := conn(ctx, r.db).Order("method ASC").Find(&rules).Error
	return rules, err
}

func (r *shippingRepository) ListSurcharges(ctx context.Context) ([]entity.RegionSurcharge, error) {
	var surcharges []entity.RegionSurcharge
	err := conn(ctx, r.db).Order("region ASC").Find(&surcharges).Error
	return surcharges, err
}

func (r *shippingRepository) UpsertRule(ctx context.Context, rule *entity.ShippingRule) error {
	return conn(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "method"}},
		DoUpdates: clause.AssignmentColumns([]string{"base_fee", "per_item_fee", "free_shipping_threshold", "active", "updated_at"}),
	}).Create(rule).Error
}

func (r *shippingRepository) UpsertSurcharge(ctx context.Context, surcharge *entity.RegionSurcharge) error {
	return conn(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "region"}},
		DoUpdates: clause.AssignmentColumns([]string{"fee", "active", "updated_at"}),
	}).Create(surcharge).Error
}
