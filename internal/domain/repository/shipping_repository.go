package repository

import (
	"context"

	"github.com/sangkips/backoffice-api/internal/domain/entity"
)

// ShippingRepository defines the interface for shipping rule and surcharge data
type ShippingRepository interface {
	ListRules(ctx context.Context) ([]entity.ShippingRule, error)
	ListSurcharges(ctx context.Context) ([]entity.RegionSurcharge, error)
	// UpsertRule creates or updates the rule keyed by its method
	UpsertRule(ctx context.Context, rule *entity.ShippingRule) error
	// UpsertSurcharge creates or updates the surcharge keyed by its region
	UpsertSurcharge(ctx context.Context, surcharge *entity.RegionSurcharge) error
}
