package repository

import (
	"context"
	"errors"

	"github.com/sangkips/backoffice-api/internal/domain/entity"
	domainRepo "github.com/sangkips/backoffice-api/internal/domain/repository"
	"gorm.io/gorm"
)

type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository creates a new supplier repository
func NewSupplierRepository(db *gorm.DB) domainRepo.SupplierRepository {
	return &supplierRepository{db: db}
}

func (r *supplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	return conn(ctx, r.db).Create(supplier).Error
}

func (r *supplierRepository) GetByID(ctx context.Context, id uint) (*entity.Supplier, error) {
	var supplier entity.Supplier
	err := conn(ctx, r.db).First(&supplier, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &supplier, err
}

func (r *supplierRepository) List(ctx context.Context, params *domainRepo.SupplierFilterParams) ([]entity.Supplier, int64, error) {
	var suppliers []entity.Supplier
	var total int64

	query := conn(ctx, r.db).Model(&entity.Supplier{}).
		Scopes(search(params.Search, "name", "email", "phone"), activeOnly(params.ActiveOnly))

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Scopes(paginate(params.Pagination)).
		Order("name ASC").
		Find(&suppliers).Error

	return suppliers, total, err
}
