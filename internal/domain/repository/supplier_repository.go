package repository

import (
	"context"

	"github.com/sangkips/backoffice-api/internal/domain/entity"
	"github.com/sangkips/backoffice-api/pkg/pagination"
)

// SupplierRepository defines the interface for supplier data operations
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id uint) (*entity.Supplier, error)
	List(ctx context.Context, params *SupplierFilterParams) ([]entity.Supplier, int64, error)
}

// SupplierFilterParams contains filtering parameters for supplier queries
type SupplierFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	ActiveOnly bool
}
