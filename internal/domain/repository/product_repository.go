package repository

import (
	"context"

	"github.com/sangkips/backoffice-api/internal/domain/entity"
	"github.com/sangkips/backoffice-api/pkg/pagination"
)

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uint) (*entity.Product, error)
	// GetByIDs retrieves multiple products by their IDs in a single query
	GetByIDs(ctx context.Context, ids []uint) ([]entity.Product, error)
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	GetLowStock(ctx context.Context) ([]entity.Product, error)
	// AtomicIncrementBatch adds received quantities to stock in one transaction
	AtomicIncrementBatch(ctx context.Context, increments map[uint]int) error
}

// ProductFilterParams contains filtering parameters for product queries
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	CategoryID *uint
	LowStock   bool
	ActiveOnly bool
}

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	GetByID(ctx context.Context, id uint) (*entity.Category, error)
}
