package repository

import (
	"context"
	"time"

	"github.com/sangkips/backoffice-api/internal/domain/entity"
	"github.com/sangkips/backoffice-api/internal/domain/enum"
	"github.com/sangkips/backoffice-api/pkg/pagination"
)

// PurchaseOrderRepository defines the interface for purchase order data operations
type PurchaseOrderRepository interface {
	// Create inserts the order row only; items and invoice are written separately
	Create(ctx context.Context, order *entity.PurchaseOrder) error
	GetByID(ctx context.Context, id uint) (*entity.PurchaseOrder, error)
	GetWithDetails(ctx context.Context, id uint) (*entity.PurchaseOrder, error)
	List(ctx context.Context, params *PurchaseOrderFilterParams) ([]entity.PurchaseOrder, int64, error)
	// TransitionStatus moves the order from one status to another.
	// Returns false when the order was not in the from status.
	TransitionStatus(ctx context.Context, id uint, from, to enum.PurchaseOrderStatus, at time.Time) (bool, error)
}

// PurchaseOrderFilterParams contains filtering parameters for purchase order queries
type PurchaseOrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.PurchaseOrderStatus
	SupplierID *uint
	StartDate  *time.Time
	EndDate    *time.Time
	SortOrder  string
}

// PurchaseOrderItemRepository defines the interface for purchase order line items
type PurchaseOrderItemRepository interface {
	Create(ctx context.Context, item *entity.PurchaseOrderItem) error
	GetByPurchaseOrderID(ctx context.Context, purchaseOrderID uint) ([]entity.PurchaseOrderItem, error)
}
