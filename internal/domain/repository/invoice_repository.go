package repository

import (
	"context"
	"time"

	"github.com/sangkips/backoffice-api/internal/domain/entity"
	"github.com/sangkips/backoffice-api/internal/domain/enum"
	"github.com/sangkips/backoffice-api/pkg/pagination"
)

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uint) (*entity.Invoice, error)
	GetByPurchaseOrderID(ctx context.Context, purchaseOrderID uint) (*entity.Invoice, error)
	List(ctx context.Context, params *InvoiceFilterParams) ([]entity.Invoice, int64, error)
	// MarkPaid flips a pending invoice to Paid. Returns false if it was not pending.
	MarkPaid(ctx context.Context, id uint, paidAt time.Time) (bool, error)
}

// InvoiceFilterParams contains filtering parameters for invoice queries
type InvoiceFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.InvoiceStatus
	SupplierID *uint
	Overdue    bool
	Now        time.Time
}
