package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sangkips/backoffice-api/internal/domain/entity"
	"github.com/sangkips/backoffice-api/internal/domain/enum"
	domainRepo "github.com/sangkips/backoffice-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(invoice).Error
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uint) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := conn(ctx, r.db).Preload("Supplier").First(&invoice, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) GetByPurchaseOrderID(ctx context.Context, purchaseOrderID uint) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := conn(ctx, r.db).First(&invoice, "purchase_order_id = ?", purchaseOrderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) List(ctx context.Context, params *domainRepo.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	var invoices []entity.Invoice
	var total int64

	query := conn(ctx, r.db).Model(&entity.Invoice{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.SupplierID != nil {
		query = query.Where("supplier_id = ?", *params.SupplierID)
	}

	if params.Overdue {
		query = query.Where("status = ? AND due_date < ?", enum.InvoiceStatusPending, params.Now)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Scopes(paginate(params.Pagination)).
		Preload("Supplier").
		Order("due_date ASC").
		Order("id ASC").
		Find(&invoices).Error

	return invoices, total, err
}

func (r *invoiceRepository) MarkPaid(ctx context.Context, id uint, paidAt time.Time) (bool, error) {
	result := conn(ctx, r.db).Model(&entity.Invoice{}).
		Where("id = ? AND status = ?", id, enum.InvoiceStatusPending).
		Updates(map[string]interface{}{
			"status":  enum.InvoiceStatusPaid,
			"paid_at": paidAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
