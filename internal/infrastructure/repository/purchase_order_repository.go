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

type purchaseOrderRepository struct {
	db *gorm.DB
}

// NewPurchaseOrderRepository creates a new purchase order repository
func NewPurchaseOrderRepository(db *gorm.DB) domainRepo.PurchaseOrderRepository {
	return &purchaseOrderRepository{db: db}
}

func (r *purchaseOrderRepository) Create(ctx context.Context, order *entity.PurchaseOrder) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(order).Error
}

func (r *purchaseOrderRepository) GetByID(ctx context.Context, id uint) (*entity.PurchaseOrder, error) {
	var order entity.PurchaseOrder
	err := conn(ctx, r.db).First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *purchaseOrderRepository) GetWithDetails(ctx context.Context, id uint) (*entity.PurchaseOrder, error) {
	var order entity.PurchaseOrder
	err := conn(ctx, r.db).
		Preload("Supplier").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Items.Product").
		Preload("Invoice").
		First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *purchaseOrderRepository) List(ctx context.Context, params *domainRepo.PurchaseOrderFilterParams) ([]entity.PurchaseOrder, int64, error) {
	var orders []entity.PurchaseOrder
	var total int64

	query := conn(ctx, r.db).Model(&entity.PurchaseOrder{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.SupplierID != nil {
		query = query.Where("supplier_id = ?", *params.SupplierID)
	}

	if params.StartDate != nil {
		query = query.Where("order_date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("order_date < ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortOrder := "DESC"
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	err := query.Scopes(paginate(params.Pagination)).
		Preload("Supplier").
		Preload("Invoice").
		Order("order_date " + sortOrder).
		Order("id " + sortOrder).
		Find(&orders).Error

	return orders, total, err
}

func (r *purchaseOrderRepository) TransitionStatus(ctx context.Context, id uint, from, to enum.PurchaseOrderStatus, at time.Time) (bool, error) {
	updates := map[string]interface{}{"status": to}
	switch to {
	case enum.PurchaseOrderStatusReceived:
		updates["received_at"] = at
	case enum.PurchaseOrderStatusCancelled:
		updates["cancelled_at"] = at
	}

	result := conn(ctx, r.db).Model(&entity.PurchaseOrder{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

type purchaseOrderItemRepository struct {
	db *gorm.DB
}

// NewPurchaseOrderItemRepository creates a new purchase order item repository
func NewPurchaseOrderItemRepository(db *gorm.DB) domainRepo.PurchaseOrderItemRepository {
	return &purchaseOrderItemRepository{db: db}
}

func (r *purchaseOrderItemRepository) Create(ctx context.Context, item *entity.PurchaseOrderItem) error {
	return conn(ctx, r.db).Omit(clause.Associations).Create(item).Error
}

func (r *purchaseOrderItemRepository) GetByPurchaseOrderID(ctx context.Context, purchaseOrderID uint) ([]entity.PurchaseOrderItem, error) {
	var items []entity.PurchaseOrderItem
	err := conn(ctx, r.db).
		Where("purchase_order_id = ?", purchaseOrderID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}
