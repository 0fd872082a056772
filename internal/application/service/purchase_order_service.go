package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sangkips/backoffice-api/internal/domain/entity"
	"github.com/sangkips/backoffice-api/internal/domain/enum"
	"github.com/sangkips/backoffice-api/internal/domain/repository"
	"github.com/sangkips/backoffice-api/pkg/apperror"
	"github.com/sangkips/backoffice-api/pkg/logging"
	"github.com/sangkips/backoffice-api/pkg/metrics"
	"github.com/sangkips/backoffice-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// PurchaseOrderService writes purchase orders together with their invoice
type PurchaseOrderService struct {
	orderRepo   repository.PurchaseOrderRepository
	itemRepo    repository.PurchaseOrderItemRepository
	invoiceRepo repository.InvoiceRepository
	productRepo repository.ProductRepository
	transactor  repository.Transactor
	dueDays     int
	logger      *slog.Logger
	metrics     *metrics.Metrics
	now         func() time.Time
}

// NewPurchaseOrderService creates a new purchase order service
func NewPurchaseOrderService(
	orderRepo repository.PurchaseOrderRepository,
	itemRepo repository.PurchaseOrderItemRepository,
	invoiceRepo repository.InvoiceRepository,
	productRepo repository.ProductRepository,
	transactor repository.Transactor,
	dueDays int,
	logger *slog.Logger,
	m *metrics.Metrics,
) *PurchaseOrderService {
	if dueDays <= 0 {
		dueDays = 30
	}
	return &PurchaseOrderService{
		orderRepo:   orderRepo,
		itemRepo:    itemRepo,
		invoiceRepo: invoiceRepo,
		productRepo: productRepo,
		transactor:  transactor,
		dueDays:     dueDays,
		logger:      logger,
		metrics:     m,
		now:         time.Now,
	}
}

// PurchaseOrderItemInput represents one line of a new purchase order
type PurchaseOrderItemInput struct {
	ProductID uint
	Quantity  int
	UnitPrice decimal.Decimal
}

// CreatePurchaseOrderInput represents the create purchase order input
type CreatePurchaseOrderInput struct {
	SupplierID uint
	Items      []PurchaseOrderItemInput
}

// PurchaseOrderReceipt identifies what CreatePurchaseOrder committed
type PurchaseOrderReceipt struct {
	PurchaseOrderID uint            `json:"purchase_order_id"`
	InvoiceID       uint            `json:"invoice_id"`
	InvoiceNumber   string          `json:"invoice_number"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
}

func validatePurchaseOrder(actor entity.Actor, input *CreatePurchaseOrderInput) []apperror.FieldError {
	var fieldErrors []apperror.FieldError
	if actor.IsAnonymous() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "user", Message: "an authenticated user is required"})
	}
	if input.SupplierID == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "supplier_id", Message: "supplier_id is required"})
	}
	if len(input.Items) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "items", Message: "at least one item is required"})
	}
	for i, item := range input.Items {
		if item.ProductID == 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: fmt.Sprintf("items[%d].product_id", i), Message: "product_id is required"})
		}
		if item.Quantity <= 0 {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: fmt.Sprintf("items[%d].quantity", i), Message: "must be greater than 0"})
		}
		if item.UnitPrice.IsNegative() {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: fmt.Sprintf("items[%d].unit_price", i), Message: "must not be negative"})
		}
	}
	return fieldErrors
}

// CreatePurchaseOrder inserts the order, its invoice and its items in one transaction.
// Any failed insert leaves none of them behind. Repeated calls create separate orders.
func (s *PurchaseOrderService) CreatePurchaseOrder(ctx context.Context, actor entity.Actor, input *CreatePurchaseOrderInput) (*PurchaseOrderReceipt, error) {
	if fieldErrors := validatePurchaseOrder(actor, input); len(fieldErrors) > 0 {
		s.metrics.PurchaseOrderFailed("rejected")
		return nil, apperror.NewValidationError(fieldErrors)
	}

	total := decimal.Zero
	items := make([]entity.PurchaseOrderItem, len(input.Items))
	for i, in := range input.Items {
		items[i] = entity.PurchaseOrderItem{
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			UnitPrice: in.UnitPrice,
		}
		total = total.Add(items[i].LineTotal())
	}
	total = total.Round(2)

	now := s.now()
	var receipt *PurchaseOrderReceipt

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		order := &entity.PurchaseOrder{
			SupplierID:  input.SupplierID,
			CreatedByID: actor.UserID,
			OrderDate:   now,
			TotalAmount: total,
			Status:      enum.PurchaseOrderStatusPending,
		}
		if err := s.orderRepo.Create(ctx, order); err != nil {
			return fmt.Errorf("insert purchase order: %w", err)
		}

		invoice := &entity.Invoice{
			SupplierID:      input.SupplierID,
			PurchaseOrderID: order.ID,
			InvoiceNumber:   entity.InvoiceNumberFor(now, order.ID),
			Amount:          total,
			Status:          enum.InvoiceStatusPending,
			DueDate:         now.AddDate(0, 0, s.dueDays),
		}
		if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
			return fmt.Errorf("insert invoice: %w", err)
		}

		for i := range items {
			items[i].PurchaseOrderID = order.ID
			if err := s.itemRepo.Create(ctx, &items[i]); err != nil {
				return fmt.Errorf("insert item %d: %w", i, err)
			}
		}

		receipt = &PurchaseOrderReceipt{
			PurchaseOrderID: order.ID,
			InvoiceID:       invoice.ID,
			InvoiceNumber:   invoice.InvoiceNumber,
			TotalAmount:     total,
		}
		return nil
	})
	if err != nil {
		logging.FromContext(ctx, s.logger).Error("purchase order rolled back",
			slog.Uint64("supplier_id", uint64(input.SupplierID)),
			slog.Uint64("user_id", uint64(actor.UserID)),
			slog.Int("items", len(items)),
			slog.Any("error", err),
		)
		s.metrics.PurchaseOrderFailed("rolled_back")
		return nil, apperror.NewInternalError("Failed to create purchase order", err)
	}

	s.metrics.PurchaseOrderCreated(total.InexactFloat64())
	return receipt, nil
}

// GetPurchaseOrder retrieves a purchase order with its items and invoice
func (s *PurchaseOrderService) GetPurchaseOrder(ctx context.Context, id uint) (*entity.PurchaseOrder, error) {
	order, err := s.orderRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Purchase order")
	}
	return order, nil
}

// ListPurchaseOrders lists purchase orders with filtering
func (s *PurchaseOrderService) ListPurchaseOrders(ctx context.Context, params *repository.PurchaseOrderFilterParams) (*pagination.PaginatedResult[entity.PurchaseOrder], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// ReceivePurchaseOrder marks a pending order received and adds its quantities to stock
func (s *PurchaseOrderService) ReceivePurchaseOrder(ctx context.Context, id uint) (*entity.PurchaseOrder, error) {
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		order, err := s.orderRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if order == nil {
			return apperror.NewNotFoundError("Purchase order")
		}
		if !order.Status.CanTransitionTo(enum.PurchaseOrderStatusReceived) {
			return apperror.NewConflictError(fmt.Sprintf("Purchase order is already %s", order.Status))
		}

		ok, err := s.orderRepo.TransitionStatus(ctx, id, enum.PurchaseOrderStatusPending, enum.PurchaseOrderStatusReceived, s.now())
		if err != nil {
			return err
		}
		if !ok {
			return apperror.NewConflictError("Purchase order is no longer pending")
		}

		items, err := s.itemRepo.GetByPurchaseOrderID(ctx, id)
		if err != nil {
			return err
		}

		increments := make(map[uint]int, len(items))
		for _, item := range items {
			increments[item.ProductID] += item.Quantity
		}
		return s.productRepo.AtomicIncrementBatch(ctx, increments)
	})
	if err != nil {
		return nil, err
	}

	return s.GetPurchaseOrder(ctx, id)
}

// CancelPurchaseOrder cancels a pending order. Its invoice is left for finance to settle.
func (s *PurchaseOrderService) CancelPurchaseOrder(ctx context.Context, id uint) (*entity.PurchaseOrder, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Purchase order")
	}
	if !order.Status.CanTransitionTo(enum.PurchaseOrderStatusCancelled) {
		return nil, apperror.NewConflictError(fmt.Sprintf("Purchase order is already %s", order.Status))
	}

	ok, err := s.orderRepo.TransitionStatus(ctx, id, enum.PurchaseOrderStatusPending, enum.PurchaseOrderStatusCancelled, s.now())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NewConflictError("Purchase order is no longer pending")
	}

	return s.GetPurchaseOrder(ctx, id)
}
