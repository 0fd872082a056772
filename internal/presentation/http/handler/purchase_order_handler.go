package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/backoffice-api/internal/application/service"
	"github.com/sangkips/backoffice-api/internal/domain/enum"
	"github.com/sangkips/backoffice-api/internal/domain/repository"
	"github.com/sangkips/backoffice-api/internal/presentation/http/dto/request"
	"github.com/sangkips/backoffice-api/internal/presentation/http/dto/response"
)

// PurchaseOrderHandler handles purchase order HTTP requests
type PurchaseOrderHandler struct {
	orderService *service.PurchaseOrderService
}

// NewPurchaseOrderHandler creates a new purchase order handler
func NewPurchaseOrderHandler(orderService *service.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{orderService: orderService}
}

// List handles listing purchase orders
// @Summary List purchase orders
// @Tags purchase-orders
// @Security BearerAuth
// @Param status query string false "pending, received or cancelled"
// @Param supplier_id query int false "Supplier"
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Router /purchase-orders [get]
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	params := &repository.PurchaseOrderFilterParams{
		Pagination: paginationFromQuery(c),
		SupplierID: parseOptionalID(c, "supplier_id"),
		SortOrder:  c.Query("sort_order"),
	}

	if status := enum.PurchaseOrderStatus(c.Query("status")); status.IsValid() {
		params.Status = &status
	}

	if startDate, err := time.Parse("2006-01-02", c.Query("start_date")); err == nil {
		params.StartDate = &startDate
	}

	if endDate, err := time.Parse("2006-01-02", c.Query("end_date")); err == nil {
		// inclusive of the whole end day
		endDate = endDate.Add(24*time.Hour - time.Nanosecond)
		params.EndDate = &endDate
	}

	result, err := h.orderService.ListPurchaseOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Purchase orders retrieved successfully", result)
}

// Create records a purchase order with its invoice and items in one transaction
// @Summary Create purchase order
// @Tags purchase-orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Replays the first successful response"
// @Param request body request.CreatePurchaseOrderRequest true "Supplier and items"
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Failure 500 {object} response.APIResponse
// @Router /purchase-orders [post]
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	var req request.CreatePurchaseOrderRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	items := make([]service.PurchaseOrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.PurchaseOrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	receipt, err := h.orderService.CreatePurchaseOrder(c.Request.Context(), Actor(c), &service.CreatePurchaseOrderInput{
		SupplierID: req.SupplierID,
		Items:      items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Purchase order created successfully", receipt)
}

// Get handles fetching a purchase order with its items and invoice
func (h *PurchaseOrderHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	order, err := h.orderService.GetPurchaseOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase order retrieved successfully", order)
}

// Receive marks a pending order received and adds its quantities to stock
func (h *PurchaseOrderHandler) Receive(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	order, err := h.orderService.ReceivePurchaseOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase order received", order)
}

// Cancel cancels a pending order
func (h *PurchaseOrderHandler) Cancel(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	order, err := h.orderService.CancelPurchaseOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase order cancelled", order)
}
