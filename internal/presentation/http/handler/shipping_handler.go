package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/backoffice-api/internal/application/service"
	"github.com/sangkips/backoffice-api/internal/presentation/http/dto/request"
	"github.com/sangkips/backoffice-api/internal/presentation/http/dto/response"
)

// ShippingHandler handles shipping fee quotes and rate card administration
type ShippingHandler struct {
	shippingService *service.ShippingService
}

// NewShippingHandler creates a new shipping handler
func NewShippingHandler(shippingService *service.ShippingService) *ShippingHandler {
	return &ShippingHandler{shippingService: shippingService}
}

// Quote prices a full checkout input. It never rejects the body: an unreadable
// body prices as an empty input and unreadable numbers count as 0.
// @Summary Shipping fee
// @Tags shipping
// @Accept json
// @Produce json
// @Param request body request.ShippingFeeRequest true "Method, subtotal, item count and region"
// @Success 200 {object} response.APIResponse
// @Router /shipping/fee [post]
func (h *ShippingHandler) Quote(c *gin.Context) {
	var req request.ShippingFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req = request.ShippingFeeRequest{}
	}

	h.quote(c, service.FeeInput{
		Method:    rawString(req.Method),
		Subtotal:  coerceAmount(rawString(req.Subtotal)),
		ItemCount: parseCount(rawString(req.ItemCount)),
		Region:    rawString(req.Region),
	})
}

// RegionFee prices a region with optional method, subtotal and items query parameters
// @Summary Shipping fee by region
// @Tags shipping
// @Produce json
// @Param region path string true "Region"
// @Success 200 {object} response.APIResponse
// @Router /shipping/regions/{region}/fee [get]
func (h *ShippingHandler) RegionFee(c *gin.Context) {
	h.quote(c, service.FeeInput{
		Method:    c.Query("method"),
		Subtotal:  coerceAmount(c.Query("subtotal")),
		ItemCount: parseCount(c.Query("items")),
		Region:    c.Param("region"),
	})
}

func (h *ShippingHandler) quote(c *gin.Context, in service.FeeInput) {
	quote, err := h.shippingService.Quote(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shipping fee calculated", quote)
}

// ListRules returns every shipping rule, active or not
func (h *ShippingHandler) ListRules(c *gin.Context) {
	rules, err := h.shippingService.ListRules(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shipping rules retrieved successfully", rules)
}

// UpsertRule creates or replaces the rule for a method
func (h *ShippingHandler) UpsertRule(c *gin.Context) {
	var req request.UpsertShippingRuleRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	rule, err := h.shippingService.UpsertRule(c.Request.Context(), &service.UpsertRuleInput{
		Method:                req.Method,
		BaseFee:               req.BaseFee,
		PerItemFee:            req.PerItemFee,
		FreeShippingThreshold: req.FreeShippingThreshold,
		Active:                active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shipping rule saved", rule)
}

// ListSurcharges returns every region surcharge, active or not
func (h *ShippingHandler) ListSurcharges(c *gin.Context) {
	surcharges, err := h.shippingService.ListSurcharges(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Region surcharges retrieved successfully", surcharges)
}

// UpsertSurcharge creates or replaces the surcharge for a region
func (h *ShippingHandler) UpsertSurcharge(c *gin.Context) {
	var req request.UpsertRegionSurchargeRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	surcharge, err := h.shippingService.UpsertSurcharge(c.Request.Context(), &service.UpsertSurchargeInput{
		Region: req.Region,
		Fee:    req.Fee,
		Active: active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Region surcharge saved", surcharge)
}
