package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/backoffice-api/internal/application/service"
	"github.com/sangkips/backoffice-api/internal/domain/enum"
	"github.com/sangkips/backoffice-api/internal/presentation/http/dto/request"
	"github.com/sangkips/backoffice-api/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// CouponHandler handles coupon-related HTTP requests
type CouponHandler struct {
	couponService *service.CouponService
}

// NewCouponHandler creates a new coupon handler
func NewCouponHandler(couponService *service.CouponService) *CouponHandler {
	return &CouponHandler{couponService: couponService}
}

// Validate checks a code against an order total without recording a use.
// Malformed input is answered with valid=false, never with an error status.
// @Summary Validate coupon
// @Tags coupons
// @Accept json
// @Produce json
// @Param request body request.ValidateCouponRequest true "Code and order total"
// @Success 200 {object} response.APIResponse
// @Router /coupons/validate [post]
func (h *CouponHandler) Validate(c *gin.Context) {
	var (
		code  string
		total decimal.Decimal
	)

	var req request.ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err == nil {
		if amount, ok := parseAmount(rawString(req.OrderTotal)); ok {
			code, total = req.Code, amount
		}
	}

	result, err := h.couponService.Validate(c.Request.Context(), Actor(c), code, total)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Coupon checked", result)
}

// Redeem records one use of a coupon for the authenticated user
// @Summary Redeem coupon
// @Tags coupons
// @Security BearerAuth
// @Router /coupons/redeem [post]
func (h *CouponHandler) Redeem(c *gin.Context) {
	var req request.RedeemCouponRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.couponService.Redeem(c.Request.Context(), Actor(c), &service.RedeemInput{
		Code:           req.Code,
		OrderTotal:     req.OrderTotal,
		OrderReference: strings.TrimSpace(req.OrderReference),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if !result.Valid {
		response.OK(c, "Coupon not redeemed", result)
		return
	}
	response.OK(c, "Coupon redeemed", result)
}

// Create handles coupon creation
// @Summary Create coupon
// @Tags coupons
// @Security BearerAuth
// @Router /coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	var req request.CreateCouponRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	coupon, err := h.couponService.CreateCoupon(c.Request.Context(), &service.CreateCouponInput{
		Code:           req.Code,
		DiscountType:   enum.DiscountType(req.DiscountType),
		DiscountValue:  req.DiscountValue,
		MinOrderTotal:  req.MinOrderTotal,
		MaxUses:        req.MaxUses,
		MaxUsesPerUser: req.MaxUsesPerUser,
		ExpiresAt:      req.ExpiresAt,
		Active:         active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Coupon created successfully", coupon)
}

// Get handles fetching one coupon
func (h *CouponHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	coupon, err := h.couponService.GetCoupon(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Coupon retrieved successfully", coupon)
}

// List handles listing coupons
func (h *CouponHandler) List(c *gin.Context) {
	result, err := h.couponService.ListCoupons(c.Request.Context(), paginationFromQuery(c), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Coupons retrieved successfully", result)
}
