package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/backoffice-api/internal/application/service"
	"github.com/sangkips/backoffice-api/internal/presentation/http/dto/request"
	"github.com/sangkips/backoffice-api/internal/presentation/http/dto/response"
)

// StatusHandler toggles the active flag on a fixed set of record types
type StatusHandler struct {
	statusService *service.StatusService
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(statusService *service.StatusService) *StatusHandler {
	return &StatusHandler{statusService: statusService}
}

// Toggle handles PATCH /status/:target/:id
// @Summary Toggle active flag
// @Tags status
// @Security BearerAuth
// @Param target path string true "coupons, suppliers, products, shipping-rules or region-surcharges"
// @Param id path int true "Record ID"
// @Router /status/{target}/{id} [patch]
func (h *StatusHandler) Toggle(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.ToggleStatusRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	target := c.Param("target")
	if err := h.statusService.ToggleActive(c.Request.Context(), target, id, *req.Active); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Status updated", gin.H{
		"target": target,
		"id":     id,
		"active": *req.Active,
	})
}
