package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/backoffice-api/internal/presentation/http/dto/response"
	"gorm.io/gorm"
)

// HealthHandler reports process and database health
type HealthHandler struct {
	db      *gorm.DB
	version string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// Check pings the database with a short timeout
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
		response.ErrorWithCode(c, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	response.OK(c, "Service healthy", gin.H{
		"status":   "ok",
		"version":  h.version,
		"database": "up",
	})
}
