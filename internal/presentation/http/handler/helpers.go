package handler

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/backoffice-api/internal/domain/entity"
	"github.com/sangkips/backoffice-api/pkg/apperror"
	"github.com/sangkips/backoffice-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// GetUserID extracts the user ID from the Gin context; 0 when anonymous
func GetUserID(c *gin.Context) uint {
	return c.GetUint("user_id")
}

// GetUserEmail extracts the user email from the Gin context
func GetUserEmail(c *gin.Context) string {
	return c.GetString("user_email")
}

// GetUserRoles extracts the user roles from the Gin context
func GetUserRoles(c *gin.Context) []string {
	return c.GetStringSlice("user_roles")
}

// GetUserPermissions extracts the user permissions from the Gin context
func GetUserPermissions(c *gin.Context) []string {
	return c.GetStringSlice("user_permissions")
}

// Actor builds the acting user from the token claims, or an anonymous actor
func Actor(c *gin.Context) entity.Actor {
	userID := GetUserID(c)
	if userID == 0 {
		return entity.Anonymous()
	}
	return entity.Actor{UserID: userID, Roles: GetUserRoles(c)}
}

// parseID reads a positive numeric path parameter
func parseID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperror.NewBadRequestError("Invalid " + name)
	}
	return uint(id), nil
}

// parseOptionalID reads a positive numeric query parameter, ignoring junk
func parseOptionalID(c *gin.Context, name string) *uint {
	id, err := strconv.ParseUint(c.Query(name), 10, 64)
	if err != nil || id == 0 {
		return nil
	}
	v := uint(id)
	return &v
}

func paginationFromQuery(c *gin.Context) *pagination.PaginationParams {
	return pagination.FromQuery(c.Query("page"), c.Query("per_page"))
}

// rawString unwraps a JSON scalar into its text: "12.50" and 12.50 both give 12.50
func rawString(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if unquoted, err := strconv.Unquote(s); err == nil {
		return unquoted
	}
	return s
}

// parseAmount reads a money value. ok is false when the input is missing or not a number.
func parseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// coerceAmount applies the calculator input policy: junk and negatives become 0
func coerceAmount(s string) decimal.Decimal {
	d, ok := parseAmount(s)
	if !ok || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// maxItemCount caps coerced item counts so the int conversion cannot wrap
const maxItemCount = math.MaxInt32

// parseCount reads an item count with the same coercion; fractional counts are
// truncated and counts above maxItemCount are clamped to it
func parseCount(s string) int {
	d := coerceAmount(s)
	if d.GreaterThan(decimal.NewFromInt(maxItemCount)) {
		return maxItemCount
	}
	return int(d.IntPart())
}
