package request

import "github.com/shopspring/decimal"

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	CategoryID    *uint           `json:"category_id"`
	Name          string          `json:"name" binding:"required,min=2,max=255"`
	Code          string          `json:"code" binding:"omitempty,max=100"`
	Quantity      int             `json:"quantity" binding:"min=0"`
	QuantityAlert int             `json:"quantity_alert" binding:"min=0"`
	BuyingPrice   decimal.Decimal `json:"buying_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search     string `form:"search"`
	CategoryID uint   `form:"category_id"`
	LowStock   bool   `form:"low_stock"`
	ActiveOnly bool   `form:"active_only"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
