package request

import "github.com/shopspring/decimal"

// PurchaseOrderItemRequest is one line of a purchase order
type PurchaseOrderItemRequest struct {
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreatePurchaseOrderRequest represents a purchase order creation request.
// Field rules are enforced by the service so the same messages reach every caller.
type CreatePurchaseOrderRequest struct {
	SupplierID uint                       `json:"supplier_id"`
	Items      []PurchaseOrderItemRequest `json:"items"`
}
