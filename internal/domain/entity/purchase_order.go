package entity

import (
	"time"

	"github.com/sangkips/backoffice-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// PurchaseOrder is an order raised against a supplier.
// A committed order always has exactly one Invoice and at least one item.
type PurchaseOrder struct {
	ID          uint                     `gorm:"primaryKey" json:"id"`
	SupplierID  uint                     `gorm:"not null;index" json:"supplier_id"`
	CreatedByID uint                     `gorm:"column:created_by;not null;index" json:"created_by"`
	OrderDate   time.Time                `gorm:"not null" json:"order_date"`
	TotalAmount decimal.Decimal          `gorm:"type:decimal(15,2);not null" json:"total_amount"`
	Status      enum.PurchaseOrderStatus `gorm:"size:20;not null;index" json:"status"`
	ReceivedAt  *time.Time               `json:"received_at,omitempty"`
	CancelledAt *time.Time               `json:"cancelled_at,omitempty"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`

	Supplier  *Supplier           `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	CreatedBy *User               `gorm:"foreignKey:CreatedByID" json:"-"`
	Items     []PurchaseOrderItem `gorm:"foreignKey:PurchaseOrderID" json:"items,omitempty"`
	Invoice   *Invoice            `gorm:"foreignKey:PurchaseOrderID" json:"invoice,omitempty"`
}

// TableName returns the table name for the PurchaseOrder model
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// PurchaseOrderItem is one line of a purchase order
type PurchaseOrderItem struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	PurchaseOrderID uint            `gorm:"not null;index" json:"purchase_order_id"`
	ProductID       uint            `gorm:"not null;index" json:"product_id"`
	Quantity        int             `gorm:"not null" json:"quantity"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	CreatedAt       time.Time       `json:"created_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName returns the table name for the PurchaseOrderItem model
func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}

// LineTotal is quantity × unit price
func (i PurchaseOrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
