package entity

import (
	"fmt"
	"time"

	"github.com/sangkips/backoffice-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// Invoice is the supplier bill raised alongside a purchase order
type Invoice struct {
	ID              uint               `gorm:"primaryKey" json:"id"`
	SupplierID      uint               `gorm:"not null;index" json:"supplier_id"`
	PurchaseOrderID uint               `gorm:"not null;uniqueIndex" json:"purchase_order_id"`
	InvoiceNumber   string             `gorm:"size:50;not null;uniqueIndex" json:"invoice_number"`
	Amount          decimal.Decimal    `gorm:"type:decimal(15,2);not null" json:"amount"`
	Status          enum.InvoiceStatus `gorm:"size:20;not null;index" json:"status"`
	DueDate         time.Time          `gorm:"not null" json:"due_date"`
	PaidAt          *time.Time         `json:"paid_at,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`

	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceNumberFor derives the invoice number from the order's creation date and id,
// e.g. INV-20250301-0042. Ids past 9999 simply widen.
func InvoiceNumberFor(createdAt time.Time, purchaseOrderID uint) string {
	return fmt.Sprintf("INV-%s-%04d", createdAt.Format("20060102"), purchaseOrderID)
}

// IsOverdue reports whether an unpaid invoice is past its due date
func (i *Invoice) IsOverdue(now time.Time) bool {
	return i.Status == enum.InvoiceStatusPending && now.After(i.DueDate)
}
