package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a stocked item that can be ordered from suppliers
type Product struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	CategoryID    *uint           `gorm:"index" json:"category_id,omitempty"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	Code          string          `gorm:"size:100;uniqueIndex;not null" json:"code"`
	Quantity      int             `gorm:"not null;default:0" json:"quantity"`
	QuantityAlert int             `gorm:"not null;default:0" json:"quantity_alert"`
	BuyingPrice   decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"buying_price"`
	SellingPrice  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"selling_price"`
	Active        bool            `gorm:"not null" json:"active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// IsLowStock reports whether stock is at or below the alert level
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.QuantityAlert
}

// Category groups products
type Category struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:255;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
