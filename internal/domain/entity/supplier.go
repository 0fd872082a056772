package entity

import (
	"time"

	"github.com/sangkips/backoffice-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Supplier is a vendor that purchase orders are raised against
type Supplier struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	Name      string            `gorm:"size:255;not null" json:"name"`
	Email     *string           `gorm:"size:255" json:"email,omitempty"`
	Phone     *string           `gorm:"size:50" json:"phone,omitempty"`
	Address   *string           `gorm:"type:text" json:"address,omitempty"`
	KRAPin    *string           `gorm:"size:50;column:kra_pin" json:"kra_pin,omitempty"`
	Type      enum.SupplierType `gorm:"size:50;not null" json:"type"`
	Active    bool              `gorm:"not null" json:"active"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	DeletedAt gorm.DeletedAt    `gorm:"index" json:"-"`
}

// TableName returns the table name for the Supplier model
func (Supplier) TableName() string {
	return "suppliers"
}
