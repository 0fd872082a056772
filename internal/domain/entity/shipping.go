package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StandardShippingMethod is the rule used when a requested method is unknown
const StandardShippingMethod = "Standard"

// ShippingRule prices one delivery method
type ShippingRule struct {
	ID                    uint                `gorm:"primaryKey" json:"id"`
	Method                string              `gorm:"size:50;not null;uniqueIndex" json:"method"`
	BaseFee               decimal.Decimal     `gorm:"type:decimal(15,2);not null" json:"base_fee"`
	PerItemFee            decimal.Decimal     `gorm:"type:decimal(15,2);not null" json:"per_item_fee"`
	FreeShippingThreshold decimal.NullDecimal `gorm:"type:decimal(15,2)" json:"free_shipping_threshold"`
	Active                bool                `gorm:"not null" json:"active"`
	CreatedAt             time.Time           `json:"created_at"`
	UpdatedAt             time.Time           `json:"updated_at"`
}

// TableName returns the table name for the ShippingRule model
func (ShippingRule) TableName() string {
	return "shipping_rules"
}

// RegionSurcharge is an additive fee for deliveries to a region
type RegionSurcharge struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Region    string          `gorm:"size:100;not null;uniqueIndex" json:"region"`
	Fee       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"fee"`
	Active    bool            `gorm:"not null" json:"active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TableName returns the table name for the RegionSurcharge model
func (RegionSurcharge) TableName() string {
	return "region_surcharges"
}
