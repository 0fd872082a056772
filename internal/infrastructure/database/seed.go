package database

import (
	"errors"
	"log/slog"

	"github.com/sangkips/backoffice-api/internal/config"
	"github.com/sangkips/backoffice-api/internal/domain/entity"
	"github.com/sangkips/backoffice-api/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

// Permission names checked by the route groups
const (
	PermManageCoupons   = "manage-coupons"
	PermManageShipping  = "manage-shipping"
	PermManageSuppliers = "manage-suppliers"
	PermManageProducts  = "manage-products"
	PermManagePurchases = "manage-purchases"
	PermManageInvoices  = "manage-invoices"
	PermManageSettings  = "manage-settings"
)

var allPermissions = []string{
	PermManageCoupons,
	PermManageShipping,
	PermManageSuppliers,
	PermManageProducts,
	PermManagePurchases,
	PermManageInvoices,
	PermManageSettings,
}

var rolePermissions = map[string][]string{
	"super-admin": allPermissions,
	"admin":       allPermissions,
	"staff": {
		PermManageCoupons,
		PermManageSuppliers,
		PermManageProducts,
		PermManagePurchases,
	},
}

// SeedDefaultData seeds permissions, roles, the admin user and the default rate card.
// Rows that already exist are left alone.
func SeedDefaultData(db *gorm.DB, shipping config.ShippingConfig, log *slog.Logger) error {
	log.Info("seeding default data")

	perms := make(map[string]entity.Permission, len(allPermissions))
	for _, name := range allPermissions {
		p := entity.Permission{Name: name, GuardName: "web"}
		if err := db.Where(entity.Permission{Name: name}).FirstOrCreate(&p).Error; err != nil {
			return err
		}
		perms[name] = p
	}

	for _, roleName := range []string{"super-admin", "admin", "staff"} {
		var role entity.Role
		err := db.Where("name = ?", roleName).First(&role).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		role = entity.Role{Name: roleName, GuardName: "web"}
		for _, name := range rolePermissions[roleName] {
			role.Permissions = append(role.Permissions, perms[name])
		}
		if err := db.Create(&role).Error; err != nil {
			log.Warn("failed to create role", slog.String("role", roleName), slog.Any("error", err))
		}
	}

	if err := seedAdmin(db, log); err != nil {
		return err
	}

	if err := seedRateCard(db, shipping); err != nil {
		return err
	}

	log.Info("default data seeding completed")
	return nil
}

// seedAdmin creates the super admin configured via ADMIN_EMAIL and ADMIN_PASSWORD
func seedAdmin(db *gorm.DB, log *slog.Logger) error {
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail == "" || adminPassword == "" {
		return nil
	}

	var existing entity.User
	err := db.Where("email = ?", adminEmail).First(&existing).Error
	if err == nil {
		log.Info("super admin user already exists", slog.String("email", adminEmail))
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	var role entity.Role
	if err := db.Where("name = ?", "super-admin").First(&role).Error; err != nil {
		return err
	}

	if adminName == "" {
		adminName = "Super Admin"
	}

	admin := entity.User{
		Name:     adminName,
		Email:    adminEmail,
		Password: hashed,
		Roles:    []entity.Role{role},
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Info("super admin user created", slog.String("email", adminEmail))
	return nil
}

// seedRateCard installs the default methods and regions on an empty rule table
func seedRateCard(db *gorm.DB, shipping config.ShippingConfig) error {
	var count int64
	if err := db.Model(&entity.ShippingRule{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rules := []entity.ShippingRule{
		{
			Method:                entity.StandardShippingMethod,
			BaseFee:               shipping.DefaultBaseFee,
			PerItemFee:            shipping.DefaultPerItemFee,
			FreeShippingThreshold: shipping.DefaultFreeThreshold,
			Active:                true,
		},
		{
			Method:     "Express",
			BaseFee:    decimal.NewFromInt(500),
			PerItemFee: decimal.NewFromInt(100),
			Active:     true,
		},
		{
			Method:                "Mpesa Standard",
			BaseFee:               shipping.DefaultBaseFee,
			PerItemFee:            shipping.DefaultPerItemFee,
			FreeShippingThreshold: decimal.NewNullDecimal(decimal.NewFromInt(3000)),
			Active:                true,
		},
	}

	surcharges := []entity.RegionSurcharge{
		{Region: "Nairobi", Fee: decimal.Zero, Active: true},
		{Region: "Mombasa", Fee: decimal.NewFromInt(150), Active: true},
		{Region: "Kisumu", Fee: decimal.NewFromInt(150), Active: true},
		{Region: "Eldoret", Fee: decimal.NewFromInt(200), Active: true},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rules).Error; err != nil {
			return err
		}
		return tx.Create(&surcharges).Error
	})
}
