// Package testutil provides an in-memory SQLite database for package tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sangkips/backoffice-api/internal/domain/entity"
	"github.com/sangkips/backoffice-api/internal/infrastructure/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a migrated in-memory database private to t
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "open db")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(database.Models()...), "migrate")
	return db
}

// Money parses s or fails the test
func Money(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err, "money %q", s)
	return d
}

// SeedUser inserts a user with the given id
func SeedUser(t *testing.T, db *gorm.DB, id uint) entity.User {
	t.Helper()
	user := entity.User{ID: id, Name: fmt.Sprintf("User %d", id), Email: fmt.Sprintf("user%d@example.com", id), Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// SeedSupplier inserts an active supplier with the given id
func SeedSupplier(t *testing.T, db *gorm.DB, id uint) entity.Supplier {
	t.Helper()
	supplier := entity.Supplier{ID: id, Name: fmt.Sprintf("Supplier %d", id), Type: "distributor", Active: true}
	require.NoError(t, db.Create(&supplier).Error)
	return supplier
}

// SeedProduct inserts an active product with the given id and stock
func SeedProduct(t *testing.T, db *gorm.DB, id uint, quantity int) entity.Product {
	t.Helper()
	product := entity.Product{
		ID:           id,
		Name:         fmt.Sprintf("Product %d", id),
		Code:         fmt.Sprintf("PC%d", id),
		Quantity:     quantity,
		BuyingPrice:  decimal.NewFromInt(10),
		SellingPrice: decimal.NewFromInt(15),
		Active:       true,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}
