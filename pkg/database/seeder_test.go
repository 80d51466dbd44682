package database

import (
	"testing"

	"github.com/Gnyfrt/miracotoelektronik/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Brand{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSeedAdminAndBrands(t *testing.T) {
	db := newTestDB(t)

	SeedAdminAndBrands(db)

	var userCount, brandCount int64
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&models.Brand{}).Count(&brandCount)
	if userCount != 1 {
		t.Fatalf("got %d users, want 1", userCount)
	}
	if brandCount != int64(len(SeedBrandNames)) {
		t.Fatalf("got %d brands, want %d", brandCount, len(SeedBrandNames))
	}

	var admin models.User
	if err := db.Where("username = ?", "admin").First(&admin).Error; err != nil {
		t.Fatalf("admin missing: %v", err)
	}

	// Idempotent: running again adds nothing.
	SeedAdminAndBrands(db)
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&models.Brand{}).Count(&brandCount)
	if userCount != 1 || brandCount != int64(len(SeedBrandNames)) {
		t.Fatalf("seeding is not idempotent: users=%d brands=%d", userCount, brandCount)
	}
}

func TestSeedSkipsNonEmptyBrandTable(t *testing.T) {
	db := newTestDB(t)
	if err := db.Create(&models.Brand{Name: "Existing"}).Error; err != nil {
		t.Fatalf("create brand: %v", err)
	}

	SeedAdminAndBrands(db)

	var brandCount int64
	db.Model(&models.Brand{}).Count(&brandCount)
	if brandCount != 1 {
		t.Fatalf("seed ran over a non-empty table: %d brands", brandCount)
	}
}
