package store

import (
	"errors"
	"fmt"

	"github.com/Gnyfrt/miracotoelektronik/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned by the ByID lookups when no row matches; handlers
// map it to a 404 response.
var ErrNotFound = errors.New("record not found")

// Store wraps the database handle with the persistence operations the
// handlers need. There is no package-level handle; every handler receives a
// Store explicitly.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ---- Brands ----

func (s *Store) Brands() ([]models.Brand, error) {
	var brands []models.Brand
	if err := s.db.Order("name").Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

func (s *Store) BrandByID(id uint) (*models.Brand, error) {
	var brand models.Brand
	if err := s.db.First(&brand, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &brand, nil
}

func (s *Store) CreateBrand(name string) (*models.Brand, error) {
	brand := models.Brand{Name: name}
	if err := s.db.Create(&brand).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (s *Store) SetBrandLogo(id uint, logoPath string) error {
	res := s.db.Model(&models.Brand{}).Where("id = ?", id).Update("logo_path", logoPath)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBrand removes the brand together with its key types and their stock
// and price rows, all in one transaction. Cascade is done here rather than
// with database constraints so it holds on every backend.
func (s *Store) DeleteBrand(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var brand models.Brand
		if err := tx.First(&brand, id).Error; err != nil {
			return notFoundOr(err)
		}

		var keyTypeIDs []uint
		if err := tx.Model(&models.KeyType{}).Where("brand_id = ?", id).
			Pluck("id", &keyTypeIDs).Error; err != nil {
			return err
		}
		if len(keyTypeIDs) > 0 {
			if err := tx.Where("key_type_id IN ?", keyTypeIDs).
				Delete(&models.PriceEvent{}).Error; err != nil {
				return err
			}
			if err := tx.Where("key_type_id IN ?", keyTypeIDs).
				Delete(&models.StockItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("brand_id = ?", id).
				Delete(&models.KeyType{}).Error; err != nil {
				return err
			}
		}
		// Stock rows keyed by brand only (no surviving key type).
		if err := tx.Where("brand_id = ?", id).
			Delete(&models.StockItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&brand).Error
	})
}

// ---- Key types ----

func (s *Store) KeyTypes() ([]models.KeyType, error) {
	var keyTypes []models.KeyType
	if err := s.db.Preload("Brand").Order("label").Find(&keyTypes).Error; err != nil {
		return nil, err
	}
	return keyTypes, nil
}

func (s *Store) KeyTypeByID(id uint) (*models.KeyType, error) {
	var keyType models.KeyType
	if err := s.db.Preload("Brand").First(&keyType, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &keyType, nil
}

func (s *Store) CreateKeyType(brandID uint, label string) (*models.KeyType, error) {
	if _, err := s.BrandByID(brandID); err != nil {
		return nil, err
	}
	keyType := models.KeyType{Label: label, BrandID: brandID}
	if err := s.db.Create(&keyType).Error; err != nil {
		return nil, err
	}
	return &keyType, nil
}

// DeleteKeyType removes the key type and its stock and price rows.
func (s *Store) DeleteKeyType(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var keyType models.KeyType
		if err := tx.First(&keyType, id).Error; err != nil {
			return notFoundOr(err)
		}
		if err := tx.Where("key_type_id = ?", id).
			Delete(&models.PriceEvent{}).Error; err != nil {
			return err
		}
		if err := tx.Where("key_type_id = ?", id).
			Delete(&models.StockItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&keyType).Error
	})
}

// ---- Stock ----

func (s *Store) StockItems() ([]models.StockItem, error) {
	var items []models.StockItem
	err := s.db.Preload("Brand").Preload("KeyType").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) StockItemByID(id uint) (*models.StockItem, error) {
	var item models.StockItem
	if err := s.db.Preload("Brand").Preload("KeyType").First(&item, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &item, nil
}

// AddOrIncrementStock adds quantity to the existing (brand, key type) row,
// overwriting its threshold, or creates the row when none exists. One row per
// pair is an invariant; the caller never ends up with duplicates.
func (s *Store) AddOrIncrementStock(brandID, keyTypeID uint, quantity, threshold int) (*models.StockItem, error) {
	if _, err := s.BrandByID(brandID); err != nil {
		return nil, err
	}
	if _, err := s.KeyTypeByID(keyTypeID); err != nil {
		return nil, err
	}

	var item models.StockItem
	err := s.db.Where("brand_id = ? AND key_type_id = ?", brandID, keyTypeID).
		First(&item).Error
	switch {
	case err == nil:
		item.Quantity += quantity
		item.Threshold = threshold
		if err := s.db.Save(&item).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.StockItem{
			BrandID:   brandID,
			KeyTypeID: keyTypeID,
			Quantity:  quantity,
			Threshold: threshold,
		}
		if err := s.db.Create(&item).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}
	return &item, nil
}

// WithdrawStock decrements the item's quantity, clamped at zero.
func (s *Store) WithdrawStock(id uint, quantity int) (*models.StockItem, error) {
	var item models.StockItem
	if err := s.db.First(&item, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	item.Quantity -= quantity
	if item.Quantity < 0 {
		item.Quantity = 0
	}
	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// LowStockAlerts recomputes the alert list from scratch on every call;
// nothing about alerts is stored.
func (s *Store) LowStockAlerts() ([]string, error) {
	var items []models.StockItem
	err := s.db.Preload("Brand").Preload("KeyType").
		Where("quantity <= threshold").Find(&items).Error
	if err != nil {
		return nil, err
	}
	alerts := make([]string, 0, len(items))
	for _, item := range items {
		alerts = append(alerts, fmt.Sprintf("%s - %s: low stock! (%d units)",
			item.Brand.Name, item.KeyType.Label, item.Quantity))
	}
	return alerts, nil
}
