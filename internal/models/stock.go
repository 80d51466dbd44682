package models

type StockItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	BrandID   uint    `gorm:"not null;uniqueIndex:idx_brand_keytype" json:"brand_id"`
	Brand     Brand   `gorm:"foreignKey:BrandID" json:"brand"`
	KeyTypeID uint    `gorm:"not null;uniqueIndex:idx_brand_keytype" json:"keytype_id"`
	KeyType   KeyType `gorm:"foreignKey:KeyTypeID" json:"keytype"`
	Quantity  int     `gorm:"default:0" json:"quantity"`
	Threshold int     `gorm:"default:5" json:"threshold"`
}

// LowStock reports whether the item should appear in the dashboard alert list.
func (s StockItem) LowStock() bool {
	return s.Quantity <= s.Threshold
}
