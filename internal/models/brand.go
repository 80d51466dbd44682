package models

import (
	"time"
)

type Brand struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	LogoPath  *string   `gorm:"size:255" json:"logo_path"`
	CreatedAt time.Time `json:"created_at"`
	KeyTypes  []KeyType `gorm:"foreignKey:BrandID" json:"-"`
}

type KeyType struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Label       string       `gorm:"size:100;not null" json:"label"`
	BrandID     uint         `gorm:"not null;index" json:"brand_id"`
	Brand       Brand        `gorm:"foreignKey:BrandID" json:"brand"`
	Price       float64      `gorm:"default:0" json:"price"`
	CreatedAt   time.Time    `json:"created_at"`
	PriceEvents []PriceEvent `gorm:"foreignKey:KeyTypeID" json:"-"`
}
