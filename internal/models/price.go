package models

import (
	"time"
)

// PriceEvent is an append-only ledger row recording a single price change.
// Rows are never updated; they are removed only when the owning KeyType goes away.
type PriceEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	KeyTypeID uint      `gorm:"not null;index" json:"keytype_id"`
	KeyType   KeyType   `gorm:"foreignKey:KeyTypeID" json:"keytype"`
	OldPrice  float64   `json:"old_price"`
	NewPrice  float64   `json:"new_price"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}
