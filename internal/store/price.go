package store

import (
	"github.com/Gnyfrt/miracotoelektronik/internal/models"

	"gorm.io/gorm"
)

// HistoryLimit caps how many ledger rows the history view and chart load.
const HistoryLimit = 100

// ChangePrice overwrites the key type's price and appends a ledger row
// recording the transition, in one transaction.
func (s *Store) ChangePrice(keyTypeID uint, newPrice float64) (*models.PriceEvent, error) {
	var event models.PriceEvent
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var keyType models.KeyType
		if err := tx.First(&keyType, keyTypeID).Error; err != nil {
			return notFoundOr(err)
		}

		oldPrice := keyType.Price
		if err := tx.Model(&keyType).Update("price", newPrice).Error; err != nil {
			return err
		}

		event = models.PriceEvent{
			KeyTypeID: keyTypeID,
			OldPrice:  oldPrice,
			NewPrice:  newPrice,
		}
		return tx.Create(&event).Error
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// PriceHistory returns up to limit ledger rows for the key type, newest first.
func (s *Store) PriceHistory(keyTypeID uint, limit int) ([]models.PriceEvent, error) {
	var events []models.PriceEvent
	err := s.db.Where("key_type_id = ?", keyTypeID).
		Order("created_at DESC, id DESC").Limit(limit).Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// ChartSeries returns the same window as PriceHistory reversed into ascending
// time order: parallel label and price slices ready for plotting.
func (s *Store) ChartSeries(keyTypeID uint, limit int) ([]string, []float64, error) {
	events, err := s.PriceHistory(keyTypeID, limit)
	if err != nil {
		return nil, nil, err
	}
	labels := make([]string, 0, len(events))
	prices := make([]float64, 0, len(events))
	for i := len(events) - 1; i >= 0; i-- {
		labels = append(labels, events[i].CreatedAt.Format("2006-01-02 15:04"))
		prices = append(prices, events[i].NewPrice)
	}
	return labels, prices, nil
}
