package store

import (
	"errors"
	"time"

	"github.com/Gnyfrt/miracotoelektronik/internal/models"

	"gorm.io/gorm"
)

// UserByCredentials looks up a user by exact username and password match.
// Plain text comparison, kept deliberately: this is a demo gate.
func (s *Store) UserByCredentials(username, password string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ? AND password = ?", username, password).
		First(&user).Error
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &user, nil
}

func (s *Store) Users() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("username").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) CreateUser(username, password string) (*models.User, error) {
	user := models.User{Username: username, Password: password}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) DeleteUser(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return notFoundOr(err)
		}
		if err := tx.Where("user_id = ?", id).
			Delete(&models.LoginEvent{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}

// RecordLogin appends a login event for the user.
func (s *Store) RecordLogin(userID uint, ip string) error {
	return s.db.Create(&models.LoginEvent{UserID: userID, IPAddress: ip}).Error
}

// LastLogins maps each user id to its most recent login time. Users who have
// never logged in are absent from the map.
func (s *Store) LastLogins() (map[uint]time.Time, error) {
	var events []models.LoginEvent
	if err := s.db.Order("login_time").Find(&events).Error; err != nil {
		return nil, err
	}
	last := make(map[uint]time.Time, len(events))
	for _, e := range events {
		last[e.UserID] = e.LoginTime
	}
	return last, nil
}

// IsNotFound reports whether err means a missing row.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}
