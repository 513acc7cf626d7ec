package services

import (
	"errors"
	"fmt"

	"github.com/recruitwarx/portal/internal/app"
	"github.com/recruitwarx/portal/internal/models"
	"gorm.io/gorm"
)

type NotificationService struct {
	DB *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{DB: db}
}

// notify inserts a notification on the given handle, which lets callers
// include it in their own transaction.
func (s *NotificationService) notify(tx *gorm.DB, userID uint, typ, title, message, actionURL string) error {
	n := &models.Notification{
		UserID:    userID,
		Type:      typ,
		Title:     title,
		Message:   message,
		ActionURL: actionURL,
	}
	if err := tx.Create(n).Error; err != nil {
		return fmt.Errorf("%w: %v", app.ErrDatastore, err)
	}
	return nil
}

// Notify creates a notification outside any caller transaction.
func (s *NotificationService) Notify(userID uint, typ, title, message, actionURL string) error {
	return s.notify(s.DB, userID, typ, title, message, actionURL)
}

// List returns the user's latest notifications, capped at 20.
func (s *NotificationService) List(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(20).
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", app.ErrDatastore, err)
	}
	return notifications, nil
}

// UnreadCount counts the user's unread notifications.
func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("%w: %v", app.ErrDatastore, err)
	}
	return count, nil
}

// MarkRead marks one of the user's notifications as read.
func (s *NotificationService) MarkRead(id, userID uint) error {
	var n models.Notification
	err := s.DB.First(&n, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: notification", app.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", app.ErrDatastore, err)
	}
	if n.UserID != userID {
		return fmt.Errorf("%w: not your notification", app.ErrForbidden)
	}
	if err := s.DB.Model(&n).Update("is_read", true).Error; err != nil {
		return fmt.Errorf("%w: %v", app.ErrDatastore, err)
	}
	return nil
}

// MarkAllRead marks every unread notification for the user.
func (s *NotificationService) MarkAllRead(userID uint) error {
	err := s.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
	if err != nil {
		return fmt.Errorf("%w: %v", app.ErrDatastore, err)
	}
	return nil
}
