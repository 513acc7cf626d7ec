package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/recruitwarx/portal/internal/app"
	"github.com/recruitwarx/portal/internal/auth"
	"github.com/recruitwarx/portal/internal/dtos"
	"github.com/recruitwarx/portal/internal/models"
	"gorm.io/gorm"
)

type MessageService struct {
	DB            *gorm.DB
	Notifications *NotificationService
}

func NewMessageService(db *gorm.DB, notifications *NotificationService) *MessageService {
	return &MessageService{DB: db, Notifications: notifications}
}

// Send stores a message and drops a notification for the receiver.
// Messages are polled rows; there is no push transport.
func (s *MessageService) Send(req *dtos.SendMessageRequest, sess auth.Session) (uint, error) {
	var receiver models.User
	err := s.DB.First(&receiver, req.ReceiverID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("%w: receiver", app.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %v", app.ErrDatastore, err)
	}

	var msg models.Message
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		msg = models.Message{
			SenderID:      sess.UserID,
			ReceiverID:    req.ReceiverID,
			Subject:       req.Subject,
			Body:          req.Body,
			ApplicationID: req.ApplicationID,
		}
		if err := tx.Create(&msg).Error; err != nil {
			return fmt.Errorf("%w: %v", app.ErrDatastore, err)
		}
		return s.Notifications.notify(tx, req.ReceiverID, models.NotificationTypeMessage,
			"New message",
			fmt.Sprintf("%s %s sent you a message", sess.FirstName, sess.LastName),
			fmt.Sprintf("/messages/%d", msg.ID))
	})
	if err != nil {
		return 0, err
	}
	return msg.ID, nil
}

// List returns the caller's inbox or sent box with counterpart names.
func (s *MessageService) List(box string, sess auth.Session) ([]dtos.MessageView, error) {
	type row struct {
		ID            uint
		SenderID      uint
		SenderFirst   string
		SenderLast    string
		ReceiverID    uint
		ReceiverFirst string
		ReceiverLast  string
		Subject       string
		Body          string
		ApplicationID *uint
		IsRead        bool
		SentAt        time.Time
	}

	query := s.DB.Model(&models.Message{}).
		Select(`messages.*,
			senders.first_name AS sender_first, senders.last_name AS sender_last,
			receivers.first_name AS receiver_first, receivers.last_name AS receiver_last`).
		Joins("JOIN users senders ON senders.id = messages.sender_id").
		Joins("JOIN users receivers ON receivers.id = messages.receiver_id").
		Order("messages.sent_at DESC")

	if box == "sent" {
		query = query.Where("messages.sender_id = ?", sess.UserID)
	} else {
		query = query.Where("messages.receiver_id = ?", sess.UserID)
	}

	var rows []row
	if err := query.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", app.ErrDatastore, err)
	}

	views := make([]dtos.MessageView, 0, len(rows))
	for _, r := range rows {
		views = append(views, dtos.MessageView{
			ID:            r.ID,
			SenderID:      r.SenderID,
			SenderName:    r.SenderFirst + " " + r.SenderLast,
			ReceiverID:    r.ReceiverID,
			ReceiverName:  r.ReceiverFirst + " " + r.ReceiverLast,
			Subject:       r.Subject,
			Body:          r.Body,
			ApplicationID: r.ApplicationID,
			IsRead:        r.IsRead,
			SentAt:        r.SentAt,
		})
	}
	return views, nil
}

// MarkRead marks a received message as read. Only the receiver may.
func (s *MessageService) MarkRead(id uint, sess auth.Session) error {
	var msg models.Message
	err := s.DB.First(&msg, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: message", app.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", app.ErrDatastore, err)
	}
	if msg.ReceiverID != sess.UserID {
		return fmt.Errorf("%w: not your message", app.ErrForbidden)
	}
	if err := s.DB.Model(&msg).Update("is_read", true).Error; err != nil {
		return fmt.Errorf("%w: %v", app.ErrDatastore, err)
	}
	return nil
}

// UnreadCount counts the caller's unread inbox messages.
func (s *MessageService) UnreadCount(sess auth.Session) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Message{}).
		Where("receiver_id = ? AND is_read = ?", sess.UserID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("%w: %v", app.ErrDatastore, err)
	}
	return count, nil
}
