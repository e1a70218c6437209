package gorm

import (
	"gorm.io/gorm"

	"boardhub/pkg/model"
	"boardhub/pkg/server/store"
)

// Ensure NotificationsStore implements store.NotificationsStore
var _ store.NotificationsStore = (*NotificationsStore)(nil)

// NotificationsStore implements store.NotificationsStore using GORM
type NotificationsStore struct {
	db *gorm.DB
}

// NewNotificationsStore creates a new NotificationsStore
func NewNotificationsStore(db *gorm.DB) *NotificationsStore {
	return &NotificationsStore{db: db}
}

// Create inserts a notification for its recipient.
func (s *NotificationsStore) Create(notification *model.Notification) error {
	return s.db.Create(notification).Error
}

// ListForRecipient returns the user's notifications, newest first.
func (s *NotificationsStore) ListForRecipient(userID int64) ([]model.Notification, error) {
	var notifications []model.Notification
	tx := s.db.Where("recipient_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&notifications)
	return notifications, tx.Error
}

// MarkAllRead clears the unread flag on all of the user's notifications.
func (s *NotificationsStore) MarkAllRead(userID int64) error {
	return s.db.Model(&model.Notification{}).
		Where("recipient_id = ? AND unread", userID).
		Update("unread", false).Error
}

// UnreadCount returns how many of the user's notifications are unread.
func (s *NotificationsStore) UnreadCount(userID int64) (int, error) {
	var count int64
	tx := s.db.Model(&model.Notification{}).
		Where("recipient_id = ? AND unread", userID).
		Count(&count)
	return int(count), tx.Error
}
