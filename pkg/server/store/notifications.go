package store

import "boardhub/pkg/model"

// NotificationsStore abstracts notification storage operations.
type NotificationsStore interface {
	// Create inserts a notification for its recipient.
	Create(notification *model.Notification) error

	// ListForRecipient returns the user's notifications, newest first.
	ListForRecipient(userID int64) ([]model.Notification, error)

	// MarkAllRead clears the unread flag on all of the user's
	// notifications.
	MarkAllRead(userID int64) error

	// UnreadCount returns how many of the user's notifications are
	// unread.
	UnreadCount(userID int64) (int, error)
}
