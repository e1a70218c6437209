package model

import "time"

// Notification represents an activity record delivered to a user.
type Notification struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	RecipientID int64     `gorm:"column:recipient_id;not null;index"`
	ActorID     int64     `gorm:"column:actor_id;not null"`
	Verb        string    `gorm:"column:verb;not null"`
	Target      string    `gorm:"column:target"`
	Unread      bool      `gorm:"column:unread;not null;default:true"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Notification) TableName() string {
	return "notifications"
}
