package model

import "time"

// Attachment records file metadata attached to an item. The bytes live in an
// external media store; StorageKey and URL are opaque here.
type Attachment struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	ItemID     int64     `gorm:"column:item_id;not null;index"`
	UploaderID int64     `gorm:"column:uploader_id;not null"`
	Name       string    `gorm:"column:name;not null"`
	StorageKey string    `gorm:"column:storage_key;not null"`
	URL        string    `gorm:"column:url"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Attachment) TableName() string {
	return "attachments"
}
