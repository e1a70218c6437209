package model

import "time"

// Comment represents an authored note on an item. Body is markdown; the API
// renders it to HTML on the way out.
type Comment struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	ItemID    int64     `gorm:"column:item_id;not null;index"`
	AuthorID  int64     `gorm:"column:author_id;not null"`
	Body      string    `gorm:"column:body;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Comment) TableName() string {
	return "comments"
}
