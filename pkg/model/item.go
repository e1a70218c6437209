package model

import "time"

// Item represents a card in a list. Assignees and labels are many-to-many
// and must belong to the same board as the item's list.
type Item struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	ListID      int64     `gorm:"column:list_id;not null;index"`
	Title       string    `gorm:"column:title;not null"`
	Description string    `gorm:"column:description"`
	Order       int       `gorm:"column:ord;not null;default:0"`
	Image       string    `gorm:"column:image"`
	ImageURL    string    `gorm:"column:image_url"`
	Color       string    `gorm:"column:color"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Item) TableName() string {
	return "items"
}

// ItemAssignment joins an item to an assigned user.
type ItemAssignment struct {
	ItemID int64 `gorm:"column:item_id;primaryKey"`
	UserID int64 `gorm:"column:user_id;primaryKey"`
}

func (ItemAssignment) TableName() string {
	return "item_assignments"
}

// ItemLabel joins an item to a label of the same board.
type ItemLabel struct {
	ItemID  int64 `gorm:"column:item_id;primaryKey"`
	LabelID int64 `gorm:"column:label_id;primaryKey"`
}

func (ItemLabel) TableName() string {
	return "item_labels"
}
