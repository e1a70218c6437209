package model

import "time"

// Label represents a board-scoped tag. Items may only reference labels of
// their own board.
type Label struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	BoardID   int64     `gorm:"column:board_id;not null;index"`
	Title     string    `gorm:"column:title;not null"`
	Color     string    `gorm:"column:color"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Label) TableName() string {
	return "labels"
}
