package model

import "time"

// List represents a column on a board. Order is the display position; it is
// not guaranteed unique, ties break by id.
type List struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	BoardID   int64     `gorm:"column:board_id;not null;index"`
	Title     string    `gorm:"column:title;not null"`
	Order     int       `gorm:"column:ord;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (List) TableName() string {
	return "lists"
}
