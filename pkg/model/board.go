package model

import "time"

// Board represents a kanban board. Ownership is polymorphic: OwnerID plus
// OwnerKind reference either a users row or a projects row.
//
// At most one of Image, ImageURL and Color is non-empty; updates that set
// one clear the other two.
type Board struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Title     string    `gorm:"column:title;not null"`
	OwnerID   int64     `gorm:"column:owner_id;not null"`
	OwnerKind OwnerKind `gorm:"column:owner_kind;not null"`
	Image     string    `gorm:"column:image"`
	ImageURL  string    `gorm:"column:image_url"`
	Color     string    `gorm:"column:color"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Board) TableName() string {
	return "boards"
}

// Owner returns the board's owner as a tagged reference.
func (b Board) Owner() OwnerRef {
	return OwnerRef{Kind: b.OwnerKind, ID: b.OwnerID}
}

// BoardStar records that a user starred a board. No ordering.
type BoardStar struct {
	UserID  int64 `gorm:"column:user_id;primaryKey"`
	BoardID int64 `gorm:"column:board_id;primaryKey"`
}

func (BoardStar) TableName() string {
	return "board_stars"
}
