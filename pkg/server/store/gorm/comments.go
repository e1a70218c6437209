package gorm

import (
	"errors"

	"gorm.io/gorm"

	"boardhub/pkg/model"
	"boardhub/pkg/server/store"
)

// Ensure CommentsStore implements store.CommentsStore
var _ store.CommentsStore = (*CommentsStore)(nil)

// CommentsStore implements store.CommentsStore using GORM
type CommentsStore struct {
	db *gorm.DB
}

// NewCommentsStore creates a new CommentsStore
func NewCommentsStore(db *gorm.DB) *CommentsStore {
	return &CommentsStore{db: db}
}

// Create inserts a comment on an item.
func (s *CommentsStore) Create(comment *model.Comment) error {
	return s.db.Create(comment).Error
}

// Find retrieves a comment by id.
func (s *CommentsStore) Find(id int64) (*model.Comment, error) {
	var comment model.Comment
	tx := s.db.First(&comment, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, tx.Error
	}
	return &comment, nil
}

// ListForItem returns the item's comments, oldest first.
func (s *CommentsStore) ListForItem(itemID int64) ([]model.Comment, error) {
	var comments []model.Comment
	tx := s.db.Where("item_id = ?", itemID).Order("created_at, id").Find(&comments)
	return comments, tx.Error
}

// Update persists comment body changes.
func (s *CommentsStore) Update(comment *model.Comment) error {
	return s.db.Save(comment).Error
}

// Delete removes a comment.
func (s *CommentsStore) Delete(id int64) error {
	return s.db.Delete(&model.Comment{}, id).Error
}
