package store

import "boardhub/pkg/model"

// CommentsStore abstracts comment storage operations.
type CommentsStore interface {
	// Create inserts a comment on an item.
	Create(comment *model.Comment) error

	// Find retrieves a comment by id. Returns ErrNotFound when no such
	// comment exists.
	Find(id int64) (*model.Comment, error)

	// ListForItem returns the item's comments, oldest first.
	ListForItem(itemID int64) ([]model.Comment, error)

	// Update persists comment body changes.
	Update(comment *model.Comment) error

	// Delete removes a comment.
	Delete(id int64) error
}
