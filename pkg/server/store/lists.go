package store

import "boardhub/pkg/model"

// ListsStore abstracts list storage operations.
type ListsStore interface {
	// Create inserts a list. When the order is zero it is placed after
	// the board's current last list.
	Create(list *model.List) error

	// Find retrieves a list by id. Returns ErrNotFound when no such list
	// exists.
	Find(id int64) (*model.List, error)

	// ListForBoard returns the board's lists in display order.
	ListForBoard(boardID int64) ([]model.List, error)

	// Update persists list field changes. Lists never move between
	// boards; callers reject board changes before updating.
	Update(list *model.List) error

	// Delete removes a list and its items.
	Delete(id int64) error
}
