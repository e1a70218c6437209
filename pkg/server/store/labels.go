package store

import "boardhub/pkg/model"

// LabelsStore abstracts label storage operations.
type LabelsStore interface {
	// Create inserts a label on its board.
	Create(label *model.Label) error

	// Find retrieves a label by id. Returns ErrNotFound when no such
	// label exists.
	Find(id int64) (*model.Label, error)

	// ListForBoard returns the board's labels.
	ListForBoard(boardID int64) ([]model.Label, error)

	// Update persists label field changes.
	Update(label *model.Label) error

	// Delete removes a label and detaches it from every item.
	Delete(id int64) error
}
