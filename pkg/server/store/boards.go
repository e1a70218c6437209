package store

import "boardhub/pkg/model"

// BoardsStore abstracts board storage operations.
type BoardsStore interface {
	// Create inserts a board under the owner already set on it.
	Create(board *model.Board) error

	// Find retrieves a board by id. Returns ErrNotFound when no such
	// board exists.
	Find(id int64) (*model.Board, error)

	// FindMany retrieves the boards with the given ids. Missing ids are
	// silently skipped; row order is unspecified.
	FindMany(ids []int64) ([]model.Board, error)

	// ListVisible returns every board the user can view: boards they own
	// directly plus boards owned by any of the given projects.
	ListVisible(userID int64, projectIDs []int64) ([]model.Board, error)

	// Search returns visible boards whose title matches the query,
	// case-insensitively, capped at limit.
	Search(userID int64, projectIDs []int64, query string, limit int) ([]model.Board, error)

	// Update persists board field changes.
	Update(board *model.Board) error

	// Delete removes a board and everything on it.
	Delete(id int64) error

	// ToggleStar flips the user's star on the board and reports the new
	// state.
	ToggleStar(boardID, userID int64) (bool, error)

	// StarredBoardIDs returns ids of the boards the user has starred.
	StarredBoardIDs(userID int64) ([]int64, error)
}
