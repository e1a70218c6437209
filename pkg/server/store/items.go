package store

import "boardhub/pkg/model"

// ItemsStore abstracts item storage plus the item's two toggled
// many-to-many relations.
type ItemsStore interface {
	// Create inserts an item. When the order is zero it is placed after
	// the list's current last item.
	Create(item *model.Item) error

	// Find retrieves an item by id. Returns ErrNotFound when no such
	// item exists.
	Find(id int64) (*model.Item, error)

	// ListForList returns the list's items in display order.
	ListForList(listID int64) ([]model.Item, error)

	// ListForBoard returns every item on the board in list then display
	// order.
	ListForBoard(boardID int64) ([]model.Item, error)

	// Search returns up to limit visible items whose title contains the
	// query, oldest first. Visibility follows the item's board.
	Search(userID int64, projectIDs []int64, query string, limit int) ([]model.Item, error)

	// Update persists item field changes, including moves between lists.
	Update(item *model.Item) error

	// Delete removes an item with its assignments, labels, comments and
	// attachments.
	Delete(id int64) error

	// AssigneeIDs returns ids of users assigned to the item.
	AssigneeIDs(itemID int64) ([]int64, error)

	// ToggleAssignee flips the user's assignment on the item and reports
	// whether they are now assigned.
	ToggleAssignee(itemID, userID int64) (bool, error)

	// LabelIDs returns ids of labels attached to the item.
	LabelIDs(itemID int64) ([]int64, error)

	// ToggleLabel flips the label on the item and reports whether it is
	// now attached.
	ToggleLabel(itemID, labelID int64) (bool, error)
}
