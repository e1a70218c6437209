package gorm

import (
	"errors"

	"gorm.io/gorm"

	"boardhub/pkg/model"
	"boardhub/pkg/server/store"
)

// Ensure ItemsStore implements store.ItemsStore
var _ store.ItemsStore = (*ItemsStore)(nil)

// ItemsStore implements store.ItemsStore using GORM
type ItemsStore struct {
	db *gorm.DB
}

// NewItemsStore creates a new ItemsStore
func NewItemsStore(db *gorm.DB) *ItemsStore {
	return &ItemsStore{db: db}
}

// Create inserts an item, placing it after the list's last item when no
// order is given.
func (s *ItemsStore) Create(item *model.Item) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if item.Order == 0 {
			tx.Raw(`SELECT COALESCE(MAX(ord), 0) + 1 FROM items WHERE list_id = ?`,
				item.ListID).Scan(&item.Order)
		}
		return tx.Create(item).Error
	})
}

// Find retrieves an item by id.
func (s *ItemsStore) Find(id int64) (*model.Item, error) {
	var item model.Item
	tx := s.db.First(&item, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, tx.Error
	}
	return &item, nil
}

// ListForList returns the list's items in display order.
func (s *ItemsStore) ListForList(listID int64) ([]model.Item, error) {
	var items []model.Item
	tx := s.db.Where("list_id = ?", listID).Order("ord, id").Find(&items)
	return items, tx.Error
}

// ListForBoard returns every item on the board in list then display order.
func (s *ItemsStore) ListForBoard(boardID int64) ([]model.Item, error) {
	var items []model.Item
	tx := s.db.Raw(`
		SELECT i.*
		FROM items i
		JOIN lists l ON l.id = i.list_id
		WHERE l.board_id = ?
		ORDER BY l.ord, l.id, i.ord, i.id
	`, boardID).Scan(&items)
	return items, tx.Error
}

// Search returns visible items whose title contains the query, oldest first.
func (s *ItemsStore) Search(userID int64, projectIDs []int64, query string, limit int) ([]model.Item, error) {
	var items []model.Item
	tx := s.db.Raw(`
		SELECT i.*
		FROM items i
		JOIN lists l ON l.id = i.list_id
		JOIN boards b ON b.id = l.board_id
		WHERE ((b.owner_kind = ? AND b.owner_id = ?) OR (b.owner_kind = ? AND b.owner_id IN ?))
		  AND i.title ILIKE ?
		ORDER BY i.created_at, i.id
		LIMIT ?
	`, model.OwnerKindUser, userID, model.OwnerKindProject, projectIDs,
		"%"+query+"%", limit).Scan(&items)
	return items, tx.Error
}

// Update persists item field changes, including moves between lists.
func (s *ItemsStore) Update(item *model.Item) error {
	return s.db.Save(item).Error
}

// Delete removes an item with its assignments, labels, comments and
// attachments.
func (s *ItemsStore) Delete(id int64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		statements := []string{
			`DELETE FROM comments WHERE item_id = ?`,
			`DELETE FROM attachments WHERE item_id = ?`,
			`DELETE FROM item_assignments WHERE item_id = ?`,
			`DELETE FROM item_labels WHERE item_id = ?`,
			`DELETE FROM items WHERE id = ?`,
		}
		for _, stmt := range statements {
			if err := tx.Exec(stmt, id).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// AssigneeIDs returns ids of users assigned to the item.
func (s *ItemsStore) AssigneeIDs(itemID int64) ([]int64, error) {
	var ids []int64
	tx := s.db.Raw(`
		SELECT user_id FROM item_assignments WHERE item_id = ? ORDER BY user_id
	`, itemID).Scan(&ids)
	return ids, tx.Error
}

// ToggleAssignee flips the user's assignment on the item.
func (s *ItemsStore) ToggleAssignee(itemID, userID int64) (bool, error) {
	var assigned bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("item_id = ? AND user_id = ?", itemID, userID).
			Delete(&model.ItemAssignment{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			assigned = false
			return nil
		}
		assigned = true
		return tx.Create(&model.ItemAssignment{ItemID: itemID, UserID: userID}).Error
	})
	return assigned, err
}

// LabelIDs returns ids of labels attached to the item.
func (s *ItemsStore) LabelIDs(itemID int64) ([]int64, error) {
	var ids []int64
	tx := s.db.Raw(`
		SELECT label_id FROM item_labels WHERE item_id = ? ORDER BY label_id
	`, itemID).Scan(&ids)
	return ids, tx.Error
}

// ToggleLabel flips the label on the item.
func (s *ItemsStore) ToggleLabel(itemID, labelID int64) (bool, error) {
	var attached bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("item_id = ? AND label_id = ?", itemID, labelID).
			Delete(&model.ItemLabel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			attached = false
			return nil
		}
		attached = true
		return tx.Create(&model.ItemLabel{ItemID: itemID, LabelID: labelID}).Error
	})
	return attached, err
}
