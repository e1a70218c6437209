package gorm

import (
	"errors"

	"gorm.io/gorm"

	"boardhub/pkg/model"
	"boardhub/pkg/server/store"
)

// Ensure ListsStore implements store.ListsStore
var _ store.ListsStore = (*ListsStore)(nil)

// ListsStore implements store.ListsStore using GORM
type ListsStore struct {
	db *gorm.DB
}

// NewListsStore creates a new ListsStore
func NewListsStore(db *gorm.DB) *ListsStore {
	return &ListsStore{db: db}
}

// Create inserts a list, placing it after the board's last list when no
// order is given.
func (s *ListsStore) Create(list *model.List) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if list.Order == 0 {
			tx.Raw(`SELECT COALESCE(MAX(ord), 0) + 1 FROM lists WHERE board_id = ?`,
				list.BoardID).Scan(&list.Order)
		}
		return tx.Create(list).Error
	})
}

// Find retrieves a list by id.
func (s *ListsStore) Find(id int64) (*model.List, error) {
	var list model.List
	tx := s.db.First(&list, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, tx.Error
	}
	return &list, nil
}

// ListForBoard returns the board's lists in display order.
func (s *ListsStore) ListForBoard(boardID int64) ([]model.List, error) {
	var lists []model.List
	tx := s.db.Where("board_id = ?", boardID).Order("ord, id").Find(&lists)
	return lists, tx.Error
}

// Update persists list field changes.
func (s *ListsStore) Update(list *model.List) error {
	return s.db.Save(list).Error
}

// Delete removes a list and its items.
func (s *ListsStore) Delete(id int64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		statements := []string{
			`DELETE FROM comments WHERE item_id IN (SELECT id FROM items WHERE list_id = ?)`,
			`DELETE FROM attachments WHERE item_id IN (SELECT id FROM items WHERE list_id = ?)`,
			`DELETE FROM item_assignments WHERE item_id IN (SELECT id FROM items WHERE list_id = ?)`,
			`DELETE FROM item_labels WHERE item_id IN (SELECT id FROM items WHERE list_id = ?)`,
			`DELETE FROM items WHERE list_id = ?`,
			`DELETE FROM lists WHERE id = ?`,
		}
		for _, stmt := range statements {
			if err := tx.Exec(stmt, id).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
