package gorm

import (
	"errors"

	"gorm.io/gorm"

	"boardhub/pkg/model"
	"boardhub/pkg/server/store"
)

// Ensure LabelsStore implements store.LabelsStore
var _ store.LabelsStore = (*LabelsStore)(nil)

// LabelsStore implements store.LabelsStore using GORM
type LabelsStore struct {
	db *gorm.DB
}

// NewLabelsStore creates a new LabelsStore
func NewLabelsStore(db *gorm.DB) *LabelsStore {
	return &LabelsStore{db: db}
}

// Create inserts a label on its board.
func (s *LabelsStore) Create(label *model.Label) error {
	return s.db.Create(label).Error
}

// Find retrieves a label by id.
func (s *LabelsStore) Find(id int64) (*model.Label, error) {
	var label model.Label
	tx := s.db.First(&label, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, tx.Error
	}
	return &label, nil
}

// ListForBoard returns the board's labels.
func (s *LabelsStore) ListForBoard(boardID int64) ([]model.Label, error) {
	var labels []model.Label
	tx := s.db.Where("board_id = ?", boardID).Order("id").Find(&labels)
	return labels, tx.Error
}

// Update persists label field changes.
func (s *LabelsStore) Update(label *model.Label) error {
	return s.db.Save(label).Error
}

// Delete removes a label and detaches it from every item.
func (s *LabelsStore) Delete(id int64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM item_labels WHERE label_id = ?`, id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Label{}, id).Error
	})
}
