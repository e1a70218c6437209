package gorm

import (
	"errors"

	"gorm.io/gorm"

	"boardhub/pkg/model"
	"boardhub/pkg/server/store"
)

// Ensure AttachmentsStore implements store.AttachmentsStore
var _ store.AttachmentsStore = (*AttachmentsStore)(nil)

// AttachmentsStore implements store.AttachmentsStore using GORM
type AttachmentsStore struct {
	db *gorm.DB
}

// NewAttachmentsStore creates a new AttachmentsStore
func NewAttachmentsStore(db *gorm.DB) *AttachmentsStore {
	return &AttachmentsStore{db: db}
}

// Create inserts an attachment record on an item.
func (s *AttachmentsStore) Create(attachment *model.Attachment) error {
	return s.db.Create(attachment).Error
}

// Find retrieves an attachment by id.
func (s *AttachmentsStore) Find(id int64) (*model.Attachment, error) {
	var attachment model.Attachment
	tx := s.db.First(&attachment, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, tx.Error
	}
	return &attachment, nil
}

// ListForItem returns the item's attachments, oldest first.
func (s *AttachmentsStore) ListForItem(itemID int64) ([]model.Attachment, error) {
	var attachments []model.Attachment
	tx := s.db.Where("item_id = ?", itemID).Order("created_at, id").Find(&attachments)
	return attachments, tx.Error
}

// Delete removes an attachment record.
func (s *AttachmentsStore) Delete(id int64) error {
	return s.db.Delete(&model.Attachment{}, id).Error
}
