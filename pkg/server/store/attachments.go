package store

import "boardhub/pkg/model"

// AttachmentsStore abstracts attachment metadata storage. The bytes live
// elsewhere; StorageKey and URL are opaque here.
type AttachmentsStore interface {
	// Create inserts an attachment record on an item.
	Create(attachment *model.Attachment) error

	// Find retrieves an attachment by id. Returns ErrNotFound when no
	// such attachment exists.
	Find(id int64) (*model.Attachment, error)

	// ListForItem returns the item's attachments, oldest first.
	ListForItem(itemID int64) ([]model.Attachment, error)

	// Delete removes an attachment record.
	Delete(id int64) error
}
