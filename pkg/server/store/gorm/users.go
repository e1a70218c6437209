package gorm

import (
	"errors"

	"gorm.io/gorm"

	"boardhub/pkg/model"
	"boardhub/pkg/server/store"
)

// Ensure UsersStore implements store.UsersStore
var _ store.UsersStore = (*UsersStore)(nil)

// UsersStore implements store.UsersStore using GORM
type UsersStore struct {
	db *gorm.DB
}

// NewUsersStore creates a new UsersStore
func NewUsersStore(db *gorm.DB) *UsersStore {
	return &UsersStore{db: db}
}

// FindByEmail retrieves a user by email.
func (s *UsersStore) FindByEmail(email string) (*model.User, error) {
	var user model.User
	tx := s.db.Where("email = ?", email).First(&user)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, tx.Error
	}
	return &user, nil
}

// FindByID retrieves a user by id.
func (s *UsersStore) FindByID(id int64) (*model.User, error) {
	var user model.User
	tx := s.db.First(&user, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, tx.Error
	}
	return &user, nil
}

// Create inserts a new user.
func (s *UsersStore) Create(user *model.User) error {
	return s.db.Create(user).Error
}
