package store

import "boardhub/pkg/model"

// UsersStore abstracts user lookup and creation.
type UsersStore interface {
	// FindByEmail retrieves a user by email. Returns ErrNotFound when no
	// such user exists.
	FindByEmail(email string) (*model.User, error)

	// FindByID retrieves a user by id. Returns ErrNotFound when no such
	// user exists.
	FindByID(id int64) (*model.User, error)

	// Create inserts a new user. The email must be unique.
	Create(user *model.User) error
}
