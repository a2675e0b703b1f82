package store

import (
	"errors"

	"github.com/JurmiThinley/jobtrackr/pkg/model"
)

// ErrUserNotFound is returned when no user matches the given name or id.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateUsername is returned when a username is already registered.
var ErrDuplicateUsername = errors.New("username already taken")

// UsersStore abstracts user account storage operations
type UsersStore interface {
	// CreateUser persists a new user and assigns its id
	CreateUser(user *model.User) error

	// FetchUserByUsername retrieves a user by unique username
	FetchUserByUsername(username string) (*model.User, error)

	// FetchUserByID retrieves a user by id
	FetchUserByID(id int64) (*model.User, error)

	// UpdatePassword replaces the stored password hash for a username
	UpdatePassword(username string, passwordHash string) error
}
