package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/JurmiThinley/jobtrackr/pkg/model"
	"github.com/JurmiThinley/jobtrackr/pkg/server/store"
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

// CreateUser persists a new user. The username must be unique; the unique
// index on users.username backstops the lookup here.
func (s *UsersStore) CreateUser(user *model.User) error {
	var existing model.User
	if err := s.db.Where("username = ?", user.Username).First(&existing).Error; err == nil {
		return store.ErrDuplicateUsername
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.db.Create(user).Error
}

// FetchUserByUsername retrieves a user by unique username
func (s *UsersStore) FetchUserByUsername(username string) (*model.User, error) {
	var user model.User
	tx := s.db.Where("username = ?", username).First(&user)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrUserNotFound
		}
		return nil, tx.Error
	}
	return &user, nil
}

// FetchUserByID retrieves a user by id
func (s *UsersStore) FetchUserByID(id int64) (*model.User, error) {
	var user model.User
	tx := s.db.Where("id = ?", id).First(&user)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrUserNotFound
		}
		return nil, tx.Error
	}
	return &user, nil
}

// UpdatePassword replaces the stored password hash for a username
func (s *UsersStore) UpdatePassword(username string, passwordHash string) error {
	tx := s.db.Model(&model.User{}).Where("username = ?", username).
		Update("password_hash", passwordHash)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrUserNotFound
	}
	return nil
}
