package gorm

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JurmiThinley/jobtrackr/pkg/model"
	"github.com/JurmiThinley/jobtrackr/pkg/server/store"
)

func TestFetchUserByUsername(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		usersStore := NewUsersStore(gormDB)

		rows := sqlmock.NewRows([]string{"id", "username", "password_hash"}).
			AddRow(7, "alice", "hashed")
		mock.ExpectQuery(`SELECT .* FROM "users" WHERE username = .*`).
			WithArgs("alice").
			WillReturnRows(rows)

		user, err := usersStore.FetchUserByUsername("alice")
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("missing", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		usersStore := NewUsersStore(gormDB)

		mock.ExpectQuery(`SELECT .* FROM "users" WHERE username = .*`).
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := usersStore.FetchUserByUsername("ghost")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestFetchUserByID(t *testing.T) {
	gormDB, mock := newMockDB(t)
	usersStore := NewUsersStore(gormDB)

	rows := sqlmock.NewRows([]string{"id", "username", "password_hash"}).
		AddRow(7, "alice", "hashed")
	mock.ExpectQuery(`SELECT .* FROM "users" WHERE id = .*`).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	user, err := usersStore.FetchUserByID(7)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestCreateUser_Duplicate(t *testing.T) {
	gormDB, mock := newMockDB(t)
	usersStore := NewUsersStore(gormDB)

	rows := sqlmock.NewRows([]string{"id", "username", "password_hash"}).
		AddRow(7, "alice", "hashed")
	mock.ExpectQuery(`SELECT .* FROM "users" WHERE username = .*`).
		WithArgs("alice").
		WillReturnRows(rows)

	err := usersStore.CreateUser(&model.User{Username: "alice", PasswordHash: "other"})
	assert.ErrorIs(t, err, store.ErrDuplicateUsername)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePassword(t *testing.T) {
	t.Run("updates existing user", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		usersStore := NewUsersStore(gormDB)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "users" SET "password_hash"=.* WHERE username = .*`).
			WithArgs("newhash", "alice").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, usersStore.UpdatePassword("alice", "newhash"))
	})

	t.Run("missing user", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		usersStore := NewUsersStore(gormDB)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "users"`).
			WithArgs("newhash", "ghost").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		assert.ErrorIs(t, usersStore.UpdatePassword("ghost", "newhash"), store.ErrUserNotFound)
	})
}

func TestHealthStore(t *testing.T) {
	gormDB, mock := newMockDB(t)
	healthStore := NewHealthStore(gormDB)

	mock.ExpectExec(`SELECT 1`).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, healthStore.CheckConnectivity())
	assert.NoError(t, mock.ExpectationsWereMet())
}
