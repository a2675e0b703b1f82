package endpoints

import (
	"database/sql"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/JurmiThinley/jobtrackr/pkg/config"
	"github.com/JurmiThinley/jobtrackr/pkg/server"
	"github.com/JurmiThinley/jobtrackr/pkg/token"
)

// NewMockTestServer creates a server instance with a mocked database for
// unit testing. Returns the server, sqlmock instance, and any error
func NewMockTestServer(tokenKey []byte) (*server.Server, sqlmock.Sqlmock, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	issuer, err := token.NewIssuer(tokenKey, time.Hour)
	if err != nil {
		return nil, nil, err
	}

	// Create sqlmock database
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		return nil, nil, err
	}

	// Wrap with GORM
	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{
			Conn:                 mockDB,
			PreferSimpleProtocol: true,
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		},
	)
	if err != nil {
		_ = mockDB.Close()
		return nil, nil, err
	}

	s := server.NewServer(gormDB, issuer, cfg, "127.0.0.1", "0")

	return s, mock, nil
}

// MockDB wraps sqlmock for easier test setup
type MockDB struct {
	DB     *sql.DB
	Mock   sqlmock.Sqlmock
	GormDB *gorm.DB
}

// NewMockDB creates a new mock database connection
func NewMockDB() (*MockDB, error) {
	db, mock, err := sqlmock.New()
	if err != nil {
		return nil, err
	}

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{
			Conn:                 db,
			PreferSimpleProtocol: true,
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		},
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &MockDB{
		DB:     db,
		Mock:   mock,
		GormDB: gormDB,
	}, nil
}

// Close closes the mock database
func (m *MockDB) Close() error {
	return m.DB.Close()
}

// ExpectUserQuery sets up expectation for a user lookup by username
func (m *MockDB) ExpectUserQuery(username, passwordHash string, id int64) {
	rows := sqlmock.NewRows([]string{"id", "username", "password_hash"}).
		AddRow(id, username, passwordHash)
	m.Mock.ExpectQuery(`SELECT .* FROM "users"`).
		WithArgs(username).
		WillReturnRows(rows)
}

// ExpectUserNotFound sets up expectation for a missing user
func (m *MockDB) ExpectUserNotFound(username string) {
	m.Mock.ExpectQuery(`SELECT .* FROM "users"`).
		WithArgs(username).
		WillReturnError(sql.ErrNoRows)
}

// ExpectHealthCheck sets up expectation for the connectivity probe
func (m *MockDB) ExpectHealthCheck() {
	m.Mock.ExpectExec(`SELECT 1`).
		WillReturnResult(sqlmock.NewResult(0, 0))
}

// VerifyExpectations checks that all expectations were met
func (m *MockDB) VerifyExpectations() error {
	return m.Mock.ExpectationsWereMet()
}
