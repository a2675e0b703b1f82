package endpoints

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/JurmiThinley/jobtrackr/pkg/config"
	"github.com/JurmiThinley/jobtrackr/pkg/model"
	"github.com/JurmiThinley/jobtrackr/pkg/server"
	"github.com/JurmiThinley/jobtrackr/pkg/token"
)

// NewTestServer creates a server instance for testing
// It requires a running PostgreSQL database
func NewTestServer(dbURL string, tokenKey []byte) (*server.Server, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	issuer, err := token.NewIssuer(tokenKey, cfg.UserTokenTTL())
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(
		postgres.New(postgres.Config{
			DSN:                  dbURL,
			PreferSimpleProtocol: true,
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		},
	)
	if err != nil {
		return nil, err
	}

	return server.NewServer(db, issuer, cfg, "127.0.0.1", "0"), nil
}

// SetupTestUser creates a user and returns it along with a valid bearer
// token for it
func SetupTestUser(s *server.Server, username, password string) (*model.User, string, error) {
	user := &model.User{Username: username}
	if err := user.SetPassword(password, s.Config.Cost()); err != nil {
		return nil, "", err
	}

	if err := s.UsersStore.CreateUser(user); err != nil {
		return nil, "", err
	}

	tokenStr, err := s.Issuer.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, tokenStr, nil
}

// CleanupTestData removes a test user and all their jobs
func CleanupTestData(db *gorm.DB, username string) error {
	var user model.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil
	}
	if err := db.Exec(`DELETE FROM jobs WHERE user_id = ?`, user.ID).Error; err != nil {
		return err
	}
	return db.Exec(`DELETE FROM users WHERE id = ?`, user.ID).Error
}
