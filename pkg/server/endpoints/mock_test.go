package endpoints

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestMockDB(t *testing.T) {
	mockDB, err := NewMockDB()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer mockDB.Close()

	if mockDB.DB == nil {
		t.Error("expected DB to be non-nil")
	}
	if mockDB.Mock == nil {
		t.Error("expected Mock to be non-nil")
	}
	if mockDB.GormDB == nil {
		t.Error("expected GormDB to be non-nil")
	}
}

func TestMockUserQuery(t *testing.T) {
	mockDB, err := NewMockDB()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer mockDB.Close()

	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	mockDB.ExpectUserQuery("alice", string(hash), 7)

	var result struct {
		ID           int64  `gorm:"column:id"`
		Username     string `gorm:"column:username"`
		PasswordHash string `gorm:"column:password_hash"`
	}
	err = mockDB.GormDB.Table("users").
		Where("username = ?", "alice").
		First(&result).Error

	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if result.ID != 7 {
		t.Errorf("expected id 7, got %d", result.ID)
	}
	if bcrypt.CompareHashAndPassword([]byte(result.PasswordHash), []byte("s3cret")) != nil {
		t.Error("stored hash does not match the password")
	}

	if err := mockDB.VerifyExpectations(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestMockUserNotFound(t *testing.T) {
	mockDB, err := NewMockDB()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer mockDB.Close()

	mockDB.ExpectUserNotFound("ghost")

	var result struct {
		ID int64 `gorm:"column:id"`
	}
	err = mockDB.GormDB.Table("users").
		Where("username = ?", "ghost").
		First(&result).Error

	if err == nil {
		t.Error("expected error for non-existent user")
	}

	if err := mockDB.VerifyExpectations(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestMockTestServer(t *testing.T) {
	tokenKey := make([]byte, 32)
	for i := range tokenKey {
		tokenKey[i] = byte(i)
	}

	server, mock, err := NewMockTestServer(tokenKey)
	if err != nil {
		t.Fatalf("failed to create mock test server: %v", err)
	}

	if server == nil {
		t.Error("expected server to be non-nil")
	}
	if mock == nil {
		t.Error("expected mock to be non-nil")
	}

	// Register the status endpoints and hit the banner, which needs no DB
	RegisterStatusEndpoints(server)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	server.Router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
}
