package model

import "golang.org/x/crypto/bcrypt"

// User represents a registered account. Users own job applications; the id
// is immutable and referenced by Job.UserID.
type User struct {
	ID           int64  `gorm:"column:id;primaryKey" json:"id"`
	Username     string `gorm:"column:username;not null;unique" json:"username"`
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// SetPassword replaces the stored hash with a bcrypt hash of password at the
// given cost.
func (u *User) SetPassword(password string, cost int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
