package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestSetAndCheckPassword(t *testing.T) {
	user := &User{Username: "alice"}
	require.NoError(t, user.SetPassword("s3cret", bcrypt.MinCost))

	assert.NotEmpty(t, user.PasswordHash)
	assert.NotContains(t, user.PasswordHash, "s3cret")

	assert.True(t, user.CheckPassword("s3cret"))
	assert.False(t, user.CheckPassword("wrong"))
	assert.False(t, user.CheckPassword(""))
}

func TestPasswordHashNotSerialized(t *testing.T) {
	user := &User{ID: 1, Username: "alice"}
	require.NoError(t, user.SetPassword("s3cret", bcrypt.MinCost))

	out, err := json.Marshal(user)
	require.NoError(t, err)

	assert.NotContains(t, string(out), "password")
	assert.Contains(t, string(out), "alice")
}
