package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinKeyLength is the minimum accepted signing key length in bytes.
const MinKeyLength = 32

// ErrInvalidToken is returned when a bearer token is malformed, expired, or
// fails signature verification.
var ErrInvalidToken = errors.New("invalid token")

// Issuer signs and verifies bearer tokens carrying a user identity.
type Issuer struct {
	key []byte
	ttl time.Duration
}

// NewIssuer creates an Issuer from a signing key and token lifetime.
func NewIssuer(key []byte, ttl time.Duration) (*Issuer, error) {
	if len(key) < MinKeyLength {
		return nil, errors.New("token signing key must be at least 32 bytes")
	}
	return &Issuer{key: key, ttl: ttl}, nil
}

// Issue returns a signed token whose subject is the user id.
func (i *Issuer) Issue(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
}

// Verify parses and validates a token and returns the user id it names.
// Expiry is checked as part of validation.
func (i *Issuer) Verify(tokenStr string) (int64, error) {
	parsed, err := jwt.ParseWithClaims(
		tokenStr,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) { return i.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !parsed.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return userID, nil
}
