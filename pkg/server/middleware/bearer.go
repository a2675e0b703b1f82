package middleware

import (
	"context"
	"net/http"
	"regexp"

	"github.com/JurmiThinley/jobtrackr/pkg/token"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// UserIDKey is the context key under which the authenticated user id is
// stored.
const UserIDKey ContextKey = "userID"

var bearerRegex = regexp.MustCompile(`^Bearer\s+(\S+)$`)

// TokenAuthenticator is middleware that validates bearer tokens
type TokenAuthenticator struct {
	Issuer *token.Issuer
}

// NewTokenAuthenticator creates a new bearer token authenticator middleware
func NewTokenAuthenticator(issuer *token.Issuer) *TokenAuthenticator {
	return &TokenAuthenticator{Issuer: issuer}
}

// Middleware returns an HTTP middleware that validates bearer tokens and
// stores the resolved user id in the request context. Requests with a
// missing, malformed, expired, or badly-signed token are rejected with 401
// before the handler runs.
func (a *TokenAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")

		if len(authHeader) == 0 {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Authorization missing"))
			return
		}

		matches := bearerRegex.FindStringSubmatch(authHeader)
		if len(matches) != 2 {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Malformed authorization header"))
			return
		}

		userID, err := a.Issuer.Verify(matches[1])
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Invalid or expired token"))
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID extracts the authenticated user id from a request context.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(UserIDKey).(int64)
	return id, ok
}
