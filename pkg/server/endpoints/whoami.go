package endpoints

import (
	"net"
	"net/http"
	"strings"

	"github.com/JurmiThinley/jobtrackr/pkg/config"
	"github.com/JurmiThinley/jobtrackr/pkg/server"
	"github.com/JurmiThinley/jobtrackr/pkg/server/middleware"
)

// WhoamiResponse represents the response from the /whoami endpoint
type WhoamiResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	ClientIP string `json:"client_ip"`
}

// RegisterWhoamiEndpoint registers the /whoami endpoint
func RegisterWhoamiEndpoint(s *server.Server) {
	usersStore := s.UsersStore
	cfg := s.Config

	// Create a subrouter for /whoami that uses bearer token auth
	whoamiRouter := s.Router.PathPrefix("/whoami").Subrouter()
	whoamiRouter.Use(s.TokenMiddleware.Middleware)

	whoamiRouter.HandleFunc("", func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "unable to determine identity")
			return
		}

		user, err := usersStore.FetchUserByID(userID)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "unable to determine identity")
			return
		}

		respondWithJSON(w, http.StatusOK, WhoamiResponse{
			UserID:   user.ID,
			Username: user.Username,
			ClientIP: clientIP(r, cfg),
		})
	}).Methods("GET")
}

// clientIP resolves the caller's address. X-Forwarded-For is honored only
// when the direct peer is a configured trusted proxy; otherwise the header
// is spoofable and the socket address wins.
func clientIP(r *http.Request, cfg *config.Config) string {
	remote := r.RemoteAddr
	if host, _, err := net.SplitHostPort(remote); err == nil {
		remote = host
	}

	if !cfg.IsTrustedProxy(remote) {
		return remote
	}

	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded == "" {
		return remote
	}

	// Leftmost entry is the originating client
	parts := strings.Split(forwarded, ",")
	return strings.TrimSpace(parts[0])
}
