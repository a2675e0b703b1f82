package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/JurmiThinley/jobtrackr/pkg/model"
	"github.com/JurmiThinley/jobtrackr/pkg/server"
	"github.com/JurmiThinley/jobtrackr/pkg/server/store"
)

// CredentialsRequest represents the body of register and login requests
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse represents the response from creating a user
type RegisterResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// LoginResponse represents the response from a successful login
type LoginResponse struct {
	Token string `json:"token"`
}

// RegisterAuthEndpoints registers the registration and login endpoints.
// Both are unauthenticated.
func RegisterAuthEndpoints(s *server.Server) {
	usersStore := s.UsersStore
	issuer := s.Issuer
	cfg := s.Config

	// POST /auth/register - Create a new user
	s.Router.HandleFunc(
		"/auth/register",
		func(w http.ResponseWriter, r *http.Request) {
			var body CredentialsRequest
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				respondWithError(w, http.StatusBadRequest, "invalid JSON body")
				return
			}

			username := strings.TrimSpace(body.Username)
			if username == "" || body.Password == "" {
				respondWithError(w, http.StatusBadRequest, "username and password are required")
				return
			}

			user := &model.User{Username: username}
			if err := user.SetPassword(body.Password, cfg.Cost()); err != nil {
				respondWithError(w, http.StatusInternalServerError, "failed to hash password")
				return
			}

			if err := usersStore.CreateUser(user); err != nil {
				if errors.Is(err, store.ErrDuplicateUsername) {
					respondWithError(w, http.StatusConflict, "username already taken")
					return
				}
				respondWithError(w, http.StatusInternalServerError, "failed to create user")
				return
			}

			respondWithJSON(w, http.StatusCreated, RegisterResponse{
				ID:       user.ID,
				Username: user.Username,
			})
		},
	).Methods("POST")

	// POST /auth/login - Exchange credentials for a bearer token
	s.Router.HandleFunc(
		"/auth/login",
		func(w http.ResponseWriter, r *http.Request) {
			var body CredentialsRequest
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				respondWithError(w, http.StatusBadRequest, "invalid JSON body")
				return
			}

			user, err := usersStore.FetchUserByUsername(strings.TrimSpace(body.Username))
			if err != nil || !user.CheckPassword(body.Password) {
				// Same response for unknown user and wrong password
				respondWithError(w, http.StatusUnauthorized, "invalid credentials")
				return
			}

			tokenStr, err := issuer.Issue(user.ID)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "failed to issue token")
				return
			}

			respondWithJSON(w, http.StatusOK, LoginResponse{Token: tokenStr})
		},
	).Methods("POST")
}
