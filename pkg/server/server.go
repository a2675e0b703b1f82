package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/JurmiThinley/jobtrackr/pkg/config"
	"github.com/JurmiThinley/jobtrackr/pkg/jobs"
	"github.com/JurmiThinley/jobtrackr/pkg/server/middleware"
	"github.com/JurmiThinley/jobtrackr/pkg/server/store"
	gormstore "github.com/JurmiThinley/jobtrackr/pkg/server/store/gorm"
	"github.com/JurmiThinley/jobtrackr/pkg/token"
)

// Server wires together the router, storage, token issuer, and
// configuration. Endpoints are registered onto the Router by the endpoints
// package; store fields are interfaces so tests can swap in mocks before
// registration.
type Server struct {
	Router      *mux.Router
	DB          *gorm.DB
	Config      *config.Config
	Issuer      *token.Issuer
	UsersStore  store.UsersStore
	JobsStore   store.JobsStore
	HealthStore store.HealthStore
	JobService  *jobs.Service

	TokenMiddleware *middleware.TokenAuthenticator

	srv *http.Server
}

// NewServer constructs a Server with GORM-backed stores.
func NewServer(
	db *gorm.DB,
	issuer *token.Issuer,
	cfg *config.Config,
	host string,
	port string,
) *Server {
	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	jobsStore := gormstore.NewJobsStore(db)

	return &Server{
		Router:          router,
		DB:              db,
		Config:          cfg,
		Issuer:          issuer,
		UsersStore:      gormstore.NewUsersStore(db),
		JobsStore:       jobsStore,
		HealthStore:     gormstore.NewHealthStore(db),
		JobService:      jobs.NewService(jobsStore),
		TokenMiddleware: middleware.NewTokenAuthenticator(issuer),
		srv:             srv,
	}
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}
