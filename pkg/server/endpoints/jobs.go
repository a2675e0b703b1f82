package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/JurmiThinley/jobtrackr/pkg/jobs"
	"github.com/JurmiThinley/jobtrackr/pkg/server"
	"github.com/JurmiThinley/jobtrackr/pkg/server/middleware"
	"github.com/JurmiThinley/jobtrackr/pkg/server/store"
)

// JobRequest represents the body of create and update requests. Pointers
// distinguish omitted fields from empty ones.
type JobRequest struct {
	Title       *string `json:"title"`
	Company     *string `json:"company"`
	Location    *string `json:"location"`
	Status      *string `json:"status"`
	DateApplied *string `json:"date_applied"`
	Notes       *string `json:"notes"`
}

func (j JobRequest) fields() jobs.Fields {
	return jobs.Fields{
		Title:       j.Title,
		Company:     j.Company,
		Location:    j.Location,
		Status:      j.Status,
		DateApplied: j.DateApplied,
		Notes:       j.Notes,
	}
}

// RegisterJobsEndpoints registers the job CRUD endpoints. All of them
// require a bearer token; ownership scoping comes from the token, never
// from the request body.
func RegisterJobsEndpoints(s *server.Server) {
	service := s.JobService

	jobsRouter := s.Router.PathPrefix("/jobs").Subrouter()
	jobsRouter.Use(s.TokenMiddleware.Middleware)

	// GET /jobs/ - List the caller's jobs
	jobsRouter.HandleFunc("/", handleListJobs(service)).Methods("GET")

	// POST /jobs/ - Create a job
	jobsRouter.HandleFunc("/", handleCreateJob(service)).Methods("POST")

	// GET /jobs/{id} - Fetch a single job
	jobsRouter.HandleFunc("/{id:[0-9]+}", handleGetJob(service)).Methods("GET")

	// PUT /jobs/{id} - Partially update a job
	jobsRouter.HandleFunc("/{id:[0-9]+}", handleUpdateJob(service)).Methods("PUT")

	// DELETE /jobs/{id} - Delete a job
	jobsRouter.HandleFunc("/{id:[0-9]+}", handleDeleteJob(service)).Methods("DELETE")
}

func handleListJobs(service *jobs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "unable to determine identity")
			return
		}

		list, err := service.List(userID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to list jobs")
			return
		}

		respondWithJSON(w, http.StatusOK, list)
	}
}

func handleCreateJob(service *jobs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "unable to determine identity")
			return
		}

		var body JobRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		job, err := service.Create(userID, body.fields())
		if err != nil {
			writeJobError(w, err)
			return
		}

		respondWithJSON(w, http.StatusCreated, job)
	}
}

func handleGetJob(service *jobs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "unable to determine identity")
			return
		}

		job, err := service.Get(userID, jobID(r))
		if err != nil {
			writeJobError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, job)
	}
}

func handleUpdateJob(service *jobs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "unable to determine identity")
			return
		}

		var body JobRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		job, err := service.Update(userID, jobID(r), body.fields())
		if err != nil {
			writeJobError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, job)
	}
}

func handleDeleteJob(service *jobs.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "unable to determine identity")
			return
		}

		if err := service.Delete(userID, jobID(r)); err != nil {
			writeJobError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]string{"msg": "deleted"})
	}
}

// jobID parses the {id} path variable. The route pattern guarantees
// digits, so a parse failure cannot happen in practice.
func jobID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}

// writeJobError maps service errors to HTTP responses. A job that is
// absent and a job owned by someone else both come back as 404.
func writeJobError(w http.ResponseWriter, err error) {
	var validationErr *jobs.ValidationError
	switch {
	case errors.As(err, &validationErr):
		respondWithError(w, http.StatusBadRequest, validationErr.Msg)
	case errors.Is(err, store.ErrJobNotFound):
		respondWithError(w, http.StatusNotFound, "job not found")
	default:
		respondWithError(w, http.StatusInternalServerError, "internal error")
	}
}
