package endpoints

import (
	"net/http"

	"github.com/JurmiThinley/jobtrackr/pkg/server"
	"github.com/JurmiThinley/jobtrackr/pkg/server/store"
)

// HealthResponse represents the response from the /health endpoint
type HealthResponse struct {
	Status string `json:"status"`
}

// RegisterStatusEndpoints registers the root banner and health endpoints.
// Neither requires authentication.
func RegisterStatusEndpoints(s *server.Server) {
	healthStore := s.HealthStore

	// GET / - API banner
	s.Router.HandleFunc("/", handleRoot()).Methods("GET")

	// GET /health - Database connectivity check
	s.Router.HandleFunc("/health", handleHealth(healthStore)).Methods("GET")
}

func handleRoot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{"msg": "JobTrackr API is running"})
	}
}

func handleHealth(healthStore store.HealthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := healthStore.CheckConnectivity(); err != nil {
			respondWithJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "error"})
			return
		}
		respondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
