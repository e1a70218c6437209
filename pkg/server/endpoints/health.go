package endpoints

import (
	"net/http"

	"boardhub/pkg/server"
)

// HealthResponse represents the response from the /health endpoint
type HealthResponse struct {
	Status string `json:"status"`
}

// RegisterHealthEndpoint registers the unauthenticated /health endpoint.
func RegisterHealthEndpoint(s *server.Server) {
	s.Router.HandleFunc("/health", handleHealth(s)).Methods("GET")
}

func handleHealth(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.HealthStore.CheckConnectivity(); err != nil {
			respondWithJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "error"})
			return
		}
		respondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
