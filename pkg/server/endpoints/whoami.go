package endpoints

import (
	"net/http"

	"boardhub/pkg/server"
)

// WhoamiResponse represents the response from the /whoami endpoint
type WhoamiResponse struct {
	UserID   int64  `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	TokenIAT int64  `json:"token_iat,omitempty"`
	ClientIP string `json:"client_ip,omitempty"`
}

// RegisterWhoamiEndpoint registers the /whoami endpoint
func RegisterWhoamiEndpoint(s *server.Server) {
	router := s.Router.PathPrefix("/whoami").Subrouter()
	router.Use(s.AuthMiddleware.Middleware)

	router.HandleFunc("", handleWhoami()).Methods("GET")
}

func handleWhoami() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		response := WhoamiResponse{
			UserID:   ident.UserID,
			Email:    ident.Email,
			FullName: ident.FullName,
		}
		if !ident.IssuedAt.IsZero() {
			response.TokenIAT = ident.IssuedAt.Unix()
		}
		if ident.RemoteIP != nil {
			response.ClientIP = ident.RemoteIP.String()
		}

		respondWithJSON(w, http.StatusOK, response)
	}
}
