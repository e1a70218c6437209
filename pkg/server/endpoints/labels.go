package endpoints

import (
	"net/http"

	"boardhub/pkg/model"
	"boardhub/pkg/server"
	"boardhub/pkg/server/store"
)

type labelResponse struct {
	ID      int64  `json:"id"`
	BoardID int64  `json:"board_id"`
	Title   string `json:"title"`
	Color   string `json:"color,omitempty"`
}

func newLabelResponse(label *model.Label) labelResponse {
	return labelResponse{
		ID:      label.ID,
		BoardID: label.BoardID,
		Title:   label.Title,
		Color:   label.Color,
	}
}

// RegisterLabelsEndpoints registers label mutation routes. Creation and
// per-board listing live under /boards.
func RegisterLabelsEndpoints(s *server.Server) {
	router := s.Router.PathPrefix("/labels").Subrouter()
	router.Use(s.AuthMiddleware.Middleware)

	router.HandleFunc("/{id:[0-9]+}", handleUpdateLabel(s)).Methods("PUT")
	router.HandleFunc("/{id:[0-9]+}", handleDeleteLabel(s)).Methods("DELETE")
}

func handleListLabels(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		boardID, err := pathID(r, "id")
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		board, err := visibleBoard(s, ident.UserID, boardID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		labels, err := s.LabelsStore.ListForBoard(board.ID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		out := make([]labelResponse, 0, len(labels))
		for i := range labels {
			out = append(out, newLabelResponse(&labels[i]))
		}
		respondWithJSON(w, http.StatusOK, out)
	}
}

type labelPayload struct {
	Title string `json:"title"`
	Color string `json:"color"`
}

func handleCreateLabel(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		boardID, err := pathID(r, "id")
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		board, err := visibleBoard(s, ident.UserID, boardID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		var payload labelPayload
		if !decodeJSON(w, r, &payload) {
			return
		}
		if payload.Title == "" {
			respondWithStoreError(w, store.Invalid("title", "must not be empty"))
			return
		}

		label := &model.Label{BoardID: board.ID, Title: payload.Title, Color: payload.Color}
		if err := s.LabelsStore.Create(label); err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithJSON(w, http.StatusCreated, newLabelResponse(label))
	}
}

func handleUpdateLabel(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		labelID, err := pathID(r, "id")
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		label, _, err := visibleLabel(s, ident.UserID, labelID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		var payload labelPayload
		if !decodeJSON(w, r, &payload) {
			return
		}

		if payload.Title != "" {
			label.Title = payload.Title
		}
		if payload.Color != "" {
			label.Color = payload.Color
		}

		if err := s.LabelsStore.Update(label); err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, newLabelResponse(label))
	}
}

func handleDeleteLabel(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		labelID, err := pathID(r, "id")
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		label, _, err := visibleLabel(s, ident.UserID, labelID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		if err := s.LabelsStore.Delete(label.ID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
