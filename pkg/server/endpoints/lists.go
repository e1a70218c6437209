package endpoints

import (
	"net/http"
	"time"

	"boardhub/pkg/model"
	"boardhub/pkg/server"
	"boardhub/pkg/server/store"
)

type listResponse struct {
	ID        int64     `json:"id"`
	BoardID   int64     `json:"board_id"`
	Title     string    `json:"title"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}

func newListResponse(list *model.List) listResponse {
	return listResponse{
		ID:        list.ID,
		BoardID:   list.BoardID,
		Title:     list.Title,
		Order:     list.Order,
		CreatedAt: list.CreatedAt,
	}
}

// RegisterListsEndpoints registers list mutation routes. List creation and
// per-board listing live under /boards.
func RegisterListsEndpoints(s *server.Server) {
	router := s.Router.PathPrefix("/lists").Subrouter()
	router.Use(s.AuthMiddleware.Middleware)

	router.HandleFunc("/{id:[0-9]+}", handleGetList(s)).Methods("GET")
	router.HandleFunc("/{id:[0-9]+}", handleUpdateList(s)).Methods("PUT")
	router.HandleFunc("/{id:[0-9]+}", handleDeleteList(s)).Methods("DELETE")

	router.HandleFunc("/{id:[0-9]+}/items", handleListItems(s)).Methods("GET")
	router.HandleFunc("/{id:[0-9]+}/items", handleCreateItem(s)).Methods("POST")
}

func handleListLists(s *server.Server) http.HandlerFunc {
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

		lists, err := s.ListsStore.ListForBoard(board.ID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		out := make([]listResponse, 0, len(lists))
		for i := range lists {
			out = append(out, newListResponse(&lists[i]))
		}
		respondWithJSON(w, http.StatusOK, out)
	}
}

type listPayload struct {
	Title string `json:"title"`
	Order *int   `json:"order"`
}

func handleCreateList(s *server.Server) http.HandlerFunc {
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

		var payload listPayload
		if !decodeJSON(w, r, &payload) {
			return
		}
		if payload.Title == "" {
			respondWithStoreError(w, store.Invalid("title", "must not be empty"))
			return
		}

		list := &model.List{BoardID: board.ID, Title: payload.Title}
		if payload.Order != nil {
			list.Order = *payload.Order
		}

		if err := s.ListsStore.Create(list); err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithJSON(w, http.StatusCreated, newListResponse(list))
	}
}

func handleGetList(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		listID, err := pathID(r, "id")
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		list, _, err := visibleList(s, ident.UserID, listID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, newListResponse(list))
	}
}

type listUpdatePayload struct {
	Title   string `json:"title"`
	Order   *int   `json:"order"`
	BoardID *int64 `json:"board_id"`
}

func handleUpdateList(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		listID, err := pathID(r, "id")
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		list, _, err := visibleList(s, ident.UserID, listID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		var payload listUpdatePayload
		if !decodeJSON(w, r, &payload) {
			return
		}

		// Lists never move between boards.
		if payload.BoardID != nil && *payload.BoardID != list.BoardID {
			respondWithStoreError(w, store.Invalid("board_id", "lists cannot move between boards"))
			return
		}

		if payload.Title != "" {
			list.Title = payload.Title
		}
		if payload.Order != nil {
			list.Order = *payload.Order
		}

		if err := s.ListsStore.Update(list); err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, newListResponse(list))
	}
}

func handleDeleteList(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		listID, err := pathID(r, "id")
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		list, _, err := visibleList(s, ident.UserID, listID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		if err := s.ListsStore.Delete(list.ID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
