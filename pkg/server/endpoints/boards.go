package endpoints

import (
	"net/http"
	"strconv"
	"time"

	"boardhub/pkg/model"
	"boardhub/pkg/server"
	"boardhub/pkg/server/store"
)

type ownerResponse struct {
	Kind model.OwnerKind `json:"kind"`
	ID   int64           `json:"id"`
}

type boardResponse struct {
	ID        int64         `json:"id"`
	Title     string        `json:"title"`
	Owner     ownerResponse `json:"owner"`
	Image     string        `json:"image,omitempty"`
	ImageURL  string        `json:"image_url,omitempty"`
	Color     string        `json:"color,omitempty"`
	Starred   bool          `json:"starred"`
	CreatedAt time.Time     `json:"created_at"`
}

func newBoardResponse(board *model.Board, starred bool) boardResponse {
	return boardResponse{
		ID:        board.ID,
		Title:     board.Title,
		Owner:     ownerResponse{Kind: board.OwnerKind, ID: board.OwnerID},
		Image:     board.Image,
		ImageURL:  board.ImageURL,
		Color:     board.Color,
		Starred:   starred,
		CreatedAt: board.CreatedAt,
	}
}

func isStarred(s *server.Server, userID, boardID int64) (bool, error) {
	starredIDs, err := s.BoardsStore.StarredBoardIDs(userID)
	if err != nil {
		return false, err
	}
	for _, id := range starredIDs {
		if id == boardID {
			return true, nil
		}
	}
	return false, nil
}

func boardListResponse(boards []model.Board, starredIDs []int64) []boardResponse {
	starred := make(map[int64]bool, len(starredIDs))
	for _, id := range starredIDs {
		starred[id] = true
	}

	out := make([]boardResponse, 0, len(boards))
	for i := range boards {
		out = append(out, newBoardResponse(&boards[i], starred[boards[i].ID]))
	}
	return out
}

// RegisterBoardsEndpoints registers board CRUD, search, recents and the
// star toggle.
func RegisterBoardsEndpoints(s *server.Server) {
	router := s.Router.PathPrefix("/boards").Subrouter()
	router.Use(s.AuthMiddleware.Middleware)

	// Fixed paths first so they never match as {id}.
	router.HandleFunc("/recent", handleRecentBoards(s)).Methods("GET")
	router.HandleFunc("/search", handleSearchBoards(s)).Methods("GET")

	router.HandleFunc("", handleListBoards(s)).Methods("GET")
	router.HandleFunc("", handleCreateBoard(s)).Methods("POST")
	router.HandleFunc("/{id:[0-9]+}", handleGetBoard(s)).Methods("GET")
	router.HandleFunc("/{id:[0-9]+}", handleUpdateBoard(s)).Methods("PUT")
	router.HandleFunc("/{id:[0-9]+}", handleDeleteBoard(s)).Methods("DELETE")
	router.HandleFunc("/{id:[0-9]+}/star", handleToggleStar(s)).Methods("POST")

	router.HandleFunc("/{id:[0-9]+}/lists", handleListLists(s)).Methods("GET")
	router.HandleFunc("/{id:[0-9]+}/lists", handleCreateList(s)).Methods("POST")
	router.HandleFunc("/{id:[0-9]+}/labels", handleListLabels(s)).Methods("GET")
	router.HandleFunc("/{id:[0-9]+}/labels", handleCreateLabel(s)).Methods("POST")
}

func handleListBoards(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		var projectID *int64
		if raw := r.URL.Query().Get("project"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 || !s.ProjectsStore.IsProjectMember(id, ident.UserID) {
				respondWithError(w, http.StatusNotFound, "Not found")
				return
			}
			projectID = &id
		}

		scope, err := s.Resolver.BoardScope(ident.UserID, projectID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		boards, err := s.BoardsStore.ListVisible(scope.OwnerUserID, scope.ProjectIDs)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		starredIDs, err := s.BoardsStore.StarredBoardIDs(ident.UserID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, boardListResponse(boards, starredIDs))
	}
}

func handleRecentBoards(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		recentIDs := s.Recency.TopRecent(r.Context(), ident.UserID, s.Config.RecentBoardsLimit)
		boards, err := s.BoardsStore.FindMany(recentIDs)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		// Restore recency order and drop boards that were deleted or are
		// no longer visible.
		byID := make(map[int64]*model.Board, len(boards))
		for i := range boards {
			byID[boards[i].ID] = &boards[i]
		}

		starredIDs, err := s.BoardsStore.StarredBoardIDs(ident.UserID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		starred := make(map[int64]bool, len(starredIDs))
		for _, id := range starredIDs {
			starred[id] = true
		}

		out := make([]boardResponse, 0, len(recentIDs))
		for _, id := range recentIDs {
			board, found := byID[id]
			if !found || !s.Evaluator.CanView(ident.UserID, board) {
				continue
			}
			out = append(out, newBoardResponse(board, starred[id]))
		}

		respondWithJSON(w, http.StatusOK, out)
	}
}

func handleSearchBoards(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		query := r.URL.Query().Get("q")
		if query == "" {
			respondWithJSON(w, http.StatusOK, []boardResponse{})
			return
		}

		scope, err := s.Resolver.BoardScope(ident.UserID, nil)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		boards, err := s.BoardsStore.Search(scope.OwnerUserID, scope.ProjectIDs, query, s.Config.SearchResultLimit)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		starredIDs, err := s.BoardsStore.StarredBoardIDs(ident.UserID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, boardListResponse(boards, starredIDs))
	}
}

type boardPayload struct {
	Title     string `json:"title"`
	ProjectID *int64 `json:"project_id"`
	appearancePayload
}

func handleCreateBoard(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		var payload boardPayload
		if !decodeJSON(w, r, &payload) {
			return
		}
		if payload.Title == "" {
			respondWithStoreError(w, store.Invalid("title", "must not be empty"))
			return
		}

		owner := model.UserOwner(ident.UserID)
		if payload.ProjectID != nil {
			if !s.ProjectsStore.IsProjectMember(*payload.ProjectID, ident.UserID) {
				respondWithError(w, http.StatusNotFound, "Not found")
				return
			}
			owner = model.ProjectOwner(*payload.ProjectID)
		}

		board := &model.Board{
			Title:     payload.Title,
			OwnerID:   owner.ID,
			OwnerKind: owner.Kind,
		}
		if err := applyAppearance(payload.appearancePayload, &board.Image, &board.ImageURL, &board.Color); err != nil {
			respondWithStoreError(w, err)
			return
		}

		if err := s.BoardsStore.Create(board); err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithJSON(w, http.StatusCreated, newBoardResponse(board, false))
	}
}

func handleGetBoard(s *server.Server) http.HandlerFunc {
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

		// Viewing the detail page is what makes a board "recent".
		s.Recency.RecordView(r.Context(), ident.UserID, board.ID, time.Now())

		starred, err := isStarred(s, ident.UserID, board.ID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, newBoardResponse(board, starred))
	}
}

func handleUpdateBoard(s *server.Server) http.HandlerFunc {
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

		var payload boardPayload
		if !decodeJSON(w, r, &payload) {
			return
		}

		if payload.Title != "" {
			board.Title = payload.Title
		}
		if err := applyAppearance(payload.appearancePayload, &board.Image, &board.ImageURL, &board.Color); err != nil {
			respondWithStoreError(w, err)
			return
		}

		if err := s.BoardsStore.Update(board); err != nil {
			respondWithStoreError(w, err)
			return
		}

		starred, err := isStarred(s, ident.UserID, board.ID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, newBoardResponse(board, starred))
	}
}

func handleDeleteBoard(s *server.Server) http.HandlerFunc {
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

		if !canDeleteBoard(s, ident.UserID, board) {
			respondWithError(w, http.StatusForbidden, "Permission denied")
			return
		}

		if err := s.BoardsStore.Delete(board.ID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		s.Recency.Forget(r.Context(), []int64{ident.UserID}, board.ID)

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleToggleStar(s *server.Server) http.HandlerFunc {
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

		if _, err := s.BoardsStore.ToggleStar(board.ID, ident.UserID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
