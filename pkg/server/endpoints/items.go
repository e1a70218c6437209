package endpoints

import (
	"fmt"
	"net/http"
	"time"

	"boardhub/pkg/model"
	"boardhub/pkg/server"
	"boardhub/pkg/server/store"
)

type itemResponse struct {
	ID          int64     `json:"id"`
	ListID      int64     `json:"list_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Order       int       `json:"order"`
	Image       string    `json:"image,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Color       string    `json:"color,omitempty"`
	AssignedTo  []int64   `json:"assigned_to"`
	Labels      []int64   `json:"labels"`
	CreatedAt   time.Time `json:"created_at"`
}

func newItemResponse(s *server.Server, item *model.Item) (itemResponse, error) {
	assignees, err := s.ItemsStore.AssigneeIDs(item.ID)
	if err != nil {
		return itemResponse{}, err
	}
	labels, err := s.ItemsStore.LabelIDs(item.ID)
	if err != nil {
		return itemResponse{}, err
	}
	if assignees == nil {
		assignees = []int64{}
	}
	if labels == nil {
		labels = []int64{}
	}

	return itemResponse{
		ID:          item.ID,
		ListID:      item.ListID,
		Title:       item.Title,
		Description: item.Description,
		Order:       item.Order,
		Image:       item.Image,
		ImageURL:    item.ImageURL,
		Color:       item.Color,
		AssignedTo:  assignees,
		Labels:      labels,
		CreatedAt:   item.CreatedAt,
	}, nil
}

// RegisterItemsEndpoints registers item routes. Item creation and per-list
// listing live under /lists.
func RegisterItemsEndpoints(s *server.Server) {
	router := s.Router.PathPrefix("/items").Subrouter()
	router.Use(s.AuthMiddleware.Middleware)

	// Fixed paths first so they never match as {id}.
	router.HandleFunc("/search", handleSearchItems(s)).Methods("GET")

	router.HandleFunc("/{id:[0-9]+}", handleGetItem(s)).Methods("GET")
	router.HandleFunc("/{id:[0-9]+}", handleUpdateItem(s)).Methods("PUT")
	router.HandleFunc("/{id:[0-9]+}", handleDeleteItem(s)).Methods("DELETE")

	router.HandleFunc("/{id:[0-9]+}/comments", handleListComments(s)).Methods("GET")
	router.HandleFunc("/{id:[0-9]+}/comments", handleCreateComment(s)).Methods("POST")
	router.HandleFunc("/{id:[0-9]+}/attachments", handleListAttachments(s)).Methods("GET")
	router.HandleFunc("/{id:[0-9]+}/attachments", handleCreateAttachment(s)).Methods("POST")
}

func handleSearchItems(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		query := r.URL.Query().Get("q")
		if query == "" {
			respondWithJSON(w, http.StatusOK, []itemResponse{})
			return
		}

		scope, err := s.Resolver.BoardScope(ident.UserID, nil)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		items, err := s.ItemsStore.Search(scope.OwnerUserID, scope.ProjectIDs, query, s.Config.SearchResultLimit)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		out := make([]itemResponse, 0, len(items))
		for i := range items {
			resp, err := newItemResponse(s, &items[i])
			if err != nil {
				respondWithStoreError(w, err)
				return
			}
			out = append(out, resp)
		}
		respondWithJSON(w, http.StatusOK, out)
	}
}

func handleListItems(s *server.Server) http.HandlerFunc {
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

		items, err := s.ItemsStore.ListForList(list.ID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		out := make([]itemResponse, 0, len(items))
		for i := range items {
			resp, err := newItemResponse(s, &items[i])
			if err != nil {
				respondWithStoreError(w, err)
				return
			}
			out = append(out, resp)
		}
		respondWithJSON(w, http.StatusOK, out)
	}
}

type itemPayload struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
	ListID      *int64  `json:"list_id"`
	AssignedTo  []int64 `json:"assigned_to"`
	Labels      []int64 `json:"labels"`
	appearancePayload
}

func handleCreateItem(s *server.Server) http.HandlerFunc {
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

		var payload itemPayload
		if !decodeJSON(w, r, &payload) {
			return
		}
		if payload.Title == "" {
			respondWithStoreError(w, store.Invalid("title", "must not be empty"))
			return
		}

		item := &model.Item{ListID: list.ID, Title: payload.Title}
		if payload.Description != nil {
			item.Description = *payload.Description
		}
		if payload.Order != nil {
			item.Order = *payload.Order
		}
		if err := applyAppearance(payload.appearancePayload, &item.Image, &item.ImageURL, &item.Color); err != nil {
			respondWithStoreError(w, err)
			return
		}

		if err := s.ItemsStore.Create(item); err != nil {
			respondWithStoreError(w, err)
			return
		}

		resp, err := newItemResponse(s, item)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, resp)
	}
}

func handleGetItem(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		itemID, err := pathID(r, "id")
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		item, _, _, err := visibleItem(s, ident.UserID, itemID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		resp, err := newItemResponse(s, item)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, resp)
	}
}

func handleUpdateItem(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		itemID, err := pathID(r, "id")
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		item, list, board, err := visibleItem(s, ident.UserID, itemID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		var payload itemPayload
		if !decodeJSON(w, r, &payload) {
			return
		}

		// Items may move between lists, but only within the same board.
		if payload.ListID != nil && *payload.ListID != item.ListID {
			target, err := s.ListsStore.Find(*payload.ListID)
			if err != nil {
				respondWithStoreError(w, err)
				return
			}
			if target.BoardID != list.BoardID {
				respondWithStoreError(w, store.Invalid("list_id", "items cannot move between boards"))
				return
			}
			item.ListID = target.ID
		}

		if payload.Title != "" {
			item.Title = payload.Title
		}
		if payload.Description != nil {
			item.Description = *payload.Description
		}
		if payload.Order != nil {
			item.Order = *payload.Order
		}
		if err := applyAppearance(payload.appearancePayload, &item.Image, &item.ImageURL, &item.Color); err != nil {
			respondWithStoreError(w, err)
			return
		}

		if err := s.ItemsStore.Update(item); err != nil {
			respondWithStoreError(w, err)
			return
		}

		if err := toggleAssignees(s, ident.UserID, item, board, payload.AssignedTo); err != nil {
			respondWithStoreError(w, err)
			return
		}
		if err := toggleLabels(s, item, board, payload.Labels); err != nil {
			respondWithStoreError(w, err)
			return
		}

		resp, err := newItemResponse(s, item)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, resp)
	}
}

// toggleAssignees flips assignment for each listed user id. Mentioning an
// unassigned user assigns them; mentioning an assigned user unassigns them.
// Every assignee must be able to view the board.
func toggleAssignees(s *server.Server, actorID int64, item *model.Item, board *model.Board, userIDs []int64) error {
	for _, userID := range userIDs {
		user, err := s.UsersStore.FindByID(userID)
		if err != nil {
			return store.Invalid("assigned_to", fmt.Sprintf("user %d not found", userID))
		}
		if !s.Evaluator.CanView(user.ID, board) {
			return store.Invalid("assigned_to", fmt.Sprintf("user %d cannot view this board", userID))
		}

		assigned, err := s.ItemsStore.ToggleAssignee(item.ID, user.ID)
		if err != nil {
			return err
		}

		if assigned && user.ID != actorID {
			notifyAssigned(s, actorID, user.ID, item)
		}
	}
	return nil
}

// toggleLabels flips each listed label, rejecting labels of other boards.
func toggleLabels(s *server.Server, item *model.Item, board *model.Board, labelIDs []int64) error {
	for _, labelID := range labelIDs {
		label, err := s.LabelsStore.Find(labelID)
		if err != nil {
			return store.Invalid("labels", fmt.Sprintf("label %d not found", labelID))
		}
		if label.BoardID != board.ID {
			return store.Invalid("labels", fmt.Sprintf("label %d belongs to another board", labelID))
		}

		if _, err := s.ItemsStore.ToggleLabel(item.ID, label.ID); err != nil {
			return err
		}
	}
	return nil
}

func handleDeleteItem(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		itemID, err := pathID(r, "id")
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		item, _, _, err := visibleItem(s, ident.UserID, itemID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		if err := s.ItemsStore.Delete(item.ID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
