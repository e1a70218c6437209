package endpoints

import (
	"bytes"
	"net/http"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"

	"boardhub/pkg/access"
	"boardhub/pkg/model"
	"boardhub/pkg/server"
	"boardhub/pkg/server/store"
)

// markdown renders comment bodies. Raw HTML in the source is escaped, not
// passed through.
var markdown = goldmark.New(
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

func renderBody(body string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(body), &buf); err != nil {
		return ""
	}
	return buf.String()
}

type commentResponse struct {
	ID        int64     `json:"id"`
	ItemID    int64     `json:"item_id"`
	AuthorID  int64     `json:"author_id"`
	Body      string    `json:"body"`
	BodyHTML  string    `json:"body_html"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newCommentResponse(comment *model.Comment) commentResponse {
	return commentResponse{
		ID:        comment.ID,
		ItemID:    comment.ItemID,
		AuthorID:  comment.AuthorID,
		Body:      comment.Body,
		BodyHTML:  renderBody(comment.Body),
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

// RegisterCommentsEndpoints registers comment mutation routes. Creation and
// per-item listing live under /items.
func RegisterCommentsEndpoints(s *server.Server) {
	router := s.Router.PathPrefix("/comments").Subrouter()
	router.Use(s.AuthMiddleware.Middleware)

	router.HandleFunc("/{id:[0-9]+}", handleUpdateComment(s)).Methods("PUT")
	router.HandleFunc("/{id:[0-9]+}", handleDeleteComment(s)).Methods("DELETE")
}

func handleListComments(s *server.Server) http.HandlerFunc {
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

		comments, err := s.CommentsStore.ListForItem(item.ID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		out := make([]commentResponse, 0, len(comments))
		for i := range comments {
			out = append(out, newCommentResponse(&comments[i]))
		}
		respondWithJSON(w, http.StatusOK, out)
	}
}

type commentPayload struct {
	Body string `json:"body"`
}

func handleCreateComment(s *server.Server) http.HandlerFunc {
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

		var payload commentPayload
		if !decodeJSON(w, r, &payload) {
			return
		}
		if payload.Body == "" {
			respondWithStoreError(w, store.Invalid("body", "must not be empty"))
			return
		}

		comment := &model.Comment{
			ItemID:   item.ID,
			AuthorID: ident.UserID,
			Body:     payload.Body,
		}
		if err := s.CommentsStore.Create(comment); err != nil {
			respondWithStoreError(w, err)
			return
		}

		notifyCommented(s, ident.UserID, item)

		respondWithJSON(w, http.StatusCreated, newCommentResponse(comment))
	}
}

// editableComment loads a comment the user authored, after the usual board
// visibility walk. Non-authors who can see the board get a 403, not a 404.
func editableComment(s *server.Server, userID, commentID int64) (*model.Comment, error) {
	comment, err := s.CommentsStore.Find(commentID)
	if err != nil {
		return nil, err
	}
	if _, _, _, err := visibleItem(s, userID, comment.ItemID); err != nil {
		return nil, err
	}
	if !access.CanEditComment(userID, comment) {
		return nil, store.ErrPermissionDenied
	}
	return comment, nil
}

func handleUpdateComment(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		commentID, err := pathID(r, "id")
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		comment, err := editableComment(s, ident.UserID, commentID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		var payload commentPayload
		if !decodeJSON(w, r, &payload) {
			return
		}
		if payload.Body == "" {
			respondWithStoreError(w, store.Invalid("body", "must not be empty"))
			return
		}

		comment.Body = payload.Body
		if err := s.CommentsStore.Update(comment); err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, newCommentResponse(comment))
	}
}

func handleDeleteComment(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		commentID, err := pathID(r, "id")
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		comment, err := editableComment(s, ident.UserID, commentID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		if err := s.CommentsStore.Delete(comment.ID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
