package endpoints

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"boardhub/pkg/model"
	"boardhub/pkg/server"
	"boardhub/pkg/server/store"
)

type attachmentResponse struct {
	ID         int64     `json:"id"`
	ItemID     int64     `json:"item_id"`
	UploaderID int64     `json:"uploader_id"`
	Name       string    `json:"name"`
	URL        string    `json:"url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func newAttachmentResponse(attachment *model.Attachment) attachmentResponse {
	return attachmentResponse{
		ID:         attachment.ID,
		ItemID:     attachment.ItemID,
		UploaderID: attachment.UploaderID,
		Name:       attachment.Name,
		URL:        attachment.URL,
		CreatedAt:  attachment.CreatedAt,
	}
}

// RegisterAttachmentsEndpoints registers attachment deletion. Creation and
// per-item listing live under /items.
func RegisterAttachmentsEndpoints(s *server.Server) {
	router := s.Router.PathPrefix("/attachments").Subrouter()
	router.Use(s.AuthMiddleware.Middleware)

	router.HandleFunc("/{id:[0-9]+}", handleDeleteAttachment(s)).Methods("DELETE")
}

func handleListAttachments(s *server.Server) http.HandlerFunc {
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

		attachments, err := s.AttachmentsStore.ListForItem(item.ID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		out := make([]attachmentResponse, 0, len(attachments))
		for i := range attachments {
			out = append(out, newAttachmentResponse(&attachments[i]))
		}
		respondWithJSON(w, http.StatusOK, out)
	}
}

type attachmentPayload struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

func handleCreateAttachment(s *server.Server) http.HandlerFunc {
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

		var payload attachmentPayload
		if !decodeJSON(w, r, &payload) {
			return
		}
		if payload.Name == "" {
			respondWithStoreError(w, store.Invalid("name", "must not be empty"))
			return
		}

		attachment := &model.Attachment{
			ItemID:     item.ID,
			UploaderID: ident.UserID,
			Name:       payload.Name,
			StorageKey: uuid.NewString(),
			URL:        payload.URL,
		}
		if err := s.AttachmentsStore.Create(attachment); err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithJSON(w, http.StatusCreated, newAttachmentResponse(attachment))
	}
}

func handleDeleteAttachment(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		attachmentID, err := pathID(r, "id")
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		attachment, err := s.AttachmentsStore.Find(attachmentID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		if _, _, _, err := visibleItem(s, ident.UserID, attachment.ItemID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		if err := s.AttachmentsStore.Delete(attachment.ID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
