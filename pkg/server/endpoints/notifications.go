package endpoints

import (
	"net/http"
	"time"

	"boardhub/pkg/model"
	"boardhub/pkg/server"
)

type notificationResponse struct {
	ID        int64     `json:"id"`
	ActorID   int64     `json:"actor_id"`
	Verb      string    `json:"verb"`
	Target    string    `json:"target,omitempty"`
	Unread    bool      `json:"unread"`
	CreatedAt time.Time `json:"created_at"`
}

type notificationsListResponse struct {
	Unread        int                    `json:"unread"`
	Notifications []notificationResponse `json:"notifications"`
}

// RegisterNotificationsEndpoints registers the notification feed and the
// mark-all-read action.
func RegisterNotificationsEndpoints(s *server.Server) {
	router := s.Router.PathPrefix("/notifications").Subrouter()
	router.Use(s.AuthMiddleware.Middleware)

	router.HandleFunc("", handleListNotifications(s)).Methods("GET")
	router.HandleFunc("/read", handleMarkNotificationsRead(s)).Methods("POST")
}

func handleListNotifications(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		notifications, err := s.NotificationsStore.ListForRecipient(ident.UserID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		unread, err := s.NotificationsStore.UnreadCount(ident.UserID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		out := notificationsListResponse{
			Unread:        unread,
			Notifications: make([]notificationResponse, 0, len(notifications)),
		}
		for _, n := range notifications {
			out.Notifications = append(out.Notifications, notificationResponse{
				ID:        n.ID,
				ActorID:   n.ActorID,
				Verb:      n.Verb,
				Target:    n.Target,
				Unread:    n.Unread,
				CreatedAt: n.CreatedAt,
			})
		}
		respondWithJSON(w, http.StatusOK, out)
	}
}

func handleMarkNotificationsRead(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		if err := s.NotificationsStore.MarkAllRead(ident.UserID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// Notification fan-out. Delivery failures are logged and never fail the
// triggering request.

func notify(s *server.Server, n *model.Notification) {
	if err := s.NotificationsStore.Create(n); err != nil {
		s.Log.WithError(err).WithField("recipient_id", n.RecipientID).
			Warn("notification delivery failed")
	}
}

func notifyAssigned(s *server.Server, actorID, recipientID int64, item *model.Item) {
	notify(s, &model.Notification{
		RecipientID: recipientID,
		ActorID:     actorID,
		Verb:        "assigned",
		Target:      item.Title,
	})
}

// notifyCommented tells the item's assignees about a new comment, except
// the author.
func notifyCommented(s *server.Server, actorID int64, item *model.Item) {
	assignees, err := s.ItemsStore.AssigneeIDs(item.ID)
	if err != nil {
		s.Log.WithError(err).Warn("comment notification fan-out failed")
		return
	}
	for _, recipientID := range assignees {
		if recipientID == actorID {
			continue
		}
		notify(s, &model.Notification{
			RecipientID: recipientID,
			ActorID:     actorID,
			Verb:        "commented",
			Target:      item.Title,
		})
	}
}

func notifyAddedToProject(s *server.Server, actorID, recipientID int64, project *model.Project) {
	notify(s, &model.Notification{
		RecipientID: recipientID,
		ActorID:     actorID,
		Verb:        "added_to_project",
		Target:      project.Title,
	})
}
