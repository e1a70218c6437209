package endpoints

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boardhub/pkg/model"
)

func TestListNotificationsNewestFirstWithUnreadCount(t *testing.T) {
	env := newTestEnv(t)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	env.notifications.On("ListForRecipient", testUserID).Return([]model.Notification{
		{ID: 2, RecipientID: testUserID, ActorID: 8, Verb: "assigned", Unread: true, CreatedAt: now},
		{ID: 1, RecipientID: testUserID, ActorID: 8, Verb: "commented", Unread: false, CreatedAt: now.Add(-time.Hour)},
	}, nil)
	env.notifications.On("UnreadCount", testUserID).Return(1, nil)

	recorder := httptest.NewRecorder()
	handleListNotifications(env.s)(recorder, authedRequest(t, http.MethodGet, "/notifications", nil, nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	var out notificationsListResponse
	decodeBody(t, recorder, &out)
	assert.Equal(t, 1, out.Unread)
	require.Len(t, out.Notifications, 2)
	assert.Equal(t, int64(2), out.Notifications[0].ID)
	assert.Equal(t, int64(1), out.Notifications[1].ID)
}

func TestMarkNotificationsRead(t *testing.T) {
	env := newTestEnv(t)

	env.notifications.On("MarkAllRead", testUserID).Return(nil)

	recorder := httptest.NewRecorder()
	handleMarkNotificationsRead(env.s)(recorder, authedRequest(t, http.MethodPost, "/notifications/read", nil, nil))

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Body.String())
	env.notifications.AssertExpectations(t)
}
