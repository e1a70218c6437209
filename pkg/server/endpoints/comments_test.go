package endpoints

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"boardhub/pkg/model"
)

func TestCreateCommentRendersMarkdown(t *testing.T) {
	env := newTestEnv(t)
	item, _, _ := seedItemChain(env)

	env.comments.On("Create", mock.MatchedBy(func(c *model.Comment) bool {
		return c.ItemID == item.ID && c.AuthorID == testUserID
	})).Return(nil)
	env.items.On("AssigneeIDs", item.ID).Return([]int64{}, nil)

	recorder := httptest.NewRecorder()
	payload := map[string]interface{}{"body": "this is **important**"}
	handleCreateComment(env.s)(recorder, authedRequest(t, http.MethodPost, "/items/3/comments", payload, map[string]string{"id": "3"}))

	require.Equal(t, http.StatusCreated, recorder.Code)
	var out commentResponse
	decodeBody(t, recorder, &out)
	assert.Equal(t, "this is **important**", out.Body)
	assert.Contains(t, out.BodyHTML, "<strong>important</strong>")
}

func TestCreateCommentEscapesRawHTML(t *testing.T) {
	env := newTestEnv(t)
	item, _, _ := seedItemChain(env)

	env.comments.On("Create", mock.Anything).Return(nil)
	env.items.On("AssigneeIDs", item.ID).Return([]int64{}, nil)

	recorder := httptest.NewRecorder()
	payload := map[string]interface{}{"body": "<script>alert(1)</script>"}
	handleCreateComment(env.s)(recorder, authedRequest(t, http.MethodPost, "/items/3/comments", payload, map[string]string{"id": "3"}))

	require.Equal(t, http.StatusCreated, recorder.Code)
	var out commentResponse
	decodeBody(t, recorder, &out)
	assert.NotContains(t, out.BodyHTML, "<script>")
}

func TestCreateCommentNotifiesAssigneesExceptAuthor(t *testing.T) {
	env := newTestEnv(t)
	item, _, _ := seedItemChain(env)

	env.comments.On("Create", mock.Anything).Return(nil)
	env.items.On("AssigneeIDs", item.ID).Return([]int64{testUserID, 8}, nil)
	env.notifications.On("Create", mock.MatchedBy(func(n *model.Notification) bool {
		return n.RecipientID == 8 && n.Verb == "commented"
	})).Return(nil)

	recorder := httptest.NewRecorder()
	payload := map[string]interface{}{"body": "done"}
	handleCreateComment(env.s)(recorder, authedRequest(t, http.MethodPost, "/items/3/comments", payload, map[string]string{"id": "3"}))

	require.Equal(t, http.StatusCreated, recorder.Code)
	env.notifications.AssertNumberOfCalls(t, "Create", 1)
}

func TestUpdateCommentAuthorOnly(t *testing.T) {
	env := newTestEnv(t)
	seedItemChain(env)

	theirs := &model.Comment{ID: 12, ItemID: 3, AuthorID: 8, Body: "hi"}
	env.comments.On("Find", int64(12)).Return(theirs, nil)

	recorder := httptest.NewRecorder()
	payload := map[string]interface{}{"body": "edited"}
	handleUpdateComment(env.s)(recorder, authedRequest(t, http.MethodPut, "/comments/12", payload, map[string]string{"id": "12"}))

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	env.comments.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUpdateOwnComment(t *testing.T) {
	env := newTestEnv(t)
	seedItemChain(env)

	mine := &model.Comment{ID: 12, ItemID: 3, AuthorID: testUserID, Body: "hi"}
	env.comments.On("Find", int64(12)).Return(mine, nil)
	env.comments.On("Update", mine).Return(nil)

	recorder := httptest.NewRecorder()
	payload := map[string]interface{}{"body": "edited"}
	handleUpdateComment(env.s)(recorder, authedRequest(t, http.MethodPut, "/comments/12", payload, map[string]string{"id": "12"}))

	require.Equal(t, http.StatusOK, recorder.Code)
	var out commentResponse
	decodeBody(t, recorder, &out)
	assert.Equal(t, "edited", out.Body)
}

func TestDeleteCommentAuthorOnly(t *testing.T) {
	env := newTestEnv(t)
	seedItemChain(env)

	theirs := &model.Comment{ID: 12, ItemID: 3, AuthorID: 8, Body: "hi"}
	env.comments.On("Find", int64(12)).Return(theirs, nil)

	recorder := httptest.NewRecorder()
	handleDeleteComment(env.s)(recorder, authedRequest(t, http.MethodDelete, "/comments/12", nil, map[string]string{"id": "12"}))

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	env.comments.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestDeleteOwnComment(t *testing.T) {
	env := newTestEnv(t)
	seedItemChain(env)

	mine := &model.Comment{ID: 12, ItemID: 3, AuthorID: testUserID, Body: "hi"}
	env.comments.On("Find", int64(12)).Return(mine, nil)
	env.comments.On("Delete", int64(12)).Return(nil)

	recorder := httptest.NewRecorder()
	handleDeleteComment(env.s)(recorder, authedRequest(t, http.MethodDelete, "/comments/12", nil, map[string]string{"id": "12"}))

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	env.comments.AssertExpectations(t)
}
