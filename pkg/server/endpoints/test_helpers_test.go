package endpoints

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"boardhub/pkg/access"
	"boardhub/pkg/config"
	"boardhub/pkg/identity"
	"boardhub/pkg/recency"
	"boardhub/pkg/server"
)

// testEnv bundles a server wired entirely to mocks, plus the mocks
// themselves for setting expectations.
type testEnv struct {
	s *server.Server

	users         *MockUsersStore
	projects      *MockProjectsStore
	boards        *MockBoardsStore
	lists         *MockListsStore
	items         *MockItemsStore
	labels        *MockLabelsStore
	comments      *MockCommentsStore
	attachments   *MockAttachmentsStore
	notifications *MockNotificationsStore
	health        *MockHealthStore

	redis *miniredis.Miniredis
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	log, _ := logrustest.NewNullLogger()

	env := &testEnv{
		users:         &MockUsersStore{},
		projects:      &MockProjectsStore{},
		boards:        &MockBoardsStore{},
		lists:         &MockListsStore{},
		items:         &MockItemsStore{},
		labels:        &MockLabelsStore{},
		comments:      &MockCommentsStore{},
		attachments:   &MockAttachmentsStore{},
		notifications: &MockNotificationsStore{},
		health:        &MockHealthStore{},
		redis:         mr,
	}

	env.s = &server.Server{
		Config: &config.Config{
			RecentBoardsLimit: 4,
			SearchResultLimit: 2,
		},
		Log:                log,
		Evaluator:          access.NewEvaluator(env.projects),
		Resolver:           access.NewResolver(env.projects),
		Recency:            recency.NewTracker(client, log),
		UsersStore:         env.users,
		ProjectsStore:      env.projects,
		BoardsStore:        env.boards,
		ListsStore:         env.lists,
		ItemsStore:         env.items,
		LabelsStore:        env.labels,
		CommentsStore:      env.comments,
		AttachmentsStore:   env.attachments,
		NotificationsStore: env.notifications,
		HealthStore:        env.health,
	}
	return env
}

const testUserID int64 = 7

// authedRequest builds a request carrying an authenticated identity and
// the given mux path variables, as the middleware and router would.
func authedRequest(t *testing.T, method, target string, body interface{}, vars map[string]string) *http.Request {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	ident := &identity.Identity{UserID: testUserID, Email: "ada@example.com", FullName: "Ada Lovelace"}
	req = req.WithContext(identity.Set(req.Context(), ident))
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	return req
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), dst))
}
