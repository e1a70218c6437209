package endpoints

import (
	"github.com/stretchr/testify/mock"

	"boardhub/pkg/model"
	"boardhub/pkg/server/store"
)

// MockUsersStore implements store.UsersStore for testing using testify/mock
type MockUsersStore struct {
	mock.Mock
}

func (m *MockUsersStore) FindByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) FindByID(id int64) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) Create(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

// MockProjectsStore implements store.ProjectsStore for testing using
// testify/mock. It also serves as the access.MembershipReader behind the
// evaluator and resolver in tests.
type MockProjectsStore struct {
	mock.Mock
}

func (m *MockProjectsStore) Create(project *model.Project, creatorID int64) error {
	args := m.Called(project, creatorID)
	return args.Error(0)
}

func (m *MockProjectsStore) Find(id int64) (*model.Project, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectsStore) ListForUser(userID int64) ([]model.Project, error) {
	args := m.Called(userID)
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectsStore) Update(project *model.Project) error {
	args := m.Called(project)
	return args.Error(0)
}

func (m *MockProjectsStore) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProjectsStore) IsProjectMember(projectID, userID int64) bool {
	args := m.Called(projectID, userID)
	return args.Bool(0)
}

func (m *MockProjectsStore) IsProjectAdmin(projectID, userID int64) bool {
	args := m.Called(projectID, userID)
	return args.Bool(0)
}

func (m *MockProjectsStore) MemberProjectIDs(userID int64) ([]int64, error) {
	args := m.Called(userID)
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockProjectsStore) ListMembers(projectID int64) ([]store.ProjectMember, error) {
	args := m.Called(projectID)
	return args.Get(0).([]store.ProjectMember), args.Error(1)
}

func (m *MockProjectsStore) AddMember(projectID, userID int64, accessLevel string) error {
	args := m.Called(projectID, userID, accessLevel)
	return args.Error(0)
}

func (m *MockProjectsStore) RemoveMember(projectID, userID int64) error {
	args := m.Called(projectID, userID)
	return args.Error(0)
}

// MockBoardsStore implements store.BoardsStore for testing using testify/mock
type MockBoardsStore struct {
	mock.Mock
}

func (m *MockBoardsStore) Create(board *model.Board) error {
	args := m.Called(board)
	return args.Error(0)
}

func (m *MockBoardsStore) Find(id int64) (*model.Board, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Board), args.Error(1)
}

func (m *MockBoardsStore) FindMany(ids []int64) ([]model.Board, error) {
	args := m.Called(ids)
	return args.Get(0).([]model.Board), args.Error(1)
}

func (m *MockBoardsStore) ListVisible(userID int64, projectIDs []int64) ([]model.Board, error) {
	args := m.Called(userID, projectIDs)
	return args.Get(0).([]model.Board), args.Error(1)
}

func (m *MockBoardsStore) Search(userID int64, projectIDs []int64, query string, limit int) ([]model.Board, error) {
	args := m.Called(userID, projectIDs, query, limit)
	return args.Get(0).([]model.Board), args.Error(1)
}

func (m *MockBoardsStore) Update(board *model.Board) error {
	args := m.Called(board)
	return args.Error(0)
}

func (m *MockBoardsStore) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockBoardsStore) ToggleStar(boardID, userID int64) (bool, error) {
	args := m.Called(boardID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBoardsStore) StarredBoardIDs(userID int64) ([]int64, error) {
	args := m.Called(userID)
	return args.Get(0).([]int64), args.Error(1)
}

// MockListsStore implements store.ListsStore for testing using testify/mock
type MockListsStore struct {
	mock.Mock
}

func (m *MockListsStore) Create(list *model.List) error {
	args := m.Called(list)
	return args.Error(0)
}

func (m *MockListsStore) Find(id int64) (*model.List, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.List), args.Error(1)
}

func (m *MockListsStore) ListForBoard(boardID int64) ([]model.List, error) {
	args := m.Called(boardID)
	return args.Get(0).([]model.List), args.Error(1)
}

func (m *MockListsStore) Update(list *model.List) error {
	args := m.Called(list)
	return args.Error(0)
}

func (m *MockListsStore) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockItemsStore implements store.ItemsStore for testing using testify/mock
type MockItemsStore struct {
	mock.Mock
}

func (m *MockItemsStore) Create(item *model.Item) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockItemsStore) Find(id int64) (*model.Item, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func (m *MockItemsStore) ListForList(listID int64) ([]model.Item, error) {
	args := m.Called(listID)
	return args.Get(0).([]model.Item), args.Error(1)
}

func (m *MockItemsStore) ListForBoard(boardID int64) ([]model.Item, error) {
	args := m.Called(boardID)
	return args.Get(0).([]model.Item), args.Error(1)
}

func (m *MockItemsStore) Search(userID int64, projectIDs []int64, query string, limit int) ([]model.Item, error) {
	args := m.Called(userID, projectIDs, query, limit)
	return args.Get(0).([]model.Item), args.Error(1)
}

func (m *MockItemsStore) Update(item *model.Item) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockItemsStore) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockItemsStore) AssigneeIDs(itemID int64) ([]int64, error) {
	args := m.Called(itemID)
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockItemsStore) ToggleAssignee(itemID, userID int64) (bool, error) {
	args := m.Called(itemID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockItemsStore) LabelIDs(itemID int64) ([]int64, error) {
	args := m.Called(itemID)
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockItemsStore) ToggleLabel(itemID, labelID int64) (bool, error) {
	args := m.Called(itemID, labelID)
	return args.Bool(0), args.Error(1)
}

// MockLabelsStore implements store.LabelsStore for testing using testify/mock
type MockLabelsStore struct {
	mock.Mock
}

func (m *MockLabelsStore) Create(label *model.Label) error {
	args := m.Called(label)
	return args.Error(0)
}

func (m *MockLabelsStore) Find(id int64) (*model.Label, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Label), args.Error(1)
}

func (m *MockLabelsStore) ListForBoard(boardID int64) ([]model.Label, error) {
	args := m.Called(boardID)
	return args.Get(0).([]model.Label), args.Error(1)
}

func (m *MockLabelsStore) Update(label *model.Label) error {
	args := m.Called(label)
	return args.Error(0)
}

func (m *MockLabelsStore) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockCommentsStore implements store.CommentsStore for testing using testify/mock
type MockCommentsStore struct {
	mock.Mock
}

func (m *MockCommentsStore) Create(comment *model.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentsStore) Find(id int64) (*model.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentsStore) ListForItem(itemID int64) ([]model.Comment, error) {
	args := m.Called(itemID)
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockCommentsStore) Update(comment *model.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentsStore) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockAttachmentsStore implements store.AttachmentsStore for testing using testify/mock
type MockAttachmentsStore struct {
	mock.Mock
}

func (m *MockAttachmentsStore) Create(attachment *model.Attachment) error {
	args := m.Called(attachment)
	return args.Error(0)
}

func (m *MockAttachmentsStore) Find(id int64) (*model.Attachment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attachment), args.Error(1)
}

func (m *MockAttachmentsStore) ListForItem(itemID int64) ([]model.Attachment, error) {
	args := m.Called(itemID)
	return args.Get(0).([]model.Attachment), args.Error(1)
}

func (m *MockAttachmentsStore) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockNotificationsStore implements store.NotificationsStore for testing using testify/mock
type MockNotificationsStore struct {
	mock.Mock
}

func (m *MockNotificationsStore) Create(notification *model.Notification) error {
	args := m.Called(notification)
	return args.Error(0)
}

func (m *MockNotificationsStore) ListForRecipient(userID int64) ([]model.Notification, error) {
	args := m.Called(userID)
	return args.Get(0).([]model.Notification), args.Error(1)
}

func (m *MockNotificationsStore) MarkAllRead(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockNotificationsStore) UnreadCount(userID int64) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

// MockHealthStore implements store.HealthStore for testing using testify/mock
type MockHealthStore struct {
	mock.Mock
}

func (m *MockHealthStore) CheckConnectivity() error {
	args := m.Called()
	return args.Error(0)
}
