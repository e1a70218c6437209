package access

import (
	"github.com/stretchr/testify/mock"
)

// MockMembershipReader implements MembershipReader for testing using testify/mock
type MockMembershipReader struct {
	mock.Mock
}

func NewMockMembershipReader() *MockMembershipReader {
	return &MockMembershipReader{}
}

func (m *MockMembershipReader) IsProjectMember(projectID, userID int64) bool {
	args := m.Called(projectID, userID)
	return args.Bool(0)
}

func (m *MockMembershipReader) MemberProjectIDs(userID int64) ([]int64, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

// fakeMemberships is a map-backed MembershipReader for the randomized
// resolver tests, where mock expectations would be unwieldy.
type fakeMemberships struct {
	// projects[p] is the set of member user ids
	projects map[int64]map[int64]bool
}

func newFakeMemberships() *fakeMemberships {
	return &fakeMemberships{projects: map[int64]map[int64]bool{}}
}

func (f *fakeMemberships) add(projectID, userID int64) {
	if f.projects[projectID] == nil {
		f.projects[projectID] = map[int64]bool{}
	}
	f.projects[projectID][userID] = true
}

func (f *fakeMemberships) IsProjectMember(projectID, userID int64) bool {
	return f.projects[projectID][userID]
}

func (f *fakeMemberships) MemberProjectIDs(userID int64) ([]int64, error) {
	var ids []int64
	for p, members := range f.projects {
		if members[userID] {
			ids = append(ids, p)
		}
	}
	return ids, nil
}
