package store

import "boardhub/pkg/model"

// ProjectMember is a membership row joined with the member's user record.
type ProjectMember struct {
	UserID      int64
	Email       string
	FullName    string
	AccessLevel string
}

// ProjectsStore abstracts project and membership operations. Its membership
// read methods satisfy access.MembershipReader.
type ProjectsStore interface {
	// Create inserts a project and makes creatorID its first admin member.
	Create(project *model.Project, creatorID int64) error

	// Find retrieves a project by id. Returns ErrNotFound when no such
	// project exists.
	Find(id int64) (*model.Project, error)

	// ListForUser returns the projects the user is a member of.
	ListForUser(userID int64) ([]model.Project, error)

	// Update persists project field changes.
	Update(project *model.Project) error

	// Delete removes a project, its memberships and its boards.
	Delete(id int64) error

	// IsProjectMember reports whether the user belongs to the project.
	IsProjectMember(projectID, userID int64) bool

	// IsProjectAdmin reports whether the user is an admin member.
	IsProjectAdmin(projectID, userID int64) bool

	// MemberProjectIDs returns ids of every project the user belongs to.
	MemberProjectIDs(userID int64) ([]int64, error)

	// ListMembers returns the project's members with user details.
	ListMembers(projectID int64) ([]ProjectMember, error)

	// AddMember adds a user with the given access level. Adding an
	// existing member updates the level instead.
	AddMember(projectID, userID int64, accessLevel string) error

	// RemoveMember drops a user's membership. Removing the last admin is
	// rejected with a ValidationError.
	RemoveMember(projectID, userID int64) error
}
