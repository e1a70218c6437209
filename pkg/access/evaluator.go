package access

import (
	"boardhub/pkg/model"
)

// MembershipReader is the read surface the authorization model needs.
// Implemented by the gorm membership store.
type MembershipReader interface {
	// IsProjectMember checks whether a user holds any membership in a
	// project, regardless of access level.
	IsProjectMember(projectID, userID int64) bool

	// MemberProjectIDs returns the ids of every project the user is
	// currently a member of.
	MemberProjectIDs(userID int64) ([]int64, error)
}

// Evaluator decides board visibility.
type Evaluator struct {
	memberships MembershipReader
}

// NewEvaluator creates an Evaluator
func NewEvaluator(memberships MembershipReader) *Evaluator {
	return &Evaluator{memberships: memberships}
}

// CanView reports whether the user may see the board.
//
// Project-owned boards are visible to any member of the project; the access
// level does not matter for reads. User-owned boards are visible to their
// owner only, with no sharing or delegation.
func (e *Evaluator) CanView(userID int64, board *model.Board) bool {
	switch board.OwnerKind {
	case model.OwnerKindProject:
		return e.memberships.IsProjectMember(board.OwnerID, userID)
	case model.OwnerKindUser:
		return board.OwnerID == userID
	default:
		// A board with a corrupt owner kind must never be treated as
		// public: fail closed.
		return false
	}
}

// CanEditComment reports whether the user may edit or delete the comment.
// Only the author may; reading follows the board chain via CanView instead.
func CanEditComment(userID int64, comment *model.Comment) bool {
	return comment.AuthorID == userID
}
