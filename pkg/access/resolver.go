package access

// Scope describes which boards a listing may include. The store translates
// it into an owner filter.
type Scope struct {
	// OwnerUserID, when non-zero, includes boards owned directly by that
	// user.
	OwnerUserID int64

	// ProjectIDs includes boards owned by any of these projects.
	ProjectIDs []int64
}

// Empty reports whether the scope matches nothing.
func (s Scope) Empty() bool {
	return s.OwnerUserID == 0 && len(s.ProjectIDs) == 0
}

// Resolver builds ownership scopes for board listings.
type Resolver struct {
	memberships MembershipReader
}

// NewResolver creates a Resolver
func NewResolver(memberships MembershipReader) *Resolver {
	return &Resolver{memberships: memberships}
}

// BoardScope builds the filter for a board listing.
//
// With a project id, the scope is that project's boards only. The resolver
// does not enforce membership here; the caller is expected to run the
// Evaluator (or an equivalent membership check) before using the scope.
//
// Without one, the scope is the user's own boards plus the boards of every
// project the user is currently a member of. The membership set is read
// fresh on every call, never cached.
func (r *Resolver) BoardScope(userID int64, projectID *int64) (Scope, error) {
	if projectID != nil {
		return Scope{ProjectIDs: []int64{*projectID}}, nil
	}

	projectIDs, err := r.memberships.MemberProjectIDs(userID)
	if err != nil {
		return Scope{}, err
	}

	return Scope{OwnerUserID: userID, ProjectIDs: projectIDs}, nil
}
