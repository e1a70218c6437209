package access

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boardhub/pkg/model"
)

func TestBoardScopeWithProject(t *testing.T) {
	memberships := NewMockMembershipReader()
	r := NewResolver(memberships)

	projectID := int64(42)
	scope, err := r.BoardScope(7, &projectID)
	require.NoError(t, err)

	assert.Zero(t, scope.OwnerUserID)
	assert.Equal(t, []int64{42}, scope.ProjectIDs)
	// Scope construction never consults memberships; enforcement is the
	// caller's job.
	memberships.AssertNotCalled(t, "MemberProjectIDs")
}

func TestBoardScopeWithoutProject(t *testing.T) {
	memberships := NewMockMembershipReader()
	memberships.On("MemberProjectIDs", int64(7)).Return([]int64{3, 5}, nil)

	r := NewResolver(memberships)
	scope, err := r.BoardScope(7, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(7), scope.OwnerUserID)
	assert.Equal(t, []int64{3, 5}, scope.ProjectIDs)
	assert.False(t, scope.Empty())
}

func TestBoardScopeReadsMembershipsFresh(t *testing.T) {
	// A membership added between calls shows up on the next call.
	memberships := newFakeMemberships()
	r := NewResolver(memberships)

	scope, err := r.BoardScope(7, nil)
	require.NoError(t, err)
	assert.Empty(t, scope.ProjectIDs)

	memberships.add(42, 7)

	scope, err = r.BoardScope(7, nil)
	require.NoError(t, err)
	assert.Equal(t, []int64{42}, scope.ProjectIDs)
}

// applyScope is the reference filter: the boards a scope admits.
func applyScope(scope Scope, boards []model.Board) []int64 {
	projects := make(map[int64]bool, len(scope.ProjectIDs))
	for _, p := range scope.ProjectIDs {
		projects[p] = true
	}

	var ids []int64
	for _, b := range boards {
		switch b.OwnerKind {
		case model.OwnerKindUser:
			if scope.OwnerUserID != 0 && b.OwnerID == scope.OwnerUserID {
				ids = append(ids, b.ID)
			}
		case model.OwnerKindProject:
			if projects[b.OwnerID] {
				ids = append(ids, b.ID)
			}
		}
	}
	return ids
}

// The user scope must admit exactly the union of the user's own boards and
// the boards of projects the user belongs to, over randomized membership
// graphs.
func TestBoardScopeMatchesVisibilityOnRandomGraphs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	const (
		users    = 6
		projects = 5
		boards   = 40
		rounds   = 25
	)

	for round := 0; round < rounds; round++ {
		memberships := newFakeMemberships()
		for p := int64(1); p <= projects; p++ {
			for u := int64(1); u <= users; u++ {
				if rng.Intn(3) == 0 {
					memberships.add(p, u)
				}
			}
		}

		var all []model.Board
		for i := int64(1); i <= boards; i++ {
			b := model.Board{ID: i}
			if rng.Intn(2) == 0 {
				b.OwnerKind = model.OwnerKindUser
				b.OwnerID = int64(rng.Intn(users)) + 1
			} else {
				b.OwnerKind = model.OwnerKindProject
				b.OwnerID = int64(rng.Intn(projects)) + 1
			}
			all = append(all, b)
		}

		resolver := NewResolver(memberships)
		evaluator := NewEvaluator(memberships)

		for u := int64(1); u <= users; u++ {
			scope, err := resolver.BoardScope(u, nil)
			require.NoError(t, err)

			got := applyScope(scope, all)

			var want []int64
			for i := range all {
				if evaluator.CanView(u, &all[i]) {
					want = append(want, all[i].ID)
				}
			}

			sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
			sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
			assert.Equal(t, want, got, "round %d user %d", round, u)
		}
	}
}
