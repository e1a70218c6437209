// Package access implements the board authorization model.
//
// Two pieces live here:
//
//   - Evaluator: the CanView predicate gating every board-scoped resource.
//     Lists, items, labels, comments and attachments all inherit their
//     board's policy through the parent chain, so this is the single place
//     visibility is decided.
//   - Resolver: builds the ownership scope for board listings, turning
//     "boards visible to user U" or "boards of project P" into a filter the
//     store applies.
//
// Both are pure reads over a narrow MembershipReader interface; neither
// mutates anything, and the membership set is looked up fresh on every call
// so decisions always reflect current state.
//
// Boards owned by an unknown owner kind are never viewable: a corrupt
// owner_kind must fail closed, not default to public.
package access
