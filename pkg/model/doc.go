// Package model defines the database models for boardhub.
//
// This package contains GORM models that map to the boardhub PostgreSQL
// schema.
//
// # Core Models
//
//   - User: account identities, keyed by unique email
//   - Project: a shared workspace owned by a user
//   - ProjectMembership: (project, member, access_level) grants
//   - Board: a kanban board owned by either a user or a project
//   - List: an ordered column on a board
//   - Item: an ordered card in a list, with assignees and labels
//   - Label: a board-scoped tag
//   - Comment: an authored note on an item
//   - Attachment: opaque file metadata attached to an item
//   - Notification: per-user activity records with an unread flag
//
// Board ownership is polymorphic: the (owner_id, owner_kind) pair points at
// either a users row or a projects row. OwnerKind is the discriminator and is
// generated with enumer so it round-trips through SQL and JSON as a string.
package model
