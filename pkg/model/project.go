package model

import "time"

// Project represents a shared workspace that can own boards
type Project struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	OwnerID     int64     `gorm:"column:owner_id;not null"`
	Title       string    `gorm:"column:title;not null"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Project) TableName() string {
	return "projects"
}

// Access levels for project memberships. Admins may mutate the project and
// its membership; both levels read equally.
const (
	AccessLevelAdmin  = "admin"
	AccessLevelMember = "member"
)

// ProjectMembership grants a user membership in a project.
// Unique per (project, member).
type ProjectMembership struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	ProjectID   int64     `gorm:"column:project_id;not null;uniqueIndex:idx_project_member"`
	MemberID    int64     `gorm:"column:member_id;not null;uniqueIndex:idx_project_member"`
	AccessLevel string    `gorm:"column:access_level;not null;default:member"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (ProjectMembership) TableName() string {
	return "project_memberships"
}
