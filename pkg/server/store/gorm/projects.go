package gorm

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"boardhub/pkg/model"
	"boardhub/pkg/server/store"
)

// Ensure ProjectsStore implements store.ProjectsStore
var _ store.ProjectsStore = (*ProjectsStore)(nil)

// ProjectsStore implements store.ProjectsStore using GORM
type ProjectsStore struct {
	db *gorm.DB
}

// NewProjectsStore creates a new ProjectsStore
func NewProjectsStore(db *gorm.DB) *ProjectsStore {
	return &ProjectsStore{db: db}
}

// Create inserts a project and makes creatorID its first admin member.
func (s *ProjectsStore) Create(project *model.Project, creatorID int64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}
		return tx.Create(&model.ProjectMembership{
			ProjectID:   project.ID,
			MemberID:    creatorID,
			AccessLevel: model.AccessLevelAdmin,
		}).Error
	})
}

// Find retrieves a project by id.
func (s *ProjectsStore) Find(id int64) (*model.Project, error) {
	var project model.Project
	tx := s.db.First(&project, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, tx.Error
	}
	return &project, nil
}

// ListForUser returns the projects the user is a member of.
func (s *ProjectsStore) ListForUser(userID int64) ([]model.Project, error) {
	var projects []model.Project
	tx := s.db.Raw(`
		SELECT p.*
		FROM projects p
		JOIN project_memberships m ON m.project_id = p.id
		WHERE m.member_id = ?
		ORDER BY p.title
	`, userID).Scan(&projects)
	return projects, tx.Error
}

// Update persists project field changes.
func (s *ProjectsStore) Update(project *model.Project) error {
	return s.db.Save(project).Error
}

// Delete removes a project, its memberships and its boards.
func (s *ProjectsStore) Delete(id int64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		boardIDs, err := projectBoardIDs(tx, id)
		if err != nil {
			return err
		}
		for _, boardID := range boardIDs {
			if err := deleteBoard(tx, boardID); err != nil {
				return err
			}
		}
		if err := tx.Where("project_id = ?", id).Delete(&model.ProjectMembership{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Project{}, id).Error
	})
}

func projectBoardIDs(tx *gorm.DB, projectID int64) ([]int64, error) {
	var ids []int64
	err := tx.Raw(`
		SELECT id FROM boards WHERE owner_id = ? AND owner_kind = ?
	`, projectID, model.OwnerKindProject).Scan(&ids).Error
	return ids, err
}

// IsProjectMember reports whether the user belongs to the project.
func (s *ProjectsStore) IsProjectMember(projectID, userID int64) bool {
	var count int64
	s.db.Model(&model.ProjectMembership{}).
		Where("project_id = ? AND member_id = ?", projectID, userID).
		Count(&count)
	return count > 0
}

// IsProjectAdmin reports whether the user is an admin member.
func (s *ProjectsStore) IsProjectAdmin(projectID, userID int64) bool {
	var count int64
	s.db.Model(&model.ProjectMembership{}).
		Where("project_id = ? AND member_id = ? AND access_level = ?", projectID, userID, model.AccessLevelAdmin).
		Count(&count)
	return count > 0
}

// MemberProjectIDs returns ids of every project the user belongs to.
func (s *ProjectsStore) MemberProjectIDs(userID int64) ([]int64, error) {
	var ids []int64
	tx := s.db.Raw(`
		SELECT project_id FROM project_memberships WHERE member_id = ?
	`, userID).Scan(&ids)
	return ids, tx.Error
}

// ListMembers returns the project's members with user details.
func (s *ProjectsStore) ListMembers(projectID int64) ([]store.ProjectMember, error) {
	type memberRow struct {
		UserID      int64
		Email       string
		FirstName   string
		LastName    string
		AccessLevel string
	}

	var rows []memberRow
	tx := s.db.Raw(`
		SELECT m.member_id AS user_id, u.email, u.first_name, u.last_name, m.access_level
		FROM project_memberships m
		JOIN users u ON u.id = m.member_id
		WHERE m.project_id = ?
		ORDER BY u.email
	`, projectID).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	members := make([]store.ProjectMember, 0, len(rows))
	for _, row := range rows {
		members = append(members, store.ProjectMember{
			UserID:      row.UserID,
			Email:       row.Email,
			FullName:    model.User{FirstName: row.FirstName, LastName: row.LastName}.FullName(),
			AccessLevel: row.AccessLevel,
		})
	}
	return members, nil
}

// AddMember adds a user with the given access level, or updates the level
// for an existing member.
func (s *ProjectsStore) AddMember(projectID, userID int64, accessLevel string) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "member_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"access_level"}),
	}).Create(&model.ProjectMembership{
		ProjectID:   projectID,
		MemberID:    userID,
		AccessLevel: accessLevel,
	}).Error
}

// RemoveMember drops a user's membership. The last admin can't leave.
func (s *ProjectsStore) RemoveMember(projectID, userID int64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var membership model.ProjectMembership
		err := tx.Where("project_id = ? AND member_id = ?", projectID, userID).First(&membership).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return store.ErrNotFound
			}
			return err
		}

		if membership.AccessLevel == model.AccessLevelAdmin {
			var admins int64
			tx.Model(&model.ProjectMembership{}).
				Where("project_id = ? AND access_level = ?", projectID, model.AccessLevelAdmin).
				Count(&admins)
			if admins <= 1 {
				return store.Invalid("user_id", "cannot remove the last admin")
			}
		}

		return tx.Where("project_id = ? AND member_id = ?", projectID, userID).
			Delete(&model.ProjectMembership{}).Error
	})
}
