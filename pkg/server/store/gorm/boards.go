package gorm

import (
	"errors"

	"gorm.io/gorm"

	"boardhub/pkg/model"
	"boardhub/pkg/server/store"
)

// Ensure BoardsStore implements store.BoardsStore
var _ store.BoardsStore = (*BoardsStore)(nil)

// BoardsStore implements store.BoardsStore using GORM
type BoardsStore struct {
	db *gorm.DB
}

// NewBoardsStore creates a new BoardsStore
func NewBoardsStore(db *gorm.DB) *BoardsStore {
	return &BoardsStore{db: db}
}

// Create inserts a board under the owner already set on it.
func (s *BoardsStore) Create(board *model.Board) error {
	return s.db.Create(board).Error
}

// Find retrieves a board by id.
func (s *BoardsStore) Find(id int64) (*model.Board, error) {
	var board model.Board
	tx := s.db.First(&board, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, tx.Error
	}
	return &board, nil
}

// FindMany retrieves the boards with the given ids.
func (s *BoardsStore) FindMany(ids []int64) ([]model.Board, error) {
	if len(ids) == 0 {
		return []model.Board{}, nil
	}
	var boards []model.Board
	tx := s.db.Where("id IN ?", ids).Find(&boards)
	return boards, tx.Error
}

func scopeVisible(db *gorm.DB, userID int64, projectIDs []int64) *gorm.DB {
	q := db.Where("owner_kind = ? AND owner_id = ?", model.OwnerKindUser, userID)
	if len(projectIDs) > 0 {
		q = q.Or("owner_kind = ? AND owner_id IN ?", model.OwnerKindProject, projectIDs)
	}
	return q
}

// ListVisible returns the user's own boards plus boards of the given
// projects.
func (s *BoardsStore) ListVisible(userID int64, projectIDs []int64) ([]model.Board, error) {
	var boards []model.Board
	tx := s.db.Where(scopeVisible(s.db, userID, projectIDs)).
		Order("created_at, id").
		Find(&boards)
	return boards, tx.Error
}

// Search returns visible boards whose title matches the query, capped at
// limit.
func (s *BoardsStore) Search(userID int64, projectIDs []int64, query string, limit int) ([]model.Board, error) {
	var boards []model.Board
	tx := s.db.Where(scopeVisible(s.db, userID, projectIDs)).
		Where("title ILIKE ?", "%"+query+"%").
		Order("created_at, id").
		Limit(limit).
		Find(&boards)
	return boards, tx.Error
}

// Update persists board field changes. Save writes all columns so cleared
// appearance fields are persisted as empty.
func (s *BoardsStore) Update(board *model.Board) error {
	return s.db.Save(board).Error
}

// Delete removes a board and everything on it.
func (s *BoardsStore) Delete(id int64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return deleteBoard(tx, id)
	})
}

// deleteBoard removes a board's items, lists, labels, stars and the board
// row itself inside the caller's transaction.
func deleteBoard(tx *gorm.DB, boardID int64) error {
	statements := []string{
		`DELETE FROM comments WHERE item_id IN
			(SELECT i.id FROM items i JOIN lists l ON l.id = i.list_id WHERE l.board_id = ?)`,
		`DELETE FROM attachments WHERE item_id IN
			(SELECT i.id FROM items i JOIN lists l ON l.id = i.list_id WHERE l.board_id = ?)`,
		`DELETE FROM item_assignments WHERE item_id IN
			(SELECT i.id FROM items i JOIN lists l ON l.id = i.list_id WHERE l.board_id = ?)`,
		`DELETE FROM item_labels WHERE item_id IN
			(SELECT i.id FROM items i JOIN lists l ON l.id = i.list_id WHERE l.board_id = ?)`,
		`DELETE FROM items WHERE list_id IN (SELECT id FROM lists WHERE board_id = ?)`,
		`DELETE FROM lists WHERE board_id = ?`,
		`DELETE FROM labels WHERE board_id = ?`,
		`DELETE FROM board_stars WHERE board_id = ?`,
		`DELETE FROM boards WHERE id = ?`,
	}
	for _, stmt := range statements {
		if err := tx.Exec(stmt, boardID).Error; err != nil {
			return err
		}
	}
	return nil
}

// ToggleStar flips the user's star on the board and reports the new state.
func (s *BoardsStore) ToggleStar(boardID, userID int64) (bool, error) {
	var starred bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("board_id = ? AND user_id = ?", boardID, userID).
			Delete(&model.BoardStar{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			starred = false
			return nil
		}
		starred = true
		return tx.Create(&model.BoardStar{BoardID: boardID, UserID: userID}).Error
	})
	return starred, err
}

// StarredBoardIDs returns ids of the boards the user has starred.
func (s *BoardsStore) StarredBoardIDs(userID int64) ([]int64, error) {
	var ids []int64
	tx := s.db.Raw(`
		SELECT board_id FROM board_stars WHERE user_id = ?
	`, userID).Scan(&ids)
	return ids, tx.Error
}
