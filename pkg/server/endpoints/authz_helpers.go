package endpoints

import (
	"boardhub/pkg/model"
	"boardhub/pkg/server"
	"boardhub/pkg/server/store"
)

// visibleBoard loads a board the user can view. Boards the user can't see
// read as not found so their existence never leaks.
func visibleBoard(s *server.Server, userID, boardID int64) (*model.Board, error) {
	board, err := s.BoardsStore.Find(boardID)
	if err != nil {
		return nil, err
	}
	if !s.Evaluator.CanView(userID, board) {
		return nil, store.ErrNotFound
	}
	return board, nil
}

// canDeleteBoard reports whether the user may delete the board: the owning
// user for personal boards, a project admin for project boards.
func canDeleteBoard(s *server.Server, userID int64, board *model.Board) bool {
	switch board.OwnerKind {
	case model.OwnerKindUser:
		return board.OwnerID == userID
	case model.OwnerKindProject:
		return s.ProjectsStore.IsProjectAdmin(board.OwnerID, userID)
	default:
		return false
	}
}

// visibleList loads a list along with its board, applying board visibility.
func visibleList(s *server.Server, userID, listID int64) (*model.List, *model.Board, error) {
	list, err := s.ListsStore.Find(listID)
	if err != nil {
		return nil, nil, err
	}
	board, err := visibleBoard(s, userID, list.BoardID)
	if err != nil {
		return nil, nil, err
	}
	return list, board, nil
}

// visibleItem loads an item along with its list and board, applying board
// visibility.
func visibleItem(s *server.Server, userID, itemID int64) (*model.Item, *model.List, *model.Board, error) {
	item, err := s.ItemsStore.Find(itemID)
	if err != nil {
		return nil, nil, nil, err
	}
	list, board, err := visibleList(s, userID, item.ListID)
	if err != nil {
		return nil, nil, nil, err
	}
	return item, list, board, nil
}

// visibleLabel loads a label along with its board, applying board
// visibility.
func visibleLabel(s *server.Server, userID, labelID int64) (*model.Label, *model.Board, error) {
	label, err := s.LabelsStore.Find(labelID)
	if err != nil {
		return nil, nil, err
	}
	board, err := visibleBoard(s, userID, label.BoardID)
	if err != nil {
		return nil, nil, err
	}
	return label, board, nil
}
