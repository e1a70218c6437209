package gorm

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"boardhub/pkg/server/store"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestUsersFindByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	users := NewUsersStore(db)

	rows := sqlmock.NewRows([]string{"id", "email", "first_name", "last_name"}).
		AddRow(3, "ada@example.com", "Ada", "Lovelace")
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("ada@example.com").
		WillReturnRows(rows)

	user, err := users.FindByEmail("ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
	assert.Equal(t, "Ada Lovelace", user.FullName())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsersFindByEmailNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	users := NewUsersStore(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}))

	_, err := users.FindByEmail("ghost@example.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestBoardsSearchScopesAndCaps(t *testing.T) {
	db, mock := newMockDB(t)
	boards := NewBoardsStore(db)

	rows := sqlmock.NewRows([]string{"id", "title", "owner_id", "owner_kind"}).
		AddRow(1, "Roadmap", 7, "user").
		AddRow(2, "Roadmap 2026", 4, "project")
	mock.ExpectQuery(`SELECT \* FROM "boards" WHERE .+title ILIKE .+ ORDER BY created_at, id LIMIT 2`).
		WithArgs("user", 7, "project", 4, 9, "%road%").
		WillReturnRows(rows)

	found, err := boards.Search(7, []int64{4, 9}, "road", 2)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Roadmap", found[0].Title)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemsSearchScopesAndCaps(t *testing.T) {
	db, mock := newMockDB(t)
	items := NewItemsStore(db)

	rows := sqlmock.NewRows([]string{"id", "list_id", "title"}).
		AddRow(3, 5, "Ship it").
		AddRow(4, 5, "Shipping labels")
	mock.ExpectQuery(`(?s)SELECT i\.\*\s+FROM items i\s+JOIN lists l ON l\.id = i\.list_id\s+JOIN boards b ON b\.id = l\.board_id\s+WHERE .+i\.title ILIKE .+ORDER BY i\.created_at, i\.id\s+LIMIT`).
		WithArgs("user", 7, "project", 4, 9, "%ship%", 2).
		WillReturnRows(rows)

	found, err := items.Search(7, []int64{4, 9}, "ship", 2)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Ship it", found[0].Title)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleStarAddsWhenAbsent(t *testing.T) {
	db, mock := newMockDB(t)
	boards := NewBoardsStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "board_stars"`).
		WithArgs(10, 7).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "board_stars"`).
		WithArgs(7, 10).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	starred, err := boards.ToggleStar(10, 7)
	require.NoError(t, err)
	assert.True(t, starred)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleStarRemovesWhenPresent(t *testing.T) {
	db, mock := newMockDB(t)
	boards := NewBoardsStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "board_stars"`).
		WithArgs(10, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	starred, err := boards.ToggleStar(10, 7)
	require.NoError(t, err)
	assert.False(t, starred)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationsMarkAllRead(t *testing.T) {
	db, mock := newMockDB(t)
	notifications := NewNotificationsStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "notifications" SET "unread"=\$1 WHERE recipient_id = \$2 AND unread`).
		WithArgs(false, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	require.NoError(t, notifications.MarkAllRead(7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthCheckConnectivity(t *testing.T) {
	db, mock := newMockDB(t)
	health := NewHealthStore(db)

	mock.ExpectExec(`SELECT 1`).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, health.CheckConnectivity())
	assert.NoError(t, mock.ExpectationsWereMet())
}
