package permission

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/dbmetrics"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(dbmetrics.Wrap(db, nil)), mock
}

func TestRepository_ListByUser(t *testing.T) {
	repo, mock := newRepo(t)
	userID := uuid.New()

	mock.ExpectQuery("SELECT p.name FROM user_permissions up JOIN permissions p").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("book_room").AddRow("view_analytics"))

	perms, err := repo.ListByUser(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, []domain.Permission{domain.PermBookRoom, domain.PermViewAnalytics}, perms)
}

func TestRepository_ReplaceForUser(t *testing.T) {
	repo, mock := newRepo(t)
	userID := uuid.New()

	mock.ExpectExec("DELETE FROM user_permissions WHERE user_id = \\$1").
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO user_permissions \\(user_id,permission_id\\) SELECT \\$1::uuid, id FROM permissions WHERE name = ANY\\(\\$2\\)").
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.ReplaceForUser(context.Background(), userID, []domain.Permission{domain.PermBookRoom, domain.PermManageRooms})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ReplaceForUser_Empty(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec("DELETE FROM user_permissions").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.ReplaceForUser(context.Background(), uuid.New(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}
