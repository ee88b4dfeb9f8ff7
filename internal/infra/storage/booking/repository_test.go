package booking

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomBooking/pkg/pgerr"
)

func newRepo(t *testing.T) (*Repository, *dbmetrics.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	wrapped := dbmetrics.Wrap(db, nil)
	return NewRepository(wrapped), wrapped, mock
}

func newBooking() *domain.Booking {
	start := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
	return &domain.Booking{
		RoomID:         uuid.New(),
		UserID:         uuid.New(),
		Title:          "Planning",
		StartTime:      start,
		EndTime:        start.Add(time.Hour),
		AttendeesCount: 4,
		Status:         domain.StatusConfirmed,
	}
}

func TestRepository_Create(t *testing.T) {
	repo, _, mock := newRepo(t)
	b := newBooking()
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(b.RoomID, b.UserID, b.Title, nil, b.StartTime, b.EndTime, b.AttendeesCount, b.Status).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(id.String(), now, now))

	created, err := repo.Create(context.Background(), b)

	require.NoError(t, err)
	assert.Equal(t, id, created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ConstraintViolations(t *testing.T) {
	tests := []struct {
		name    string
		pqErr   *pq.Error
		wantErr error
	}{
		{
			name:    "overlapping booking",
			pqErr:   &pq.Error{Code: pgerr.CodeExclusionViolation, Constraint: "bookings_no_overlap"},
			wantErr: ErrTimeConflict,
		},
		{
			name:    "overlapping block",
			pqErr:   &pq.Error{Code: pgerr.CodeExclusionViolation, Constraint: blockOverlapConstraint},
			wantErr: ErrRoomBlocked,
		},
		{
			name:    "unknown room",
			pqErr:   &pq.Error{Code: pgerr.CodeForeignKeyViolation},
			wantErr: ErrReferenceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, mock := newRepo(t)

			mock.ExpectQuery("INSERT INTO bookings").WillReturnError(tt.pqErr)

			_, err := repo.Create(context.Background(), newBooking())

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRepository_Create_KeepsSerializationFailureInChain(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(&pq.Error{Code: pgerr.CodeSerializationFailure})

	_, err := repo.Create(context.Background(), newBooking())

	assert.ErrorIs(t, err, ErrExecQuery)
	assert.Equal(t, pgerr.CodeSerializationFailure, pgerr.Code(err))
}

func TestRepository_GetByID(t *testing.T) {
	repo, _, mock := newRepo(t)
	b := newBooking()
	id := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows(expandedColumns).AddRow(
		id.String(), b.RoomID.String(), b.UserID.String(), b.Title, nil,
		b.StartTime, b.EndTime, b.AttendeesCount, "confirmed", nil, now, now,
		"Sala Azul", 2, 8, "{projector,tv}", "active", nil,
		"ana@example.com", "Ana", "Sales",
	)
	mock.ExpectQuery("SELECT (.+) FROM bookings b JOIN rooms r").
		WithArgs(id).
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, domain.StatusConfirmed, got.Status)
	require.NotNil(t, got.Room)
	assert.Equal(t, "Sala Azul", got.Room.Name)
	assert.Equal(t, []string{"projector", "tv"}, got.Room.Facilities)
	require.NotNil(t, got.User)
	assert.Equal(t, "Sales", got.User.Department)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM bookings b").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_ListConfirmedByRoom_LocksInsideTransaction(t *testing.T) {
	repo, db, mock := newRepo(t)
	roomID := uuid.New()
	from := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE (.+) FOR UPDATE").
		WithArgs(roomID, domain.StatusConfirmed, from).
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_id", "user_id", "title", "start_time", "end_time", "attendees_count", "status"}).
			AddRow(uuid.NewString(), roomID.String(), uuid.NewString(), "Sync", from.Add(9*time.Hour), from.Add(10*time.Hour), 3, "confirmed"))
	mock.ExpectCommit()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	bookings, err := repo.ListConfirmedByRoom(dbmetrics.WithTx(context.Background(), tx), roomID, from)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	require.Len(t, bookings, 1)
	assert.Equal(t, roomID, bookings[0].RoomID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListConfirmedByRoom_KeepsSerializationFailureInChain(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WillReturnError(&pq.Error{Code: pgerr.CodeSerializationFailure})

	_, err := repo.ListConfirmedByRoom(context.Background(), uuid.New(), time.Now())

	assert.ErrorIs(t, err, ErrExecQuery)
	assert.Equal(t, pgerr.CodeSerializationFailure, pgerr.Code(err))
}

func TestRepository_Cancel(t *testing.T) {
	repo, _, mock := newRepo(t)
	id := uuid.New()
	at := time.Now()

	mock.ExpectExec("UPDATE bookings SET status").
		WithArgs(domain.StatusCancelled, at, id, domain.StatusConfirmed).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Cancel(context.Background(), id, at))
}

func TestRepository_Cancel_AlreadyCancelled(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectExec("UPDATE bookings").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Cancel(context.Background(), uuid.New(), time.Now())

	assert.ErrorIs(t, err, ErrNotConfirmed)
}

func TestRepository_UpdateEndTime_Conflict(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectExec("UPDATE bookings SET end_time").
		WillReturnError(&pq.Error{Code: pgerr.CodeExclusionViolation, Constraint: "bookings_no_overlap"})

	err := repo.UpdateEndTime(context.Background(), uuid.New(), time.Now())

	assert.True(t, errors.Is(err, ErrTimeConflict))
}

func TestRepository_List_OverlapFilter(t *testing.T) {
	repo, _, mock := newRepo(t)
	dayStart := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)
	status := domain.StatusConfirmed

	mock.ExpectQuery(`WHERE b.start_time < \$1 AND b.end_time > \$2 AND b.status = \$3 ORDER BY b.start_time ASC`).
		WithArgs(dayEnd, dayStart, status).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	bookings, err := repo.List(context.Background(), domain.BookingsFilter{EndAfter: &dayStart, To: &dayEnd, Status: &status})

	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}
