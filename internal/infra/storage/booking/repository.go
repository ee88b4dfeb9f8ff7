package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomBooking/pkg/pgerr"
	"github.com/m04kA/SMC-RoomBooking/pkg/psqlbuilder"
)

// Ограничение из триггера guard_room_interval
const blockOverlapConstraint = "bookings_block_overlap"

// Колонки бронирования вместе с комнатой и владельцем (relationship expansion)
var expandedColumns = []string{
	"b.id",
	"b.room_id",
	"b.user_id",
	"b.title",
	"b.description",
	"b.start_time",
	"b.end_time",
	"b.attendees_count",
	"b.status",
	"b.cancelled_at",
	"b.created_at",
	"b.updated_at",
	"r.name",
	"r.floor",
	"r.capacity",
	"r.facilities",
	"r.status",
	"r.image_url",
	"p.email",
	"p.full_name",
	"p.department",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Пересечения отсекаются ограничением bookings_no_overlap и триггером guard_room_interval,
// поэтому параллельные вставки на один интервал не приводят к двойному бронированию
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"room_id",
			"user_id",
			"title",
			"description",
			"start_time",
			"end_time",
			"attendees_count",
			"status",
		).
		Values(
			booking.RoomID,
			booking.UserID,
			booking.Title,
			booking.Description,
			booking.StartTime,
			booking.EndTime,
			booking.AttendeesCount,
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, mapWriteError("Create", err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID вместе с комнатой и владельцем
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := expandedSelect().Where(squirrel.Eq{"b.id": id})

	// Внутри транзакции блокируем строку бронирования (продление, отмена)
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF b")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanExpanded(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования по фильтру, отсортированные по времени начала
//
// Примеры:
//
//  1. Бронирования пользователя: filter := domain.BookingsFilter{UserID: &userID}
//  2. Подтверждённые бронирования, пересекающие день:
//     status := domain.StatusConfirmed
//     filter := domain.BookingsFilter{EndAfter: &dayStart, To: &dayEnd, Status: &status}
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := expandedSelect().OrderBy("b.start_time ASC")

	if filter.RoomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.room_id": *filter.RoomID})
	}
	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.user_id": *filter.UserID})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"b.start_time": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"b.start_time": *filter.To})
	}
	if filter.EndAfter != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"b.end_time": *filter.EndAfter})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": *filter.Status})
	}
	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanExpanded(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan booking: %w", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}

// ListConfirmedByRoom получает подтверждённые бронирования комнаты, заканчивающиеся после from
// Используется проверкой доступности. Внутри транзакции строки блокируются (FOR UPDATE)
func (r *Repository) ListConfirmedByRoom(ctx context.Context, roomID uuid.UUID, from time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"room_id",
		"user_id",
		"title",
		"start_time",
		"end_time",
		"attendees_count",
		"status",
	).
		From("bookings").
		Where(squirrel.Eq{"room_id": roomID, "status": domain.StatusConfirmed}).
		Where(squirrel.Gt{"end_time": from}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedByRoom - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedByRoom - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(
			&b.ID,
			&b.RoomID,
			&b.UserID,
			&b.Title,
			&b.StartTime,
			&b.EndTime,
			&b.AttendeesCount,
			&b.Status,
		); err != nil {
			return nil, fmt.Errorf("%w: ListConfirmedByRoom - scan booking: %w", ErrScanRow, err)
		}
		bookings = append(bookings, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedByRoom - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}

// UpdateEndTime продлевает подтверждённое бронирование
func (r *Repository) UpdateEndTime(ctx context.Context, id uuid.UUID, endTime time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("end_time", endTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.StatusConfirmed}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateEndTime - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return mapWriteError("UpdateEndTime", err)
	}

	return requireAffected("UpdateEndTime", result)
}

// Cancel переводит бронирование в статус cancelled. Переход односторонний
func (r *Repository) Cancel(ctx context.Context, id uuid.UUID, cancelledAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", cancelledAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.StatusConfirmed}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %w", ErrExecQuery, err)
	}

	return requireAffected("Cancel", result)
}

func expandedSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(expandedColumns...).
		From("bookings b").
		Join("rooms r ON r.id = b.room_id").
		LeftJoin("profiles p ON p.id = b.user_id")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanExpanded(row rowScanner) (*domain.Booking, error) {
	var (
		b          domain.Booking
		room       domain.Room
		email      sql.NullString
		fullName   sql.NullString
		department sql.NullString
	)

	err := row.Scan(
		&b.ID,
		&b.RoomID,
		&b.UserID,
		&b.Title,
		&b.Description,
		&b.StartTime,
		&b.EndTime,
		&b.AttendeesCount,
		&b.Status,
		&b.CancelledAt,
		&b.CreatedAt,
		&b.UpdatedAt,
		&room.Name,
		&room.Floor,
		&room.Capacity,
		pq.Array(&room.Facilities),
		&room.Status,
		&room.ImageURL,
		&email,
		&fullName,
		&department,
	)
	if err != nil {
		return nil, err
	}

	room.ID = b.RoomID
	b.Room = &room

	if email.Valid {
		b.User = &domain.Profile{
			ID:         b.UserID,
			Email:      email.String,
			FullName:   fullName.String,
			Department: department.String,
		}
	}

	return &b, nil
}

// mapWriteError переводит ошибки ограничений PostgreSQL в ошибки репозитория.
// Исходная ошибка остаётся в цепочке, чтобы менеджер транзакций видел 40001
func mapWriteError(op string, err error) error {
	switch {
	case pgerr.IsExclusionViolation(err):
		if pgerr.Constraint(err) == blockOverlapConstraint {
			return fmt.Errorf("%w: %s", ErrRoomBlocked, op)
		}
		return fmt.Errorf("%w: %s", ErrTimeConflict, op)
	case pgerr.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %s", ErrReferenceNotFound, op)
	default:
		return fmt.Errorf("%w: %s - execute: %w", ErrExecQuery, op, err)
	}
}

func requireAffected(op string, result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrNotConfirmed
	}
	return nil
}
