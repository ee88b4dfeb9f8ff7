package roomblock

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomBooking/pkg/pgerr"
	"github.com/m04kA/SMC-RoomBooking/pkg/psqlbuilder"
)

const bookingOverlapConstraint = "room_blocks_booking_overlap"

var columns = []string{
	"id",
	"room_id",
	"start_time",
	"end_time",
	"reason",
	"created_by",
	"created_at",
}

// Repository репозиторий блокировок комнат (обслуживание)
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает блокировку
func (r *Repository) Create(ctx context.Context, block *domain.RoomBlock) (*domain.RoomBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("room_blocks").
		Columns("room_id", "start_time", "end_time", "reason", "created_by").
		Values(block.RoomID, block.StartTime, block.EndTime, block.Reason, block.CreatedBy).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&block.ID, &block.CreatedAt)
	if err != nil {
		if pgerr.IsExclusionViolation(err) {
			if pgerr.Constraint(err) == bookingOverlapConstraint {
				return nil, ErrBookingConflict
			}
			return nil, ErrBlockConflict
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return block, nil
}

// GetByID получает блокировку по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.RoomBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("room_blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	block, err := scanBlock(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBlockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan block: %w", ErrScanRow, err)
	}

	return block, nil
}

// ListActiveByRoom получает блокировки комнаты, заканчивающиеся после from
// Внутри транзакции строки блокируются (FOR UPDATE)
func (r *Repository) ListActiveByRoom(ctx context.Context, roomID uuid.UUID, from time.Time) ([]*domain.RoomBlock, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From("room_blocks").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Gt{"end_time": from}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	return r.list(ctx, "ListActiveByRoom", selectBuilder)
}

// ListInRange получает блокировки, пересекающие интервал [from, to)
// roomID опционален
func (r *Repository) ListInRange(ctx context.Context, roomID *uuid.UUID, from, to time.Time) ([]*domain.RoomBlock, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From("room_blocks").
		Where(squirrel.Lt{"start_time": to}).
		Where(squirrel.Gt{"end_time": from}).
		OrderBy("start_time ASC")

	if roomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": *roomID})
	}

	return r.list(ctx, "ListInRange", selectBuilder)
}

// Delete удаляет блокировку
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("room_blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBlockNotFound
	}

	return nil
}

func (r *Repository) list(ctx context.Context, op string, selectBuilder squirrel.SelectBuilder) ([]*domain.RoomBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	blocks := make([]*domain.RoomBlock, 0)
	for rows.Next() {
		block, err := scanBlock(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan block: %w", ErrScanRow, op, err)
		}
		blocks = append(blocks, block)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return blocks, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBlock(row rowScanner) (*domain.RoomBlock, error) {
	var b domain.RoomBlock
	err := row.Scan(
		&b.ID,
		&b.RoomID,
		&b.StartTime,
		&b.EndTime,
		&b.Reason,
		&b.CreatedBy,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
