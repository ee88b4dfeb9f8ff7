package permission

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomBooking/pkg/psqlbuilder"
)

// Repository репозиторий явных прав пользователей
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByUser получает права, выданные пользователю
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Permission, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("p.name").
		From("user_permissions up").
		Join("permissions p ON p.id = up.permission_id").
		Where(squirrel.Eq{"up.user_id": userID}).
		OrderBy("p.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	permissions := make([]domain.Permission, 0)
	for rows.Next() {
		var p domain.Permission
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("%w: ListByUser - scan permission: %w", ErrScanRow, err)
		}
		permissions = append(permissions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByUser - rows error: %w", ErrScanRow, err)
	}

	return permissions, nil
}

// ReplaceForUser заменяет набор прав пользователя
// Вызывать внутри транзакции, иначе между удалением и вставкой права временно отсутствуют
func (r *Repository) ReplaceForUser(ctx context.Context, userID uuid.UUID, permissions []domain.Permission) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("user_permissions").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForUser - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceForUser - execute delete: %w", ErrExecQuery, err)
	}

	if len(permissions) == 0 {
		return nil
	}

	names := make([]string, len(permissions))
	for i, p := range permissions {
		names[i] = string(p)
	}

	query, args, err = psqlbuilder.Insert("user_permissions").
		Columns("user_id", "permission_id").
		Select(psqlbuilder.Select().
			Column(squirrel.Expr("?::uuid", userID)).
			Column("id").
			From("permissions").
			Where("name = ANY(?)", pq.Array(names))).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForUser - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceForUser - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}
