package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomBooking/pkg/pgerr"
	"github.com/m04kA/SMC-RoomBooking/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"email",
	"full_name",
	"department",
	"role",
	"avatar_url",
	"terms_accepted",
	"created_at",
	"updated_at",
}

// Repository репозиторий профилей пользователей
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает профиль по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("profiles").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	profile, err := scanProfile(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan profile: %w", ErrScanRow, err)
	}

	return profile, nil
}

// List получает все профили, отсортированные по имени
func (r *Repository) List(ctx context.Context) ([]*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("profiles").
		OrderBy("full_name ASC", "email ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	profiles := make([]*domain.Profile, 0)
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan profile: %w", ErrScanRow, err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return profiles, nil
}

// Upsert создает профиль или обновляет имя и отдел существующего
// Используется при создании пользователя администратором
func (r *Repository) Upsert(ctx context.Context, profile *domain.Profile) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("profiles").
		Columns("id", "email", "full_name", "department", "role").
		Values(profile.ID, profile.Email, profile.FullName, profile.Department, profile.Role).
		Suffix("ON CONFLICT (id) DO UPDATE SET full_name = EXCLUDED.full_name, department = EXCLUDED.department, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if pgerr.IsUniqueViolation(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("%w: Upsert - execute: %w", ErrExecQuery, err)
	}

	return nil
}

// UpdateDetails обновляет имя и отдел
func (r *Repository) UpdateDetails(ctx context.Context, id uuid.UUID, fullName, department string) error {
	return r.update(ctx, "UpdateDetails", id, map[string]interface{}{
		"full_name":  fullName,
		"department": department,
	})
}

// AcceptTerms отмечает принятие условий использования
func (r *Repository) AcceptTerms(ctx context.Context, id uuid.UUID) error {
	return r.update(ctx, "AcceptTerms", id, map[string]interface{}{"terms_accepted": true})
}

// UpdateAvatar сохраняет ссылку на аватар. nil удаляет ссылку
func (r *Repository) UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL *string) error {
	return r.update(ctx, "UpdateAvatar", id, map[string]interface{}{"avatar_url": avatarURL})
}

// UpdateRole меняет роль пользователя
func (r *Repository) UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) error {
	return r.update(ctx, "UpdateRole", id, map[string]interface{}{"role": role})
}

func (r *Repository) update(ctx context.Context, op string, id uuid.UUID, values map[string]interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("profiles").
		SetMap(values).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrProfileNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ID,
		&p.Email,
		&p.FullName,
		&p.Department,
		&p.Role,
		&p.AvatarURL,
		&p.TermsAccepted,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
