package profiles

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// ProfileRepository интерфейс репозитория профилей
type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	List(ctx context.Context) ([]*domain.Profile, error)
	UpdateDetails(ctx context.Context, id uuid.UUID, fullName, department string) error
	AcceptTerms(ctx context.Context, id uuid.UUID) error
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL *string) error
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) error
}

// PermissionRepository интерфейс репозитория прав
type PermissionRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Permission, error)
	ReplaceForUser(ctx context.Context, userID uuid.UUID, permissions []domain.Permission) error
}

// AvatarStorage хранилище аватаров
type AvatarStorage interface {
	Upload(ctx context.Context, bucket, key string, body io.Reader, size int64, contentType string) (string, error)
	List(ctx context.Context, bucket, prefix string) ([]string, error)
	Remove(ctx context.Context, bucket string, keys []string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
