package rooms

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	UpdateImage(ctx context.Context, id uuid.UUID, imageURL *string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ImageStorage хранилище изображений комнат
type ImageStorage interface {
	Upload(ctx context.Context, bucket, key string, body io.Reader, size int64, contentType string) (string, error)
	KeyFromURL(bucket, url string) (string, bool)
	Remove(ctx context.Context, bucket string, keys []string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
