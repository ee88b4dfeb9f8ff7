package blocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// BlockRepository интерфейс репозитория блокировок
type BlockRepository interface {
	Create(ctx context.Context, block *domain.RoomBlock) (*domain.RoomBlock, error)
	ListInRange(ctx context.Context, roomID *uuid.UUID, from, to time.Time) ([]*domain.RoomBlock, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error)
}

// AvailabilityChecker проверка свободного интервала
type AvailabilityChecker interface {
	Check(ctx context.Context, roomID uuid.UUID, interval domain.Interval, excludeBookingID *uuid.UUID) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
