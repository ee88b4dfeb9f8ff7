package realtime

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// BookingLister подтверждённые бронирования, пересекающие [from, to)
type BookingLister interface {
	ListForDay(ctx context.Context, roomID *uuid.UUID, from, to time.Time) ([]*domain.Booking, error)
}

// BlockLister блокировки, пересекающие [from, to)
type BlockLister interface {
	List(ctx context.Context, roomID *uuid.UUID, from, to time.Time) ([]*domain.RoomBlock, error)
}

// SnapshotLoader загружает полное состояние одного дня
type SnapshotLoader interface {
	LoadDay(ctx context.Context, day time.Time) (*Snapshot, error)
}

// Metrics счетчик подписчиков
type Metrics interface {
	SubscribersChanged(delta float64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
