package availability

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// BookingRepository источник подтверждённых бронирований комнаты
type BookingRepository interface {
	ListConfirmedByRoom(ctx context.Context, roomID uuid.UUID, from time.Time) ([]*domain.Booking, error)
}

// BlockRepository источник блокировок комнаты
type BlockRepository interface {
	ListActiveByRoom(ctx context.Context, roomID uuid.UUID, from time.Time) ([]*domain.RoomBlock, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
