package get_timeline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// RoomLister источник комнат
type RoomLister interface {
	ListDomain(ctx context.Context, onlyActive bool) ([]*domain.Room, error)
}

// BookingLister подтвержденные бронирования, пересекающие диапазон
type BookingLister interface {
	ListForDay(ctx context.Context, roomID *uuid.UUID, from, to time.Time) ([]*domain.Booking, error)
}

// BlockLister блокировки, пересекающие диапазон
type BlockLister interface {
	List(ctx context.Context, roomID *uuid.UUID, from, to time.Time) ([]*domain.RoomBlock, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
