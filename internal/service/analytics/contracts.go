package analytics

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

type RoomRepository interface {
	List(ctx context.Context, onlyActive bool) ([]*domain.Room, error)
}

type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider системные часы
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
