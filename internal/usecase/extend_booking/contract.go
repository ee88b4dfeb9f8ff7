package extend_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	UpdateEndTime(ctx context.Context, id uuid.UUID, endTime time.Time) error
}

// SettingsProvider действующие лимиты бронирования
type SettingsProvider interface {
	Limits(ctx context.Context) domain.BookingLimits
}

// AvailabilityChecker проверка пересечений с бронированиями и блокировками
type AvailabilityChecker interface {
	Check(ctx context.Context, roomID uuid.UUID, interval domain.Interval, excludeBookingID *uuid.UUID) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчики бронирований
type Metrics interface {
	BookingSaved(operation string)
	BookingRejected(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
