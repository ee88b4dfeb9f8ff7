package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error)
}

// SettingsProvider действующие лимиты бронирования
type SettingsProvider interface {
	Limits(ctx context.Context) domain.BookingLimits
}

// AvailabilityChecker проверка пересечений с бронированиями и блокировками
type AvailabilityChecker interface {
	Check(ctx context.Context, roomID uuid.UUID, interval domain.Interval, excludeBookingID *uuid.UUID) error
}

// ConfirmationNotifier ставит отправку письма-подтверждения в очередь
type ConfirmationNotifier interface {
	EnqueueBookingConfirmation(ctx context.Context, bookingID uuid.UUID) error
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

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
