package check_availability

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// AvailabilityChecker проверка пересечений с бронированиями и блокировками
type AvailabilityChecker interface {
	Check(ctx context.Context, roomID uuid.UUID, interval domain.Interval, excludeBookingID *uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
