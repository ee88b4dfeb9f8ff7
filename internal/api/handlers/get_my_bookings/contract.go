package get_my_bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/service/bookings/models"
)

type BookingService interface {
	ListByUser(ctx context.Context, userID uuid.UUID) (*models.MyBookingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
