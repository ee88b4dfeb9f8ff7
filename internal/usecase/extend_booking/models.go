package extend_booking

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// Request модель запроса на продление
type Request struct {
	BookingID uuid.UUID
	UserID    uuid.UUID
	Access    domain.Access
	// NewEndTime время окончания в день начала бронирования.
	// Раньше начала - следующий день
	NewEndTime types.TimeString
}

// Response продленное бронирование
type Response struct {
	Booking *domain.Booking
}
