package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID         uuid.UUID
	Access         domain.Access
	RoomID         uuid.UUID
	Date           time.Time        // День начала (время игнорируется)
	StartTime      types.TimeString // "09:00"
	EndTime        types.TimeString // "10:00"; раньше StartTime - следующий день
	Title          string
	Description    *string
	AttendeesCount int
}

// Response созданное бронирование
type Response struct {
	Booking *domain.Booking
	// EmailQueued письмо-подтверждение поставлено в очередь
	EmailQueued bool
}
