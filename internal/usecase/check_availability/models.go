package check_availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// Request интервал задается либо временем HH:MM, либо диапазоном слотов сетки [FromSlot, ToSlot)
type Request struct {
	RoomID    uuid.UUID
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	FromSlot  *int
	ToSlot    *int
	// ExcludeBookingID собственное бронирование при продлении
	ExcludeBookingID *uuid.UUID
}

// Response результат проверки. Error заполнен только при Valid = false
type Response struct {
	Valid     bool
	Error     string
	StartTime time.Time
	EndTime   time.Time
}
