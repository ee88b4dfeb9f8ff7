package get_timeline

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	bookingModels "github.com/m04kA/SMC-RoomBooking/internal/service/bookings/models"
)

// Request модель запроса сетки дня
type Request struct {
	UserID uuid.UUID
	Access domain.Access
	Date   time.Time  // День (время игнорируется)
	RoomID *uuid.UUID // Опционально: одна комната
}

// Response сетка слотов с разложенными бронированиями и блокировками
type Response struct {
	Date     time.Time
	Slots    []domain.TimeSlot
	Rooms    []*domain.Room
	Bookings []BookingCell
	Blocks   []domain.BlockSpan
}

// BookingCell бронирование, занимающее слоты [StartSlot, EndSlot)
// Заголовок уже скрыт, если зрителю нельзя его видеть
type BookingCell struct {
	Booking   *bookingModels.BookingResponse
	StartSlot int
	EndSlot   int
	Span      int
}
