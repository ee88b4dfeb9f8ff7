package availability

import "errors"

var (
	// ErrTimeBooked интервал пересекается с подтверждённым бронированием
	ErrTimeBooked = errors.New("availability: time already booked")

	// ErrRoomBlocked интервал пересекается с блокировкой на обслуживание
	ErrRoomBlocked = errors.New("availability: room blocked for maintenance")

	// ErrAvailabilityUnknown не удалось прочитать бронирования или блокировки.
	// Запись в этом случае выполнять нельзя
	ErrAvailabilityUnknown = errors.New("availability: could not verify availability")
)
