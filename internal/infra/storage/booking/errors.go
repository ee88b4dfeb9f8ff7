package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrTimeConflict возвращается, когда интервал пересекается с подтверждённым бронированием
	ErrTimeConflict = errors.New("booking.repository: time already booked")

	// ErrRoomBlocked возвращается, когда интервал пересекается с блокировкой комнаты
	ErrRoomBlocked = errors.New("booking.repository: room blocked for maintenance")

	// ErrReferenceNotFound возвращается, когда комната или пользователь не существуют
	ErrReferenceNotFound = errors.New("booking.repository: room or user not found")

	// ErrNotConfirmed возвращается при попытке изменить неподтверждённое бронирование
	ErrNotConfirmed = errors.New("booking.repository: booking is not confirmed")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
