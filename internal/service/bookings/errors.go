package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrAccessDenied возвращается когда пользователь не имеет прав на операцию
	ErrAccessDenied = errors.New("bookings: access denied")

	// ErrAlreadyCancelled возвращается при попытке отменить уже отменённое бронирование
	ErrAlreadyCancelled = errors.New("bookings: booking already cancelled")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
