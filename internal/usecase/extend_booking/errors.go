package extend_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("extend_booking: booking not found")

	// ErrForbidden продлевать может только владелец с правом book_room
	ErrForbidden = errors.New("extend_booking: only the owner can extend a booking")

	// ErrNotConfirmed бронирование отменено
	ErrNotConfirmed = errors.New("extend_booking: booking is not confirmed")

	// ErrEndNotLater новое окончание не позже текущего
	ErrEndNotLater = errors.New("extend_booking: new end time must be after the current one")

	// ErrPolicyViolation продленное бронирование превышает максимальную длительность
	ErrPolicyViolation = errors.New("extend_booking: booking policy violated")

	// ErrTimeBooked новый интервал пересекается с другим бронированием
	ErrTimeBooked = errors.New("extend_booking: time already booked")

	// ErrRoomBlocked новый интервал пересекается с блокировкой
	ErrRoomBlocked = errors.New("extend_booking: room blocked for maintenance")

	// ErrAvailabilityUnknown не удалось проверить доступность
	ErrAvailabilityUnknown = errors.New("extend_booking: could not verify availability")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("extend_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("extend_booking: internal error")
)
