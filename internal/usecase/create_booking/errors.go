package create_booking

import "errors"

var (
	// ErrForbidden у пользователя нет права book_room
	ErrForbidden = errors.New("create_booking: not allowed to book rooms")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrRoomUnavailable комната на обслуживании
	ErrRoomUnavailable = errors.New("create_booking: room is under maintenance")

	// ErrPolicyViolation нарушено правило бронирования (длительность, срок, вместимость)
	// Конкретная причина - ошибка пакета policy в цепочке
	ErrPolicyViolation = errors.New("create_booking: booking policy violated")

	// ErrTimeBooked интервал пересекается с другим бронированием
	ErrTimeBooked = errors.New("create_booking: time already booked")

	// ErrRoomBlocked интервал пересекается с блокировкой
	ErrRoomBlocked = errors.New("create_booking: room blocked for maintenance")

	// ErrAvailabilityUnknown не удалось проверить доступность, запись не выполнялась
	ErrAvailabilityUnknown = errors.New("create_booking: could not verify availability")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
