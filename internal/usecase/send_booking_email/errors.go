package send_booking_email

import "errors"

var (
	// ErrMissingData в запросе нет booking, user или room
	ErrMissingData = errors.New("send_booking_email: missing required data")

	// ErrBookingNotFound бронирование для фоновой отправки не найдено
	ErrBookingNotFound = errors.New("send_booking_email: booking not found")

	// ErrSendFailed провайдер не принял письмо. Response с ICS возвращается вместе с ошибкой
	ErrSendFailed = errors.New("send_booking_email: failed to send email")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("send_booking_email: internal error")
)
