package email

import "errors"

var (
	// ErrNotConfigured возвращается, когда ключ провайдера не задан
	ErrNotConfigured = errors.New("email client: provider not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("email client: internal error")

	// ErrSendFailed провайдер не принял письмо
	ErrSendFailed = errors.New("email client: send failed")
)
