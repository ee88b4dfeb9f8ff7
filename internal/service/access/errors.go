package access

import "errors"

var (
	// ErrUnknownUser у аутентифицированного пользователя нет профиля
	ErrUnknownUser = errors.New("access: profile not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("access: internal error")
)
