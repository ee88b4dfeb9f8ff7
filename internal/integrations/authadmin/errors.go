package authadmin

import "errors"

var (
	// ErrRejected провайдер отклонил запрос (email занят, слабый пароль и т.п.)
	ErrRejected = errors.New("authadmin client: request rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("authadmin client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от провайдера
	ErrInvalidResponse = errors.New("authadmin client: invalid response")
)

// RejectedError отказ провайдера с его текстом
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return ErrRejected.Error() + ": " + e.Message
}

func (e *RejectedError) Is(target error) bool {
	return target == ErrRejected
}
