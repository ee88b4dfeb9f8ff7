package settings

import "errors"

var (
	// ErrUnknownSetting ключ не относится к известным настройкам
	ErrUnknownSetting = errors.New("settings: unknown setting")

	// ErrInvalidValue значение должно быть положительным целым
	ErrInvalidValue = errors.New("settings: value must be a positive integer")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("settings: internal error")
)
