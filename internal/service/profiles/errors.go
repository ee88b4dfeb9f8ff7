package profiles

import "errors"

var (
	// ErrProfileNotFound возвращается когда профиль не найден
	ErrProfileNotFound = errors.New("profiles: profile not found")

	// ErrInvalidInput возвращается при некорректных данных
	ErrInvalidInput = errors.New("profiles: invalid input")

	// ErrInvalidImage файл не является допустимым изображением
	ErrInvalidImage = errors.New("profiles: invalid image")

	// ErrSelfDemotion администратор не может снять с себя роль admin
	ErrSelfDemotion = errors.New("profiles: cannot remove own admin role")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("profiles: internal error")
)
