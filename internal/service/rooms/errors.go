package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается когда комната не найдена
	ErrRoomNotFound = errors.New("rooms: room not found")

	// ErrInvalidInput возвращается при некорректных данных комнаты
	ErrInvalidInput = errors.New("rooms: invalid input")

	// ErrInvalidImage файл не является допустимым изображением
	ErrInvalidImage = errors.New("rooms: invalid image")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("rooms: internal error")
)
