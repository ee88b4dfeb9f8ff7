package blocks

import "errors"

var (
	ErrBlockNotFound = errors.New("blocks: block not found")
	ErrRoomNotFound  = errors.New("blocks: room not found")
	ErrInvalidInput  = errors.New("blocks: invalid input")

	// ErrBookingConflict интервал пересекается с подтверждённым бронированием
	ErrBookingConflict = errors.New("blocks: interval overlaps a confirmed booking")

	// ErrAlreadyBlocked интервал пересекается с другой блокировкой
	ErrAlreadyBlocked = errors.New("blocks: interval overlaps another block")

	// ErrAvailabilityUnknown не удалось проверить пересечения
	ErrAvailabilityUnknown = errors.New("blocks: availability could not be verified")

	ErrInternal = errors.New("blocks: internal error")
)
