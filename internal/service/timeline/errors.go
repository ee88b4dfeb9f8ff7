package timeline

import "errors"

var (
	// ErrInvalidConfig некорректная сетка слотов
	ErrInvalidConfig = errors.New("timeline: invalid slot grid config")

	// ErrSlotOutOfRange индекс слота вне сетки
	ErrSlotOutOfRange = errors.New("timeline: slot index out of range")
)
