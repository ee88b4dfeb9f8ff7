package roomblock

import "errors"

var (
	// ErrBlockNotFound возвращается, когда блокировка не найдена
	ErrBlockNotFound = errors.New("roomblock.repository: block not found")

	// ErrBlockConflict возвращается, когда интервал пересекается с другой блокировкой
	ErrBlockConflict = errors.New("roomblock.repository: room already blocked")

	// ErrBookingConflict возвращается, когда интервал пересекается с подтверждённым бронированием
	ErrBookingConflict = errors.New("roomblock.repository: time already booked")

	ErrBuildQuery = errors.New("roomblock.repository: failed to build query")
	ErrExecQuery  = errors.New("roomblock.repository: failed to execute query")
	ErrScanRow    = errors.New("roomblock.repository: failed to scan row")
)
