package policy

import (
	"errors"
	"fmt"
)

var (
	// ErrEndBeforeStart интервал нулевой длины или конец раньше начала
	ErrEndBeforeStart = errors.New("policy: end time must be after start time")

	// ErrExceedsMaxDuration длительность больше max_booking_duration_hours
	ErrExceedsMaxDuration = errors.New("policy: booking exceeds maximum duration")

	// ErrStartInPast начало бронирования в прошлом
	ErrStartInPast = errors.New("policy: cannot book in the past")

	// ErrTooFarAhead начало дальше max_days_ahead от текущего момента
	ErrTooFarAhead = errors.New("policy: booking too far ahead")

	// ErrAttendeesTooFew участников меньше одного
	ErrAttendeesTooFew = errors.New("policy: at least one attendee required")

	// ErrAttendeesOverCapacity участников больше вместимости комнаты
	ErrAttendeesOverCapacity = errors.New("policy: attendees exceed room capacity")
)

// LimitError нарушение настраиваемого лимита. Limit - действующее значение
// (часов, дней или мест)
type LimitError struct {
	Err   error
	Limit int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%v (limit %d)", e.Err, e.Limit)
}

func (e *LimitError) Unwrap() error {
	return e.Err
}
