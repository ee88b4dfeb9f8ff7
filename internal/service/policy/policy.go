// Package policy содержит проверки бронирования, не требующие обращения к хранилищу
package policy

import (
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// CheckDuration интервал должен быть непустым и не длиннее MaxDurationHours
func CheckDuration(interval domain.Interval, limits domain.BookingLimits) error {
	if interval.IsEmpty() {
		return ErrEndBeforeStart
	}

	maxDuration := time.Duration(limits.MaxDurationHours) * time.Hour
	if interval.Duration() > maxDuration {
		return &LimitError{Err: ErrExceedsMaxDuration, Limit: limits.MaxDurationHours}
	}

	return nil
}

// CheckAdvance начало должно лежать в [now, now + MaxDaysAhead дней]
func CheckAdvance(start, now time.Time, limits domain.BookingLimits) error {
	if start.Before(now) {
		return ErrStartInPast
	}

	if start.After(now.AddDate(0, 0, limits.MaxDaysAhead)) {
		return &LimitError{Err: ErrTooFarAhead, Limit: limits.MaxDaysAhead}
	}

	return nil
}

// CheckCapacity 1 <= attendees <= room.Capacity
func CheckCapacity(attendees int, room *domain.Room) error {
	if attendees < 1 {
		return ErrAttendeesTooFew
	}
	if attendees > room.Capacity {
		return &LimitError{Err: ErrAttendeesOverCapacity, Limit: room.Capacity}
	}
	return nil
}

// Request данные нового бронирования для проверки
type Request struct {
	Interval  domain.Interval
	Attendees int
	Room      *domain.Room
	Now       time.Time
}

// CheckAll выполняет проверки по порядку: длительность, срок, вместимость.
// Возвращается первая ошибка
func CheckAll(req Request, limits domain.BookingLimits) error {
	if err := CheckDuration(req.Interval, limits); err != nil {
		return err
	}
	if err := CheckAdvance(req.Interval.Start, req.Now, limits); err != nil {
		return err
	}
	return CheckCapacity(req.Attendees, req.Room)
}
