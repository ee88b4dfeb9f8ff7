package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid reports whether the status is a known value
func (s BookingStatus) IsValid() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

// Booking represents a room reservation
type Booking struct {
	ID             uuid.UUID
	RoomID         uuid.UUID
	UserID         uuid.UUID
	Title          string
	Description    *string
	StartTime      time.Time
	EndTime        time.Time
	AttendeesCount int
	Status         BookingStatus
	CancelledAt    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Expanded relations (filled only by queries that join them)
	Room *Room
	User *Profile
}

// IsConfirmed returns true if the booking takes part in conflict checks
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled.
// Cancellation is one-way: a cancelled booking is never resurrected.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// CanBeExtended returns true if the end time may be moved later
func (b *Booking) CanBeExtended() bool {
	return b.Status == StatusConfirmed
}

// Interval returns the booking's [start, end) range
func (b *Booking) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}

// BookingsFilter filter for booking queries
type BookingsFilter struct {
	RoomID   *uuid.UUID     // Optional
	UserID   *uuid.UUID     // Optional
	From     *time.Time     // start_time >= From
	To       *time.Time     // start_time < To
	EndAfter *time.Time     // end_time > EndAfter (with To: overlaps a range)
	Status   *BookingStatus // Optional, nil = any status
	Limit    uint64         // 0 = no limit
}
