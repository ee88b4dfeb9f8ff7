package domain

import "github.com/m04kA/SMC-RoomBooking/pkg/types"

// TimeSlot fixed-width tick of the display day
type TimeSlot struct {
	Time    types.TimeString
	Display string
	Index   int
}

// BookingBlock contiguous span of slots occupied by a booking.
// EndSlot is exclusive; Span == EndSlot - StartSlot.
type BookingBlock struct {
	Booking   *Booking
	StartSlot int
	EndSlot   int
	Span      int
}

// BlockSpan slot range covered by a maintenance block on a given day.
// EndSlot is exclusive.
type BlockSpan struct {
	Block     *RoomBlock
	StartSlot int
	EndSlot   int
	Span      int
}
