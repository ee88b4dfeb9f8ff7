package domain

import (
	"time"

	"github.com/google/uuid"
)

// RoomBlock administrative maintenance hold on a room.
// Existence alone blocks the interval; there is no status.
type RoomBlock struct {
	ID        uuid.UUID
	RoomID    uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	Reason    *string
	CreatedBy uuid.UUID
	CreatedAt time.Time

	Room *Room
}

// Interval returns the block's [start, end) range
func (b *RoomBlock) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}
