package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RoomStatus operational status of a room
type RoomStatus string

const (
	RoomStatusActive           RoomStatus = "active"
	RoomStatusUnderMaintenance RoomStatus = "under_maintenance"
)

// IsValid reports whether the status is a known value
func (s RoomStatus) IsValid() bool {
	return s == RoomStatusActive || s == RoomStatusUnderMaintenance
}

// Room meeting room
type Room struct {
	ID         uuid.UUID
	Name       string
	Floor      int // 0 = ground floor
	Capacity   int
	Facilities []string
	Status     RoomStatus
	ImageURL   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsActive returns true if the room can be booked
func (r *Room) IsActive() bool {
	return r.Status == RoomStatusActive
}

// FloorLabel human readable floor name ("Ground floor", "2nd floor")
func (r *Room) FloorLabel() string {
	if r.Floor == 0 {
		return "Ground floor"
	}
	return fmt.Sprintf("%d%s floor", r.Floor, ordinalSuffix(r.Floor))
}

func ordinalSuffix(n int) string {
	if n < 0 {
		n = -n
	}
	if n%100 >= 11 && n%100 <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
