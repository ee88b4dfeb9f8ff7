package analytics

import (
	"time"

	"github.com/google/uuid"
)

// Report сводка использования комнат за период
type Report struct {
	From          time.Time         `json:"from"`
	To            time.Time         `json:"to"`
	Days          int               `json:"days"`
	TotalBookings int               `json:"totalBookings"`
	BookedHours   float64           `json:"bookedHours"`
	Rooms         []RoomUsage       `json:"rooms"`
	Departments   []DepartmentUsage `json:"departments"`
}

// RoomUsage загрузка одной комнаты
// AvailableHours - длина рабочего дня сетки, умноженная на число дней
type RoomUsage struct {
	RoomID           uuid.UUID `json:"roomId"`
	RoomName         string    `json:"roomName"`
	Bookings         int       `json:"bookings"`
	BookedHours      float64   `json:"bookedHours"`
	AvailableHours   float64   `json:"availableHours"`
	OccupancyPercent float64   `json:"occupancyPercent"`
}

type DepartmentUsage struct {
	Department string `json:"department"`
	Bookings   int    `json:"bookings"`
}
