package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID             uuid.UUID  `json:"id"`
	RoomID         uuid.UUID  `json:"roomId"`
	UserID         uuid.UUID  `json:"userId"`
	Title          string     `json:"title"`
	Description    *string    `json:"description,omitempty"`
	StartTime      time.Time  `json:"startTime"`
	EndTime        time.Time  `json:"endTime"`
	AttendeesCount int        `json:"attendeesCount"`
	Status         string     `json:"status"`
	CancelledAt    *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`

	Room *RoomSummary `json:"room,omitempty"`
	User *UserSummary `json:"user,omitempty"`
}

// RoomSummary комната в составе бронирования
type RoomSummary struct {
	Name       string `json:"name"`
	Floor      int    `json:"floor"`
	FloorLabel string `json:"floorLabel"`
	Capacity   int    `json:"capacity"`
}

// UserSummary владелец бронирования
type UserSummary struct {
	Email      string `json:"email"`
	FullName   string `json:"fullName"`
	Department string `json:"department"`
}

// MyBookingsResponse бронирования пользователя, разделённые на будущие и прошедшие
type MyBookingsResponse struct {
	Upcoming []*BookingResponse `json:"upcoming"`
	Past     []*BookingResponse `json:"past"`
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:             b.ID,
		RoomID:         b.RoomID,
		UserID:         b.UserID,
		Title:          b.Title,
		Description:    b.Description,
		StartTime:      b.StartTime,
		EndTime:        b.EndTime,
		AttendeesCount: b.AttendeesCount,
		Status:         string(b.Status),
		CancelledAt:    b.CancelledAt,
		CreatedAt:      b.CreatedAt,
	}

	if b.Room != nil {
		resp.Room = &RoomSummary{
			Name:       b.Room.Name,
			Floor:      b.Room.Floor,
			FloorLabel: b.Room.FloorLabel(),
			Capacity:   b.Room.Capacity,
		}
	}
	if b.User != nil {
		resp.User = &UserSummary{
			Email:      b.User.Email,
			FullName:   b.User.FullName,
			Department: b.User.Department,
		}
	}

	return resp
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking) []*BookingResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return result
}

// ReservedTitle заголовок чужого бронирования для пользователя без права view_all_schedules
const ReservedTitle = "Reserved"

// FromDomainBookingListFor конвертирует список с учётом прав зрителя
// Без права видеть чужие расписания у чужих бронирований скрываются заголовок, описание и владелец
func FromDomainBookingListFor(bookings []*domain.Booking, viewerID uuid.UUID, canViewAll bool) []*BookingResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp := FromDomainBooking(b)
		if !canViewAll && b.UserID != viewerID {
			resp.Title = ReservedTitle
			resp.Description = nil
			resp.User = nil
		}
		result = append(result, resp)
	}
	return result
}
