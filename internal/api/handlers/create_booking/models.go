package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	bookingModels "github.com/m04kA/SMC-RoomBooking/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-RoomBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID         uuid.UUID `json:"roomId"`
	Date           string    `json:"date"`      // "2026-05-05"
	StartTime      string    `json:"startTime"` // "09:00"
	EndTime        string    `json:"endTime"`   // "10:00"
	Title          string    `json:"title"`
	Description    *string   `json:"description,omitempty"`
	AttendeesCount int       `json:"attendeesCount"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	*bookingModels.BookingResponse
	EmailQueued bool `json:"emailQueued"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID uuid.UUID, access domain.Access) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:         userID,
		Access:         access,
		RoomID:         r.RoomID,
		Date:           date,
		StartTime:      startTime,
		EndTime:        endTime,
		Title:          r.Title,
		Description:    r.Description,
		AttendeesCount: r.AttendeesCount,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		BookingResponse: bookingModels.FromDomainBooking(resp.Booking),
		EmailQueued:     resp.EmailQueued,
	}
}
