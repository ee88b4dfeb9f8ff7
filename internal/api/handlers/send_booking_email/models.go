package send_booking_email

import (
	"time"

	sendBookingEmail "github.com/m04kA/SMC-RoomBooking/internal/usecase/send_booking_email"
)

// SendBookingEmailRequest тело функции send-booking-email
type SendBookingEmailRequest struct {
	Booking *BookingPayload `json:"booking"`
	User    *UserPayload    `json:"user"`
	Room    *RoomPayload    `json:"room"`
}

type BookingPayload struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    *string   `json:"description,omitempty"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	AttendeesCount int       `json:"attendees_count"`
}

type UserPayload struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type RoomPayload struct {
	Name  string `json:"name"`
	Floor int    `json:"floor"`
}

// EmailResponse ответ функции. При ошибке заполнен Error, иначе Message
type EmailResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	ICS     string `json:"ics,omitempty"`
}

func (r *SendBookingEmailRequest) ToUseCaseRequest() *sendBookingEmail.Request {
	req := &sendBookingEmail.Request{}
	if r.Booking != nil {
		req.Booking = &sendBookingEmail.BookingData{
			ID:             r.Booking.ID,
			Title:          r.Booking.Title,
			Description:    r.Booking.Description,
			StartTime:      r.Booking.StartTime,
			EndTime:        r.Booking.EndTime,
			AttendeesCount: r.Booking.AttendeesCount,
		}
	}
	if r.User != nil {
		req.User = &sendBookingEmail.UserData{FullName: r.User.FullName, Email: r.User.Email}
	}
	if r.Room != nil {
		req.Room = &sendBookingEmail.RoomData{Name: r.Room.Name, Floor: r.Room.Floor}
	}
	return req
}
