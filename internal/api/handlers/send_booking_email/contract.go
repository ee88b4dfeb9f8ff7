package send_booking_email

import (
	"context"

	sendBookingEmail "github.com/m04kA/SMC-RoomBooking/internal/usecase/send_booking_email"
)

type SendBookingEmailUseCase interface {
	Execute(ctx context.Context, req *sendBookingEmail.Request) (*sendBookingEmail.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
