package extend_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

func validateRequest(req *Request) error {
	if err := req.NewEndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid end time: %v", ErrInvalidInput, err)
	}
	return nil
}

// extendedInterval строит новый интервал от исходного начала
func extendedInterval(booking *domain.Booking, req *Request, loc *time.Location) (domain.Interval, error) {
	start := booking.StartTime.In(loc)

	end, err := req.NewEndTime.On(start)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("%w: end time: %v", ErrInvalidInput, err)
	}

	interval := domain.NewInterval(start, end)
	if !interval.End.After(booking.EndTime) {
		return domain.Interval{}, ErrEndNotLater
	}

	return interval, nil
}
