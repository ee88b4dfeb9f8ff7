package check_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/availability"
	"github.com/m04kA/SMC-RoomBooking/internal/service/timeline"
)

const (
	MsgTimeBooked          = "This time slot is already booked"
	MsgRoomBlocked         = "Room is blocked for maintenance during this time"
	MsgAvailabilityUnknown = "Could not verify availability"
)

type UseCase struct {
	availability AvailabilityChecker
	slots        []domain.TimeSlot
	loc          *time.Location
	logger       Logger
}

func NewUseCase(availability AvailabilityChecker, slots []domain.TimeSlot, loc *time.Location, logger Logger) *UseCase {
	return &UseCase{
		availability: availability,
		slots:        slots,
		loc:          loc,
		logger:       logger,
	}
}

// Execute проверяет свободна ли комната. Конфликт не ошибка: он возвращается в Response
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Строим интервал
	interval, err := uc.interval(req)
	if err != nil {
		return nil, err
	}
	if interval.IsEmpty() {
		return nil, fmt.Errorf("%w: empty interval", ErrInvalidInput)
	}

	resp := &Response{StartTime: interval.Start, EndTime: interval.End}

	// 2. Проверяем пересечения
	err = uc.availability.Check(ctx, req.RoomID, interval, req.ExcludeBookingID)
	switch {
	case err == nil:
		resp.Valid = true
	case errors.Is(err, availability.ErrTimeBooked):
		resp.Error = MsgTimeBooked
	case errors.Is(err, availability.ErrRoomBlocked):
		resp.Error = MsgRoomBlocked
	default:
		uc.logger.Warn("CheckAvailability: room_id=%s: %v", req.RoomID, err)
		resp.Error = MsgAvailabilityUnknown
	}

	return resp, nil
}

func (uc *UseCase) interval(req *Request) (domain.Interval, error) {
	if req.Date.IsZero() {
		return domain.Interval{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	y, m, d := req.Date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, uc.loc)

	if req.FromSlot != nil || req.ToSlot != nil {
		if req.FromSlot == nil || req.ToSlot == nil {
			return domain.Interval{}, fmt.Errorf("%w: both slots are required", ErrInvalidInput)
		}
		interval, err := timeline.SlotRange(day, uc.slots, *req.FromSlot, *req.ToSlot, uc.loc)
		if err != nil {
			return domain.Interval{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return interval, nil
	}

	start, err := req.StartTime.On(day)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}
	end, err := req.EndTime.On(day)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("%w: end time: %v", ErrInvalidInput, err)
	}

	return domain.NewInterval(start, end), nil
}
