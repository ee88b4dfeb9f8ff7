package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len(req.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title is longer than %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}

	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if len(description) > domain.MaxDescriptionLength {
			return fmt.Errorf("%w: description is longer than %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
		}
		if description == "" {
			req.Description = nil
		} else {
			req.Description = &description
		}
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid end time: %v", ErrInvalidInput, err)
	}

	return nil
}

// resolveInterval переводит дату и время HH:MM в интервал в часовом поясе расписания
// Конец раньше начала означает бронирование через полночь
func resolveInterval(date time.Time, start, end types.TimeString, loc *time.Location) (domain.Interval, error) {
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, loc)

	startAt, err := start.On(day)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}
	endAt, err := end.On(day)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("%w: end time: %v", ErrInvalidInput, err)
	}

	return domain.NewInterval(startAt, endAt), nil
}
