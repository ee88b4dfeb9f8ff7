package handlers

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBooking/internal/service/policy"
)

// PolicyMessage текст нарушения правил бронирования для пользователя
func PolicyMessage(err error) string {
	limit := 0
	var le *policy.LimitError
	if errors.As(err, &le) {
		limit = le.Limit
	}

	switch {
	case errors.Is(err, policy.ErrEndBeforeStart):
		return "время окончания должно быть позже времени начала"
	case errors.Is(err, policy.ErrExceedsMaxDuration):
		return fmt.Sprintf("бронирование не может быть длиннее %d ч", limit)
	case errors.Is(err, policy.ErrStartInPast):
		return "нельзя бронировать на прошедшее время"
	case errors.Is(err, policy.ErrTooFarAhead):
		return fmt.Sprintf("бронировать можно не более чем на %d дн. вперед", limit)
	case errors.Is(err, policy.ErrAttendeesTooFew):
		return "нужен хотя бы один участник"
	case errors.Is(err, policy.ErrAttendeesOverCapacity):
		return fmt.Sprintf("количество участников превышает вместимость комнаты (%d)", limit)
	default:
		return "бронирование нарушает правила"
	}
}
