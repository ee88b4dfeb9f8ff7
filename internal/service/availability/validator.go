// Package availability проверяет, свободна ли комната на заданный интервал
package availability

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// Validator проверка пересечений с бронированиями и блокировками
//
// Это быстрая проверка для понятного пользователю ответа. Гарантию отсутствия
// двойных бронирований даёт ограничение EXCLUDE в базе
type Validator struct {
	bookings BookingRepository
	blocks   BlockRepository
	logger   Logger
}

func NewValidator(bookings BookingRepository, blocks BlockRepository, logger Logger) *Validator {
	return &Validator{bookings: bookings, blocks: blocks, logger: logger}
}

// Check возвращает nil, если интервал свободен
// excludeBookingID исключает бронирование из проверки (продление самого себя)
//
// Интервалы полуоткрытые: бронирование, начинающееся в момент окончания другого, допустимо
func (v *Validator) Check(ctx context.Context, roomID uuid.UUID, interval domain.Interval, excludeBookingID *uuid.UUID) error {
	bookings, err := v.bookings.ListConfirmedByRoom(ctx, roomID, interval.Start)
	if err != nil {
		v.logger.Error("Availability: failed to load bookings for room=%s: %v", roomID, err)
		return fmt.Errorf("%w: bookings: %w", ErrAvailabilityUnknown, err)
	}

	if conflict := FirstBookingConflict(bookings, interval, excludeBookingID); conflict != nil {
		v.logger.Info("Availability: room=%s %s-%s conflicts with booking=%s",
			roomID, interval.Start.Format(domain.TimeFormat), interval.End.Format(domain.TimeFormat), conflict.ID)
		return ErrTimeBooked
	}

	blocks, err := v.blocks.ListActiveByRoom(ctx, roomID, interval.Start)
	if err != nil {
		v.logger.Error("Availability: failed to load blocks for room=%s: %v", roomID, err)
		return fmt.Errorf("%w: blocks: %w", ErrAvailabilityUnknown, err)
	}

	if block := FirstBlockConflict(blocks, interval, nil); block != nil {
		v.logger.Info("Availability: room=%s %s-%s conflicts with block=%s",
			roomID, interval.Start.Format(domain.TimeFormat), interval.End.Format(domain.TimeFormat), block.ID)
		return ErrRoomBlocked
	}

	return nil
}

// FirstBookingConflict первое подтверждённое бронирование, пересекающее интервал
func FirstBookingConflict(bookings []*domain.Booking, interval domain.Interval, excludeID *uuid.UUID) *domain.Booking {
	for _, b := range bookings {
		if !b.IsConfirmed() {
			continue
		}
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if interval.Overlaps(b.Interval()) {
			return b
		}
	}
	return nil
}

// FirstBlockConflict первая блокировка, пересекающая интервал
func FirstBlockConflict(blocks []*domain.RoomBlock, interval domain.Interval, excludeID *uuid.UUID) *domain.RoomBlock {
	for _, b := range blocks {
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if interval.Overlaps(b.Interval()) {
			return b
		}
	}
	return nil
}
