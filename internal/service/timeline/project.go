package timeline

import (
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// ProjectBookings раскладывает бронирования дня по слотам
//
// Начало ищется по точному совпадению HH:MM со слотом. Бронирование, начало которого
// не совпадает ни с одним слотом, не отображается (известное ограничение отображения).
// Бронирование, начавшееся в предыдущий день, отображается с первого слота.
// Конец на следующий день или после последнего слота обрезается по последнему слоту,
// конец до первого слота (или ровно на нём) не даёт ни одного слота.
// Бронирования, не касающиеся даты, отбрасываются
func ProjectBookings(bookings []*domain.Booking, date time.Time, slots []domain.TimeSlot, loc *time.Location) []domain.BookingBlock {
	day := date.In(loc).Format(domain.DateFormat)
	result := make([]domain.BookingBlock, 0, len(bookings))

	for _, b := range bookings {
		start := b.StartTime.In(loc)
		end := b.EndTime.In(loc)
		startDay := start.Format(domain.DateFormat)
		endDay := end.Format(domain.DateFormat)

		if startDay != day && endDay != day {
			continue
		}

		startSlot := 0
		if startDay == day {
			startSlot = SlotIndexOf(slots, types.NewTimeString(start))
			if startSlot < 0 {
				continue
			}
		}

		endSlot := len(slots)
		if endDay == day {
			endSlot = endSlotOf(slots, end)
		}

		if endSlot <= startSlot {
			continue
		}

		result = append(result, domain.BookingBlock{
			Booking:   b,
			StartSlot: startSlot,
			EndSlot:   endSlot,
			Span:      endSlot - startSlot,
		})
	}

	return result
}

// endSlotOf первый слот после конца бронирования, закончившегося в этот день
// Конец между слотами округляется вверх до следующего слота
func endSlotOf(slots []domain.TimeSlot, end time.Time) int {
	ts := types.NewTimeString(end)
	if idx := SlotIndexOf(slots, ts); idx >= 0 {
		return idx
	}

	target, err := ts.Minutes()
	if err != nil {
		return 0
	}
	for _, s := range slots {
		m, err := s.Time.Minutes()
		if err != nil {
			continue
		}
		if m > target {
			return s.Index
		}
	}
	return len(slots)
}

// ProjectBlocks раскладывает блокировки по слотам дня
// Блокировки не обязаны совпадать со слотами: занятыми считаются все слоты,
// которые блокировка хотя бы частично покрывает
func ProjectBlocks(blocks []*domain.RoomBlock, date time.Time, slots []domain.TimeSlot, loc *time.Location) []domain.BlockSpan {
	result := make([]domain.BlockSpan, 0, len(blocks))
	if len(slots) == 0 {
		return result
	}

	day := date.In(loc)
	step := stepOf(slots)

	for _, block := range blocks {
		startSlot, endSlot := -1, -1
		for i, s := range slots {
			slotStart, err := s.Time.On(day)
			if err != nil {
				continue
			}
			slotEnd := slotStart.Add(step)
			if block.StartTime.Before(slotEnd) && block.EndTime.After(slotStart) {
				if startSlot < 0 {
					startSlot = i
				}
				endSlot = i + 1
			}
		}

		if startSlot < 0 {
			continue
		}

		result = append(result, domain.BlockSpan{
			Block:     block,
			StartSlot: startSlot,
			EndSlot:   endSlot,
			Span:      endSlot - startSlot,
		})
	}

	return result
}
