// Package timeline строит сетку слотов дня и раскладывает по ней бронирования и блокировки
package timeline

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

const (
	DefaultDayStart    types.TimeString = "05:50"
	DefaultDayEnd      types.TimeString = "19:00"
	DefaultSlotMinutes                  = 10
)

// Config параметры сетки. DayEnd включается в сетку
type Config struct {
	DayStart    types.TimeString
	DayEnd      types.TimeString
	SlotMinutes int
}

func DefaultConfig() Config {
	return Config{
		DayStart:    DefaultDayStart,
		DayEnd:      DefaultDayEnd,
		SlotMinutes: DefaultSlotMinutes,
	}
}

// GenerateTimeSlots генерирует слоты от DayStart до DayEnd включительно с шагом SlotMinutes
// Результат зависит только от конфигурации
func GenerateTimeSlots(cfg Config) ([]domain.TimeSlot, error) {
	if cfg.SlotMinutes <= 0 {
		return nil, fmt.Errorf("%w: slot_minutes=%d", ErrInvalidConfig, cfg.SlotMinutes)
	}

	start, err := cfg.DayStart.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: day_start: %v", ErrInvalidConfig, err)
	}
	end, err := cfg.DayEnd.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: day_end: %v", ErrInvalidConfig, err)
	}
	if end < start {
		return nil, fmt.Errorf("%w: day_end %s before day_start %s", ErrInvalidConfig, cfg.DayEnd, cfg.DayStart)
	}

	slots := make([]domain.TimeSlot, 0, (end-start)/cfg.SlotMinutes+1)
	for m, index := start, 0; m <= end; m, index = m+cfg.SlotMinutes, index+1 {
		ts, err := types.FromMinutes(m)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		slots = append(slots, domain.TimeSlot{
			Time:    ts,
			Display: ts.String(),
			Index:   index,
		})
	}

	return slots, nil
}

// SlotIndexOf индекс слота с точным временем или -1
func SlotIndexOf(slots []domain.TimeSlot, ts types.TimeString) int {
	for _, s := range slots {
		if s.Time == ts {
			return s.Index
		}
	}
	return -1
}

// NormalizeToSlot приводит время к ближайшему слоту того же дня
// При равном расстоянии выбирается более ранний слот
func NormalizeToSlot(t time.Time, slots []domain.TimeSlot, loc *time.Location) time.Time {
	if len(slots) == 0 {
		return t
	}

	local := t.In(loc)
	target := local.Hour()*60 + local.Minute()

	best := slots[0]
	bestDiff := -1
	for _, s := range slots {
		m, err := s.Time.Minutes()
		if err != nil {
			continue
		}
		diff := abs(m - target)
		if bestDiff < 0 || diff < bestDiff {
			best, bestDiff = s, diff
		}
	}

	normalized, err := best.Time.On(local)
	if err != nil {
		return t
	}
	return normalized
}

// SlotRange переводит диапазон слотов [from, to) выбранного дня в интервал времени
// to может быть равен len(slots): тогда конец интервала - DayEnd плюс один шаг
func SlotRange(date time.Time, slots []domain.TimeSlot, from, to int, loc *time.Location) (domain.Interval, error) {
	if from < 0 || from >= len(slots) || to <= from || to > len(slots) {
		return domain.Interval{}, fmt.Errorf("%w: [%d, %d) of %d", ErrSlotOutOfRange, from, to, len(slots))
	}

	day := date.In(loc)

	start, err := slots[from].Time.On(day)
	if err != nil {
		return domain.Interval{}, err
	}

	var end time.Time
	if to < len(slots) {
		end, err = slots[to].Time.On(day)
	} else {
		end, err = slots[len(slots)-1].Time.On(day)
		end = end.Add(stepOf(slots))
	}
	if err != nil {
		return domain.Interval{}, err
	}

	return domain.Interval{Start: start, End: end}, nil
}

func stepOf(slots []domain.TimeSlot) time.Duration {
	if len(slots) < 2 {
		return DefaultSlotMinutes * time.Minute
	}
	a, errA := slots[0].Time.Minutes()
	b, errB := slots[1].Time.Minutes()
	if errA != nil || errB != nil {
		return DefaultSlotMinutes * time.Minute
	}
	return time.Duration(b-a) * time.Minute
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
