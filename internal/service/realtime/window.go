package realtime

import (
	"fmt"
	"time"
)

// MaxWindowDays максимальная длина окна подписки
const MaxWindowDays = 31

// Window диапазон дат подписки, обе границы включительно
type Window struct {
	From time.Time
	To   time.Time
}

// NewWindow строит окно из дат, приведённых к началу суток в loc
func NewWindow(from, to time.Time, loc *time.Location) (Window, error) {
	w := Window{From: StartOfDay(from, loc), To: StartOfDay(to, loc)}
	if w.To.Before(w.From) {
		return Window{}, fmt.Errorf("%w: to before from", ErrInvalidWindow)
	}
	if len(w.Days()) > MaxWindowDays {
		return Window{}, fmt.Errorf("%w: more than %d days", ErrInvalidWindow, MaxWindowDays)
	}
	return w, nil
}

// Contains попадает ли день в окно
func (w Window) Contains(day time.Time) bool {
	return !day.Before(w.From) && !day.After(w.To)
}

// Days все дни окна
func (w Window) Days() []time.Time {
	days := make([]time.Time, 0)
	for d := w.From; !d.After(w.To); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// StartOfDay полночь дня t в loc
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// DaysTouched дни, которые затрагивает интервал [start, end)
func DaysTouched(start, end time.Time, loc *time.Location) []time.Time {
	first := StartOfDay(start, loc)
	if !end.After(start) {
		return []time.Time{first}
	}

	last := StartOfDay(end.Add(-time.Nanosecond), loc)
	days := make([]time.Time, 0, 1)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
