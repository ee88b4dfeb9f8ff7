package realtime

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/infra/notify"
)

type fakeLoader struct {
	mu    sync.Mutex
	calls []time.Time
	state map[time.Time][]*domain.Booking
	fail  bool
}

func (f *fakeLoader) LoadDay(_ context.Context, day time.Time) (*Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, day)
	if f.fail {
		return nil, errors.New("db down")
	}
	return &Snapshot{Day: day, Bookings: f.state[day]}, nil
}

type countingMetrics struct {
	mu    sync.Mutex
	value float64
}

func (m *countingMetrics) SubscribersChanged(delta float64) {
	m.mu.Lock()
	m.value += delta
	m.mu.Unlock()
}

func (m *countingMetrics) get() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(d int) time.Time {
	return time.Date(2026, 5, d, 0, 0, 0, 0, time.UTC)
}

func receive(t *testing.T, sub *Subscriber) *Message {
	t.Helper()
	select {
	case msg, ok := <-sub.Messages():
		require.True(t, ok, "channel closed")
		return msg
	case <-time.After(time.Second):
		t.Fatal("no message received")
		return nil
	}
}

func assertSilent(t *testing.T, sub *Subscriber) {
	t.Helper()
	select {
	case msg := <-sub.Messages():
		t.Fatalf("unexpected message for %s", msg.Date)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestNewWindow(t *testing.T) {
	w, err := NewWindow(day(4).Add(15*time.Hour), day(6).Add(time.Hour), time.UTC)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{day(4), day(5), day(6)}, w.Days())
	assert.True(t, w.Contains(day(6)))
	assert.False(t, w.Contains(day(7)))

	_, err = NewWindow(day(6), day(4), time.UTC)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = NewWindow(day(1), day(1).AddDate(0, 0, MaxWindowDays), time.UTC)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestDaysTouched(t *testing.T) {
	assert.Equal(t, []time.Time{day(4)}, DaysTouched(day(4).Add(9*time.Hour), day(4).Add(10*time.Hour), time.UTC))
	assert.Equal(t, []time.Time{day(4)}, DaysTouched(day(4).Add(23*time.Hour), day(5), time.UTC))
	assert.Equal(t, []time.Time{day(4), day(5)}, DaysTouched(day(4).Add(22*time.Hour), day(5).Add(time.Hour), time.UTC))
}

func TestHub_PushesFullDayOnChange(t *testing.T) {
	viewer := uuid.New()
	other := &domain.Booking{ID: uuid.New(), UserID: uuid.New(), Title: "Secret", Status: domain.StatusConfirmed}
	loader := &fakeLoader{state: map[time.Time][]*domain.Booking{}}
	metrics := &countingMetrics{}

	hub := NewHub(loader, time.UTC, metrics, nopLogger{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	window, err := NewWindow(day(4), day(5), time.UTC)
	require.NoError(t, err)
	sub := NewSubscriber(viewer, domain.Access{Role: domain.RoleUser}, window)
	require.NoError(t, hub.Subscribe(sub))

	assert.Equal(t, "2026-05-04", receive(t, sub).Date)
	assert.Equal(t, "2026-05-05", receive(t, sub).Date)

	loader.mu.Lock()
	loader.state[day(5)] = []*domain.Booking{other}
	loader.mu.Unlock()

	hub.Publish(notify.Event{
		Table:     "bookings",
		Event:     "INSERT",
		ID:        other.ID,
		StartTime: day(5).Add(9 * time.Hour),
		EndTime:   day(5).Add(10 * time.Hour),
	})

	msg := receive(t, sub)
	assert.Equal(t, "2026-05-05", msg.Date)
	require.Len(t, msg.Bookings, 1)
	assert.Equal(t, "Reserved", msg.Bookings[0].Title)

	// вне окна подписки
	hub.Publish(notify.Event{Table: "bookings", Event: "INSERT", StartTime: day(9), EndTime: day(9).Add(time.Hour)})
	assertSilent(t, sub)

	assert.Equal(t, float64(1), metrics.get())
	hub.Unsubscribe(sub)
	_, ok := <-sub.Messages()
	assert.False(t, ok)
	assert.Equal(t, float64(0), metrics.get())
}

func TestHub_ResyncRefreshesAllWindows(t *testing.T) {
	loader := &fakeLoader{state: map[time.Time][]*domain.Booking{}}
	hub := NewHub(loader, time.UTC, &countingMetrics{}, nopLogger{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	w1, _ := NewWindow(day(4), day(4), time.UTC)
	w2, _ := NewWindow(day(10), day(10), time.UTC)
	a := NewSubscriber(uuid.New(), domain.Access{Role: domain.RoleAdmin}, w1)
	b := NewSubscriber(uuid.New(), domain.Access{Role: domain.RoleAdmin}, w2)
	require.NoError(t, hub.Subscribe(a))
	require.NoError(t, hub.Subscribe(b))
	receive(t, a)
	receive(t, b)

	hub.Publish(notify.Event{Event: notify.EventResync})

	assert.Equal(t, "2026-05-04", receive(t, a).Date)
	assert.Equal(t, "2026-05-10", receive(t, b).Date)
}

func TestHub_StopClosesSubscribers(t *testing.T) {
	hub := NewHub(&fakeLoader{fail: true}, time.UTC, &countingMetrics{}, nopLogger{})
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	w, _ := NewWindow(day(4), day(4), time.UTC)
	sub := NewSubscriber(uuid.New(), domain.Access{}, w)
	require.NoError(t, hub.Subscribe(sub))

	cancel()
	_, ok := <-sub.Messages()
	assert.False(t, ok)

	assert.ErrorIs(t, hub.Subscribe(NewSubscriber(uuid.New(), domain.Access{}, w)), ErrHubClosed)
}

func TestDayLoader_LoadDay(t *testing.T) {
	bookings := &stubBookings{}
	blocks := &stubBlocks{}
	snap, err := NewDayLoader(bookings, blocks).LoadDay(context.Background(), day(4))

	require.NoError(t, err)
	assert.Equal(t, day(4), snap.Day)
	assert.Equal(t, day(5), bookings.to)
	assert.Equal(t, day(5), blocks.to)
}

type stubBookings struct{ to time.Time }

func (s *stubBookings) ListForDay(_ context.Context, _ *uuid.UUID, _, to time.Time) ([]*domain.Booking, error) {
	s.to = to
	return nil, nil
}

type stubBlocks struct{ to time.Time }

func (s *stubBlocks) List(_ context.Context, _ *uuid.UUID, _, to time.Time) ([]*domain.RoomBlock, error) {
	s.to = to
	return nil, nil
}
