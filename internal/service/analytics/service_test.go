package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// 05:50 - 19:00
const gridDay = 13*time.Hour + 10*time.Minute

func booking(room *domain.Room, dept string, start time.Time, d time.Duration) *domain.Booking {
	return &domain.Booking{
		ID:        uuid.New(),
		RoomID:    room.ID,
		StartTime: start,
		EndTime:   start.Add(d),
		Status:    domain.StatusConfirmed,
		User:      &domain.Profile{Department: dept},
	}
}

func TestBuild(t *testing.T) {
	atlas := &domain.Room{ID: uuid.New(), Name: "Atlas"}
	boreal := &domain.Room{ID: uuid.New(), Name: "Boreal"}
	empty := &domain.Room{ID: uuid.New(), Name: "Cosmos"}
	start := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)

	report := Build([]*domain.Booking{
		booking(atlas, "Sales", start, time.Hour),
		booking(atlas, "Sales", start.Add(2*time.Hour), 2*time.Hour),
		booking(boreal, "", start, 30*time.Minute),
	}, []*domain.Room{atlas, boreal, empty}, 1, gridDay)

	assert.Equal(t, 3, report.TotalBookings)
	assert.Equal(t, 3.5, report.BookedHours)

	require.Len(t, report.Rooms, 3)
	assert.Equal(t, "Atlas", report.Rooms[0].RoomName)
	assert.Equal(t, 3.0, report.Rooms[0].BookedHours)
	assert.Equal(t, 13.17, report.Rooms[0].AvailableHours)
	assert.Equal(t, 22.78, report.Rooms[0].OccupancyPercent)
	assert.Equal(t, "Cosmos", report.Rooms[2].RoomName)
	assert.Zero(t, report.Rooms[2].OccupancyPercent)

	assert.Equal(t, []DepartmentUsage{
		{Department: "Sales", Bookings: 2},
		{Department: UnknownDepartment, Bookings: 1},
	}, report.Departments)
}

type mockBookings struct{ mock.Mock }

func (m *mockBookings) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type mockRooms struct{ mock.Mock }

func (m *mockRooms) List(ctx context.Context, onlyActive bool) ([]*domain.Room, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Room), args.Error(1)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_Report(t *testing.T) {
	now := time.Date(2026, 5, 31, 12, 0, 0, 0, time.UTC)
	bookings := new(mockBookings)
	rooms := new(mockRooms)
	bookings.On("List", mock.Anything, mock.MatchedBy(func(f domain.BookingsFilter) bool {
		return f.From != nil && f.From.Equal(now.AddDate(0, 0, -30)) && *f.Status == domain.StatusConfirmed
	})).Return([]*domain.Booking{}, nil)
	rooms.On("List", mock.Anything, false).Return([]*domain.Room{}, nil)

	svc := NewService(bookings, rooms, gridDay, fixedTime{now: now}, nopLogger{})
	report, err := svc.Report(context.Background(), DefaultDays)

	require.NoError(t, err)
	assert.Equal(t, now, report.To)
	assert.Equal(t, 30, report.Days)
}

func TestService_Report_Errors(t *testing.T) {
	bookings := new(mockBookings)
	bookings.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
	svc := NewService(bookings, new(mockRooms), gridDay, fixedTime{now: time.Now()}, nopLogger{})

	_, err := svc.Report(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = svc.Report(context.Background(), 7)
	assert.ErrorIs(t, err, ErrInternal)
}
