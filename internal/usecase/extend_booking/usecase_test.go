package extend_booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RoomBooking/internal/service/availability"
	"github.com/m04kA/SMC-RoomBooking/internal/service/policy"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) UpdateEndTime(ctx context.Context, id uuid.UUID, endTime time.Time) error {
	return m.Called(ctx, id, endTime).Error(0)
}

type mockAvailability struct {
	mock.Mock
}

func (m *mockAvailability) Check(ctx context.Context, roomID uuid.UUID, interval domain.Interval, excludeBookingID *uuid.UUID) error {
	return m.Called(ctx, roomID, interval, excludeBookingID).Error(0)
}

type staticSettings struct{}

func (staticSettings) Limits(context.Context) domain.BookingLimits {
	return domain.DefaultBookingLimits()
}

type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type countingMetrics struct {
	saved    []string
	rejected []string
}

func (m *countingMetrics) BookingSaved(op string)       { m.saved = append(m.saved, op) }
func (m *countingMetrics) BookingRejected(reason string) { m.rejected = append(m.rejected, reason) }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var booker = domain.Access{Role: domain.RoleUser, Grants: []domain.Permission{domain.PermBookRoom}}

type fixture struct {
	repo    *mockBookingRepo
	avail   *mockAvailability
	metrics *countingMetrics
	booking *domain.Booking
	uc      *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		repo:    new(mockBookingRepo),
		avail:   new(mockAvailability),
		metrics: &countingMetrics{},
		booking: &domain.Booking{
			ID:        uuid.New(),
			RoomID:    uuid.New(),
			UserID:    uuid.New(),
			StartTime: time.Date(2026, 5, 5, 9, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2026, 5, 5, 10, 0, 0, 0, time.UTC),
			Status:    domain.StatusConfirmed,
		},
	}
	f.repo.On("GetByID", mock.Anything, f.booking.ID).Return(f.booking, nil)
	f.uc = NewUseCase(f.repo, staticSettings{}, f.avail, passthroughTx{}, f.metrics, time.UTC, nopLogger{})
	return f
}

func (f *fixture) request(end string) *Request {
	return &Request{BookingID: f.booking.ID, UserID: f.booking.UserID, Access: booker, NewEndTime: types.TimeString(end)}
}

func TestUseCase_Execute(t *testing.T) {
	f := newFixture()
	newEnd := time.Date(2026, 5, 5, 11, 30, 0, 0, time.UTC)
	wantInterval := domain.Interval{Start: f.booking.StartTime, End: newEnd}
	f.avail.On("Check", mock.Anything, f.booking.RoomID, wantInterval, &f.booking.ID).Return(nil)
	f.repo.On("UpdateEndTime", mock.Anything, f.booking.ID, newEnd).Return(nil)

	resp, err := f.uc.Execute(context.Background(), f.request("11:30"))

	require.NoError(t, err)
	assert.Equal(t, newEnd, resp.Booking.EndTime)
	assert.Equal(t, []string{"extend"}, f.metrics.saved)
	f.avail.AssertExpectations(t)
}

func TestUseCase_Execute_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		modify func(f *fixture, r *Request)
		want   error
	}{
		{
			name:   "not the owner",
			modify: func(_ *fixture, r *Request) { r.UserID = uuid.New() },
			want:   ErrForbidden,
		},
		{
			name:   "no book_room permission",
			modify: func(_ *fixture, r *Request) { r.Access = domain.Access{Role: domain.RoleUser} },
			want:   ErrForbidden,
		},
		{
			name:   "cancelled",
			modify: func(f *fixture, _ *Request) { f.booking.Status = domain.StatusCancelled },
			want:   ErrNotConfirmed,
		},
		{
			name:   "same end",
			modify: func(_ *fixture, r *Request) { r.NewEndTime = "10:00" },
			want:   ErrEndNotLater,
		},
		{
			name:   "earlier end",
			modify: func(_ *fixture, r *Request) { r.NewEndTime = "09:30" },
			want:   ErrEndNotLater,
		},
		{
			name:   "duration from original start",
			modify: func(_ *fixture, r *Request) { r.NewEndTime = "13:30" },
			want:   policy.ErrExceedsMaxDuration,
		},
		{
			name:   "bad time",
			modify: func(_ *fixture, r *Request) { r.NewEndTime = "25:00" },
			want:   ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := f.request("11:00")
			tt.modify(f, req)

			_, err := f.uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.want)
			f.repo.AssertNotCalled(t, "UpdateEndTime", mock.Anything, mock.Anything, mock.Anything)
			assert.Empty(t, f.metrics.saved)
		})
	}
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	f := newFixture()
	req := f.request("11:00")
	req.BookingID = uuid.New()
	f.repo.On("GetByID", mock.Anything, req.BookingID).Return(nil, bookingRepo.ErrBookingNotFound)

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUseCase_Execute_Conflicts(t *testing.T) {
	tests := []struct {
		name     string
		checkErr error
		repoErr  error
		want     error
	}{
		{name: "booked", checkErr: availability.ErrTimeBooked, want: ErrTimeBooked},
		{name: "blocked", checkErr: availability.ErrRoomBlocked, want: ErrRoomBlocked},
		{name: "unknown", checkErr: fmt.Errorf("%w: bookings: timeout", availability.ErrAvailabilityUnknown), want: ErrAvailabilityUnknown},
		{name: "exclusion violation", repoErr: bookingRepo.ErrTimeConflict, want: ErrTimeBooked},
		{name: "cancelled concurrently", repoErr: bookingRepo.ErrNotConfirmed, want: ErrNotConfirmed},
		{name: "unexpected", repoErr: errors.New("boom"), want: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.avail.On("Check", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(tt.checkErr)
			f.repo.On("UpdateEndTime", mock.Anything, mock.Anything, mock.Anything).Return(tt.repoErr)

			_, err := f.uc.Execute(context.Background(), f.request("11:00"))

			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, f.metrics.saved)
		})
	}
}
