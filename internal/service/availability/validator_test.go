package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) ListConfirmedByRoom(ctx context.Context, roomID uuid.UUID, from time.Time) ([]*domain.Booking, error) {
	args := m.Called(ctx, roomID, from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type mockBlockRepo struct {
	mock.Mock
}

func (m *mockBlockRepo) ListActiveByRoom(ctx context.Context, roomID uuid.UUID, from time.Time) ([]*domain.RoomBlock, error) {
	args := m.Called(ctx, roomID, from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.RoomBlock), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func at(h, m int) time.Time {
	return time.Date(2026, 5, 4, h, m, 0, 0, time.UTC)
}

func confirmed(roomID uuid.UUID, start, end time.Time) *domain.Booking {
	return &domain.Booking{
		ID:        uuid.New(),
		RoomID:    roomID,
		StartTime: start,
		EndTime:   end,
		Status:    domain.StatusConfirmed,
	}
}

func setup(bookings []*domain.Booking, blocks []*domain.RoomBlock) (*Validator, *mockBookingRepo, *mockBlockRepo) {
	bookingRepo := new(mockBookingRepo)
	blockRepo := new(mockBlockRepo)
	bookingRepo.On("ListConfirmedByRoom", mock.Anything, mock.Anything, mock.Anything).Return(bookings, nil)
	blockRepo.On("ListActiveByRoom", mock.Anything, mock.Anything, mock.Anything).Return(blocks, nil)
	return NewValidator(bookingRepo, blockRepo, nopLogger{}), bookingRepo, blockRepo
}

func TestValidator_Check(t *testing.T) {
	roomID := uuid.New()
	b1 := confirmed(roomID, at(9, 0), at(10, 0))
	b2 := confirmed(roomID, at(13, 0), at(14, 0))

	tests := []struct {
		name     string
		interval domain.Interval
		wantErr  error
	}{
		{"disjoint from both", domain.Interval{Start: at(11, 0), End: at(12, 0)}, nil},
		{"fully inside existing", domain.Interval{Start: at(9, 15), End: at(9, 45)}, ErrTimeBooked},
		{"abuts end", domain.Interval{Start: at(10, 0), End: at(10, 30)}, nil},
		{"abuts start", domain.Interval{Start: at(12, 0), End: at(13, 0)}, nil},
		{"contains existing", domain.Interval{Start: at(12, 30), End: at(14, 30)}, ErrTimeBooked},
		{"overlaps start", domain.Interval{Start: at(8, 30), End: at(9, 30)}, ErrTimeBooked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _, _ := setup([]*domain.Booking{b1, b2}, nil)

			err := v.Check(context.Background(), roomID, tt.interval, nil)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidator_Check_ExcludeSelfOnExtend(t *testing.T) {
	roomID := uuid.New()
	self := confirmed(roomID, at(9, 0), at(10, 0))
	v, _, _ := setup([]*domain.Booking{self}, nil)

	extended := domain.Interval{Start: at(9, 0), End: at(11, 0)}

	assert.ErrorIs(t, v.Check(context.Background(), roomID, extended, nil), ErrTimeBooked)
	assert.NoError(t, v.Check(context.Background(), roomID, extended, &self.ID))
}

func TestValidator_Check_IgnoresCancelled(t *testing.T) {
	roomID := uuid.New()
	cancelled := confirmed(roomID, at(9, 0), at(10, 0))
	cancelled.Status = domain.StatusCancelled
	v, _, _ := setup([]*domain.Booking{cancelled}, nil)

	assert.NoError(t, v.Check(context.Background(), roomID, domain.Interval{Start: at(9, 0), End: at(10, 0)}, nil))
}

func TestValidator_Check_Block(t *testing.T) {
	roomID := uuid.New()
	block := &domain.RoomBlock{ID: uuid.New(), RoomID: roomID, StartTime: at(12, 0), EndTime: at(15, 0)}
	v, _, _ := setup(nil, []*domain.RoomBlock{block})

	assert.ErrorIs(t, v.Check(context.Background(), roomID, domain.Interval{Start: at(14, 0), End: at(16, 0)}, nil), ErrRoomBlocked)
	assert.NoError(t, v.Check(context.Background(), roomID, domain.Interval{Start: at(15, 0), End: at(16, 0)}, nil))
}

func TestValidator_Check_BookingConflictReportedBeforeBlock(t *testing.T) {
	roomID := uuid.New()
	b := confirmed(roomID, at(9, 0), at(10, 0))
	block := &domain.RoomBlock{ID: uuid.New(), RoomID: roomID, StartTime: at(9, 0), EndTime: at(10, 0)}
	v, _, blockRepo := setup([]*domain.Booking{b}, []*domain.RoomBlock{block})

	err := v.Check(context.Background(), roomID, domain.Interval{Start: at(9, 0), End: at(9, 30)}, nil)

	assert.ErrorIs(t, err, ErrTimeBooked)
	blockRepo.AssertNotCalled(t, "ListActiveByRoom", mock.Anything, mock.Anything, mock.Anything)
}

func TestValidator_Check_MidnightCrossing(t *testing.T) {
	roomID := uuid.New()
	late := confirmed(roomID, at(23, 0), at(23, 0).Add(2*time.Hour))
	v, _, _ := setup([]*domain.Booking{late}, nil)

	overnight := domain.NewInterval(at(22, 30), at(0, 30))

	assert.ErrorIs(t, v.Check(context.Background(), roomID, overnight, nil), ErrTimeBooked)
}

func TestValidator_Check_FailClosed(t *testing.T) {
	roomID := uuid.New()

	t.Run("bookings read fails", func(t *testing.T) {
		bookingRepo := new(mockBookingRepo)
		bookingRepo.On("ListConfirmedByRoom", mock.Anything, roomID, mock.Anything).Return(nil, errors.New("timeout"))
		v := NewValidator(bookingRepo, new(mockBlockRepo), nopLogger{})

		err := v.Check(context.Background(), roomID, domain.Interval{Start: at(9, 0), End: at(10, 0)}, nil)

		assert.ErrorIs(t, err, ErrAvailabilityUnknown)
	})

	t.Run("blocks read fails", func(t *testing.T) {
		bookingRepo := new(mockBookingRepo)
		blockRepo := new(mockBlockRepo)
		bookingRepo.On("ListConfirmedByRoom", mock.Anything, roomID, mock.Anything).Return([]*domain.Booking{}, nil)
		blockRepo.On("ListActiveByRoom", mock.Anything, roomID, mock.Anything).Return(nil, errors.New("timeout"))
		v := NewValidator(bookingRepo, blockRepo, nopLogger{})

		err := v.Check(context.Background(), roomID, domain.Interval{Start: at(9, 0), End: at(10, 0)}, nil)

		assert.ErrorIs(t, err, ErrAvailabilityUnknown)
	})
}
