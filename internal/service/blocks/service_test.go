package blocks

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	roomRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/room"
	blockRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/roomblock"
	"github.com/m04kA/SMC-RoomBooking/internal/service/availability"
)

type mockBlockRepo struct {
	mock.Mock
}

func (m *mockBlockRepo) Create(ctx context.Context, block *domain.RoomBlock) (*domain.RoomBlock, error) {
	args := m.Called(ctx, block)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomBlock), args.Error(1)
}

func (m *mockBlockRepo) ListInRange(ctx context.Context, roomID *uuid.UUID, from, to time.Time) ([]*domain.RoomBlock, error) {
	args := m.Called(ctx, roomID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.RoomBlock), args.Error(1)
}

func (m *mockBlockRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockRoomRepo struct {
	mock.Mock
}

func (m *mockRoomRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

type mockAvailability struct {
	mock.Mock
}

func (m *mockAvailability) Check(ctx context.Context, roomID uuid.UUID, interval domain.Interval, excludeBookingID *uuid.UUID) error {
	return m.Called(ctx, roomID, interval, excludeBookingID).Error(0)
}

type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	blocks *mockBlockRepo
	rooms  *mockRoomRepo
	avail  *mockAvailability
	svc    *Service
}

func newFixture() *fixture {
	f := &fixture{
		blocks: new(mockBlockRepo),
		rooms:  new(mockRoomRepo),
		avail:  new(mockAvailability),
	}
	f.svc = NewService(f.blocks, f.rooms, f.avail, passthroughTx{}, nopLogger{})
	return f
}

func request(roomID uuid.UUID) *CreateRequest {
	return &CreateRequest{
		RoomID:    roomID,
		StartTime: time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 5, 4, 14, 0, 0, 0, time.UTC),
		CreatedBy: uuid.New(),
	}
}

func TestService_Create(t *testing.T) {
	f := newFixture()
	roomID := uuid.New()
	f.rooms.On("GetByID", mock.Anything, roomID).Return(&domain.Room{ID: roomID}, nil)
	f.avail.On("Check", mock.Anything, roomID, mock.Anything, (*uuid.UUID)(nil)).Return(nil)
	f.blocks.On("Create", mock.Anything, mock.Anything).Return(&domain.RoomBlock{ID: uuid.New(), RoomID: roomID}, nil)

	block, err := f.svc.Create(context.Background(), request(roomID))

	require.NoError(t, err)
	assert.Equal(t, roomID, block.RoomID)
}

func TestService_Create_Conflicts(t *testing.T) {
	tests := []struct {
		name     string
		checkErr error
		repoErr  error
		want     error
	}{
		{"booking found by check", availability.ErrTimeBooked, nil, ErrBookingConflict},
		{"block found by check", availability.ErrRoomBlocked, nil, ErrAlreadyBlocked},
		{"check failed", availability.ErrAvailabilityUnknown, nil, ErrAvailabilityUnknown},
		{"booking inserted concurrently", nil, blockRepo.ErrBookingConflict, ErrBookingConflict},
		{"block inserted concurrently", nil, blockRepo.ErrBlockConflict, ErrAlreadyBlocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			roomID := uuid.New()
			f.rooms.On("GetByID", mock.Anything, roomID).Return(&domain.Room{ID: roomID}, nil)
			f.avail.On("Check", mock.Anything, roomID, mock.Anything, (*uuid.UUID)(nil)).Return(tt.checkErr)
			f.blocks.On("Create", mock.Anything, mock.Anything).Return(nil, tt.repoErr)

			_, err := f.svc.Create(context.Background(), request(roomID))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestService_Create_Validation(t *testing.T) {
	f := newFixture()
	roomID := uuid.New()

	req := request(roomID)
	req.EndTime = req.StartTime
	_, err := f.svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	f.rooms.On("GetByID", mock.Anything, roomID).Return(nil, roomRepo.ErrRoomNotFound)
	_, err = f.svc.Create(context.Background(), request(roomID))
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestService_Delete_NotFound(t *testing.T) {
	f := newFixture()
	id := uuid.New()
	f.blocks.On("Delete", mock.Anything, id).Return(blockRepo.ErrBlockNotFound)

	assert.ErrorIs(t, f.svc.Delete(context.Background(), id), ErrBlockNotFound)
}
