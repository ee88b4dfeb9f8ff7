package access

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	profileRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/profile"
)

type mockProfiles struct {
	mock.Mock
}

func (m *mockProfiles) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

type mockPermissions struct {
	mock.Mock
}

func (m *mockPermissions) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Permission, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Permission), args.Error(1)
}

func TestService_Load_Admin(t *testing.T) {
	profiles := new(mockProfiles)
	perms := new(mockPermissions)
	id := uuid.New()
	profiles.On("GetByID", mock.Anything, id).Return(&domain.Profile{ID: id, Role: domain.RoleAdmin}, nil)

	access, err := NewService(profiles, perms).Load(context.Background(), id)

	require.NoError(t, err)
	assert.True(t, access.Can(domain.PermManageUsers))
	perms.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
}

func TestService_Load_UserGrants(t *testing.T) {
	profiles := new(mockProfiles)
	perms := new(mockPermissions)
	id := uuid.New()
	profiles.On("GetByID", mock.Anything, id).Return(&domain.Profile{ID: id, Role: domain.RoleUser}, nil)
	perms.On("ListByUser", mock.Anything, id).Return([]domain.Permission{domain.PermBookRoom}, nil)

	access, err := NewService(profiles, perms).Load(context.Background(), id)

	require.NoError(t, err)
	assert.True(t, access.Can(domain.PermBookRoom))
	assert.False(t, access.Can(domain.PermManageRooms))
}

func TestService_Load_Errors(t *testing.T) {
	profiles := new(mockProfiles)
	unknown := uuid.New()
	broken := uuid.New()
	profiles.On("GetByID", mock.Anything, unknown).Return(nil, profileRepo.ErrProfileNotFound)
	profiles.On("GetByID", mock.Anything, broken).Return(nil, errors.New("db down"))
	svc := NewService(profiles, new(mockPermissions))

	_, err := svc.Load(context.Background(), unknown)
	assert.ErrorIs(t, err, ErrUnknownUser)

	_, err = svc.Load(context.Background(), broken)
	assert.ErrorIs(t, err, ErrInternal)
}
