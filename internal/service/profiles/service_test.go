package profiles

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	profileRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/profile"
	"github.com/m04kA/SMC-RoomBooking/internal/service/profiles/models"
)

const bucket = "avatars"

type mockProfileRepo struct {
	mock.Mock
}

func (m *mockProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *mockProfileRepo) List(ctx context.Context) ([]*domain.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Profile), args.Error(1)
}

func (m *mockProfileRepo) UpdateDetails(ctx context.Context, id uuid.UUID, fullName, department string) error {
	return m.Called(ctx, id, fullName, department).Error(0)
}

func (m *mockProfileRepo) AcceptTerms(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProfileRepo) UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL *string) error {
	return m.Called(ctx, id, avatarURL).Error(0)
}

func (m *mockProfileRepo) UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) error {
	return m.Called(ctx, id, role).Error(0)
}

type mockPermissionRepo struct {
	mock.Mock
}

func (m *mockPermissionRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Permission, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Permission), args.Error(1)
}

func (m *mockPermissionRepo) ReplaceForUser(ctx context.Context, userID uuid.UUID, permissions []domain.Permission) error {
	return m.Called(ctx, userID, permissions).Error(0)
}

type mockAvatars struct {
	mock.Mock
}

func (m *mockAvatars) Upload(ctx context.Context, bucket, key string, body io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, bucket, key, body, size, contentType)
	return args.String(0), args.Error(1)
}

func (m *mockAvatars) List(ctx context.Context, bucket, prefix string) ([]string, error) {
	args := m.Called(ctx, bucket, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockAvatars) Remove(ctx context.Context, bucket string, keys []string) error {
	return m.Called(ctx, bucket, keys).Error(0)
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	profiles *mockProfileRepo
	perms    *mockPermissionRepo
	avatars  *mockAvatars
	svc      *Service
}

func newFixture() *fixture {
	f := &fixture{
		profiles: new(mockProfileRepo),
		perms:    new(mockPermissionRepo),
		avatars:  new(mockAvatars),
	}
	f.svc = NewService(f.profiles, f.perms, f.avatars, bucket, passthroughTx{}, nopLogger{})
	return f
}

func TestService_Me(t *testing.T) {
	f := newFixture()
	id := uuid.New()
	f.profiles.On("GetByID", mock.Anything, id).Return(&domain.Profile{ID: id, Email: "ana@corp.io", Role: domain.RoleUser}, nil)
	f.perms.On("ListByUser", mock.Anything, id).Return([]domain.Permission{domain.PermBookRoom}, nil)

	resp, err := f.svc.Me(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, []string{"book_room"}, resp.Permissions)
}

func TestService_Me_NotFound(t *testing.T) {
	f := newFixture()
	id := uuid.New()
	f.profiles.On("GetByID", mock.Anything, id).Return(nil, profileRepo.ErrProfileNotFound)

	_, err := f.svc.Me(context.Background(), id)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestService_Update_RequiresName(t *testing.T) {
	_, err := newFixture().svc.Update(context.Background(), uuid.New(), &models.UpdateProfileRequest{FullName: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_UploadAvatar_RemovesOldObjects(t *testing.T) {
	f := newFixture()
	id := uuid.New()
	prefix := id.String() + "/"
	old := []string{prefix + "me-aaaa.png", prefix + "me-bbbb.jpg"}
	url := "http://cdn/avatars/" + prefix + "me.png"

	f.avatars.On("List", mock.Anything, bucket, prefix).Return(old, nil)
	f.avatars.On("Remove", mock.Anything, bucket, old).Return(nil)
	f.avatars.On("Upload", mock.Anything, bucket, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, prefix)
	}), mock.Anything, int64(3), "image/png").Return(url, nil)
	f.profiles.On("UpdateAvatar", mock.Anything, id, &url).Return(nil)
	f.profiles.On("GetByID", mock.Anything, id).Return(&domain.Profile{ID: id, Role: domain.RoleAdmin, AvatarURL: &url}, nil)

	resp, err := f.svc.UploadAvatar(context.Background(), id, &models.AvatarFile{
		Name:        "me.png",
		ContentType: "image/png",
		Size:        3,
		Body:        strings.NewReader("png"),
	})

	require.NoError(t, err)
	assert.Equal(t, url, *resp.AvatarURL)
	f.avatars.AssertExpectations(t)
}

func TestService_UploadAvatar_RejectsBeforeTouchingStorage(t *testing.T) {
	f := newFixture()

	_, err := f.svc.UploadAvatar(context.Background(), uuid.New(), &models.AvatarFile{Name: "x.pdf", ContentType: "application/pdf"})

	assert.ErrorIs(t, err, ErrInvalidImage)
	f.avatars.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_DeleteAvatar(t *testing.T) {
	f := newFixture()
	id := uuid.New()
	f.avatars.On("List", mock.Anything, bucket, id.String()+"/").Return([]string{}, nil)
	f.avatars.On("Remove", mock.Anything, bucket, []string{}).Return(nil)
	f.profiles.On("UpdateAvatar", mock.Anything, id, (*string)(nil)).Return(nil)

	require.NoError(t, f.svc.DeleteAvatar(context.Background(), id))
	f.profiles.AssertExpectations(t)
}

func TestService_UpdateAccess(t *testing.T) {
	f := newFixture()
	admin := uuid.New()
	target := uuid.New()
	perms := []domain.Permission{domain.PermBookRoom, domain.PermViewAnalytics}

	f.profiles.On("UpdateRole", mock.Anything, target, domain.RoleManager).Return(nil)
	f.perms.On("ReplaceForUser", mock.Anything, target, perms).Return(nil)
	f.profiles.On("GetByID", mock.Anything, target).Return(&domain.Profile{ID: target, Role: domain.RoleManager}, nil)
	f.perms.On("ListByUser", mock.Anything, target).Return(perms, nil)

	resp, err := f.svc.UpdateAccess(context.Background(), admin, target, &models.UpdateAccessRequest{
		Role:        "manager",
		Permissions: []string{"book_room", "view_analytics"},
	})

	require.NoError(t, err)
	assert.Equal(t, "manager", resp.Role)
	assert.Equal(t, []string{"book_room", "view_analytics"}, resp.Permissions)
}

func TestService_UpdateAccess_Validation(t *testing.T) {
	f := newFixture()
	admin := uuid.New()

	_, err := f.svc.UpdateAccess(context.Background(), admin, uuid.New(), &models.UpdateAccessRequest{Role: "owner"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.UpdateAccess(context.Background(), admin, uuid.New(), &models.UpdateAccessRequest{Role: "user", Permissions: []string{"fly"}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.UpdateAccess(context.Background(), admin, admin, &models.UpdateAccessRequest{Role: "user"})
	assert.ErrorIs(t, err, ErrSelfDemotion)
}
