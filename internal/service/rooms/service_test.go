package rooms

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
	"github.com/m04kA/SMC-RoomBooking/internal/infra/blob"
	roomRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBooking/internal/service/rooms/models"
)

const bucket = "room-images"

type mockRoomRepo struct {
	mock.Mock
}

func (m *mockRoomRepo) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	args := m.Called(ctx, room)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *mockRoomRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *mockRoomRepo) List(ctx context.Context, onlyActive bool) ([]*domain.Room, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Room), args.Error(1)
}

func (m *mockRoomRepo) Update(ctx context.Context, room *domain.Room) error {
	return m.Called(ctx, room).Error(0)
}

func (m *mockRoomRepo) UpdateImage(ctx context.Context, id uuid.UUID, imageURL *string) error {
	return m.Called(ctx, id, imageURL).Error(0)
}

func (m *mockRoomRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockImages struct {
	mock.Mock
}

func (m *mockImages) Upload(ctx context.Context, bucket, key string, body io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, bucket, key, body, size, contentType)
	return args.String(0), args.Error(1)
}

func (m *mockImages) KeyFromURL(bucket, url string) (string, bool) {
	args := m.Called(bucket, url)
	return args.String(0), args.Bool(1)
}

func (m *mockImages) Remove(ctx context.Context, bucket string, keys []string) error {
	return m.Called(ctx, bucket, keys).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_Create(t *testing.T) {
	repo := new(mockRoomRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Room) bool {
		return r.Name == "Atlas" && r.Status == domain.RoomStatusActive && len(r.Facilities) == 1
	})).Return(&domain.Room{ID: uuid.New(), Name: "Atlas", Floor: 2, Capacity: 8, Status: domain.RoomStatusActive}, nil)

	svc := NewService(repo, new(mockImages), bucket, nopLogger{})
	resp, err := svc.Create(context.Background(), &models.RoomInput{
		Name:       "  Atlas ",
		Floor:      2,
		Capacity:   8,
		Facilities: []string{"TV", " "},
	})

	require.NoError(t, err)
	assert.Equal(t, "2nd floor", resp.FloorLabel)
	assert.Equal(t, []string{}, resp.Facilities)
}

func TestService_Create_Invalid(t *testing.T) {
	svc := NewService(new(mockRoomRepo), new(mockImages), bucket, nopLogger{})

	cases := []*models.RoomInput{
		{Name: "", Capacity: 4},
		{Name: "A", Capacity: 0},
		{Name: "A", Capacity: 4, Floor: 500},
		{Name: "A", Capacity: 4, Status: "closed"},
	}
	for _, in := range cases {
		_, err := svc.Create(context.Background(), in)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestService_Update_NotFound(t *testing.T) {
	repo := new(mockRoomRepo)
	repo.On("Update", mock.Anything, mock.Anything).Return(roomRepo.ErrRoomNotFound)

	_, err := NewService(repo, new(mockImages), bucket, nopLogger{}).
		Update(context.Background(), uuid.New(), &models.RoomInput{Name: "A", Capacity: 2})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestService_UploadImage_ReplacesPrevious(t *testing.T) {
	id := uuid.New()
	oldURL := "http://cdn/room-images/old.png"
	repo := new(mockRoomRepo)
	images := new(mockImages)

	repo.On("GetByID", mock.Anything, id).Return(&domain.Room{ID: id, Name: "Atlas", ImageURL: &oldURL}, nil)
	images.On("Upload", mock.Anything, bucket, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, id.String()+"/atlas-") && strings.HasSuffix(key, ".png")
	}), mock.Anything, int64(10), "image/png").Return("http://cdn/room-images/new.png", nil)
	repo.On("UpdateImage", mock.Anything, id, mock.Anything).Return(nil)
	images.On("KeyFromURL", bucket, oldURL).Return("old.png", true)
	images.On("Remove", mock.Anything, bucket, []string{"old.png"}).Return(nil)

	resp, err := NewService(repo, images, bucket, nopLogger{}).UploadImage(context.Background(), id, &models.ImageFile{
		Name:        "Atlas.png",
		ContentType: "image/png",
		Size:        10,
		Body:        strings.NewReader("0123456789"),
	})

	require.NoError(t, err)
	assert.Equal(t, "http://cdn/room-images/new.png", *resp.ImageURL)
	images.AssertExpectations(t)
}

func TestService_UploadImage_RejectsNonImage(t *testing.T) {
	id := uuid.New()
	repo := new(mockRoomRepo)
	repo.On("GetByID", mock.Anything, id).Return(&domain.Room{ID: id}, nil)

	_, err := NewService(repo, new(mockImages), bucket, nopLogger{}).UploadImage(context.Background(), id, &models.ImageFile{
		Name:        "notes.txt",
		ContentType: "text/plain",
	})

	assert.ErrorIs(t, err, ErrInvalidImage)
	assert.ErrorContains(t, err, blob.ErrUnsupportedType.Error())
}
