package rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/infra/blob"
	roomRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBooking/internal/service/rooms/models"
)

// Service сервис управления комнатами
type Service struct {
	roomRepo RoomRepository
	images   ImageStorage
	bucket   string
	logger   Logger
}

// NewService создает новый экземпляр сервиса комнат
func NewService(roomRepo RoomRepository, images ImageStorage, bucket string, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		images:   images,
		bucket:   bucket,
		logger:   logger,
	}
}

// List возвращает комнаты, отсортированные по этажу и названию
func (s *Service) List(ctx context.Context, onlyActive bool) ([]*models.RoomResponse, error) {
	rooms, err := s.roomRepo.List(ctx, onlyActive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainRoomList(rooms), nil
}

// ListDomain то же, что List, без конвертации в ответ
func (s *Service) ListDomain(ctx context.Context, onlyActive bool) ([]*domain.Room, error) {
	rooms, err := s.roomRepo.List(ctx, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDomain - repository error: %v", ErrInternal, err)
	}
	return rooms, nil
}

// GetByID получает комнату по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.RoomResponse, error) {
	room, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainRoom(room), nil
}

// Create создает комнату
func (s *Service) Create(ctx context.Context, input *models.RoomInput) (*models.RoomResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	room, err := s.roomRepo.Create(ctx, input.ToDomain(uuid.Nil))
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: room id=%s name=%q created", room.ID, room.Name)
	return models.FromDomainRoom(room), nil
}

// Update изменяет комнату. Изображение не затрагивается
func (s *Service) Update(ctx context.Context, id uuid.UUID, input *models.RoomInput) (*models.RoomResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.roomRepo.Update(ctx, input.ToDomain(id)); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("Update: repository error for room id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: room id=%s updated", id)
	return s.GetByID(ctx, id)
}

// Delete удаляет комнату вместе с её бронированиями и блокировками
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	room, err := s.get(ctx, "Delete", id)
	if err != nil {
		return err
	}

	if err := s.roomRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return ErrRoomNotFound
		}
		s.logger.Error("Delete: repository error for room id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.removeImage(ctx, room.ImageURL)

	s.logger.Info("Delete: room id=%s deleted", id)
	return nil
}

// UploadImage загружает изображение комнаты и заменяет ссылку на него
func (s *Service) UploadImage(ctx context.Context, id uuid.UUID, file *models.ImageFile) (*models.RoomResponse, error) {
	room, err := s.get(ctx, "UploadImage", id)
	if err != nil {
		return nil, err
	}

	key, err := blob.ObjectKey(id.String(), file.Name, file.ContentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	url, err := s.images.Upload(ctx, s.bucket, key, file.Body, file.Size, file.ContentType)
	if err != nil {
		if errors.Is(err, blob.ErrTooLarge) || errors.Is(err, blob.ErrUnsupportedType) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
		}
		s.logger.Error("UploadImage: storage error for room id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UploadImage - storage error: %v", ErrInternal, err)
	}

	if err := s.roomRepo.UpdateImage(ctx, id, &url); err != nil {
		s.logger.Error("UploadImage: repository error for room id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UploadImage - repository error: %v", ErrInternal, err)
	}

	s.removeImage(ctx, room.ImageURL)

	room.ImageURL = &url
	return models.FromDomainRoom(room), nil
}

func (s *Service) get(ctx context.Context, op string, id uuid.UUID) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("%s: repository error for room id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return room, nil
}

// removeImage удаляет прежнее изображение. Ошибка только логируется
func (s *Service) removeImage(ctx context.Context, url *string) {
	if url == nil {
		return
	}
	key, ok := s.images.KeyFromURL(s.bucket, *url)
	if !ok {
		return
	}
	if err := s.images.Remove(ctx, s.bucket, []string{key}); err != nil {
		s.logger.Warn("removeImage: failed to remove %s: %v", key, err)
	}
}
