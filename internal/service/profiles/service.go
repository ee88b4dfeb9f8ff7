package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/infra/blob"
	profileRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/profile"
	"github.com/m04kA/SMC-RoomBooking/internal/service/profiles/models"
)

const maxNameLength = 200

// Service сервис профилей пользователей
type Service struct {
	profileRepo    ProfileRepository
	permissionRepo PermissionRepository
	avatars        AvatarStorage
	bucket         string
	txManager      TransactionManager
	logger         Logger
}

// NewService создает новый экземпляр сервиса профилей
func NewService(
	profileRepo ProfileRepository,
	permissionRepo PermissionRepository,
	avatars AvatarStorage,
	bucket string,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		profileRepo:    profileRepo,
		permissionRepo: permissionRepo,
		avatars:        avatars,
		bucket:         bucket,
		txManager:      txManager,
		logger:         logger,
	}
}

// Me профиль текущего пользователя
func (s *Service) Me(ctx context.Context, userID uuid.UUID) (*models.ProfileResponse, error) {
	profile, err := s.get(ctx, "Me", userID)
	if err != nil {
		return nil, err
	}
	return s.withAccess(ctx, profile)
}

// Update изменяет имя и отдел
func (s *Service) Update(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest) (*models.ProfileResponse, error) {
	fullName := strings.TrimSpace(req.FullName)
	department := strings.TrimSpace(req.Department)
	if fullName == "" {
		return nil, fmt.Errorf("%w: full name is required", ErrInvalidInput)
	}
	if len(fullName) > maxNameLength || len(department) > maxNameLength {
		return nil, fmt.Errorf("%w: value longer than %d characters", ErrInvalidInput, maxNameLength)
	}

	if err := s.profileRepo.UpdateDetails(ctx, userID, fullName, department); err != nil {
		return nil, s.mapRepoError("Update", userID, err)
	}

	return s.Me(ctx, userID)
}

// AcceptTerms отмечает принятие условий использования
func (s *Service) AcceptTerms(ctx context.Context, userID uuid.UUID) error {
	if err := s.profileRepo.AcceptTerms(ctx, userID); err != nil {
		return s.mapRepoError("AcceptTerms", userID, err)
	}
	s.logger.Info("AcceptTerms: user=%s accepted terms", userID)
	return nil
}

// UploadAvatar заменяет аватар пользователя
// Все прежние объекты пользователя в бакете удаляются до загрузки нового
func (s *Service) UploadAvatar(ctx context.Context, userID uuid.UUID, file *models.AvatarFile) (*models.ProfileResponse, error) {
	key, err := blob.ObjectKey(userID.String(), file.Name, file.ContentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	if err := s.removeAvatars(ctx, userID); err != nil {
		return nil, err
	}

	url, err := s.avatars.Upload(ctx, s.bucket, key, file.Body, file.Size, file.ContentType)
	if err != nil {
		if errors.Is(err, blob.ErrTooLarge) || errors.Is(err, blob.ErrUnsupportedType) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
		}
		s.logger.Error("UploadAvatar: storage error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: UploadAvatar - storage error: %v", ErrInternal, err)
	}

	if err := s.profileRepo.UpdateAvatar(ctx, userID, &url); err != nil {
		return nil, s.mapRepoError("UploadAvatar", userID, err)
	}

	s.logger.Info("UploadAvatar: user=%s avatar updated", userID)
	return s.Me(ctx, userID)
}

// DeleteAvatar удаляет аватар пользователя
func (s *Service) DeleteAvatar(ctx context.Context, userID uuid.UUID) error {
	if err := s.removeAvatars(ctx, userID); err != nil {
		return err
	}
	if err := s.profileRepo.UpdateAvatar(ctx, userID, nil); err != nil {
		return s.mapRepoError("DeleteAvatar", userID, err)
	}
	return nil
}

// ListUsers все пользователи с их правами
func (s *Service) ListUsers(ctx context.Context) ([]*models.ProfileResponse, error) {
	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListUsers: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListUsers - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		resp, err := s.withAccess(ctx, p)
		if err != nil {
			return nil, err
		}
		result = append(result, resp)
	}

	return result, nil
}

// UpdateAccess изменяет роль и явные права пользователя в одной транзакции
func (s *Service) UpdateAccess(ctx context.Context, actorID, userID uuid.UUID, req *models.UpdateAccessRequest) (*models.ProfileResponse, error) {
	role := domain.Role(req.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Role)
	}
	if actorID == userID && role != domain.RoleAdmin {
		return nil, ErrSelfDemotion
	}

	perms := make([]domain.Permission, 0, len(req.Permissions))
	for _, name := range req.Permissions {
		perm := domain.Permission(name)
		if !perm.IsValid() {
			return nil, fmt.Errorf("%w: unknown permission %q", ErrInvalidInput, name)
		}
		perms = append(perms, perm)
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.profileRepo.UpdateRole(txCtx, userID, role); err != nil {
			return err
		}
		return s.permissionRepo.ReplaceForUser(txCtx, userID, perms)
	})
	if err != nil {
		return nil, s.mapRepoError("UpdateAccess", userID, err)
	}

	s.logger.Info("UpdateAccess: user=%s role=%s permissions=%d set by %s", userID, role, len(perms), actorID)
	return s.Me(ctx, userID)
}

func (s *Service) get(ctx context.Context, op string, userID uuid.UUID) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, s.mapRepoError(op, userID, err)
	}
	return profile, nil
}

func (s *Service) withAccess(ctx context.Context, profile *domain.Profile) (*models.ProfileResponse, error) {
	access := domain.Access{Role: profile.Role}
	if !profile.IsAdmin() {
		grants, err := s.permissionRepo.ListByUser(ctx, profile.ID)
		if err != nil {
			s.logger.Error("withAccess: permissions error for user=%s: %v", profile.ID, err)
			return nil, fmt.Errorf("%w: permissions error: %v", ErrInternal, err)
		}
		access.Grants = grants
	}
	return models.FromDomainProfile(profile, access), nil
}

func (s *Service) removeAvatars(ctx context.Context, userID uuid.UUID) error {
	keys, err := s.avatars.List(ctx, s.bucket, userID.String()+"/")
	if err != nil {
		s.logger.Error("removeAvatars: list error for user=%s: %v", userID, err)
		return fmt.Errorf("%w: removeAvatars - list: %v", ErrInternal, err)
	}
	if err := s.avatars.Remove(ctx, s.bucket, keys); err != nil {
		s.logger.Error("removeAvatars: remove error for user=%s: %v", userID, err)
		return fmt.Errorf("%w: removeAvatars - remove: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) mapRepoError(op string, userID uuid.UUID, err error) error {
	if errors.Is(err, profileRepo.ErrProfileNotFound) {
		return ErrProfileNotFound
	}
	s.logger.Error("%s: repository error for user=%s: %v", op, userID, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
