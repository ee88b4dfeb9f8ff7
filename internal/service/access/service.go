// Package access загружает роль и явные права пользователя
package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	profileRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/profile"
)

type Service struct {
	profiles    ProfileRepository
	permissions PermissionRepository
}

func NewService(profiles ProfileRepository, permissions PermissionRepository) *Service {
	return &Service{profiles: profiles, permissions: permissions}
}

// Load возвращает роль и права пользователя
// Для администратора список прав не читается: роль admin включает все права
func (s *Service) Load(ctx context.Context, userID uuid.UUID) (domain.Access, error) {
	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			return domain.Access{}, ErrUnknownUser
		}
		return domain.Access{}, fmt.Errorf("%w: Load - profile: %v", ErrInternal, err)
	}

	if profile.IsAdmin() {
		return domain.Access{Role: profile.Role}, nil
	}

	grants, err := s.permissions.ListByUser(ctx, userID)
	if err != nil {
		return domain.Access{}, fmt.Errorf("%w: Load - permissions: %v", ErrInternal, err)
	}

	return domain.Access{Role: profile.Role, Grants: grants}, nil
}
